package domain

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalking_service/errors"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	Owner           primitive.ObjectID `bson:"owner" json:"owner"`
	StartTime       primitive.DateTime `bson:"start_time" json:"start_time"`
	DurationMinutes int                `bson:"duration_minutes" json:"duration_minutes"`
	Cancelled       bool               `bson:"cancelled" json:"cancelled"`
}

type BookingRequest struct {
	Owner           string `json:"owner" validate:"required"`
	StartTime       string `json:"start_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=1,lte=255"`
}

type BookingResponse struct {
	ID              string `json:"_id"`
	Owner           string `json:"owner"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Cancelled       bool   `json:"cancelled"`
}

type BookingUpdateRequest struct {
	Owner           *string `json:"owner,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Cancelled       *bool   `json:"cancelled,omitempty"`
}

// NewBookingFromRequest assigns a fresh id, decodes the owner reference,
// parses the RFC3339 start time and always starts a booking uncancelled.
func NewBookingFromRequest(request *BookingRequest) (*Booking, error) {
	ownerID, err := DecodeID(request.Owner)
	if err != nil {
		return nil, errors.NewDatabaseError("Failed to parse owner ID: "+request.Owner, err).
			ForField("owner", request.Owner)
	}
	startTime, err := parseStartTime(request.StartTime)
	if err != nil {
		return nil, err
	}
	return &Booking{
		ID:              primitive.NewObjectID(),
		Owner:           ownerID,
		StartTime:       startTime,
		DurationMinutes: request.DurationMinutes,
		Cancelled:       false,
	}, nil
}

func (booking *Booking) ToResponse() *BookingResponse {
	return &BookingResponse{
		ID:              EncodeID(booking.ID),
		Owner:           EncodeID(booking.Owner),
		StartTime:       booking.StartTime.Time().UTC().Format(time.RFC3339),
		DurationMinutes: booking.DurationMinutes,
		Cancelled:       booking.Cancelled,
	}
}

// UpdateFields builds the merge set for the supplied fields. Cancelled is
// only ever changed when the caller says so; a create starts it false and
// nothing here resets it implicitly.
func (update *BookingUpdateRequest) UpdateFields() (*FieldSet, error) {
	fields := NewFieldSet()
	if update.Owner != nil {
		ownerID, err := DecodeID(*update.Owner)
		if err != nil {
			return nil, errors.NewDatabaseError("Update Failed: invalid owner ID: "+*update.Owner, err).
				ForField("owner", *update.Owner)
		}
		fields.Set("owner", ownerID)
	}
	if update.StartTime != nil {
		startTime, err := parseStartTime(*update.StartTime)
		if err != nil {
			return nil, err
		}
		fields.Set("start_time", startTime)
	}
	if update.DurationMinutes != nil {
		if err := validDurationMinutes(*update.DurationMinutes); err != nil {
			return nil, err
		}
		fields.Set("duration_minutes", *update.DurationMinutes)
	}
	if update.Cancelled != nil {
		fields.Set("cancelled", *update.Cancelled)
	}
	return fields.Build()
}

// The stored duration is a single byte wide; values outside 1..255 never
// reach the store.
func validDurationMinutes(minutes int) error {
	if minutes < 1 || minutes > 255 {
		return errors.NewParseError("Invalid value for field duration_minutes").
			ForField("duration_minutes", strconv.Itoa(minutes))
	}
	return nil
}

// parseStartTime parses an RFC3339 timestamp into the stored millisecond
// precision form. A value that is a bare clock time gets its own message,
// everything else malformed reports the parser's reason.
func parseStartTime(value string) (primitive.DateTime, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return primitive.NewDateTimeFromTime(parsed), nil
	}
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05"} {
		if _, timeOnly := time.Parse(layout, value); timeOnly == nil {
			return 0, errors.NewParseError("Start time must include a date").
				ForField("start_time", value)
		}
	}
	return 0, errors.NewParseError("Failed to parse start time: "+err.Error()).
		ForField("start_time", value)
}
