package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
	"dogwalking_service/errors"
)

const BOOKING_COLLECTION = "booking"

type BookingMongoDBStore struct {
	bookings *mongo.Collection
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(BOOKING_COLLECTION)
	return &BookingMongoDBStore{
		bookings: bookings,
		tracer:   tracer,
		logger:   logger,
	}
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Insert")
	defer span.End()

	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		store.logger.Errorf("insert booking: %v", err)
		return nil, errors.NewDatabaseError("Failed to Create new Booking: "+err.Error(), err)
	}
	// the id was assigned by the conversion layer; an acknowledgment that
	// does not carry it back is treated as a failed insert
	if _, ok := result.InsertedID.(primitive.ObjectID); !ok {
		return nil, errors.NewDatabaseError(fmt.Sprintf("Failed to Create new Booking: %v", result.InsertedID), nil)
	}
	return booking, nil
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.GetAll")
	defer span.End()

	cursor, err := store.bookings.Find(ctx, bson.D{{}})
	if err != nil {
		return nil, errors.NewDatabaseError("Error reading Booking entries from DB: "+err.Error(), err)
	}
	defer cursor.Close(ctx)

	bookings := []*domain.Booking{}
	for cursor.Next(ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, errors.NewDatabaseError("Error reading Booking entries from DB: "+err.Error(), err)
		}
		bookings = append(bookings, &booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.NewDatabaseError("Error reading Booking entries from DB: "+err.Error(), err)
	}
	return bookings, nil
}

func (store *BookingMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Get")
	defer span.End()

	var booking domain.Booking
	err := store.bookings.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFound()
	}
	if err != nil {
		return nil, errors.NewDatabaseError("Failed reading Booking from DB: "+err.Error(), err)
	}
	return &booking, nil
}

func (store *BookingMongoDBStore) Update(ctx context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Update")
	defer span.End()

	_, err := store.bookings.UpdateOne(ctx, bson.M{"_id": id}, fields.SetDocument())
	if err != nil {
		store.logger.Errorf("update booking %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Update Booking: "+err.Error(), err)
	}
	return nil
}

func (store *BookingMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Delete")
	defer span.End()

	result, err := store.bookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		store.logger.Errorf("delete booking %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Delete Booking: "+err.Error(), err)
	}
	switch {
	case result.DeletedCount >= 1:
		return nil
	case result.DeletedCount == 0:
		return errors.NewNotFound()
	default:
		return errors.NewInternalError("negative delete count")
	}
}
