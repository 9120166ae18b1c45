package domain

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalking_service/errors"
)

type Dog struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Owner primitive.ObjectID `bson:"owner" json:"owner"`
	Name  string             `bson:"name" json:"name"`
	Age   *int               `bson:"age,omitempty" json:"age,omitempty"`
	Breed *string            `bson:"breed,omitempty" json:"breed,omitempty"`
}

type DogRequest struct {
	Owner string  `json:"owner" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Age   *int    `json:"age,omitempty"`
	Breed *string `json:"breed,omitempty"`
}

type DogResponse struct {
	ID    string  `json:"_id"`
	Owner string  `json:"owner"`
	Name  string  `json:"name"`
	Age   *int    `json:"age,omitempty"`
	Breed *string `json:"breed,omitempty"`
}

type DogUpdateRequest struct {
	Owner *string `json:"owner,omitempty"`
	Name  *string `json:"name,omitempty"`
	Age   *int    `json:"age,omitempty"`
	Breed *string `json:"breed,omitempty"`
}

// NewDogFromRequest assigns a fresh id and decodes the embedded owner
// reference. The owner is not checked against the owner collection here;
// that is the service layer's configurable concern.
func NewDogFromRequest(request *DogRequest) (*Dog, error) {
	ownerID, err := DecodeID(request.Owner)
	if err != nil {
		return nil, errors.NewDatabaseError("Failed to parse owner ID: "+request.Owner, err).
			ForField("owner", request.Owner)
	}
	if request.Age != nil {
		if err := validAge(*request.Age); err != nil {
			return nil, err
		}
	}
	return &Dog{
		ID:    primitive.NewObjectID(),
		Owner: ownerID,
		Name:  request.Name,
		Age:   request.Age,
		Breed: request.Breed,
	}, nil
}

func (dog *Dog) ToResponse() *DogResponse {
	return &DogResponse{
		ID:    EncodeID(dog.ID),
		Owner: EncodeID(dog.Owner),
		Name:  dog.Name,
		Age:   dog.Age,
		Breed: dog.Breed,
	}
}

// UpdateFields builds the merge set for the supplied fields. A supplied
// owner reference must decode; an optional field can never be unset once
// present.
func (update *DogUpdateRequest) UpdateFields() (*FieldSet, error) {
	fields := NewFieldSet()
	if update.Owner != nil {
		ownerID, err := DecodeID(*update.Owner)
		if err != nil {
			return nil, errors.NewDatabaseError("Update Failed: invalid owner ID: "+*update.Owner, err).
				ForField("owner", *update.Owner)
		}
		fields.Set("owner", ownerID)
	}
	if update.Name != nil {
		fields.Set("name", *update.Name)
	}
	if update.Age != nil {
		if err := validAge(*update.Age); err != nil {
			return nil, err
		}
		fields.Set("age", *update.Age)
	}
	if update.Breed != nil {
		fields.Set("breed", *update.Breed)
	}
	return fields.Build()
}

// The stored age is a single byte wide; values outside 0..255 never reach
// the store.
func validAge(age int) error {
	if age < 0 || age > 255 {
		return errors.NewParseError("Invalid value for field age").
			ForField("age", strconv.Itoa(age))
	}
	return nil
}
