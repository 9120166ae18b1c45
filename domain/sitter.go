package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sitter struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Firstname string             `bson:"firstname" json:"firstname"`
	Lastname  string             `bson:"lastname" json:"lastname"`
	Gender    string             `bson:"gender" json:"gender"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
}

type SitterRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=7"`
	Address   string `json:"address" validate:"required"`
}

type SitterResponse struct {
	ID        string `json:"_id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type SitterUpdateRequest struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func NewSitterFromRequest(request *SitterRequest) (*Sitter, error) {
	return &Sitter{
		ID:        primitive.NewObjectID(),
		Firstname: request.Firstname,
		Lastname:  request.Lastname,
		Gender:    request.Gender,
		Email:     request.Email,
		Phone:     request.Phone,
		Address:   request.Address,
	}, nil
}

func (sitter *Sitter) ToResponse() *SitterResponse {
	return &SitterResponse{
		ID:        EncodeID(sitter.ID),
		Firstname: sitter.Firstname,
		Lastname:  sitter.Lastname,
		Gender:    sitter.Gender,
		Email:     sitter.Email,
		Phone:     sitter.Phone,
		Address:   sitter.Address,
	}
}

func (update *SitterUpdateRequest) UpdateFields() (*FieldSet, error) {
	fields := NewFieldSet()
	if update.Firstname != nil {
		fields.Set("firstname", *update.Firstname)
	}
	if update.Lastname != nil {
		fields.Set("lastname", *update.Lastname)
	}
	if update.Gender != nil {
		fields.Set("gender", *update.Gender)
	}
	if update.Email != nil {
		fields.Set("email", *update.Email)
	}
	if update.Phone != nil {
		fields.Set("phone", *update.Phone)
	}
	if update.Address != nil {
		fields.Set("address", *update.Address)
	}
	return fields.Build()
}
