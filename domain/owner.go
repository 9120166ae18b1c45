package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner is the persisted form, with database-native types. The request,
// update and response forms below keep the API surface decoupled from the
// stored shape.
type Owner struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone" json:"phone"`
	Address string             `bson:"address" json:"address"`
}

type OwnerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=7"`
	Address string `json:"address" validate:"required,min=5"`
}

type OwnerResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OwnerUpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// NewOwnerFromRequest assigns a fresh id and copies the validated fields.
func NewOwnerFromRequest(request *OwnerRequest) (*Owner, error) {
	return &Owner{
		ID:      primitive.NewObjectID(),
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Address: request.Address,
	}, nil
}

// ToResponse flattens the stored form into plain strings. Total, the read
// path has no failure mode.
func (owner *Owner) ToResponse() *OwnerResponse {
	return &OwnerResponse{
		ID:      EncodeID(owner.ID),
		Name:    owner.Name,
		Email:   owner.Email,
		Phone:   owner.Phone,
		Address: owner.Address,
	}
}

// UpdateFields builds the merge set for the supplied fields.
func (update *OwnerUpdateRequest) UpdateFields() (*FieldSet, error) {
	fields := NewFieldSet()
	if update.Name != nil {
		fields.Set("name", *update.Name)
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
