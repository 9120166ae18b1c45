package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, fields *FieldSet) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
