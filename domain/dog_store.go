package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DogStore interface {
	Insert(ctx context.Context, dog *Dog) (*Dog, error)
	GetAll(ctx context.Context) ([]*Dog, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Dog, error)
	Update(ctx context.Context, id primitive.ObjectID, fields *FieldSet) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
