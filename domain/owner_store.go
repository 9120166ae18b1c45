package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OwnerStore interface {
	Insert(ctx context.Context, owner *Owner) (*Owner, error)
	GetAll(ctx context.Context) ([]*Owner, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Owner, error)
	Update(ctx context.Context, id primitive.ObjectID, fields *FieldSet) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
