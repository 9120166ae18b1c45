package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SitterStore interface {
	Insert(ctx context.Context, sitter *Sitter) (*Sitter, error)
	GetAll(ctx context.Context) ([]*Sitter, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Sitter, error)
	Update(ctx context.Context, id primitive.ObjectID, fields *FieldSet) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
