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

const SITTER_COLLECTION = "sitter"

type SitterMongoDBStore struct {
	sitters *mongo.Collection
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewSitterMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.SitterStore {
	sitters := client.Database(DATABASE).Collection(SITTER_COLLECTION)
	return &SitterMongoDBStore{
		sitters: sitters,
		tracer:  tracer,
		logger:  logger,
	}
}

func (store *SitterMongoDBStore) Insert(ctx context.Context, sitter *domain.Sitter) (*domain.Sitter, error) {
	ctx, span := store.tracer.Start(ctx, "SitterMongoDBStore.Insert")
	defer span.End()

	result, err := store.sitters.InsertOne(ctx, sitter)
	if err != nil {
		store.logger.Errorf("insert sitter: %v", err)
		return nil, errors.NewDatabaseError("Failed to Create new Sitter: "+err.Error(), err)
	}
	if _, ok := result.InsertedID.(primitive.ObjectID); !ok {
		return nil, errors.NewDatabaseError(fmt.Sprintf("Failed to Create new Sitter: %v", result.InsertedID), nil)
	}
	return sitter, nil
}

func (store *SitterMongoDBStore) GetAll(ctx context.Context) ([]*domain.Sitter, error) {
	ctx, span := store.tracer.Start(ctx, "SitterMongoDBStore.GetAll")
	defer span.End()

	cursor, err := store.sitters.Find(ctx, bson.D{{}})
	if err != nil {
		return nil, errors.NewDatabaseError("Error reading Sitter entries from DB: "+err.Error(), err)
	}
	defer cursor.Close(ctx)

	sitters := []*domain.Sitter{}
	for cursor.Next(ctx) {
		var sitter domain.Sitter
		if err := cursor.Decode(&sitter); err != nil {
			return nil, errors.NewDatabaseError("Error reading Sitter entries from DB: "+err.Error(), err)
		}
		sitters = append(sitters, &sitter)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.NewDatabaseError("Error reading Sitter entries from DB: "+err.Error(), err)
	}
	return sitters, nil
}

func (store *SitterMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Sitter, error) {
	ctx, span := store.tracer.Start(ctx, "SitterMongoDBStore.Get")
	defer span.End()

	var sitter domain.Sitter
	err := store.sitters.FindOne(ctx, bson.M{"_id": id}).Decode(&sitter)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFound()
	}
	if err != nil {
		return nil, errors.NewDatabaseError("Failed reading Sitter from DB: "+err.Error(), err)
	}
	return &sitter, nil
}

func (store *SitterMongoDBStore) Update(ctx context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	ctx, span := store.tracer.Start(ctx, "SitterMongoDBStore.Update")
	defer span.End()

	_, err := store.sitters.UpdateOne(ctx, bson.M{"_id": id}, fields.SetDocument())
	if err != nil {
		store.logger.Errorf("update sitter %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Update Sitter: "+err.Error(), err)
	}
	return nil
}

func (store *SitterMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "SitterMongoDBStore.Delete")
	defer span.End()

	result, err := store.sitters.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		store.logger.Errorf("delete sitter %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Delete Sitter: "+err.Error(), err)
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
