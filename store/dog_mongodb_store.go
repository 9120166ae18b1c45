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

const DOG_COLLECTION = "dog"

type DogMongoDBStore struct {
	dogs   *mongo.Collection
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewDogMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.DogStore {
	dogs := client.Database(DATABASE).Collection(DOG_COLLECTION)
	return &DogMongoDBStore{
		dogs:   dogs,
		tracer: tracer,
		logger: logger,
	}
}

func (store *DogMongoDBStore) Insert(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	ctx, span := store.tracer.Start(ctx, "DogMongoDBStore.Insert")
	defer span.End()

	result, err := store.dogs.InsertOne(ctx, dog)
	if err != nil {
		store.logger.Errorf("insert dog: %v", err)
		return nil, errors.NewDatabaseError("Failed to Create new Dog: "+err.Error(), err)
	}
	if _, ok := result.InsertedID.(primitive.ObjectID); !ok {
		return nil, errors.NewDatabaseError(fmt.Sprintf("Failed to Create new Dog: %v", result.InsertedID), nil)
	}
	return dog, nil
}

func (store *DogMongoDBStore) GetAll(ctx context.Context) ([]*domain.Dog, error) {
	ctx, span := store.tracer.Start(ctx, "DogMongoDBStore.GetAll")
	defer span.End()

	cursor, err := store.dogs.Find(ctx, bson.D{{}})
	if err != nil {
		return nil, errors.NewDatabaseError("Error reading Dog entries from DB: "+err.Error(), err)
	}
	defer cursor.Close(ctx)

	dogs := []*domain.Dog{}
	for cursor.Next(ctx) {
		var dog domain.Dog
		if err := cursor.Decode(&dog); err != nil {
			return nil, errors.NewDatabaseError("Error reading Dog entries from DB: "+err.Error(), err)
		}
		dogs = append(dogs, &dog)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.NewDatabaseError("Error reading Dog entries from DB: "+err.Error(), err)
	}
	return dogs, nil
}

func (store *DogMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Dog, error) {
	ctx, span := store.tracer.Start(ctx, "DogMongoDBStore.Get")
	defer span.End()

	var dog domain.Dog
	err := store.dogs.FindOne(ctx, bson.M{"_id": id}).Decode(&dog)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFound()
	}
	if err != nil {
		return nil, errors.NewDatabaseError("Failed reading Dog from DB: "+err.Error(), err)
	}
	return &dog, nil
}

func (store *DogMongoDBStore) Update(ctx context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	ctx, span := store.tracer.Start(ctx, "DogMongoDBStore.Update")
	defer span.End()

	_, err := store.dogs.UpdateOne(ctx, bson.M{"_id": id}, fields.SetDocument())
	if err != nil {
		store.logger.Errorf("update dog %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Update Dog: "+err.Error(), err)
	}
	return nil
}

func (store *DogMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "DogMongoDBStore.Delete")
	defer span.End()

	result, err := store.dogs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		store.logger.Errorf("delete dog %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Delete Dog: "+err.Error(), err)
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
