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

const OWNER_COLLECTION = "owner"

type OwnerMongoDBStore struct {
	owners *mongo.Collection
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewOwnerMongoDBStore(client *mongo.Client, tracer trace.Tracer, logger *logrus.Logger) domain.OwnerStore {
	owners := client.Database(DATABASE).Collection(OWNER_COLLECTION)
	return &OwnerMongoDBStore{
		owners: owners,
		tracer: tracer,
		logger: logger,
	}
}

func (store *OwnerMongoDBStore) Insert(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	ctx, span := store.tracer.Start(ctx, "OwnerMongoDBStore.Insert")
	defer span.End()

	result, err := store.owners.InsertOne(ctx, owner)
	if err != nil {
		store.logger.Errorf("insert owner: %v", err)
		return nil, errors.NewDatabaseError("Failed to Create new Owner: "+err.Error(), err)
	}
	if _, ok := result.InsertedID.(primitive.ObjectID); !ok {
		return nil, errors.NewDatabaseError(fmt.Sprintf("Failed to Create new Owner: %v", result.InsertedID), nil)
	}
	return owner, nil
}

func (store *OwnerMongoDBStore) GetAll(ctx context.Context) ([]*domain.Owner, error) {
	ctx, span := store.tracer.Start(ctx, "OwnerMongoDBStore.GetAll")
	defer span.End()

	cursor, err := store.owners.Find(ctx, bson.D{{}})
	if err != nil {
		return nil, errors.NewDatabaseError("Error reading Owner entries from DB: "+err.Error(), err)
	}
	defer cursor.Close(ctx)

	owners := []*domain.Owner{}
	for cursor.Next(ctx) {
		var owner domain.Owner
		if err := cursor.Decode(&owner); err != nil {
			return nil, errors.NewDatabaseError("Error reading Owner entries from DB: "+err.Error(), err)
		}
		owners = append(owners, &owner)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.NewDatabaseError("Error reading Owner entries from DB: "+err.Error(), err)
	}
	return owners, nil
}

func (store *OwnerMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Owner, error) {
	ctx, span := store.tracer.Start(ctx, "OwnerMongoDBStore.Get")
	defer span.End()

	var owner domain.Owner
	err := store.owners.FindOne(ctx, bson.M{"_id": id}).Decode(&owner)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFound()
	}
	if err != nil {
		return nil, errors.NewDatabaseError("Failed reading Owner from DB: "+err.Error(), err)
	}
	return &owner, nil
}

func (store *OwnerMongoDBStore) Update(ctx context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	ctx, span := store.tracer.Start(ctx, "OwnerMongoDBStore.Update")
	defer span.End()

	// zero matched documents still counts as success; no existence check
	// is made at this layer
	_, err := store.owners.UpdateOne(ctx, bson.M{"_id": id}, fields.SetDocument())
	if err != nil {
		store.logger.Errorf("update owner %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Update Owner: "+err.Error(), err)
	}
	return nil
}

func (store *OwnerMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "OwnerMongoDBStore.Delete")
	defer span.End()

	result, err := store.owners.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		store.logger.Errorf("delete owner %s: %v", id.Hex(), err)
		return errors.NewDatabaseError("Failed to Delete Owner: "+err.Error(), err)
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
