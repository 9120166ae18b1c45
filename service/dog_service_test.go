package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalking_service/domain"
	"dogwalking_service/errors"
)

func TestDogCreate(t *testing.T) {
	store := newFakeDogStore()
	service := NewDogService(store, newFakeOwnerStore(), false, testTracer(), testLogger())

	response, err := service.Create(context.Background(), &domain.DogRequest{
		Owner: domain.EncodeID(primitive.NewObjectID()),
		Name:  "Rex",
	})
	require.NoError(t, err)
	assert.Len(t, response.ID, 24)
	assert.Equal(t, "Rex", response.Name)
	assert.Equal(t, 1, store.insertCalls)
}

func TestDogCreateRejectsBadOwnerRef(t *testing.T) {
	store := newFakeDogStore()
	service := NewDogService(store, newFakeOwnerStore(), false, testTracer(), testLogger())

	_, err := service.Create(context.Background(), &domain.DogRequest{Owner: "not-hex", Name: "Rex"})
	require.Error(t, err)
	assert.Equal(t, errors.KindDatabaseError, errors.KindOf(err))
	assert.Equal(t, 0, store.insertCalls)
}

func TestDogCreateWithOwnerCheckEnabled(t *testing.T) {
	owners := newFakeOwnerStore()
	store := newFakeDogStore()
	service := NewDogService(store, owners, true, testTracer(), testLogger())

	_, err := service.Create(context.Background(), &domain.DogRequest{
		Owner: domain.EncodeID(primitive.NewObjectID()),
		Name:  "Rex",
	})
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	assert.Equal(t, 0, store.insertCalls)
}

func TestDogUpdateWithoutFieldsNeverHitsStore(t *testing.T) {
	store := newFakeDogStore()
	service := NewDogService(store, newFakeOwnerStore(), false, testTracer(), testLogger())

	_, err := service.Update(context.Background(), "65b3a1f2e4b0c83d94f1a2b3", &domain.DogUpdateRequest{})
	require.Error(t, err)
	assert.Equal(t, errors.KindParseError, errors.KindOf(err))
	assert.Equal(t, 0, store.updateCalls)
}
