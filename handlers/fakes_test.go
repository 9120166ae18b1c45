package handlers

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
	"dogwalking_service/errors"
)

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeOwnerStore struct {
	owners      map[primitive.ObjectID]*domain.Owner
	updateCalls int
	deleteCalls int
}

func newFakeOwnerStore() *fakeOwnerStore {
	return &fakeOwnerStore{owners: map[primitive.ObjectID]*domain.Owner{}}
}

func (store *fakeOwnerStore) Insert(_ context.Context, owner *domain.Owner) (*domain.Owner, error) {
	store.owners[owner.ID] = owner
	return owner, nil
}

func (store *fakeOwnerStore) GetAll(context.Context) ([]*domain.Owner, error) {
	all := []*domain.Owner{}
	for _, owner := range store.owners {
		all = append(all, owner)
	}
	return all, nil
}

func (store *fakeOwnerStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Owner, error) {
	owner, ok := store.owners[id]
	if !ok {
		return nil, errors.NewNotFound()
	}
	return owner, nil
}

func (store *fakeOwnerStore) Update(_ context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	store.updateCalls++
	return nil
}

func (store *fakeOwnerStore) Delete(_ context.Context, id primitive.ObjectID) error {
	store.deleteCalls++
	if _, ok := store.owners[id]; !ok {
		return errors.NewNotFound()
	}
	delete(store.owners, id)
	return nil
}

type fakeSitterStore struct {
	sitters map[primitive.ObjectID]*domain.Sitter
}

func newFakeSitterStore() *fakeSitterStore {
	return &fakeSitterStore{sitters: map[primitive.ObjectID]*domain.Sitter{}}
}

func (store *fakeSitterStore) Insert(_ context.Context, sitter *domain.Sitter) (*domain.Sitter, error) {
	store.sitters[sitter.ID] = sitter
	return sitter, nil
}

func (store *fakeSitterStore) GetAll(context.Context) ([]*domain.Sitter, error) {
	all := []*domain.Sitter{}
	for _, sitter := range store.sitters {
		all = append(all, sitter)
	}
	return all, nil
}

func (store *fakeSitterStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Sitter, error) {
	sitter, ok := store.sitters[id]
	if !ok {
		return nil, errors.NewNotFound()
	}
	return sitter, nil
}

func (store *fakeSitterStore) Update(_ context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	return nil
}

func (store *fakeSitterStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := store.sitters[id]; !ok {
		return errors.NewNotFound()
	}
	delete(store.sitters, id)
	return nil
}
