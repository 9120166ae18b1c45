package application

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

// In-memory stores standing in for the mongo gateways. They return the
// same error taxonomy the real stores do, so the services under test see
// identical outcomes.

type fakeOwnerStore struct {
	owners      map[primitive.ObjectID]*domain.Owner
	insertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeOwnerStore() *fakeOwnerStore {
	return &fakeOwnerStore{owners: map[primitive.ObjectID]*domain.Owner{}}
}

func (store *fakeOwnerStore) Insert(_ context.Context, owner *domain.Owner) (*domain.Owner, error) {
	store.insertCalls++
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
	sitters     map[primitive.ObjectID]*domain.Sitter
	insertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeSitterStore() *fakeSitterStore {
	return &fakeSitterStore{sitters: map[primitive.ObjectID]*domain.Sitter{}}
}

func (store *fakeSitterStore) Insert(_ context.Context, sitter *domain.Sitter) (*domain.Sitter, error) {
	store.insertCalls++
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
	store.updateCalls++
	return nil
}

func (store *fakeSitterStore) Delete(_ context.Context, id primitive.ObjectID) error {
	store.deleteCalls++
	if _, ok := store.sitters[id]; !ok {
		return errors.NewNotFound()
	}
	delete(store.sitters, id)
	return nil
}

type fakeBookingStore struct {
	bookings    map[primitive.ObjectID]*domain.Booking
	insertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[primitive.ObjectID]*domain.Booking{}}
}

func (store *fakeBookingStore) Insert(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	store.insertCalls++
	store.bookings[booking.ID] = booking
	return booking, nil
}

func (store *fakeBookingStore) GetAll(context.Context) ([]*domain.Booking, error) {
	all := []*domain.Booking{}
	for _, booking := range store.bookings {
		all = append(all, booking)
	}
	return all, nil
}

func (store *fakeBookingStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	booking, ok := store.bookings[id]
	if !ok {
		return nil, errors.NewNotFound()
	}
	return booking, nil
}

func (store *fakeBookingStore) Update(_ context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	store.updateCalls++
	return nil
}

func (store *fakeBookingStore) Delete(_ context.Context, id primitive.ObjectID) error {
	store.deleteCalls++
	if _, ok := store.bookings[id]; !ok {
		return errors.NewNotFound()
	}
	delete(store.bookings, id)
	return nil
}

type fakeDogStore struct {
	dogs        map[primitive.ObjectID]*domain.Dog
	insertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeDogStore() *fakeDogStore {
	return &fakeDogStore{dogs: map[primitive.ObjectID]*domain.Dog{}}
}

func (store *fakeDogStore) Insert(_ context.Context, dog *domain.Dog) (*domain.Dog, error) {
	store.insertCalls++
	store.dogs[dog.ID] = dog
	return dog, nil
}

func (store *fakeDogStore) GetAll(context.Context) ([]*domain.Dog, error) {
	all := []*domain.Dog{}
	for _, dog := range store.dogs {
		all = append(all, dog)
	}
	return all, nil
}

func (store *fakeDogStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Dog, error) {
	dog, ok := store.dogs[id]
	if !ok {
		return nil, errors.NewNotFound()
	}
	return dog, nil
}

func (store *fakeDogStore) Update(_ context.Context, id primitive.ObjectID, fields *domain.FieldSet) error {
	store.updateCalls++
	return nil
}

func (store *fakeDogStore) Delete(_ context.Context, id primitive.ObjectID) error {
	store.deleteCalls++
	if _, ok := store.dogs[id]; !ok {
		return errors.NewNotFound()
	}
	delete(store.dogs, id)
	return nil
}
