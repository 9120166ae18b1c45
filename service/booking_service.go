package application

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
)

type BookingService struct {
	store          domain.BookingStore
	owners         domain.OwnerStore
	validate       *validator.Validate
	checkOwnerRefs bool
	tracer         trace.Tracer
	logger         *logrus.Logger
}

func NewBookingService(store domain.BookingStore, owners domain.OwnerStore, checkOwnerRefs bool, tracer trace.Tracer, logger *logrus.Logger) *BookingService {
	return &BookingService{
		store:          store,
		owners:         owners,
		validate:       validator.New(),
		checkOwnerRefs: checkOwnerRefs,
		tracer:         tracer,
		logger:         logger,
	}
}

func (service *BookingService) Create(ctx context.Context, request *domain.BookingRequest) (*domain.BookingResponse, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Create")
	defer span.End()

	if err := service.validate.Struct(request); err != nil {
		return nil, invalidRequest(err)
	}
	booking, err := domain.NewBookingFromRequest(request)
	if err != nil {
		return nil, err
	}
	if err := service.ownerMustExist(ctx, booking.Owner); err != nil {
		return nil, err
	}
	created, err := service.store.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (service *BookingService) GetAll(ctx context.Context) ([]*domain.BookingResponse, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetAll")
	defer span.End()

	bookings, err := service.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := []*domain.BookingResponse{}
	for _, booking := range bookings {
		responses = append(responses, booking.ToResponse())
	}
	return responses, nil
}

func (service *BookingService) Get(ctx context.Context, id string) (*domain.BookingResponse, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Get")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return nil, err
	}
	booking, err := service.store.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return booking.ToResponse(), nil
}

func (service *BookingService) Update(ctx context.Context, id string, update *domain.BookingUpdateRequest) (string, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Update")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return "", err
	}
	fields, err := update.UpdateFields()
	if err != nil {
		return "", err
	}
	if ownerID, ok := fields.Get("owner"); ok {
		if err := service.ownerMustExist(ctx, ownerID.(primitive.ObjectID)); err != nil {
			return "", err
		}
	}
	if err := service.store.Update(ctx, objectID, fields); err != nil {
		return "", err
	}
	return domain.EncodeID(objectID), nil
}

func (service *BookingService) Delete(ctx context.Context, id string) (string, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Delete")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return "", err
	}
	if err := service.store.Delete(ctx, objectID); err != nil {
		return "", err
	}
	return domain.EncodeID(objectID), nil
}

func (service *BookingService) ownerMustExist(ctx context.Context, ownerID primitive.ObjectID) error {
	if !service.checkOwnerRefs {
		return nil
	}
	if _, err := service.owners.Get(ctx, ownerID); err != nil {
		service.logger.Warnf("booking write rejected, owner %s: %v", ownerID.Hex(), err)
		return err
	}
	return nil
}
