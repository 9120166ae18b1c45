package application

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
)

type OwnerService struct {
	store    domain.OwnerStore
	validate *validator.Validate
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewOwnerService(store domain.OwnerStore, tracer trace.Tracer, logger *logrus.Logger) *OwnerService {
	return &OwnerService{
		store:    store,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

func (service *OwnerService) Create(ctx context.Context, request *domain.OwnerRequest) (*domain.OwnerResponse, error) {
	ctx, span := service.tracer.Start(ctx, "OwnerService.Create")
	defer span.End()

	if err := service.validate.Struct(request); err != nil {
		return nil, invalidRequest(err)
	}
	owner, err := domain.NewOwnerFromRequest(request)
	if err != nil {
		return nil, err
	}
	created, err := service.store.Insert(ctx, owner)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (service *OwnerService) GetAll(ctx context.Context) ([]*domain.OwnerResponse, error) {
	ctx, span := service.tracer.Start(ctx, "OwnerService.GetAll")
	defer span.End()

	owners, err := service.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := []*domain.OwnerResponse{}
	for _, owner := range owners {
		responses = append(responses, owner.ToResponse())
	}
	return responses, nil
}

func (service *OwnerService) Get(ctx context.Context, id string) (*domain.OwnerResponse, error) {
	ctx, span := service.tracer.Start(ctx, "OwnerService.Get")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return nil, err
	}
	owner, err := service.store.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return owner.ToResponse(), nil
}

func (service *OwnerService) Update(ctx context.Context, id string, update *domain.OwnerUpdateRequest) (string, error) {
	ctx, span := service.tracer.Start(ctx, "OwnerService.Update")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return "", err
	}
	fields, err := update.UpdateFields()
	if err != nil {
		return "", err
	}
	if err := service.store.Update(ctx, objectID, fields); err != nil {
		return "", err
	}
	return domain.EncodeID(objectID), nil
}

func (service *OwnerService) Delete(ctx context.Context, id string) (string, error) {
	ctx, span := service.tracer.Start(ctx, "OwnerService.Delete")
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
