package application

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
)

type SitterService struct {
	store    domain.SitterStore
	validate *validator.Validate
	tracer   trace.Tracer
	logger   *logrus.Logger
}

func NewSitterService(store domain.SitterStore, tracer trace.Tracer, logger *logrus.Logger) *SitterService {
	return &SitterService{
		store:    store,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

func (service *SitterService) Create(ctx context.Context, request *domain.SitterRequest) (*domain.SitterResponse, error) {
	ctx, span := service.tracer.Start(ctx, "SitterService.Create")
	defer span.End()

	if err := service.validate.Struct(request); err != nil {
		return nil, invalidRequest(err)
	}
	sitter, err := domain.NewSitterFromRequest(request)
	if err != nil {
		return nil, err
	}
	created, err := service.store.Insert(ctx, sitter)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (service *SitterService) GetAll(ctx context.Context) ([]*domain.SitterResponse, error) {
	ctx, span := service.tracer.Start(ctx, "SitterService.GetAll")
	defer span.End()

	sitters, err := service.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := []*domain.SitterResponse{}
	for _, sitter := range sitters {
		responses = append(responses, sitter.ToResponse())
	}
	return responses, nil
}

func (service *SitterService) Get(ctx context.Context, id string) (*domain.SitterResponse, error) {
	ctx, span := service.tracer.Start(ctx, "SitterService.Get")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return nil, err
	}
	sitter, err := service.store.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return sitter.ToResponse(), nil
}

func (service *SitterService) Update(ctx context.Context, id string, update *domain.SitterUpdateRequest) (string, error) {
	ctx, span := service.tracer.Start(ctx, "SitterService.Update")
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

func (service *SitterService) Delete(ctx context.Context, id string) (string, error) {
	ctx, span := service.tracer.Start(ctx, "SitterService.Delete")
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
