package application

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
)

// DogService orchestrates dog writes and reads. When checkOwnerRefs is on,
// a write that carries an owner reference is rejected unless the owner
// exists; off preserves the unchecked-reference behavior.
type DogService struct {
	store          domain.DogStore
	owners         domain.OwnerStore
	validate       *validator.Validate
	checkOwnerRefs bool
	tracer         trace.Tracer
	logger         *logrus.Logger
}

func NewDogService(store domain.DogStore, owners domain.OwnerStore, checkOwnerRefs bool, tracer trace.Tracer, logger *logrus.Logger) *DogService {
	return &DogService{
		store:          store,
		owners:         owners,
		validate:       validator.New(),
		checkOwnerRefs: checkOwnerRefs,
		tracer:         tracer,
		logger:         logger,
	}
}

func (service *DogService) Create(ctx context.Context, request *domain.DogRequest) (*domain.DogResponse, error) {
	ctx, span := service.tracer.Start(ctx, "DogService.Create")
	defer span.End()

	if err := service.validate.Struct(request); err != nil {
		return nil, invalidRequest(err)
	}
	dog, err := domain.NewDogFromRequest(request)
	if err != nil {
		return nil, err
	}
	if err := service.ownerMustExist(ctx, dog.Owner); err != nil {
		return nil, err
	}
	created, err := service.store.Insert(ctx, dog)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (service *DogService) GetAll(ctx context.Context) ([]*domain.DogResponse, error) {
	ctx, span := service.tracer.Start(ctx, "DogService.GetAll")
	defer span.End()

	dogs, err := service.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := []*domain.DogResponse{}
	for _, dog := range dogs {
		responses = append(responses, dog.ToResponse())
	}
	return responses, nil
}

func (service *DogService) Get(ctx context.Context, id string) (*domain.DogResponse, error) {
	ctx, span := service.tracer.Start(ctx, "DogService.Get")
	defer span.End()

	objectID, err := domain.DecodeID(id)
	if err != nil {
		return nil, err
	}
	dog, err := service.store.Get(ctx, objectID)
	if err != nil {
		return nil, err
	}
	return dog.ToResponse(), nil
}

func (service *DogService) Update(ctx context.Context, id string, update *domain.DogUpdateRequest) (string, error) {
	ctx, span := service.tracer.Start(ctx, "DogService.Update")
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

func (service *DogService) Delete(ctx context.Context, id string) (string, error) {
	ctx, span := service.tracer.Start(ctx, "DogService.Delete")
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

func (service *DogService) ownerMustExist(ctx context.Context, ownerID primitive.ObjectID) error {
	if !service.checkOwnerRefs {
		return nil
	}
	if _, err := service.owners.Get(ctx, ownerID); err != nil {
		service.logger.Warnf("dog write rejected, owner %s: %v", ownerID.Hex(), err)
		return err
	}
	return nil
}
