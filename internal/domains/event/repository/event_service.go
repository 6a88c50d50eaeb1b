package repository

//go:generate go run go.uber.org/mock/mockgen -source=./event_service.go -destination=../mocks/event_service_mock.go -package=mocks

import (
	"context"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/event/model"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type EventService interface {
	Insert(ctx context.Context, model model.EventService) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EventService, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EventService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type eventServiceRepositoryImpl struct {
	gRepo.Repository[model.EventService]
	db   *postgres.Connection
	otel otel.Otel
}

func NewEventService(db *postgres.Connection, otel otel.Otel) EventService {
	return &eventServiceRepositoryImpl{
		Repository: gRepo.NewRepository[model.EventService](model.EventServiceEntityName, model.EventServiceTableName, model.EventServiceFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
