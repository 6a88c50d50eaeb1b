package repository

//go:generate go run go.uber.org/mock/mockgen -source=./event_type.go -destination=../mocks/event_type_mock.go -package=mocks

import (
	"context"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/event/model"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type EventType interface {
	Insert(ctx context.Context, model model.EventType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EventType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EventType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type eventTypeRepositoryImpl struct {
	gRepo.Repository[model.EventType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewEventType(db *postgres.Connection, otel otel.Otel) EventType {
	return &eventTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.EventType](model.EventTypeEntityName, model.EventTypeTableName, model.EventTypeFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
