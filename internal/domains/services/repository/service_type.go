package repository

//go:generate go run go.uber.org/mock/mockgen -source=./service_type.go -destination=../mocks/service_type_mock.go -package=mocks

import (
	"context"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/services/model"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type ServiceType interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type serviceTypeRepositoryImpl struct {
	gRepo.Repository[model.ServiceType]
	db   *postgres.Connection
	otel otel.Otel
}

func NewServiceType(db *postgres.Connection, otel otel.Otel) ServiceType {
	return &serviceTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceType](model.ServiceTypeEntityName, model.ServiceTypeTableName, "id", db, otel),
		db:         db,
		otel:       otel,
	}
}
