package repository

//go:generate go run go.uber.org/mock/mockgen -source=./variation.go -destination=../mocks/variation_mock.go -package=mocks

import (
	"context"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/services/model"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type Variation interface {
	Insert(ctx context.Context, model model.Variation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Variation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Variation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type variationRepositoryImpl struct {
	gRepo.Repository[model.Variation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewVariation(db *postgres.Connection, otel otel.Otel) Variation {
	return &variationRepositoryImpl{
		Repository: gRepo.NewRepository[model.Variation](model.VariationEntityName, model.VariationTableName, model.VariationFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
