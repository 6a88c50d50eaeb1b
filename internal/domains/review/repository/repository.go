package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/review/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	GetAllByRoom(ctx context.Context, roomID string, params gDto.QueryParams) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountByRoom(ctx context.Context, roomID string) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllByRoom lists the reviews left on any event held in the room, newest
// first. Reviews reach rooms through their event, so this joins instead of
// going through the generic filter builder.
func (repo *repositoryImpl) GetAllByRoom(ctx context.Context, roomID string, params gDto.QueryParams) ([]model.Review, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.GetAllByRoom")
	defer scope.End()

	query := `SELECT r.* FROM reviews r
		JOIN events e ON e.id = r.event_id
		WHERE e.room_id = $1
		ORDER BY r.created_at DESC`
	args := []any{roomID}

	if params.Limit > 0 {
		query += " LIMIT $2"
		args = append(args, params.Limit)

		if params.Page > 0 {
			query += " OFFSET $3"
			args = append(args, (params.Page-1)*params.Limit)
		}
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	reviews := make([]model.Review, 0)

	err := repo.db.Read.SelectContext(ctx, &reviews, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get reviews by room (%s): %w", model.EntityName, err)
	}

	return reviews, nil
}

// CountByRoom counts the reviews left on the room's events.
func (repo *repositoryImpl) CountByRoom(ctx context.Context, roomID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.CountByRoom")
	defer scope.End()

	query := `SELECT COUNT(r.id) FROM reviews r
		JOIN events e ON e.id = r.event_id
		WHERE e.room_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	err := repo.db.Read.GetContext(ctx, &total, query, roomID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count reviews by room (%s): %w", model.EntityName, err)
	}

	return total, nil
}
