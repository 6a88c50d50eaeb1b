package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/room/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	RatingSummary(ctx context.Context, roomID string) (model.RatingSummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RatingSummary aggregates review count and average rating over the reviews
// left on the room's events. The average is rounded to one decimal and zero
// when the room has no reviews.
func (repo *repositoryImpl) RatingSummary(ctx context.Context, roomID string) (model.RatingSummary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RatingSummary")
	defer scope.End()

	query := `SELECT COUNT(r.id) AS review_count,
		COALESCE(ROUND(AVG(r.rating)::numeric, 1), 0)::float8 AS average_rating
		FROM reviews r
		JOIN events e ON e.id = r.event_id
		WHERE e.room_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var summary model.RatingSummary

	err := repo.db.Read.GetContext(ctx, &summary, query, roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return summary, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to aggregate room ratings (%s): %w", model.EntityName, err)
	}

	return summary, nil
}
