package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/services/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

type Service interface {
	Insert(ctx context.Context, model model.Service) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	VariationCounts(ctx context.Context, serviceIDs []string) (map[string]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Service {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// VariationCounts returns the number of variations per service for the given
// service ids. Services without variations are absent from the result.
func (repo *repositoryImpl) VariationCounts(ctx context.Context, serviceIDs []string) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".service.VariationCounts")
	defer scope.End()

	counts := map[string]int{}
	if len(serviceIDs) == 0 {
		return counts, nil
	}

	placeholders := make([]string, len(serviceIDs))
	args := make([]any, len(serviceIDs))

	for i, id := range serviceIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT service_id, COUNT(id) AS total FROM %s WHERE service_id IN (%s) GROUP BY service_id",
		model.VariationTableName,
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		ServiceID string `db:"service_id"`
		Total     int    `db:"total"`
	}{}

	if err := repo.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count variations (%s): %w", model.EntityName, err)
	}

	for _, row := range rows {
		counts[row.ServiceID] = row.Total
	}

	return counts, nil
}
