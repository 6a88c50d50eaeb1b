package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/invoice/model"
	"venue/shared"
	gDto "venue/shared/dto"
	gRepo "venue/shared/repository"
)

type Invoice interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invoice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetails(ctx context.Context, invoiceID string) ([]model.InvoiceDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	details gRepo.Repository[model.InvoiceDetail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.InvoiceDetail](model.DetailEntityName, model.DetailTableName, model.DetailFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetDetails lists the invoice's line items in insertion order.
func (repo *repositoryImpl) GetDetails(ctx context.Context, invoiceID string) ([]model.InvoiceDetail, error) {
	filter := shared.FilterByID(invoiceID, model.DetailFieldInvoiceID, model.DetailTableName)
	params := gDto.QueryParams{SortBy: model.DetailTableName + ".created_at", SortDir: "ASC"}

	return repo.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}
