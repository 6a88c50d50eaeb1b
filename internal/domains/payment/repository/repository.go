package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"venue/infras/otel"
	"venue/infras/postgres"
	eventModel "venue/internal/domains/event/model"
	invoiceModel "venue/internal/domains/invoice/model"
	"venue/internal/domains/payment/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Complete(ctx context.Context, paymentID, invoiceID, eventID string, paidAt time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Complete settles a payment in one transaction: the payment row goes to
// COMPLETED, its invoice to PAID, and a still-pending event to CONFIRMED.
func (repo *repositoryImpl) Complete(ctx context.Context, paymentID, invoiceID, eventID string, paidAt time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.Complete")
	defer scope.End()

	err := repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		statements := []struct {
			query string
			args  []any
		}{
			{
				query: "UPDATE payments SET status = $1, payment_date = $2, modified_at = $2 WHERE id = $3",
				args:  []any{model.StatusCompleted, paidAt, paymentID},
			},
			{
				query: "UPDATE invoices SET status = $1, paid_date = $2, modified_at = $2 WHERE id = $3",
				args:  []any{invoiceModel.StatusPaid, paidAt, invoiceID},
			},
			{
				query: "UPDATE events SET status = $1, modified_at = $2 WHERE id = $3 AND status = $4",
				args:  []any{eventModel.StatusConfirmed, paidAt, eventID, eventModel.StatusPending},
			},
		}

		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement.query, statement.args...); err != nil {
				return fmt.Errorf("failed to settle payment (%s): %w", model.EntityName, err)
			}
		}

		return nil
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
