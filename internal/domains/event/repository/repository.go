package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/event/model"
	invoiceModel "venue/internal/domains/invoice/model"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/logger"
	gRepo "venue/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Event interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Event, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Event, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	CreateBooking(ctx context.Context, booking model.Booking) error
	UpdateBooking(ctx context.Context, update model.BookingUpdate) error
	RoomConflicts(ctx context.Context, roomID string, window model.Window, excludeEventID string) ([]model.Conflict, error)
	VariationConflicts(ctx context.Context, variationID string, window model.Window, excludeEventID string) ([]model.Conflict, error)
	ServiceCounts(ctx context.Context, eventIDs []string) (map[string]int, error)
	DependentCounts(ctx context.Context, eventID string) (model.Dependents, error)
	DeleteCascade(ctx context.Context, eventID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	services gRepo.Repository[model.EventService]
	invoices gRepo.Repository[invoiceModel.Invoice]
	details  gRepo.Repository[invoiceModel.InvoiceDetail]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		services:   gRepo.NewRepository[model.EventService](model.EventServiceEntityName, model.EventServiceTableName, model.EventServiceFieldID, db, otel),
		invoices:   gRepo.NewRepository[invoiceModel.Invoice](invoiceModel.EntityName, invoiceModel.TableName, invoiceModel.FieldID, db, otel),
		details:    gRepo.NewRepository[invoiceModel.InvoiceDetail](invoiceModel.DetailEntityName, invoiceModel.DetailTableName, invoiceModel.DetailFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateBooking persists the event, its booked services, and the generated
// invoice in one transaction. The requested locks are taken first and the
// conflict checks re-run on the locked rows, so two concurrent bookings of
// the same window cannot both commit.
func (repo *repositoryImpl) CreateBooking(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.CreateBooking")
	defer scope.End()

	err := repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.assertAvailable(ctx, tx, booking.RoomLock, booking.VariationLocks); err != nil {
			return err
		}

		if err := repo.InsertTx(ctx, tx, booking.Event); err != nil {
			return err //nolint:wrapcheck
		}

		if len(booking.Services) > 0 {
			if err := repo.services.InsertBulkTx(ctx, tx, booking.Services); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if booking.Invoice != nil {
			if err := repo.invoices.InsertTx(ctx, tx, *booking.Invoice); err != nil {
				return err //nolint:wrapcheck
			}

			if len(booking.Details) > 0 {
				if err := repo.details.InsertBulkTx(ctx, tx, booking.Details); err != nil {
					return err //nolint:wrapcheck
				}
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// UpdateBooking reworks an existing booking in one transaction, re-running
// the availability checks under row locks before touching any row.
func (repo *repositoryImpl) UpdateBooking(ctx context.Context, update model.BookingUpdate) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.UpdateBooking")
	defer scope.End()

	err := repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.assertAvailable(ctx, tx, update.RoomLock, update.VariationLocks); err != nil {
			return err
		}

		eventFilter := shared.FilterByID(update.EventID, model.FieldID, model.TableName)
		if len(update.Fields) > 0 {
			if err := repo.UpdateTx(ctx, tx, update.Fields, eventFilter); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if update.ReplaceServices {
			serviceFilter := shared.FilterByID(update.EventID, model.EventServiceFieldEventID, model.EventServiceTableName)
			if err := repo.services.DeleteTx(ctx, tx, serviceFilter); err != nil {
				return err //nolint:wrapcheck
			}

			if len(update.Services) > 0 {
				if err := repo.services.InsertBulkTx(ctx, tx, update.Services); err != nil {
					return err //nolint:wrapcheck
				}
			}
		}

		invoiceID := update.InvoiceID

		if invoiceID == constant.Empty && update.Invoice != nil {
			if err := repo.invoices.InsertTx(ctx, tx, *update.Invoice); err != nil {
				return err //nolint:wrapcheck
			}

			invoiceID = update.Invoice.ID
		} else if invoiceID != constant.Empty && len(update.InvoiceFields) > 0 {
			invoiceFilter := shared.FilterByID(invoiceID, invoiceModel.FieldID, invoiceModel.TableName)
			if err := repo.invoices.UpdateTx(ctx, tx, update.InvoiceFields, invoiceFilter); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if update.ReplaceDetails && invoiceID != constant.Empty {
			detailFilter := shared.FilterByID(invoiceID, invoiceModel.DetailFieldInvoiceID, invoiceModel.DetailTableName)
			if err := repo.details.DeleteTx(ctx, tx, detailFilter); err != nil {
				return err //nolint:wrapcheck
			}

			if len(update.Details) > 0 {
				if err := repo.details.InsertBulkTx(ctx, tx, update.Details); err != nil {
					return err //nolint:wrapcheck
				}
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

// RoomConflicts lists the blocking events whose windows overlap the requested
// one on the given room. Overlap is half-open: touching endpoints pass.
func (repo *repositoryImpl) RoomConflicts(ctx context.Context, roomID string, window model.Window, excludeEventID string) ([]model.Conflict, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.RoomConflicts")
	defer scope.End()

	return repo.roomConflicts(ctx, repo.db.Read, roomID, window, excludeEventID)
}

// VariationConflicts lists the confirmed bookings of the variation whose
// windows overlap the requested one.
func (repo *repositoryImpl) VariationConflicts(ctx context.Context, variationID string, window model.Window, excludeEventID string) ([]model.Conflict, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.VariationConflicts")
	defer scope.End()

	return repo.variationConflicts(ctx, repo.db.Read, variationID, window, excludeEventID)
}

// ServiceCounts returns the number of booked services per event. Events
// without services are absent from the result.
func (repo *repositoryImpl) ServiceCounts(ctx context.Context, eventIDs []string) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.ServiceCounts")
	defer scope.End()

	counts := map[string]int{}
	if len(eventIDs) == 0 {
		return counts, nil
	}

	placeholders := make([]string, len(eventIDs))
	args := make([]any, len(eventIDs))

	for i, id := range eventIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT event_id, COUNT(id) AS total FROM %s WHERE event_id IN (%s) GROUP BY event_id",
		model.EventServiceTableName,
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		EventID string `db:"event_id"`
		Total   int    `db:"total"`
	}{}

	if err := repo.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count event services (%s): %w", model.EntityName, err)
	}

	for _, row := range rows {
		counts[row.EventID] = row.Total
	}

	return counts, nil
}

// DependentCounts summarizes the rows hanging off the event so a delete can
// be refused, or confirmed with force.
func (repo *repositoryImpl) DependentCounts(ctx context.Context, eventID string) (model.Dependents, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.DependentCounts")
	defer scope.End()

	query := `SELECT
		(SELECT COUNT(id) FROM event_services WHERE event_id = $1) AS event_services,
		(SELECT COUNT(p.id) FROM payments p JOIN invoices i ON i.id = p.invoice_id WHERE i.event_id = $1) AS payments,
		(SELECT COUNT(id) FROM reviews WHERE event_id = $1) AS reviews,
		EXISTS(SELECT 1 FROM invoices WHERE event_id = $1) AS has_invoice`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var deps model.Dependents

	if err := repo.db.Read.GetContext(ctx, &deps, query, eventID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return deps, fmt.Errorf("failed to count event dependents (%s): %w", model.EntityName, err)
	}

	return deps, nil
}

// DeleteCascade removes the event and everything hanging off it in one
// transaction: payments, invoice details, the invoice, reviews, booked
// services, then the event row itself.
func (repo *repositoryImpl) DeleteCascade(ctx context.Context, eventID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.DeleteCascade")
	defer scope.End()

	statements := []string{
		"DELETE FROM payments WHERE invoice_id IN (SELECT id FROM invoices WHERE event_id = $1)",
		"DELETE FROM invoice_details WHERE invoice_id IN (SELECT id FROM invoices WHERE event_id = $1)",
		"DELETE FROM invoices WHERE event_id = $1",
		"DELETE FROM reviews WHERE event_id = $1",
		"DELETE FROM event_services WHERE event_id = $1",
		"DELETE FROM events WHERE id = $1",
	}

	err := repo.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement, eventID); err != nil {
				return fmt.Errorf("failed to cascade delete event (%s): %w", model.EntityName, err)
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

// assertAvailable takes the requested row locks and re-runs the overlap
// checks inside the transaction. Conflicts surface as HTTP 409 failures so
// the transaction rolls back untouched.
func (repo *repositoryImpl) assertAvailable(ctx context.Context, tx *sqlx.Tx, roomLock *model.RoomLock, variationLocks []model.VariationLock) error {
	if roomLock != nil {
		if _, err := tx.ExecContext(ctx, "SELECT id FROM rooms WHERE id = $1 FOR UPDATE", roomLock.RoomID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock room row (%s): %w", model.EntityName, err)
		}

		conflicts, err := repo.roomConflicts(ctx, tx, roomLock.RoomID, roomLock.Window, roomLock.ExcludeEventID)
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return failure.Conflict(fmt.Sprintf("room is already booked by %q for the requested window", conflicts[0].EventName)) //nolint:wrapcheck
		}
	}

	for _, lock := range variationLocks {
		if _, err := tx.ExecContext(ctx, "SELECT id FROM variations WHERE id = $1 FOR UPDATE", lock.VariationID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock variation row (%s): %w", model.EntityName, err)
		}

		conflicts, err := repo.variationConflicts(ctx, tx, lock.VariationID, lock.Window, lock.ExcludeEventID)
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return failure.Conflict(fmt.Sprintf("service variation is already booked by %q for the requested window", conflicts[0].EventName)) //nolint:wrapcheck
		}
	}

	return nil
}

func (repo *repositoryImpl) roomConflicts(ctx context.Context, q sqlx.QueryerContext, roomID string, window model.Window, excludeEventID string) ([]model.Conflict, error) {
	query := fmt.Sprintf(`SELECT events.id AS event_id, events.name AS event_name, events.start_time, events.end_time
		FROM events
		WHERE events.room_id = $1
		  AND events.id <> $2
		  AND events.status IN ('%s', '%s')
		  AND events.start_time IS NOT NULL AND events.end_time IS NOT NULL
		  AND events.start_time < $4
		  AND events.end_time > $3`,
		model.StatusConfirmed, model.StatusInProgress)

	conflicts := []model.Conflict{}

	err := sqlx.SelectContext(ctx, q, &conflicts, query, roomID, excludeEventID, window.Start, window.End)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find room conflicts (%s): %w", model.EntityName, err)
	}

	return conflicts, nil
}

func (repo *repositoryImpl) variationConflicts(ctx context.Context, q sqlx.QueryerContext, variationID string, window model.Window, excludeEventID string) ([]model.Conflict, error) {
	query := fmt.Sprintf(`SELECT es.id AS event_id, e.name AS event_name, es.scheduled_time AS start_time,
		COALESCE(es.end_time, es.scheduled_time + es.duration_hours * interval '1 hour') AS end_time
		FROM event_services es
		JOIN events e ON e.id = es.event_id
		WHERE es.variation_id = $1
		  AND es.event_id <> $2
		  AND es.status = '%s'
		  AND es.scheduled_time IS NOT NULL
		  AND (es.end_time IS NOT NULL OR es.duration_hours IS NOT NULL)
		  AND es.scheduled_time < $4
		  AND COALESCE(es.end_time, es.scheduled_time + es.duration_hours * interval '1 hour') > $3`,
		model.BookingStatusConfirmed)

	conflicts := []model.Conflict{}

	err := sqlx.SelectContext(ctx, q, &conflicts, query, variationID, excludeEventID, window.Start, window.End)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find variation conflicts (%s): %w", model.EntityName, err)
	}

	return conflicts, nil
}
