package repository_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"venue/infras/otel/mocks"
	"venue/infras/postgres"
	"venue/internal/domains/event/model"
	"venue/internal/domains/event/repository"
	"venue/shared/failure"
)

func newBookingRepository(t *testing.T) (repository.Event, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

// A booking that loses the race sees the winner's row after taking the room
// lock, and the whole transaction rolls back with a conflict.
func TestEventRepository_CreateBooking_WindowConflict(t *testing.T) {
	repo, mock := newBookingRepository(t)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	window := model.Window{Start: start, End: start.Add(4 * time.Hour)}

	mock.ExpectBegin()
	mock.ExpectExec("SELECT id FROM rooms").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT events.id AS event_id").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "event_name", "start_time", "end_time"}).
			AddRow("winning-event", "Gala", start, start.Add(2*time.Hour)))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), model.Booking{
		Event:    model.Event{ID: "losing-event", Name: "Board Meeting"},
		RoomLock: &model.RoomLock{RoomID: "room-1", Window: window},
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateBooking_FreeWindowCommits(t *testing.T) {
	repo, mock := newBookingRepository(t)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	window := model.Window{Start: start, End: start.Add(4 * time.Hour)}

	mock.ExpectBegin()
	mock.ExpectExec("SELECT id FROM rooms").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT events.id AS event_id").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "event_name", "start_time", "end_time"}))
	mock.ExpectExec("INSERT INTO events").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateBooking(context.Background(), model.Booking{
		Event:    model.Event{ID: "new-event", Name: "Board Meeting", Status: model.StatusPending},
		RoomLock: &model.RoomLock{RoomID: "room-1", Window: window},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A variation re-check that finds a confirmed overlapping booking rolls the
// whole aggregate back, leaving no partial rows.
func TestEventRepository_CreateBooking_VariationConflict(t *testing.T) {
	repo, mock := newBookingRepository(t)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	window := model.Window{Start: start, End: start.Add(2 * time.Hour)}

	mock.ExpectBegin()
	mock.ExpectExec("SELECT id FROM variations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT es.id AS event_id").
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "event_name", "start_time", "end_time"}).
			AddRow("winning-event", "Gala", start, start.Add(time.Hour)))
	mock.ExpectRollback()

	err := repo.CreateBooking(context.Background(), model.Booking{
		Event: model.Event{ID: "losing-event", Name: "Board Meeting"},
		VariationLocks: []model.VariationLock{
			{VariationID: "variation-1", Window: window},
		},
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
