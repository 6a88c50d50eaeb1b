package model

import (
	"time"

	"venue/shared/model"

	"github.com/shopspring/decimal"
)

const (
	EventServiceTableName  = "event_services"
	EventServiceEntityName = "event_service"

	EventServiceFieldID          = "id"
	EventServiceFieldEventID     = "event_id"
	EventServiceFieldServiceID   = "service_id"
	EventServiceFieldVariationID = "variation_id"
	EventServiceFieldStatus      = "status"
)

const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusPending   = "PENDING"
	BookingStatusCancelled = "CANCELLED"
)

// ValidBookingStatus reports whether s is one of the closed set of
// per-service booking statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled:
		return true
	}

	return false
}

type EventService struct {
	ID            string           `db:"id"`
	EventID       string           `db:"event_id"`
	ServiceID     string           `db:"service_id"`
	VariationID   *string          `db:"variation_id"`
	Quantity      int              `db:"quantity"`
	CustomPrice   *decimal.Decimal `db:"custom_price"`
	Status        string           `db:"status"`
	ScheduledTime *time.Time       `db:"scheduled_time"`
	DurationHours *float64         `db:"duration_hours"`
	EndTime       *time.Time       `db:"end_time"`
	Notes         *string          `db:"notes"`
	model.Metadata
}

// Window returns the booking's occupancy window. The second return is false
// when the booking has no schedule or no way to derive an end.
func (es EventService) Window() (Window, bool) {
	if es.ScheduledTime == nil {
		return Window{}, false
	}

	window, err := NewWindow(*es.ScheduledTime, es.EndTime, es.DurationHours)
	if err != nil {
		return Window{}, false
	}

	return window, true
}
