package model

import (
	"fmt"
	"strings"
	"time"

	"venue/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID             = "id"
	FieldName           = "name"
	FieldDescription    = "description"
	FieldEventDate      = "event_date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldEstimatedCost  = "estimated_cost"
	FieldFinalCost      = "final_cost"
	FieldRoomServiceFee = "room_service_fee"
	FieldStatus         = "status"
	FieldAccountID      = "account_id"
	FieldRoomID         = "room_id"
	FieldEventTypeID    = "event_type_id"
)

const (
	StatusPending     = "PENDING"
	StatusConfirmed   = "CONFIRMED"
	StatusInProgress  = "IN_PROGRESS"
	StatusCompleted   = "COMPLETED"
	StatusCancelled   = "CANCELLED"
	StatusRescheduled = "RESCHEDULED"
)

// ValidStatus reports whether s is one of the closed set of event statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}

	return false
}

// BlockingStatuses are the event statuses whose room bookings occupy the
// room's calendar and therefore participate in conflict checks.
var BlockingStatuses = []string{StatusConfirmed, StatusInProgress}

type Event struct {
	ID             string           `db:"id"`
	Name           string           `db:"name"`
	Description    *string          `db:"description"`
	EventDate      time.Time        `db:"event_date"`
	StartTime      *time.Time       `db:"start_time"`
	EndTime        *time.Time       `db:"end_time"`
	EstimatedCost  decimal.Decimal  `db:"estimated_cost"`
	FinalCost      *decimal.Decimal `db:"final_cost"`
	RoomServiceFee *decimal.Decimal `db:"room_service_fee"`
	Status         string           `db:"status"`
	AccountID      *string          `db:"account_id"`
	RoomID         *string          `db:"room_id"`
	EventTypeID    *string          `db:"event_type_id"`
	model.Metadata

	RoomName      *string `db:"room_name"       table:"rooms"       column:"name"`
	EventTypeName *string `db:"event_type_name" table:"event_types" column:"name"`
}

func (Event) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = events.room_id LEFT JOIN event_types ON event_types.id = events.event_type_id"
}

// Window returns the event's room booking window when both endpoints are set.
func (e Event) Window() (Window, bool) {
	if e.StartTime == nil || e.EndTime == nil {
		return Window{}, false
	}

	return Window{Start: *e.StartTime, End: *e.EndTime}, true
}

// DurationHours is the length of the event's window in hours, zero when the
// window is not fully specified.
func (e Event) DurationHours() float64 {
	window, ok := e.Window()
	if !ok {
		return 0
	}

	return window.End.Sub(window.Start).Hours()
}

// Dependents summarizes the rows that block a plain event delete.
type Dependents struct {
	EventServices int  `db:"event_services"`
	Payments      int  `db:"payments"`
	Reviews       int  `db:"reviews"`
	HasInvoice    bool `db:"has_invoice"`
}

// Describe lists only the dependents that actually exist, for refusal
// messages.
func (d Dependents) Describe() string {
	parts := []string{}

	if d.EventServices > 0 {
		parts = append(parts, fmt.Sprintf("%d booked service(s)", d.EventServices))
	}

	if d.Payments > 0 {
		parts = append(parts, fmt.Sprintf("%d payment(s)", d.Payments))
	}

	if d.Reviews > 0 {
		parts = append(parts, fmt.Sprintf("%d review(s)", d.Reviews))
	}

	if d.HasInvoice {
		parts = append(parts, "an invoice")
	}

	return strings.Join(parts, ", ")
}

func (d Dependents) Any() bool {
	return d.EventServices > 0 || d.Payments > 0 || d.Reviews > 0 || d.HasInvoice
}
