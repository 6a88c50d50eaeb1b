package model

import (
	"time"

	invoiceModel "venue/internal/domains/invoice/model"
)

// RoomLock asks the booking writer to lock the room row and re-run the
// conflict check inside the write transaction.
type RoomLock struct {
	RoomID         string
	Window         Window
	ExcludeEventID string
}

// VariationLock is the variation counterpart of RoomLock.
type VariationLock struct {
	VariationID    string
	Window         Window
	ExcludeEventID string
}

// Booking is the write aggregate persisted atomically: the event row, its
// booked services, and the generated invoice with its line items.
type Booking struct {
	Event          Event
	Services       []EventService
	Invoice        *invoiceModel.Invoice
	Details        []invoiceModel.InvoiceDetail
	RoomLock       *RoomLock
	VariationLocks []VariationLock
}

// BookingUpdate is the write aggregate for reworking an existing booking.
// Services and Details are full replacement sets, applied only when their
// Replace flag is set. Invoice is inserted when InvoiceID is empty and the
// recomputed cost warrants one; otherwise InvoiceFields patches the existing
// row.
type BookingUpdate struct {
	EventID         string
	Fields          map[string]any
	Services        []EventService
	ReplaceServices bool
	InvoiceID       string
	Invoice         *invoiceModel.Invoice
	InvoiceFields   map[string]any
	Details         []invoiceModel.InvoiceDetail
	ReplaceDetails  bool
	RoomLock        *RoomLock
	VariationLocks  []VariationLock
}

// Conflict is one existing booking that overlaps a requested window.
type Conflict struct {
	EventID   string    `db:"event_id"   json:"event_id"`
	EventName string    `db:"event_name" json:"event_name"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time"   json:"end_time"`
}
