package model

import (
	"time"

	"venue/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldAccountID = "account_id"
	FieldRead      = "read"
)

const (
	TypeBookingCreated   = "BOOKING_CREATED"
	TypeBookingUpdated   = "BOOKING_UPDATED"
	TypeBookingCancelled = "BOOKING_CANCELLED"
	TypeStatusChanged    = "STATUS_CHANGED"
	TypePaymentReceived  = "PAYMENT_RECEIVED"
	TypeGeneric          = "GENERIC"
)

type Notification struct {
	ID        string    `db:"id"`
	AccountID *string   `db:"account_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	Read      bool      `db:"read"`
	SentAt    time.Time `db:"sent_at"`
	model.Metadata
}
