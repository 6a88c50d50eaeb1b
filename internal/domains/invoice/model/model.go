package model

import (
	"fmt"
	"strings"
	"time"

	"venue/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID      = "id"
	FieldEventID = "event_id"
	FieldStatus  = "status"

	DetailTableName  = "invoice_details"
	DetailEntityName = "invoice_detail"

	DetailFieldID        = "id"
	DetailFieldInvoiceID = "invoice_id"
)

const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
	StatusOverdue   = "OVERDUE"
)

const (
	ItemTypeRoom    = "ROOM"
	ItemTypeService = "SERVICE"
	ItemTypeOther   = "OTHER"
)

type Invoice struct {
	ID            string          `db:"id"`
	EventID       string          `db:"event_id"`
	InvoiceNumber string          `db:"invoice_number"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	IssuedDate    time.Time       `db:"issued_date"`
	DueDate       *time.Time      `db:"due_date"`
	PaidDate      *time.Time      `db:"paid_date"`
	Notes         *string         `db:"notes"`
	model.Metadata
}

type InvoiceDetail struct {
	ID          string          `db:"id"`
	InvoiceID   string          `db:"invoice_id"`
	ItemType    string          `db:"item_type"`
	Description string          `db:"description"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	model.Metadata
}

// NewInvoiceNumber produces a human-readable unique number, e.g.
// INV-20260115-3f9a0c1d.
func NewInvoiceNumber(issued time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("INV-%s-%s", issued.Format("20060102"), suffix)
}
