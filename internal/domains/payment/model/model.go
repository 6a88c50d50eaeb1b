package model

import (
	"time"

	"venue/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID             = "id"
	FieldInvoiceID      = "invoice_id"
	FieldStatus         = "status"
	FieldTransactionRef = "transaction_ref"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

const (
	MethodStripe   = "STRIPE"
	MethodCash     = "CASH"
	MethodTransfer = "TRANSFER"
)

type Payment struct {
	ID             string          `db:"id"`
	InvoiceID      string          `db:"invoice_id"`
	Amount         decimal.Decimal `db:"amount"`
	Method         string          `db:"method"`
	Status         string          `db:"status"`
	TransactionRef *string         `db:"transaction_ref"`
	PaymentDate    *time.Time      `db:"payment_date"`
	Notes          *string         `db:"notes"`
	model.Metadata
}

// Settled reports whether the payment reached a terminal successful state.
func (p Payment) Settled() bool {
	return p.Status == StatusCompleted
}
