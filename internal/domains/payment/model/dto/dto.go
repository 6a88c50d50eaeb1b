package dto

import (
	"time"

	"venue/internal/domains/payment/model"
	"venue/shared"
	gDto "venue/shared/dto"

	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	InvoiceID string           `json:"invoice_id" validate:"required,uuid4"`
	Method    string           `json:"method"     validate:"required,oneof=STRIPE CASH TRANSFER"`
	Amount    *decimal.Decimal `json:"amount"     validate:"omitempty"`
	Notes     *string          `json:"notes"      validate:"omitempty,max=500"`
}

type PaymentResponse struct {
	ID             string           `json:"id"`
	InvoiceID      string           `json:"invoice_id"`
	Amount         decimal.Decimal  `json:"amount"`
	Method         string           `json:"method"`
	Status         string           `json:"status"`
	TransactionRef *string          `json:"transaction_ref,omitempty"`
	PaymentDate    *time.Time       `json:"payment_date,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	CheckoutURL    string           `json:"checkout_url,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(mod model.Payment) {
	r.ID = mod.ID
	r.InvoiceID = mod.InvoiceID
	r.Amount = mod.Amount
	r.Method = mod.Method
	r.Status = mod.Status
	r.TransactionRef = mod.TransactionRef
	r.PaymentDate = mod.PaymentDate
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
	HasNext   bool              `json:"has_next"`
	HasPrev   bool              `json:"has_prev"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
