package dto

import (
	"time"

	"venue/internal/domains/invoice/model"
	"venue/shared"
	gDto "venue/shared/dto"

	"github.com/shopspring/decimal"
)

type InvoiceDetailResponse struct {
	ID          string          `json:"id"`
	ItemType    string          `json:"item_type"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func (r *InvoiceDetailResponse) FromModel(mod model.InvoiceDetail) {
	r.ID = mod.ID
	r.ItemType = mod.ItemType
	r.Description = mod.Description
	r.Quantity = mod.Quantity
	r.UnitPrice = mod.UnitPrice
	r.Subtotal = mod.Subtotal
}

type InvoiceResponse struct {
	ID            string                  `json:"id"`
	EventID       string                  `json:"event_id"`
	InvoiceNumber string                  `json:"invoice_number"`
	TotalAmount   decimal.Decimal         `json:"total_amount"`
	Status        string                  `json:"status"`
	IssuedDate    time.Time               `json:"issued_date"`
	DueDate       *time.Time              `json:"due_date,omitempty"`
	PaidDate      *time.Time              `json:"paid_date,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
	Details       []InvoiceDetailResponse `json:"details,omitempty"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(mod model.Invoice) {
	r.ID = mod.ID
	r.EventID = mod.EventID
	r.InvoiceNumber = mod.InvoiceNumber
	r.TotalAmount = mod.TotalAmount
	r.Status = mod.Status
	r.IssuedDate = mod.IssuedDate
	r.DueDate = mod.DueDate
	r.PaidDate = mod.PaidDate
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

// WithDetails attaches the invoice line items to the response.
func (r *InvoiceResponse) WithDetails(details []model.InvoiceDetail) {
	r.Details = make([]InvoiceDetailResponse, len(details))
	for i, detail := range details {
		r.Details[i].FromModel(detail)
	}
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
	HasNext   bool              `json:"has_next"`
	HasPrev   bool              `json:"has_prev"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData int, params gDto.QueryParams) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)
	r.HasNext, r.HasPrev = shared.PageFlags(params.Page, params.Limit, totalData)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
