package service

import (
	"fmt"
	"time"

	"venue/internal/domains/event/model"
	"venue/internal/domains/event/model/dto"
	invoiceModel "venue/internal/domains/invoice/model"
	roomModel "venue/internal/domains/room/model"
	servicesModel "venue/internal/domains/services/model"
	gModel "venue/shared/model"
	"venue/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bookedItem is one resolved line of a booking request: the request as sent,
// the catalog rows it points at, and the occupancy window when scheduled.
type bookedItem struct {
	request   dto.BookedServiceRequest
	service   servicesModel.Service
	variation *servicesModel.Variation
	scheduled *time.Time
	window    *model.Window
}

// quantity defaults to one booked unit.
func (b bookedItem) quantity() int {
	if b.request.Quantity < 1 {
		return 1
	}

	return b.request.Quantity
}

// unitPrice resolves the price precedence: an explicit custom price wins over
// the variation's base price; a service booked without a variation is free.
func (b bookedItem) unitPrice() decimal.Decimal {
	if b.request.CustomPrice != nil {
		return *b.request.CustomPrice
	}

	if b.variation != nil {
		return b.variation.BasePrice
	}

	return decimal.Zero
}

// costLine is one line of the cost estimate, mirrored into invoice details.
type costLine struct {
	itemType    string
	description string
	quantity    int
	unitPrice   decimal.Decimal
	subtotal    decimal.Decimal
}

// buildCostLines prices a booking. The room contributes its base price plus
// its hourly rate over the event window; every booked item contributes
// unit price times quantity; the flat extras land as OTHER lines. All math is
// exact decimal arithmetic, rounded to cents per line.
func buildCostLines(room *roomModel.Room, hours float64, baseCost, roomServiceFee *decimal.Decimal, items []bookedItem) []costLine {
	lines := []costLine{}

	if room != nil {
		lines = append(lines, costLine{
			itemType:    invoiceModel.ItemTypeRoom,
			description: "Room: " + room.Name,
			quantity:    1,
			unitPrice:   room.BasePrice,
			subtotal:    room.BasePrice.Round(2),
		})

		if room.HourlyRate != nil && hours > 0 {
			amount := room.HourlyRate.Mul(decimal.NewFromFloat(hours)).Round(2)
			lines = append(lines, costLine{
				itemType:    invoiceModel.ItemTypeRoom,
				description: fmt.Sprintf("Room hourly rate (%.1f hours)", hours),
				quantity:    1,
				unitPrice:   amount,
				subtotal:    amount,
			})
		}
	}

	for _, item := range items {
		description := "Service: " + item.service.Name
		if item.variation != nil {
			description += " - " + item.variation.Name
		}

		quantity := item.quantity()
		unitPrice := item.unitPrice()

		lines = append(lines, costLine{
			itemType:    invoiceModel.ItemTypeService,
			description: description,
			quantity:    quantity,
			unitPrice:   unitPrice,
			subtotal:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		})
	}

	if baseCost != nil && baseCost.IsPositive() {
		lines = append(lines, costLine{
			itemType:    invoiceModel.ItemTypeOther,
			description: "Additional estimated cost",
			quantity:    1,
			unitPrice:   *baseCost,
			subtotal:    baseCost.Round(2),
		})
	}

	if roomServiceFee != nil && roomServiceFee.IsPositive() {
		lines = append(lines, costLine{
			itemType:    invoiceModel.ItemTypeOther,
			description: "Room service fee",
			quantity:    1,
			unitPrice:   *roomServiceFee,
			subtotal:    roomServiceFee.Round(2),
		})
	}

	return lines
}

// totalCost sums the line subtotals, rounded to cents.
func totalCost(lines []costLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.subtotal)
	}

	return total.Round(2)
}

// toInvoiceDetails mirrors the cost lines into invoice detail rows.
func toInvoiceDetails(invoiceID, user string, lines []costLine) []invoiceModel.InvoiceDetail {
	details := make([]invoiceModel.InvoiceDetail, len(lines))
	for i, line := range lines {
		details[i] = invoiceModel.InvoiceDetail{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			ItemType:    line.itemType,
			Description: line.description,
			Quantity:    line.quantity,
			UnitPrice:   line.unitPrice,
			Subtotal:    line.subtotal,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return details
}

// newInvoice issues a pending invoice for the booking total.
func newInvoice(eventID, user string, total decimal.Decimal, dueDays int) invoiceModel.Invoice {
	now := timezone.Now()
	due := now.AddDate(0, 0, dueDays)

	return invoiceModel.Invoice{
		ID:            uuid.NewString(),
		EventID:       eventID,
		InvoiceNumber: invoiceModel.NewInvoiceNumber(now),
		TotalAmount:   total,
		Status:        invoiceModel.StatusPending,
		IssuedDate:    now,
		DueDate:       &due,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
