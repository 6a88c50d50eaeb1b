package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"venue/internal/domains/event/model/dto"
	invoiceModel "venue/internal/domains/invoice/model"
	roomModel "venue/internal/domains/room/model"
	servicesModel "venue/internal/domains/services/model"
)

func decimalRef(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestBuildCostLines(t *testing.T) {
	room := roomModel.Room{
		Name:      "Main Hall",
		BasePrice: decimal.NewFromInt(1000000),
	}
	buffet := servicesModel.Variation{
		Name:      "Buffet",
		BasePrice: decimal.NewFromInt(200000),
	}
	catering := bookedItem{
		request:   dto.BookedServiceRequest{Quantity: 2},
		service:   servicesModel.Service{Name: "Catering"},
		variation: &buffet,
	}

	t.Run("room with services and fee", func(t *testing.T) {
		fee := decimal.NewFromInt(500000)

		lines := buildCostLines(&room, 0, nil, &fee, []bookedItem{catering})

		assert.Len(t, lines, 3)
		assert.Equal(t, invoiceModel.ItemTypeRoom, lines[0].itemType)
		assert.Equal(t, invoiceModel.ItemTypeService, lines[1].itemType)
		assert.Equal(t, invoiceModel.ItemTypeOther, lines[2].itemType)
		assert.True(t, decimal.NewFromInt(1900000).Equal(totalCost(lines)))
	})

	t.Run("hourly rate over the window", func(t *testing.T) {
		priced := room
		priced.HourlyRate = decimalRef(decimal.NewFromInt(50000))

		lines := buildCostLines(&priced, 2.5, nil, nil, nil)

		assert.Len(t, lines, 2)
		assert.True(t, decimal.NewFromInt(1125000).Equal(totalCost(lines)))
	})

	t.Run("custom price wins over variation base price", func(t *testing.T) {
		discounted := catering
		discounted.request.CustomPrice = decimalRef(decimal.NewFromInt(150000))

		lines := buildCostLines(nil, 0, nil, nil, []bookedItem{discounted})

		assert.Len(t, lines, 1)
		assert.True(t, decimal.NewFromInt(300000).Equal(totalCost(lines)))
	})

	t.Run("service without variation or custom price is free", func(t *testing.T) {
		bare := bookedItem{
			request: dto.BookedServiceRequest{Quantity: 3},
			service: servicesModel.Service{Name: "Setup"},
		}

		lines := buildCostLines(nil, 0, nil, nil, []bookedItem{bare})

		assert.Len(t, lines, 1)
		assert.True(t, totalCost(lines).IsZero())
	})

	t.Run("total grows with every booked item", func(t *testing.T) {
		items := []bookedItem{}
		previous := decimal.Zero

		for i := 0; i < 5; i++ {
			items = append(items, catering)
			total := totalCost(buildCostLines(&room, 0, nil, nil, items))

			assert.True(t, total.GreaterThan(previous))
			previous = total
		}
	})

	t.Run("same inputs price identically", func(t *testing.T) {
		base := decimal.NewFromInt(75000)

		first := totalCost(buildCostLines(&room, 1.5, &base, nil, []bookedItem{catering}))
		second := totalCost(buildCostLines(&room, 1.5, &base, nil, []bookedItem{catering}))

		assert.True(t, first.Equal(second))
	})
}
