package model

import (
	"venue/shared/model"

	"github.com/shopspring/decimal"
)

const (
	VariationTableName  = "variations"
	VariationEntityName = "variation"

	VariationFieldID            = "id"
	VariationFieldServiceID     = "service_id"
	VariationFieldName          = "name"
	VariationFieldBasePrice     = "base_price"
	VariationFieldDurationHours = "duration_hours"
	VariationFieldActive        = "active"
)

// Variation is a priced option of a Service. It may only ever be booked
// under the service it belongs to.
type Variation struct {
	ID            string          `db:"id"`
	ServiceID     string          `db:"service_id"`
	Name          string          `db:"name"`
	BasePrice     decimal.Decimal `db:"base_price"`
	DurationHours *float64        `db:"duration_hours"`
	Active        bool            `db:"active"`
	model.Metadata
}
