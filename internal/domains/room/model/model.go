package model

import (
	"venue/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldName       = "name"
	FieldLocation   = "location"
	FieldCapacity   = "capacity"
	FieldBasePrice  = "base_price"
	FieldHourlyRate = "hourly_rate"
	FieldStatus     = "status"
	FieldImage      = "image"
	FieldActive     = "active"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
	StatusReserved    = "RESERVED"
)

// ValidStatus reports whether s is one of the closed set of room statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved:
		return true
	}

	return false
}

type Room struct {
	ID         string           `db:"id"`
	Name       string           `db:"name"`
	Location   string           `db:"location"`
	Capacity   int              `db:"capacity"`
	BasePrice  decimal.Decimal  `db:"base_price"`
	HourlyRate *decimal.Decimal `db:"hourly_rate"`
	Status     string           `db:"status"`
	Image      string           `db:"image"`
	Active     bool             `db:"active"`
	model.Metadata
}

// Bookable reports whether the room may accept new bookings.
func (r Room) Bookable() bool {
	return r.Active && r.Status == StatusAvailable
}

// RatingSummary carries the read-time review aggregates for a room,
// computed over the reviews of its events. Never stored.
type RatingSummary struct {
	ReviewCount   int     `db:"review_count"`
	AverageRating float64 `db:"average_rating"`
}
