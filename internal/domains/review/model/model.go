package model

import (
	"venue/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldEventID   = "event_id"
	FieldAccountID = "account_id"
	FieldRating    = "rating"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        string  `db:"id"`
	EventID   string  `db:"event_id"`
	AccountID *string `db:"account_id"`
	Rating    int     `db:"rating"`
	Comment   *string `db:"comment"`
	model.Metadata
}
