package model

import (
	"venue/shared/model"
)

const (
	EventTypeTableName  = "event_types"
	EventTypeEntityName = "event_type"

	EventTypeFieldID = "id"
)

type EventType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Active      bool    `db:"active"`
	model.Metadata
}
