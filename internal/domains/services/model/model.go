package model

import (
	"venue/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldServiceTypeID = "service_type_id"
	FieldIsAvailable   = "is_available"
	FieldActive        = "active"
)

type Service struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Description   *string `db:"description"`
	ServiceTypeID string  `db:"service_type_id"`
	IsAvailable   bool    `db:"is_available"`
	Active        bool    `db:"active"`
	model.Metadata

	ServiceTypeName string `db:"service_type_name" table:"service_types" column:"name"`
}

func (Service) GetJoinQuery() string {
	return "LEFT JOIN service_types ON service_types.id = services.service_type_id"
}

// Bookable reports whether the service may appear on new bookings.
func (s Service) Bookable() bool {
	return s.Active && s.IsAvailable
}
