package model

import "venue/shared/model"

const (
	ServiceTypeTableName  = "service_types"
	ServiceTypeEntityName = "service_type"
)

type ServiceType struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
	model.Metadata
}
