package model

import "venue/shared/model"

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldPhone    = "phone"
	FieldRole     = "role"
	FieldActive   = "active"
)

type Account struct {
	ID       string  `db:"id"`
	Email    string  `db:"email"`
	FullName string  `db:"full_name"`
	Phone    *string `db:"phone"`
	Role     string  `db:"role"`
	Active   bool    `db:"active"`
	model.Metadata
}
