package model

import "gymhub/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                = "id"
	FieldEmail             = "email"
	FieldPassword          = "password"
	FieldFirstName         = "first_name"
	FieldLastName          = "last_name"
	FieldRole              = "role"
	FieldAuthenticationKey = "authentication_key"
)

type User struct {
	ID                int64   `db:"id"                 insert:"-"`
	Email             string  `db:"email"`
	Password          string  `db:"password"`
	FirstName         string  `db:"first_name"`
	LastName          string  `db:"last_name"`
	Role              string  `db:"role"`
	AuthenticationKey *string `db:"authentication_key"`
	model.Metadata
}
