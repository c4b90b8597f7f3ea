package model

import "gymhub/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
)

type Location struct {
	ID      int64  `db:"id"      insert:"-"`
	Name    string `db:"name"`
	Address string `db:"address"`
	model.Metadata
}
