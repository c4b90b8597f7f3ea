package model

import "gymhub/shared/model"

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
)

type Activity struct {
	ID              int64  `db:"id"               insert:"-"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	DurationMinutes int    `db:"duration_minutes"`
	model.Metadata
}
