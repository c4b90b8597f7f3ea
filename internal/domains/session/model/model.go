package model

import "gymhub/shared/model"

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID          = "id"
	FieldActivityID  = "activity_id"
	FieldLocationID  = "location_id"
	FieldTrainerID   = "trainer_id"
	FieldSessionDate = "session_date"
	FieldSessionTime = "session_time"
)

type Session struct {
	ID          int64           `db:"id"           insert:"-"`
	ActivityID  int64           `db:"activity_id"`
	LocationID  int64           `db:"location_id"`
	TrainerID   int64           `db:"trainer_id"`
	SessionDate model.CivilDate `db:"session_date"`
	SessionTime model.CivilTime `db:"session_time"`
	model.Metadata
}
