package model

import (
	"gymhub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldSessionID = "session_id"
)

type Booking struct {
	ID        int64 `db:"id"         insert:"-"`
	UserID    int64 `db:"user_id"`
	SessionID int64 `db:"session_id"`
	model.Metadata
}
