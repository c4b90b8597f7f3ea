package model

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var ErrIncompleteRow = errors.New("incomplete joined row")

type Principal struct {
	ID        int64  `db:"id"`
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Role      string `db:"role"`
}

// FullName joins the given and family names, skipping whichever is empty.
func (p Principal) FullName() string {
	return strings.TrimSpace(strings.Join([]string{p.FirstName, p.LastName}, " "))
}

type Activity struct {
	ID          int64
	Name        string
	Description string
}

type Location struct {
	ID      int64
	Name    string
	Address string
}

// SessionSlot is the scheduled part of a session. Date is YYYY-MM-DD and Time is HH:MM:SS.
type SessionSlot struct {
	ID   int64
	Date string
	Time string
}

type EnrichedBooking struct {
	BookingID int64
	Session   SessionSlot
	Activity  Activity
	Location  Location
	Member    Principal
	Trainer   Principal
}

type EnrichedSession struct {
	Session  SessionSlot
	Activity Activity
	Location Location
	Trainer  Principal
}

type SessionColumns struct {
	SessionID   sql.NullInt64  `db:"session_id"`
	SessionDate sql.NullString `db:"session_date"`
	SessionTime sql.NullString `db:"session_time"`
}

type ActivityColumns struct {
	ActivityID          sql.NullInt64  `db:"activity_id"`
	ActivityName        sql.NullString `db:"activity_name"`
	ActivityDescription sql.NullString `db:"activity_description"`
}

type LocationColumns struct {
	LocationID      sql.NullInt64  `db:"location_id"`
	LocationName    sql.NullString `db:"location_name"`
	LocationAddress sql.NullString `db:"location_address"`
}

type MemberColumns struct {
	MemberID        sql.NullInt64  `db:"member_id"`
	MemberEmail     sql.NullString `db:"member_email"`
	MemberFirstName sql.NullString `db:"member_first_name"`
	MemberLastName  sql.NullString `db:"member_last_name"`
	MemberRole      sql.NullString `db:"member_role"`
}

type TrainerColumns struct {
	TrainerID        sql.NullInt64  `db:"trainer_id"`
	TrainerEmail     sql.NullString `db:"trainer_email"`
	TrainerFirstName sql.NullString `db:"trainer_first_name"`
	TrainerLastName  sql.NullString `db:"trainer_last_name"`
	TrainerRole      sql.NullString `db:"trainer_role"`
}

// BookingRow is one flat result row of the member booking join. The users table
// appears twice, under the member_ and trainer_ aliases.
type BookingRow struct {
	BookingID int64 `db:"booking_id"`
	SessionColumns
	ActivityColumns
	LocationColumns
	MemberColumns
	TrainerColumns
}

// SessionRow is one flat result row of the trainer session join.
type SessionRow struct {
	SessionColumns
	ActivityColumns
	LocationColumns
	TrainerColumns
}

func (c SessionColumns) slot() (SessionSlot, bool) {
	if !c.SessionID.Valid {
		return SessionSlot{}, false
	}

	return SessionSlot{ID: c.SessionID.Int64, Date: c.SessionDate.String, Time: c.SessionTime.String}, true
}

func (c ActivityColumns) activity() (Activity, bool) {
	if !c.ActivityID.Valid {
		return Activity{}, false
	}

	return Activity{ID: c.ActivityID.Int64, Name: c.ActivityName.String, Description: c.ActivityDescription.String}, true
}

func (c LocationColumns) location() (Location, bool) {
	if !c.LocationID.Valid {
		return Location{}, false
	}

	return Location{ID: c.LocationID.Int64, Name: c.LocationName.String, Address: c.LocationAddress.String}, true
}

func (c MemberColumns) principal() (Principal, bool) {
	if !c.MemberID.Valid {
		return Principal{}, false
	}

	return Principal{
		ID:        c.MemberID.Int64,
		Email:     c.MemberEmail.String,
		FirstName: c.MemberFirstName.String,
		LastName:  c.MemberLastName.String,
		Role:      c.MemberRole.String,
	}, true
}

func (c TrainerColumns) principal() (Principal, bool) {
	if !c.TrainerID.Valid {
		return Principal{}, false
	}

	return Principal{
		ID:        c.TrainerID.Int64,
		Email:     c.TrainerEmail.String,
		FirstName: c.TrainerFirstName.String,
		LastName:  c.TrainerLastName.String,
		Role:      c.TrainerRole.String,
	}, true
}

// FromRow projects a booking row into an EnrichedBooking. Any missing joined
// row yields ErrIncompleteRow naming the relation.
func (r BookingRow) FromRow() (EnrichedBooking, error) {
	session, ok := r.slot()
	if !ok {
		return EnrichedBooking{}, fmt.Errorf("%w: session", ErrIncompleteRow)
	}

	activity, ok := r.activity()
	if !ok {
		return EnrichedBooking{}, fmt.Errorf("%w: activity", ErrIncompleteRow)
	}

	location, ok := r.location()
	if !ok {
		return EnrichedBooking{}, fmt.Errorf("%w: location", ErrIncompleteRow)
	}

	member, ok := r.MemberColumns.principal()
	if !ok {
		return EnrichedBooking{}, fmt.Errorf("%w: member", ErrIncompleteRow)
	}

	trainer, ok := r.TrainerColumns.principal()
	if !ok {
		return EnrichedBooking{}, fmt.Errorf("%w: trainer", ErrIncompleteRow)
	}

	return EnrichedBooking{
		BookingID: r.BookingID,
		Session:   session,
		Activity:  activity,
		Location:  location,
		Member:    member,
		Trainer:   trainer,
	}, nil
}

// FromRow projects a session row into an EnrichedSession.
func (r SessionRow) FromRow() (EnrichedSession, error) {
	session, ok := r.slot()
	if !ok {
		return EnrichedSession{}, fmt.Errorf("%w: session", ErrIncompleteRow)
	}

	activity, ok := r.activity()
	if !ok {
		return EnrichedSession{}, fmt.Errorf("%w: activity", ErrIncompleteRow)
	}

	location, ok := r.location()
	if !ok {
		return EnrichedSession{}, fmt.Errorf("%w: location", ErrIncompleteRow)
	}

	trainer, ok := r.principal()
	if !ok {
		return EnrichedSession{}, fmt.Errorf("%w: trainer", ErrIncompleteRow)
	}

	return EnrichedSession{
		Session:  session,
		Activity: activity,
		Location: location,
		Trainer:  trainer,
	}, nil
}
