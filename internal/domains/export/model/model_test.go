package model_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gymhub/internal/domains/export/model"
	"gymhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(value string) sql.NullString {
	return sql.NullString{String: value, Valid: true}
}

func id(value int64) sql.NullInt64 {
	return sql.NullInt64{Int64: value, Valid: true}
}

func completeBookingRow() model.BookingRow {
	return model.BookingRow{
		BookingID: 31,
		SessionColumns: model.SessionColumns{
			SessionID: id(12), SessionDate: str("2025-02-05"), SessionTime: str("10:00:00"),
		},
		ActivityColumns: model.ActivityColumns{
			ActivityID: id(3), ActivityName: str("Yoga"), ActivityDescription: str("Gentle"),
		},
		LocationColumns: model.LocationColumns{
			LocationID: id(2), LocationName: str("Downtown"), LocationAddress: str("1 Main"),
		},
		MemberColumns: model.MemberColumns{
			MemberID: id(7), MemberEmail: str("mia@gym.test"), MemberFirstName: str("Mia"), MemberLastName: str("M"), MemberRole: str("member"),
		},
		TrainerColumns: model.TrainerColumns{
			TrainerID: id(9), TrainerEmail: str("ada@gym.test"), TrainerFirstName: str("Ada"), TrainerLastName: str("L"), TrainerRole: str("trainer"),
		},
	}
}

func TestBookingRow_FromRow(t *testing.T) {
	booking, err := completeBookingRow().FromRow()
	require.NoError(t, err)

	assert.Equal(t, model.EnrichedBooking{
		BookingID: 31,
		Session:   model.SessionSlot{ID: 12, Date: "2025-02-05", Time: "10:00:00"},
		Activity:  model.Activity{ID: 3, Name: "Yoga", Description: "Gentle"},
		Location:  model.Location{ID: 2, Name: "Downtown", Address: "1 Main"},
		Member:    model.Principal{ID: 7, Email: "mia@gym.test", FirstName: "Mia", LastName: "M", Role: "member"},
		Trainer:   model.Principal{ID: 9, Email: "ada@gym.test", FirstName: "Ada", LastName: "L", Role: "trainer"},
	}, booking)
}

func TestBookingRow_FromRowMissingJoin(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*model.BookingRow)
	}{
		{name: "session", mutate: func(r *model.BookingRow) { r.SessionID = sql.NullInt64{} }},
		{name: "activity", mutate: func(r *model.BookingRow) { r.ActivityID = sql.NullInt64{} }},
		{name: "location", mutate: func(r *model.BookingRow) { r.LocationID = sql.NullInt64{} }},
		{name: "member", mutate: func(r *model.BookingRow) { r.MemberID = sql.NullInt64{} }},
		{name: "trainer", mutate: func(r *model.BookingRow) { r.TrainerID = sql.NullInt64{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := completeBookingRow()
			tc.mutate(&row)

			_, err := row.FromRow()

			require.ErrorIs(t, err, model.ErrIncompleteRow)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestSessionRow_FromRow(t *testing.T) {
	full := completeBookingRow()
	row := model.SessionRow{
		SessionColumns:  full.SessionColumns,
		ActivityColumns: full.ActivityColumns,
		LocationColumns: full.LocationColumns,
		TrainerColumns:  full.TrainerColumns,
	}

	session, err := row.FromRow()
	require.NoError(t, err)
	assert.Equal(t, int64(12), session.Session.ID)
	assert.Equal(t, "Ada", session.Trainer.FirstName)

	row.TrainerID = sql.NullInt64{}
	_, err = row.FromRow()
	assert.ErrorIs(t, err, model.ErrIncompleteRow)
}

func TestPrincipal_FullName(t *testing.T) {
	assert.Equal(t, "Ada L", model.Principal{FirstName: "Ada", LastName: "L"}.FullName())
	assert.Equal(t, "Ada", model.Principal{FirstName: "Ada"}.FullName())
	assert.Equal(t, "L", model.Principal{LastName: "L"}.FullName())
}

func TestDataError(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name     string
		err      error
		wantKind model.DataErrorKind
		wantCode int
	}{
		{name: "not found", err: model.ErrPrincipalNotFound(4), wantKind: model.KindNotFound, wantCode: http.StatusNotFound},
		{name: "denied", err: model.ErrForbidden("nope"), wantKind: model.KindDenied, wantCode: http.StatusForbidden},
		{name: "store failure", err: model.ErrDataUnavailable(storeErr), wantKind: model.KindStoreFailure, wantCode: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("outer: %w", model.ErrPrincipalNotFound(4)), wantKind: model.KindNotFound, wantCode: http.StatusNotFound},
		{name: "foreign error", err: storeErr, wantKind: 0, wantCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantKind, model.KindOf(tc.err))
			assert.Equal(t, tc.wantCode, failure.GetCode(tc.err))
		})
	}

	assert.ErrorIs(t, model.ErrDataUnavailable(storeErr), storeErr)
}
