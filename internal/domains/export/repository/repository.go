package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/fetcher_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"gymhub/infras/otel"
	"gymhub/infras/postgres"
	"gymhub/internal/domains/export/model"
	"gymhub/shared/constant"
	"gymhub/shared/logger"
)

const bookingsForMemberQuery = `SELECT
	b.id AS booking_id,
	s.id AS session_id,
	to_char(s.session_date, 'YYYY-MM-DD') AS session_date,
	to_char(s.session_time, 'HH24:MI:SS') AS session_time,
	a.id AS activity_id,
	a.name AS activity_name,
	a.description AS activity_description,
	l.id AS location_id,
	l.name AS location_name,
	l.address AS location_address,
	m.id AS member_id,
	m.email AS member_email,
	m.first_name AS member_first_name,
	m.last_name AS member_last_name,
	m.role AS member_role,
	t.id AS trainer_id,
	t.email AS trainer_email,
	t.first_name AS trainer_first_name,
	t.last_name AS trainer_last_name,
	t.role AS trainer_role
FROM bookings b
LEFT JOIN sessions s ON s.id = b.session_id AND s.deleted = false
LEFT JOIN activities a ON a.id = s.activity_id AND a.deleted = false
LEFT JOIN locations l ON l.id = s.location_id AND l.deleted = false
LEFT JOIN users m ON m.id = b.user_id AND m.deleted = false
LEFT JOIN users t ON t.id = s.trainer_id AND t.deleted = false
WHERE b.user_id = $1 AND b.deleted = false`

const sessionsForTrainerQuery = `SELECT
	s.id AS session_id,
	to_char(s.session_date, 'YYYY-MM-DD') AS session_date,
	to_char(s.session_time, 'HH24:MI:SS') AS session_time,
	a.id AS activity_id,
	a.name AS activity_name,
	a.description AS activity_description,
	l.id AS location_id,
	l.name AS location_name,
	l.address AS location_address,
	t.id AS trainer_id,
	t.email AS trainer_email,
	t.first_name AS trainer_first_name,
	t.last_name AS trainer_last_name,
	t.role AS trainer_role
FROM sessions s
LEFT JOIN activities a ON a.id = s.activity_id AND a.deleted = false
LEFT JOIN locations l ON l.id = s.location_id AND l.deleted = false
LEFT JOIN users t ON t.id = s.trainer_id AND t.deleted = false
WHERE s.trainer_id = $1 AND s.deleted = false`

const principalQuery = `SELECT id, email, first_name, last_name, role
FROM users
WHERE id = $1 AND deleted = false
LIMIT 1`

// Fetcher reads the joined records the export pipeline works on. Order is not guaranteed.
type Fetcher interface {
	FetchEnrichedBookingsForMember(ctx context.Context, memberID int64) ([]model.EnrichedBooking, error)
	FetchEnrichedSessionsForTrainer(ctx context.Context, trainerID int64, startDate, endDate string) ([]model.EnrichedSession, error)
	FetchPrincipal(ctx context.Context, id int64) (model.Principal, error)
}

type fetcherImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Fetcher {
	return &fetcherImpl{
		db:   db,
		otel: otel,
	}
}

func (f *fetcherImpl) FetchEnrichedBookingsForMember(ctx context.Context, memberID int64) (bookings []model.EnrichedBooking, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".export.FetchEnrichedBookingsForMember")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, bookingsForMemberQuery)

	var rows []model.BookingRow

	if err = f.db.Read.SelectContext(ctx, &rows, bookingsForMemberQuery, memberID); err != nil {
		logger.ErrorWithStack(err)

		return nil, model.ErrDataUnavailable(fmt.Errorf("failed to fetch bookings for member %d: %w", memberID, err))
	}

	bookings = make([]model.EnrichedBooking, 0, len(rows))

	for _, row := range rows {
		booking, rowErr := row.FromRow()
		if rowErr != nil {
			log.Warn().Err(rowErr).Int64("booking_id", row.BookingID).Msg("dropping booking with missing joined rows")

			continue
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (f *fetcherImpl) FetchEnrichedSessionsForTrainer(ctx context.Context, trainerID int64, startDate, endDate string) (sessions []model.EnrichedSession, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".export.FetchEnrichedSessionsForTrainer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args := trainerSessionsQuery(trainerID, startDate, endDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.SessionRow

	if err = f.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, model.ErrDataUnavailable(fmt.Errorf("failed to fetch sessions for trainer %d: %w", trainerID, err))
	}

	sessions = make([]model.EnrichedSession, 0, len(rows))

	for _, row := range rows {
		session, rowErr := row.FromRow()
		if rowErr != nil {
			log.Warn().Err(rowErr).Int64("session_id", row.SessionID.Int64).Msg("dropping session with missing joined rows")

			continue
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (f *fetcherImpl) FetchPrincipal(ctx context.Context, id int64) (principal model.Principal, err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".export.FetchPrincipal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, principalQuery)

	err = f.db.Read.GetContext(ctx, &principal, principalQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return principal, model.ErrPrincipalNotFound(id)
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return principal, model.ErrDataUnavailable(fmt.Errorf("failed to fetch user %d: %w", id, err))
	}

	return principal, nil
}

// trainerSessionsQuery pushes optional civil-date bounds down to SQL.
func trainerSessionsQuery(trainerID int64, startDate, endDate string) (string, []any) {
	var query strings.Builder

	query.WriteString(sessionsForTrainerQuery)

	args := []any{trainerID}

	if startDate != constant.Empty {
		args = append(args, startDate)
		fmt.Fprintf(&query, " AND s.session_date >= $%d", len(args))
	}

	if endDate != constant.Empty {
		args = append(args, endDate)
		fmt.Fprintf(&query, " AND s.session_date <= $%d", len(args))
	}

	return query.String(), args
}
