package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Export=MockExportService

import (
	"context"
	"fmt"
	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/internal/domains/export/backup"
	"gymhub/internal/domains/export/model"
	"gymhub/internal/domains/export/model/dto"
	"gymhub/internal/domains/export/repository"
	"gymhub/internal/domains/export/weekly"
	"gymhub/shared"
	"gymhub/shared/constant"
	"gymhub/shared/failure"
	"gymhub/shared/timezone"
	"slices"

	"github.com/rs/zerolog/log"
)

// exportAccess names the roles allowed to call an exporter and the role whose
// records it renders.
type exportAccess struct {
	callers []string
	subject string
}

var (
	bookingHistoryAccess = exportAccess{callers: []string{constant.RoleMember, constant.RoleAdmin}, subject: constant.RoleMember}
	weeklySessionsAccess = exportAccess{callers: []string{constant.RoleTrainer, constant.RoleAdmin}, subject: constant.RoleTrainer}
)

type Export interface {
	BookingHistory(ctx context.Context, query dto.BookingHistoryQuery) (dto.Document, error)
	WeeklySessions(ctx context.Context, query dto.WeeklySessionsQuery) (dto.Document, error)
}

type serviceImpl struct {
	fetcher repository.Fetcher
	backup  backup.Writer
	clock   timezone.Clock
	cfg     *config.Config
	otel    otel.Otel
}

func New(fetcher repository.Fetcher, backup backup.Writer, clock timezone.Clock, cfg *config.Config, otel otel.Otel) Export {
	return &serviceImpl{
		fetcher: fetcher,
		backup:  backup,
		clock:   clock,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) BookingHistory(ctx context.Context, query dto.BookingHistoryQuery) (doc dto.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExportScopeName, constant.OtelExportScopeName+".BookingHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := s.resolvePrincipal(ctx, query.UserID, bookingHistoryAccess)
	if err != nil {
		return doc, err
	}

	bookings, err := s.fetcher.FetchEnrichedBookingsForMember(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Int64("member_id", principal.ID).Msg("failed to fetch bookings for export")

		return doc, fmt.Errorf("failed to fetch bookings for export: %w", err)
	}

	opts := weekly.FilterOptions{
		OnlyPast: query.OnlyPast,
		Today:    timezone.Today(s.clock),
	}

	result := weekly.Export(weekly.BookingHistory(s.cfg.Export.Copyright), principal, bookings, opts, s.clock.Now())
	if result.Dropped > 0 {
		log.Warn().Int("dropped", result.Dropped).Int64("member_id", principal.ID).Msg("dropped bookings with malformed dates")
	}

	doc = dto.Document{
		Filename: weekly.BookingHistoryFilename(principal),
		Body:     result.Body,
		Count:    result.Count,
	}

	s.backup.Save(ctx, doc.Filename, doc.Body)

	return doc, nil
}

func (s *serviceImpl) WeeklySessions(ctx context.Context, query dto.WeeklySessionsQuery) (doc dto.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExportScopeName, constant.OtelExportScopeName+".WeeklySessions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := s.resolvePrincipal(ctx, query.UserID, weeklySessionsAccess)
	if err != nil {
		return doc, err
	}

	sessions, err := s.fetcher.FetchEnrichedSessionsForTrainer(ctx, principal.ID, query.StartDate, query.EndDate)
	if err != nil {
		log.Error().Err(err).Int64("trainer_id", principal.ID).Msg("failed to fetch sessions for export")

		return doc, fmt.Errorf("failed to fetch sessions for export: %w", err)
	}

	opts := weekly.FilterOptions{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Today:     timezone.Today(s.clock),
	}

	result := weekly.Export(weekly.WeeklySessions(s.cfg.Export.Copyright), principal, sessions, opts, s.clock.Now())
	if result.Dropped > 0 {
		log.Warn().Int("dropped", result.Dropped).Int64("trainer_id", principal.ID).Msg("dropped sessions with malformed dates")
	}

	doc = dto.Document{
		Filename: weekly.WeeklySessionsFilename(principal, query.StartDate, query.EndDate),
		Body:     result.Body,
		Count:    result.Count,
	}

	s.backup.Save(ctx, doc.Filename, doc.Body)

	return doc, nil
}

// resolvePrincipal picks whose records are exported. Callers export their own
// records; an admin may name another user holding the exporter's subject role.
func (s *serviceImpl) resolvePrincipal(ctx context.Context, requested int64, access exportAccess) (model.Principal, error) {
	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return model.Principal{}, failure.MissingPrincipalError
	}

	if !slices.Contains(access.callers, actor.Role) {
		return model.Principal{}, model.ErrForbidden(fmt.Sprintf("role %q cannot use this export", actor.Role))
	}

	target := actor.ID

	if requested > 0 && requested != actor.ID {
		if !actor.IsAdmin() {
			return model.Principal{}, model.ErrForbidden("only admins can export another user's records")
		}

		target = requested
	}

	principal, err := s.fetcher.FetchPrincipal(ctx, target)
	if err != nil {
		if model.KindOf(err) != model.KindNotFound {
			log.Error().Err(err).Int64("user_id", target).Msg("failed to fetch export principal")
		}

		return model.Principal{}, fmt.Errorf("failed to fetch export principal: %w", err)
	}

	if target != actor.ID && principal.Role != access.subject {
		return model.Principal{}, failure.BadRequestFromString(fmt.Sprintf("user %d is not a %s", target, access.subject)) // nolint:wrapcheck
	}

	return principal, nil
}
