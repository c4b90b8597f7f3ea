package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/internal/domains/booking/model"
	"gymhub/internal/domains/booking/model/dto"
	"gymhub/internal/domains/booking/repository"
	sessionModel "gymhub/internal/domains/session/model"
	sessionRepo "gymhub/internal/domains/session/repository"
	"gymhub/shared"
	"gymhub/shared/cache"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	alreadyBooked = "session already booked"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Booking
	sessionRepo sessionRepo.Session
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Booking, sessionRepo sessionRepo.Session, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return 0, failure.MissingPrincipalError
	}

	sessionExists, err := s.sessionRepo.Exist(ctx, shared.ActiveByID(req.SessionID, sessionModel.FieldID, sessionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if session exists")

		return 0, fmt.Errorf("failed to check if session exists: %w", err)
	}

	if !sessionExists {
		return 0, failure.BadRequestFromString("session does not exist") // nolint:wrapcheck
	}

	duplicate := shared.WithNotDeleted(gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: actor.ID, Table: model.TableName},
			gDto.Filter{Field: model.FieldSessionID, Operator: gDto.FilterOperatorEq, Value: req.SessionID, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}, model.TableName)

	booked, err := s.repo.Exist(ctx, duplicate)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for duplicate booking")

		return 0, fmt.Errorf("failed to check for duplicate booking: %w", err)
	}

	if booked {
		return 0, failure.Conflict(alreadyBooked) // nolint:wrapcheck
	}

	id, err = s.repo.Insert(ctx, req.ToModel(actor.ID, actor.Email))
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return 0, failure.Conflict(alreadyBooked) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, 0)

	return id, nil
}

// GetMine lists the caller's live bookings.
func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return res, failure.MissingPrincipalError
	}

	filter := dto.BookingFilter{UserID: actor.ID}

	return s.GetAll(ctx, req, filter.ToFilterGroup())
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Get returns a booking visible to the caller: their own, or any booking for an admin.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return res, failure.MissingPrincipalError
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		var booking model.Booking

		booking, err = s.load(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(booking)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	if !actor.IsAdmin() && res.UserID != actor.ID {
		return dto.BookingResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

// Delete cancels a booking. Members may only cancel their own.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return failure.MissingPrincipalError
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && booking.UserID != actor.ID {
		return failure.ResourceRestrictedError
	}

	if err = s.repo.Delete(ctx, shared.ActiveByID(id, model.FieldID, model.TableName), actor.Email); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.ActiveByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id > 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to invalidate booking cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
