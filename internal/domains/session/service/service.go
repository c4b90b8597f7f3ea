package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Session=MockSessionService

import (
	"context"
	"fmt"
	"gymhub/config"
	"gymhub/infras/otel"
	activityModel "gymhub/internal/domains/activity/model"
	activityRepo "gymhub/internal/domains/activity/repository"
	locationModel "gymhub/internal/domains/location/model"
	locationRepo "gymhub/internal/domains/location/repository"
	"gymhub/internal/domains/session/model"
	"gymhub/internal/domains/session/model/dto"
	"gymhub/internal/domains/session/repository"
	userModel "gymhub/internal/domains/user/model"
	userRepo "gymhub/internal/domains/user/repository"
	"gymhub/shared"
	"gymhub/shared/cache"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSession    = "session:get"
	cacheGetAllSession = "session:gets"
	cacheCountSession  = "session:count"
)

type Session interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSessionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.SessionResponse, error)
	Update(ctx context.Context, req dto.UpdateSessionRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo         repository.Session
	activityRepo activityRepo.Activity
	locationRepo locationRepo.Location
	userRepo     userRepo.User
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Session,
	activityRepo activityRepo.Activity,
	locationRepo locationRepo.Location,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Session {
	return &serviceImpl{
		repo:         repo,
		activityRepo: activityRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// checkReferences verifies that every non-zero foreign key points at a live row.
func (s *serviceImpl) checkReferences(ctx context.Context, activityID, locationID, trainerID int64) error {
	if activityID > 0 {
		exists, err := s.activityRepo.Exist(ctx, shared.ActiveByID(activityID, activityModel.FieldID, activityModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if activity exists: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString("activity does not exist") // nolint:wrapcheck
		}
	}

	if locationID > 0 {
		exists, err := s.locationRepo.Exist(ctx, shared.ActiveByID(locationID, locationModel.FieldID, locationModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check if location exists: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString("location does not exist") // nolint:wrapcheck
		}
	}

	if trainerID > 0 {
		filter := shared.ActiveByID(trainerID, userModel.FieldID, userModel.TableName)
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    userModel.FieldRole,
			Operator: gDto.FilterOperatorIn,
			Value:    []string{constant.RoleTrainer, constant.RoleAdmin},
			Table:    userModel.TableName,
		})

		exists, err := s.userRepo.Exist(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to check if trainer exists: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString("trainer does not exist") // nolint:wrapcheck
		}
	}

	return nil
}

// resolveTrainer decides who runs a new session. Trainers always run their own sessions.
func resolveTrainer(actor shared.Actor, requested int64) (int64, error) {
	if actor.IsAdmin() {
		if requested == 0 {
			return actor.ID, nil
		}

		return requested, nil
	}

	if requested != 0 && requested != actor.ID {
		return 0, failure.Forbidden("trainers can only schedule their own sessions") // nolint:wrapcheck
	}

	return actor.ID, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSessionRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return 0, failure.MissingPrincipalError
	}

	req.TrainerID, err = resolveTrainer(actor, req.TrainerID)
	if err != nil {
		return 0, err
	}

	if err = s.checkReferences(ctx, req.ActivityID, req.LocationID, req.TrainerID); err != nil {
		log.Error().Err(err).Msg("failed to validate session references")

		return 0, err
	}

	id, err = s.repo.Insert(ctx, req.ToModel(actor.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return 0, fmt.Errorf("failed to create session: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSessionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSession, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sessions")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sessions")

		return res, fmt.Errorf("failed to get sessions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sessions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSession, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sessions")

		return res, fmt.Errorf("failed to count sessions: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save session count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetSession, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(session)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save session to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSessionRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateSessionRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return failure.MissingPrincipalError
	}

	session, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	if req.TrainerID != 0 && req.TrainerID != session.TrainerID && !actor.IsAdmin() {
		return failure.Forbidden("trainers can only schedule their own sessions") // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, req.ActivityID, req.LocationID, req.TrainerID); err != nil {
		log.Error().Err(err).Msg("failed to validate session references")

		return err
	}

	req.SessionTime = dto.NormalizeClock(req.SessionTime)

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor.Email), shared.ActiveByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update session")

		return fmt.Errorf("failed to update session: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, ok := shared.ActorFromContext(ctx)
	if !ok {
		return failure.MissingPrincipalError
	}

	if _, err = s.loadOwned(ctx, actor, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.ActiveByID(id, model.FieldID, model.TableName), actor.Email); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) load(ctx context.Context, id int64) (model.Session, error) {
	session, err := s.repo.Get(ctx, shared.ActiveByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return session, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ID == 0 {
		return session, failure.NotFound("session not found") // nolint:wrapcheck
	}

	return session, nil
}

// loadOwned returns the session when actor may modify it.
func (s *serviceImpl) loadOwned(ctx context.Context, actor shared.Actor, id int64) (model.Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return session, err
	}

	if !actor.IsAdmin() && session.TrainerID != actor.ID {
		return session, failure.ResourceRestrictedError
	}

	return session, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSession, id)); err != nil {
			log.Error().Err(err).Msg("failed to invalidate session cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSession)
		shared.InvalidateCaches(c, s.cache, cacheCountSession)
	}()
}
