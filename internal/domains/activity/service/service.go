package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Activity=MockActivityService

import (
	"context"
	"fmt"
	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/internal/domains/activity/model"
	"gymhub/internal/domains/activity/model/dto"
	"gymhub/internal/domains/activity/repository"
	"gymhub/shared"
	"gymhub/shared/cache"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetActivity    = "activity:get"
	cacheGetAllActivity = "activity:gets"
)

type Activity interface {
	Create(ctx context.Context, req dto.CreateActivityRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
	Get(ctx context.Context, id int64) (dto.ActivityResponse, error)
	Update(ctx context.Context, req dto.UpdateActivityRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Activity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Activity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Activity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateActivityRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel(shared.ActorName(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create activity")

		return 0, fmt.Errorf("failed to create activity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllActivity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for activities")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetActivity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	activity, err := s.repo.Get(ctx, shared.ActiveByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity")

		return res, fmt.Errorf("failed to get activity: %w", err)
	}

	if activity.ID == 0 {
		return res, failure.NotFound("activity not found") // nolint:wrapcheck
	}

	res.FromModel(activity)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save activity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateActivityRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateActivityRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.ActiveByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("activity not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.ActorName(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update activity")

		return fmt.Errorf("failed to update activity: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.ActiveByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if activity exists")

		return fmt.Errorf("failed to check if activity exists: %w", err)
	}

	if !exist {
		return failure.NotFound("activity not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter, shared.ActorName(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to delete activity")

		return fmt.Errorf("failed to delete activity: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetActivity, id)); err != nil {
			log.Error().Err(err).Msg("failed to invalidate activity cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllActivity)
	}()
}
