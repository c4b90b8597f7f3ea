package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Location=MockLocationService

import (
	"context"
	"fmt"
	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/internal/domains/location/model"
	"gymhub/internal/domains/location/model/dto"
	"gymhub/internal/domains/location/repository"
	"gymhub/shared"
	"gymhub/shared/cache"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetLocation    = "location:get"
	cacheGetAllLocation = "location:gets"
	cacheCountLocation  = "location:count"
)

type Location interface {
	Create(ctx context.Context, req dto.CreateLocationRequest) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLocationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.LocationResponse, error)
	Update(ctx context.Context, req dto.UpdateLocationRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Location
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Location, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Location {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// nameTaken reports whether another live location already uses name.
func (s *serviceImpl) nameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorEq,
			Value:    strings.TrimSpace(name),
			Table:    model.TableName,
		},
	}

	if exceptID > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableName,
		})
	}

	exists, err := s.repo.Exist(ctx, shared.WithNotDeleted(gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check location name: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLocationRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.nameTaken(ctx, req.Name, 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to check location name")

		return 0, err
	}

	if taken {
		return 0, failure.Conflict("location name already in use") // nolint:wrapcheck
	}

	id, err = s.repo.Insert(ctx, req.ToModel(shared.ActorName(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create location")

		return 0, fmt.Errorf("failed to create location: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocation)
		shared.InvalidateCaches(c, s.cache, cacheCountLocation)
	}()

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLocation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for locations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count locations")

		return res, fmt.Errorf("failed to count locations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save locations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = shared.WithNotDeleted(filter, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLocation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count locations")

		return res, fmt.Errorf("failed to count locations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save location count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetLocation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	location, err := s.repo.Get(ctx, shared.ActiveByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get location")

		return res, fmt.Errorf("failed to get location: %w", err)
	}

	if location.ID == 0 {
		return res, failure.NotFound("location not found") // nolint:wrapcheck
	}

	res.FromModel(location)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save location to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateLocationRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateLocationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.ActiveByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if location exists")

		return fmt.Errorf("failed to check if location exists: %w", err)
	}

	if !exist {
		return failure.NotFound("location not found") // nolint:wrapcheck
	}

	if req.Name != "" {
		taken, err := s.nameTaken(ctx, req.Name, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to check location name")

			return err
		}

		if taken {
			return failure.Conflict("location name already in use") // nolint:wrapcheck
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.ActorName(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update location")

		return fmt.Errorf("failed to update location: %w", err)
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
		log.Error().Err(err).Msg("failed to check if location exists")

		return fmt.Errorf("failed to check if location exists: %w", err)
	}

	if !exist {
		return failure.NotFound("location not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter, shared.ActorName(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to delete location")

		return fmt.Errorf("failed to delete location: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLocation, id)); err != nil {
			log.Error().Err(err).Msg("failed to invalidate location cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLocation)
		shared.InvalidateCaches(c, s.cache, cacheCountLocation)
	}()
}
