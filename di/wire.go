//go:build wireinject
// +build wireinject

package di

import (
	"gymhub/config"
	"gymhub/infras/jwt"
	"gymhub/infras/otel"
	"gymhub/infras/postgres"
	"gymhub/infras/redis"
	"gymhub/infras/s3"
	"gymhub/permissions"
	"gymhub/shared/cache"
	"gymhub/shared/timezone"
	"gymhub/transport/http"
	"gymhub/transport/http/middleware"
	"gymhub/transport/http/router"

	"github.com/google/wire"

	activityRepository "gymhub/internal/domains/activity/repository"
	activityService "gymhub/internal/domains/activity/service"
	authService "gymhub/internal/domains/auth/service"
	bookingRepository "gymhub/internal/domains/booking/repository"
	bookingService "gymhub/internal/domains/booking/service"
	exportBackup "gymhub/internal/domains/export/backup"
	exportRepository "gymhub/internal/domains/export/repository"
	exportService "gymhub/internal/domains/export/service"
	locationRepository "gymhub/internal/domains/location/repository"
	locationService "gymhub/internal/domains/location/service"
	sessionRepository "gymhub/internal/domains/session/repository"
	sessionService "gymhub/internal/domains/session/service"
	userRepository "gymhub/internal/domains/user/repository"
	userService "gymhub/internal/domains/user/service"

	activityHandler "gymhub/internal/handlers/activity"
	authHandler "gymhub/internal/handlers/auth"
	bookingHandler "gymhub/internal/handlers/booking"
	exportHandler "gymhub/internal/handlers/export"
	locationHandler "gymhub/internal/handlers/location"
	sessionHandler "gymhub/internal/handlers/session"
	userHandler "gymhub/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.SystemClock,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var activityDomain = wire.NewSet(
	activityRepository.New,
	activityService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var exportDomain = wire.NewSet(
	exportRepository.New,
	exportBackup.New,
	exportService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	activityDomain,
	locationDomain,
	sessionDomain,
	bookingDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	activityHandler.New,
	locationHandler.New,
	sessionHandler.New,
	bookingHandler.New,
	exportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
