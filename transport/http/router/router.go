package router

import (
	_ "gymhub/docs" // swagger document
	"gymhub/internal/handlers/activity"
	"gymhub/internal/handlers/auth"
	"gymhub/internal/handlers/booking"
	"gymhub/internal/handlers/export"
	"gymhub/internal/handlers/location"
	"gymhub/internal/handlers/session"
	"gymhub/internal/handlers/user"
	"gymhub/shared/constant"
	"gymhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Activity activity.Handler
	Location location.Handler
	Session  session.Handler
	Booking  booking.Handler
	Export   export.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts the JSON API under /v1 and the cookie-authenticated
// download surface under /web.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RequestID, r.App.Tracing, r.App.CORS(), r.App.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.Surface(constant.SurfaceAPI), r.AuthRole.APIKey, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Activity.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Export.Router(routerGroup)
	})

	router.Route("/web", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.Surface(constant.SurfaceWeb), r.AuthRole.Session, r.AuthRole.RBAC)

		r.DomainHandlers.Export.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
