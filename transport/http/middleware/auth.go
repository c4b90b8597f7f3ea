package middleware

import (
	"context"
	"errors"
	"gymhub/config"
	"gymhub/infras/jwt"
	"gymhub/infras/otel"
	userService "gymhub/internal/domains/user/service"
	"gymhub/permissions"
	"gymhub/shared"
	"gymhub/shared/constant"
	"gymhub/shared/failure"
	"gymhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth attaches the request principal. Requests without credentials pass
// through anonymously and are judged by RBAC.
type Auth interface {
	APIKey(http.Handler) http.Handler
	Session(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	users      userService.User
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(users userService.User, jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		users:      users,
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Surface tags the request with the surface it arrived on, which picks the error format.
func Surface(surface string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := context.WithValue(request.Context(), constant.ContextKeySurface, surface)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ErrorWriterFor returns the error format of the request's surface.
func ErrorWriterFor(ctx context.Context) response.ErrorWriter {
	if surface, _ := ctx.Value(constant.ContextKeySurface).(string); surface == constant.SurfaceWeb {
		return response.WithHTMLError
	}

	return response.WithError
}

// APIKey resolves the opaque key in the configured header to a principal.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(m.cfg.App.AuthHeader)
		if apiKey == constant.Empty {
			scope.SetAttribute("auth.source", "anonymous")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		principal, err := m.users.ResolveAPIKey(ctx, apiKey)
		if err != nil {
			scope.TraceError(err)
			scope.End()

			if failure.GetCode(err) != http.StatusUnauthorized {
				log.Error().Err(err).Msg("failed to resolve api key")
			}

			ErrorWriterFor(ctx)(writer, err)

			return
		}

		scope.SetAttributes(map[string]any{
			"auth.source": "api_key",
			"user.id":     principal.ID,
			"user.role":   principal.Role,
		})
		scope.End()

		next.ServeHTTP(writer, request.WithContext(shared.WithActor(request.Context(), principal.ToActor())))
	})
}

// Session reads the signed session cookie of the web surface.
func (m *authRoleImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")

		cookie, err := request.Cookie(m.cfg.App.SessionCookie)
		if err != nil || cookie.Value == constant.Empty {
			scope.SetAttribute("auth.source", "anonymous")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.jwtService.ValidateSession(cookie.Value)
		if err != nil {
			message := "Invalid session"
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = "Session has expired"
			}

			fail := failure.Unauthorized(message)
			scope.TraceError(err)
			scope.End()

			ErrorWriterFor(ctx)(writer, fail)

			return
		}

		scope.SetAttributes(map[string]any{
			"auth.source": "session",
			"user.id":     claims.UserID,
			"user.role":   claims.Role,
		})
		scope.End()

		actor := shared.Actor{ID: claims.UserID, Email: claims.Email, Role: claims.Role}

		next.ServeHTTP(writer, request.WithContext(shared.WithActor(request.Context(), actor)))
	})
}

// RBAC checks the principal's role against the permissions of the matched route.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		writeError := ErrorWriterFor(ctx)

		if m.permission == nil {
			scope.End()
			writeError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := routePattern(request)
		permission, _ := m.permission.FindPermissions(path, request.Method)

		scope.SetAttributes(map[string]any{
			"http.route":  path,
			"http.method": request.Method,
		})

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		actor, ok := shared.ActorFromContext(ctx)
		if !ok {
			scope.TraceError(failure.MissingPrincipalError)
			scope.End()
			writeError(writer, failure.MissingPrincipalError)

			return
		}

		if !permission.Allows(actor.Role) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     actor.Role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			writeError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
