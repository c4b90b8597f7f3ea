package auth

import (
	"gymhub/config"
	"gymhub/infras/otel"
	"gymhub/internal/domains/auth/model/dto"
	"gymhub/internal/domains/auth/service"
	"gymhub/shared/constant"
	"gymhub/shared/validator"
	"gymhub/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
	cfg     *config.Config
}

func New(service service.Auth, otel otel.Otel, cfg *config.Config) Handler {
	return Handler{
		service: service,
		otel:    otel,
		cfg:     cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/logout", handler.Logout)
		r.Patch("/password", handler.ChangePassword)
	})
}

// Register handles member self-registration
// @Summary Register a new member
// @Description Register a new member account. Self-registration always yields the member role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.RegisterResponse] "Member registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to register member")

		return
	}

	scope.AddEvent("Member registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Login handles user login
// @Summary Login a user
// @Description Rotates the user's API key and sets the web session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to login user")

		return
	}

	http.SetCookie(w, handler.sessionCookie(res.SessionToken, res.ExpiresAt))

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout revokes the API key of the caller
// @Summary Logout
// @Description Revokes the caller's API key and clears the web session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security ApiKeyAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx); err != nil {
		response.Fail(w, scope, err, "failed to logout user")

		return
	}

	http.SetCookie(w, handler.sessionCookie(constant.Empty, time.Unix(0, 0)))

	scope.AddEvent("User logged out successfully")

	response.WithMessage(w, http.StatusOK, "Logged out successfully")
}

// ChangePassword changes the caller's password
// @Summary Change password
// @Description Verifies the current password and stores the new one.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/password [patch]
// @Security ApiKeyAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		response.Fail(w, scope, err, "failed to change password")

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

func (handler *Handler) sessionCookie(value string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     handler.cfg.App.SessionCookie,
		Value:    value,
		Path:     "/web",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   handler.cfg.Server.Env != constant.ServerEnvDevelopment,
		SameSite: http.SameSiteLaxMode,
	}

	if value == constant.Empty {
		cookie.MaxAge = -1
	}

	return cookie
}
