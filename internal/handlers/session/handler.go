package session

import (
	"gymhub/infras/otel"
	"gymhub/internal/domains/session/model/dto"
	"gymhub/internal/domains/session/service"
	"gymhub/shared"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/validator"
	"gymhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Session
	otel    otel.Otel
}

func New(service service.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSession)
		routerGroup.Get("/", handler.GetSessions)
		routerGroup.Get("/{id}", handler.GetSessionByID)
		routerGroup.Patch("/{id}", handler.UpdateSession)
		routerGroup.Delete("/{id}", handler.DeleteSession)
	})
}

// CreateSession schedules a new session.
// @Summary Schedule a session
// @Description Trainers schedule sessions for themselves. Admins may name any trainer.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Create Session Request"
// @Success 201 {object} response.Data[gDto.Created] "Session created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	req := dto.CreateSessionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request body")

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create session")

		return
	}

	scope.AddEvent("Session created successfully")

	response.WithJSON(writer, http.StatusCreated, gDto.Created{ID: id})
}

// GetSessions lists sessions.
// @Summary Get all sessions
// @Tags Session
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param trainer_id query int false "Filter by trainer"
// @Param activity_id query int false "Filter by activity"
// @Param location_id query int false "Filter by location"
// @Param session_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetSessionsResponse] "List of sessions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.SessionFilter{}
	if err := filter.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	sessions, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		response.Fail(w, scope, err, "failed to get sessions")

		return
	}

	response.WithJSON(w, http.StatusOK, sessions)
}

// GetSessionByID retrieves a session by its ID.
// @Summary Get a session by ID
// @Tags Session
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSessionByID")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	session, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get session by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// UpdateSession reschedules a session.
// @Summary Update a session by ID
// @Tags Session
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body dto.UpdateSessionRequest true "Update Session Request"
// @Success 200 {object} response.Message "Session updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSession")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateSessionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update session")

		return
	}

	scope.AddEvent("Session updated successfully")

	response.WithMessage(w, http.StatusOK, "Session updated successfully")
}

// DeleteSession cancels a session.
// @Summary Delete a session by ID
// @Tags Session
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} response.Message "Session deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSession")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		response.Fail(w, scope, err, "failed to delete session")

		return
	}

	scope.AddEvent("Session deleted successfully")

	response.WithMessage(w, http.StatusOK, "Session deleted successfully")
}
