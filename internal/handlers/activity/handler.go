package activity

import (
	"gymhub/infras/otel"
	"gymhub/internal/domains/activity/model"
	"gymhub/internal/domains/activity/model/dto"
	"gymhub/internal/domains/activity/service"
	"gymhub/shared"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/validator"
	"gymhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/activities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateActivity)
		routerGroup.Get("/", handler.GetActivities)
		routerGroup.Get("/{id}", handler.GetActivityByID)
		routerGroup.Patch("/{id}", handler.UpdateActivity)
		routerGroup.Delete("/{id}", handler.DeleteActivity)
	})
}

// CreateActivity handles the creation of a new activity.
// @Summary Create a new activity
// @Description Create a new gym activity.
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body dto.CreateActivityRequest true "Create Activity Request"
// @Success 201 {object} response.Data[gDto.Created] "Activity created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateActivity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateActivity")
	defer scope.End()

	req := dto.CreateActivityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request body")

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create activity")

		return
	}

	scope.AddEvent("Activity created successfully")

	response.WithJSON(writer, http.StatusCreated, gDto.Created{ID: id})
}

// GetActivities retrieves all activities based on query parameters.
// @Summary Get all activities
// @Description Retrieve all activities with optional name search and pagination.
// @Tags Activity
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Search by name"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse] "List of activities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities [get]
// @Security ApiKeyAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	activities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get activities")

		return
	}

	scope.AddEvent("Activities retrieved successfully")

	response.WithJSON(w, http.StatusOK, activities)
}

// GetActivityByID retrieves an activity by its ID.
// @Summary Get an activity by ID
// @Tags Activity
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Data[dto.ActivityResponse] "Activity details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivityByID")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	activity, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get activity by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, activity)
}

// UpdateActivity updates an existing activity by its ID.
// @Summary Update an activity by ID
// @Tags Activity
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param request body dto.UpdateActivityRequest true "Update Activity Request"
// @Success 200 {object} response.Message "Activity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateActivity")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateActivityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update activity")

		return
	}

	scope.AddEvent("Activity updated successfully")

	response.WithMessage(w, http.StatusOK, "Activity updated successfully")
}

// DeleteActivity soft-deletes an activity by its ID.
// @Summary Delete an activity by ID
// @Tags Activity
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Message "Activity deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteActivity")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		response.Fail(w, scope, err, "failed to delete activity")

		return
	}

	scope.AddEvent("Activity deleted successfully")

	response.WithMessage(w, http.StatusOK, "Activity deleted successfully")
}
