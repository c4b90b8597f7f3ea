package location

import (
	"gymhub/infras/otel"
	"gymhub/internal/domains/location/model"
	"gymhub/internal/domains/location/model/dto"
	"gymhub/internal/domains/location/service"
	"gymhub/shared"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/validator"
	"gymhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/locations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/", handler.GetLocations)
		routerGroup.Get("/{id}", handler.GetLocationByID)
		routerGroup.Patch("/{id}", handler.UpdateLocation)
		routerGroup.Delete("/{id}", handler.DeleteLocation)
	})
}

// CreateLocation handles the creation of a new location.
// @Summary Create a new location
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Create Location Request"
// @Success 201 {object} response.Data[gDto.Created] "Location created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/locations [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	req := dto.CreateLocationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request body")

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create location")

		return
	}

	scope.AddEvent("Location created successfully")

	response.WithJSON(writer, http.StatusCreated, gDto.Created{ID: id})
}

// GetLocations retrieves all locations.
// @Summary Get all locations
// @Tags Location
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Search by name"
// @Success 200 {object} response.Data[dto.GetLocationsResponse] "List of locations"
// @Failure 500 {object} response.Error
// @Router /v1/locations [get]
// @Security ApiKeyAuth
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
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

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get locations")

		return
	}

	response.WithJSON(w, http.StatusOK, locations)
}

// GetLocationByID retrieves a location by its ID.
// @Summary Get a location by ID
// @Tags Location
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} response.Data[dto.LocationResponse] "Location details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/locations/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocationByID")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	location, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get location by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, location)
}

// UpdateLocation updates an existing location.
// @Summary Update a location by ID
// @Tags Location
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param request body dto.UpdateLocationRequest true "Update Location Request"
// @Success 200 {object} response.Message "Location updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/locations/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocation")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateLocationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update location")

		return
	}

	response.WithMessage(w, http.StatusOK, "Location updated successfully")
}

// DeleteLocation soft-deletes a location.
// @Summary Delete a location by ID
// @Tags Location
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} response.Message "Location deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/locations/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLocation")
	defer scope.End()

	id, err := shared.ParseIDParam(constant.RequestParamID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		response.Fail(w, scope, err, "failed to delete location")

		return
	}

	response.WithMessage(w, http.StatusOK, "Location deleted successfully")
}
