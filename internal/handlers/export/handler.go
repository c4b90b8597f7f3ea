package export

import (
	"gymhub/infras/otel"
	"gymhub/internal/domains/export/model/dto"
	"gymhub/internal/domains/export/service"
	"gymhub/shared/constant"
	"gymhub/transport/http/middleware"
	"gymhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the XML exports. The same routes are mounted on the API and
// web surfaces; errors follow the surface the request arrived on.
type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/bookings/export", handler.ExportBookingHistory)
	router.Get("/sessions/export", handler.ExportWeeklySessions)
}

// ExportBookingHistory downloads the caller's bookings grouped by week.
// @Summary Export booking history
// @Description XML attachment of the member's bookings grouped into Monday-first weeks. Admins may pass userId.
// @Tags Export
// @Produce xml
// @Param onlyPast query bool false "Only bookings before today"
// @Param userId query int false "Member to export (admin only)"
// @Success 200 {file} file "Booking history XML"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
// @Security ApiKeyAuth
func (handler *Handler) ExportBookingHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookingHistory")
	defer scope.End()

	writeError := middleware.ErrorWriterFor(ctx)

	query := dto.BookingHistoryQuery{}
	if err := query.FromRequest(r); err != nil {
		scope.TraceError(err)
		writeError(w, err)

		return
	}

	doc, err := handler.service.BookingHistory(ctx, query)
	if err != nil {
		response.FailWith(w, writeError, scope, err, "failed to export booking history")

		return
	}

	scope.SetAttributes(map[string]any{
		"export.filename": doc.Filename,
		"export.count":    doc.Count,
	})

	response.WithAttachment(w, constant.ContentTypeXML, doc.Filename, doc.Body)
}

// ExportWeeklySessions downloads the trainer's schedule grouped by week.
// @Summary Export weekly sessions
// @Description XML attachment of the trainer's sessions grouped into Monday-first weeks. Admins may pass userId.
// @Tags Export
// @Produce xml
// @Param startDate query string false "First day to include (YYYY-MM-DD)"
// @Param endDate query string false "Last day to include (YYYY-MM-DD)"
// @Param userId query int false "Trainer to export (admin only)"
// @Success 200 {file} file "Weekly sessions XML"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sessions/export [get]
// @Security ApiKeyAuth
func (handler *Handler) ExportWeeklySessions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportWeeklySessions")
	defer scope.End()

	writeError := middleware.ErrorWriterFor(ctx)

	query := dto.WeeklySessionsQuery{}
	if err := query.FromRequest(r); err != nil {
		scope.TraceError(err)
		writeError(w, err)

		return
	}

	doc, err := handler.service.WeeklySessions(ctx, query)
	if err != nil {
		response.FailWith(w, writeError, scope, err, "failed to export weekly sessions")

		return
	}

	scope.SetAttributes(map[string]any{
		"export.filename": doc.Filename,
		"export.count":    doc.Count,
	})

	response.WithAttachment(w, constant.ContentTypeXML, doc.Filename, doc.Body)
}
