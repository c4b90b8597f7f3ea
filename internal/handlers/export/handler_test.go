package export_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "gymhub/infras/otel/mocks"
	exportMocks "gymhub/internal/domains/export/mocks"
	"gymhub/internal/domains/export/model"
	"gymhub/internal/domains/export/model/dto"
	"gymhub/internal/handlers/export"
	"gymhub/shared/constant"
	"gymhub/transport/http/middleware"
)

func newRouter(t *testing.T) (http.Handler, *exportMocks.MockExportService) {
	t.Helper()

	router, svc, _ := newTracedRouter(t)

	return router, svc
}

func newTracedRouter(t *testing.T) (http.Handler, *exportMocks.MockExportService, *otelMocks.Otel) {
	t.Helper()

	tracer := otelMocks.NewOtel()
	svc := exportMocks.NewMockExportService(gomock.NewController(t))
	handler := export.New(svc, tracer)

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Surface(constant.SurfaceAPI))
		handler.Router(r)
	})
	router.Route("/web", func(r chi.Router) {
		r.Use(middleware.Surface(constant.SurfaceWeb))
		handler.Router(r)
	})

	return router, svc, tracer
}

func TestExportBookingHistory(t *testing.T) {
	body := []byte("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<booking_history/>\n")

	tests := []struct {
		name            string
		target          string
		setupMock       func(svc *exportMocks.MockExportService)
		wantCode        int
		wantContentType string
		wantDisposition string
	}{
		{
			name:   "attachment on the api surface",
			target: "/v1/bookings/export?onlyPast=true",
			setupMock: func(svc *exportMocks.MockExportService) {
				svc.EXPECT().
					BookingHistory(gomock.Any(), dto.BookingHistoryQuery{OnlyPast: true}).
					Return(dto.Document{Filename: "booking-history-Mia-Wong.xml", Body: body, Count: 0}, nil)
			},
			wantCode:        http.StatusOK,
			wantContentType: constant.ContentTypeXML,
			wantDisposition: `attachment; filename="booking-history-Mia-Wong.xml"`,
		},
		{
			name:            "invalid onlyPast",
			target:          "/v1/bookings/export?onlyPast=maybe",
			setupMock:       func(*exportMocks.MockExportService) {},
			wantCode:        http.StatusBadRequest,
			wantContentType: constant.ContentTypeJSON,
		},
		{
			name:   "forbidden renders html on the web surface",
			target: "/web/bookings/export?userId=3",
			setupMock: func(svc *exportMocks.MockExportService) {
				svc.EXPECT().
					BookingHistory(gomock.Any(), dto.BookingHistoryQuery{UserID: 3}).
					Return(dto.Document{}, model.ErrForbidden("members may only export their own bookings"))
			},
			wantCode:        http.StatusForbidden,
			wantContentType: constant.ContentTypeHTML,
		},
		{
			name:   "store failure is a 500",
			target: "/v1/bookings/export",
			setupMock: func(svc *exportMocks.MockExportService) {
				svc.EXPECT().
					BookingHistory(gomock.Any(), gomock.Any()).
					Return(dto.Document{}, model.ErrDataUnavailable(errors.New("connection refused")))
			},
			wantCode:        http.StatusInternalServerError,
			wantContentType: constant.ContentTypeJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantContentType, recorder.Header().Get("Content-Type"))

			if tt.wantDisposition != "" {
				assert.Equal(t, tt.wantDisposition, recorder.Header().Get("Content-Disposition"))
				assert.Equal(t, body, recorder.Body.Bytes())
			}

			if tt.wantCode == http.StatusInternalServerError {
				assert.NotContains(t, recorder.Body.String(), "connection refused")
			}
		})
	}
}

func TestExportWeeklySessions(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *exportMocks.MockExportService)
		wantCode  int
	}{
		{
			name:   "date range is passed through",
			target: "/v1/sessions/export?startDate=2025-01-06&endDate=2025-01-19",
			setupMock: func(svc *exportMocks.MockExportService) {
				svc.EXPECT().
					WeeklySessions(gomock.Any(), dto.WeeklySessionsQuery{StartDate: "2025-01-06", EndDate: "2025-01-19"}).
					Return(dto.Document{Filename: "sessions-Ada-Lovelace-2025-01-06_to_2025-01-19.xml", Body: []byte("<weekly_sessions/>")}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "malformed startDate",
			target:    "/v1/sessions/export?startDate=06-01-2025",
			setupMock: func(*exportMocks.MockExportService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "unknown trainer",
			target: "/web/sessions/export?userId=99",
			setupMock: func(svc *exportMocks.MockExportService) {
				svc.EXPECT().
					WeeklySessions(gomock.Any(), dto.WeeklySessionsQuery{UserID: 99}).
					Return(dto.Document{}, model.ErrPrincipalNotFound(99))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestExportTracesDocument(t *testing.T) {
	router, svc, tracer := newTracedRouter(t)

	svc.EXPECT().
		WeeklySessions(gomock.Any(), gomock.Any()).
		Return(dto.Document{Filename: "sessions-Ada-Lovelace-all.xml", Body: []byte("<weekly_sessions/>"), Count: 4}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sessions/export", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	scope := tracer.Scope(constant.OtelHandlerScopeName + ".ExportWeeklySessions")
	require.NotNil(t, scope)
	assert.True(t, scope.Ended())
	assert.Empty(t, scope.Errors())
	assert.Equal(t, "sessions-Ada-Lovelace-all.xml", scope.Attributes()["export.filename"])
	assert.Equal(t, 4, scope.Attributes()["export.count"])
}

func TestExportTracesFailure(t *testing.T) {
	router, svc, tracer := newTracedRouter(t)

	svc.EXPECT().
		BookingHistory(gomock.Any(), gomock.Any()).
		Return(dto.Document{}, model.ErrPrincipalNotFound(42))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings/export?userId=42", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	scope := tracer.Scope(constant.OtelHandlerScopeName + ".ExportBookingHistory")
	require.NotNil(t, scope)
	assert.Len(t, scope.Errors(), 1)
}
