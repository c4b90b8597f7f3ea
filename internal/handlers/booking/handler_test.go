package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "gymhub/infras/otel/mocks"
	bookingMocks "gymhub/internal/domains/booking/mocks"
	"gymhub/internal/domains/booking/model/dto"
	"gymhub/internal/handlers/booking"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBookingService) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func TestBookingHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "create returns the new id",
			method: http.MethodPost,
			target: "/v1/bookings",
			body:   `{"session_id": 4}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{SessionID: 4}).Return(int64(12), nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"data":{"id":12}}`,
		},
		{
			name:      "create without session",
			method:    http.MethodPost,
			target:    "/v1/bookings",
			body:      `{}`,
			setupMock: func(*bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "duplicate booking",
			method: http.MethodPost,
			target: "/v1/bookings",
			body:   `{"session_id": 4}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), failure.Conflict("session already booked"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "mine is not taken for an id",
			method: http.MethodGet,
			target: "/v1/bookings/mine?page=2&limit=5",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					GetMine(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5}).
					Return(dto.GetBookingsResponse{TotalPage: 1}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "non numeric id",
			method:    http.MethodGet,
			target:    "/v1/bookings/abc",
			setupMock: func(*bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "admin filter by user",
			method: http.MethodGet,
			target: "/v1/bookings?user_id=7",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
						assert.Len(t, filter.Filters, 1)

						return dto.GetBookingsResponse{}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "cancel missing booking",
			method: http.MethodDelete,
			target: "/v1/bookings/9",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Delete(gomock.Any(), int64(9)).Return(failure.NotFound("booking not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			request := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}

			if tt.wantCode >= http.StatusBadRequest {
				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}
