package activity_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "gymhub/infras/otel/mocks"
	activityMocks "gymhub/internal/domains/activity/mocks"
	"gymhub/internal/domains/activity/model/dto"
	"gymhub/internal/handlers/activity"
	"gymhub/shared/failure"
)

func TestActivityHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(svc *activityMocks.MockActivityService)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "get by id",
			method: http.MethodGet,
			target: "/v1/activities/2",
			setupMock: func(svc *activityMocks.MockActivityService) {
				svc.EXPECT().Get(gomock.Any(), int64(2)).Return(dto.ActivityResponse{ID: 2, Name: "Yoga"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "missing activity",
			method: http.MethodGet,
			target: "/v1/activities/40",
			setupMock: func(svc *activityMocks.MockActivityService) {
				svc.EXPECT().Get(gomock.Any(), int64(40)).Return(dto.ActivityResponse{}, failure.NotFound("activity not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"activity not found","error":"Not Found"}`,
		},
		{
			name:      "name is required",
			method:    http.MethodPost,
			target:    "/v1/activities",
			body:      `{"description":"Stretching"}`,
			setupMock: func(*activityMocks.MockActivityService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			target: "/v1/activities/2",
			body:   `{"duration_minutes":45}`,
			setupMock: func(svc *activityMocks.MockActivityService) {
				svc.EXPECT().Update(gomock.Any(), dto.UpdateActivityRequest{DurationMinutes: 45}, int64(2)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := activityMocks.NewMockActivityService(gomock.NewController(t))
			tt.setupMock(svc)

			handler := activity.New(svc, otelMocks.NewOtel())

			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
