package location_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "gymhub/infras/otel/mocks"
	locationMocks "gymhub/internal/domains/location/mocks"
	"gymhub/internal/domains/location/model/dto"
	"gymhub/internal/handlers/location"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"
)

func TestLocationHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(svc *locationMocks.MockLocationService)
		wantCode  int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/v1/locations",
			body:   `{"name":"Studio A","address":"1 Main St"}`,
			setupMock: func(svc *locationMocks.MockLocationService) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateLocationRequest{Name: "Studio A", Address: "1 Main St"}).Return(int64(1), nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:   "duplicate name",
			method: http.MethodPost,
			target: "/v1/locations",
			body:   `{"name":"Studio A"}`,
			setupMock: func(svc *locationMocks.MockLocationService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), failure.Conflict("location already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "search by name",
			method: http.MethodGet,
			target: "/v1/locations?name=studio",
			setupMock: func(svc *locationMocks.MockLocationService) {
				svc.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLocationsResponse, error) {
						assert.Len(t, filter.Filters, 1)

						return dto.GetLocationsResponse{}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/v1/locations/1",
			setupMock: func(svc *locationMocks.MockLocationService) {
				svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := locationMocks.NewMockLocationService(gomock.NewController(t))
			tt.setupMock(svc)

			handler := location.New(svc, otelMocks.NewOtel())

			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
