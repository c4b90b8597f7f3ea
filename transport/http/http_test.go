package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymhub/config"
	otelMocks "gymhub/infras/otel/mocks"
	"gymhub/permissions"
	"gymhub/shared/constant"
	transport "gymhub/transport/http"
	"gymhub/transport/http/middleware"
	"gymhub/transport/http/router"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.AuthHeader = "x-auth-key"
	cfg.App.SessionCookie = "gym_session"

	perms := permissions.Get()
	require.NotNil(t, perms)

	otel := otelMocks.NewOtel()
	app := middleware.NewAppMiddleware(otel, cfg, nil)
	authRole := middleware.NewAuthRoleMiddleware(nil, nil, otel, perms, cfg)

	return transport.New(cfg, router.New(router.DomainHandlers{}, app, authRole), otel)
}

func TestHTTP_ServeHTTP(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantType string
	}{
		{name: "health", target: "/health", wantCode: http.StatusOK, wantType: constant.ContentTypeJSON},
		{name: "swagger document", target: "/swagger/doc.json", wantCode: http.StatusOK},
		{name: "anonymous api export", target: "/v1/bookings/export", wantCode: http.StatusUnauthorized, wantType: constant.ContentTypeJSON},
		{name: "anonymous web export", target: "/web/sessions/export", wantCode: http.StatusUnauthorized, wantType: constant.ContentTypeHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get(constant.RequestHeaderRequestID))

			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, recorder.Header().Get(constant.RequestHeaderContentType))
			}
		})
	}
}
