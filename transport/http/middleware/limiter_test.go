package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gymhub/config"
	otelMocks "gymhub/infras/otel/mocks"
	cacheMocks "gymhub/shared/cache/mocks"
	"gymhub/transport/http/middleware"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enabled       bool
		setupMock     func(cache *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
		wantRetry     string
	}{
		{
			name:      "disabled",
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
		{
			name:    "under the limit",
			enabled: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:go-test", 60).Return(int64(2), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:    "over the limit",
			enabled: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(4), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
			wantRetry:     "60",
		},
		{
			name:    "cache failure fails open",
			enabled: true,
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(cache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enabled
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, "/v1/activities", nil)
			request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
			request.Header.Set("User-Agent", "go-test")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetry, recorder.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimitClientKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		wantKey string
	}{
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": " 10.0.0.9 , 10.0.0.2"}, wantKey: "limiter:10.0.0.9:unknown"},
		{name: "real ip header", headers: map[string]string{"X-Real-IP": "10.0.0.7", "User-Agent": "curl"}, wantKey: "limiter:10.0.0.7:curl"},
		{name: "peer address", remote: "192.168.1.4:5123", wantKey: "limiter:192.168.1.4:unknown"},
		{name: "peer address without port", remote: "192.168.1.5", wantKey: "limiter:192.168.1.5:unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			cache.EXPECT().Increment(gomock.Any(), tt.wantKey, 60).Return(int64(1), nil)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodGet, "/v1/activities", nil)
			request.Header.Del("User-Agent")

			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			if tt.remote != "" {
				request.RemoteAddr = tt.remote
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFrom(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("X-Request-ID", "abc-123")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestTracingRecordsRequest(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remote     string
		wantSource string
	}{
		{name: "forwarded client", headers: map[string]string{"X-Forwarded-For": "10.0.0.9, 10.0.0.2"}, wantSource: "10.0.0.9"},
		{name: "peer address", remote: "192.168.1.4:5123", wantSource: "192.168.1.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer := otelMocks.NewOtel()

			cfg := &config.Config{}
			cfg.App.Name = "gymhub"

			app := middleware.NewAppMiddleware(tracer, cfg, nil)
			handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

			request := httptest.NewRequest(http.MethodGet, "/v1/sessions/export", nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			if tt.remote != "" {
				request.RemoteAddr = tt.remote
			}

			handler.ServeHTTP(httptest.NewRecorder(), request)

			scope := tracer.Scope("GET /v1/sessions/export")
			require.NotNil(t, scope)
			assert.True(t, scope.Ended())
			assert.Equal(t, tt.wantSource, scope.Attributes()["http.source"])
			assert.Equal(t, http.StatusTeapot, scope.Attributes()["http.status_code"])
			assert.Equal(t, "gymhub", scope.Attributes()["app.name"])
		})
	}
}
