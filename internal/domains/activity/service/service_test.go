package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gymhub/config"
	"gymhub/infras/otel/mocks"
	activityMocks "gymhub/internal/domains/activity/mocks"
	"gymhub/internal/domains/activity/model"
	"gymhub/internal/domains/activity/model/dto"
	"gymhub/internal/domains/activity/service"
	"gymhub/shared"
	"gymhub/shared/cache"
	cacheMocks "gymhub/shared/cache/mocks"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"
)

func setup(t *testing.T) (service.Activity, *activityMocks.MockActivity) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := activityMocks.NewMockActivity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo
}

func TestActivityService_Create(t *testing.T) {
	svc, mockRepo := setup(t)

	tests := []struct {
		name      string
		req       dto.CreateActivityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateActivityRequest{Name: "Yoga", Description: "Morning flow"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, activity model.Activity) (int64, error) {
						assert.Equal(t, "admin@gym.test", activity.CreatedBy)
						assert.Equal(t, 60, activity.DurationMinutes)

						return 4, nil
					})
			},
		},
		{
			name: "repository error",
			req:  dto.CreateActivityRequest{Name: "Yoga"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := shared.WithActor(context.Background(), shared.Actor{ID: 1, Email: "admin@gym.test", Role: "admin"})
			id, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(4), id)
			}
		})
	}
}

func TestActivityService_GetAll(t *testing.T) {
	svc, mockRepo := setup(t)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantResult dto.GetActivitiesResponse
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Activity{{ID: 1, Name: "Yoga", DurationMinutes: 60}}, nil)
			},
			wantResult: dto.GetActivitiesResponse{TotalData: 1, TotalPage: 1},
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name:   "get all error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
				assert.Len(t, result.Activities, 1)
			}
		})
	}
}

func TestActivityService_Get(t *testing.T) {
	svc, mockRepo := setup(t)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{ID: 3, Name: "Spin"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Activity{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), 3)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Spin", result.Name)
			}
		})
	}
}

func TestActivityService_Update(t *testing.T) {
	svc, mockRepo := setup(t)

	tests := []struct {
		name      string
		req       dto.UpdateActivityRequest
		setupMock func()
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateActivityRequest{},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateActivityRequest{Name: "Pilates"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "successful update",
			req:  dto.UpdateActivityRequest{Name: "Pilates"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Pilates", data["name"])
						assert.NotContains(t, data, "description")

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, 3)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActivityService_Delete(t *testing.T) {
	svc, mockRepo := setup(t)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "soft delete",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), "guest").Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 3)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
