package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gymhub/config"
	"gymhub/infras/jwt"
	jwtMocks "gymhub/infras/jwt/mocks"
	"gymhub/infras/otel/mocks"
	"gymhub/internal/domains/auth/model/dto"
	"gymhub/internal/domains/auth/service"
	userMocks "gymhub/internal/domains/user/mocks"
	userModel "gymhub/internal/domains/user/model"
	"gymhub/shared"
	cacheMocks "gymhub/shared/cache/mocks"
	"gymhub/shared/constant"
	gDto "gymhub/shared/dto"
	"gymhub/shared/failure"
	"gymhub/shared/password"
)

type fixture struct {
	svc   service.Auth
	repo  *userMocks.MockUser
	jwt   *jwtMocks.MockJWT
	cache *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.svc = service.New(f.repo, &config.Config{}, f.cache, mocks.NewOtel(), f.jwt)

	return f
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return hash
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{Email: "Member@Gym.Test", Password: "password123", FirstName: "Mia"}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantID    int64
		wantCode  int
	}{
		{
			name: "registers a member",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) (int64, error) {
						assert.Equal(t, constant.RoleMember, user.Role)
						assert.Equal(t, "member@gym.test", user.Email)

						return 42, nil
					})
			},
			wantID: 42,
		},
		{
			name: "duplicate email",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "store failure",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	oldKey := "old-key"
	validUser := userModel.User{
		ID:                3,
		Email:             "trainer@gym.test",
		Password:          hashed(t, "password123"),
		Role:              constant.RoleTrainer,
		AuthenticationKey: &oldKey,
	}
	expiresAt := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "trainer@gym.test", Password: "password123"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data map[string]any, _ gDto.FilterGroup) error {
						key, ok := data[userModel.FieldAuthenticationKey].(string)
						require.True(t, ok)
						assert.NotEmpty(t, key)
						assert.NotEqual(t, oldKey, key)

						return nil
					})
				f.jwt.EXPECT().
					IssueSession(int64(3), "trainer@gym.test", constant.RoleTrainer).
					Return(jwt.Session{Token: "signed", ExpiresAt: expiresAt}, nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@gym.test", Password: "password123"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "trainer@gym.test", Password: "nope-nope"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "session signing failure",
			req:  dto.LoginRequest{Email: "trainer@gym.test", Password: "password123"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.jwt.EXPECT().IssueSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(jwt.Session{}, errors.New("no secret"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.APIKey)
			assert.Equal(t, "signed", res.SessionToken)
			assert.Equal(t, expiresAt, res.ExpiresAt)
			assert.Equal(t, constant.RoleTrainer, res.Role)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	key := "live-key"
	actorCtx := shared.WithActor(context.Background(), shared.Actor{ID: 3, Email: "m@gym.test", Role: constant.RoleMember})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Logout(context.Background())

		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("clears the api key", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: 3, Email: "m@gym.test", AuthenticationKey: &key}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data map[string]any, _ gDto.FilterGroup) error {
				value, present := data[userModel.FieldAuthenticationKey]
				assert.True(t, present)
				assert.Nil(t, value)

				return nil
			})

		assert.NoError(t, f.svc.Logout(actorCtx))
	})

	t.Run("already logged out", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: 3}, nil)

		assert.NoError(t, f.svc.Logout(actorCtx))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	actorCtx := shared.WithActor(context.Background(), shared.Actor{ID: 3, Email: "m@gym.test", Role: constant.RoleMember})
	user := userModel.User{ID: 3, Email: "m@gym.test", Password: hashed(t, "password123")}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "changes password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "newpassword1"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data map[string]any, _ gDto.FilterGroup) error {
						stored, ok := data["password"].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("newpassword1", stored))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong-one", NewPassword: "newpassword1"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user gone",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "newpassword1"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.ChangePassword(actorCtx, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
