package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gymhub/infras/jwt"
	"gymhub/internal/domains/auth/model/dto"
	"gymhub/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		wantEmail string
		wantFirst string
	}{
		{
			name:      "normalises email and names",
			req:       dto.RegisterRequest{Email: "  Jane@Gym.Test ", FirstName: " Jane ", LastName: "Doe"},
			wantEmail: "jane@gym.test",
			wantFirst: "Jane",
		},
		{
			name:      "keeps plain values",
			req:       dto.RegisterRequest{Email: "sam@gym.test", FirstName: "Sam"},
			wantEmail: "sam@gym.test",
			wantFirst: "Sam",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.req.ToUserModel(constant.ContextGuest, "hashed")

			assert.Equal(t, tt.wantEmail, user.Email)
			assert.Equal(t, tt.wantFirst, user.FirstName)
			assert.Equal(t, "hashed", user.Password)
			assert.Equal(t, constant.RoleMember, user.Role)
			assert.Equal(t, constant.ContextGuest, user.CreatedBy)
			assert.Nil(t, user.AuthenticationKey)
		})
	}
}

func TestLoginResponse_FromSession(t *testing.T) {
	expiresAt := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)

	var response dto.LoginResponse
	response.FromSession("api-key", constant.RoleTrainer, jwt.Session{Token: "signed", ExpiresAt: expiresAt})

	assert.Equal(t, "api-key", response.APIKey)
	assert.Equal(t, "signed", response.SessionToken)
	assert.Equal(t, expiresAt, response.ExpiresAt)
	assert.Equal(t, constant.RoleTrainer, response.Role)
}

func TestUpdatePasswordRequest(t *testing.T) {
	req := dto.UpdatePasswordRequest{Password: "hashed-new-password"}

	assert.Equal(t, "hashed-new-password", req.Password)
}
