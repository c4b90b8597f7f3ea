package dto

import (
	"gymhub/infras/jwt"
	userModel "gymhub/internal/domains/user/model"
	"gymhub/shared/constant"
	gModel "gymhub/shared/model"
	"strings"
	"time"
)

type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email,max=255"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
}

// ToUserModel builds a member account. Self-registration never grants another role.
func (r *RegisterRequest) ToUserModel(actor string, hashedPassword string) userModel.User {
	return userModel.User{
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Role:      constant.RoleMember,
		Metadata:  gModel.NewMetadata(actor),
	}
}

type RegisterResponse struct {
	ID int64 `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	APIKey       string    `json:"api_key"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Role         string    `json:"role"`
}

func (l *LoginResponse) FromSession(apiKey, role string, session jwt.Session) {
	l.APIKey = apiKey
	l.Role = role
	l.SessionToken = session.Token
	l.ExpiresAt = session.ExpiresAt
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
