package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"gymhub/config"
	"gymhub/shared/timezone"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const sessionTokenType = "session"

// Claims is the payload of a web session cookie.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Session is a signed token carried by the web surface's session cookie.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type JWT interface {
	IssueSession(userID int64, email, role string) (Session, error)
	ValidateSession(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// IssueSession signs a session token valid for JWT_SESSION_EXPIRE_MIN minutes.
func (s *Service) IssueSession(userID int64, email, role string) (Session, error) {
	now := timezone.Now()
	session := Session{ExpiresAt: now.Add(time.Duration(s.config.JWT.SessionExpireMin) * time.Minute)}

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.App.Name,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret())
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	session.Token = token

	return session, nil
}

// ValidateSession verifies the signature, issuer, expiry and type of a session token.
func (s *Service) ValidateSession(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret(), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.App.Name),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timezone.Now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != sessionTokenType || claims.UserID <= 0:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) secret() []byte {
	return []byte(s.config.JWT.SessionSecret)
}
