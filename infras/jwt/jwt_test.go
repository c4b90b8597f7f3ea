package jwt_test

import (
	"gymhub/config"
	"gymhub/infras/jwt"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "gymhub"
	cfg.JWT.SessionSecret = secret
	cfg.JWT.SessionExpireMin = expireMin

	return cfg
}

func TestIssueAndValidateSession(t *testing.T) {
	svc := jwt.New(newConfig("secret", 30))

	session, err := svc.IssueSession(7, "member@gym.test", "member")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.False(t, session.ExpiresAt.IsZero())

	claims, err := svc.ValidateSession(session.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "member@gym.test", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestValidateSession_Failures(t *testing.T) {
	issuer := jwt.New(newConfig("secret", 30))

	session, err := issuer.IssueSession(7, "member@gym.test", "member")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := jwt.New(newConfig("other", 30)).ValidateSession(session.Token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.ValidateSession("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.New(newConfig("secret", -5)).IssueSession(7, "member@gym.test", "member")
		require.NoError(t, err)

		_, err = issuer.ValidateSession(expired.Token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong token type", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: 7,
			Type:   "refresh",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "gymhub",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}

		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = issuer.ValidateSession(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: 7,
			Type:   "session",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "gymhub",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}

		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = issuer.ValidateSession(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwt.Claims{
			UserID:           7,
			Type:             "session",
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: "gymhub"},
		}

		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = issuer.ValidateSession(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
