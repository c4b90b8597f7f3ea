package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MaxLength is the longest input bcrypt accepts, in bytes.
	MaxLength = 72
	cost      = bcrypt.DefaultCost
)

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes", MaxLength)
	ErrInvalidPassword = errors.New("invalid password")
	ErrMalformedHash   = errors.New("stored password hash is malformed")
)

// Hash returns the bcrypt hash stored in users.password.
func Hash(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmptyPassword
	case len(plain) > MaxLength:
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports ErrInvalidPassword for any mismatch, including an empty input.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	case errors.Is(err, bcrypt.ErrHashTooShort):
		return ErrMalformedHash
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}
