package failure

import (
	"errors"
	"net/http"
)

// GenericMessage replaces the text of server errors before they reach a client.
const GenericMessage = "Internal server error"

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Coder is implemented by domain errors that know their HTTP status.
type Coder interface {
	HTTPCode() int
}

var (
	MissingPrincipalError   = &Failure{Code: http.StatusUnauthorized, Message: "Authentication required"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// GetCode returns the HTTP status for err: the Failure code, the Coder code,
// or 500 for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.HTTPCode()
	}

	return http.StatusInternalServerError
}

// IsPublic reports whether the error message is safe to show to a client.
func IsPublic(err error) bool {
	return GetCode(err) < http.StatusInternalServerError
}

// PublicMessage is err's text for client errors and GenericMessage otherwise.
func PublicMessage(err error) string {
	if !IsPublic(err) {
		return GenericMessage
	}

	return err.Error()
}
