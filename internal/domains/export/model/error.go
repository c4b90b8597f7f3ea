package model

import (
	"errors"
	"fmt"
	"net/http"
)

type DataErrorKind int

const (
	KindNotFound DataErrorKind = iota + 1
	KindDenied
	KindStoreFailure
)

func (k DataErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindDenied:
		return "denied"
	case KindStoreFailure:
		return "store failure"
	default:
		return "unknown"
	}
}

// DataError is the failure type of the export pipeline. Callers branch on Kind.
type DataError struct {
	Kind    DataErrorKind
	Message string
	Err     error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// HTTPCode lets failure.GetCode map the kind onto a status.
func (e *DataError) HTTPCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func ErrPrincipalNotFound(id int64) error {
	return &DataError{Kind: KindNotFound, Message: fmt.Sprintf("user %d not found", id)}
}

// ErrDataUnavailable hides the store error from clients; it stays reachable through Unwrap.
func ErrDataUnavailable(err error) error {
	return &DataError{Kind: KindStoreFailure, Message: "data unavailable", Err: err}
}

func ErrForbidden(msg string) error {
	return &DataError{Kind: KindDenied, Message: msg}
}

// KindOf returns the kind of the first DataError in err's chain, or zero.
func KindOf(err error) DataErrorKind {
	var dataErr *DataError
	if errors.As(err, &dataErr) {
		return dataErr.Kind
	}

	return 0
}
