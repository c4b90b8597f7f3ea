package response

import (
	"encoding/json"
	"fmt"
	"gymhub/shared/constant"
	"gymhub/shared/failure"
	"gymhub/shared/logger"
	"net/http"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the JSON error body. Error carries detail only for client errors.
type Error struct {
	Message string  `json:"message"`
	Error   *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a JSON error. Server errors get a generic message so store
// details never reach the client.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if !failure.IsPublic(err) {
		response(writer, code, Error{Message: failure.PublicMessage(err)})

		return
	}

	detail := http.StatusText(code)

	response(writer, code, Error{Message: failure.PublicMessage(err), Error: &detail})
}

// WithAttachment sends body as a downloadable file. Headers and body go out together.
func WithAttachment(writer http.ResponseWriter, contentType, filename string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
