package response

import (
	"gymhub/infras/otel"
	"gymhub/shared/failure"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Fail records err on the handler span, logs it and writes it as JSON.
func Fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	FailWith(writer, WithError, scope, err, msg)
}

// FailWith is Fail for a surface-specific error format. Client errors are
// logged at warn level, everything else at error level.
func FailWith(writer http.ResponseWriter, write ErrorWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	if failure.IsPublic(err) {
		log.Warn().Err(err).Msg(msg)
	} else {
		log.Error().Err(err).Msg(msg)
	}

	write(writer, err)
}
