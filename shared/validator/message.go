package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":  "{field} is required",
	"gte":       "{field} must be greater than or equal to {param}",
	"gt":        "{field} must be greater than {param}",
	"lte":       "{field} must be less than or equal to {param}",
	"oneof":     "{field} must be one of {param}",
	"max":       "{field} must be at most {param}",
	"min":       "{field} must be at least {param}",
	"email":     "{field} must be a valid email address",
	"civildate": "{field} must be a date in YYYY-MM-DD format",
	"civiltime": "{field} must be a time in HH:MM:SS format",
}

// message joins one sentence per failed field, in struct order.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	sentences := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			sentences = append(sentences, valErr.Field()+" is invalid")

			continue
		}

		sentence := strings.ReplaceAll(template, "{field}", valErr.Field())
		sentences = append(sentences, strings.ReplaceAll(sentence, "{param}", valErr.Param()))
	}

	return strings.Join(sentences, "; ")
}
