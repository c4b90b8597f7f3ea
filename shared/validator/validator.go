package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"gymhub/shared/constant"
	"gymhub/shared/failure"
	"io"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func civilLayoutValidation(layouts ...string) val.Func {
	return func(field val.FieldLevel) bool {
		value, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, value); err == nil && parsed.Format(layout) == value {
				return true
			}
		}

		return false
	}
}

// fieldName reports fields under the name clients send: the json key for
// bodies, the query key for query DTOs.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			continue
		}

		if name != "" {
			return name
		}
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("civildate", civilLayoutValidation(constant.CivilDateFormat))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("civiltime", civilLayoutValidation(constant.CivilTimeFormat, "15:04"))
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates it. Decoding and
// validation problems both come back as 400 failures.
func Validate[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)

	switch {
	case errors.Is(err, io.EOF):
		return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
	case err != nil:
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
