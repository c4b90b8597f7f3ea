package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymhub/shared/failure"
	"gymhub/shared/validator"
)

type sessionRequest struct {
	ActivityID  int64  `json:"activity_id"  validate:"required,gt=0"`
	SessionDate string `json:"session_date" validate:"required,civildate"`
	SessionTime string `json:"session_time" validate:"required,civiltime"`
	Capacity    int    `json:"capacity"     validate:"omitempty,min=1,max=50"`
	Level       string `json:"level"        validate:"omitempty,oneof=beginner intermediate advanced"`
}

type exportQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,civildate"`
	Internal  string `json:"-"          validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name: "valid session",
			body: `{"activity_id":3,"session_date":"2025-02-05","session_time":"09:00:00","capacity":12,"level":"beginner"}`,
		},
		{
			name:        "empty body",
			body:        ``,
			wantMessage: "request body is required",
		},
		{
			name:        "malformed json",
			body:        `{"activity_id":`,
			wantMessage: "failed to decode request body",
		},
		{
			name:        "wrong type",
			body:        `{"activity_id":"three"}`,
			wantMessage: "failed to decode request body",
		},
		{
			name:        "missing fields use json names",
			body:        `{"session_time":"09:00"}`,
			wantMessage: "activity_id is required; session_date is required",
		},
		{
			name:        "bad date and level",
			body:        `{"activity_id":3,"session_date":"05/02/2025","session_time":"09:00","level":"expert"}`,
			wantMessage: "session_date must be a date in YYYY-MM-DD format; level must be one of beginner intermediate advanced",
		},
		{
			name:        "capacity bounds",
			body:        `{"activity_id":3,"session_date":"2025-02-05","session_time":"09:00","capacity":80}`,
			wantMessage: "capacity must be at most 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sessionRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantMessage == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestValidateStructUsesQueryNames(t *testing.T) {
	err := validator.ValidateStruct(&exportQuery{StartDate: "2025-2-5"})

	require.Error(t, err)
	assert.Equal(t, "startDate must be a date in YYYY-MM-DD format", err.Error())

	err = validator.ValidateStruct(&exportQuery{Internal: "not-an-email"})

	require.Error(t, err)
	assert.Equal(t, "Internal must be a valid email address", err.Error())
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		wantMessage string
	}{
		{name: "valid date", field: "2025-02-05", tag: "civildate"},
		{name: "single digit month", field: "2025-2-05", tag: "civildate", wantMessage: "YYYY-MM-DD"},
		{name: "impossible date", field: "2025-02-30", tag: "civildate", wantMessage: "YYYY-MM-DD"},
		{name: "date with time suffix", field: "2025-02-05T10:00:00", tag: "civildate", wantMessage: "YYYY-MM-DD"},
		{name: "optional empty date", field: "", tag: "omitempty,civildate"},
		{name: "time with seconds", field: "23:30:00", tag: "civiltime"},
		{name: "time without seconds", field: "08:15", tag: "civiltime"},
		{name: "out of range hour", field: "24:00:00", tag: "civiltime", wantMessage: "HH:MM:SS"},
		{name: "empty tag", field: "", tag: "empty"},
		{name: "not empty", field: "x", tag: "empty", wantMessage: "is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantMessage == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}
