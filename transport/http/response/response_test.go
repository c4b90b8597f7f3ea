package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymhub/shared/failure"
	"gymhub/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantDetail  bool
	}{
		{
			name:        "client error keeps its message",
			err:         failure.NotFound("booking not found"),
			wantCode:    http.StatusNotFound,
			wantMessage: "booking not found",
			wantDetail:  true,
		},
		{
			name:        "server error is generic",
			err:         fmt.Errorf("failed to query: %w", errors.New("pq: password authentication failed")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["message"])

			_, hasDetail := body["error"]
			assert.Equal(t, tt.wantDetail, hasDetail)
		})
	}
}

func TestWithHTMLError(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithHTMLError(recorder, failure.Forbidden("<script>nope</script>"))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), "403 Forbidden")
	assert.Contains(t, recorder.Body.String(), "&lt;script&gt;nope&lt;/script&gt;")
	assert.NotContains(t, recorder.Body.String(), "<script>")
}

func TestWithAttachment(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithAttachment(recorder, "application/xml", "booking-history-Jo-Anne-O'Brien.xml", []byte("<x></x>"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/xml", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="booking-history-Jo-Anne-O'Brien.xml"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "<x></x>", recorder.Body.String())
}
