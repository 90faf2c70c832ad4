package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAPIError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestProblemDetailsMarshalIncludesExtensions(t *testing.T) {
	problem := NewProblemDetails(http.StatusBadRequest, TypeValidation, "Validation Failed", "bad field", "/api/x").
		WithExtension("trace_id", "abc-123")

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, TypeValidation, decoded["type"])
	assert.Equal(t, float64(http.StatusBadRequest), decoded["status"])
	assert.Equal(t, "abc-123", decoded["trace_id"])
}

func TestErrorToProblem(t *testing.T) {
	h := NewErrorHandler(testLogger(), false)
	r := httptest.NewRequest(http.MethodGet, "/api/analytics/delay-metrics", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"context deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, TypeTimeout},
		{"unknown dimension", fmt.Errorf("delay metrics: unknown dimension %q", "bogus"), http.StatusBadRequest, TypeUnknownDimension},
		{"unknown region", errors.New("unknown region selector: narnia"), http.StatusBadRequest, TypeUnknownRegion},
		{"not found", errors.New("report not found"), http.StatusNotFound, TypeNotFound},
		{"rate limit", errors.New("rate limit exceeded"), http.StatusTooManyRequests, TypeRateLimit},
		{"generic", errors.New("boom"), http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := h.ErrorToProblem(tt.err, r)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantType, problem.Type)
		})
	}
}

func TestErrorToProblemAPIError(t *testing.T) {
	h := NewErrorHandler(testLogger(), false)
	r := httptest.NewRequest(http.MethodGet, "/api/x", nil)

	problem := h.ErrorToProblem(ErrValidation("airline", "must not be empty"), r)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, TypeValidation, problem.Type)
	assert.Equal(t, "VALIDATION_FAILED", problem.Extensions["error_code"])
	assert.NotNil(t, problem.Extensions["details"])
}

func TestHandleErrorWritesProblemJSON(t *testing.T) {
	h := NewErrorHandler(testLogger(), false)
	r := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	w := httptest.NewRecorder()

	h.HandleError(w, r, errors.New("report not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, TypeNotFound, decoded["type"])
}

func TestRecoveryMiddleware(t *testing.T) {
	h := NewErrorHandler(testLogger(), false)
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	RecoveryMiddleware(h)(panicking).ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("failed to write report", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "STORAGE")
	assert.Contains(t, err.Error(), "disk full")
}
