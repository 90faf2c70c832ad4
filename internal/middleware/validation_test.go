package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "flightpulse/internal/errors"
)

func newValidationMiddleware(t *testing.T) *ValidationMiddleware {
	t.Helper()
	return NewValidationMiddleware(testLogger(), apierrors.NewErrorHandler(testLogger(), false))
}

type analyticsParams struct {
	From      string `json:"from" validate:"omitempty,iso8601"`
	To        string `json:"to" validate:"omitempty,iso8601"`
	Dimension string `json:"dimension" validate:"omitempty,dimension"`
	Region    string `json:"region" validate:"omitempty,region_selector"`
}

func TestValidateStruct(t *testing.T) {
	m := newValidationMiddleware(t)

	tests := []struct {
		name    string
		params  analyticsParams
		wantErr bool
	}{
		{"empty is valid", analyticsParams{}, false},
		{"valid full", analyticsParams{From: "2015-01-01", To: "2015-12-31", Dimension: "airline", Region: "europe"}, false},
		{"bad date", analyticsParams{From: "01/02/2015"}, true},
		{"impossible date", analyticsParams{From: "2015-13-40"}, true},
		{"bad dimension", analyticsParams{Dimension: "bogus"}, true},
		{"bad region", analyticsParams{Region: "narnia"}, true},
		{"usa region", analyticsParams{Region: "usa"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.ValidateStruct(tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequestRejectsInvalidJSON(t *testing.T) {
	m := newValidationMiddleware(t)
	handler := m.ValidateRequest(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/x", strings.NewReader("{not json"))
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateRequestSkipsGet(t *testing.T) {
	m := newValidationMiddleware(t)
	handler := m.ValidateRequest(okHandler())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueryParamValidatorDate(t *testing.T) {
	v := NewQueryParamValidator(testLogger(), apierrors.NewErrorHandler(testLogger(), false))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/x?from=2015-06-01", nil)
	got, ok := v.ValidateDate(w, r, "from")
	require.True(t, ok)
	assert.Equal(t, 2015, got.Year())

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/x?from=June+1st", nil)
	_, ok = v.ValidateDate(w, r, "from")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryParamValidatorEnum(t *testing.T) {
	v := NewQueryParamValidator(testLogger(), apierrors.NewErrorHandler(testLogger(), false))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/x?scope=domestic", nil)
	got, ok := v.ValidateEnum(w, r, "scope", []string{"domestic", "international"}, "domestic")
	require.True(t, ok)
	assert.Equal(t, "domestic", got)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/x?scope=orbital", nil)
	_, ok = v.ValidateEnum(w, r, "scope", []string{"domestic", "international"}, "domestic")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
