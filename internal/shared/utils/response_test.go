package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadRequest, "bad request", errors.New("details"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "\"error\":\"bad request\"")
	assert.Contains(t, w.Body.String(), "\"details\":\"details\"")

	w = httptest.NewRecorder()
	WriteError(w, http.StatusNotFound, "not found", nil)
	assert.NotContains(t, w.Body.String(), "details")
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]string{"ok": "true"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "\"ok\":\"true\"")
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "user@artistly.com", valid: true},
		{email: "first.last+tag@sub.domain.co", valid: true},
		{email: "missingatsign.com", valid: false},
		{email: "invalid@", valid: false},
		{email: "@domain.com", valid: false},
		{email: "user@domain", valid: false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.valid, IsValidEmail(tc.email), tc.email)
	}
}

func TestMissingFields(t *testing.T) {
	assert.Empty(t, MissingFields("name", "Priya", "email", "p@x.com"))
	assert.Equal(t, []string{"email", "phone"}, MissingFields("name", "Priya", "email", "", "phone", "  "))
}
