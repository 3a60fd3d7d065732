package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	handler := chimw.RequestID(RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger, ok := logging.FromContext(r.Context())
		require.True(t, ok)
		logger.Info("inside handler")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("done"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/bookings", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0].Message)
	assert.Equal(t, "/bookings", entries[0].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])

	done := entries[1].ContextMap()
	assert.Equal(t, "request completed", entries[1].Message)
	assert.EqualValues(t, http.StatusCreated, done["status"])
	assert.EqualValues(t, 4, done["bytes"])
}
