package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLoggerFallsBackToNop(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var inner *zap.Logger
	handler := chimw.RequestID(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = GetLogger(r.Context())
		inner.Debug("inside handler")
		w.WriteHeader(http.StatusUnprocessableEntity)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/settlements/plan", nil))

	require.NotNil(t, inner)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0].Message)

	done := entries[1]
	assert.Equal(t, "request completed", done.Message)
	assert.Equal(t, zapcore.WarnLevel, done.Level)

	fields := done.ContextMap()
	assert.Equal(t, int64(http.StatusUnprocessableEntity), fields["status"])
	assert.Equal(t, "/api/v1/settlements/plan", fields["path"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRequestLoggerDefaultsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	handler := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
}
