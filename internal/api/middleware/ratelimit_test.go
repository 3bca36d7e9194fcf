package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLimitLogger struct{}

func (nopLimitLogger) Info(format string, v ...interface{})  {}
func (nopLimitLogger) Warn(format string, v ...interface{})  {}
func (nopLimitLogger) Error(format string, v ...interface{}) {}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BurstThenRejects(t *testing.T) {
	limit := RateLimit(0, 2, nopLimitLogger{})
	handler := limit(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "/leads", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "/leads", "10.0.0.1:1234").Code)

	rec := doRequest(handler, "/leads", "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "trop de requêtes")
}

func TestRateLimit_IPsHaveSeparateBudgets(t *testing.T) {
	limit := RateLimit(0, 1, nopLimitLogger{})
	handler := limit(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "/leads", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "/leads", "10.0.0.1:5678").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "/leads", "10.0.0.2:1234").Code)
}

// One middleware instance wrapping several routes must drain a single
// per-IP budget, so switching endpoints does not reset the limit.
func TestRateLimit_SharedAcrossRoutes(t *testing.T) {
	limit := RateLimit(0, 2, nopLimitLogger{})

	mux := http.NewServeMux()
	mux.Handle("/bookings", limit(okHandler()))
	mux.Handle("/leads", limit(okHandler()))

	assert.Equal(t, http.StatusOK, doRequest(mux, "/bookings", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doRequest(mux, "/leads", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(mux, "/bookings", "10.0.0.1:1234").Code)
}

func TestRateLimit_MissingPortFallsBackToRemoteAddr(t *testing.T) {
	limit := RateLimit(0, 1, nopLimitLogger{})
	handler := limit(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "/leads", "10.0.0.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "/leads", "10.0.0.9").Code)
}
