package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	h := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	h := LoggingMiddleware(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCors(t *testing.T) {
	tests := []struct {
		name     string
		allowed  []string
		origin   string
		expected string
	}{
		{name: "Origem liberada", allowed: []string{"http://a.com"}, origin: "http://a.com", expected: "http://a.com"},
		{name: "Curinga", allowed: []string{"*"}, origin: "http://b.com", expected: "http://b.com"},
		{name: "Origem bloqueada", allowed: []string{"http://a.com"}, origin: "http://b.com", expected: ""},
		{name: "Sem origem", allowed: []string{"*"}, origin: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Cors(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
