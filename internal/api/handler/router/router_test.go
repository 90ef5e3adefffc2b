package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagMiddleware(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/ping",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", "handler")
		}),
		Middlewares: []func(http.Handler) http.Handler{tagMiddleware("first"), tagMiddleware("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, rec.Header().Values("X-Order"))
}

func TestRouter_Routes(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rt := New(
		WithRoutes(Route{Path: "/a", Method: http.MethodGet, Handler: noop}),
		WithRoutes(Route{Path: "/b/:id", Method: http.MethodDelete, Handler: noop}),
	)

	assert.Equal(t, []string{"GET /a", "DELETE /b/:id"}, rt.Routes())
}

func TestRouter_JSONFallbacks(t *testing.T) {
	noop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rt := New(WithJSONFallbacks(), WithRoutes(Route{Path: "/a", Method: http.MethodGet, Handler: noop}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RTE_001")

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/a", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "RTE_002")
}
