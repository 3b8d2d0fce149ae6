package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-dep/app"
	"github.com/km-arc/go-dep/framework/container"
	"github.com/km-arc/go-dep/routing"
)

func newServer(t *testing.T, reg *container.Registry) http.Handler {
	t.Helper()
	r := routing.New(zap.NewNop())
	app.Routes(r, reg)
	return r
}

func registered(t *testing.T) *container.Registry {
	t.Helper()
	reg := newRegistry()
	require.NoError(t, (&app.AppServiceProvider{}).Register(reg))
	return reg
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoutes_NotifyDefault(t *testing.T) {
	h := newServer(t, registered(t))

	rec := do(h, http.MethodPost, "/api/v1/notify", "{}")

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "$SEND_EMAIL [ADDR=Author] -> a cool library message", data["sent"])
}

func TestRoutes_NotifyAddress(t *testing.T) {
	reg := registered(t)
	h := newServer(t, reg)

	rec := do(h, http.MethodPost, "/api/v1/notify", `{"address":"ops@example.com","message":"disk full"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/outbox", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		[]any{"$SEND_EMAIL [ADDR=ops@example.com] -> disk full"},
		decode(t, rec)["data"])
}

func TestRoutes_NotifyBadBody(t *testing.T) {
	h := newServer(t, registered(t))

	rec := do(h, http.MethodPost, "/api/v1/notify", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Greet(t *testing.T) {
	h := newServer(t, registered(t))

	rec := do(h, http.MethodGet, "/api/v1/greet", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "test impl!", data["greeting"])
}

func TestRoutes_MissingDependency(t *testing.T) {
	h := newServer(t, newRegistry())

	for _, path := range []string{"/api/v1/greet", "/api/v1/outbox"} {
		rec := do(h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
	rec := do(h, http.MethodPost, "/api/v1/notify", "{}")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutes_NotifyForm(t *testing.T) {
	h := newServer(t, registered(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notify", strings.NewReader("address=Author&message=from+a+form"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "$SEND_EMAIL [ADDR=Author] -> from a form", data["sent"])
}
