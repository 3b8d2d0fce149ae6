package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-dep/framework/app"
	"github.com/km-arc/go-dep/framework/container"
)

type clock struct{ ticks int }

func (c *clock) Tick() int { c.ticks++; return c.ticks }

type clockProvider struct {
	container.BaseProvider
	booted bool
}

func (p *clockProvider) Register(reg *container.Registry) error {
	return container.Add[*clock, *clock](reg)
}

func (p *clockProvider) Boot(reg *container.Registry) error {
	p.booted = true
	return nil
}

// newApp builds an Application from the environment only.
func newApp(t *testing.T) *app.Application {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_ENV", "testing")
	a, err := app.New("testdata/missing.env")
	require.NoError(t, err)
	return a
}

func TestNew_RegistersFrameworkServices(t *testing.T) {
	t.Setenv("APP_NAME", "kernel-test")
	a := newApp(t)

	assert.Equal(t, "kernel-test", a.Config().App.Name)
	assert.Equal(t, "testing", a.Environment())
	assert.False(t, a.IsProduction())
	assert.NotNil(t, a.Logger())
	assert.NotNil(t, a.Router())
	assert.Same(t, a.Registry, container.Default(), "application registry becomes the default")
	assert.Equal(t, 3, a.Registry.Len())
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := app.New("testdata/missing.env")
	assert.Error(t, err)
}

func TestNew_UncheckedRegistry(t *testing.T) {
	t.Setenv("CONTAINER_CHECKED", "false")
	a := newApp(t)

	assert.False(t, a.Registry.Checked())
	assert.False(t, container.NewHandle[*clock](a.Registry).Valid())
}

func TestBoot_BootsProvidersAndSeals(t *testing.T) {
	t.Setenv("CONTAINER_SEAL", "true")
	a := newApp(t)

	p := &clockProvider{}
	require.NoError(t, a.Register(p))
	require.NoError(t, a.Boot())

	assert.True(t, p.booted)
	assert.True(t, a.Registry.Sealed())
	assert.ErrorIs(t, a.Register(&clockProvider{}), container.ErrSealed)
	assert.Equal(t, 1, container.NewHandle[*clock](a.Registry).Get().Tick())
}

func TestBoot_NotSealedByDefault(t *testing.T) {
	t.Setenv("CONTAINER_SEAL", "false")
	a := newApp(t)

	require.NoError(t, a.Boot())
	assert.False(t, a.Registry.Sealed())
}

func TestRouter_ServesRegisteredRoutes(t *testing.T) {
	a := newApp(t)
	a.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRun_StopsWhenContextDone(t *testing.T) {
	t.Setenv("APP_PORT", "0")
	a := newApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Run(ctx))
	assert.True(t, a.Providers.Booted())
}
