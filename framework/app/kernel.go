// Package app bootstraps an application: configuration, logging, the
// dependency registry and the framework service providers.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-dep/framework/config"
	"github.com/km-arc/go-dep/framework/container"
	"github.com/km-arc/go-dep/framework/logging"
	"github.com/km-arc/go-dep/framework/providers"
	"github.com/km-arc/go-dep/routing"
)

const shutdownTimeout = 10 * time.Second

// Application owns the registry and the providers registered against it.
type Application struct {
	Registry  *container.Registry
	Providers *container.ProviderRegistry

	config container.Handle[*config.Config]
	log    container.Handle[*zap.Logger]
	router container.Handle[*routing.Router]
}

// New loads configuration from envFiles, builds the logger and registers the
// framework providers. The application's registry becomes the default one.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)

	reg := container.New(
		container.WithChecked(cfg.Container.Checked),
		container.WithLogger(log.Named("container")),
	)
	container.SetDefault(reg)

	a := &Application{
		Registry:  reg,
		Providers: container.NewProviderRegistry(reg),
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LogServiceProvider{Logger: log},
		&providers.RoutingServiceProvider{Logger: log.Named("http")},
	} {
		if err := a.Providers.Register(p); err != nil {
			return nil, err
		}
	}

	a.config = container.NewHandle[*config.Config](reg)
	a.log = container.NewHandle[*zap.Logger](reg)
	a.router = container.NewHandle[*routing.Router](reg)
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers and seals the registry when
// CONTAINER_SEAL is set.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return err
	}
	if a.Config().Container.Seal && a.Registry.Seal() {
		a.Logger().Info("registry sealed", zap.Int("bindings", a.Registry.Len()))
	}
	return nil
}

func (a *Application) Config() *config.Config  { return a.config.Get() }
func (a *Application) Logger() *zap.Logger     { return a.log.Get() }
func (a *Application) Router() *routing.Router { return a.router.Get() }
func (a *Application) Environment() string     { return a.Config().App.Env }
func (a *Application) IsProduction() bool      { return a.Environment() == "production" }
func (a *Application) IsDebug() bool           { return a.Config().App.Debug }

// Run boots the application if needed and serves HTTP until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	cfg := a.Config()
	log := a.Logger()
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("addr", srv.Addr),
			zap.Strings("bindings", a.Registry.Bindings()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
