package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-dep/framework/config"
	"github.com/km-arc/go-dep/framework/container"
	"github.com/km-arc/go-dep/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider makes the loaded configuration resolvable.
//
// Registered types:
//   - *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(reg *container.Registry) error {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Load()
	}
	return container.Provide[*config.Config](reg, cfg)
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider makes the application logger resolvable.
//
// Registered types:
//   - *zap.Logger
type LogServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LogServiceProvider) Register(reg *container.Registry) error {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return container.Provide[*zap.Logger](reg, log)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. Requests are logged to
// Logger.
//
// Registered types:
//   - *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *RoutingServiceProvider) Register(reg *container.Registry) error {
	return container.Provide[*routing.Router](reg, routing.New(p.Logger))
}
