package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the registrations of one part of an application.
//
// Register is called as soon as the provider is added. Boot is called after
// ALL providers have been registered, making it safe to resolve handles there.
//
//	type MailProvider struct{ container.BaseProvider }
//
//	func (p *MailProvider) Register(reg *container.Registry) error {
//	    return container.Add[Mailer, *SMTPMailer](reg)
//	}
//
//	func (p *MailProvider) Boot(reg *container.Registry) error {
//	    container.NewHandle[Mailer](reg).Get().Ping()
//	    return nil
//	}
type ServiceProvider interface {
	// Register adds dependencies to the registry.
	// Do NOT resolve dependencies of other providers here; use Boot for that.
	Register(reg *Registry) error

	// Boot is called after all providers are registered.
	Boot(reg *Registry) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(reg *container.Registry) error { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Registry) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one Registry.
type ProviderRegistry struct {
	reg        *Registry
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a provider registry bound to reg.
func NewProviderRegistry(reg *Registry) *ProviderRegistry {
	return &ProviderRegistry{
		reg:        reg,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register method. Adding the same
// provider twice is a no-op. When Register fails, whatever the provider had
// already registered is removed again.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	before := r.reg.snapshot()
	if err := provider.Register(r.reg); err != nil {
		r.reg.rollback(before)
		return fmt.Errorf("register provider %T: %w", provider, err)
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	// Late providers are booted immediately
	if r.booted {
		if err := provider.Boot(r.reg); err != nil {
			return fmt.Errorf("boot provider %T: %w", provider, err)
		}
	}
	return nil
}

// Boot calls Boot on every registered provider, in registration order.
// Subsequent calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.providers {
		if err := provider.Boot(r.reg); err != nil {
			return fmt.Errorf("boot provider %T: %w", provider, err)
		}
	}
	return nil
}

// Booted returns true if Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }

// Registry returns the registry providers are bound to.
func (r *ProviderRegistry) Registry() *Registry { return r.reg }
