// Package container is a typed dependency registry.
//
// # Overview
//
// A dependency is registered under an interface type and later requested by
// naming only that type. The registry keys entries by a per-type TypeID and
// stores every instance behind a type-erased entry that can only be recovered
// as the interface type it was registered under.
//
// The interface type must be a pointer or an interface so that every handle
// shares one instance; other kinds are rejected with ErrNotShareable.
// Registration default-constructs the implementation: pointer types get a
// fresh zero element, other types their zero value. There is no constructor
// injection; dependencies are pulled in through Handle fields instead.
//
// # Registry Lifecycle
//
//  1. Create: reg := container.New()
//  2. Register dependencies (single goroutine): container.Register[*Foo](reg)
//  3. Optionally seal: reg.Seal()
//  4. Resolve handles anywhere
//
// Flush empties an unsealed registry, typically between tests. Once sealed,
// the set of entries is final.
//
// A Registry has no internal locking. Concurrent registration, removal or
// resolution while registering is not supported and must be serialized by
// the caller.
//
// # Registering
//
//	// Concrete type, requested as *EmailService
//	container.Register[*EmailService](reg)
//
//	// Implementation behind an interface, requested as Greeter
//	container.RegisterAs[Greeter, *FancyGreeter](reg)
//
//	// Pre-built value
//	container.Provide[*config.Config](reg, cfg)
//
//	// Error-returning form
//	if err := container.Add[Greeter, *FancyGreeter](reg); errors.Is(err, container.ErrDuplicate) { ... }
//
// The first registration of an interface wins; later ones fail without side
// effects. A dependency is found only by the exact type it was registered
// under: *FancyGreeter above is not resolvable by itself.
//
// # Resolving
//
//	// Handle, checked: panics on a missing dependency
//	greeter := container.NewHandle[Greeter](reg)
//	greeter.Get().Greet()
//
//	// Handle fields are resolved when the registry constructs their owner
//	type Notifier struct {
//	    emails container.Handle[*EmailService]
//	}
//
//	// Recoverable form
//	greeter, err := container.Lookup[Greeter](reg)
//
// Registries built WithChecked(false) log a warning instead of panicking and
// hand out empty handles; using one is the caller's risk.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(reg *container.Registry) error {
//	    return container.Add[Mailer, *SMTPMailer](reg)
//	}
//
//	providers := container.NewProviderRegistry(reg)
//	providers.Register(&AppServiceProvider{})
//	providers.Boot()
package container
