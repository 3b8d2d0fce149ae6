package container

// Handle holds the shared instance registered under I, captured once when the
// handle is resolved. Copies share the same instance, and removing I from the
// registry afterwards does not affect a resolved handle.
//
// A Handle field inside a struct is resolved when the registry constructs
// that struct:
//
//	type Notifier struct {
//	    emails container.Handle[*EmailService]
//	}
//
//	container.Register[*EmailService](reg)
//	container.Register[*Notifier](reg)  // emails is resolved here
//
// Anywhere else, build one with NewHandle or Dep.
type Handle[I any] struct {
	value I
	ok    bool
}

// NewHandle resolves I against r.
//
// If I is not registered, a checked registry panics with a *DependencyError
// wrapping ErrMissingDependency; an unchecked one returns an empty handle
// whose Get yields the zero I.
func NewHandle[I any](r *Registry) Handle[I] {
	var h Handle[I]
	h.resolveFrom(r)
	return h
}

// Dep resolves I against the default registry.
//
//	mailer := container.Dep[Mailer]()
//	mailer.Get().Send(msg)
func Dep[I any]() Handle[I] {
	return NewHandle[I](Default())
}

// Get returns the instance. On an empty handle it returns the zero I.
func (h Handle[I]) Get() I { return h.value }

// Value returns the instance and whether the handle resolved.
func (h Handle[I]) Value() (I, bool) { return h.value, h.ok }

// Valid reports whether the handle resolved.
func (h Handle[I]) Valid() bool { return h.ok }

func (h *Handle[I]) resolveFrom(r *Registry) {
	h.value, h.ok = resolve[I](r)
}
