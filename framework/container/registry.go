package container

import (
	"reflect"
	"sort"

	"go.uber.org/zap"
)

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry maps an interface type to the one shared instance registered for it.
//
// A Registry is not safe for concurrent mutation. Register everything during a
// single-threaded startup phase; once Seal has been called the registry only
// serves lookups, which may then happen from any goroutine.
type Registry struct {
	ids     *Allocator
	entries map[TypeID]entry
	log     *zap.Logger
	checked bool
	sealed  bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithChecked controls what happens when a handle resolves a missing
// dependency: panic when true (the default), zero value and a warning when false.
func WithChecked(checked bool) Option { return func(r *Registry) { r.checked = checked } }

// WithLogger sets the logger. Without it the zap global logger is used.
func WithLogger(log *zap.Logger) Option { return func(r *Registry) { r.log = log } }

// WithAllocator gives the registry a private identity allocator instead of
// the process-wide one.
func WithAllocator(a *Allocator) Option { return func(r *Registry) { r.ids = a } }

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		ids:     identities,
		entries: make(map[TypeID]entry),
		checked: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ── Registration ──────────────────────────────────────────────────────────────

// Add default-constructs an Impl, resolves its Handle fields against r and
// stores it under I. The first registration of I wins: a second Add fails with
// ErrDuplicate and constructs nothing.
//
//	err := container.Add[Mailer, *SMTPMailer](reg)
func Add[I, Impl any](r *Registry) error {
	name := typeName[I]()
	if r.sealed {
		return newDependencyError(name, "register", ErrSealed)
	}
	if !shareable[I]() {
		return newDependencyError(name, "register", ErrNotShareable)
	}
	implType := reflect.TypeFor[Impl]()
	if !implType.AssignableTo(reflect.TypeFor[I]()) {
		return newDependencyError(name, "register", ErrNotAssignable)
	}

	id := identityIn[I](r.ids)
	if _, exists := r.entries[id]; exists {
		r.logger().Debug("dependency already registered",
			zap.String("interface", name),
			zap.String("implementation", implType.String()))
		return newDependencyError(name, "register", ErrDuplicate)
	}

	impl, err := construct[Impl](r)
	if err != nil {
		return newDependencyError(name, "register", err)
	}
	r.store(newEntry[I](id, assign[I](impl), implType))
	return nil
}

// Register stores a default-constructed I under I.
// It returns false if I is already registered or cannot be constructed.
//
//	container.Register[*EmailService](reg)
func Register[I any](r *Registry) bool {
	return Add[I, I](r) == nil
}

// RegisterAs stores a default-constructed Impl under the interface I.
//
//	container.RegisterAs[Greeter, *FancyGreeter](reg)
func RegisterAs[I, Impl any](r *Registry) bool {
	return Add[I, Impl](r) == nil
}

// Provide stores a pre-built instance under I.
//
//	container.Provide[*config.Config](reg, cfg)
func Provide[I any](r *Registry, instance I) error {
	name := typeName[I]()
	if r.sealed {
		return newDependencyError(name, "provide", ErrSealed)
	}
	if !shareable[I]() {
		return newDependencyError(name, "provide", ErrNotShareable)
	}
	if isNil(instance) {
		return newDependencyError(name, "provide", ErrNilInstance)
	}
	id := identityIn[I](r.ids)
	if _, exists := r.entries[id]; exists {
		return newDependencyError(name, "provide", ErrDuplicate)
	}
	r.store(newEntry[I](id, instance, reflect.TypeOf(instance)))
	return nil
}

// Remove drops the entry for I. Handles that already resolved I keep their
// reference.
func Remove[I any](r *Registry) error {
	name := typeName[I]()
	if r.sealed {
		return newDependencyError(name, "unregister", ErrSealed)
	}
	id := identityIn[I](r.ids)
	if _, ok := r.entries[id]; !ok {
		return newDependencyError(name, "unregister", ErrUnknown)
	}
	delete(r.entries, id)
	r.logger().Debug("dependency unregistered",
		zap.String("interface", name),
		zap.Uint64("type_id", uint64(id)))
	return nil
}

// Unregister drops the entry for I and reports whether there was one.
func Unregister[I any](r *Registry) bool {
	return Remove[I](r) == nil
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Lookup returns the instance registered under I, or ErrMissingDependency.
// Unlike a Handle it never panics.
//
//	mailer, err := container.Lookup[Mailer](reg)
func Lookup[I any](r *Registry) (I, error) {
	var zero I
	e, ok := r.entries[identityIn[I](r.ids)]
	if !ok {
		return zero, newDependencyError(typeName[I](), "resolve", ErrMissingDependency)
	}
	v, ok := e.payload().(I)
	if !ok {
		return zero, newDependencyError(typeName[I](), "resolve", ErrNotAssignable)
	}
	return v, nil
}

// Has reports whether I is registered.
func Has[I any](r *Registry) bool {
	_, ok := r.entries[identityIn[I](r.ids)]
	return ok
}

// resolve is the handle-side lookup. A missing dependency panics in checked
// registries and yields the zero value otherwise.
func resolve[I any](r *Registry) (I, bool) {
	v, err := Lookup[I](r)
	if err == nil {
		return v, true
	}
	if r.checked {
		panic(err)
	}
	r.logger().Warn("unresolved dependency",
		zap.String("interface", typeName[I]()),
		zap.Error(err))
	return v, false
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Len returns the number of registered dependencies.
func (r *Registry) Len() int { return len(r.entries) }

// Checked reports whether missing dependencies panic.
func (r *Registry) Checked() bool { return r.checked }

// Bindings returns the registered dependencies, sorted, as "Interface" or
// "Interface => Implementation".
func (r *Registry) Bindings() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.describe())
	}
	sort.Strings(out)
	return out
}

// Seal rejects every later registration, removal and Flush. It returns true if this
// call sealed the registry.
func (r *Registry) Seal() bool {
	if r.sealed {
		return false
	}
	r.sealed = true
	r.logger().Debug("registry sealed", zap.Int("dependencies", len(r.entries)))
	return true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool { return r.sealed }

// Flush drops every entry. A sealed registry is left untouched and reports
// ErrSealed.
func (r *Registry) Flush() error {
	if r.sealed {
		return ErrSealed
	}
	r.entries = make(map[TypeID]entry)
	return nil
}

// snapshot returns the type ids currently registered.
func (r *Registry) snapshot() map[TypeID]struct{} {
	ids := make(map[TypeID]struct{}, len(r.entries))
	for id := range r.entries {
		ids[id] = struct{}{}
	}
	return ids
}

// rollback drops every entry added since snapshot was taken.
func (r *Registry) rollback(snapshot map[TypeID]struct{}) {
	for id, e := range r.entries {
		if _, kept := snapshot[id]; kept {
			continue
		}
		delete(r.entries, id)
		r.logger().Debug("dependency rolled back", zap.String("binding", e.describe()))
	}
}

func (r *Registry) store(e entry) {
	r.entries[e.typeID()] = e
	r.logger().Debug("dependency registered",
		zap.String("binding", e.describe()),
		zap.Uint64("type_id", uint64(e.typeID())))
}

func (r *Registry) logger() *zap.Logger {
	if r.log != nil {
		return r.log
	}
	return zap.L()
}

// shareable reports whether every handle to I observes the same instance.
func shareable[I any]() bool {
	switch reflect.TypeFor[I]().Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	}
	return false
}

// isNil catches nil interfaces as well as typed nils held by one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// construct builds the zero value of Impl; pointer types get a fresh element.
func construct[Impl any](r *Registry) (Impl, error) {
	var zero Impl
	t := reflect.TypeFor[Impl]()
	switch t.Kind() {
	case reflect.Interface:
		return zero, ErrNotConstructible
	case reflect.Pointer:
		v := reflect.New(t.Elem())
		r.inject(v)
		return v.Convert(t).Interface().(Impl), nil
	default:
		v := reflect.New(t)
		r.inject(v)
		return v.Elem().Interface().(Impl), nil
	}
}

// assign converts impl to I; the caller has checked assignability.
func assign[I any](impl any) I {
	v := reflect.New(reflect.TypeFor[I]()).Elem()
	v.Set(reflect.ValueOf(impl))
	return v.Interface().(I)
}
