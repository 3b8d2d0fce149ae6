package container

import "reflect"

// entry is the type-erased storage of one registration.
type entry interface {
	typeID() TypeID
	// payload returns the shared instance as registered; it only ever
	// asserts back to the interface type it was stored under.
	payload() any
	describe() string
}

// typedEntry stores an instance under its interface type I.
type typedEntry[I any] struct {
	id    TypeID
	value I
	impl  reflect.Type
}

func newEntry[I any](id TypeID, value I, impl reflect.Type) entry {
	return &typedEntry[I]{id: id, value: value, impl: impl}
}

func (e *typedEntry[I]) typeID() TypeID { return e.id }
func (e *typedEntry[I]) payload() any   { return e.value }

func (e *typedEntry[I]) describe() string {
	iface := typeName[I]()
	if e.impl == nil || e.impl == reflect.TypeFor[I]() {
		return iface
	}
	return iface + " => " + e.impl.String()
}

// typeName is the human-readable name used in errors and logs.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
