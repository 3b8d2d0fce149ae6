package container

import (
	"reflect"
	"sync"
)

// TypeID is the registry key of a dependency type. Zero is never allocated.
type TypeID uint64

// ── Allocator ─────────────────────────────────────────────────────────────────

// Allocator hands out one TypeID per distinct Go type, in first-use order.
//
//	ids := container.NewAllocator()
//	ids.Of(reflect.TypeFor[Mailer]())  // 1
//	ids.Of(reflect.TypeFor[*Cache]())  // 2
//	ids.Of(reflect.TypeFor[Mailer]())  // 1 again
type Allocator struct {
	mu   sync.Mutex
	next TypeID
	ids  map[reflect.Type]TypeID
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{ids: make(map[reflect.Type]TypeID)}
}

// Of returns the identity of t, allocating the next one on first use.
func (a *Allocator) Of(t reflect.Type) TypeID {
	a.mu.Lock()
	defer a.mu.Unlock()
	if id, ok := a.ids[t]; ok {
		return id
	}
	a.next++
	a.ids[t] = a.next
	return a.next
}

// Len reports how many types have been assigned an identity.
func (a *Allocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.ids)
}

// ── Process-wide identities ───────────────────────────────────────────────────

// identities is shared by every Registry that was not given its own allocator.
var identities = NewAllocator()

// IdentityOf returns the process-wide identity of T.
func IdentityOf[T any]() TypeID {
	return identities.Of(reflect.TypeFor[T]())
}

func identityIn[T any](a *Allocator) TypeID {
	return a.Of(reflect.TypeFor[T]())
}
