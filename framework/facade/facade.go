// Package facade exposes the default registry through zero-argument calls.
//
//	facade.Register[*EmailService]()
//	facade.RegisterAs[Greeter, *FancyGreeter]()
//
//	greeter := facade.Dep[Greeter]()
//	greeter.Get().Greet()
//
//	facade.Unregister[Greeter]()
package facade

import "github.com/km-arc/go-dep/framework/container"

// Registry returns the registry behind the facade.
func Registry() *container.Registry { return container.Default() }

// Register stores a default-constructed I under I in the default registry.
func Register[I any]() bool { return container.Register[I](container.Default()) }

// RegisterAs stores a default-constructed Impl under I in the default registry.
func RegisterAs[I, Impl any]() bool { return container.RegisterAs[I, Impl](container.Default()) }

// Unregister removes I from the default registry.
func Unregister[I any]() bool { return container.Unregister[I](container.Default()) }

// Dep resolves a handle to I from the default registry.
func Dep[I any]() container.Handle[I] { return container.Dep[I]() }

// Lookup resolves I from the default registry without panicking.
func Lookup[I any]() (I, error) { return container.Lookup[I](container.Default()) }
