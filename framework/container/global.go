package container

import "sync"

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, creating a checked one on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		if defaultRegistry == nil {
			defaultRegistry = New()
		}
	})
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. Call it during startup,
// before any handle is resolved against Default.
func SetDefault(r *Registry) {
	defaultOnce.Do(func() {})
	defaultRegistry = r
}
