package container

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when the interface type already has an entry.
	ErrDuplicate = errors.New("container: duplicate registration")
	// ErrUnknown is returned when removing an interface type that has no entry.
	ErrUnknown = errors.New("container: unknown dependency")
	// ErrMissingDependency is reported when resolving an interface type that has no entry.
	ErrMissingDependency = errors.New("container: missing dependency")
	// ErrNotAssignable is returned when the implementation cannot be stored as the interface.
	ErrNotAssignable = errors.New("container: implementation not assignable to interface")
	// ErrNotConstructible is returned when the implementation has no usable zero value.
	ErrNotConstructible = errors.New("container: implementation cannot be default-constructed")
	// ErrNotShareable is returned when the interface type is neither a pointer
	// nor an interface, so handles would each get their own copy.
	ErrNotShareable = errors.New("container: interface type must be a pointer or an interface")
	// ErrNilInstance is returned when providing a nil instance.
	ErrNilInstance = errors.New("container: nil instance")
	// ErrSealed is returned when mutating a sealed registry.
	ErrSealed = errors.New("container: sealed registry")
)

// DependencyError records the operation and dependency type behind a failure.
type DependencyError struct {
	Type string
	Op   string
	Err  error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Type, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func newDependencyError(typ, op string, err error) *DependencyError {
	return &DependencyError{Type: typ, Op: op, Err: err}
}
