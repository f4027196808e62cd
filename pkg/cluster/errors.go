package cluster

import "errors"

// Sentinel error kinds. Call sites wrap ErrOutOfRange and
// ErrInvalidArgument with github.com/pkg/errors so callers can still
// errors.Is against the sentinel while logs get a stack trace and a human
// message; ErrUnimplemented is returned unwrapped.
var (
	// ErrOutOfRange is returned when an index addresses a cluster or
	// point beyond the current size of its container.
	ErrOutOfRange = errors.New("cluster: index out of range")

	// ErrInvalidArgument is returned for k == 0, an empty MSet, or
	// k > len(mset).
	ErrInvalidArgument = errors.New("cluster: invalid argument")

	// ErrUnimplemented is returned by the positional/term-frequency
	// methods on point-backed term iterators, which exist only to
	// satisfy the iterator shape.
	ErrUnimplemented = errors.New("cluster: operation not implemented for this iterator")
)
