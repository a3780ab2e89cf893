package pipeline

import "errors"

// Sentinel errors returned (or carried by panics for programmer errors) by
// pipeline operations.
var (
	// ErrInvalidArgument is reported for malformed call parameters: negative
	// Slice bounds, nil user functions or a nil source at construction.
	ErrInvalidArgument = errors.New("pipeline: invalid argument")

	// ErrEmptyCollection is returned when an operation requires at least one
	// remaining element but the source is exhausted.
	ErrEmptyCollection = errors.New("pipeline: operation on empty collection")
)
