package engine

import "errors"

var (
	// ErrUnknownEntity is returned when an operation references an entity
	// id that was never issued or has already been physically removed
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrComponentNotPresent is returned when the requested component
	// type is not attached to the entity
	ErrComponentNotPresent = errors.New("component not present")
)
