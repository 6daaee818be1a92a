package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the destination struct.
	ErrParsingConfig = errors.New("failed to parse environment into config")
)
