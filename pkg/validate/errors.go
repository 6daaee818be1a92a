package validate

import "errors"

// Package errors follow the sentinel + errors.Join convention so callers can
// classify faults with errors.Is while keeping the originating detail.
var (
	// ErrCancelled reports that an asynchronous evaluation was aborted by its
	// context before producing a verdict. It is always joined with the
	// context's own error.
	ErrCancelled = errors.New("validation cancelled")

	// ErrConditionFailed reports that an asynchronous applicability condition
	// returned an error, aborting the evaluation.
	ErrConditionFailed = errors.New("applicability condition failed")

	// ErrCheckFailed reports that an asynchronous validity check returned an
	// error other than cancellation.
	ErrCheckFailed = errors.New("validity check failed")

	// ErrUnknownSeverity is returned when deserializing an unrecognized
	// severity name.
	ErrUnknownSeverity = errors.New("unknown severity")
)
