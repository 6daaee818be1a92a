package validate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity classifies a failure independently of the boolean pass/fail
// outcome. The zero value is SeverityError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// MarshalJSON serializes the severity as its string name, which is what
// reporting consumers expect on the wire.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a severity from its string name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
	return nil
}

// Failure is the terminal output of a failed rule evaluation. It is
// constructed once by the engine and never mutated afterward; field names
// form the wire contract reporting consumers rely on.
type Failure struct {
	// PropertyName is the structural name of the failed property.
	PropertyName string `json:"property_name"`
	// Message is the fully rendered, localized failure message.
	Message string `json:"message"`
	// AttemptedValue is the offending value as seen by the rule.
	AttemptedValue any `json:"attempted_value,omitempty"`
	// ErrorCode is the user-assigned code override, if any.
	ErrorCode string `json:"error_code,omitempty"`
	// Placeholders is the formatter snapshot taken at failure time, kept for
	// introspection and message-template debugging tools.
	Placeholders map[string]any `json:"placeholders,omitempty"`
	// CustomState is opaque caller-defined data attached by a state provider.
	CustomState any `json:"custom_state,omitempty"`
	// Severity classifies the failure; defaults to SeverityError.
	Severity Severity `json:"severity"`
}

// Failures is the 0-or-1 element sequence returned by a single rule
// evaluation. It satisfies the error interface so orchestrators can bubble
// accumulated failures up as a regular error value.
type Failures []Failure

// Error implements the error interface.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, fmt.Sprintf("%s: %s", f.PropertyName, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsEmpty reports whether the sequence contains no failures.
func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}
