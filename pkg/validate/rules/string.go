package rules

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/validate"
)

// stringValue extracts a string from the context value. The second result is
// false when the value is absent (nil); absent values pass non-required
// rules. A non-string value yields ok=true with failed=true semantics handled
// by the callers via the third result.
func stringValue(ctx *validate.Context) (s string, present, isString bool) {
	if ctx.Value() == nil {
		return "", false, false
	}
	s, isString = ctx.Value().(string)
	return s, true, isString
}

// Required fails when the value is nil or a string that is empty after
// trimming whitespace.
func Required(opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.required",
		"{PropertyName} is required",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return false
			}
			if !isString {
				// Non-string values only need to be non-nil.
				return true
			}
			return strings.TrimSpace(s) != ""
		}, opts...)
}

// MinLength fails when a string is shorter than min bytes. Stages the
// MinLength and TotalLength placeholders on failure.
func MinLength(min int, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.min_length",
		"{PropertyName} must be at least {MinLength} characters long",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if isString && len(s) >= min {
				return true
			}
			ctx.Formatter().
				AppendArgument("MinLength", min).
				AppendArgument("TotalLength", len(s))
			return false
		}, opts...)
}

// MaxLength fails when a string is longer than max bytes. Stages the
// MaxLength and TotalLength placeholders on failure.
func MaxLength(max int, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.max_length",
		"{PropertyName} must be at most {MaxLength} characters long",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if isString && len(s) <= max {
				return true
			}
			ctx.Formatter().
				AppendArgument("MaxLength", max).
				AppendArgument("TotalLength", len(s))
			return false
		}, opts...)
}

// Length fails when a string is not exactly length bytes long. Stages the
// ExactLength and TotalLength placeholders on failure.
func Length(length int, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.exact_length",
		"{PropertyName} must be exactly {ExactLength} characters long",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if isString && len(s) == length {
				return true
			}
			ctx.Formatter().
				AppendArgument("ExactLength", length).
				AppendArgument("TotalLength", len(s))
			return false
		}, opts...)
}

// OneOf fails when a string is not among the allowed values. Stages the
// AllowedValues placeholder on failure.
func OneOf(allowed []string, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.one_of",
		"{PropertyName} must be one of: {AllowedValues}",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if isString && slices.Contains(allowed, s) {
				return true
			}
			ctx.Formatter().AppendArgument("AllowedValues", strings.Join(allowed, ", "))
			return false
		}, opts...)
}
