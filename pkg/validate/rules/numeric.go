package rules

import (
	"github.com/dmitrymomot/validkit/pkg/validate"
)

// Numeric is the constraint shared by all numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// numericValue extracts a T from the context value; absent values pass.
func numericValue[T Numeric](ctx *validate.Context) (n T, present, isT bool) {
	if ctx.Value() == nil {
		return n, false, false
	}
	n, isT = ctx.Value().(T)
	return n, true, isT
}

// Min fails when the value is below min. Stages the Min placeholder on
// failure.
func Min[T Numeric](min T, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.min",
		"{PropertyName} must be at least {Min}",
		func(ctx *validate.Context) bool {
			n, present, isT := numericValue[T](ctx)
			if !present {
				return true
			}
			if isT && n >= min {
				return true
			}
			ctx.Formatter().AppendArgument("Min", min)
			return false
		}, opts...)
}

// Max fails when the value is above max. Stages the Max placeholder on
// failure.
func Max[T Numeric](max T, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.max",
		"{PropertyName} must be at most {Max}",
		func(ctx *validate.Context) bool {
			n, present, isT := numericValue[T](ctx)
			if !present {
				return true
			}
			if isT && n <= max {
				return true
			}
			ctx.Formatter().AppendArgument("Max", max)
			return false
		}, opts...)
}

// Between fails when the value lies outside the inclusive [from, to] range.
// Stages the From and To placeholders on failure.
func Between[T Numeric](from, to T, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.between",
		"{PropertyName} must be between {From} and {To}",
		func(ctx *validate.Context) bool {
			n, present, isT := numericValue[T](ctx)
			if !present {
				return true
			}
			if isT && n >= from && n <= to {
				return true
			}
			ctx.Formatter().
				AppendArgument("From", from).
				AppendArgument("To", to)
			return false
		}, opts...)
}
