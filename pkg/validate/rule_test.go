package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validate"
)

// mapSource is a minimal in-memory StringSource for resolution tests.
type mapSource map[string]string

func (m mapSource) GetString(key string) string { return m[key] }

func notEmpty() validate.Predicate {
	return func(ctx *validate.Context) bool {
		s, _ := ctx.Value().(string)
		return s != ""
	}
}

func TestNewRule(t *testing.T) {
	t.Run("panics without a validity check", func(t *testing.T) {
		assert.Panics(t, func() {
			validate.NewRule("key", "template", nil)
		})
	})

	t.Run("panics without key and template", func(t *testing.T) {
		assert.Panics(t, func() {
			validate.NewRule("", "", notEmpty())
		})
	})

	t.Run("exposes configuration", func(t *testing.T) {
		rule := validate.NewRule("validation.required", "{PropertyName} is required", notEmpty(),
			validate.WithErrorCode("E1"))
		assert.Equal(t, "validation.required", rule.MessageKey())
		assert.Equal(t, "E1", rule.ErrorCode())
	})
}

func TestRuleValidate(t *testing.T) {
	rule := validate.NewRule("validation.required", "{PropertyName} is required", notEmpty())

	t.Run("valid input returns no failures and leaves the formatter untouched", func(t *testing.T) {
		ctx := validate.NewContext(validate.NewParentContext(), "present", "name", "")

		failures := rule.Validate(ctx)
		assert.Empty(t, failures)
		assert.Equal(t, 0, ctx.Formatter().Len())
	})

	t.Run("invalid input returns exactly one failure", func(t *testing.T) {
		ctx := validate.NewContext(validate.NewParentContext(), "", "name", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "name", failures[0].PropertyName)
		assert.Equal(t, "", failures[0].AttemptedValue)
		assert.Equal(t, "name is required", failures[0].Message)
		assert.Equal(t, validate.SeverityError, failures[0].Severity)
	})

	t.Run("message renders the display name", func(t *testing.T) {
		ctx := validate.NewContext(validate.NewParentContext(), "", "first_name", "First Name")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "First Name is required", failures[0].Message)
		assert.Equal(t, "first_name", failures[0].PropertyName)
	})

	t.Run("failure carries the placeholder snapshot", func(t *testing.T) {
		ctx := validate.NewContext(validate.NewParentContext(), "", "name", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "name", failures[0].Placeholders[validate.PropertyNameKey])
		assert.Equal(t, "", failures[0].Placeholders[validate.PropertyValueKey])
	})

	t.Run("nil value does not panic", func(t *testing.T) {
		ctx := validate.NewContext(validate.NewParentContext(), nil, "name", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Nil(t, failures[0].AttemptedValue)
	})

	t.Run("predicate staging is visible in the rendered message", func(t *testing.T) {
		minLen := validate.NewRule("validation.min_length",
			"{PropertyName} must be at least {MinLength} characters, got {TotalLength}",
			func(ctx *validate.Context) bool {
				s, _ := ctx.Value().(string)
				if len(s) >= 5 {
					return true
				}
				ctx.Formatter().
					AppendArgument("MinLength", 5).
					AppendArgument("TotalLength", len(s))
				return false
			})

		ctx := validate.NewContext(validate.NewParentContext(), "abc", "code", "")
		failures := minLen.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "code must be at least 5 characters, got 3", failures[0].Message)
	})

	t.Run("sync condition skips rule without failure", func(t *testing.T) {
		gated := validate.NewRule("k", "nope", notEmpty(),
			validate.WithCondition(func(p *validate.ParentContext) bool {
				_, strict := p.Get("strict")
				return strict
			}))

		relaxed := validate.NewContext(validate.NewParentContext(), "", "name", "")
		assert.Empty(t, gated.Validate(relaxed))

		strict := validate.NewContext(validate.NewParentContext(validate.WithData("strict", true)), "", "name", "")
		assert.Len(t, gated.Validate(strict), 1)
	})
}

func TestRuleMessageResolution(t *testing.T) {
	source := mapSource{
		"E1":    "custom {PropertyName}",
		"Rule1": "default {PropertyName}",
	}

	check := notEmpty()

	t.Run("error code registration wins", func(t *testing.T) {
		rule := validate.NewRule("Rule1", "intrinsic {PropertyName}", check,
			validate.WithErrorCode("E1"))
		ctx := validate.NewContext(validate.NewParentContext(validate.WithMessages(source)), "", "X", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "custom X", failures[0].Message)
	})

	t.Run("falls back to the message key without an error code", func(t *testing.T) {
		rule := validate.NewRule("Rule1", "intrinsic {PropertyName}", check)
		ctx := validate.NewContext(validate.NewParentContext(validate.WithMessages(source)), "", "X", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "default X", failures[0].Message)
	})

	t.Run("unregistered error code falls back to the message key", func(t *testing.T) {
		rule := validate.NewRule("Rule1", "intrinsic {PropertyName}", check,
			validate.WithErrorCode("E404"))
		ctx := validate.NewContext(validate.NewParentContext(validate.WithMessages(source)), "", "X", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "default X", failures[0].Message)
		assert.Equal(t, "E404", failures[0].ErrorCode)
	})

	t.Run("intrinsic template used without a message source", func(t *testing.T) {
		rule := validate.NewRule("Rule1", "intrinsic {PropertyName}", check)
		ctx := validate.NewContext(validate.NewParentContext(), "", "X", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "intrinsic X", failures[0].Message)
	})

	t.Run("unresolvable key without intrinsic template panics", func(t *testing.T) {
		rule := validate.NewRule("missing.key", "", check)
		ctx := validate.NewContext(validate.NewParentContext(validate.WithMessages(mapSource{})), "", "X", "")

		assert.Panics(t, func() { rule.Validate(ctx) })
	})

	t.Run("message template option replaces key resolution", func(t *testing.T) {
		rule := validate.NewRule("Rule1", "intrinsic", check,
			validate.WithMessageTemplate("overridden {PropertyName}"))
		ctx := validate.NewContext(validate.NewParentContext(validate.WithMessages(source)), "", "X", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "overridden X", failures[0].Message)
	})
}

func TestRuleCollectionIndex(t *testing.T) {
	rule := validate.NewRule("validation.required", "item {CollectionIndex} of {PropertyName} is required", notEmpty())

	t.Run("auto-populated from the parent context", func(t *testing.T) {
		parent := validate.NewParentContext()
		parent.SetCollectionIndex(3)
		ctx := validate.NewContext(parent, "", "tags", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "item 3 of tags is required", failures[0].Message)
		assert.Equal(t, 3, failures[0].Placeholders[validate.CollectionIndexKey])
	})

	t.Run("explicitly staged index is preserved", func(t *testing.T) {
		custom := validate.NewRule("k", "item {CollectionIndex} is required",
			func(ctx *validate.Context) bool {
				ctx.Formatter().AppendArgument(validate.CollectionIndexKey, "custom")
				return false
			})

		parent := validate.NewParentContext()
		parent.SetCollectionIndex(3)
		ctx := validate.NewContext(parent, "", "tags", "")

		failures := custom.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "item custom is required", failures[0].Message)
	})

	t.Run("no placeholder without an enclosing iteration", func(t *testing.T) {
		ctx := validate.NewContext(validate.NewParentContext(), "", "tags", "")

		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, "item {CollectionIndex} of tags is required", failures[0].Message)
		assert.NotContains(t, failures[0].Placeholders, validate.CollectionIndexKey)
	})
}

func TestRuleOverrides(t *testing.T) {
	check := notEmpty()

	t.Run("custom state and severity providers are both applied", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithState(func(ctx *validate.Context) any {
				return map[string]string{"property": ctx.PropertyName()}
			}),
			validate.WithSeverityFunc(func(*validate.Context) validate.Severity {
				return validate.SeverityWarning
			}))

		ctx := validate.NewContext(validate.NewParentContext(), "", "name", "")
		failures := rule.Validate(ctx)
		require.Len(t, failures, 1)
		assert.Equal(t, map[string]string{"property": "name"}, failures[0].CustomState)
		assert.Equal(t, validate.SeverityWarning, failures[0].Severity)
	})

	t.Run("static severity applies without a provider", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check, validate.WithSeverity(validate.SeverityInfo))

		failures := rule.Validate(validate.NewContext(validate.NewParentContext(), "", "f", ""))
		require.Len(t, failures, 1)
		assert.Equal(t, validate.SeverityInfo, failures[0].Severity)
	})

	t.Run("message provider fully overrides construction", func(t *testing.T) {
		rule := validate.NewRule("k", "default {PropertyName}", check,
			validate.WithMessageFunc(func(mc validate.MessageContext) string {
				return "[" + mc.ErrorCode() + "] " + mc.DefaultMessage()
			}),
			validate.WithErrorCode("E7"))

		failures := rule.Validate(validate.NewContext(validate.NewParentContext(), "", "name", ""))
		require.Len(t, failures, 1)
		assert.Equal(t, "[E7] default name", failures[0].Message)
	})

	t.Run("provider panic propagates to the caller", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithState(func(*validate.Context) any { panic("provider blew up") }))

		assert.PanicsWithValue(t, "provider blew up", func() {
			rule.Validate(validate.NewContext(validate.NewParentContext(), "", "f", ""))
		})
	})
}

func TestRuleValidateAsync(t *testing.T) {
	check := notEmpty()

	t.Run("equivalent to sync when no async check configured", func(t *testing.T) {
		rule := validate.NewRule("k", "{PropertyName} is required", check,
			validate.WithErrorCode("E1"))

		parent := validate.NewParentContext()
		syncFailures := rule.Validate(validate.NewContext(parent, "", "name", ""))
		asyncFailures, err := rule.ValidateAsync(context.Background(), validate.NewContext(parent, "", "name", ""))

		require.NoError(t, err)
		assert.Equal(t, syncFailures, asyncFailures)
	})

	t.Run("async check is used when configured", func(t *testing.T) {
		rule := validate.NewRule("k", "{PropertyValue} is taken", check,
			validate.WithAsyncCheck(func(_ context.Context, vctx *validate.Context) (bool, error) {
				return vctx.Value() != "taken", nil
			}))

		failures, err := rule.ValidateAsync(context.Background(), validate.NewContext(validate.NewParentContext(), "taken", "slug", ""))
		require.NoError(t, err)
		require.Len(t, failures, 1)
		assert.Equal(t, "taken is taken", failures[0].Message)

		failures, err = rule.ValidateAsync(context.Background(), validate.NewContext(validate.NewParentContext(), "free", "slug", ""))
		require.NoError(t, err)
		assert.Empty(t, failures)
	})

	t.Run("pre-cancelled context reports cancellation, not a verdict", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		failures, err := rule.ValidateAsync(ctx, validate.NewContext(validate.NewParentContext(), "valid", "f", ""))
		assert.Nil(t, failures)
		assert.ErrorIs(t, err, validate.ErrCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancellation during the check wins over the verdict", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCheck(func(context.Context, *validate.Context) (bool, error) {
				cancel()
				return true, nil
			}))

		failures, err := rule.ValidateAsync(ctx, validate.NewContext(validate.NewParentContext(), "", "f", ""))
		assert.Nil(t, failures)
		assert.ErrorIs(t, err, validate.ErrCancelled)
	})

	t.Run("check error propagates without a failure", func(t *testing.T) {
		lookupErr := errors.New("connection refused")
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCheck(func(context.Context, *validate.Context) (bool, error) {
				return false, lookupErr
			}))

		failures, err := rule.ValidateAsync(context.Background(), validate.NewContext(validate.NewParentContext(), "", "f", ""))
		assert.Nil(t, failures)
		assert.ErrorIs(t, err, validate.ErrCheckFailed)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("check honoring cancellation reports cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCheck(func(c context.Context, _ *validate.Context) (bool, error) {
				cancel()
				return false, c.Err()
			}))

		_, err := rule.ValidateAsync(ctx, validate.NewContext(validate.NewParentContext(), "", "f", ""))
		assert.ErrorIs(t, err, validate.ErrCancelled)
	})

	t.Run("async condition gates the rule", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCondition(func(_ context.Context, p *validate.ParentContext) (bool, error) {
				_, strict := p.Get("strict")
				return strict, nil
			}))

		failures, err := rule.ValidateAsync(context.Background(), validate.NewContext(validate.NewParentContext(), "", "f", ""))
		require.NoError(t, err)
		assert.Empty(t, failures)

		strict := validate.NewParentContext(validate.WithData("strict", true))
		failures, err = rule.ValidateAsync(context.Background(), validate.NewContext(strict, "", "f", ""))
		require.NoError(t, err)
		assert.Len(t, failures, 1)
	})

	t.Run("async condition error aborts the evaluation", func(t *testing.T) {
		condErr := errors.New("feature flag lookup failed")
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCondition(func(context.Context, *validate.ParentContext) (bool, error) {
				return false, condErr
			}))

		failures, err := rule.ValidateAsync(context.Background(), validate.NewContext(validate.NewParentContext(), "", "f", ""))
		assert.Nil(t, failures)
		assert.ErrorIs(t, err, validate.ErrConditionFailed)
		assert.ErrorIs(t, err, condErr)
	})
}

func TestShouldValidateAsynchronously(t *testing.T) {
	parent := validate.NewParentContext()
	check := notEmpty()

	t.Run("false for a default rule", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check)
		assert.False(t, rule.ShouldValidateAsynchronously(parent))
	})

	t.Run("false with only an async check", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCheck(func(context.Context, *validate.Context) (bool, error) { return true, nil }))
		assert.False(t, rule.ShouldValidateAsynchronously(parent))
	})

	t.Run("true whenever an async condition is configured", func(t *testing.T) {
		rule := validate.NewRule("k", "tmpl", check,
			validate.WithAsyncCondition(func(context.Context, *validate.ParentContext) (bool, error) { return true, nil }))
		assert.True(t, rule.ShouldValidateAsynchronously(parent))
	})
}
