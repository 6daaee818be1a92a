package validate

import (
	"context"
	"errors"
	"fmt"
)

// Predicate is the synchronous validity check: it returns true when the
// context's value satisfies the rule. A predicate must be free of external
// side effects, except that it may stage placeholder values on the context's
// formatter before returning false.
type Predicate func(*Context) bool

// AsyncPredicate is the suspension-capable validity check for rules that need
// I/O (remote lookups). It must honor ctx cancellation cooperatively; a
// returned error aborts the evaluation without producing a verdict.
type AsyncPredicate func(ctx context.Context, vctx *Context) (bool, error)

// Condition gates whether a rule applies to the current run. A rule whose
// condition returns false is skipped without producing a failure.
type Condition func(*ParentContext) bool

// AsyncCondition is an applicability condition that may itself suspend.
// Configuring one forces the asynchronous path: see
// Rule.ShouldValidateAsynchronously.
type AsyncCondition func(ctx context.Context, parent *ParentContext) (bool, error)

// MessageProvider fully overrides message construction for a failure.
type MessageProvider func(MessageContext) string

// StateProvider computes opaque caller-defined state to attach to a failure.
type StateProvider func(*Context) any

// SeverityProvider computes the severity to attach to a failure.
type SeverityProvider func(*Context) Severity

// Rule is one validation predicate bundled with its failure-reporting
// configuration: message key, intrinsic template, error code and optional
// overrides. All configuration is captured at construction and never mutated
// afterward, so a single Rule may be shared across any number of concurrent
// evaluations.
type Rule struct {
	messageKey string
	template   string
	errorCode  string
	severity   Severity

	check      Predicate
	checkAsync AsyncPredicate

	condition      Condition
	asyncCondition AsyncCondition

	messageProvider  MessageProvider
	stateProvider    StateProvider
	severityProvider SeverityProvider
}

// NewRule creates a rule from its message key, intrinsic default template and
// synchronous validity check. The template is the last resort of message
// resolution and therefore guarantees every failure has a message even
// without a configured message source.
//
// Panics when check is nil or both messageKey and template are empty: a rule
// that can neither evaluate nor report is a programming error, surfaced at
// construction rather than on first failure.
func NewRule(messageKey, template string, check Predicate, opts ...RuleOption) *Rule {
	if check == nil {
		panic("validate: rule requires a validity check")
	}
	if messageKey == "" && template == "" {
		panic("validate: rule requires a message key or template")
	}

	r := &Rule{
		messageKey: messageKey,
		template:   template,
		check:      check,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MessageKey returns the rule-intrinsic message lookup key.
func (r *Rule) MessageKey() string {
	return r.messageKey
}

// ErrorCode returns the user-assigned error code, or "" when none is set.
func (r *Rule) ErrorCode() string {
	return r.errorCode
}

// ShouldValidateAsynchronously advises the caller which invocation path is
// required for this rule. It returns true exactly when an asynchronous
// applicability condition is configured: evaluating that condition may itself
// suspend, so even a caller preferring synchronous execution must take the
// asynchronous path. Outer runners are expected to query this before choosing
// how to invoke the rule.
func (r *Rule) ShouldValidateAsynchronously(*ParentContext) bool {
	return r.asyncCondition != nil
}

// Validate evaluates the rule synchronously and returns zero or one failures.
// The valid path allocates nothing and leaves the context's formatter
// untouched.
func (r *Rule) Validate(vctx *Context) Failures {
	if r.condition != nil && !r.condition(vctx.Parent()) {
		return nil
	}
	if r.check(vctx) {
		return nil
	}
	return Failures{r.buildFailure(vctx)}
}

// ValidateAsync evaluates the rule on the asynchronous path. Semantics match
// Validate, except the validity check may suspend and the whole evaluation is
// cancellable: when ctx is done the call reports ErrCancelled instead of any
// verdict. A rule without an async check delegates to its synchronous
// predicate, keeping both paths behaviorally equivalent.
func (r *Rule) ValidateAsync(ctx context.Context, vctx *Context) (Failures, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrCancelled, err)
	}

	applicable, err := r.applies(ctx, vctx.Parent())
	if err != nil {
		return nil, err
	}
	if !applicable {
		return nil, nil
	}

	valid, err := r.isValidAsync(ctx, vctx)
	if err != nil {
		return nil, err
	}
	// A check that raced its own cancellation must not be reported as a
	// verdict.
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrCancelled, err)
	}
	if valid {
		return nil, nil
	}
	return Failures{r.buildFailure(vctx)}, nil
}

// applies evaluates the applicability conditions on the asynchronous path.
func (r *Rule) applies(ctx context.Context, parent *ParentContext) (bool, error) {
	if r.asyncCondition != nil {
		ok, err := r.asyncCondition(ctx, parent)
		if err != nil {
			if ctx.Err() != nil {
				return false, errors.Join(ErrCancelled, err)
			}
			return false, errors.Join(ErrConditionFailed, err)
		}
		return ok, nil
	}
	if r.condition != nil {
		return r.condition(parent), nil
	}
	return true, nil
}

// isValidAsync runs the async validity check, falling back to the
// synchronous predicate when no async override was configured.
func (r *Rule) isValidAsync(ctx context.Context, vctx *Context) (bool, error) {
	if r.checkAsync == nil {
		return r.check(vctx), nil
	}
	valid, err := r.checkAsync(ctx, vctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, errors.Join(ErrCancelled, err)
		}
		return false, errors.Join(ErrCheckFailed, err)
	}
	return valid, nil
}

// buildFailure assembles the failure record for an invalid verdict. Order is
// deterministic: standard placeholders, message, record construction,
// placeholder snapshot, custom state, severity. Panics from user-supplied
// providers propagate to the caller untouched; each evaluation owns its own
// formatter, so a misbehaving provider cannot corrupt sibling evaluations.
func (r *Rule) buildFailure(vctx *Context) Failure {
	r.prepareFormatter(vctx)

	var message string
	if r.messageProvider != nil {
		message = r.messageProvider(MessageContext{rule: r, vctx: vctx})
	} else {
		message = vctx.Formatter().Render(r.resolveTemplate(vctx.Parent()))
	}

	failure := Failure{
		PropertyName:   vctx.PropertyName(),
		Message:        message,
		AttemptedValue: vctx.Value(),
		ErrorCode:      r.errorCode,
		Placeholders:   vctx.Formatter().Placeholders(),
		Severity:       r.severity,
	}
	if r.stateProvider != nil {
		failure.CustomState = r.stateProvider(vctx)
	}
	if r.severityProvider != nil {
		failure.Severity = r.severityProvider(vctx)
	}
	return failure
}

// prepareFormatter populates the standard placeholders for a prospective
// failure message. The collection index is auto-populated only when the rule
// did not stage one itself: explicit values win so specialized rules can
// report a different index semantic without being clobbered.
func (r *Rule) prepareFormatter(vctx *Context) {
	f := vctx.Formatter()
	f.AppendPropertyName(vctx.DisplayName())
	f.AppendPropertyValue(vctx.Value())

	if index, ok := vctx.Parent().CollectionIndex(); ok {
		if _, staged := f.Placeholder(CollectionIndexKey); !staged {
			f.AppendArgument(CollectionIndexKey, index)
		}
	}
}

// resolveTemplate picks exactly one template string for this evaluation.
// Precedence: the error code registered in the run's message source, then the
// message key, then the rule-intrinsic template. An empty result means the
// rule was constructed against a catalog that was expected to carry its key;
// that is a configuration error, surfaced immediately.
func (r *Rule) resolveTemplate(parent *ParentContext) string {
	if src := parent.Messages(); src != nil {
		if r.errorCode != "" {
			if tmpl := src.GetString(r.errorCode); tmpl != "" {
				return tmpl
			}
		}
		if r.messageKey != "" {
			if tmpl := src.GetString(r.messageKey); tmpl != "" {
				return tmpl
			}
		}
	}
	if r.template == "" {
		panic(fmt.Sprintf("validate: no message template registered for key %q", r.messageKey))
	}
	return r.template
}

// MessageContext is handed to a MessageProvider: it exposes the evaluation
// context and the owning rule's resolution machinery so custom builders can
// decorate rather than reimplement the default message.
type MessageContext struct {
	rule *Rule
	vctx *Context
}

// Context returns the evaluation context.
func (mc MessageContext) Context() *Context {
	return mc.vctx
}

// MessageKey returns the owning rule's message key.
func (mc MessageContext) MessageKey() string {
	return mc.rule.messageKey
}

// ErrorCode returns the owning rule's error code.
func (mc MessageContext) ErrorCode() string {
	return mc.rule.errorCode
}

// DefaultMessage resolves and renders the message the engine would have
// produced without the override.
func (mc MessageContext) DefaultMessage() string {
	return mc.vctx.Formatter().Render(mc.rule.resolveTemplate(mc.vctx.Parent()))
}
