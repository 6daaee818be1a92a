package validate

// RuleOption configures a Rule at construction. Nil values are ignored so an
// absent override always means "use default behavior".
type RuleOption func(*Rule)

// WithErrorCode assigns a user-defined error code. The code doubles as the
// highest-precedence message lookup key, letting end users override the
// message per code without redefining the rule's own key.
func WithErrorCode(code string) RuleOption {
	return func(r *Rule) {
		r.errorCode = code
	}
}

// WithMessageTemplate replaces the rule-intrinsic template and drops the
// rule's message key from resolution. A message source registration under the
// rule's error code still wins, so end users keep their per-code override.
// The template is rendered against the formatter as usual, so {Name}
// placeholders keep working.
func WithMessageTemplate(template string) RuleOption {
	return func(r *Rule) {
		if template != "" {
			r.template = template
			r.messageKey = ""
		}
	}
}

// WithMessageFunc installs a full message-construction override. The provider
// receives a MessageContext and its return value is used verbatim as the
// failure message; resolution and rendering are skipped unless the provider
// calls DefaultMessage itself.
func WithMessageFunc(provider MessageProvider) RuleOption {
	return func(r *Rule) {
		if provider != nil {
			r.messageProvider = provider
		}
	}
}

// WithAsyncCheck installs an asynchronous validity check used by
// ValidateAsync instead of delegating to the synchronous predicate.
func WithAsyncCheck(check AsyncPredicate) RuleOption {
	return func(r *Rule) {
		if check != nil {
			r.checkAsync = check
		}
	}
}

// WithCondition gates the rule on a synchronous applicability condition.
func WithCondition(cond Condition) RuleOption {
	return func(r *Rule) {
		if cond != nil {
			r.condition = cond
		}
	}
}

// WithAsyncCondition gates the rule on an applicability condition that may
// suspend. Setting one makes ShouldValidateAsynchronously report true, since
// even the applicability decision requires the asynchronous path.
func WithAsyncCondition(cond AsyncCondition) RuleOption {
	return func(r *Rule) {
		if cond != nil {
			r.asyncCondition = cond
		}
	}
}

// WithState installs a provider for opaque caller-defined state attached to
// every failure this rule produces.
func WithState(provider StateProvider) RuleOption {
	return func(r *Rule) {
		if provider != nil {
			r.stateProvider = provider
		}
	}
}

// WithSeverity sets a static severity for failures of this rule.
func WithSeverity(severity Severity) RuleOption {
	return func(r *Rule) {
		r.severity = severity
	}
}

// WithSeverityFunc installs a provider computing the severity per evaluation;
// it takes precedence over WithSeverity.
func WithSeverityFunc(provider SeverityProvider) RuleOption {
	return func(r *Rule) {
		if provider != nil {
			r.severityProvider = provider
		}
	}
}
