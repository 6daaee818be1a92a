package rules

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/validate"
)

// Matches fails when a string does not match the given pre-compiled pattern.
// Stages the Pattern placeholder on failure.
func Matches(pattern *regexp.Regexp, opts ...validate.RuleOption) *validate.Rule {
	if pattern == nil {
		panic("rules: Matches requires a pattern")
	}
	return validate.NewRule("validation.pattern",
		"{PropertyName} has an invalid format",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if isString && pattern.MatchString(s) {
				return true
			}
			ctx.Formatter().AppendArgument("Pattern", pattern.String())
			return false
		}, opts...)
}

// Email fails when a string is not a plausible email address. Parsing goes
// through net/mail first, then the domain is checked for the shape expected
// in typical web use (at least one interior dot).
func Email(opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.email",
		"{PropertyName} must be a valid email address",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if !isString {
				return false
			}
			return isEmail(s)
		}, opts...)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts display names and local-only addresses that
	// make no sense for form input.
	if addr.Address != value {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
