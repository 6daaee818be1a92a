// Package rules provides ready-made rule constructors for common checks:
// string presence and length, numeric bounds, pattern and email formats, and
// UUID identifiers.
//
// Each constructor returns a configured *validate.Rule carrying a stable
// message key (for catalog-based localization) and an English default
// template, so rules work out of the box and remain overridable per key or
// per error code. Rule-specific placeholder values (MinLength, From, To, …)
// are staged on the evaluation's formatter just before the rule reports
// invalid, making them available to any template.
//
// All constructors accept validate.RuleOption values, so error codes,
// severities, conditions and custom state compose with the built-in checks:
//
//	rule := rules.MinLength(8,
//		validate.WithErrorCode("PASSWORD_TOO_SHORT"),
//		validate.WithSeverity(validate.SeverityWarning),
//	)
//
// Absent values (nil) pass every rule except Required; pair Required with
// other rules when a property is mandatory. A value of the wrong dynamic type
// fails the rule.
package rules
