// Package validate implements single-rule validation execution and failure
// reporting: given one value and its evaluation context, a Rule decides
// pass/fail and, on failure, materializes a structured, localizable Failure
// record.
//
// The package deliberately stops at the single-rule boundary. It does not
// decide which rules run, in what order, or how failures from many rules are
// aggregated; that is the job of an outer orchestrator. What it does
// guarantee is that the extension points of one rule invocation compose
// deterministically: synchronous and asynchronous evaluation, localized
// message resolution with fallback, custom message construction, placeholder
// interpolation, severity classification, and caller-attached state.
//
// # Building blocks
//
//   - Rule             – read-only evaluation unit, safe to share across goroutines
//   - Context          – per-evaluation bundle of value, names and formatter
//   - ParentContext    – run-scoped shared state (message source, collection index)
//   - MessageFormatter – named placeholder accumulator and template renderer
//   - Failure          – immutable failure record, the wire contract for reporters
//
// # Usage
//
//	rule := validate.NewRule("validation.min_length",
//		"{PropertyName} must be at least 3 characters",
//		func(ctx *validate.Context) bool {
//			s, _ := ctx.Value().(string)
//			return len(s) >= 3
//		},
//		validate.WithErrorCode("USERNAME_TOO_SHORT"),
//	)
//
//	parent := validate.NewParentContext()
//	failures := rule.Validate(validate.NewContext(parent, "ab", "username", ""))
//	if len(failures) > 0 {
//		// failures[0].Message == "username must be at least 3 characters"
//	}
//
// Message templates use {Name} placeholders. PropertyName and PropertyValue
// are populated automatically on failure; rules may stage additional values
// through the context's formatter before reporting invalid. When the parent
// context carries a collection index (set by an enclosing iteration), the
// CollectionIndex placeholder is populated too, unless the rule already staged
// one explicitly.
//
// Localized templates come from any StringSource: see pkg/locale for a
// catalog implementation backed by YAML/JSON files. Resolution is two-tier:
// the rule's error code wins over its message key, and the template passed at
// construction is the final fallback.
//
// # Async evaluation
//
// ValidateAsync mirrors Validate but threads a context.Context into the
// validity check for cancellation and I/O-bound rules (remote lookups).
// A rule that never overrode the async check behaves identically on both
// paths. Cancellation is reported as an error distinct from any verdict, so
// callers never mistake an aborted check for a passed or failed rule.
package validate
