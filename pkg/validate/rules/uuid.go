package rules

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validkit/pkg/validate"
)

var errNonCanonicalUUID = errors.New("rules: non-canonical uuid form")

// UUID fails when a string is not a canonical 36-character UUID.
func UUID(opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.uuid",
		"{PropertyName} must be a valid UUID",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if !isString {
				return false
			}
			_, err := parseCanonicalUUID(s)
			return err == nil
		}, opts...)
}

// UUIDVersion fails when a string is not a canonical UUID of the given
// version. Stages the Version placeholder on failure.
func UUIDVersion(version int, opts ...validate.RuleOption) *validate.Rule {
	return validate.NewRule("validation.uuid_version",
		"{PropertyName} must be a valid UUIDv{Version}",
		func(ctx *validate.Context) bool {
			s, present, isString := stringValue(ctx)
			if !present {
				return true
			}
			if isString {
				if id, err := parseCanonicalUUID(s); err == nil && int(id.Version()) == version {
					return true
				}
			}
			ctx.Formatter().AppendArgument("Version", version)
			return false
		}, opts...)
}

// parseCanonicalUUID rejects non-canonical forms cheaply before handing the
// string to the full parser, which also accepts braced and hex-only inputs.
func parseCanonicalUUID(value string) (uuid.UUID, error) {
	if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return uuid.Nil, errNonCanonicalUUID
	}
	return uuid.Parse(value)
}
