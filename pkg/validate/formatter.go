package validate

import (
	"fmt"
	"regexp"
	"slices"
)

// Conventional placeholder names populated by the engine on failure.
const (
	// PropertyNameKey holds the display name of the property under validation.
	PropertyNameKey = "PropertyName"
	// PropertyValueKey holds the offending value.
	PropertyValueKey = "PropertyValue"
	// CollectionIndexKey holds the index of the current item when validation
	// was triggered from a collection iteration.
	CollectionIndexKey = "CollectionIndex"
)

// placeholderRegex matches {Name}-style template placeholders.
var placeholderRegex = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// MessageFormatter accumulates named placeholder values for a single failure
// and renders message templates against them.
//
// A formatter is created fresh for every Context and is owned by exactly one
// evaluation; it must not be shared across concurrently executing rules.
type MessageFormatter struct {
	values map[string]any
	names  []string // insertion order
}

// NewMessageFormatter creates an empty formatter.
func NewMessageFormatter() *MessageFormatter {
	return &MessageFormatter{values: make(map[string]any)}
}

// AppendArgument registers a placeholder value under the given name.
// The last write for a name wins; first insertion fixes its position in
// PlaceholderNames. Returns the formatter for chaining.
func (f *MessageFormatter) AppendArgument(name string, value any) *MessageFormatter {
	if _, exists := f.values[name]; !exists {
		f.names = append(f.names, name)
	}
	f.values[name] = value
	return f
}

// AppendPropertyName registers the conventional PropertyName placeholder.
func (f *MessageFormatter) AppendPropertyName(name string) *MessageFormatter {
	return f.AppendArgument(PropertyNameKey, name)
}

// AppendPropertyValue registers the conventional PropertyValue placeholder.
func (f *MessageFormatter) AppendPropertyValue(value any) *MessageFormatter {
	return f.AppendArgument(PropertyValueKey, value)
}

// Placeholder returns the value registered under name and whether it exists.
func (f *MessageFormatter) Placeholder(name string) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Placeholders returns a snapshot copy of the registered placeholder values.
// Mutating the returned map does not affect the formatter.
func (f *MessageFormatter) Placeholders() map[string]any {
	if len(f.values) == 0 {
		return nil
	}
	snapshot := make(map[string]any, len(f.values))
	for k, v := range f.values {
		snapshot[k] = v
	}
	return snapshot
}

// PlaceholderNames returns the registered placeholder names in insertion
// order.
func (f *MessageFormatter) PlaceholderNames() []string {
	return slices.Clone(f.names)
}

// Len reports how many placeholders are registered.
func (f *MessageFormatter) Len() int {
	return len(f.values)
}

// Render substitutes every registered {Name} placeholder in the template.
// Placeholders with no registered value are left as literal text; an
// unresolved placeholder is a template authoring concern, not a runtime
// fault. Rendering does not mutate the formatter, so repeated calls with the
// same template yield identical output.
func (f *MessageFormatter) Render(template string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := f.values[name]; ok {
			return formatValue(v)
		}
		return match
	})
}

// formatValue converts a placeholder value to its string form.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
