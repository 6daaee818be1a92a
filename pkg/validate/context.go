package validate

// StringSource resolves message template strings by key. An empty string
// means the key is not registered. Implementations must be safe for
// concurrent reads; pkg/locale provides a file-backed implementation.
type StringSource interface {
	GetString(key string) string
}

// ParentContext carries state shared across one whole validation run: the
// active message source and arbitrary string-keyed data set by the outer
// orchestrator. It also holds the collection index passed down from an
// enclosing iteration into nested evaluations.
//
// Writes belong to the orchestrator and must happen before evaluations that
// read them; the engine itself only reads, so sibling item evaluations may
// run in parallel against the same parent.
type ParentContext struct {
	data            map[string]any
	messages        StringSource
	collectionIndex any
	hasIndex        bool
}

// ParentOption configures a ParentContext at construction.
type ParentOption func(*ParentContext)

// WithMessages sets the message source used to resolve templates for every
// rule evaluated within this run.
func WithMessages(src StringSource) ParentOption {
	return func(p *ParentContext) {
		if src != nil {
			p.messages = src
		}
	}
}

// WithData seeds the shared run-scoped data map.
func WithData(key string, value any) ParentOption {
	return func(p *ParentContext) {
		p.data[key] = value
	}
}

// NewParentContext creates the shared root context for a validation run.
func NewParentContext(opts ...ParentOption) *ParentContext {
	p := &ParentContext{data: make(map[string]any)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Messages returns the message source for this run, or nil when none was
// configured.
func (p *ParentContext) Messages() StringSource {
	return p.messages
}

// Set stores a run-scoped value. Intended for the outer orchestrator; must
// not race with concurrently running evaluations.
func (p *ParentContext) Set(key string, value any) {
	p.data[key] = value
}

// Get returns a run-scoped value and whether it exists.
func (p *ParentContext) Get(key string) (any, bool) {
	v, ok := p.data[key]
	return v, ok
}

// SetCollectionIndex records the index of the collection item currently being
// validated. The enclosing iteration sets it before each nested evaluation;
// the value is opaque to the engine and is substituted verbatim into the
// CollectionIndex placeholder.
func (p *ParentContext) SetCollectionIndex(index any) {
	p.collectionIndex = index
	p.hasIndex = true
}

// ClearCollectionIndex removes the collection index, typically after the
// enclosing iteration finishes.
func (p *ParentContext) ClearCollectionIndex() {
	p.collectionIndex = nil
	p.hasIndex = false
}

// CollectionIndex returns the current collection index and whether one is
// set.
func (p *ParentContext) CollectionIndex() (any, bool) {
	return p.collectionIndex, p.hasIndex
}

// Context is the per-evaluation snapshot handed to a rule: the value under
// test, its property and display names, the parent run context, and a
// message formatter scoped to this one evaluation.
//
// A Context is owned by a single rule invocation and must not be reused or
// shared between concurrently executing evaluations.
type Context struct {
	parent       *ParentContext
	value        any
	propertyName string
	displayName  string
	formatter    *MessageFormatter
}

// NewContext creates an evaluation context with a fresh formatter. An empty
// displayName defaults to propertyName.
func NewContext(parent *ParentContext, value any, propertyName, displayName string) *Context {
	if parent == nil {
		parent = NewParentContext()
	}
	if displayName == "" {
		displayName = propertyName
	}
	return &Context{
		parent:       parent,
		value:        value,
		propertyName: propertyName,
		displayName:  displayName,
		formatter:    NewMessageFormatter(),
	}
}

// Parent returns the shared run context.
func (c *Context) Parent() *ParentContext {
	return c.parent
}

// Value returns the value under validation. May be nil; rules other than
// required-style ones are expected to tolerate absent values.
func (c *Context) Value() any {
	return c.value
}

// PropertyName returns the structural name of the property under validation.
func (c *Context) PropertyName() string {
	return c.propertyName
}

// DisplayName returns the human-facing name used in messages.
func (c *Context) DisplayName() string {
	return c.displayName
}

// Formatter returns the formatter owned by this evaluation. Rules may stage
// placeholder values on it before reporting invalid.
func (c *Context) Formatter() *MessageFormatter {
	return c.formatter
}
