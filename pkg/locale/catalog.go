package locale

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Catalog holds localized message templates keyed by language and
// dot-separated key. All lookups are safe for concurrent use; Reload swaps
// the stored templates under a write lock.
type Catalog struct {
	mu          sync.RWMutex
	templates   map[string]map[string]any
	defaultLang string
	logMissing  bool
	logger      *slog.Logger
	adapter     Adapter
}

// New creates a Catalog and loads templates from the adapter.
func New(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNoAdapter
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:     adapter,
	}
	for _, opt := range opts {
		opt(c)
	}

	templates, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTemplates(templates); err != nil {
		return nil, err
	}

	c.templates = templates
	c.logger.InfoContext(ctx, "message templates loaded", "languages", c.languages())
	return c, nil
}

// validateTemplates rejects structurally broken template maps early so every
// later lookup can assume a sane shape.
func validateTemplates(templates map[string]map[string]any) error {
	for lang, entries := range templates {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if entries == nil {
			return fmt.Errorf("%w: %s", ErrNilLanguageMap, lang)
		}
	}
	return nil
}

// Reload re-runs the adapter and atomically replaces the stored templates.
// On error the previous templates stay in place.
func (c *Catalog) Reload(ctx context.Context) error {
	templates, err := c.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTemplates(templates); err != nil {
		return err
	}

	c.mu.Lock()
	c.templates = templates
	c.mu.Unlock()
	c.logger.InfoContext(ctx, "message templates reloaded", "languages", c.Languages())
	return nil
}

// DefaultLang returns the configured default language.
func (c *Catalog) DefaultLang() string {
	return c.defaultLang
}

// Languages returns the sorted language codes with templates available.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages()
}

func (c *Catalog) languages() []string {
	langs := make([]string, 0, len(c.templates))
	for lang := range c.templates {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// GetString returns the template registered for the language under the
// dot-separated key, or "" when the key is missing or does not resolve to a
// string. No fallback is applied here; see Messages for the per-language
// view with default-language fallback.
func (c *Catalog) GetString(lang, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, ok := c.templates[lang]
	if !ok {
		if c.logMissing {
			c.logger.Warn("language has no templates", "lang", lang, "key", key)
		}
		return ""
	}

	value, ok := lookup(entries, key)
	if !ok {
		if c.logMissing {
			c.logger.Warn("template not found", "lang", lang, "key", key)
		}
		return ""
	}

	s, ok := value.(string)
	if !ok {
		if c.logMissing {
			c.logger.Warn("template is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", value))
		}
		return ""
	}
	return s
}

// Has reports whether a string template exists for the language and key.
func (c *Catalog) Has(lang, key string) bool {
	return c.GetString(lang, key) != ""
}

// Messages returns a per-language view of the catalog. The view satisfies
// the validate.StringSource contract: missing keys resolve through the
// default language before yielding "".
func (c *Catalog) Messages(lang string) *Messages {
	if lang == "" {
		lang = c.defaultLang
	}
	return &Messages{catalog: c, lang: lang}
}

// lookup traverses nested maps using dot-separated keys, so
// "validation.min_length" walks entries["validation"]["min_length"].
func lookup(entries map[string]any, key string) (any, bool) {
	current := entries
	parts := strings.Split(key, ".")

	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := current[part]
			return v, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// Messages is a language-scoped view of a Catalog.
type Messages struct {
	catalog *Catalog
	lang    string
}

// Lang returns the language this view resolves against.
func (m *Messages) Lang() string {
	return m.lang
}

// GetString resolves a key in the view's language, falling back to the
// catalog's default language. Returns "" when neither has the key.
func (m *Messages) GetString(key string) string {
	if s := m.catalog.GetString(m.lang, key); s != "" {
		return s
	}
	if m.lang != m.catalog.defaultLang {
		return m.catalog.GetString(m.catalog.defaultLang, key)
	}
	return ""
}

// join wraps an underlying error with a sentinel, tolerating a nil cause.
func join(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, cause)
}
