package locale

import "log/slog"

// Option configures a Catalog at construction.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used for fallback resolution and for
// Messages views requested with an empty language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger provides the logger used for load reporting and, when enabled,
// missing-key warnings. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingKeyLogging enables warnings for lookups that resolve to
// nothing. Off by default to avoid log noise on hot validation paths.
func WithMissingKeyLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}
