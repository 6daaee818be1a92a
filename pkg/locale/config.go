package locale

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/config"
)

// Config describes environment-driven catalog setup.
type Config struct {
	// Dir is the directory holding template files.
	Dir string `env:"VALIDKIT_LOCALE_DIR,required"`
	// DefaultLanguage is the fallback resolution language.
	DefaultLanguage string `env:"VALIDKIT_DEFAULT_LANG" envDefault:"en"`
	// LogMissing enables missing-key warnings.
	LogMissing bool `env:"VALIDKIT_LOCALE_LOG_MISSING" envDefault:"false"`
}

// NewFromEnv builds a directory-backed Catalog from environment variables.
// Extra options are applied after the environment-derived ones and win on
// conflict.
func NewFromEnv(ctx context.Context, opts ...Option) (*Catalog, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	options := []Option{
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithMissingKeyLogging(cfg.LogMissing),
	}
	options = append(options, opts...)

	return New(ctx, NewDirAdapter(cfg.Dir), options...)
}
