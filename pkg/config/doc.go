// Package config loads typed configuration structs from environment
// variables, wrapping github.com/joho/godotenv and
// github.com/caarlos0/env/v11 behind a small generic API.
//
// A default `.env` file in the working directory is loaded once per process
// (and silently skipped when absent); after that, any struct annotated with
// `env` tags can be populated:
//
//	type CatalogConfig struct {
//	    Dir         string `env:"VALIDKIT_LOCALE_DIR,required"`
//	    DefaultLang string `env:"VALIDKIT_DEFAULT_LANG" envDefault:"en"`
//	}
//
//	var cfg CatalogConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without.
package config
