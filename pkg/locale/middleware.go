package locale

import (
	"net/http"
	"strings"
)

// Extractor pulls a language code out of an HTTP request. Returning ""
// leaves the decision to the middleware's fallback.
type Extractor func(r *http.Request) string

// ExtractorOption configures DefaultExtractor.
type ExtractorOption func(*extractorConfig)

type extractorConfig struct {
	cookieName string
	queryParam string
}

// WithCookieName sets the cookie checked for a language preference.
// Default: "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithQueryParam sets the query parameter checked for a language
// preference. Default: "lang".
func WithQueryParam(name string) ExtractorOption {
	return func(c *extractorConfig) {
		if name != "" {
			c.queryParam = name
		}
	}
}

// DefaultExtractor checks, in order: the language cookie, the query
// parameter, and the Accept-Language header negotiated against the supported
// languages. Cookie and query values are accepted only when supported
// (region variants collapse to their base language via Match).
func DefaultExtractor(supported []string, opts ...ExtractorOption) Extractor {
	cfg := extractorConfig{cookieName: "lang", queryParam: "lang"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(cfg.cookieName); err == nil {
			if lang := matchExplicit(cookie.Value, supported); lang != "" {
				return lang
			}
		}
		if lang := matchExplicit(r.URL.Query().Get(cfg.queryParam), supported); lang != "" {
			return lang
		}
		return Match(r.Header.Get("Accept-Language"), supported, "")
	}
}

// matchExplicit validates a user-chosen language code against the supported
// set by parsing it as a one-entry Accept-Language header.
func matchExplicit(value string, supported []string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return Match(value, supported, "")
}

// Middleware detects the request language and stores it in the request
// context, where handlers retrieve it with Language. When the extractor
// yields nothing the fallback language is stored instead.
func Middleware(extract Extractor, fallback string) func(http.Handler) http.Handler {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extract != nil {
				lang = extract(r)
			}
			if lang == "" {
				lang = fallback
			}
			next.ServeHTTP(w, r.WithContext(SetLanguage(r.Context(), lang)))
		})
	}
}
