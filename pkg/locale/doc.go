// Package locale stores localized message templates and resolves them by
// language and dot-separated key. It is the message catalog behind
// pkg/validate: a per-language view obtained with Catalog.Messages satisfies
// validate.StringSource, so validation failures render templates in the
// caller's language.
//
// Templates are loaded through an Adapter (an in-memory map, a single
// file, a directory, or any io/fs filesystem including embed.FS) and parsed
// from YAML or JSON. Files contribute languages at the top level and nested
// maps below:
//
//	en:
//	  validation:
//	    required: "{PropertyName} is required"
//	    min_length: "{PropertyName} must be at least {MinLength} characters"
//	es:
//	  validation:
//	    required: "{PropertyName} es obligatorio"
//
// # Usage
//
//	catalog, err := locale.New(ctx, locale.NewDirAdapter("./locales"),
//		locale.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	parent := validate.NewParentContext(
//		validate.WithMessages(catalog.Messages("es")),
//	)
//
// Missing keys resolve to an empty string (the StringSource contract); a
// non-default language transparently falls back to the default language
// before giving up. Lookups are safe for concurrent use; Reload swaps the
// whole store atomically.
//
// For HTTP services, Middleware detects the request language (cookie, query
// parameter, Accept-Language header via golang.org/x/text matching) and
// stores it in the request context for handlers to pick up with Language.
package locale
