package locale

import "context"

// languageContextKey is the context key for the detected request language.
type languageContextKey struct{}

// SetLanguage stores the language code in the context.
func SetLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// Language returns the language stored in the context, or DefaultLanguage
// when none is set.
func Language(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
