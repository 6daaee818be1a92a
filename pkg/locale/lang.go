package locale

import (
	"golang.org/x/text/language"
)

// Match negotiates the best supported language for an Accept-Language
// header. Matching is delegated to golang.org/x/text, so region and script
// variants resolve to their base language (en-US matches en) and quality
// values are respected. Returns fallback when the header is empty, no
// supported language parses, or nothing matches.
func Match(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return codes[index]
}
