package locale

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes template file content into the language → templates shape
// the Catalog stores.
type Parser interface {
	// Parse decodes content; the outer map is keyed by language code.
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// Supports reports whether the parser handles files with the given
	// extension (leading dot optional).
	Supports(ext string) bool
}

// ParserForFile picks a parser by file extension, or nil for unsupported
// files.
func ParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return JSONParser{}
	case "yaml", "yml":
		return YAMLParser{}
	default:
		return nil
	}
}

// YAMLParser decodes YAML template files.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, join(ErrLoadCancelled, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, join(ErrParseYAML, err)
	}
	return normalize(raw)
}

// Supports implements Parser.
func (YAMLParser) Supports(ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	return ext == "yaml" || ext == "yml"
}

// JSONParser decodes JSON template files.
type JSONParser struct{}

// Parse implements Parser.
func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, join(ErrLoadCancelled, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, join(ErrParseJSON, err)
	}
	return normalize(raw)
}

// Supports implements Parser.
func (JSONParser) Supports(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// normalize enforces the language → nested map shape shared by both parsers.
func normalize(raw map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(raw))
	for lang, value := range raw {
		entries, ok := value.(map[string]any)
		if !ok {
			return nil, join(ErrInvalidStructure, nil)
		}
		result[lang] = entries
	}
	return result, nil
}
