package locale

import "errors"

// Sentinel errors joined with the underlying cause so callers can classify
// failures with errors.Is without losing detail.
var (
	// Catalog construction
	ErrNoAdapter      = errors.New("catalog adapter is nil")
	ErrEmptyLanguage  = errors.New("empty language code in loaded templates")
	ErrNilLanguageMap = errors.New("nil template map for language")
	ErrLoadCancelled  = errors.New("loading templates cancelled")

	// Parsing
	ErrParseJSON        = errors.New("failed to parse JSON templates")
	ErrParseYAML        = errors.New("failed to parse YAML templates")
	ErrInvalidStructure = errors.New("template file must map language codes to nested maps")

	// File and filesystem loading
	ErrReadFile      = errors.New("failed to read template file")
	ErrEmptyFile     = errors.New("template file is empty")
	ErrReadDir       = errors.New("failed to read template directory")
	ErrNoSourceFiles = errors.New("no readable template files found")
)
