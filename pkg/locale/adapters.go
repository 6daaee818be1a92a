package locale

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Adapter loads message templates from some source. Implementations should
// honor ctx cancellation for sources that touch I/O.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves templates from an in-memory map. Useful for tests and
// for programs that assemble templates at startup.
type MapAdapter struct {
	Templates map[string]map[string]any
}

// Load implements Adapter.
func (a MapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	if a.Templates == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Templates, nil
}

// FileAdapter loads templates from a single file, picking the parser by
// extension.
type FileAdapter struct {
	path string
}

// NewFileAdapter creates an adapter for one template file.
func NewFileAdapter(path string) FileAdapter {
	return FileAdapter{path: path}
}

// Load implements Adapter.
func (a FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, join(ErrLoadCancelled, err)
	}

	parser := ParserForFile(a.path)
	if parser == nil {
		return nil, fmt.Errorf("%w: unsupported file %q", ErrNoSourceFiles, a.path)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, join(ErrReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, a.path)
	}
	return parser.Parse(ctx, content)
}

// DirAdapter loads and merges every supported file in a directory. Later
// files win on key collisions within a language; file order follows the
// directory listing (lexical for os filesystems).
type DirAdapter struct {
	path string
}

// NewDirAdapter creates an adapter for a directory of template files.
func NewDirAdapter(path string) DirAdapter {
	return DirAdapter{path: path}
}

// Load implements Adapter.
func (a DirAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, join(ErrReadDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrReadDir, a.path)
	}
	return loadFS(ctx, os.DirFS(a.path), ".")
}

// FSAdapter loads and merges every supported file under dir in any io/fs
// filesystem, embed.FS included:
//
//	//go:embed locales
//	var locales embed.FS
//
//	catalog, err := locale.New(ctx, locale.NewFSAdapter(locales, "locales"))
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter for a directory inside an io/fs
// filesystem.
func NewFSAdapter(fsys fs.FS, dir string) FSAdapter {
	if dir == "" {
		dir = "."
	}
	return FSAdapter{fsys: fsys, dir: dir}
}

// Load implements Adapter.
func (a FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrReadDir)
	}
	return loadFS(ctx, a.fsys, a.dir)
}

// loadFS merges all parseable files directly under dir. Unsupported files
// are skipped silently; a file that fails to read or parse fails the whole
// load, since serving a partial catalog would silently lose translations.
func loadFS(ctx context.Context, fsys fs.FS, dir string) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, join(ErrReadDir, err)
	}

	merged := make(map[string]map[string]any)
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, join(ErrLoadCancelled, err)
		}

		name := entry.Name()
		if dir != "." {
			name = path.Join(dir, entry.Name())
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, join(ErrReadFile, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
		}

		parsed, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, templates := range parsed {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any, len(templates))
			}
			maps.Copy(merged[lang], templates)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoSourceFiles, dir)
	}
	return merged, nil
}
