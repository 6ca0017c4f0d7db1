package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Catalog holds translations keyed by language, then by (possibly nested) key.
type Catalog map[string]map[string]any

// Parser decodes a translation file into a Catalog.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Catalog, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension,
// or nil when the extension is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// toCatalog checks the decoded top level is language -> map.
func toCatalog(data map[string]any) (Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidStructure)
	}

	out := make(Catalog, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		out[lang] = m
	}
	return out, nil
}
