package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/i18n"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMapAdapter(t *testing.T) {
	catalog, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog)

	data := i18n.Catalog{"en": {"hello": "Hello"}}
	catalog, err = (&i18n.MapAdapter{Data: data}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, catalog)
}

func TestFileAdapter(t *testing.T) {
	t.Run("detects parser from extension", func(t *testing.T) {
		path := writeFile(t, "messages.json", `{"en":{"hello":"Hello"}}`)

		catalog, err := i18n.NewFileAdapter(nil, path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", catalog["en"]["hello"])
	})

	t.Run("uses explicit parser", func(t *testing.T) {
		path := writeFile(t, "messages.txt", "en:\n  hello: Hello\n")

		catalog, err := i18n.NewFileAdapter(i18n.NewYAMLParser(), path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", catalog["en"]["hello"])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(nil, "messages.toml").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := i18n.NewFileAdapter(nil, filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid content", func(t *testing.T) {
		path := writeFile(t, "bad.json", `{"en":`)
		_, err := i18n.NewFileAdapter(nil, path).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"translations/en.yaml":    {Data: []byte("en:\n  hello: Hello\n  validation:\n    a: A\n")},
		"translations/de.yaml":    {Data: []byte("de:\n  hello: Hallo\n")},
		"translations/extra.yml":  {Data: []byte("en:\n  validation:\n    b: B\n")},
		"translations/notes.txt":  {Data: []byte("ignored")},
		"translations/sub/x.yaml": {Data: []byte("fr:\n  hello: Bonjour\n")},
		"empty/readme.md":         {Data: []byte("nothing")},
	}

	t.Run("merges supported files", func(t *testing.T) {
		catalog, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "translations").Load(context.Background())
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"en", "de"}, keys(catalog))
		validation := catalog["en"]["validation"].(map[string]any)
		assert.Equal(t, "A", validation["a"])
		assert.Equal(t, "B", validation["b"])
	})

	t.Run("no translation files", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "empty").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "missing").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("nil parser", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(nil, fsys, "translations").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNilParser)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "translations").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestMergeAdapter(t *testing.T) {
	base := &i18n.MapAdapter{Data: i18n.Catalog{
		"en": {"hello": "Hello", "validation": map[string]any{"a": "A", "b": "B"}},
	}}
	override := &i18n.MapAdapter{Data: i18n.Catalog{
		"en": {"validation": map[string]any{"b": "B2"}},
		"de": {"hello": "Hallo"},
	}}

	catalog, err := i18n.MergeAdapter{base, nil, override}.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Hello", catalog["en"]["hello"])
	validation := catalog["en"]["validation"].(map[string]any)
	assert.Equal(t, "A", validation["a"])
	assert.Equal(t, "B2", validation["b"])
	assert.Equal(t, "Hallo", catalog["de"]["hello"])
	assert.Equal(t, "B", base.Data["en"]["validation"].(map[string]any)["b"])

	_, err = i18n.MergeAdapter{base, i18n.NewFileAdapter(nil, "missing.yaml")}.Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
}

func keys(c i18n.Catalog) []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	return out
}
