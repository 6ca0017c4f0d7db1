package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("parses nested translations", func(t *testing.T) {
		content := []byte(`
en:
  hello: Hello
  validation:
    not_blank: "%{field} must not be blank"
de:
  hello: Hallo
`)
		catalog, err := p.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Len(t, catalog, 2)
		assert.Equal(t, "Hello", catalog["en"]["hello"])

		nested, ok := catalog["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "%{field} must not be blank", nested["not_blank"])
	})

	t.Run("rejects non-map language", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: hello"))
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(""))
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("en: {a: b}"))
		assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yaml"))
		assert.True(t, p.SupportsFileExtension(".YML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	p := i18n.NewJSONParser()

	t.Run("parses translations", func(t *testing.T) {
		catalog, err := p.Parse(context.Background(), []byte(`{"en":{"hello":"Hello","nested":{"key":"v"}}}`))
		require.NoError(t, err)
		assert.Equal(t, "Hello", catalog["en"]["hello"])
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(`{"en":`))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("rejects non-map language", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(`{"en":"hello"}`))
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension(".json"))
		assert.False(t, p.SupportsFileExtension("yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("EN.YML"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("noext"))
}
