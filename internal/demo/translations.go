package demo

import (
	"embed"

	"github.com/dmitrymomot/fieldrules/pkg/i18n"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// Translations returns an adapter over the built-in message catalog.
func Translations() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
}
