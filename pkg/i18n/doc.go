// Package i18n renders translated messages from YAML or JSON catalogs.
//
// A Translator loads a Catalog (language -> nested key -> template) through a
// TranslationAdapter. Adapters exist for in-memory maps (MapAdapter), single
// files (FileAdapter), directories of an fs.FS such as embed.FS (FSAdapter)
// and ordered combinations of those (MergeAdapter, later sources override
// earlier ones key by key).
//
// Templates use named placeholders:
//
//	validation:
//	  min_length: "%{field} must be at least %{min} characters long"
//
//	msg := tr.T("en", "validation.min_length", "field", "username", "min", "4")
//
// Keys are dot separated paths into the nested catalog. A missing key falls
// back to the key itself unless WithFallbackToKey(false) is set; Td takes an
// explicit fallback template instead.
//
// Match and MatchLanguage resolve a requested locale such as "de-AT" to the
// closest catalog language using golang.org/x/text/language.
//
// # Usage
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations"),
//		i18n.WithDefaultLanguage("en"),
//	)
//
// # Error Handling
//
// Loading errors join a package sentinel (ErrFailedToReadFile,
// ErrFailedToParseFile, ErrInvalidStructure, ...) with the underlying cause,
// so errors.Is works against both.
package i18n
