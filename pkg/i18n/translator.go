package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

// Translator resolves translation keys for a language.
// It is safe for concurrent use.
type Translator struct {
	translations   Catalog
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a Translator and loads its catalog from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reloads the catalog from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	for lang, entries := range translations {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidStructure)
		}
		if entries == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidStructure, lang)
		}
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the languages in the catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used by Match when nothing fits.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match resolves a requested locale ("de-AT", "en_US") to a catalog language.
func (t *Translator) Match(requested string) string {
	return MatchLanguage(strings.ReplaceAll(requested, "_", "-"), t.SupportedLanguages(), t.defaultLang)
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.min_length" reads m["validation"]["min_length"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = getTranslation(langMap, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key, value argument pairs.
// Unknown placeholders are kept as is; a trailing odd argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// lookup returns the template for lang/key when it exists and is a string.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", logger.Lang(lang), slog.String("key", key))
		}
		return "", false
	}

	val, ok := getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Lang(lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}

	if t.missingLogMode {
		t.logger.Warn("translation is not a string", logger.Lang(lang), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", val)))
	}
	return "", false
}

// T translates a key for the given language. Arguments are key, value pairs
// substituted into "%{key}" placeholders:
//
//	// With "validation.min_length": "%{field} needs at least %{min} characters"
//	msg := translator.T("en", "validation.min_length", "field", "username", "min", "4")
//
// A missing translation yields the key itself when fallback to key is
// enabled (the default) and an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates a key with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}
