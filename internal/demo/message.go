package demo

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Translator is the subset of *i18n.Translator the narrator needs.
type Translator interface {
	T(lang, key string, args ...string) string
	Td(lang, key, defaultValue string, args ...string) string
}

// Message renders a violation in lang. The field name goes through the
// "fields.<name>" key; the English message is used when the catalog lacks
// the violation's key.
func Message(tr Translator, lang string, verr validator.ValidationError) string {
	keys := make([]string, 0, len(verr.TranslationValues))
	for k := range verr.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		v := fmt.Sprint(verr.TranslationValues[k])
		if k == "field" {
			v = tr.Td(lang, "fields."+v, v)
		}
		args = append(args, k, v)
	}

	return tr.Td(lang, verr.TranslationKey, verr.Error(), args...)
}

func violationAttr(verr validator.ValidationError) slog.Attr {
	return logger.Group("violation",
		logger.Field(verr.Field),
		slog.String("kind", kindName(verr.Kind)),
		slog.String("key", verr.TranslationKey),
	)
}

func kindName(err error) string {
	switch err {
	case nil:
		return "valid"
	case validator.ErrBlank:
		return "blank"
	case validator.ErrTooShort:
		return "too_short"
	case validator.ErrTooLong:
		return "too_long"
	default:
		return err.Error()
	}
}
