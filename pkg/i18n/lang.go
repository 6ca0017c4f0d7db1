package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// MatchLanguage picks the supported language closest to requested
// (a BCP 47 tag such as "de-AT"). It returns fallback when requested cannot
// be parsed or nothing matches with at least high confidence.
func MatchLanguage(requested string, supported []string, fallback string) string {
	if requested == "" || len(supported) == 0 {
		return fallback
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		t, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf < language.High {
		return fallback
	}
	return names[idx]
}
