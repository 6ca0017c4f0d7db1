package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// notBlank fails for absent, empty and whitespace-only values.
func notBlank(field string, v Value) (ValidationError, bool) {
	s, ok := v.Get()
	if ok && strings.TrimSpace(s) != "" {
		return ValidationError{}, true
	}
	return ValidationError{
		Field:          field,
		Kind:           ErrBlank,
		Message:        "must not be blank",
		TranslationKey: "validation.not_blank",
		TranslationValues: map[string]any{
			"field": field,
		},
	}, false
}

// length checks inclusive character bounds. Absent values pass: presence is NotBlank's job.
func length(field string, v Value, min, max int) (ValidationError, bool) {
	s, ok := v.Get()
	if !ok {
		return ValidationError{}, true
	}

	n := CharCount(s)
	switch {
	case n < min:
		return ValidationError{
			Field:          field,
			Kind:           ErrTooShort,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field":  field,
				"min":    min,
				"length": n,
			},
		}, false
	case n > max:
		return ValidationError{
			Field:          field,
			Kind:           ErrTooLong,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field":  field,
				"max":    max,
				"length": n,
			},
		}, false
	}
	return ValidationError{}, true
}

// CharCount returns the number of characters in s as Length counts them:
// Unicode code points of the NFC form.
func CharCount(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
