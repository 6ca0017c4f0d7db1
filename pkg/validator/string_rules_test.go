package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestNotBlank(t *testing.T) {
	schema := validator.MustSchema("s", validator.Field("email", validator.NotBlank()))

	tests := []struct {
		name  string
		value validator.Value
		fails bool
	}{
		{"absent", validator.Absent(), true},
		{"empty", validator.Of(""), true},
		{"whitespace only", validator.Of(" \t\n"), true},
		{"non-empty", validator.Of("test@example.com"), false},
		{"content with surrounding whitespace", validator.Of("  John  "), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(validator.Values{"email": tt.value})
			if !tt.fails {
				assert.NoError(t, err)
				return
			}

			verr, ok := validator.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, "email", verr.Field)
			assert.Equal(t, "must not be blank", verr.Message)
			assert.Equal(t, "validation.not_blank", verr.TranslationKey)
			assert.Equal(t, map[string]any{"field": "email"}, verr.TranslationValues)
			assert.ErrorIs(t, err, validator.ErrBlank)
		})
	}
}

func TestLength(t *testing.T) {
	schema := validator.MustSchema("s", validator.Field("password", validator.Length(5, 8)))

	t.Run("passes at minimum", func(t *testing.T) {
		assert.NoError(t, schema.Validate(validator.Values{"password": validator.Of("12345")}))
	})

	t.Run("passes at maximum", func(t *testing.T) {
		assert.NoError(t, schema.Validate(validator.Values{"password": validator.Of("12345678")}))
	})

	t.Run("fails below minimum", func(t *testing.T) {
		err := schema.Validate(validator.Values{"password": validator.Of("1234")})

		verr, ok := validator.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, validator.ErrTooShort, verr.Kind)
		assert.Equal(t, map[string]any{"field": "password", "min": 5, "length": 4}, verr.TranslationValues)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		err := schema.Validate(validator.Values{"password": validator.Of("123456789")})

		verr, ok := validator.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, validator.ErrTooLong, verr.Kind)
		assert.Equal(t, map[string]any{"field": "password", "max": 8, "length": 9}, verr.TranslationValues)
	})

	t.Run("zero bounds accept only empty", func(t *testing.T) {
		s := validator.MustSchema("s", validator.Field("x", validator.Length(0, 0)))
		assert.NoError(t, s.Validate(validator.Values{"x": validator.Of("")}))
		assert.ErrorIs(t, s.Validate(validator.Values{"x": validator.Of("a")}), validator.ErrTooLong)
	})
}

func TestRules_EvaluatedInDeclaredOrder(t *testing.T) {
	// Length declared first: an empty value reports too short, not blank.
	schema := validator.MustSchema("s",
		validator.Field("code", validator.Length(2, 4), validator.NotBlank()),
	)

	err := schema.Validate(validator.Values{"code": validator.Of("")})
	assert.ErrorIs(t, err, validator.ErrTooShort)
	assert.NotErrorIs(t, err, validator.ErrBlank)
}
