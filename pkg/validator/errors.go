package validator

import "errors"

// Violation kinds. A ValidationError unwraps to exactly one of these.
var (
	// ErrBlank is reported when a NotBlank field is absent, empty or whitespace only.
	ErrBlank = errors.New("blank value")

	// ErrTooShort is reported when a value has fewer characters than the Length minimum.
	ErrTooShort = errors.New("value too short")

	// ErrTooLong is reported when a value has more characters than the Length maximum.
	ErrTooLong = errors.New("value too long")
)

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidSchema is returned when a rule table cannot be built.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrNilSubject is returned when Validate receives a nil subject or a subject without schema.
	ErrNilSubject = errors.New("nil subject")
)
