// Package validator checks string fields of a subject against a statically
// declared rule table.
//
// A subject type declares its rules once, as a Schema: an ordered list of
// fields, each with an ordered list of Rule values. Two rules exist:
// NotBlank (the field must be present and not blank) and Length (inclusive
// character bounds for present values). Field values are explicit optionals
// (Value), so "never assigned" is distinct from "assigned the empty string".
//
// # Usage
//
//	var loginSchema = validator.MustSchema("login_request",
//	    validator.Field("username", validator.NotBlank(), validator.Length(4, 10)),
//	    validator.Field("password", validator.NotBlank(), validator.Length(8, 64)),
//	)
//
//	type LoginRequest struct {
//	    Username validator.Value
//	    Password validator.Value
//	}
//
//	func (r LoginRequest) Schema() *validator.Schema { return loginSchema }
//
//	func (r LoginRequest) FieldValue(name string) validator.Value {
//	    switch name {
//	    case "username":
//	        return r.Username
//	    case "password":
//	        return r.Password
//	    }
//	    return validator.Absent()
//	}
//
//	if err := validator.Validate(req); err != nil {
//	    // err is a ValidationError for the first failing field
//	}
//
// # Evaluation order
//
// Validate visits fields in declaration order and each field's rules in the
// order they were declared, and returns the first violation. Nothing after it
// is evaluated. ValidateAll keeps going and reports the first violation of
// every failing field as ValidationErrors.
//
// # Error Handling
//
// Every violation is a ValidationError that unwraps to ErrBlank, ErrTooShort
// or ErrTooLong:
//
//	if errors.Is(err, validator.ErrTooLong) { ... }
//
// ValidationError carries a TranslationKey and TranslationValues so callers
// can render localized messages. Schema construction errors wrap
// ErrInvalidSchema.
package validator
