// Package login defines the login request subject and its rule table.
package login

import "github.com/dmitrymomot/fieldrules/pkg/validator"

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

var schema = validator.MustSchema("login_request",
	validator.Field(FieldUsername, validator.NotBlank(), validator.Length(4, 10)),
	validator.Field(FieldPassword, validator.NotBlank(), validator.Length(8, 64)),
)

// Request is a login attempt. Fields left unset are absent.
type Request struct {
	Username validator.Value
	Password validator.Value
}

// New builds a Request; nil pointers become absent fields.
func New(username, password *string) Request {
	return Request{
		Username: validator.FromPtr(username),
		Password: validator.FromPtr(password),
	}
}

// Schema returns the shared login rule table.
func Schema() *validator.Schema {
	return schema
}

func (r Request) Schema() *validator.Schema {
	return schema
}

func (r Request) FieldValue(name string) validator.Value {
	switch name {
	case FieldUsername:
		return r.Username
	case FieldPassword:
		return r.Password
	}
	return validator.Absent()
}

// Validate reports the first violation of r.
func (r Request) Validate() error {
	return validator.Validate(r)
}
