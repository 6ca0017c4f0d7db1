package demo

import (
	"strings"

	"github.com/dmitrymomot/fieldrules/internal/login"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Scenario is one canned login attempt and the violation kind it should
// produce (nil when it should pass).
type Scenario struct {
	Name    string
	Request login.Request
	Want    error
}

// Scenarios returns the built-in scenarios in narration order.
func Scenarios() []Scenario {
	const password = "correct-horse"
	return []Scenario{
		{
			Name:    "valid credentials",
			Request: login.Request{Username: validator.Of("johndoe"), Password: validator.Of(password)},
		},
		{
			Name:    "missing username",
			Request: login.Request{Password: validator.Of(password)},
			Want:    validator.ErrBlank,
		},
		{
			Name:    "blank username",
			Request: login.Request{Username: validator.Of("   "), Password: validator.Of(password)},
			Want:    validator.ErrBlank,
		},
		{
			Name:    "short username",
			Request: login.Request{Username: validator.Of("joe"), Password: validator.Of(password)},
			Want:    validator.ErrTooShort,
		},
		{
			Name:    "long username",
			Request: login.Request{Username: validator.Of(strings.Repeat("x", 20)), Password: validator.Of(password)},
			Want:    validator.ErrTooLong,
		},
		{
			Name:    "short password",
			Request: login.Request{Username: validator.Of("johndoe"), Password: validator.Of("1234")},
			Want:    validator.ErrTooShort,
		},
	}
}
