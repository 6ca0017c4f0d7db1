package validator

import "fmt"

// RuleKind identifies a Rule variant.
type RuleKind uint8

const (
	KindNotBlank RuleKind = iota + 1
	KindLength
)

// String returns the snake_case name of the kind.
func (k RuleKind) String() string {
	switch k {
	case KindNotBlank:
		return "not_blank"
	case KindLength:
		return "length"
	default:
		return fmt.Sprintf("rule_kind(%d)", uint8(k))
	}
}

// Rule is a constraint attached to a field: either NotBlank or Length.
// Rules are plain values; build them with NotBlank and Length.
type Rule struct {
	kind RuleKind
	min  int
	max  int
}

// NotBlank requires the field to be present and non-blank.
func NotBlank() Rule {
	return Rule{kind: KindNotBlank}
}

// Length bounds the number of characters of a present value, inclusive.
// Bounds are checked when the rule is registered in a Schema.
func Length(min, max int) Rule {
	return Rule{kind: KindLength, min: min, max: max}
}

// Kind returns the rule variant.
func (r Rule) Kind() RuleKind { return r.kind }

// Min returns the lower bound of a Length rule, zero otherwise.
func (r Rule) Min() int { return r.min }

// Max returns the upper bound of a Length rule, zero otherwise.
func (r Rule) Max() int { return r.max }

func (r Rule) String() string {
	if r.kind == KindLength {
		return fmt.Sprintf("length(%d,%d)", r.min, r.max)
	}
	return r.kind.String()
}

func (r Rule) check() error {
	switch r.kind {
	case KindNotBlank:
		return nil
	case KindLength:
		if r.min < 0 {
			return fmt.Errorf("length min %d is negative", r.min)
		}
		if r.min > r.max {
			return fmt.Errorf("length min %d exceeds max %d", r.min, r.max)
		}
		return nil
	default:
		return fmt.Errorf("unknown rule kind %d", uint8(r.kind))
	}
}

// evaluate applies the rule to v. It reports the violation and false on failure.
func (r Rule) evaluate(field string, v Value) (ValidationError, bool) {
	switch r.kind {
	case KindNotBlank:
		return notBlank(field, v)
	case KindLength:
		return length(field, v, r.min, r.max)
	}
	return ValidationError{}, true
}
