package validator

import (
	"errors"
	"fmt"
	"slices"
)

// FieldRules is one row of a Schema: a field name and its rules in evaluation order.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Field declares the rules of a single field.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// Schema is the rule table of a subject type. It is immutable once built
// and safe for concurrent use. A nil *Schema has no fields and fails
// validation with ErrNilSubject.
type Schema struct {
	subject string
	fields  []FieldRules
	index   map[string]int
}

// NewSchema builds the rule table for a subject type.
// Fields are validated in the order given here.
func NewSchema(subject string, fields ...FieldRules) (*Schema, error) {
	if subject == "" {
		return nil, errors.Join(ErrInvalidSchema, errors.New("subject name is empty"))
	}

	s := &Schema{
		subject: subject,
		fields:  make([]FieldRules, 0, len(fields)),
		index:   make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("%s: empty field name", subject))
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("%s: duplicate field %q", subject, f.Name))
		}
		for _, r := range f.Rules {
			if err := r.check(); err != nil {
				return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("%s.%s: %w", subject, f.Name, err))
			}
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, FieldRules{Name: f.Name, Rules: slices.Clone(f.Rules)})
	}

	return s, nil
}

// MustSchema works like NewSchema but panics on error.
// Intended for package-level rule tables.
func MustSchema(subject string, fields ...FieldRules) *Schema {
	s, err := NewSchema(subject, fields...)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return s
}

// Subject returns the subject type name the schema was declared for.
func (s *Schema) Subject() string {
	if s == nil {
		return ""
	}
	return s.subject
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Fields returns a copy of the rule table in declaration order.
func (s *Schema) Fields() []FieldRules {
	if s == nil {
		return nil
	}
	out := make([]FieldRules, len(s.fields))
	for i, f := range s.fields {
		out[i] = FieldRules{Name: f.Name, Rules: slices.Clone(f.Rules)}
	}
	return out
}

// Rules returns the rules declared for field.
func (s *Schema) Rules(field string) ([]Rule, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[field]
	if !ok {
		return nil, false
	}
	return slices.Clone(s.fields[i].Rules), true
}
