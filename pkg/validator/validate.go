package validator

// Validate checks the subject against its schema and returns the first
// violation as a ValidationError. Fields are visited in declaration order
// and each field's rules in their declared order; evaluation stops at the
// first failure.
func Validate(subject Subject) error {
	if subject == nil {
		return ErrNilSubject
	}
	schema := subject.Schema()
	if schema == nil {
		return ErrNilSubject
	}
	return schema.Validate(subject)
}

// ValidateAll checks every field and returns all violations as
// ValidationErrors, at most one per field. Use Validate for fail-fast checks.
func ValidateAll(subject Subject) error {
	if subject == nil {
		return ErrNilSubject
	}
	schema := subject.Schema()
	if schema == nil {
		return ErrNilSubject
	}
	return schema.ValidateAll(subject)
}

// Validate checks values against the schema, halting on the first violation.
func (s *Schema) Validate(values FieldValuer) error {
	if s == nil || values == nil {
		return ErrNilSubject
	}
	for _, f := range s.fields {
		if verr, ok := checkField(f, values.FieldValue(f.Name)); !ok {
			return verr
		}
	}
	return nil
}

// ValidateAll checks values against the schema and collects one violation per failing field.
func (s *Schema) ValidateAll(values FieldValuer) error {
	if s == nil || values == nil {
		return ErrNilSubject
	}

	var errs ValidationErrors
	for _, f := range s.fields {
		if verr, ok := checkField(f, values.FieldValue(f.Name)); !ok {
			errs.Add(verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func checkField(f FieldRules, v Value) (ValidationError, bool) {
	for _, r := range f.Rules {
		if verr, ok := r.evaluate(f.Name, v); !ok {
			return verr, false
		}
	}
	return ValidationError{}, true
}
