package validator

// FieldValuer reads the current value of a named field.
type FieldValuer interface {
	FieldValue(name string) Value
}

// Subject is an object that carries both its rule table and its field values.
type Subject interface {
	FieldValuer
	Schema() *Schema
}

// Values is a FieldValuer backed by a map. Missing keys read as Absent.
type Values map[string]Value

func (v Values) FieldValue(name string) Value {
	return v[name]
}

type boundSubject struct {
	schema *Schema
	values FieldValuer
}

func (b boundSubject) Schema() *Schema              { return b.schema }
func (b boundSubject) FieldValue(name string) Value { return b.values.FieldValue(name) }

// Bind pairs a schema with field values to form a Subject.
func Bind(schema *Schema, values FieldValuer) Subject {
	if values == nil {
		values = Values(nil)
	}
	return boundSubject{schema: schema, values: values}
}
