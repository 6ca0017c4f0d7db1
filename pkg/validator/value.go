package validator

// Value is an optional string field value.
// The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// Of returns a present value. An empty string is still present.
func Of(s string) Value {
	return Value{s: s, ok: true}
}

// Absent returns a value that was never assigned.
func Absent() Value {
	return Value{}
}

// FromPtr maps a nil pointer to Absent and anything else to Of(*p).
func FromPtr(p *string) Value {
	if p == nil {
		return Absent()
	}
	return Of(*p)
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// IsAbsent reports whether the value was never assigned.
func (v Value) IsAbsent() bool {
	return !v.ok
}

// String returns the value, or an empty string when absent.
func (v Value) String() string {
	return v.s
}
