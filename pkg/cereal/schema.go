package cereal

import (
	"fmt"
)

// Field is one (name, type) pair of a record's wire layout.
type Field struct {
	Name string
	Type Type
}

// Schema is the ordered field list of a record type. Declared order is
// wire order. A Schema is immutable after construction and safe to share
// between any number of concurrent encode/decode calls.
type Schema struct {
	fields []Field
	byName map[string]int
	size   int
}

// NewSchema validates the field list and builds a Schema from it. Field
// names must be non-empty and unique, and every descriptor must be well
// formed; violations surface here, not at codec time.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i, f := range s.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d has empty name", ErrUnknownType, i)
		}
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field name %q", ErrUnknownType, f.Name)
		}
		if err := f.Type.validate(); err != nil {
			return nil, fieldErr(f.Name, err)
		}
		s.byName[f.Name] = i
		s.size += f.Type.Size()
	}
	return s, nil
}

// MustSchema is NewSchema for statically known layouts; it panics on a
// malformed field list.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Size returns the total wire size of one record: the sum of the field
// sizes in schema order.
func (s *Schema) Size() int {
	return s.size
}

// NumFields returns the number of declared fields.
func (s *Schema) NumFields() int {
	return len(s.fields)
}

// Field returns the i-th field in declared order.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the field list in declared order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the field with the given name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Offset returns the byte offset of the named field within an encoded
// record.
func (s *Schema) Offset(name string) (int, bool) {
	i, ok := s.byName[name]
	if !ok {
		return 0, false
	}
	off := 0
	for _, f := range s.fields[:i] {
		off += f.Type.Size()
	}
	return off, true
}
