package cereal

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldAccessible is the capability interface the codec engine requires
// from a record instance. The engine never depends on a concrete record
// type: anything that can get and set named field values can be encoded
// and decoded.
type FieldAccessible interface {
	// GetField returns the current value of the named field.
	GetField(name string) (interface{}, error)

	// SetField replaces the value of the named field.
	SetField(name string, value interface{}) error
}

// RecordType binds a name and a Schema to an instance factory. Decode
// uses the factory to construct the instance it fills.
type RecordType struct {
	name   string
	schema *Schema
	newFn  func() FieldAccessible
}

// NewRecordType builds a record type from its schema and factory.
func NewRecordType(name string, schema *Schema, factory func() FieldAccessible) (*RecordType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: record type with empty name", ErrUnknownType)
	}
	if schema == nil {
		return nil, fmt.Errorf("%w: record type %q with nil schema", ErrUnknownType, name)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: record type %q with nil factory", ErrUnknownType, name)
	}
	return &RecordType{name: name, schema: schema, newFn: factory}, nil
}

func (rt *RecordType) Name() string    { return rt.name }
func (rt *RecordType) Schema() *Schema { return rt.schema }

// Size returns the fixed wire size of one record of this type.
func (rt *RecordType) Size() int { return rt.schema.Size() }

// NewInstance constructs a zero instance of the record type.
func (rt *RecordType) NewInstance() FieldAccessible { return rt.newFn() }

// Dynamic is a generic schema-backed record instance: an ordered value
// slot per schema field. It is what Decode materializes when the caller
// has no concrete Go struct for the record type.
type Dynamic struct {
	schema *Schema
	values []interface{}
}

// NewDynamic constructs an empty Dynamic over the given schema.
func NewDynamic(schema *Schema) *Dynamic {
	return &Dynamic{schema: schema, values: make([]interface{}, schema.NumFields())}
}

// DynamicType builds a RecordType whose instances are Dynamic records.
func DynamicType(name string, schema *Schema) (*RecordType, error) {
	return NewRecordType(name, schema, func() FieldAccessible {
		return NewDynamic(schema)
	})
}

func (d *Dynamic) Schema() *Schema { return d.schema }

func (d *Dynamic) GetField(name string) (interface{}, error) {
	i, ok := d.schema.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchField, name)
	}
	return d.values[i], nil
}

func (d *Dynamic) SetField(name string, value interface{}) error {
	i, ok := d.schema.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchField, name)
	}
	d.values[i] = value
	return nil
}

// Equal reports whether two Dynamic records hold the same schema and
// deeply equal field values. Values must match in dynamic type as well,
// which is always the case for two decoded records.
func (d *Dynamic) Equal(other *Dynamic) bool {
	if other == nil || d.schema != other.schema {
		return false
	}
	return reflect.DeepEqual(d.values, other.values)
}

func (d *Dynamic) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range d.schema.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Name, d.values[i])
	}
	b.WriteByte('}')
	return b.String()
}
