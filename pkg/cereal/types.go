package cereal

import (
	"fmt"
)

// Kind is the discriminant of the closed Type union. The variant set is
// fixed: every kind has a statically known encoded size, which is what
// makes decoding possible without length prefixes or delimiters.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindString
	KindArray
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// Type describes how one value maps to a fixed number of wire bytes.
// Values are immutable; build them with the constructors below.
type Type struct {
	kind     Kind
	width    int  // integers: 1, 2, 4 or 8 bytes
	signed   bool // integers: two's-complement when true
	capacity int  // strings: total bytes on the wire
	length   int  // arrays: declared element count
	elem     *Type
	record   *RecordType
}

// Integer type constructors, named after the C wire types they encode.

func Bool() Type { return Type{kind: KindBool} }
func U8() Type   { return Type{kind: KindInt, width: 1} }
func I8() Type   { return Type{kind: KindInt, width: 1, signed: true} }
func U16() Type  { return Type{kind: KindInt, width: 2} }
func I16() Type  { return Type{kind: KindInt, width: 2, signed: true} }
func U32() Type  { return Type{kind: KindInt, width: 4} }
func I32() Type  { return Type{kind: KindInt, width: 4, signed: true} }
func U64() Type  { return Type{kind: KindInt, width: 8} }
func I64() Type  { return Type{kind: KindInt, width: 8, signed: true} }

// String declares a fixed-capacity text field: exactly capacity bytes on
// the wire, content followed by zero padding.
func String(capacity int) Type {
	return Type{kind: KindString, capacity: capacity}
}

// Array declares a fixed-length homogeneous sequence: length consecutive
// encodings of elem, no separators, no count prefix.
func Array(elem Type, length int) Type {
	return Type{kind: KindArray, elem: &elem, length: length}
}

// Struct declares a nested record, encoded as the plain concatenation of
// the nested type's fields in schema order.
func Struct(rt *RecordType) Type {
	return Type{kind: KindStruct, record: rt}
}

func (t Type) Kind() Kind          { return t.kind }
func (t Type) Width() int          { return t.width }
func (t Type) Signed() bool        { return t.signed }
func (t Type) Capacity() int       { return t.capacity }
func (t Type) Len() int            { return t.length }
func (t Type) Record() *RecordType { return t.record }

// Elem returns the element type of an array descriptor.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{}
	}
	return *t.elem
}

// Size returns the exact number of bytes the encoding of this type
// occupies on the wire.
func (t Type) Size() int {
	switch t.kind {
	case KindBool:
		return 1
	case KindInt:
		return t.width
	case KindString:
		return t.capacity
	case KindArray:
		return t.length * t.elem.Size()
	case KindStruct:
		return t.record.Schema().Size()
	default:
		return 0
	}
}

func (t Type) String() string {
	switch t.kind {
	case KindBool:
		return "bool"
	case KindInt:
		prefix := "uint"
		if t.signed {
			prefix = "int"
		}
		return fmt.Sprintf("%s%d_t", prefix, t.width*8)
	case KindString:
		return fmt.Sprintf("char[%d]", t.capacity)
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.elem.String(), t.length)
	case KindStruct:
		return t.record.Name()
	default:
		return "<invalid>"
	}
}

// validate reports whether the descriptor is well formed. It runs at
// schema construction time so codec calls never see a malformed type.
func (t Type) validate() error {
	switch t.kind {
	case KindBool:
		return nil
	case KindInt:
		switch t.width {
		case 1, 2, 4, 8:
			return nil
		}
		return fmt.Errorf("%w: integer width %d", ErrUnknownType, t.width)
	case KindString:
		if t.capacity < 0 {
			return fmt.Errorf("%w: negative string capacity %d", ErrUnknownType, t.capacity)
		}
		return nil
	case KindArray:
		if t.elem == nil {
			return fmt.Errorf("%w: array with no element type", ErrUnknownType)
		}
		if t.length < 0 {
			return fmt.Errorf("%w: negative array length %d", ErrUnknownType, t.length)
		}
		return t.elem.validate()
	case KindStruct:
		if t.record == nil {
			return fmt.Errorf("%w: struct with no record type", ErrUnknownType)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownType, t.kind)
	}
}
