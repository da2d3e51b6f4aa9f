package cereal

import (
	"errors"
	"testing"
)

func TestTypeSizes(t *testing.T) {
	cases := []struct {
		typ  Type
		want int
	}{
		{Bool(), 1},
		{U8(), 1},
		{I8(), 1},
		{U16(), 2},
		{I16(), 2},
		{U32(), 4},
		{I32(), 4},
		{U64(), 8},
		{I64(), 8},
		{String(12), 12},
		{Array(I16(), 5), 10},
		{Array(Array(U8(), 3), 2), 6},
	}
	for _, c := range cases {
		if got := c.typ.Size(); got != c.want {
			t.Errorf("%s: size %d, want %d", c.typ, got, c.want)
		}
	}
}

func TestTypeStrings(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{Bool(), "bool"},
		{U8(), "uint8_t"},
		{I64(), "int64_t"},
		{String(12), "char[12]"},
		{Array(I16(), 5), "int16_t[5]"},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestSchemaSizeIsFieldSum(t *testing.T) {
	s, err := NewSchema(
		Field{Name: "w", Type: Array(I16(), 5)},
		Field{Name: "x", Type: Bool()},
		Field{Name: "y", Type: I32()},
		Field{Name: "z", Type: String(12)},
	)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	if s.Size() != 27 {
		t.Fatalf("size %d, want 27", s.Size())
	}
	off, ok := s.Offset("y")
	if !ok || off != 11 {
		t.Fatalf("offset of y = %d, %v; want 11, true", off, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("lookup of unknown field succeeded")
	}
}

func TestSchemaRejectsDuplicateNames(t *testing.T) {
	_, err := NewSchema(
		Field{Name: "a", Type: U8()},
		Field{Name: "a", Type: U16()},
	)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("got %v, want ErrUnknownType", err)
	}
}

func TestSchemaRejectsEmptyName(t *testing.T) {
	_, err := NewSchema(Field{Name: "", Type: U8()})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("got %v, want ErrUnknownType", err)
	}
}

func TestSchemaRejectsMalformedDescriptors(t *testing.T) {
	cases := []Type{
		{},                              // invalid kind
		{kind: KindInt, width: 3},       // bad width
		{kind: KindArray, length: 4},    // nil element
		{kind: KindString, capacity: -1},
		{kind: KindStruct},              // nil record type
		Array(Type{kind: KindInt, width: 5}, 2), // malformed element
	}
	for i, typ := range cases {
		_, err := NewSchema(Field{Name: "f", Type: typ})
		if !errors.Is(err, ErrUnknownType) {
			t.Errorf("case %d: got %v, want ErrUnknownType", i, err)
		}
	}
}

func TestSchemaFieldsAreCopied(t *testing.T) {
	s := MustSchema(Field{Name: "a", Type: U8()})
	fields := s.Fields()
	fields[0].Name = "mutated"
	if s.Field(0).Name != "a" {
		t.Fatal("schema mutated through Fields() copy")
	}
}
