package cereal

import (
	"bytes"
	"errors"
	"testing"
)

func decodeOne(t *testing.T, typ Type, buf []byte) (interface{}, []byte, error) {
	t.Helper()
	rt := singleFieldType(t, typ)
	inst, rest, err := Decode(rt, buf)
	if err != nil {
		return nil, nil, err
	}
	val, err := inst.GetField("v")
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	return val, rest, nil
}

func TestDecodeScalars(t *testing.T) {
	cases := []struct {
		typ  Type
		buf  []byte
		want interface{}
	}{
		{U8(), []byte{0xAB}, uint8(0xAB)},
		{I8(), []byte{0xFF}, int8(-1)},
		{U16(), []byte{0x12, 0x34}, uint16(0x1234)},
		{I16(), []byte{0xFF, 0xFE}, int16(-2)},
		{U32(), []byte{0xDE, 0xAD, 0xBE, 0xEF}, uint32(0xDEADBEEF)},
		{I32(), []byte{0x00, 0x0E, 0x51, 0x29}, int32(938281)},
		{I64(), bytes.Repeat([]byte{0xFF}, 8), int64(-1)},
		{U64(), []byte{0, 0, 1, 0, 0, 0, 0, 0}, uint64(1) << 40},
		{Bool(), []byte{0x00}, false},
		{Bool(), []byte{0x01}, true},
		{Bool(), []byte{0x7F}, true}, // nonzero decodes as true
	}
	for _, c := range cases {
		got, rest, err := decodeOne(t, c.typ, c.buf)
		if err != nil {
			t.Errorf("%s % X: %v", c.typ, c.buf, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s % X: got %v (%T), want %v (%T)", c.typ, c.buf, got, got, c.want, c.want)
		}
		if len(rest) != 0 {
			t.Errorf("%s: %d leftover bytes", c.typ, len(rest))
		}
	}
}

func TestDecodeStringStripsTrailingZerosOnly(t *testing.T) {
	// Embedded zero bytes before the trailing run are content.
	got, _, err := decodeOne(t, String(6), []byte{'A', 0x00, 'B', 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "A\x00B" {
		t.Fatalf("got %q, want %q", got, "A\x00B")
	}

	got, _, err = decodeOne(t, String(5), []byte{0x48, 0x69, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "Hi" {
		t.Fatalf("got %q, want %q", got, "Hi")
	}
}

func TestDecodeBufferTooShort(t *testing.T) {
	_, _, err := decodeOne(t, U32(), []byte{0x01, 0x02, 0x03})
	if !errors.Is(err, ErrBufferTooShort) {
		t.Fatalf("got %v, want ErrBufferTooShort", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a FieldError", err)
	}
	if fe.Needed != 4 || fe.Available != 3 {
		t.Fatalf("needed/available = %d/%d, want 4/3", fe.Needed, fe.Available)
	}
	if fe.Path != "v" {
		t.Fatalf("path %q, want %q", fe.Path, "v")
	}
}

func TestDecodeShortBufferInsideArray(t *testing.T) {
	// 5 bytes cover two and a half int16 elements.
	_, _, err := decodeOne(t, Array(I16(), 5), []byte{0, 1, 0, 2, 0})
	if !errors.Is(err, ErrBufferTooShort) {
		t.Fatalf("got %v, want ErrBufferTooShort", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Path != "v[2]" {
		t.Fatalf("path of %v, want v[2]", err)
	}
}

func TestDecodeLeavesRemainderUntouched(t *testing.T) {
	buf := []byte{0x00, 0x2A, 0xDE, 0xAD, 0xBE, 0xEF}
	got, rest, err := decodeOne(t, U16(), buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != uint16(42) {
		t.Fatalf("got %v", got)
	}
	if !bytes.Equal(rest, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("rest % X", rest)
	}
	// The remainder aliases the caller's buffer; it must not be a copy
	// of different backing bytes.
	if &rest[0] != &buf[2] {
		t.Fatal("remainder does not alias the input buffer")
	}
}

func TestDecodeNestedRecord(t *testing.T) {
	inner, err := DynamicType("Inner", MustSchema(
		Field{Name: "version", Type: U8()},
		Field{Name: "tag", Type: String(4)},
	))
	if err != nil {
		t.Fatalf("DynamicType: %v", err)
	}
	outer, err := DynamicType("Outer", MustSchema(
		Field{Name: "hdr", Type: Struct(inner)},
		Field{Name: "value", Type: U16()},
	))
	if err != nil {
		t.Fatalf("DynamicType: %v", err)
	}

	buf := []byte{0x02, 'P', 'I', 'N', 0x00, 0x01, 0x00}
	inst, rest, err := Decode(outer, buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("%d leftover bytes", len(rest))
	}
	hdrVal, err := inst.GetField("hdr")
	if err != nil {
		t.Fatal(err)
	}
	hdr, ok := hdrVal.(FieldAccessible)
	if !ok {
		t.Fatalf("hdr is %T, want FieldAccessible", hdrVal)
	}
	version, _ := hdr.GetField("version")
	if version != uint8(2) {
		t.Fatalf("version %v", version)
	}
	tag, _ := hdr.GetField("tag")
	if tag != "PIN" {
		t.Fatalf("tag %q", tag)
	}
	value, _ := inst.GetField("value")
	if value != uint16(256) {
		t.Fatalf("value %v", value)
	}
}
