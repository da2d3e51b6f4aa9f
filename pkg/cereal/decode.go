package cereal

import (
	"fmt"
)

// Decode parses exactly one record of type rt from the front of buf and
// returns the new instance together with the unconsumed tail. The tail
// aliases buf and is never modified, so back-to-back messages can be
// parsed by calling Decode repeatedly on the remainder. A successful
// call consumes exactly rt.Size() bytes; any failure aborts the whole
// call with the offending field's path.
func Decode(rt *RecordType, buf []byte) (FieldAccessible, []byte, error) {
	if rt == nil {
		return nil, nil, fmt.Errorf("%w: nil record type", ErrUnknownType)
	}
	r := NewReader(buf)
	inst, err := decodeRecord(r, rt)
	if err != nil {
		return nil, nil, err
	}
	return inst, r.Rest(), nil
}

func decodeRecord(r *Reader, rt *RecordType) (FieldAccessible, error) {
	inst := rt.NewInstance()
	for _, f := range rt.schema.fields {
		val, err := decodeValue(r, f.Type)
		if err != nil {
			return nil, fieldErr(f.Name, err)
		}
		if err := inst.SetField(f.Name, val); err != nil {
			return nil, fieldErr(f.Name, err)
		}
	}
	return inst, nil
}

// decodeValue is the decoding half of the dispatch over the descriptor
// union. Integers come back as the exact Go type for their declared
// width, arrays as []interface{}, nested records as fresh instances of
// the nested record type.
func decodeValue(r *Reader, t Type) (interface{}, error) {
	switch t.kind {
	case KindBool:
		return r.ReadBool()

	case KindInt:
		bits, err := r.ReadUintN(t.width)
		if err != nil {
			return nil, err
		}
		return intFromBits(bits, t.width, t.signed), nil

	case KindString:
		raw, err := r.ReadBytes(t.capacity)
		if err != nil {
			return nil, err
		}
		// Strip trailing zero padding only; embedded zero bytes before
		// the trailing run are content.
		end := len(raw)
		for end > 0 && raw[end-1] == 0 {
			end--
		}
		return string(raw[:end]), nil

	case KindArray:
		out := make([]interface{}, t.length)
		for i := range out {
			val, err := decodeValue(r, *t.elem)
			if err != nil {
				return nil, fieldErr(fmt.Sprintf("[%d]", i), err)
			}
			out[i] = val
		}
		return out, nil

	case KindStruct:
		return decodeRecord(r, t.record)

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownType, t.kind)
	}
}

// intFromBits converts a big-endian bit pattern of the given width into
// the exact Go integer type, sign-extending when signed.
func intFromBits(bits uint64, width int, signed bool) interface{} {
	if signed {
		shift := uint(64 - 8*width)
		v := int64(bits<<shift) >> shift
		switch width {
		case 1:
			return int8(v)
		case 2:
			return int16(v)
		case 4:
			return int32(v)
		default:
			return v
		}
	}
	switch width {
	case 1:
		return uint8(bits)
	case 2:
		return uint16(bits)
	case 4:
		return uint32(bits)
	default:
		return bits
	}
}
