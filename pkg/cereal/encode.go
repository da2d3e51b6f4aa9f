package cereal

import (
	"fmt"
	"math"
	"reflect"
)

// Encode serializes one record instance into its fixed wire layout:
// every schema field in declared order, big-endian, packed with no
// alignment between fields. The returned slice is always exactly
// rt.Size() bytes long. On any failure no output is returned; the error
// carries the dotted path of the offending field.
func Encode(rt *RecordType, inst FieldAccessible) ([]byte, error) {
	if rt == nil {
		return nil, fmt.Errorf("%w: nil record type", ErrUnknownType)
	}
	if inst == nil {
		return nil, fmt.Errorf("%w: nil instance", ErrTypeMismatch)
	}
	w := NewWriter()
	if err := encodeRecord(w, rt, inst); err != nil {
		return nil, err
	}
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeRecord(w *Writer, rt *RecordType, inst FieldAccessible) error {
	for _, f := range rt.schema.fields {
		val, err := inst.GetField(f.Name)
		if err != nil {
			return fieldErr(f.Name, err)
		}
		if err := encodeValue(w, f.Type, val); err != nil {
			return fieldErr(f.Name, err)
		}
	}
	return nil
}

// encodeValue is the single dispatch over the descriptor union.
func encodeValue(w *Writer, t Type, val interface{}) error {
	switch t.kind {
	case KindBool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("%w: expected bool, got %T", ErrTypeMismatch, val)
		}
		w.WriteBool(b)
		return nil

	case KindInt:
		return encodeInt(w, t, val)

	case KindString:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("%w: expected string, got %T", ErrTypeMismatch, val)
		}
		if len(s) > t.capacity {
			return fmt.Errorf("%w: %d bytes into char[%d]", ErrStringTooLong, len(s), t.capacity)
		}
		w.WriteBytes([]byte(s))
		w.WritePadding(t.capacity - len(s))
		return nil

	case KindArray:
		rv := reflect.ValueOf(val)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return fmt.Errorf("%w: expected sequence, got %T", ErrTypeMismatch, val)
		}
		if rv.Len() != t.length {
			return fmt.Errorf("%w: got %d elements, declared %d", ErrLengthMismatch, rv.Len(), t.length)
		}
		for i := 0; i < rv.Len(); i++ {
			if err := encodeValue(w, *t.elem, rv.Index(i).Interface()); err != nil {
				return fieldErr(fmt.Sprintf("[%d]", i), err)
			}
		}
		return nil

	case KindStruct:
		nested, ok := val.(FieldAccessible)
		if !ok {
			return fmt.Errorf("%w: expected %s record, got %T", ErrTypeMismatch, t.record.Name(), val)
		}
		return encodeRecord(w, t.record, nested)

	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownType, t.kind)
	}
}

// encodeInt range-checks val against the declared width and signedness
// and writes its two's-complement big-endian representation. Any Go
// integer kind is accepted on the way in.
func encodeInt(w *Writer, t Type, val interface{}) error {
	sval, uval, isUnsigned, ok := intValue(val)
	if !ok {
		return fmt.Errorf("%w: expected integer, got %T", ErrTypeMismatch, val)
	}

	bits := 8 * t.width
	if t.signed {
		min, max := int64(math.MinInt64), int64(math.MaxInt64)
		if t.width < 8 {
			max = int64(1)<<(bits-1) - 1
			min = -int64(1) << (bits - 1)
		}
		if isUnsigned {
			if uval > uint64(max) {
				return fmt.Errorf("%w: %d does not fit int%d_t", ErrRange, uval, bits)
			}
			sval = int64(uval)
		} else if sval < min || sval > max {
			return fmt.Errorf("%w: %d does not fit int%d_t", ErrRange, sval, bits)
		}
		w.WriteUintN(uint64(sval), t.width)
		return nil
	}

	if !isUnsigned {
		if sval < 0 {
			return fmt.Errorf("%w: %d does not fit uint%d_t", ErrRange, sval, bits)
		}
		uval = uint64(sval)
	}
	if t.width < 8 && uval > (uint64(1)<<bits)-1 {
		return fmt.Errorf("%w: %d does not fit uint%d_t", ErrRange, uval, bits)
	}
	w.WriteUintN(uval, t.width)
	return nil
}

// intValue normalizes any Go integer kind. Signed inputs come back in
// sval, unsigned inputs in uval with isUnsigned set.
func intValue(val interface{}) (sval int64, uval uint64, isUnsigned, ok bool) {
	switch v := val.(type) {
	case int:
		return int64(v), 0, false, true
	case int8:
		return int64(v), 0, false, true
	case int16:
		return int64(v), 0, false, true
	case int32:
		return int64(v), 0, false, true
	case int64:
		return v, 0, false, true
	case uint:
		return 0, uint64(v), true, true
	case uint8:
		return 0, uint64(v), true, true
	case uint16:
		return 0, uint64(v), true, true
	case uint32:
		return 0, uint64(v), true, true
	case uint64:
		return 0, v, true, true
	default:
		return 0, 0, false, false
	}
}
