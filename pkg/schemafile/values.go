package schemafile

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/cerealize/cerealize-go/pkg/cereal"
)

// BindValues fills a fresh instance of rt from a plain value tree, the
// shape produced by unmarshalling a YAML or JSON document: maps for
// records, slices for arrays, scalars elsewhere. Scalar validation is
// left to the codec engine.
func BindValues(rt *cereal.RecordType, raw map[string]interface{}) (cereal.FieldAccessible, error) {
	inst := rt.NewInstance()
	for _, f := range rt.Schema().Fields() {
		rawVal, ok := raw[f.Name]
		if !ok {
			return nil, errors.Errorf("missing value for field %q", f.Name)
		}
		val, err := bindValue(f.Type, rawVal)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name)
		}
		if err := inst.SetField(f.Name, val); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func bindValue(t cereal.Type, raw interface{}) (interface{}, error) {
	switch t.Kind() {
	case cereal.KindStruct:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("expected mapping for %s, got %T", t, raw)
		}
		return BindValues(t.Record(), m)
	case cereal.KindArray:
		items, ok := raw.([]interface{})
		if !ok {
			return nil, errors.Errorf("expected sequence for %s, got %T", t, raw)
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			val, err := bindValue(t.Elem(), item)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			out[i] = val
		}
		return out, nil
	default:
		return raw, nil
	}
}

// ExtractValues converts a record instance back into a plain value tree
// suitable for YAML or JSON output.
func ExtractValues(rt *cereal.RecordType, inst cereal.FieldAccessible) (map[string]interface{}, error) {
	out := make(map[string]interface{}, rt.Schema().NumFields())
	for _, f := range rt.Schema().Fields() {
		val, err := inst.GetField(f.Name)
		if err != nil {
			return nil, err
		}
		plain, err := plainValue(f.Type, val)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name)
		}
		out[f.Name] = plain
	}
	return out, nil
}

func plainValue(t cereal.Type, val interface{}) (interface{}, error) {
	switch t.Kind() {
	case cereal.KindStruct:
		nested, ok := val.(cereal.FieldAccessible)
		if !ok {
			return nil, errors.Errorf("expected %s record, got %T", t, val)
		}
		return ExtractValues(t.Record(), nested)
	case cereal.KindArray:
		items, ok := val.([]interface{})
		if !ok {
			return nil, errors.Errorf("expected sequence for %s, got %T", t, val)
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			plain, err := plainValue(t.Elem(), item)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			out[i] = plain
		}
		return out, nil
	default:
		return val, nil
	}
}

// Layout renders a per-field offset table for one record type, one line
// per top-level field.
func Layout(rt *cereal.RecordType) string {
	out := ""
	off := 0
	for _, f := range rt.Schema().Fields() {
		size := f.Type.Size()
		out += fmt.Sprintf("%4d  %4d  %-12s %s\n", off, size, f.Name, f.Type)
		off += size
	}
	out += fmt.Sprintf("total %d bytes\n", rt.Size())
	return out
}
