// Package schemafile loads record-type definitions from YAML files into
// cereal record types. The DSL uses the C-style wire type names of the
// layouts it describes:
//
//	types:
//	  - name: Header
//	    fields:
//	      - {name: version, type: uint8_t}
//	      - {name: tag, type: "char[4]"}
//	  - name: Message
//	    fields:
//	      - {name: hdr, type: Header}
//	      - {name: readings, type: "int16_t[5]"}
//	      - {name: ok, type: bool}
//
// A field type is a scalar name, char[N] for a fixed-capacity string,
// EXPR[N] for a fixed-length array, or the name of a previously defined
// type for a nested record.
package schemafile

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cerealize/cerealize-go/pkg/cereal"
)

// File is the top-level YAML document.
type File struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one record type.
type TypeDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one field of a record type.
type FieldDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load reads a schema file and registers its record types in reg, in
// declaration order so later types can nest earlier ones. A nil reg
// gets a fresh registry. It returns the types in declaration order.
func Load(path string, reg *cereal.Registry) ([]*cereal.RecordType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read schema file")
	}
	types, err := Parse(data, reg)
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", path)
	}
	return types, nil
}

// Parse builds and registers the record types declared in data.
func Parse(data []byte, reg *cereal.Registry) ([]*cereal.RecordType, error) {
	if reg == nil {
		reg = cereal.NewRegistry()
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse schema yaml")
	}
	if len(file.Types) == 0 {
		return nil, errors.New("schema declares no types")
	}

	out := make([]*cereal.RecordType, 0, len(file.Types))
	for _, def := range file.Types {
		rt, err := buildType(def, reg)
		if err != nil {
			return nil, errors.Wrapf(err, "type %q", def.Name)
		}
		if err := reg.Register(rt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, nil
}

func buildType(def TypeDef, reg *cereal.Registry) (*cereal.RecordType, error) {
	if len(def.Fields) == 0 {
		return nil, errors.New("declares no fields")
	}
	fields := make([]cereal.Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		typ, err := ParseTypeExpr(fd.Type, reg)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", fd.Name)
		}
		fields = append(fields, cereal.Field{Name: fd.Name, Type: typ})
	}
	schema, err := cereal.NewSchema(fields...)
	if err != nil {
		return nil, err
	}
	return cereal.DynamicType(def.Name, schema)
}

var scalarTypes = map[string]func() cereal.Type{
	"bool":     cereal.Bool,
	"uint8_t":  cereal.U8,
	"int8_t":   cereal.I8,
	"uint16_t": cereal.U16,
	"int16_t":  cereal.I16,
	"uint32_t": cereal.U32,
	"int32_t":  cereal.I32,
	"uint64_t": cereal.U64,
	"int64_t":  cereal.I64,
}

// ParseTypeExpr resolves one field type expression against the types
// already registered in reg.
func ParseTypeExpr(expr string, reg *cereal.Registry) (cereal.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return cereal.Type{}, errors.New("empty type expression")
	}

	if strings.HasSuffix(expr, "]") {
		open := strings.LastIndex(expr, "[")
		if open <= 0 {
			return cereal.Type{}, errors.Errorf("malformed type expression %q", expr)
		}
		n, err := strconv.Atoi(expr[open+1 : len(expr)-1])
		if err != nil || n < 0 {
			return cereal.Type{}, errors.Errorf("bad length in type expression %q", expr)
		}
		base := strings.TrimSpace(expr[:open])
		if base == "char" {
			return cereal.String(n), nil
		}
		elem, err := ParseTypeExpr(base, reg)
		if err != nil {
			return cereal.Type{}, err
		}
		return cereal.Array(elem, n), nil
	}

	if scalar, ok := scalarTypes[expr]; ok {
		return scalar(), nil
	}
	if expr == "char" {
		return cereal.Type{}, errors.New("char requires a capacity, e.g. char[8]")
	}
	if rt, ok := reg.Lookup(expr); ok {
		return cereal.Struct(rt), nil
	}
	return cereal.Type{}, errors.Errorf("unknown type %q", expr)
}
