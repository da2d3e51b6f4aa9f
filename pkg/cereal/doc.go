// Package cereal converts record values to and from flat byte buffers
// with a fixed, predictable binary layout, the kind documented in wire
// protocols as C-style packed structs.
//
// A record type declares its wire layout once as an ordered field schema:
//
//	schema := cereal.MustSchema(
//		cereal.Field{Name: "readings", Type: cereal.Array(cereal.I16(), 5)},
//		cereal.Field{Name: "active", Type: cereal.Bool()},
//		cereal.Field{Name: "count", Type: cereal.I32()},
//		cereal.Field{Name: "label", Type: cereal.String(12)},
//	)
//	msg, _ := cereal.DynamicType("Message", schema)
//
// Encode walks the schema in declared order and emits each field's
// big-endian encoding with no padding or framing between fields; Decode
// consumes exactly one record's worth of bytes from the front of a
// buffer and returns the unconsumed remainder, so a stream of
// back-to-back messages parses with repeated Decode calls.
//
// Every descriptor has a statically known size, so the wire layout needs
// no length prefixes, tags, or delimiters. Schemas are immutable after
// construction and safe for concurrent use.
package cereal
