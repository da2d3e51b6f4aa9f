package cereal

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates the wire bytes of one encode call. It keeps the
// first error encountered and turns every later write into a no-op, so
// the engine can emit a field and check for failure once.
type Writer struct {
	buf bytes.Buffer
	err error
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Error returns the first error that occurred during writing, if any.
func (w *Writer) Error() error {
	return w.err
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the accumulated output, or nil if writing failed. The
// caller must not use partial output after an error.
func (w *Writer) Bytes() []byte {
	if w.err != nil {
		return nil
	}
	return w.buf.Bytes()
}

// recordError records the first error encountered.
func (w *Writer) recordError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// WriteBool writes the canonical one-byte boolean encoding.
func (w *Writer) WriteBool(val bool) {
	if w.err != nil {
		return
	}
	b := byte(0x00)
	if val {
		b = 0x01
	}
	w.buf.WriteByte(b)
}

// WriteUintN writes the low width bytes of bits in big-endian order.
// For signed values the caller passes the two's-complement bit pattern;
// truncation to width bytes preserves it.
func (w *Writer) WriteUintN(bits uint64, width int) {
	if w.err != nil {
		return
	}
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], bits)
	w.buf.Write(scratch[8-width:])
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(p)
}

// WritePadding writes n zero bytes.
func (w *Writer) WritePadding(n int) {
	if w.err != nil {
		return
	}
	for i := 0; i < n; i++ {
		w.buf.WriteByte(0)
	}
}
