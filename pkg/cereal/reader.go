package cereal

import (
	"encoding/binary"
)

// Reader consumes wire bytes from the front of a caller-owned buffer.
// It only advances a cursor; the buffer itself is never modified, and
// whatever the cursor has not reached is available as the remainder.
// Like Writer it keeps the first error and refuses further reads.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader creates a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Error returns the first error that occurred during reading, if any.
func (r *Reader) Error() error {
	return r.err
}

// BytesRead returns the number of bytes consumed so far.
func (r *Reader) BytesRead() int {
	return r.off
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Rest returns the unconsumed tail of the buffer, untouched. This is the
// remainder handed back by Decode for stream chaining.
func (r *Reader) Rest() []byte {
	return r.buf[r.off:]
}

func (r *Reader) recordError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// take consumes exactly n bytes, failing with ErrBufferTooShort (carrying
// needed-versus-available counts) when fewer remain.
func (r *Reader) take(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.Remaining() < n {
		r.recordError(&FieldError{
			Needed:    n,
			Available: r.Remaining(),
			Err:       ErrBufferTooShort,
		})
		return nil, r.err
	}
	p := r.buf[r.off : r.off+n]
	r.off += n
	return p, nil
}

// ReadBool consumes one byte. Zero decodes as false, any nonzero byte as
// true; encode always emits the canonical 0x00/0x01.
func (r *Reader) ReadBool() (bool, error) {
	p, err := r.take(1)
	if err != nil {
		return false, err
	}
	return p[0] != 0, nil
}

// ReadUintN consumes width bytes and returns them as a big-endian
// unsigned bit pattern. Sign extension is the caller's concern.
func (r *Reader) ReadUintN(width int) (uint64, error) {
	p, err := r.take(width)
	if err != nil {
		return 0, err
	}
	var scratch [8]byte
	copy(scratch[8-width:], p)
	return binary.BigEndian.Uint64(scratch[:]), nil
}

// ReadBytes consumes exactly n bytes. The returned slice aliases the
// underlying buffer; callers that retain it must copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.take(n)
}
