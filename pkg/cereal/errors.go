package cereal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTypeMismatch   = errors.New("cereal: value does not match declared type")
	ErrRange          = errors.New("cereal: integer out of range for declared width")
	ErrStringTooLong  = errors.New("cereal: string exceeds declared capacity")
	ErrLengthMismatch = errors.New("cereal: sequence length differs from declared length")
	ErrBufferTooShort = errors.New("cereal: buffer too short")
	ErrUnknownType    = errors.New("cereal: malformed type descriptor")
	ErrNoSuchField    = errors.New("cereal: no such field")
	ErrDuplicateType  = errors.New("cereal: record type already registered")
)

// FieldError tags a codec failure with the path of the offending field.
// Paths are dotted for nested records and indexed for array elements,
// e.g. "hdr.readings[3]". For ErrBufferTooShort failures Needed and
// Available report how many bytes the field required versus how many
// remained in the buffer.
type FieldError struct {
	Path      string
	Needed    int
	Available int
	Err       error
}

func (e *FieldError) Error() string {
	msg := e.Err.Error()
	if e.Needed > 0 {
		msg = fmt.Sprintf("%s: need %d bytes, have %d", msg, e.Needed, e.Available)
	}
	if e.Path == "" {
		return msg
	}
	return fmt.Sprintf("%s (field %q)", msg, e.Path)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// fieldErr wraps err with the given path segment, extending the path of an
// existing FieldError rather than nesting wrappers.
func fieldErr(segment string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			Path:      joinPath(segment, fe.Path),
			Needed:    fe.Needed,
			Available: fe.Available,
			Err:       fe.Err,
		}
	}
	return &FieldError{Path: segment, Err: err}
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}
