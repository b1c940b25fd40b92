package binary

import (
	"fmt"

	"github.com/jvmkit/classreader/errors"
)

// Reader decodes big-endian fixed-width values from an in-memory byte source,
// tracking position. The class file format is a strict forward stream: there
// is no seeking.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over the given bytes.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadU8 reads a single unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, errors.UnexpectedEOF(errors.PhaseDecode, r.pos, 1, 0)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, errors.UnexpectedEOF(errors.PhaseDecode, r.pos, 2, r.Remaining())
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, errors.UnexpectedEOF(errors.PhaseDecode, r.pos, 4, r.Remaining())
	}
	v := uint32(r.data[r.pos])<<24 |
		uint32(r.data[r.pos+1])<<16 |
		uint32(r.data[r.pos+2])<<8 |
		uint32(r.data[r.pos+3])
	r.pos += 4
	return v, nil
}

// ReadBytes reads exactly n bytes. The returned slice is a copy; the decoded
// structure must not alias the caller's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, nil, fmt.Sprintf("negative byte count %d", n))
	}
	if r.Remaining() < n {
		return nil, errors.UnexpectedEOF(errors.PhaseDecode, r.pos, n, r.Remaining())
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:r.pos+n])
	r.pos += n
	return buf, nil
}

// ParseError represents an error during binary parsing with position information.
type ParseError struct {
	Err      error
	Region   string
	Position int
}

func (e *ParseError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("classfile: %s at position %d: %v", e.Region, e.Position, e.Err)
	}
	return fmt.Sprintf("classfile: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(region string, err error) error {
	return &ParseError{
		Position: r.pos,
		Region:   region,
		Err:      err,
	}
}
