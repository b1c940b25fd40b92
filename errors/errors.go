package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode     Phase = "decode"     // binary structure decoding
	PhaseResolve    Phase = "resolve"    // constant pool resolution
	PhaseDescriptor Phase = "descriptor" // descriptor string parsing
)

// Kind categorizes the error
type Kind string

const (
	KindEOF              Kind = "unexpected_eof"
	KindMagicMismatch    Kind = "magic_mismatch"
	KindUnsupportedTag   Kind = "unsupported_tag"
	KindInvalidReference Kind = "invalid_reference"
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindLengthMismatch   Kind = "length_mismatch"
	KindSyntax           Kind = "syntax"
	KindLimitExceeded    Kind = "limit_exceeded"
	KindInvalidData      Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Path     []string
	Tag      uint8  // offending constant pool tag (KindUnsupportedTag)
	Index    uint16 // offending constant pool index (KindInvalidReference)
	Expected int    // declared byte count (KindLengthMismatch)
	Actual   int    // consumed byte count (KindLengthMismatch)
	Position int    // byte or character offset where the error occurred
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Position sets the offset at which the error occurred
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnexpectedEOF reports that the byte source was exhausted mid-structure.
func UnexpectedEOF(phase Phase, position, need, have int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindEOF,
		Position: position,
		Detail:   fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// MagicMismatch reports that the leading magic bytes were wrong.
func MagicMismatch(got, want uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMagicMismatch,
		Detail: fmt.Sprintf("magic 0x%08X, want 0x%08X", got, want),
	}
}

// UnsupportedTag reports a constant pool tag whose byte width is unknown.
func UnsupportedTag(tag uint8, poolIndex uint16) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedTag,
		Tag:    tag,
		Index:  poolIndex,
		Detail: fmt.Sprintf("constant pool tag %d at index %d", tag, poolIndex),
	}
}

// InvalidReference reports a constant pool index that is out of range or
// resolves to the wrong entry variant.
func InvalidReference(index uint16, detail string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidReference,
		Index:  index,
		Detail: detail,
	}
}

// InvalidUTF8 reports a malformed modified-UTF-8 byte sequence.
func InvalidUTF8(position int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindInvalidUTF8,
		Position: position,
		Detail:   fmt.Sprintf("invalid modified UTF-8 sequence: %x", preview),
	}
}

// LengthMismatch reports an attribute whose decoder consumed a different
// number of bytes than the attribute's declared length.
func LengthMismatch(name string, expected, actual int) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindLengthMismatch,
		Path:     []string{name},
		Expected: expected,
		Actual:   actual,
		Detail:   fmt.Sprintf("declared %d bytes, consumed %d", expected, actual),
	}
}

// Syntax reports a malformed descriptor string.
func Syntax(position int, reason string) *Error {
	return &Error{
		Phase:    PhaseDescriptor,
		Kind:     KindSyntax,
		Position: position,
		Detail:   fmt.Sprintf("at offset %d: %s", position, reason),
	}
}

// LimitExceeded reports a declared length beyond the configured decode bound.
func LimitExceeded(what string, declared, limit int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindLimitExceeded,
		Detail: fmt.Sprintf("%s length %d exceeds limit %d", what, declared, limit),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
