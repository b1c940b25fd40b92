// Package errors provides structured error types for the classreader library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, offending pool index or tag,
// byte position, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("method", "attributes").
//		Detail("attribute count exceeds remaining bytes").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidReference(index, "not a Utf8 entry")
//	err := errors.LengthMismatch("Code", 12, 10)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a whole category:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindEOF})
package errors
