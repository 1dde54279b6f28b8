// Package errors provides structured error types for the datcodec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/schema type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindListNotPointed).
//		Path("Rows", "[2]").
//		Schema("list|int").
//		Detail("list reached without pointer indirection").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownType(path, "frobnicate")
//	err := errors.UnexpectedEOF(path, 120, 4, 96)
//
// All errors implement the standard error interface and support errors.Is/As.
// IsKind matches on Kind alone, regardless of the phase that produced the error.
package errors
