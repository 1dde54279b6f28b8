package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // schema text to descriptors
	PhaseDecode   Phase = "decode"   // bytes to values
	PhaseEncode   Phase = "encode"   // values to bytes
	PhaseLoad     Phase = "load"     // container and layout file loading
	PhaseValidate Phase = "validate" // layout validation
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedSchema        Kind = "malformed_schema"
	KindUnknownType            Kind = "unknown_type"
	KindCyclicSchema           Kind = "cyclic_schema"
	KindListNotPointed         Kind = "list_not_pointed"
	KindBrokenStringTerminator Kind = "broken_string_terminator"
	KindUnsupportedPrimitive   Kind = "unsupported_primitive"
	KindUnexpectedEOF          Kind = "unexpected_end_of_stream"
	KindTypeMismatch           Kind = "type_mismatch"
	KindInvalidData            Kind = "invalid_data"
	KindOverflow               Kind = "overflow"
	KindNotFound               Kind = "not_found"
	KindInvalidInput           Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Schema string
	Detail string
	Path   []string
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

	if e.GoType != "" || e.Schema != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Schema != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", schema ")
			b.WriteString(e.Schema)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("schema ")
			b.WriteString(e.Schema)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Schema != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
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

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Schema sets the schema text of the type involved
func (b *Builder) Schema(s string) *Builder {
	b.err.Schema = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// MalformedSchema creates a grammar violation error
func MalformedSchema(schema, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedSchema,
		Schema: schema,
		Detail: detail,
	}
}

// UnknownType creates an unrecognized base type error
func UnknownType(schema, name string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnknownType,
		Schema: schema,
		Detail: fmt.Sprintf("unknown type name %q", name),
		Value:  name,
	}
}

// CyclicSchema creates an error for a schema that references itself
func CyclicSchema(chain []string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindCyclicSchema,
		Detail: "resolution cycle: " + strings.Join(chain, " -> "),
	}
}

// ListNotPointed creates an error for a list decoded without indirection
func ListNotPointed(path []string, schema string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindListNotPointed,
		Path:   path,
		Schema: schema,
		Detail: "list data must be referenced through a pointer slot",
	}
}

// BrokenStringTerminator creates an error for a missing zero sentinel after a string
func BrokenStringTerminator(path []string, offset int64, sentinel uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBrokenStringTerminator,
		Path:   path,
		Detail: fmt.Sprintf("expected int(0) after string at position %d, found 0x%08X", offset, sentinel),
		Value:  sentinel,
	}
}

// UnsupportedPrimitive creates an error for a codec requested for an unregistered kind
func UnsupportedPrimitive(phase Phase, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedPrimitive,
		Detail: fmt.Sprintf("no codec for primitive %q", kind),
		Value:  kind,
	}
}

// UnexpectedEOF creates an error for a read past the end of the stream
func UnexpectedEOF(path []string, position int64, want int, size int64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedEOF,
		Path:   path,
		Detail: fmt.Sprintf("read of %d bytes at position %d exceeds stream size %d", want, position, size),
		Value:  position,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, schema string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		GoType: goType,
		Schema: schema,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, limit string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %v exceeds %s", value, limit),
		Value:  value,
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

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
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

// Load creates a container or layout loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPath returns a copy of err prefixed with path when err is an *Error.
// Other errors are returned unchanged.
func WithPath(err error, path ...string) error {
	var e *Error
	if !stderrors.As(err, &e) || len(path) == 0 {
		return err
	}
	cp := *e
	cp.Path = append(append([]string{}, path...), e.Path...)
	return &cp
}
