package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a run the error occurred
type Phase string

const (
	PhaseParse     Phase = "parse"     // argument translation
	PhaseSession   Phase = "session"   // service connection
	PhaseEnumerate Phase = "enumerate" // identifier listing
	PhaseResolve   Phase = "resolve"   // per-entry lookup
)

// Kind categorizes the error
type Kind string

const (
	KindUnrecognizedOption Kind = "unrecognized_option"
	KindUnrecognizedFlag   Kind = "unrecognized_flag"
	KindBannedFlag         Kind = "banned_flag"
	KindInvalidUTF16       Kind = "invalid_utf16"
	KindServiceFailure     Kind = "service_failure"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindAlreadyConnected   Kind = "already_connected"
	KindUnsupported        Kind = "unsupported"
	KindInternal           Kind = "internal"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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

// Message returns the short displayable message for this error: the
// detail when one is set, the full rendering otherwise. The table
// renderer brackets this for entries whose path is unavailable.
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error()
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

// UnrecognizedOption creates an error for an option-style token. The
// CLI accepts only bare flag names, so anything starting with an option
// marker is rejected before name lookup.
func UnrecognizedOption(token string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnrecognizedOption,
		Detail: fmt.Sprintf("no options are recognized (got %q)", token),
	}
}

// UnrecognizedFlag creates an error for a flag name missing from the
// symbol table.
func UnrecognizedFlag(name string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnrecognizedFlag,
		Detail: fmt.Sprintf("unrecognized flag name: %s", name),
	}
}

// BannedFlag creates an error for a flag on the deny-list.
func BannedFlag(name string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindBannedFlag,
		Detail: fmt.Sprintf("refusing to attempt to pass %s for ALL known folders (dangerous)", name),
	}
}

// InvalidUTF16 creates an error for an ill-formed UTF-16 block.
func InvalidUTF16(what string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidUTF16,
		Detail: fmt.Sprintf("%s is not well-formed UTF-16", what),
	}
}

// ServiceFailure creates an error for a failed service call. The
// detail is the displayable message.
func ServiceFailure(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindServiceFailure,
		Detail: detail,
		Cause:  cause,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(index, length int) *Error {
	return &Error{
		Phase:  PhaseEnumerate,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// AlreadyConnected creates an error for a second session open
func AlreadyConnected() *Error {
	return &Error{
		Phase:  PhaseSession,
		Kind:   KindAlreadyConnected,
		Detail: "a session is already open on this thread",
	}
}

// Unsupported creates an error for platforms without the service
func Unsupported(detail string) *Error {
	return &Error{
		Phase:  PhaseSession,
		Kind:   KindUnsupported,
		Detail: detail,
	}
}

// Internal creates an error for a broken invariant
func Internal(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInternal,
		Detail: detail,
	}
}
