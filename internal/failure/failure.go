// Package failure defines the closed set of error kinds surfaced by tog.
// Every operation returns either a result or an error whose Kind is one of
// the constants below; callers branch on the kind, never on transport types.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Unknown is reported by KindOf for errors outside the taxonomy.
	Unknown Kind = iota
	// Transport is a network or HTTP-level failure talking to the remote service.
	Transport
	// Decode means a response did not match the expected schema.
	Decode
	// NoRunningEntry means an operation needed a running entry and none exists.
	NoRunningEntry
	// InvalidInput covers malformed user input and empty selections.
	InvalidInput
	// InvalidShift means a start-time adjustment would erase or invert an entry.
	InvalidShift
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport failure"
	case Decode:
		return "decode failure"
	case NoRunningEntry:
		return "no running entry"
	case InvalidInput:
		return "invalid input"
	case InvalidShift:
		return "invalid shift"
	default:
		return "unknown failure"
	}
}

// Error is the concrete error type for every Kind.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "toggl.current"
	Msg  string
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the bare sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// Kind sentinels for use with errors.Is.
var (
	ErrTransport      = &Error{Kind: Transport}
	ErrDecode         = &Error{Kind: Decode}
	ErrNoRunningEntry = &Error{Kind: NoRunningEntry}
	ErrInvalidInput   = &Error{Kind: InvalidInput}
	ErrInvalidShift   = &Error{Kind: InvalidShift}
)

// ErrNoSelection marks a cancelled prompt. It is always wrapped in an
// InvalidInput error, so both errors.Is checks succeed.
var ErrNoSelection = errors.New("nothing selected")

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// Wrap builds an *Error of the given kind around err.
func Wrap(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// TransportErr wraps a network or HTTP failure.
func TransportErr(op string, err error) error {
	return &Error{Kind: Transport, Op: op, Err: err}
}

// TransportMsg reports an HTTP failure that has no underlying Go error.
func TransportMsg(op, format string, args ...any) error {
	return &Error{Kind: Transport, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// DecodeErr wraps a schema mismatch in a response body.
func DecodeErr(op string, err error) error {
	return &Error{Kind: Decode, Op: op, Err: err}
}

// DecodeMsg reports a well-formed response with an unexpected shape.
func DecodeMsg(op, format string, args ...any) error {
	return &Error{Kind: Decode, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NoRunning reports that op required a running entry.
func NoRunning(op string) error {
	return &Error{Kind: NoRunningEntry, Op: op, Msg: "no time entry running"}
}

// Invalid reports malformed user input.
func Invalid(op, format string, args ...any) error {
	return &Error{Kind: InvalidInput, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NoSelection reports a cancelled or empty prompt.
func NoSelection(op string) error {
	return &Error{Kind: InvalidInput, Op: op, Err: ErrNoSelection}
}

// Shift reports an adjustment rejected by reconciliation.
func Shift(op, format string, args ...any) error {
	return &Error{Kind: InvalidShift, Op: op, Msg: fmt.Sprintf(format, args...)}
}
