package failed

import (
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
const enableDebugErrorPrinting bool = true
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	LimitExceeded
	Elaboration
	Introduction
	InvariantViolation
	Cancelled
)

func (c ErrCode) String() string {
	switch c {
	case LimitExceeded:
		return "limit_exceeded"
	case Elaboration:
		return "elaboration"
	case Introduction:
		return "introduction"
	case InvariantViolation:
		return "invariant_violation"
	case Cancelled:
		return "cancelled"
	default:
		return "none"
	}
}

type SplitError interface {
	error
	Code() ErrCode

	withStack([]byte) SplitError
	getStack() []byte
}

// New records the current stack on err
func New[E SplitError](err E) SplitError {
	return err.withStack(debug.Stack())
}

// creatorFrame is the line of the stack of the function that called New
func creatorFrame(stack []byte) string {
	lines := strings.Split(string(stack), "\n")
	if len(lines) <= 6 {
		return ""
	}
	return strings.TrimSpace(lines[6])
}

func FormatWithCode(e SplitError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := creatorFrame(e.getStack())
		if enableDebugFullStacktrace {
			stack = string(e.getStack())
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// CodeOf returns the code of the SplitError in err's chain, or None
func CodeOf(err error) ErrCode {
	var splitErr SplitError
	if As(err, &splitErr) {
		return splitErr.Code()
	}
	return None
}

type NewLimitExceeded struct {
	SplitCount uint
	Max        uint
	stack      []byte
}

func (e NewLimitExceeded) Error() string {
	return fmt.Sprintf("case split limit reached: %d splits performed, at most %d allowed", e.SplitCount, e.Max)
}
func (e NewLimitExceeded) Code() ErrCode    { return LimitExceeded }
func (e NewLimitExceeded) getStack() []byte { return e.stack }
func (e NewLimitExceeded) withStack(stack []byte) SplitError {
	e.stack = stack
	return e
}

// NewElaboration is a failure to build a proof term the split needs
type NewElaboration struct {
	Term  fmt.Stringer
	Cause error
	stack []byte
}

func (e NewElaboration) Error() string {
	return fmt.Sprintf("could not justify case split on %v: %v", e.Term, e.Cause)
}
func (e NewElaboration) Unwrap() error    { return e.Cause }
func (e NewElaboration) Code() ErrCode    { return Elaboration }
func (e NewElaboration) getStack() []byte { return e.stack }
func (e NewElaboration) withStack(stack []byte) SplitError {
	e.stack = stack
	return e
}

// NewIntroduction is a failure of the host to turn a split's cases into goals
type NewIntroduction struct {
	Cause error
	stack []byte
}

func (e NewIntroduction) Error() string {
	return fmt.Sprintf("could not introduce case hypotheses: %v", e.Cause)
}
func (e NewIntroduction) Unwrap() error    { return e.Cause }
func (e NewIntroduction) Code() ErrCode    { return Introduction }
func (e NewIntroduction) getStack() []byte { return e.stack }
func (e NewIntroduction) withStack(stack []byte) SplitError {
	e.stack = stack
	return e
}

type NewCancelled struct {
	Cause error
	stack []byte
}

func (e NewCancelled) Error() string    { return fmt.Sprintf("case split cancelled: %v", e.Cause) }
func (e NewCancelled) Unwrap() error    { return e.Cause }
func (e NewCancelled) Code() ErrCode    { return Cancelled }
func (e NewCancelled) getStack() []byte { return e.stack }
func (e NewCancelled) withStack(stack []byte) SplitError {
	e.stack = stack
	return e
}

// NewInvariantViolation is an unreachable state of the engine: a bug, not a data condition.
// File and Line point at the code that detected it.
type NewInvariantViolation struct {
	Message string
	File    string
	Line    int
	stack   []byte
}

func (e NewInvariantViolation) Error() string {
	return fmt.Sprintf("%s:%d: invariant violated: %s", e.File, e.Line, e.Message)
}
func (e NewInvariantViolation) Code() ErrCode    { return InvariantViolation }
func (e NewInvariantViolation) getStack() []byte { return e.stack }
func (e NewInvariantViolation) withStack(stack []byte) SplitError {
	e.stack = stack
	return e
}

// Invariant builds a NewInvariantViolation pointing at its caller
func Invariant(format string, args ...any) SplitError {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	return New(NewInvariantViolation{
		Message: fmt.Sprintf(format, args...),
		File:    file,
		Line:    line,
	})
}

// LogAttr renders err for slog, with its code when it is a SplitError
func LogAttr(err error) slog.Attr {
	var splitErr SplitError
	if As(err, &splitErr) {
		return slog.Group("error", slog.String("msg", FormatWithCode(splitErr)), slog.String("code", splitErr.Code().String()))
	}
	return slog.String("error", err.Error())
}
