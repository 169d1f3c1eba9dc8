package toolbelt

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrNameConflict = errors.New("tool name conflict")
	ErrValidation   = errors.New("argument validation failed")
	ErrMissingType  = errors.New("parameter type not specified")
	ErrSynthesis    = errors.New("input model synthesis failed")
	ErrNoRegistries = errors.New("no registries to merge")
	ErrNilRegistry  = errors.New("nil registry in merge input")
)

// ValidationError reports an invocation payload that does not satisfy the
// tool's input model (malformed JSON, missing required field, wrong type,
// failed constraint). It is a protocol error: Dispatch returns it to the
// caller instead of converting it into tool output.
type ValidationError struct {
	Tool   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) work.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// ExecutionError reports a failure inside the tool function itself (returned
// error or recovered panic). Dispatch catches it and returns its text as the
// tool's output so the conversation can continue; it never crosses the
// dispatch boundary as an error.
type ExecutionError struct {
	Tool string
	Err  error
}

// Error renders the exact text sent back to the LLM as tool output.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("Error executing tool %s: %v", e.Tool, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsExecutionError reports whether err is or wraps an ExecutionError.
func IsExecutionError(err error) bool {
	var xe *ExecutionError
	return errors.As(err, &xe)
}

// panicError wraps a recovered panic value so it can travel inside an
// ExecutionError.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
