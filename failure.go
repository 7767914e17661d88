package effect

import (
	"fmt"
	"runtime/debug"
)

// FailureKind discriminates how a Failure was produced.
type FailureKind string

const (
	// KindError marks a failure produced from a returned or injected error.
	KindError FailureKind = "error"

	// KindPanic marks a failure recovered from a panicking callback or
	// performer.
	KindPanic FailureKind = "panic"
)

// Failure is a captured failure token. It wraps the original error together
// with the stack captured at the point of failure, so the token can travel
// through an effect's error callbacks and still be surfaced to the final
// caller unchanged.
//
// Failure implements error; errors.Is and errors.As reach the wrapped error
// through Unwrap. Code that wants to re-raise a failure it was handed should
// return the same *Failure value, which preserves its identity end to end.
type Failure struct {
	kind  FailureKind
	err   error
	stack []byte
}

// NewFailure captures err into a failure token, recording the current stack.
func NewFailure(err error) *Failure {
	return &Failure{
		kind:  KindError,
		err:   err,
		stack: debug.Stack(),
	}
}

// CapturePanic converts a recovered panic value into a failure token.
func CapturePanic(recovered any) *Failure {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	return &Failure{
		kind:  KindPanic,
		err:   err,
		stack: debug.Stack(),
	}
}

// AsFailure returns err itself when it already is a *Failure, otherwise a
// fresh token wrapping it. Keeping the original token is what makes
// re-raising identity-preserving.
func AsFailure(err error) *Failure {
	if f, ok := err.(*Failure); ok {
		return f
	}
	return NewFailure(err)
}

// Kind reports how the failure was produced.
func (f *Failure) Kind() FailureKind { return f.kind }

// Unwrap exposes the original error to errors.Is / errors.As.
func (f *Failure) Unwrap() error { return f.err }

// Stack returns the stack captured when the failure was created.
func (f *Failure) Stack() string { return string(f.stack) }

func (f *Failure) Error() string {
	return fmt.Sprintf("effect failure (%s): %v", f.kind, f.err)
}
