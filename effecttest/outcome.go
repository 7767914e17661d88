package effecttest

import (
	"fmt"

	"github.com/deferkit/effect"
)

// OutcomeKind discriminates the result of one resolution step.
type OutcomeKind int

const (
	// OutcomeDone means the chain ran to completion in success mode.
	OutcomeDone OutcomeKind = iota

	// OutcomeFailed means the chain was exhausted with an unconsumed failure.
	OutcomeFailed

	// OutcomePending means a callback switched to a new effect; the remaining
	// chain is queued behind it in Next.
	OutcomePending
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDone:
		return "done"
	case OutcomeFailed:
		return "failed"
	case OutcomePending:
		return "pending"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the terminal result of resolving an effect against one result:
// a plain value, a propagated failure, or a new effect still to be resolved.
type Outcome struct {
	Kind    OutcomeKind
	Value   any
	Failure *effect.Failure
	Next    *effect.Effect
}

// Done wraps a final value.
func Done(value any) Outcome {
	return Outcome{Kind: OutcomeDone, Value: value}
}

// Failed wraps a propagated failure.
func Failed(f *effect.Failure) Outcome {
	return Outcome{Kind: OutcomeFailed, Failure: f}
}

// Pending wraps the effect representing what is left to resolve.
func Pending(next *effect.Effect) Outcome {
	return Outcome{Kind: OutcomePending, Next: next}
}

// Unwrap flattens the outcome into Go's usual value/error pair. A failed
// outcome yields the propagated *Failure itself, so the caller sees the
// identical token. Unwrapping a pending outcome is a programmer error: the
// chain still needs a result, resolve it first.
func (o Outcome) Unwrap() (any, error) {
	switch o.Kind {
	case OutcomeDone:
		return o.Value, nil
	case OutcomeFailed:
		return nil, o.Failure
	default:
		panic(fmt.Sprintf("effecttest: cannot unwrap %s outcome of %v", o.Kind, o.Next))
	}
}
