package effecttest

import (
	"context"
	"fmt"

	"github.com/deferkit/effect"
)

// NotSynchronousError reports that performing an effect completed without
// delivering any result to its terminal callbacks: the intent, or some
// effect returned by a callback, deferred delivery instead of completing
// inline, which SyncPerform cannot support.
type NotSynchronousError struct {
	Effect *effect.Effect
}

func (e *NotSynchronousError) Error() string {
	return fmt.Sprintf("performing %v was not synchronous", e.Effect)
}

// SyncPerform performs an effect and returns the value its last callback
// returns. A failure that survives the whole chain is returned as the
// propagated *effect.Failure.
//
// This requires the effect, and every effect returned from any of its
// callbacks, to be synchronous: every performer involved must deliver to the
// box before returning. If that assumption is broken the result is a
// *NotSynchronousError, never a silent default.
func SyncPerform(ctx context.Context, d effect.Dispatcher, eff *effect.Effect, opts ...effect.Option) (any, error) {
	var successes []any
	var failures []*effect.Failure

	terminal := eff.On(effect.Callback{
		Success: func(v any) (any, error) {
			successes = append(successes, v)
			return v, nil
		},
		Error: func(f *effect.Failure) (any, error) {
			failures = append(failures, f)
			return nil, nil
		},
	})

	effect.Perform(ctx, d, terminal, opts...)

	switch {
	case len(successes) > 0:
		return successes[0], nil
	case len(failures) > 0:
		return nil, failures[0]
	default:
		return nil, &NotSynchronousError{Effect: terminal}
	}
}
