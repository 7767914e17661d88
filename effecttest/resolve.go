package effecttest

import (
	"github.com/deferkit/effect"
	"github.com/deferkit/effect/internal/helper"
)

// Resolve supplies a successful result for an effect, allowing its callbacks
// to run.
//
// The chain is walked front to back and the outcome of the last callback is
// returned, unless some callback returns another *effect.Effect, in which
// case the outcome is pending on an effect representing that operation plus
// all the callbacks still queued after it.
//
// This allows driving code under test one asynchronous "turn" at a time:
//
//	out := effecttest.Resolve(doThing(), firstResult)
//	out = effecttest.Resolve(out.Next, secondResult)
//	v, err := effecttest.Resolve(out.Next, thirdResult).Unwrap()
//
// Resolve never performs anything; it only runs callbacks.
func Resolve(eff *effect.Effect, result any) Outcome {
	return resolve(eff, result, nil)
}

// ResolveError supplies a failure for an effect, so its error callbacks run.
func ResolveError(eff *effect.Effect, f *effect.Failure) Outcome {
	return resolve(eff, nil, f)
}

// Fail wraps err into a freshly captured failure token and resolves the
// effect with it, simulating the operation failing rather than succeeding.
// If err already is a *effect.Failure it propagates unchanged.
func Fail(eff *effect.Effect, err error) Outcome {
	return resolve(eff, nil, effect.AsFailure(err))
}

// ResolveStub resolves an effect whose intent is a StubIntent with the
// stub's pre-specified result. Calling it on any other intent is a
// programmer error and panics.
func ResolveStub(eff *effect.Effect) Outcome {
	stub := helper.MustTypedValue[StubIntent](func() (any, error) {
		return eff.Intent(), nil
	})
	return resolve(eff, stub.Result, nil)
}

// resolve is the engine: a pure walk of eff's callbacks from the front,
// carrying either a success value or a failure token.
//
// It deliberately mirrors effect.Perform's chain walking with one
// difference: when a callback returns a new effect, resolution stops and
// hands the merged effect back instead of performing it.
func resolve(eff *effect.Effect, value any, failure *effect.Failure) Outcome {
	callbacks := eff.Callbacks()
	for i, cb := range callbacks {
		// A nil side never changes mode: the payload passes through to the
		// same side of the next slot.
		if failure != nil {
			if cb.Error == nil {
				continue
			}
			value, failure = call(func() (any, error) { return cb.Error(failure) })
		} else {
			if cb.Success == nil {
				continue
			}
			v := value
			value, failure = call(func() (any, error) { return cb.Success(v) })
		}
		if failure == nil {
			if next, ok := value.(*effect.Effect); ok {
				// Wrap all the remaining callbacks around the new effect, so
				// that resolving it runs everything, not just the nested ones.
				merged := append(next.Callbacks(), callbacks[i+1:]...)
				return Pending(effect.WithCallbacks(next.Intent(), merged))
			}
		}
	}
	if failure != nil {
		return Failed(failure)
	}
	return Done(value)
}

// call invokes a callback, folding a returned error or a panic into a
// failure token. A returned *Failure keeps its identity.
func call(fn func() (any, error)) (value any, failure *effect.Failure) {
	defer func() {
		if r := recover(); r != nil {
			value, failure = nil, effect.CapturePanic(r)
		}
	}()
	value, err := fn()
	if err != nil {
		return nil, effect.AsFailure(err)
	}
	return value, nil
}
