package effect

import (
	"fmt"

	"github.com/google/uuid"
)

// Intent is an opaque description of an operation to perform.
// Any value can be an intent; the Dispatcher decides who performs it.
type Intent any

// Callback is one slot in an effect's continuation chain. Either side may be
// nil, meaning the value (or failure) passes through to the next slot
// unchanged, without switching between success and error mode.
type Callback struct {
	Success func(value any) (any, error)
	Error   func(f *Failure) (any, error)
}

// Effect is an intent plus an ordered chain of callbacks.
//
// Effects are immutable: On and friends return a new Effect and never touch
// the receiver, so a single effect value can safely be resolved or performed
// against several results.
type Effect struct {
	id        string
	intent    Intent
	callbacks []Callback
}

// New returns an effect wrapping intent with an empty callback chain.
func New(intent Intent) *Effect {
	return &Effect{
		id:     uuid.New().String(),
		intent: intent,
	}
}

// WithCallbacks returns an effect wrapping intent with the given chain.
// The slice is copied; insertion order is attachment order.
func WithCallbacks(intent Intent, callbacks []Callback) *Effect {
	cbs := make([]Callback, len(callbacks))
	copy(cbs, callbacks)
	return &Effect{
		id:        uuid.New().String(),
		intent:    intent,
		callbacks: cbs,
	}
}

// ID returns the effect's correlation id, used in performer logs.
func (e *Effect) ID() string { return e.id }

// Intent returns the wrapped intent.
func (e *Effect) Intent() Intent { return e.intent }

// Callbacks returns a copy of the callback chain.
func (e *Effect) Callbacks() []Callback {
	cbs := make([]Callback, len(e.callbacks))
	copy(cbs, e.callbacks)
	return cbs
}

// On returns a new effect with cb appended to the chain.
func (e *Effect) On(cb Callback) *Effect {
	cbs := make([]Callback, len(e.callbacks), len(e.callbacks)+1)
	copy(cbs, e.callbacks)
	return &Effect{
		id:        e.id,
		intent:    e.intent,
		callbacks: append(cbs, cb),
	}
}

// OnSuccess returns a new effect whose chain ends with a success-only slot.
func (e *Effect) OnSuccess(fn func(value any) (any, error)) *Effect {
	return e.On(Callback{Success: fn})
}

// OnError returns a new effect whose chain ends with an error-only slot.
func (e *Effect) OnError(fn func(f *Failure) (any, error)) *Effect {
	return e.On(Callback{Error: fn})
}

func (e *Effect) String() string {
	return fmt.Sprintf("Effect(%v, %d callbacks)", e.intent, len(e.callbacks))
}
