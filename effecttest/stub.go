package effecttest

import (
	"context"

	"github.com/deferkit/effect"
)

// StubIntent is an intent that yields a pre-specified result, for seeding
// test effects that need no real backing operation. It is self-performing
// and synchronous: the result is delivered to the box inline.
type StubIntent struct {
	Result any
}

func (s StubIntent) PerformEffect(_ context.Context, _ effect.Dispatcher, box *effect.Box) {
	box.Succeed(s.Result)
}

func (StubIntent) Synchronous() {}

// NewStubEffect returns an effect wrapping a StubIntent with the given
// result and no callbacks.
func NewStubEffect(result any) *effect.Effect {
	return effect.New(StubIntent{Result: result})
}
