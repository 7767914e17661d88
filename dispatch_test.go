package effect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deferkit/effect"
)

type readIntent struct{ Key string }

type syncReadPerformer struct{ values map[string]any }

func (p syncReadPerformer) Perform(_ context.Context, _ effect.Dispatcher, intent effect.Intent, box *effect.Box) {
	key := intent.(readIntent).Key
	v, ok := p.values[key]
	if !ok {
		box.Fail(effect.NewFailure(errors.New("key not found: " + key)))
		return
	}
	box.Succeed(v)
}

func (syncReadPerformer) Synchronous() {}

func TestTypeDispatcher_LookupByIntentType(t *testing.T) {
	td := effect.NewTypeDispatcher()
	td.Register(readIntent{}, syncReadPerformer{values: map[string]any{"foo": 123}})

	p, err := td.Lookup(readIntent{Key: "foo"})
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestTypeDispatcher_MissReturnsErrNoPerformer(t *testing.T) {
	td := effect.NewTypeDispatcher()

	_, err := td.Lookup(readIntent{Key: "foo"})
	assert.ErrorIs(t, err, effect.ErrNoPerformer)
}

func TestTypeDispatcher_SelfPerformingFallback(t *testing.T) {
	td := effect.NewTypeDispatcher()

	p, err := td.Lookup(effect.FuncIntent{Fn: func(context.Context) (any, error) { return 1, nil }})
	require.NoError(t, err)

	_, isSync := p.(effect.SynchronousPerformer)
	assert.True(t, isSync, "FuncIntent's performer must carry the synchronous capability")
}

func TestTypeDispatcher_DuplicateRegistrationPanics(t *testing.T) {
	td := effect.NewTypeDispatcher()
	td.Register(readIntent{}, syncReadPerformer{})

	assert.Panics(t, func() {
		td.Register(readIntent{}, syncReadPerformer{})
	})
}

func TestTypeDispatcher_RegisterSynchronousChecksCapability(t *testing.T) {
	td := effect.NewTypeDispatcher()

	notSync := effect.PerformerFunc(func(_ context.Context, _ effect.Dispatcher, _ effect.Intent, box *effect.Box) {
		box.Succeed(nil)
	})
	assert.Panics(t, func() {
		td.RegisterSynchronous(readIntent{}, notSync)
	})

	assert.NotPanics(t, func() {
		td.RegisterSynchronous(readIntent{}, syncReadPerformer{})
	})
}
