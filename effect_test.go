package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deferkit/effect"
)

func TestEffect_OnReturnsNewEffect(t *testing.T) {
	base := effect.New("intent")

	chained := base.OnSuccess(func(v any) (any, error) { return v, nil })

	if len(base.Callbacks()) != 0 {
		t.Fatalf("expected original effect to stay empty, got %d callbacks", len(base.Callbacks()))
	}
	if len(chained.Callbacks()) != 1 {
		t.Fatalf("expected 1 callback on derived effect, got %d", len(chained.Callbacks()))
	}
	if chained.Intent() != "intent" {
		t.Fatalf("expected intent to carry over, got %v", chained.Intent())
	}
}

func TestEffect_CallbackOrderIsAttachmentOrder(t *testing.T) {
	var order []int
	eff := effect.New(struct{}{})
	for i := 0; i < 3; i++ {
		i := i
		eff = eff.OnSuccess(func(v any) (any, error) {
			order = append(order, i)
			return v, nil
		})
	}

	cbs := eff.Callbacks()
	assert.Len(t, cbs, 3)
	for _, cb := range cbs {
		_, err := cb.Success(nil)
		assert.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestEffect_WithCallbacksCopiesSlice(t *testing.T) {
	cbs := []effect.Callback{
		{Success: func(v any) (any, error) { return v, nil }},
	}
	eff := effect.WithCallbacks("intent", cbs)

	cbs[0] = effect.Callback{}

	got := eff.Callbacks()
	assert.Len(t, got, 1)
	assert.NotNil(t, got[0].Success, "mutating the input slice must not reach the effect")
}

func TestEffect_CallbacksReturnsCopy(t *testing.T) {
	eff := effect.New(nil).OnSuccess(func(v any) (any, error) { return v, nil })

	got := eff.Callbacks()
	got[0] = effect.Callback{}

	assert.NotNil(t, eff.Callbacks()[0].Success)
}

func TestEffect_IDStableAcrossChaining(t *testing.T) {
	base := effect.New(nil)
	derived := base.OnSuccess(func(v any) (any, error) { return v, nil })

	assert.NotEmpty(t, base.ID())
	assert.Equal(t, base.ID(), derived.ID())
}
