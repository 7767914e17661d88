package effect_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deferkit/effect"
)

var errBoom = errors.New("boom")

func TestFailure_WrapsOriginalError(t *testing.T) {
	f := effect.NewFailure(fmt.Errorf("context: %w", errBoom))

	assert.Equal(t, effect.KindError, f.Kind())
	assert.True(t, errors.Is(f, errBoom))
	assert.Contains(t, f.Error(), "context: boom")
}

func TestFailure_CapturesStack(t *testing.T) {
	f := effect.NewFailure(errBoom)
	if !strings.Contains(f.Stack(), "TestFailure_CapturesStack") {
		t.Fatalf("expected capture site in stack, got:\n%s", f.Stack())
	}
}

func TestCapturePanic_NonErrorValue(t *testing.T) {
	f := effect.CapturePanic("boom")

	assert.Equal(t, effect.KindPanic, f.Kind())
	assert.EqualError(t, f.Unwrap(), "boom")
}

func TestCapturePanic_ErrorValue(t *testing.T) {
	f := effect.CapturePanic(errBoom)

	assert.Equal(t, effect.KindPanic, f.Kind())
	assert.True(t, errors.Is(f, errBoom))
}

func TestAsFailure_PreservesIdentity(t *testing.T) {
	f := effect.NewFailure(errBoom)

	assert.Same(t, f, effect.AsFailure(f))
	assert.NotSame(t, f, effect.AsFailure(errBoom))
}
