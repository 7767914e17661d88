package helper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deferkit/effect/internal/helper"
)

func TestTypedValueOf_Success(t *testing.T) {
	v, err := helper.TypedValueOf[int](func() (any, error) { return 42, nil })
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTypedValueOf_TypeMismatch(t *testing.T) {
	_, err := helper.TypedValueOf[int](func() (any, error) { return "nope", nil })
	assert.ErrorContains(t, err, "unexpected type")
}

func TestTypedValueOf_GetterError(t *testing.T) {
	_, err := helper.TypedValueOf[int](func() (any, error) { return nil, errors.New("boom") })
	assert.ErrorContains(t, err, "failed to get value")
}

func TestMustTypedValue_PanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() {
		helper.MustTypedValue[int](func() (any, error) { return "nope", nil })
	})
}
