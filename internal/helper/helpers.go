package helper

import (
	"fmt"
)

// TypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func TypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// MustTypedValue is the panic-on-failure variant of TypedValueOf.
// Use when failure should be fatal (e.g., when the value's type is guaranteed
// by a precondition).
func MustTypedValue[T any](getFn func() (any, error)) T {
	res, err := TypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
