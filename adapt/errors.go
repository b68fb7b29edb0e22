package adapt

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when a wrapper is called with a different number
	// of arguments than it has converters. Nothing is forwarded.
	ErrArity = errors.New("adapt: arity mismatch")

	// ErrNoEntry is returned when calling an entry a class does not define.
	ErrNoEntry = errors.New("adapt: no such entry")

	// ErrUnexpectedType is returned when an argument or receiver does not
	// have the type an entry expects.
	ErrUnexpectedType = errors.New("adapt: unexpected argument type")
)

// As asserts v to T. A nil v yields the zero T, so absent optional
// arguments pass through as nil pointers, slices and interfaces.
func As[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, v, (*T)(nil))
	}
	return t, nil
}
