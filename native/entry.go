package native

import (
	"fmt"

	"github.com/gogpu/gfxbind/adapt"
)

// Entry names shared by every class.
const (
	EntryInitialize = "initialize"
	EntryDestroy    = "destroy"
)

func receiver[S any](self any) (S, error) {
	s, ok := self.(S)
	if !ok {
		var want S
		return want, fmt.Errorf("%w: receiver %T, want %T", adapt.ErrUnexpectedType, self, &want)
	}
	return s, nil
}

func arity(args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: got %d arguments, want %d", adapt.ErrArity, len(args), n)
	}
	return nil
}

func result[R any](r R, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

// call0 binds a method without arguments and without a result.
func call0[S any](fn func(S) error) adapt.Method {
	return func(self any, args ...any) (any, error) {
		s, err := receiver[S](self)
		if err != nil {
			return nil, err
		}
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return nil, fn(s)
	}
}

// call1 binds a one-argument method without a result.
func call1[S, A any](fn func(S, A) error) adapt.Method {
	return func(self any, args ...any) (any, error) {
		s, err := receiver[S](self)
		if err != nil {
			return nil, err
		}
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		a, err := adapt.As[A](args[0])
		if err != nil {
			return nil, err
		}
		return nil, fn(s, a)
	}
}

// create binds a one-argument method returning a new object.
func create[S, A, R any](fn func(S, A) (R, error)) adapt.Method {
	return func(self any, args ...any) (any, error) {
		s, err := receiver[S](self)
		if err != nil {
			return nil, err
		}
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		a, err := adapt.As[A](args[0])
		if err != nil {
			return nil, err
		}
		return result(fn(s, a))
	}
}

// copy3 binds the buffer-to-texture upload shape.
func copy3[S, B, T, R any](fn func(S, B, T, R) error) adapt.Method {
	return func(self any, args ...any) (any, error) {
		s, err := receiver[S](self)
		if err != nil {
			return nil, err
		}
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		b, err := adapt.As[B](args[0])
		if err != nil {
			return nil, err
		}
		t, err := adapt.As[T](args[1])
		if err != nil {
			return nil, err
		}
		r, err := adapt.As[R](args[2])
		if err != nil {
			return nil, err
		}
		return nil, fn(s, b, t, r)
	}
}

func destroy[S interface{ Destroy() }]() adapt.Method {
	return func(self any, args ...any) (any, error) {
		s, err := receiver[S](self)
		if err != nil {
			return nil, err
		}
		s.Destroy()
		return nil, nil
	}
}
