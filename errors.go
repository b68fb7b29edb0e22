package gfxbind

import "errors"

var (
	// ErrNoDevice is returned when a backend created no device object.
	ErrNoDevice = errors.New("gfxbind: backend returned no device")

	// ErrUnexpectedResult is returned when a native entry returns an object
	// that does not implement the native interface of its class.
	ErrUnexpectedResult = errors.New("gfxbind: unexpected native result")

	// ErrDestroyed is returned by calls on an object after Destroy.
	ErrDestroyed = errors.New("gfxbind: object destroyed")
)
