package gfxbind

import (
	"fmt"

	"github.com/gogpu/gfxbind/adapt"
	"github.com/gogpu/gfxbind/native"
)

// object is the state shared by every facade: the native object and the
// entry table of its class.
type object struct {
	bridge *Bridge
	proto  *adapt.Prototype
	native any
}

// call invokes the named entry on the native object.
func (o *object) call(name string, args ...any) (any, error) {
	if o.native == nil {
		return nil, fmt.Errorf("%s.%s: %w", o.proto.Name(), name, ErrDestroyed)
	}
	return o.proto.Call(o.native, name, args...)
}

// exec invokes an entry that returns no value.
func (o *object) exec(name string, args ...any) error {
	_, err := o.call(name, args...)
	return err
}

// Supports reports whether the backend defines the named entry for this
// object's class. Entries of unsupported concepts are absent.
func (o *object) Supports(name string) bool {
	return o.proto.Has(name)
}

// Destroy releases the native object. Later calls fail with ErrDestroyed;
// a second Destroy is a no-op.
func (o *object) Destroy() error {
	if o.native == nil {
		return nil
	}
	err := o.exec(native.EntryDestroy)
	o.native = nil
	return err
}

// child wraps a native object returned by entry into an object of class
// proto.
func (o *object) child(proto *adapt.Prototype, entry string, args ...any) (object, error) {
	v, err := o.call(entry, args...)
	if err != nil {
		return object{}, err
	}
	if v == nil {
		return object{}, fmt.Errorf("%s.%s: %w", o.proto.Name(), entry, ErrUnexpectedResult)
	}
	return object{bridge: o.bridge, proto: proto, native: v}, nil
}
