package adapt

import (
	"fmt"
	"slices"
)

// Method is an entry point on a Prototype. Self is the receiver object the
// entry operates on.
type Method func(self any, args ...any) (any, error)

// Prototype is the method table shared by every object of one backend class.
// Tables are filled once at startup and only read afterwards; concurrent
// calls are safe once setup has finished.
type Prototype struct {
	name    string
	methods map[string]Method
}

// NewPrototype returns an empty method table for the named class.
func NewPrototype(name string) *Prototype {
	return &Prototype{name: name, methods: make(map[string]Method)}
}

// Name returns the class name.
func (p *Prototype) Name() string { return p.name }

// Define sets the entry for name. A nil m removes it.
func (p *Prototype) Define(name string, m Method) {
	if m == nil {
		delete(p.methods, name)
		return
	}
	p.methods[name] = m
}

// Method returns the entry for name, or nil if the class does not define it.
func (p *Prototype) Method(name string) Method {
	if p == nil {
		return nil
	}
	return p.methods[name]
}

// Has reports whether the class defines name.
func (p *Prototype) Has(name string) bool {
	return p.Method(name) != nil
}

// Call invokes the entry for name on self.
func (p *Prototype) Call(self any, name string, args ...any) (any, error) {
	m := p.Method(name)
	if m == nil {
		return nil, fmt.Errorf("%s.%s: %w", p.Name(), name, ErrNoEntry)
	}
	return m(self, args...)
}

// Names returns the defined entry names in sorted order.
func (p *Prototype) Names() []string {
	return namesOf(p.methods)
}

// Clone returns an independent copy of the table.
func (p *Prototype) Clone() *Prototype {
	c := NewPrototype(p.name)
	for name, m := range p.methods {
		c.methods[name] = m
	}
	return c
}

// namesOf returns the keys of m in sorted order.
func namesOf[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
