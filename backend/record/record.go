// Package record provides a backend that records every native call with
// its canonical arguments instead of rendering.
//
// Arguments are stored as received, except values the bridge reuses
// between calls (scissor and render-area rectangles, blend and clear
// colors), which are copied at call time.
package record

import (
	"slices"
	"sync"

	"github.com/gogpu/gfxbind/backend"
	"github.com/gogpu/gfxbind/native"
)

func init() {
	backend.Register(backend.NameRecord, func() backend.Backend {
		return New()
	})
}

// Call is one recorded native call.
type Call struct {
	Class  string
	Method string
	Args   []any
}

// Log is the ordered list of calls made on one device and its objects.
// It is safe for concurrent use.
type Log struct {
	mu    sync.Mutex
	calls []Call
}

func (l *Log) add(class, method string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, Call{Class: class, Method: method, Args: args})
}

// Calls returns a copy of the recorded calls.
func (l *Log) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

// Last returns the most recent call, or false if none was recorded.
func (l *Log) Last() (Call, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.calls) == 0 {
		return Call{}, false
	}
	return l.calls[len(l.calls)-1], true
}

// Methods returns "Class.Method" for every recorded call, in order.
func (l *Log) Methods() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.calls))
	for i, c := range l.calls {
		out[i] = c.Class + "." + c.Method
	}
	return out
}

// Reset drops every recorded call.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

// Backend creates recording devices.
type Backend struct {
	concepts native.Concept
	log      *Log
}

// Option configures a recording backend.
type Option func(*Backend)

// WithConcepts sets the concepts the backend claims. The default is
// native.ConceptAll.
func WithConcepts(c native.Concept) Option {
	return func(b *Backend) {
		b.concepts = c
	}
}

// WithLog makes every device of the backend record into l.
func WithLog(l *Log) Option {
	return func(b *Backend) {
		b.log = l
	}
}

// New returns a recording backend.
func New(opts ...Option) *Backend {
	b := &Backend{concepts: native.ConceptAll}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns backend.NameRecord.
func (b *Backend) Name() string             { return backend.NameRecord }
// Concepts returns the concepts set with WithConcepts, or all of them.
func (b *Backend) Concepts() native.Concept { return b.concepts }

// NewDevice returns a recording device. Devices share the backend's log
// when one was set with WithLog, and have their own otherwise.
func (b *Backend) NewDevice() (native.Device, error) {
	l := b.log
	if l == nil {
		l = &Log{}
	}
	return &Device{log: l}, nil
}
