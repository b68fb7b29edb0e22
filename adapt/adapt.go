// Package adapt installs converting wrappers over backend entry points.
//
// Each backend class exposes its entry points through a Prototype. Install
// moves an entry's existing method to a renamed slot ("_" + name)
// and puts a wrapper in its place. The wrapper runs every positional
// argument through its converter and forwards the converted list to the
// renamed original, returning its result unchanged.
package adapt

import (
	"fmt"
	"slices"

	"github.com/gogpu/gfxbind/internal/logging"
)

// Converter turns one caller argument into the canonical argument the
// native entry expects.
type Converter func(arg any) (any, error)

// Selector converts a single argument and reports the mode flag forwarded
// as an extra trailing argument.
type Selector func(arg any) (converted any, mode bool, err error)

// Wrapper builds the replacement entry for a prototype.
type Wrapper func(p *Prototype) Method

// RenamedName returns the slot that keeps the original entry for name.
func RenamedName(name string) string {
	return "_" + name
}

// Adapt returns a wrapper that converts argument i with convs[i] and
// forwards the results to target. If any converter is nil the concept is
// unsupported and Adapt returns nil, leaving the entry unwrapped.
func Adapt(target string, convs ...Converter) Wrapper {
	for _, c := range convs {
		if c == nil {
			return nil
		}
	}
	convs = slices.Clone(convs)
	return func(p *Prototype) Method {
		return func(self any, args ...any) (any, error) {
			if len(args) != len(convs) {
				return nil, fmt.Errorf("%s: %w: got %d arguments, want %d", target, ErrArity, len(args), len(convs))
			}
			converted := make([]any, len(convs))
			for i, conv := range convs {
				v, err := conv(args[i])
				if err != nil {
					return nil, fmt.Errorf("%s: argument %d: %w", target, i, err)
				}
				converted[i] = v
			}
			return p.Call(self, target, converted...)
		}
	}
}

// Dispatch returns a wrapper for single-argument entries whose converter
// depends on the argument. The mode reported by sel is forwarded to target
// after the converted argument. A nil sel yields a nil wrapper.
func Dispatch(target string, sel Selector) Wrapper {
	if sel == nil {
		return nil
	}
	return func(p *Prototype) Method {
		return func(self any, args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s: %w: got %d arguments, want 1", target, ErrArity, len(args))
			}
			v, mode, err := sel(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", target, err)
			}
			return p.Call(self, target, v, mode)
		}
	}
}

// Install replaces each entry of p named in replacements with its wrapper,
// keeping the original under RenamedName. Entries p does not define and nil
// wrappers are skipped. An entry whose renamed slot is already taken was
// installed before and is skipped too, so running Install twice never wraps
// a wrapper. It returns the names that were installed, sorted.
func Install(p *Prototype, replacements map[string]Wrapper) []string {
	if p == nil {
		return nil
	}
	log := logging.Logger()
	var installed []string
	for _, name := range namesOf(replacements) {
		w := replacements[name]
		orig := p.Method(name)
		renamed := RenamedName(name)
		switch {
		case orig == nil:
			log.Debug("adapt: no native entry, skipped", "class", p.Name(), "method", name)
			continue
		case w == nil:
			log.Debug("adapt: concept unsupported, left unwrapped", "class", p.Name(), "method", name)
			continue
		case p.Has(renamed):
			log.Debug("adapt: already installed", "class", p.Name(), "method", name)
			continue
		}
		p.Define(renamed, orig)
		p.Define(name, w(p))
		installed = append(installed, name)
	}
	log.Debug("adapt: installed", "class", p.Name(), "methods", installed)
	return installed
}

// InstallAll applies the same replacements to every prototype present.
// Nil prototypes stand for classes absent from the build and are skipped.
// It returns the total number of entries installed.
func InstallAll(protos []*Prototype, replacements map[string]Wrapper) int {
	n := 0
	for _, p := range protos {
		n += len(Install(p, replacements))
	}
	return n
}
