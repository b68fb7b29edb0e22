package native

import (
	"strings"

	"github.com/gogpu/gfxbind/convert"
)

// Concept is a set of optional capabilities a backend supports.
type Concept uint32

const (
	// ConceptBindingLayout: the device creates explicit binding layouts.
	ConceptBindingLayout Concept = 1 << iota
	// ConceptTexImages: the device uploads decoded images directly.
	ConceptTexImages
	// ConceptReinitialize: objects can be re-initialized in place.
	ConceptReinitialize

	ConceptNone Concept = 0
	ConceptAll          = ConceptBindingLayout | ConceptTexImages | ConceptReinitialize
)

// Has reports whether c includes every concept in x.
func (c Concept) Has(x Concept) bool { return c&x == x }

// Unsupported lists the converters a backend with concepts c cannot use.
func (c Concept) Unsupported() []string {
	var names []string
	if !c.Has(ConceptBindingLayout) {
		names = append(names, convert.NameBindingLayoutInfo)
	}
	if !c.Has(ConceptTexImages) {
		names = append(names, convert.NameTexImagesToBuffers)
	}
	return names
}

// String lists the set concepts joined with "|", or "none" when empty.
func (c Concept) String() string {
	if c == ConceptNone {
		return "none"
	}
	var parts []string
	if c.Has(ConceptBindingLayout) {
		parts = append(parts, "bindingLayout")
	}
	if c.Has(ConceptTexImages) {
		parts = append(parts, "texImages")
	}
	if c.Has(ConceptReinitialize) {
		parts = append(parts, "reinitialize")
	}
	return strings.Join(parts, "|")
}
