// Package scratch holds reusable canonical values for the small records
// passed on every draw: scissor rectangles, blend constants and clear colors.
package scratch

import (
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/desc"
)

// Pool owns one Rect holder, one Color holder and a growable array of Color
// holders. Each conversion overwrites a holder in place and returns it, so
// the value is only valid until the next conversion of the same kind.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	rect   canon.Rect
	color  canon.Color
	colors []*canon.Color
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Rect copies r into the rectangle holder and returns the holder. A nil r
// returns the holder unchanged.
func (p *Pool) Rect(r *desc.Rect) *canon.Rect {
	if r != nil {
		p.rect = canon.Rect(*r)
	}
	return &p.rect
}

// Color copies c into the color holder and returns the holder. A nil c
// returns the holder unchanged.
func (p *Pool) Color(c *desc.Color) *canon.Color {
	if c != nil {
		p.color = canon.Color(*c)
	}
	return &p.color
}

// Colors copies cs into the color array holders, allocating holders only for
// slots never used before, and returns the holders for the first len(cs)
// slots. A nil cs returns every resident holder unchanged.
func (p *Pool) Colors(cs []desc.Color) []*canon.Color {
	if cs == nil {
		return p.colors[:len(p.colors):len(p.colors)]
	}
	for len(p.colors) < len(cs) {
		p.colors = append(p.colors, new(canon.Color))
	}
	for i := range cs {
		*p.colors[i] = canon.Color(cs[i])
	}
	return p.colors[:len(cs):len(cs)]
}
