package scratch

import (
	"testing"

	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/desc"
)

func TestRectOverwritesInPlace(t *testing.T) {
	p := New()
	first := p.Rect(&desc.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	second := p.Rect(&desc.Rect{X: 5, Y: 5, Width: 20, Height: 20})

	if first != second {
		t.Error("Rect returned a different holder on the second call")
	}
	if want := (canon.Rect{X: 5, Y: 5, Width: 20, Height: 20}); *second != want {
		t.Errorf("holder = %+v, want %+v", *second, want)
	}
}

func TestRectNilKeepsResident(t *testing.T) {
	p := New()
	held := p.Rect(&desc.Rect{X: 1, Y: 2, Width: 3, Height: 4})
	got := p.Rect(nil)
	if got != held {
		t.Error("Rect(nil) returned a different holder")
	}
	if want := (canon.Rect{X: 1, Y: 2, Width: 3, Height: 4}); *got != want {
		t.Errorf("Rect(nil) = %+v, want %+v", *got, want)
	}
}

func TestColorOverwritesEveryField(t *testing.T) {
	p := New()
	first := p.Color(&desc.Color{R: 1, G: 1, B: 1, A: 1})
	second := p.Color(&desc.Color{R: 0.5})
	if first != second {
		t.Error("Color returned a different holder on the second call")
	}
	if want := (canon.Color{R: 0.5}); *second != want {
		t.Errorf("holder = %+v, want %+v (no residue from the first call)", *second, want)
	}
	if got := p.Color(nil); *got != (canon.Color{R: 0.5}) {
		t.Errorf("Color(nil) = %+v, want resident value", *got)
	}
}

func TestColorsGrowAndReuse(t *testing.T) {
	p := New()
	two := p.Colors([]desc.Color{{R: 1}, {G: 1}})
	if len(two) != 2 {
		t.Fatalf("len = %d, want 2", len(two))
	}
	slot0 := two[0]

	three := p.Colors([]desc.Color{{B: 1}, {A: 1}, {R: 0.25}})
	if len(three) != 3 {
		t.Fatalf("len = %d, want 3", len(three))
	}
	if three[0] != slot0 {
		t.Error("slot 0 holder changed identity after growth")
	}
	if *three[0] != (canon.Color{B: 1}) || *three[2] != (canon.Color{R: 0.25}) {
		t.Errorf("holders = %+v %+v, want second input", *three[0], *three[2])
	}

	one := p.Colors([]desc.Color{{R: 0.75}})
	if len(one) != 1 || one[0] != slot0 {
		t.Errorf("shorter input should reuse slot 0, got len %d", len(one))
	}
	if all := p.Colors(nil); len(all) != 3 {
		t.Errorf("Colors(nil) len = %d, want every resident holder (3)", len(all))
	}
}

func TestColorsAppendDoesNotClobberHolders(t *testing.T) {
	p := New()
	slot1 := p.Colors([]desc.Color{{R: 1}, {G: 1}, {B: 1}})[1]

	one := p.Colors([]desc.Color{{A: 1}})
	if cap(one) != 1 {
		t.Errorf("cap = %d, want 1", cap(one))
	}
	_ = append(one, &canon.Color{R: 9})

	if got := p.Colors([]desc.Color{{}, {G: 0.5}})[1]; got != slot1 {
		t.Error("append to a returned slice replaced a resident holder")
	}
	all := p.Colors(nil)
	if len(all) != 3 || cap(all) != 3 {
		t.Errorf("Colors(nil) len, cap = %d, %d; want 3, 3", len(all), cap(all))
	}
}

func TestPoolsAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Rect(&desc.Rect{Width: 1})
	if got := b.Rect(nil); *got != (canon.Rect{}) {
		t.Errorf("second pool saw %+v, want zero", *got)
	}
}

func BenchmarkRect(b *testing.B) {
	p := New()
	r := &desc.Rect{Width: 640, Height: 480}
	b.ReportAllocs()
	for b.Loop() {
		p.Rect(r)
	}
}

func BenchmarkColors(b *testing.B) {
	p := New()
	cs := []desc.Color{{R: 1}, {G: 1}, {B: 1}}
	b.ReportAllocs()
	for b.Loop() {
		p.Colors(cs)
	}
}
