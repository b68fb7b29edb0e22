package record

import (
	"bytes"
	"slices"
	"testing"

	"github.com/gogpu/gfxbind/backend"
	"github.com/gogpu/gfxbind/canon"
	"github.com/gogpu/gfxbind/native"
)

func newDevice(t *testing.T, opts ...Option) *Device {
	t.Helper()
	d, err := New(opts...).NewDevice()
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	return d.(*Device)
}

func TestRegistered(t *testing.T) {
	b := backend.Get(backend.NameRecord)
	if b == nil {
		t.Fatal("record backend not registered")
	}
	if b.Concepts() != native.ConceptAll {
		t.Errorf("Concepts() = %v, want all", b.Concepts())
	}
}

func TestWithConcepts(t *testing.T) {
	b := New(WithConcepts(native.ConceptTexImages))
	if b.Concepts() != native.ConceptTexImages {
		t.Errorf("Concepts() = %v", b.Concepts())
	}
}

func TestSharedLog(t *testing.T) {
	var l Log
	b := New(WithLog(&l))
	d1, _ := b.NewDevice()
	d2, _ := b.NewDevice()
	d1.Destroy()
	d2.Destroy()
	if got := l.Methods(); !slices.Equal(got, []string{"Device.destroy", "Device.destroy"}) {
		t.Errorf("Methods() = %v", got)
	}
	l.Reset()
	if _, ok := l.Last(); ok {
		t.Error("Last() after Reset reported a call")
	}
}

func TestCallsThroughEntries(t *testing.T) {
	d := newDevice(t)
	c := native.Build(backend.NameRecord, native.ConceptAll)

	info := &canon.BufferInfo{Size: 8}
	nb, err := c.Device.Call(d, "createBuffer", info)
	if err != nil {
		t.Fatal(err)
	}
	buf := nb.(*Buffer)
	if _, err := c.Buffer.Call(buf, "update", []byte{1, 2, 3, 4}, uint32(6), uint32(4)); err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0, 0, 0, 0, 1, 2, 3, 4}
	if !bytes.Equal(buf.Data, want) {
		t.Errorf("Data = %v, want %v", buf.Data, want)
	}

	sh, err := c.Device.Call(d, "createShader", &canon.ShaderInfo{Name: "s"})
	if err != nil {
		t.Fatal(err)
	}
	id, _ := c.Shader.Call(sh, "id")
	if id != sh.(*Shader).ID {
		t.Errorf("id = %v, want object ID %d", id, sh.(*Shader).ID)
	}

	got := d.Log().Methods()
	wantCalls := []string{"Device.createBuffer", "Buffer.update", "Device.createShader"}
	if !slices.Equal(got, wantCalls) {
		t.Errorf("Methods() = %v, want %v", got, wantCalls)
	}
	first := d.Log().Calls()[0]
	if first.Args[0] != info {
		t.Error("createBuffer did not receive the info pointer unchanged")
	}
}

func TestUpdateShortSource(t *testing.T) {
	d := newDevice(t)
	b, _ := d.CreateBuffer(&canon.BufferInfo{Size: 4})
	if err := b.Update([]byte{1}, 0, 4); err == nil {
		t.Error("Update with short source should fail")
	}
}

func TestTextureReinitialize(t *testing.T) {
	d := newDevice(t)
	nt, _ := d.CreateTexture(&canon.TextureInfo{Format: 0x16})
	tex := nt.(*Texture)
	if tex.IsView() {
		t.Fatal("fresh texture reported as view")
	}
	if err := tex.InitializeView(&canon.TextureViewInfo{Format: 0x17}); err != nil {
		t.Fatal(err)
	}
	if !tex.IsView() || tex.Format() != 0x17 {
		t.Errorf("after InitializeView: view=%v format=%v", tex.IsView(), tex.Format())
	}
	if err := tex.Initialize(&canon.TextureInfo{Format: 0x16}); err != nil {
		t.Fatal(err)
	}
	if tex.IsView() {
		t.Error("Initialize did not clear the view")
	}
}

func TestScratchArgumentsCopied(t *testing.T) {
	d := newDevice(t)
	cb, _ := d.CreateCommandBuffer(nil)
	r := &canon.Rect{Width: 10, Height: 10}
	if err := cb.SetScissor(r); err != nil {
		t.Fatal(err)
	}
	r.Width = 99
	last, _ := d.Log().Last()
	if got := last.Args[0].(canon.Rect); got.Width != 10 {
		t.Errorf("recorded scissor width = %d, want 10", got.Width)
	}
}
