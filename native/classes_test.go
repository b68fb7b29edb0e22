package native

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/adapt"
	"github.com/gogpu/gfxbind/canon"
)

// fakeDevice overrides the entries under test; other methods panic via the
// nil embedded interface.
type fakeDevice struct {
	Device
	created []string
}

type fakeTexture struct {
	view     bool
	reinited string
}

func (t *fakeTexture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }
func (t *fakeTexture) IsView() bool                   { return t.view }
func (t *fakeTexture) Destroy()                       {}
func (t *fakeTexture) Initialize(*canon.TextureInfo) error {
	t.reinited = "texture"
	return nil
}
func (t *fakeTexture) InitializeView(*canon.TextureViewInfo) error {
	t.reinited = "view"
	return nil
}

func (d *fakeDevice) CreateTexture(info *canon.TextureInfo) (Texture, error) {
	d.created = append(d.created, "texture")
	return &fakeTexture{}, nil
}

func (d *fakeDevice) CreateTextureView(info *canon.TextureViewInfo) (Texture, error) {
	d.created = append(d.created, "view")
	return &fakeTexture{view: true}, nil
}

var errNoBuffer = errors.New("no buffer")

func (d *fakeDevice) CreateBuffer(info *canon.BufferInfo) (Buffer, error) {
	return nil, errNoBuffer
}

type fakeShader struct{ hash uint32 }

func (s fakeShader) Hash() uint32 { return s.hash }
func (s fakeShader) Destroy()     {}

func TestBuildConcepts(t *testing.T) {
	tests := []struct {
		concepts      Concept
		bindingLayout bool
		texImages     bool
		initialize    bool
	}{
		{ConceptNone, false, false, false},
		{ConceptBindingLayout, true, false, false},
		{ConceptTexImages, false, true, false},
		{ConceptReinitialize, false, false, true},
		{ConceptAll, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.concepts.String(), func(t *testing.T) {
			c := Build("fake", tt.concepts)
			if got := c.BindingLayout != nil; got != tt.bindingLayout {
				t.Errorf("BindingLayout class present = %v, want %v", got, tt.bindingLayout)
			}
			if got := c.Device.Has("createBindingLayout"); got != tt.bindingLayout {
				t.Errorf("createBindingLayout present = %v, want %v", got, tt.bindingLayout)
			}
			if got := c.Device.Has("copyTexImagesToTexture"); got != tt.texImages {
				t.Errorf("copyTexImagesToTexture present = %v, want %v", got, tt.texImages)
			}
			if got := c.Texture.Has(EntryInitialize); got != tt.initialize {
				t.Errorf("Texture.initialize present = %v, want %v", got, tt.initialize)
			}
			if !c.Device.Has(EntryInitialize) {
				t.Error("Device.initialize must always be present")
			}
			if len(c.All()) != 12 {
				t.Errorf("All() = %d tables, want 12", len(c.All()))
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	if got := ConceptAll.Unsupported(); len(got) != 0 {
		t.Errorf("ConceptAll.Unsupported() = %v, want none", got)
	}
	got := ConceptReinitialize.Unsupported()
	want := []string{"BindingLayoutInfo", "texImagesToBuffers"}
	if !slices.Equal(got, want) {
		t.Errorf("Unsupported() = %v, want %v", got, want)
	}
}

func TestCreateTextureModes(t *testing.T) {
	c := Build("fake", ConceptReinitialize)
	d := &fakeDevice{}

	tex, err := c.Device.Call(d, "createTexture", &canon.TextureInfo{Width: 4}, false)
	if err != nil {
		t.Fatalf("createTexture: %v", err)
	}
	if tex.(Texture).IsView() {
		t.Error("fresh mode produced a view")
	}
	view, err := c.Device.Call(d, "createTexture", &canon.TextureViewInfo{Texture: tex}, true)
	if err != nil {
		t.Fatalf("createTexture view: %v", err)
	}
	if !view.(Texture).IsView() {
		t.Error("view mode produced a fresh texture")
	}
	if !slices.Equal(d.created, []string{"texture", "view"}) {
		t.Errorf("created = %v", d.created)
	}

	if _, err := c.Device.Call(d, "createTexture", &canon.TextureInfo{}, true); !errors.Is(err, adapt.ErrUnexpectedType) {
		t.Errorf("mismatched mode: err = %v, want ErrUnexpectedType", err)
	}

	ft := view.(*fakeTexture)
	if _, err := c.Texture.Call(ft, EntryInitialize, &canon.TextureInfo{}, false); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if ft.reinited != "texture" {
		t.Errorf("reinited = %q, want texture", ft.reinited)
	}
	if _, err := c.Texture.Call(ft, EntryInitialize, &canon.TextureViewInfo{}, true); err != nil {
		t.Fatalf("initialize view: %v", err)
	}
	if ft.reinited != "view" {
		t.Errorf("reinited = %q, want view", ft.reinited)
	}
}

func TestEntryErrors(t *testing.T) {
	c := Build("fake", ConceptNone)
	d := &fakeDevice{}

	if _, err := c.Device.Call(d, "createBuffer", &canon.BufferInfo{}); !errors.Is(err, errNoBuffer) {
		t.Errorf("backend error not propagated: %v", err)
	}
	if _, err := c.Device.Call(d, "createBuffer"); !errors.Is(err, adapt.ErrArity) {
		t.Errorf("missing argument: err = %v, want ErrArity", err)
	}
	if _, err := c.Device.Call("not a device", "createBuffer", nil); !errors.Is(err, adapt.ErrUnexpectedType) {
		t.Errorf("bad receiver: err = %v, want ErrUnexpectedType", err)
	}
	if _, err := c.Device.Call(d, "createBuffer", 42); !errors.Is(err, adapt.ErrUnexpectedType) {
		t.Errorf("bad argument: err = %v, want ErrUnexpectedType", err)
	}
}

func TestShaderID(t *testing.T) {
	c := Build("fake", ConceptNone)
	id, err := c.Shader.Call(fakeShader{hash: 0xCAFE}, "id")
	if err != nil {
		t.Fatal(err)
	}
	if id != uint32(0xCAFE) {
		t.Errorf("id = %v, want 0xCAFE", id)
	}
}
