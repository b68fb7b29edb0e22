package adapt

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

// recorder is a native class whose entries record the arguments they get.
type recorder struct {
	calls [][]any
}

func newRecorderProto(names ...string) *Prototype {
	p := NewPrototype("Recorder")
	for _, name := range names {
		p.Define(name, func(self any, args ...any) (any, error) {
			r := self.(*recorder)
			r.calls = append(r.calls, args)
			return len(r.calls), nil
		})
	}
	return p
}

func double(arg any) (any, error) { return arg.(int) * 2, nil }
func stringify(arg any) (any, error) { return fmt.Sprint(arg), nil }

func TestAdaptConvertsAndForwards(t *testing.T) {
	p := newRecorderProto("draw")
	installed := Install(p, map[string]Wrapper{
		"draw": Adapt(RenamedName("draw"), double, stringify, double),
	})
	if !slices.Equal(installed, []string{"draw"}) {
		t.Fatalf("installed = %v, want [draw]", installed)
	}

	r := &recorder{}
	got, err := p.Call(r, "draw", 1, 2, 3)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 1 {
		t.Errorf("result = %v, want the native return value 1", got)
	}
	if want := []any{2, "2", 6}; !slices.Equal(r.calls[0], want) {
		t.Errorf("forwarded %v, want %v", r.calls[0], want)
	}
}

func TestAdaptArityMismatch(t *testing.T) {
	p := newRecorderProto("beginRenderPass")
	Install(p, map[string]Wrapper{
		"beginRenderPass": Adapt(RenamedName("beginRenderPass"), double, double, double),
	})

	r := &recorder{}
	_, err := p.Call(r, "beginRenderPass", 1, 2)
	if !errors.Is(err, ErrArity) {
		t.Fatalf("err = %v, want ErrArity", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("native entry was called %d times, want 0", len(r.calls))
	}
}

func TestAdaptConverterErrorStopsForward(t *testing.T) {
	errBad := errors.New("bad pixels")
	fail := func(any) (any, error) { return nil, errBad }

	p := newRecorderProto("copy")
	Install(p, map[string]Wrapper{"copy": Adapt(RenamedName("copy"), double, fail)})

	r := &recorder{}
	if _, err := p.Call(r, "copy", 1, 2); !errors.Is(err, errBad) {
		t.Fatalf("err = %v, want %v", err, errBad)
	}
	if len(r.calls) != 0 {
		t.Error("native entry ran after a converter failed")
	}
}

func TestAdaptNilConverterYieldsNoWrapper(t *testing.T) {
	if w := Adapt("_x", double, nil); w != nil {
		t.Fatal("Adapt with a nil converter should return nil")
	}

	p := newRecorderProto("createBindingLayout")
	installed := Install(p, map[string]Wrapper{
		"createBindingLayout": Adapt(RenamedName("createBindingLayout"), nil),
	})
	if len(installed) != 0 {
		t.Errorf("installed = %v, want none", installed)
	}
	if p.Has(RenamedName("createBindingLayout")) {
		t.Error("renamed slot created for an unsupported concept")
	}
	r := &recorder{}
	if _, err := p.Call(r, "createBindingLayout", 5); err != nil {
		t.Fatal(err)
	}
	if r.calls[0][0] != 5 {
		t.Errorf("unwrapped entry got %v, want the raw argument", r.calls[0][0])
	}
}

func TestInstallSkipsMissingEntries(t *testing.T) {
	p := newRecorderProto("createBuffer")
	installed := Install(p, map[string]Wrapper{
		"createBuffer":  Adapt(RenamedName("createBuffer"), double),
		"createTexture": Adapt(RenamedName("createTexture"), double),
	})
	if !slices.Equal(installed, []string{"createBuffer"}) {
		t.Errorf("installed = %v, want [createBuffer]", installed)
	}
	if p.Has("createTexture") || p.Has("_createTexture") {
		t.Error("Install defined an entry the class never had")
	}
	if _, err := p.Call(&recorder{}, "createTexture", 1); !errors.Is(err, ErrNoEntry) {
		t.Errorf("err = %v, want ErrNoEntry", err)
	}
}

func TestInstallTwiceDoesNotDoubleWrap(t *testing.T) {
	p := newRecorderProto("setViewport")
	repl := map[string]Wrapper{"setViewport": Adapt(RenamedName("setViewport"), double)}
	Install(p, repl)
	if again := Install(p, repl); len(again) != 0 {
		t.Errorf("second Install installed %v, want none", again)
	}

	r := &recorder{}
	if _, err := p.Call(r, "setViewport", 3); err != nil {
		t.Fatal(err)
	}
	if r.calls[0][0] != 6 {
		t.Errorf("forwarded %v, want 6 (converted once)", r.calls[0][0])
	}
}

func TestDispatch(t *testing.T) {
	sel := func(arg any) (any, bool, error) {
		n := arg.(int)
		if n < 0 {
			return -n, true, nil
		}
		return n, false, nil
	}
	p := newRecorderProto("createTexture")
	Install(p, map[string]Wrapper{"createTexture": Dispatch(RenamedName("createTexture"), sel)})

	r := &recorder{}
	if _, err := p.Call(r, "createTexture", 4); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Call(r, "createTexture", -7); err != nil {
		t.Fatal(err)
	}
	if want := []any{4, false}; !slices.Equal(r.calls[0], want) {
		t.Errorf("fresh call forwarded %v, want %v", r.calls[0], want)
	}
	if want := []any{7, true}; !slices.Equal(r.calls[1], want) {
		t.Errorf("view call forwarded %v, want %v", r.calls[1], want)
	}
	if _, err := p.Call(r, "createTexture"); !errors.Is(err, ErrArity) {
		t.Errorf("err = %v, want ErrArity", err)
	}
	if Dispatch("_x", nil) != nil {
		t.Error("Dispatch(nil) should return nil")
	}
}

func TestInstallAllSkipsAbsentPrototypes(t *testing.T) {
	vk := newRecorderProto("createShader")
	gl := newRecorderProto("createShader")
	repl := map[string]Wrapper{"createShader": Adapt(RenamedName("createShader"), double)}

	if n := InstallAll([]*Prototype{vk, nil, gl, nil}, repl); n != 2 {
		t.Errorf("InstallAll = %d, want 2", n)
	}
	for _, p := range []*Prototype{vk, gl} {
		if !p.Has("_createShader") {
			t.Errorf("%s: original not preserved", p.Name())
		}
	}
}

func TestAs(t *testing.T) {
	if v, err := As[*int](nil); err != nil || v != nil {
		t.Errorf("As[*int](nil) = %v, %v; want nil, nil", v, err)
	}
	if v, err := As[uint32](uint32(7)); err != nil || v != 7 {
		t.Errorf("As[uint32](7) = %v, %v", v, err)
	}
	if _, err := As[string](3); !errors.Is(err, ErrUnexpectedType) {
		t.Errorf("err = %v, want ErrUnexpectedType", err)
	}
}

func TestAsNamesInterfaceTarget(t *testing.T) {
	_, err := As[fmt.Stringer](3)
	if !errors.Is(err, ErrUnexpectedType) {
		t.Fatalf("err = %v, want ErrUnexpectedType", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "fmt.Stringer") || strings.Contains(msg, "<nil>") {
		t.Errorf("err = %q, want the interface type named", msg)
	}
}

func TestPrototypeNamesAndClone(t *testing.T) {
	p := newRecorderProto("b", "a", "c")
	if got := p.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Names = %v", got)
	}
	c := p.Clone()
	c.Define("a", nil)
	if !p.Has("a") || c.Has("a") {
		t.Error("Clone should be independent of the original")
	}
}
