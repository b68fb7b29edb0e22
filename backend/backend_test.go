package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gfxbind/native"
)

type fakeBackend struct{ name string }

func (b *fakeBackend) Name() string                      { return b.name }
func (b *fakeBackend) Concepts() native.Concept          { return native.ConceptNone }
func (b *fakeBackend) NewDevice() (native.Device, error) { return nil, ErrNoDevice }

func register(t *testing.T, name string, available bool) {
	t.Helper()
	Register(name, func() Backend {
		if !available {
			return nil
		}
		return &fakeBackend{name: name}
	})
	t.Cleanup(func() { Unregister(name) })
}

func TestRegisterAndGet(t *testing.T) {
	register(t, "test-a", true)

	if !IsRegistered("test-a") {
		t.Fatal("IsRegistered(test-a) = false")
	}
	b := Get("test-a")
	if b == nil || b.Name() != "test-a" {
		t.Fatalf("Get(test-a) = %v", b)
	}
	if !slices.Contains(Available(), "test-a") {
		t.Errorf("Available() = %v, missing test-a", Available())
	}
	if Get("missing") != nil {
		t.Error("Get(missing) should return nil")
	}
}

func TestUnregister(t *testing.T) {
	Register("test-b", func() Backend { return &fakeBackend{name: "test-b"} })
	Unregister("test-b")
	if IsRegistered("test-b") {
		t.Error("test-b still registered after Unregister")
	}
}

func TestDefaultPriority(t *testing.T) {
	register(t, NameRecord, true)
	register(t, NameGL, true)

	if got := Default(); got == nil || got.Name() != NameGL {
		t.Fatalf("Default() = %v, want %s", got, NameGL)
	}

	// A higher-priority backend whose factory returns nil is skipped.
	register(t, NameVulkan, false)
	if got := Default(); got == nil || got.Name() != NameGL {
		t.Fatalf("Default() with nil vulkan = %v, want %s", got, NameGL)
	}

	register(t, NameDX12, true)
	if got := Default(); got.Name() != NameDX12 {
		t.Errorf("Default() = %s, want %s", got.Name(), NameDX12)
	}
}

func TestDefaultOutsidePriority(t *testing.T) {
	register(t, "zz-custom", true)
	if got := Default(); got == nil || got.Name() != "zz-custom" {
		t.Fatalf("Default() = %v, want zz-custom", got)
	}
}

func TestLookup(t *testing.T) {
	register(t, NameNoop, false)

	_, err := Lookup(NameNoop)
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Fatalf("Lookup(nil factory) err = %v, want ErrBackendNotAvailable", err)
	}
	var nae *NotAvailableError
	if !errors.As(err, &nae) || nae.Name != NameNoop {
		t.Errorf("err = %#v, want NotAvailableError{%s}", err, NameNoop)
	}

	if _, err := Lookup(""); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Lookup(\"\") with nothing usable: err = %v", err)
	}

	register(t, NameRecord, true)
	b, err := Lookup("")
	if err != nil || b.Name() != NameRecord {
		t.Errorf("Lookup(\"\") = %v, %v", b, err)
	}
}
