package convert

import (
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/desc"
)

func TestEncodeIndirect(t *testing.T) {
	got := EncodeIndirect([]desc.DrawInfo{{VertexCount: 3, IndexCount: 6, InstanceCount: 1}})
	if want := []uint32{3, 0, 6, 0, 0, 1, 0}; !slices.Equal(got, want) {
		t.Errorf("EncodeIndirect = %v, want %v", got, want)
	}
	if n := IndirectByteLength(1); n != 28 {
		t.Errorf("IndirectByteLength(1) = %d, want 28", n)
	}
}

func TestEncodeIndirectFieldOrder(t *testing.T) {
	draws := []desc.DrawInfo{
		{VertexCount: 1, FirstVertex: 2, IndexCount: 3, FirstIndex: 4, VertexOffset: 5, InstanceCount: 6, FirstInstance: 7},
		{VertexCount: 8, FirstVertex: 9, IndexCount: 10, FirstIndex: 11, VertexOffset: -1, InstanceCount: 12, FirstInstance: 13},
	}
	got := EncodeIndirect(draws)
	want := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0xFFFFFFFF, 12, 13}
	if !slices.Equal(got, want) {
		t.Errorf("EncodeIndirect = %v, want %v", got, want)
	}
	if len(EncodeIndirect(nil)) != 0 {
		t.Error("no draws should encode to an empty buffer")
	}
}

func TestBufferUpdate(t *testing.T) {
	size := uint32(12)
	tests := []struct {
		name     string
		src      any
		usage    gputypes.BufferUsage
		size     *uint32
		wantLen  int
		wantSize uint32
	}{
		{"indirect", &desc.IndirectBuffer{DrawInfos: make([]desc.DrawInfo, 2)},
			gputypes.BufferUsageIndirect | gputypes.BufferUsageCopyDst, nil, 56, 56},
		{"indirect value", desc.IndirectBuffer{DrawInfos: make([]desc.DrawInfo, 3)},
			gputypes.BufferUsageIndirect, nil, 84, 84},
		{"indirect explicit size", &desc.IndirectBuffer{DrawInfos: make([]desc.DrawInfo, 1)},
			gputypes.BufferUsageIndirect, &size, 28, 12},
		{"bytes", []byte{1, 2, 3}, gputypes.BufferUsageVertex, nil, 3, 3},
		{"float32", []float32{1, 2, 3, 4}, gputypes.BufferUsageVertex, nil, 16, 16},
		{"uint16", []uint16{0, 1, 2}, gputypes.BufferUsageIndex, nil, 6, 6},
		{"explicit size", []float32{1, 2, 3, 4}, gputypes.BufferUsageUniform, &size, 16, 12},
		{"nil", nil, gputypes.BufferUsageUniform, nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, n, err := BufferUpdate(tt.src, tt.usage, tt.size)
			if err != nil {
				t.Fatal(err)
			}
			if len(data) != tt.wantLen || n != tt.wantSize {
				t.Errorf("len(data), size = %d, %d; want %d, %d", len(data), n, tt.wantLen, tt.wantSize)
			}
		})
	}
}

func TestBufferUpdateIndirectBytes(t *testing.T) {
	data, n, err := BufferUpdate(&desc.IndirectBuffer{DrawInfos: []desc.DrawInfo{{VertexCount: 3, IndexCount: 6, InstanceCount: 1}}},
		gputypes.BufferUsageIndirect, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 28 {
		t.Fatalf("size = %d, want 28", n)
	}
	words := make([]uint32, 7)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	if want := []uint32{3, 0, 6, 0, 0, 1, 0}; !slices.Equal(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestBufferUpdateRejectsUnknownSource(t *testing.T) {
	if _, _, err := BufferUpdate("text", gputypes.BufferUsageVertex, nil); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("err = %v, want ErrUnsupportedSource", err)
	}
	// Draw records only make sense for indirect buffers.
	if _, _, err := BufferUpdate(&desc.IndirectBuffer{}, gputypes.BufferUsageVertex, nil); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("err = %v, want ErrUnsupportedSource", err)
	}
}

func BenchmarkEncodeIndirect(b *testing.B) {
	draws := make([]desc.DrawInfo, 64)
	b.ReportAllocs()
	for b.Loop() {
		EncodeIndirect(draws)
	}
}
