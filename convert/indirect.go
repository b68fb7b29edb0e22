package convert

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfxbind/desc"
)

// IndirectStride is the number of uint32 words one draw record occupies.
const IndirectStride = 7

// EncodeIndirect packs draws into consecutive 7-word records: vertex count,
// first vertex, index count, first index, vertex offset, instance count,
// first instance. The vertex offset is stored as its two's-complement bits.
func EncodeIndirect(draws []desc.DrawInfo) []uint32 {
	out := make([]uint32, len(draws)*IndirectStride)
	for i, d := range draws {
		rec := out[i*IndirectStride : (i+1)*IndirectStride]
		rec[0] = d.VertexCount
		rec[1] = d.FirstVertex
		rec[2] = d.IndexCount
		rec[3] = d.FirstIndex
		rec[4] = uint32(d.VertexOffset)
		rec[5] = d.InstanceCount
		rec[6] = d.FirstInstance
	}
	return out
}

// IndirectByteLength is the size in bytes of n encoded draw records.
func IndirectByteLength(n int) uint32 {
	return uint32(n * IndirectStride * 4)
}

// BufferUpdate resolves the bytes and size argument of a buffer update.
// Buffers with gputypes.BufferUsageIndirect accept a desc.IndirectBuffer,
// by pointer or value, which is packed with EncodeIndirect. Other sources are []byte, []uint16,
// []uint32, []int32 or []float32 and are uploaded in little-endian order.
// An explicit size wins over the byte length of the data.
func BufferUpdate(src any, usage gputypes.BufferUsage, size *uint32) ([]byte, uint32, error) {
	var (
		data []byte
		err  error
	)
	if ib, ok := indirectSource(src); ok && usage.Contains(gputypes.BufferUsageIndirect) {
		if ib != nil {
			data, err = binary.Append(nil, binary.LittleEndian, EncodeIndirect(ib.DrawInfos))
		}
	} else {
		data, err = sourceBytes(src)
	}
	if err != nil {
		return nil, 0, err
	}
	n := uint32(len(data))
	if size != nil {
		n = *size
	}
	return data, n, nil
}

// indirectSource accepts an indirect buffer by pointer or by value.
func indirectSource(src any) (*desc.IndirectBuffer, bool) {
	switch v := src.(type) {
	case *desc.IndirectBuffer:
		return v, true
	case desc.IndirectBuffer:
		return &v, true
	}
	return nil, false
}

func sourceBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case []uint16, []uint32, []int32, []float32:
		return binary.Append(nil, binary.LittleEndian, v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
}
