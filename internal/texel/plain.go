package texel

import (
	"encoding/binary"
	"math"

	"github.com/mrjoshuak/go-openexr/half"
	"golang.org/x/image/math/f32"
)

// plain stores each channel in its own 1, 2, 4 or 8 byte little-endian word.
type plain struct {
	kind  Kind
	bits  int
	order []int
}

// Plain returns a codec for formats whose channels are byte aligned words of
// equal width. order lists, for each stored channel, the logical channel it
// holds: BGR8 is Plain(Unorm, 8, 2, 1, 0).
func Plain(kind Kind, bits int, order ...int) Codec {
	return plain{kind: kind, bits: bits, order: order}
}

func (p plain) Decode(src []byte) f32.Vec4 {
	out := Zero
	size := p.bits / 8
	for i, c := range p.order {
		raw := readWord(src[i*size:], size)
		if p.kind == Float {
			out[c] = decodeFloat(raw, p.bits)
			continue
		}
		out[c] = decodeChannel(raw, p.bits, p.kind, c < 3)
	}
	return out
}

func (p plain) Encode(dst []byte, v f32.Vec4) {
	size := p.bits / 8
	for i, c := range p.order {
		var raw uint64
		if p.kind == Float {
			raw = encodeFloat(v[c], p.bits)
		} else {
			raw = encodeChannel(v[c], p.bits, p.kind, c < 3)
		}
		writeWord(dst[i*size:], size, raw)
	}
}

func readWord(b []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func writeWord(b []byte, size int, v uint64) {
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(b, v)
	}
}

func decodeFloat(raw uint64, bits int) float32 {
	switch bits {
	case 16:
		return half.Half(uint16(raw)).Float32()
	case 32:
		return math.Float32frombits(uint32(raw))
	case 64:
		return float32(math.Float64frombits(raw))
	}
	return 0
}

func encodeFloat(v float32, bits int) uint64 {
	switch bits {
	case 16:
		return uint64(half.FromFloat32(v))
	case 32:
		return uint64(math.Float32bits(v))
	case 64:
		return math.Float64bits(float64(v))
	}
	return 0
}
