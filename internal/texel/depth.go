package texel

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"
)

// DepthKind describes how a depth value is stored.
type DepthKind uint8

const (
	// NoDepth marks a stencil-only format.
	NoDepth DepthKind = iota
	// Depth16 is a 16 bit normalized value.
	Depth16
	// Depth24 is a 24 bit normalized value in the low bits of a 32 bit word.
	Depth24
	// Depth32 is a 32 bit float.
	Depth32
)

// DepthStencil returns a codec that reads depth into x and stencil into y.
// stencilOffset is the byte offset of the 8 bit stencil value, or -1 when
// the format has no stencil. A stencil-only format reads stencil into x.
func DepthStencil(depth DepthKind, stencilOffset int) Codec {
	return depthStencil{depth: depth, stencil: stencilOffset}
}

type depthStencil struct {
	depth   DepthKind
	stencil int
}

func (d depthStencil) stencilChannel() int {
	if d.depth == NoDepth {
		return 0
	}
	return 1
}

func (d depthStencil) Decode(src []byte) f32.Vec4 {
	out := Zero
	switch d.depth {
	case Depth16:
		out[0] = float32(binary.LittleEndian.Uint16(src)) / 0xFFFF
	case Depth24:
		out[0] = float32(float64(binary.LittleEndian.Uint32(src)&0xFFFFFF) / 0xFFFFFF)
	case Depth32:
		out[0] = math.Float32frombits(binary.LittleEndian.Uint32(src))
	}
	if d.stencil >= 0 {
		out[d.stencilChannel()] = float32(src[d.stencil])
	}
	return out
}

func (d depthStencil) Encode(dst []byte, v f32.Vec4) {
	switch d.depth {
	case Depth16:
		binary.LittleEndian.PutUint16(dst, uint16(encodeChannel(v[0], 16, Unorm, false)))
	case Depth24:
		w := binary.LittleEndian.Uint32(dst) &^ 0xFFFFFF
		binary.LittleEndian.PutUint32(dst, w|uint32(encodeChannel(v[0], 24, Unorm, false)))
	case Depth32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(v[0]))
	}
	if d.stencil >= 0 {
		dst[d.stencil] = byte(encodeChannel(v[d.stencilChannel()], 8, Uint, false))
	}
}

// Luminance returns a codec for luminance and alpha formats. Luminance is
// replicated into red, green and blue. Either channel may be absent; when
// both are present luminance is stored first.
func Luminance(bits int, hasLuminance, hasAlpha bool) Codec {
	return luminance{bits: bits, l: hasLuminance, a: hasAlpha}
}

type luminance struct {
	bits int
	l, a bool
}

func (f luminance) Decode(src []byte) f32.Vec4 {
	size := f.bits / 8
	out := Zero
	off := 0
	if f.l {
		l := decodeChannel(readWord(src, size), f.bits, Unorm, false)
		out[0], out[1], out[2] = l, l, l
		off = size
	}
	if f.a {
		out[3] = decodeChannel(readWord(src[off:], size), f.bits, Unorm, false)
	}
	return out
}

func (f luminance) Encode(dst []byte, v f32.Vec4) {
	size := f.bits / 8
	off := 0
	if f.l {
		writeWord(dst, size, encodeChannel(v[0], f.bits, Unorm, false))
		off = size
	}
	if f.a {
		writeWord(dst[off:], size, encodeChannel(v[3], f.bits, Unorm, false))
	}
}
