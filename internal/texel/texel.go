// Package texel converts single texels between their stored byte layout and
// a logical RGBA value.
//
// Every codec works on logical channels: index 0 is red, 1 green, 2 blue and
// 3 alpha, regardless of the order in which a format stores them. Channels a
// format does not store read back as 0, except alpha which reads back as 1.
package texel

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Kind is the numeric interpretation of a stored channel.
type Kind uint8

const (
	// Unorm maps [0, 2^n-1] to [0, 1].
	Unorm Kind = iota
	// Snorm maps [-2^(n-1)+1, 2^(n-1)-1] to [-1, 1].
	Snorm
	// Uscaled reads unsigned integers as their float value.
	Uscaled
	// Sscaled reads signed integers as their float value.
	Sscaled
	// Uint reads unsigned integers.
	Uint
	// Sint reads signed integers.
	Sint
	// SRGB is Unorm with the sRGB transfer function on color channels.
	SRGB
	// Float reads IEEE floats of 16, 32 or 64 bits.
	Float
)

// Codec decodes and encodes one texel of a non-compressed format.
type Codec interface {
	// Decode reads the texel stored at the start of src.
	Decode(src []byte) f32.Vec4
	// Encode writes v at the start of dst.
	Encode(dst []byte, v f32.Vec4)
}

// BlockDecoder decodes one 4x4 block of a block-compressed format.
// Texels are written row-major into dst.
type BlockDecoder interface {
	DecodeBlock(src []byte, dst *[16]f32.Vec4)
}

// Zero is the value every codec produces for channels a format lacks.
var Zero = f32.Vec4{0, 0, 0, 1}

// SRGBToLinear applies the inverse sRGB transfer function.
func SRGBToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// LinearToSRGB applies the sRGB transfer function.
func LinearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxUnsigned(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bits) - 1
}

// signExtend interprets the low bits of raw as a two's complement integer.
func signExtend(raw uint64, bits int) int64 {
	shift := 64 - uint(bits)
	return int64(raw<<shift) >> shift
}

// decodeChannel converts a raw channel value of the given width to float.
// Float kinds must go through decodeFloat instead.
func decodeChannel(raw uint64, bits int, kind Kind, color bool) float32 {
	switch kind {
	case Unorm:
		return float32(float64(raw) / float64(maxUnsigned(bits)))
	case SRGB:
		v := float32(float64(raw) / float64(maxUnsigned(bits)))
		if color {
			return SRGBToLinear(v)
		}
		return v
	case Snorm:
		v := float32(float64(signExtend(raw, bits)) / float64(maxUnsigned(bits-1)))
		return max(v, -1)
	case Uscaled, Uint:
		return float32(raw)
	case Sscaled, Sint:
		return float32(signExtend(raw, bits))
	}
	return 0
}

// encodeChannel is the inverse of decodeChannel, saturating out-of-range
// values.
func encodeChannel(v float32, bits int, kind Kind, color bool) uint64 {
	mask := maxUnsigned(bits)
	switch kind {
	case Unorm, SRGB:
		v = clamp(v, 0, 1)
		if kind == SRGB && color {
			v = LinearToSRGB(v)
		}
		return uint64(math.Round(float64(v) * float64(mask)))
	case Snorm:
		v = clamp(v, -1, 1)
		return uint64(int64(math.Round(float64(v)*float64(maxUnsigned(bits-1))))) & mask
	case Uscaled, Uint:
		f := math.Round(float64(clamp(v, 0, float32(mask))))
		if f >= float64(mask) {
			return mask
		}
		return uint64(f)
	case Sscaled, Sint:
		hi := float64(maxUnsigned(bits - 1))
		f := math.Round(math.Max(-hi-1, math.Min(hi, float64(v))))
		if v != v {
			f = 0
		}
		if f >= hi {
			return maxUnsigned(bits - 1)
		}
		return uint64(int64(f)) & mask
	}
	return 0
}
