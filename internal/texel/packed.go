package texel

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Pad marks a stored field that holds no channel.
const Pad = -1

// packed stores all channels in one 8, 16 or 32 bit little-endian word.
type packed struct {
	kind   Kind
	size   int
	widths []int
	order  []int
}

// Packed returns a codec for a packed format. Fields are listed from the
// most significant bits down, as in the format's name: R5G6B5 is
// Packed(Unorm, []int{5, 6, 5}, []int{0, 1, 2}). An order entry of Pad
// skips the field.
func Packed(kind Kind, widths, order []int) Codec {
	total := 0
	for _, w := range widths {
		total += w
	}
	return packed{kind: kind, size: total / 8, widths: widths, order: order}
}

func (p packed) Decode(src []byte) f32.Vec4 {
	word := readWord(src, p.size)
	out := Zero
	shift := p.size * 8
	for i, w := range p.widths {
		shift -= w
		c := p.order[i]
		if c == Pad {
			continue
		}
		raw := (word >> uint(shift)) & maxUnsigned(w)
		out[c] = decodeChannel(raw, w, p.kind, c < 3)
	}
	return out
}

func (p packed) Encode(dst []byte, v f32.Vec4) {
	var word uint64
	shift := p.size * 8
	for i, w := range p.widths {
		shift -= w
		c := p.order[i]
		if c == Pad {
			continue
		}
		word |= encodeChannel(v[c], w, p.kind, c < 3) << uint(shift)
	}
	writeWord(dst, p.size, word)
}

// RG11B10 returns the codec for the packed unsigned float format with an
// 11 bit red, 11 bit green and 10 bit blue channel, red in the low bits.
func RG11B10() Codec { return rg11b10{} }

type rg11b10 struct{}

func (rg11b10) Decode(src []byte) f32.Vec4 {
	w := readWord(src, 4)
	return f32.Vec4{
		decodeUfloat(w&0x7FF, 6),
		decodeUfloat((w>>11)&0x7FF, 6),
		decodeUfloat((w>>22)&0x3FF, 5),
		1,
	}
}

func (rg11b10) Encode(dst []byte, v f32.Vec4) {
	w := encodeUfloat(v[0], 6) | encodeUfloat(v[1], 6)<<11 | encodeUfloat(v[2], 5)<<22
	writeWord(dst, 4, w)
}

// decodeUfloat decodes an unsigned float with a 5 bit exponent and mbits of
// mantissa.
func decodeUfloat(raw uint64, mbits uint) float32 {
	e := int(raw >> mbits)
	m := float64(raw & (1<<mbits - 1))
	scale := float64(uint64(1) << mbits)
	switch e {
	case 0:
		return float32(math.Ldexp(m/scale, -14))
	case 31:
		if m == 0 {
			return float32(math.Inf(1))
		}
		return float32(math.NaN())
	}
	return float32(math.Ldexp(1+m/scale, e-15))
}

func encodeUfloat(v float32, mbits uint) uint64 {
	maxFinite := uint64(30)<<mbits | (1<<mbits - 1)
	if !(v > 0) {
		return 0
	}
	if float64(v) >= float64(decodeUfloat(maxFinite, mbits)) {
		return maxFinite
	}
	scale := float64(uint64(1) << mbits)
	frac, exp := math.Frexp(float64(v))
	e := exp - 1 + 15
	if e <= 0 {
		// Denormal. A result of 1<<mbits is the smallest normal.
		return uint64(math.Round(math.Ldexp(float64(v), 14) * scale))
	}
	m := uint64(math.Round((frac*2 - 1) * scale))
	if m == 1<<mbits {
		m = 0
		e++
	}
	if e >= 31 {
		return maxFinite
	}
	return uint64(e)<<mbits | m
}

// RGB9E5 returns the codec for the shared exponent format: three 9 bit
// mantissas, red in the low bits, and a 5 bit exponent in the top bits.
func RGB9E5() Codec { return rgb9e5{} }

type rgb9e5 struct{}

func (rgb9e5) Decode(src []byte) f32.Vec4 {
	w := readWord(src, 4)
	exp := int(w>>27) - 15 - 9
	return f32.Vec4{
		float32(math.Ldexp(float64(w&0x1FF), exp)),
		float32(math.Ldexp(float64((w>>9)&0x1FF), exp)),
		float32(math.Ldexp(float64((w>>18)&0x1FF), exp)),
		1,
	}
}

func (rgb9e5) Encode(dst []byte, v f32.Vec4) {
	const maxValue = 511.0 / 512.0 * 65536.0
	r := float64(clamp(v[0], 0, maxValue))
	g := float64(clamp(v[1], 0, maxValue))
	b := float64(clamp(v[2], 0, maxValue))
	maxc := math.Max(r, math.Max(g, b))
	if maxc == 0 {
		writeWord(dst, 4, 0)
		return
	}
	shared := max(-16, int(math.Floor(math.Log2(maxc)))) + 1 + 15
	denom := math.Ldexp(1, shared-15-9)
	if math.Floor(maxc/denom+0.5) == 512 {
		denom *= 2
		shared++
	}
	rm := uint64(math.Floor(r/denom + 0.5))
	gm := uint64(math.Floor(g/denom + 0.5))
	bm := uint64(math.Floor(b/denom + 0.5))
	writeWord(dst, 4, rm|gm<<9|bm<<18|uint64(shared)<<27)
}
