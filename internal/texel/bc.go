package texel

import (
	"encoding/binary"

	"golang.org/x/image/math/f32"
)

// BC1 decodes DXT1 blocks. With alpha set, the three color mode produces a
// transparent fourth color; otherwise it is opaque black.
func BC1(alpha, srgb bool) BlockDecoder { return bc1{alpha: alpha, srgb: srgb} }

// BC2 decodes DXT3 blocks: explicit 4 bit alpha followed by a color block.
func BC2(srgb bool) BlockDecoder { return bc2{srgb: srgb} }

// BC3 decodes DXT5 blocks: interpolated alpha followed by a color block.
func BC3(srgb bool) BlockDecoder { return bc3{srgb: srgb} }

// BC4 decodes single channel ATI1 blocks into red.
func BC4(signed bool) BlockDecoder { return bc4{signed: signed} }

// BC5 decodes two channel ATI2 blocks into red and green.
func BC5(signed bool) BlockDecoder { return bc5{signed: signed} }

type bc1 struct{ alpha, srgb bool }

func (d bc1) DecodeBlock(src []byte, dst *[16]f32.Vec4) {
	decodeColorBlock(src, dst, !d.alpha, false, d.srgb)
}

type bc2 struct{ srgb bool }

func (d bc2) DecodeBlock(src []byte, dst *[16]f32.Vec4) {
	decodeColorBlock(src[8:], dst, true, true, d.srgb)
	bits := binary.LittleEndian.Uint64(src)
	for i := range dst {
		dst[i][3] = float32((bits>>(4*uint(i)))&0xF) / 15
	}
}

type bc3 struct{ srgb bool }

func (d bc3) DecodeBlock(src []byte, dst *[16]f32.Vec4) {
	decodeColorBlock(src[8:], dst, true, true, d.srgb)
	var alpha [16]float32
	decodeChannelBlock(src, false, &alpha)
	for i := range dst {
		dst[i][3] = alpha[i]
	}
}

type bc4 struct{ signed bool }

func (d bc4) DecodeBlock(src []byte, dst *[16]f32.Vec4) {
	var red [16]float32
	decodeChannelBlock(src, d.signed, &red)
	for i := range dst {
		dst[i] = f32.Vec4{red[i], 0, 0, 1}
	}
}

type bc5 struct{ signed bool }

func (d bc5) DecodeBlock(src []byte, dst *[16]f32.Vec4) {
	var red, green [16]float32
	decodeChannelBlock(src, d.signed, &red)
	decodeChannelBlock(src[8:], d.signed, &green)
	for i := range dst {
		dst[i] = f32.Vec4{red[i], green[i], 0, 1}
	}
}

func rgb565(c uint16) f32.Vec4 {
	return f32.Vec4{
		float32(c>>11&0x1F) / 31,
		float32(c>>5&0x3F) / 63,
		float32(c&0x1F) / 31,
		1,
	}
}

func mix(a, b f32.Vec4, wa, wb, div float32) f32.Vec4 {
	return f32.Vec4{
		(a[0]*wa + b[0]*wb) / div,
		(a[1]*wa + b[1]*wb) / div,
		(a[2]*wa + b[2]*wb) / div,
		1,
	}
}

// decodeColorBlock decodes the 8 byte color part shared by BC1, BC2 and BC3.
// forceFour disables the three color mode, as BC2 and BC3 require.
func decodeColorBlock(src []byte, dst *[16]f32.Vec4, opaque, forceFour, srgb bool) {
	c0 := binary.LittleEndian.Uint16(src)
	c1 := binary.LittleEndian.Uint16(src[2:])
	indices := binary.LittleEndian.Uint32(src[4:])

	var palette [4]f32.Vec4
	palette[0] = rgb565(c0)
	palette[1] = rgb565(c1)
	if c0 > c1 || forceFour {
		palette[2] = mix(palette[0], palette[1], 2, 1, 3)
		palette[3] = mix(palette[0], palette[1], 1, 2, 3)
	} else {
		palette[2] = mix(palette[0], palette[1], 1, 1, 2)
		palette[3] = f32.Vec4{0, 0, 0, 0}
		if opaque {
			palette[3][3] = 1
		}
	}
	if srgb {
		for i := range palette {
			for c := range 3 {
				palette[i][c] = SRGBToLinear(palette[i][c])
			}
		}
	}
	for i := range dst {
		dst[i] = palette[(indices>>(2*uint(i)))&3]
	}
}

// decodeChannelBlock decodes an 8 byte interpolated single channel block as
// used by BC3 alpha, BC4 and BC5.
func decodeChannelBlock(src []byte, signed bool, dst *[16]float32) {
	var e0, e1, lo, hi float32
	if signed {
		e0 = max(float32(int8(src[0]))/127, -1)
		e1 = max(float32(int8(src[1]))/127, -1)
		lo, hi = -1, 1
	} else {
		e0 = float32(src[0]) / 255
		e1 = float32(src[1]) / 255
		lo, hi = 0, 1
	}

	var palette [8]float32
	palette[0], palette[1] = e0, e1
	if e0 > e1 {
		for i := 1; i < 7; i++ {
			palette[i+1] = (e0*float32(7-i) + e1*float32(i)) / 7
		}
	} else {
		for i := 1; i < 5; i++ {
			palette[i+1] = (e0*float32(5-i) + e1*float32(i)) / 5
		}
		palette[6], palette[7] = lo, hi
	}

	var bits uint64
	for i := 0; i < 6; i++ {
		bits |= uint64(src[2+i]) << (8 * uint(i))
	}
	for i := range dst {
		dst[i] = palette[(bits>>(3*uint(i)))&7]
	}
}
