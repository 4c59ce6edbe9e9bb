package gli

import (
	"fmt"

	"github.com/gogpu/gli/internal/texel"
)

// Format identifies a pixel format. Values are the ones stored in KMG and
// DDS extension headers and must not be renumbered.
type Format uint32

// FormatUndefined is the zero Format. It is never valid.
const FormatUndefined Format = 0

const (
	// Packed 8 and 16 bit formats.
	FormatRG4UnormPack8 Format = iota + 1
	FormatRGBA4UnormPack16
	FormatBGRA4UnormPack16
	FormatR5G6B5UnormPack16
	FormatB5G6R5UnormPack16
	FormatRGB5A1UnormPack16
	FormatBGR5A1UnormPack16
	FormatA1RGB5UnormPack16

	// 8 bit per channel formats.
	FormatR8UnormPack8
	FormatR8SnormPack8
	FormatR8UscaledPack8
	FormatR8SscaledPack8
	FormatR8UintPack8
	FormatR8SintPack8
	FormatR8SrgbPack8
	FormatRG8UnormPack8
	FormatRG8SnormPack8
	FormatRG8UscaledPack8
	FormatRG8SscaledPack8
	FormatRG8UintPack8
	FormatRG8SintPack8
	FormatRG8SrgbPack8
	FormatRGB8UnormPack8
	FormatRGB8SnormPack8
	FormatRGB8UscaledPack8
	FormatRGB8SscaledPack8
	FormatRGB8UintPack8
	FormatRGB8SintPack8
	FormatRGB8SrgbPack8
	FormatBGR8UnormPack8
	FormatBGR8SnormPack8
	FormatBGR8UscaledPack8
	FormatBGR8SscaledPack8
	FormatBGR8UintPack8
	FormatBGR8SintPack8
	FormatBGR8SrgbPack8
	FormatRGBA8UnormPack8
	FormatRGBA8SnormPack8
	FormatRGBA8UscaledPack8
	FormatRGBA8SscaledPack8
	FormatRGBA8UintPack8
	FormatRGBA8SintPack8
	FormatRGBA8SrgbPack8
	FormatBGRA8UnormPack8
	FormatBGRA8SnormPack8
	FormatBGRA8UscaledPack8
	FormatBGRA8SscaledPack8
	FormatBGRA8UintPack8
	FormatBGRA8SintPack8
	FormatBGRA8SrgbPack8

	// 32 bit packed formats.
	FormatRGBA8UnormPack32
	FormatRGBA8SnormPack32
	FormatRGBA8UscaledPack32
	FormatRGBA8SscaledPack32
	FormatRGBA8UintPack32
	FormatRGBA8SintPack32
	FormatRGBA8SrgbPack32
	FormatRGB10A2UnormPack32
	FormatRGB10A2SnormPack32
	FormatRGB10A2UscaledPack32
	FormatRGB10A2SscaledPack32
	FormatRGB10A2UintPack32
	FormatRGB10A2SintPack32
	FormatBGR10A2UnormPack32
	FormatBGR10A2SnormPack32
	FormatBGR10A2UscaledPack32
	FormatBGR10A2SscaledPack32
	FormatBGR10A2UintPack32
	FormatBGR10A2SintPack32

	// 16 bit per channel formats.
	FormatR16UnormPack16
	FormatR16SnormPack16
	FormatR16UscaledPack16
	FormatR16SscaledPack16
	FormatR16UintPack16
	FormatR16SintPack16
	FormatR16SfloatPack16
	FormatRG16UnormPack16
	FormatRG16SnormPack16
	FormatRG16UscaledPack16
	FormatRG16SscaledPack16
	FormatRG16UintPack16
	FormatRG16SintPack16
	FormatRG16SfloatPack16
	FormatRGB16UnormPack16
	FormatRGB16SnormPack16
	FormatRGB16UscaledPack16
	FormatRGB16SscaledPack16
	FormatRGB16UintPack16
	FormatRGB16SintPack16
	FormatRGB16SfloatPack16
	FormatRGBA16UnormPack16
	FormatRGBA16SnormPack16
	FormatRGBA16UscaledPack16
	FormatRGBA16SscaledPack16
	FormatRGBA16UintPack16
	FormatRGBA16SintPack16
	FormatRGBA16SfloatPack16

	// 32 bit per channel formats.
	FormatR32UintPack32
	FormatR32SintPack32
	FormatR32SfloatPack32
	FormatRG32UintPack32
	FormatRG32SintPack32
	FormatRG32SfloatPack32
	FormatRGB32UintPack32
	FormatRGB32SintPack32
	FormatRGB32SfloatPack32
	FormatRGBA32UintPack32
	FormatRGBA32SintPack32
	FormatRGBA32SfloatPack32

	// 64 bit per channel formats.
	FormatR64UintPack64
	FormatR64SintPack64
	FormatR64SfloatPack64
	FormatRG64UintPack64
	FormatRG64SintPack64
	FormatRG64SfloatPack64
	FormatRGB64UintPack64
	FormatRGB64SintPack64
	FormatRGB64SfloatPack64
	FormatRGBA64UintPack64
	FormatRGBA64SintPack64
	FormatRGBA64SfloatPack64

	// Packed float formats.
	FormatRG11B10UfloatPack32
	FormatRGB9E5UfloatPack32

	// Depth and stencil formats.
	FormatD16UnormPack16
	FormatD24UnormPack32
	FormatD32SfloatPack32
	FormatS8UintPack8
	FormatD16UnormS8UintPack32
	FormatD24UnormS8UintPack32
	FormatD32SfloatS8UintPack64

	// S3TC, RGTC and BPTC block compressed formats.
	FormatRGBDXT1UnormBlock8
	FormatRGBDXT1SrgbBlock8
	FormatRGBADXT1UnormBlock8
	FormatRGBADXT1SrgbBlock8
	FormatRGBADXT3UnormBlock16
	FormatRGBADXT3SrgbBlock16
	FormatRGBADXT5UnormBlock16
	FormatRGBADXT5SrgbBlock16
	FormatRATI1NUnormBlock8
	FormatRATI1NSnormBlock8
	FormatRGATI2NUnormBlock16
	FormatRGATI2NSnormBlock16
	FormatRGBBPUfloatBlock16
	FormatRGBBPSfloatBlock16
	FormatRGBABPUnormBlock16
	FormatRGBABPSrgbBlock16

	// ETC2 and EAC block compressed formats.
	FormatRGBETC2UnormBlock8
	FormatRGBETC2SrgbBlock8
	FormatRGBAETC2UnormBlock8
	FormatRGBAETC2SrgbBlock8
	FormatRGBAETC2UnormBlock16
	FormatRGBAETC2SrgbBlock16
	FormatREACUnormBlock8
	FormatREACSnormBlock8
	FormatRGEACUnormBlock16
	FormatRGEACSnormBlock16

	// ASTC block compressed formats.
	FormatRGBAASTC4x4UnormBlock16
	FormatRGBAASTC4x4SrgbBlock16
	FormatRGBAASTC5x4UnormBlock16
	FormatRGBAASTC5x4SrgbBlock16
	FormatRGBAASTC5x5UnormBlock16
	FormatRGBAASTC5x5SrgbBlock16
	FormatRGBAASTC6x5UnormBlock16
	FormatRGBAASTC6x5SrgbBlock16
	FormatRGBAASTC6x6UnormBlock16
	FormatRGBAASTC6x6SrgbBlock16
	FormatRGBAASTC8x5UnormBlock16
	FormatRGBAASTC8x5SrgbBlock16
	FormatRGBAASTC8x6UnormBlock16
	FormatRGBAASTC8x6SrgbBlock16
	FormatRGBAASTC8x8UnormBlock16
	FormatRGBAASTC8x8SrgbBlock16
	FormatRGBAASTC10x5UnormBlock16
	FormatRGBAASTC10x5SrgbBlock16
	FormatRGBAASTC10x6UnormBlock16
	FormatRGBAASTC10x6SrgbBlock16
	FormatRGBAASTC10x8UnormBlock16
	FormatRGBAASTC10x8SrgbBlock16
	FormatRGBAASTC10x10UnormBlock16
	FormatRGBAASTC10x10SrgbBlock16
	FormatRGBAASTC12x10UnormBlock16
	FormatRGBAASTC12x10SrgbBlock16
	FormatRGBAASTC12x12UnormBlock16
	FormatRGBAASTC12x12SrgbBlock16

	// PVRTC block compressed formats.
	FormatRGBPVRTC1_8x8UnormBlock32
	FormatRGBPVRTC1_8x8SrgbBlock32
	FormatRGBPVRTC1_16x8UnormBlock32
	FormatRGBPVRTC1_16x8SrgbBlock32
	FormatRGBAPVRTC1_8x8UnormBlock32
	FormatRGBAPVRTC1_8x8SrgbBlock32
	FormatRGBAPVRTC1_16x8UnormBlock32
	FormatRGBAPVRTC1_16x8SrgbBlock32
	FormatRGBAPVRTC2_4x4UnormBlock8
	FormatRGBAPVRTC2_4x4SrgbBlock8
	FormatRGBAPVRTC2_8x4UnormBlock8
	FormatRGBAPVRTC2_8x4SrgbBlock8

	// ETC1 and ATC block compressed formats.
	FormatRGBETCUnormBlock8
	FormatRGBATCUnormBlock8
	FormatRGBAATCAUnormBlock16
	FormatRGBAATCIUnormBlock16

	// Luminance and alpha formats.
	FormatL8UnormPack8
	FormatA8UnormPack8
	FormatLA8UnormPack8
	FormatL16UnormPack16
	FormatA16UnormPack16
	FormatLA16UnormPack16

	// Miscellaneous formats.
	FormatBGR8UnormPack32
	FormatBGR8SrgbPack32
	FormatRG3B2UnormPack8)

const (
	// FormatFirst is the lowest valid format.
	FormatFirst = FormatRG4UnormPack8
	// FormatLast is the highest valid format.
	FormatLast = FormatRG3B2UnormPack8

	formatCount = FormatLast + 1
)

// formatFlags are classification bits stored in the format table.
type formatFlags uint16

const (
	flagCompressed formatFlags = 1 << iota
	flagS3TC
	flagSRGB
	flagNormalized
	flagScaled
	flagUnsigned
	flagSigned
	flagInteger
	flagFloat
	flagDepth
	flagStencil
	flagPacked
	flagLuminanceAlpha
)

// Channel encodings shared by many formats.
const (
	classUnorm   = flagNormalized | flagUnsigned
	classSnorm   = flagNormalized | flagSigned
	classUscaled = flagScaled | flagUnsigned
	classSscaled = flagScaled | flagSigned
	classUint    = flagInteger | flagUnsigned
	classSint    = flagInteger | flagSigned
	classSRGB    = flagSRGB | flagNormalized | flagUnsigned
	classSfloat  = flagFloat | flagSigned
	classUfloat  = flagFloat | flagUnsigned
)

// formatInfo describes one format.
type formatInfo struct {
	name        string
	blockSize   uint8    // bytes per block
	blockExtent [3]uint8 // texels per block
	components  uint8
	flags       formatFlags
	codec       texel.Codec        // nil for compressed formats
	block       texel.BlockDecoder // nil unless the block format can be decoded
}

func uncompressed(name string, size, components uint8, flags formatFlags, codec texel.Codec) formatInfo {
	return formatInfo{
		name:        name,
		blockSize:   size,
		blockExtent: [3]uint8{1, 1, 1},
		components:  components,
		flags:       flags,
		codec:       codec,
	}
}

func compressed(name string, size, w, h, components uint8, flags formatFlags, block texel.BlockDecoder) formatInfo {
	return formatInfo{
		name:        name,
		blockSize:   size,
		blockExtent: [3]uint8{w, h, 1},
		components:  components,
		flags:       flags,
		block:       block,
	}
}

func (f Format) info() *formatInfo {
	if !f.IsValid() {
		return &formatTable[FormatUndefined]
	}
	return &formatTable[f]
}

func (f Format) has(flag formatFlags) bool { return f.info().flags&flag != 0 }

// IsValid reports whether f lies in [FormatFirst, FormatLast].
func (f Format) IsValid() bool { return f >= FormatFirst && f <= FormatLast }

// String returns the format name, e.g. "RGBA8_UNORM_PACK8".
func (f Format) String() string {
	if !f.IsValid() {
		if f == FormatUndefined {
			return "UNDEFINED"
		}
		return fmt.Sprintf("Format(%d)", uint32(f))
	}
	return formatTable[f].name
}

// BlockSize returns the size in bytes of one block, or of one texel for
// uncompressed formats. It is 0 for invalid formats.
func (f Format) BlockSize() int { return int(f.info().blockSize) }

// BlockExtent returns the texel footprint of one block. Uncompressed
// formats report 1x1x1; invalid formats report a zero extent.
func (f Format) BlockExtent() Extent {
	e := f.info().blockExtent
	return Extent{Width: int(e[0]), Height: int(e[1]), Depth: int(e[2])}
}

// Components returns the number of channels the format stores.
func (f Format) Components() int { return int(f.info().components) }

func (f Format) IsCompressed() bool     { return f.has(flagCompressed) }
func (f Format) IsS3TCCompressed() bool { return f.has(flagS3TC) }
func (f Format) IsSRGB() bool           { return f.has(flagSRGB) }
func (f Format) IsSigned() bool         { return f.has(flagSigned) }
func (f Format) IsUnsigned() bool       { return f.has(flagUnsigned) }
func (f Format) IsInteger() bool        { return f.has(flagInteger) }
func (f Format) IsScaled() bool         { return f.has(flagScaled) }
func (f Format) IsFloat() bool          { return f.has(flagFloat) }
func (f Format) IsNormalized() bool     { return f.has(flagNormalized) }
func (f Format) IsPacked() bool         { return f.has(flagPacked) }
func (f Format) IsDepth() bool          { return f.has(flagDepth) }
func (f Format) IsStencil() bool        { return f.has(flagStencil) }
func (f Format) IsDepthStencil() bool   { return f.has(flagDepth) && f.has(flagStencil) }

// IsLuminanceAlpha reports whether f is one of the legacy L, A and LA
// formats.
func (f Format) IsLuminanceAlpha() bool { return f.has(flagLuminanceAlpha) }

func (f Format) IsSignedInteger() bool   { return f.has(flagInteger) && f.has(flagSigned) }
func (f Format) IsUnsignedInteger() bool { return f.has(flagInteger) && f.has(flagUnsigned) }
func (f Format) IsUnorm() bool           { return f.has(flagNormalized) && f.has(flagUnsigned) }
func (f Format) IsSnorm() bool           { return f.has(flagNormalized) && f.has(flagSigned) }

// texelCodec returns the per-texel codec, or nil when texels of f cannot be
// addressed individually.
func (f Format) texelCodec() texel.Codec { return f.info().codec }

// blockDecoder returns the block decoder of a compressed format, or nil.
func (f Format) blockDecoder() texel.BlockDecoder { return f.info().block }
