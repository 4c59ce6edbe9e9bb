package gli

import "strconv"

// DXGIFormat is a DXGI_FORMAT value as stored in a DDS DX10 header.
type DXGIFormat uint32

// DXGI formats with a mapping in the format table.
const (
	DXGIUnknown           DXGIFormat = 0
	DXGIR32G32B32A32Float DXGIFormat = 2
	DXGIR32G32B32A32Uint  DXGIFormat = 3
	DXGIR32G32B32A32Sint  DXGIFormat = 4
	DXGIR32G32B32Float    DXGIFormat = 6
	DXGIR32G32B32Uint     DXGIFormat = 7
	DXGIR32G32B32Sint     DXGIFormat = 8
	DXGIR16G16B16A16Float DXGIFormat = 10
	DXGIR16G16B16A16Unorm DXGIFormat = 11
	DXGIR16G16B16A16Uint  DXGIFormat = 12
	DXGIR16G16B16A16Snorm DXGIFormat = 13
	DXGIR16G16B16A16Sint  DXGIFormat = 14
	DXGIR32G32Float       DXGIFormat = 16
	DXGIR32G32Uint        DXGIFormat = 17
	DXGIR32G32Sint        DXGIFormat = 18
	DXGID32FloatS8X24Uint DXGIFormat = 20
	DXGIR10G10B10A2Unorm  DXGIFormat = 24
	DXGIR10G10B10A2Uint   DXGIFormat = 25
	DXGIR11G11B10Float    DXGIFormat = 26
	DXGIR8G8B8A8Unorm     DXGIFormat = 28
	DXGIR8G8B8A8UnormSrgb DXGIFormat = 29
	DXGIR8G8B8A8Uint      DXGIFormat = 30
	DXGIR8G8B8A8Snorm     DXGIFormat = 31
	DXGIR8G8B8A8Sint      DXGIFormat = 32
	DXGIR16G16Float       DXGIFormat = 34
	DXGIR16G16Unorm       DXGIFormat = 35
	DXGIR16G16Uint        DXGIFormat = 36
	DXGIR16G16Snorm       DXGIFormat = 37
	DXGIR16G16Sint        DXGIFormat = 38
	DXGID32Float          DXGIFormat = 40
	DXGIR32Float          DXGIFormat = 41
	DXGIR32Uint           DXGIFormat = 42
	DXGIR32Sint           DXGIFormat = 43
	DXGID24UnormS8Uint    DXGIFormat = 45
	DXGIR8G8Unorm         DXGIFormat = 49
	DXGIR8G8Uint          DXGIFormat = 50
	DXGIR8G8Snorm         DXGIFormat = 51
	DXGIR8G8Sint          DXGIFormat = 52
	DXGIR16Float          DXGIFormat = 54
	DXGID16Unorm          DXGIFormat = 55
	DXGIR16Unorm          DXGIFormat = 56
	DXGIR16Uint           DXGIFormat = 57
	DXGIR16Snorm          DXGIFormat = 58
	DXGIR16Sint           DXGIFormat = 59
	DXGIR8Unorm           DXGIFormat = 61
	DXGIR8Uint            DXGIFormat = 62
	DXGIR8Snorm           DXGIFormat = 63
	DXGIR8Sint            DXGIFormat = 64
	DXGIA8Unorm           DXGIFormat = 65
	DXGIR9G9B9E5SharedExp DXGIFormat = 67
	DXGIBC1Unorm          DXGIFormat = 71
	DXGIBC1UnormSrgb      DXGIFormat = 72
	DXGIBC2Unorm          DXGIFormat = 74
	DXGIBC2UnormSrgb      DXGIFormat = 75
	DXGIBC3Unorm          DXGIFormat = 77
	DXGIBC3UnormSrgb      DXGIFormat = 78
	DXGIBC4Unorm          DXGIFormat = 80
	DXGIBC4Snorm          DXGIFormat = 81
	DXGIBC5Unorm          DXGIFormat = 83
	DXGIBC5Snorm          DXGIFormat = 84
	DXGIB5G6R5Unorm       DXGIFormat = 85
	DXGIB5G5R5A1Unorm     DXGIFormat = 86
	DXGIB8G8R8A8Unorm     DXGIFormat = 87
	DXGIB8G8R8X8Unorm     DXGIFormat = 88
	DXGIB8G8R8A8UnormSrgb DXGIFormat = 91
	DXGIB8G8R8X8UnormSrgb DXGIFormat = 93
	DXGIBC6HUF16          DXGIFormat = 95
	DXGIBC6HSF16          DXGIFormat = 96
	DXGIBC7Unorm          DXGIFormat = 98
	DXGIBC7UnormSrgb      DXGIFormat = 99
)

var dxgiTable = map[Format]DXGIFormat{
	FormatR8UnormPack8: DXGIR8Unorm,
	FormatR8SnormPack8: DXGIR8Snorm,
	FormatR8UintPack8:  DXGIR8Uint,
	FormatR8SintPack8:  DXGIR8Sint,

	FormatRG8UnormPack8: DXGIR8G8Unorm,
	FormatRG8SnormPack8: DXGIR8G8Snorm,
	FormatRG8UintPack8:  DXGIR8G8Uint,
	FormatRG8SintPack8:  DXGIR8G8Sint,

	FormatRGBA8UnormPack8: DXGIR8G8B8A8Unorm,
	FormatRGBA8SrgbPack8:  DXGIR8G8B8A8UnormSrgb,
	FormatRGBA8UintPack8:  DXGIR8G8B8A8Uint,
	FormatRGBA8SnormPack8: DXGIR8G8B8A8Snorm,
	FormatRGBA8SintPack8:  DXGIR8G8B8A8Sint,

	FormatR16UnormPack16:  DXGIR16Unorm,
	FormatR16SnormPack16:  DXGIR16Snorm,
	FormatR16UintPack16:   DXGIR16Uint,
	FormatR16SintPack16:   DXGIR16Sint,
	FormatR16SfloatPack16: DXGIR16Float,

	FormatRG16UnormPack16:  DXGIR16G16Unorm,
	FormatRG16SnormPack16:  DXGIR16G16Snorm,
	FormatRG16UintPack16:   DXGIR16G16Uint,
	FormatRG16SintPack16:   DXGIR16G16Sint,
	FormatRG16SfloatPack16: DXGIR16G16Float,

	FormatRGBA16UnormPack16:  DXGIR16G16B16A16Unorm,
	FormatRGBA16SnormPack16:  DXGIR16G16B16A16Snorm,
	FormatRGBA16UintPack16:   DXGIR16G16B16A16Uint,
	FormatRGBA16SintPack16:   DXGIR16G16B16A16Sint,
	FormatRGBA16SfloatPack16: DXGIR16G16B16A16Float,

	FormatR32SfloatPack32: DXGIR32Float,
	FormatR32UintPack32:   DXGIR32Uint,
	FormatR32SintPack32:   DXGIR32Sint,

	FormatRG32SfloatPack32: DXGIR32G32Float,
	FormatRG32UintPack32:   DXGIR32G32Uint,
	FormatRG32SintPack32:   DXGIR32G32Sint,

	FormatRGB32SfloatPack32: DXGIR32G32B32Float,
	FormatRGB32UintPack32:   DXGIR32G32B32Uint,
	FormatRGB32SintPack32:   DXGIR32G32B32Sint,

	FormatRGBA32SfloatPack32: DXGIR32G32B32A32Float,
	FormatRGBA32UintPack32:   DXGIR32G32B32A32Uint,
	FormatRGBA32SintPack32:   DXGIR32G32B32A32Sint,

	FormatBGRA8UnormPack8:     DXGIB8G8R8A8Unorm,
	FormatBGRA8SrgbPack8:      DXGIB8G8R8A8UnormSrgb,
	FormatBGR8UnormPack32:     DXGIB8G8R8X8Unorm,
	FormatBGR8SrgbPack32:      DXGIB8G8R8X8UnormSrgb,
	FormatR5G6B5UnormPack16:   DXGIB5G6R5Unorm,
	FormatA1RGB5UnormPack16:   DXGIB5G5R5A1Unorm,
	FormatBGR10A2UnormPack32:  DXGIR10G10B10A2Unorm,
	FormatBGR10A2UintPack32:   DXGIR10G10B10A2Uint,
	FormatRG11B10UfloatPack32: DXGIR11G11B10Float,
	FormatRGB9E5UfloatPack32:  DXGIR9G9B9E5SharedExp,
	FormatA8UnormPack8:        DXGIA8Unorm,

	FormatD16UnormPack16:        DXGID16Unorm,
	FormatD32SfloatPack32:       DXGID32Float,
	FormatD24UnormS8UintPack32:  DXGID24UnormS8Uint,
	FormatD32SfloatS8UintPack64: DXGID32FloatS8X24Uint,

	FormatRGBADXT1UnormBlock8:  DXGIBC1Unorm,
	FormatRGBADXT1SrgbBlock8:   DXGIBC1UnormSrgb,
	FormatRGBADXT3UnormBlock16: DXGIBC2Unorm,
	FormatRGBADXT3SrgbBlock16:  DXGIBC2UnormSrgb,
	FormatRGBADXT5UnormBlock16: DXGIBC3Unorm,
	FormatRGBADXT5SrgbBlock16:  DXGIBC3UnormSrgb,
	FormatRATI1NUnormBlock8:    DXGIBC4Unorm,
	FormatRATI1NSnormBlock8:    DXGIBC4Snorm,
	FormatRGATI2NUnormBlock16:  DXGIBC5Unorm,
	FormatRGATI2NSnormBlock16:  DXGIBC5Snorm,
	FormatRGBBPUfloatBlock16:   DXGIBC6HUF16,
	FormatRGBBPSfloatBlock16:   DXGIBC6HSF16,
	FormatRGBABPUnormBlock16:   DXGIBC7Unorm,
	FormatRGBABPSrgbBlock16:    DXGIBC7UnormSrgb,
}

var dxgiReverse = func() map[DXGIFormat]Format {
	m := make(map[DXGIFormat]Format, len(dxgiTable))
	for f, d := range dxgiTable {
		m[d] = f
	}
	return m
}()

// DXGIFormatFor returns the DXGI format of f.
func DXGIFormatFor(f Format) (DXGIFormat, bool) {
	d, ok := dxgiTable[f]
	return d, ok
}

// FormatFromDXGI returns the format stored as d, or FormatUndefined.
func FormatFromDXGI(d DXGIFormat) Format {
	return dxgiReverse[d]
}

// D3DFormat is the FourCC, or legacy D3DFORMAT number, of a DDS pixel
// format.
type D3DFormat uint32

func fourCC(s string) D3DFormat {
	return D3DFormat(uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24)
}

// Legacy DDS pixel format codes.
var (
	D3DFmtDXT1 = fourCC("DXT1")
	D3DFmtDXT2 = fourCC("DXT2")
	D3DFmtDXT3 = fourCC("DXT3")
	D3DFmtDXT4 = fourCC("DXT4")
	D3DFmtDXT5 = fourCC("DXT5")
	D3DFmtATI1 = fourCC("ATI1")
	D3DFmtATI2 = fourCC("ATI2")
	D3DFmtBC4U = fourCC("BC4U")
	D3DFmtBC4S = fourCC("BC4S")
	D3DFmtBC5U = fourCC("BC5U")
	D3DFmtBC5S = fourCC("BC5S")
	D3DFmtDX10 = fourCC("DX10")
	D3DFmtGLI1 = fourCC("GLI1")
)

// Numeric D3DFORMAT values some writers store in the FourCC field.
const (
	D3DFmtA16B16G16R16  D3DFormat = 36
	D3DFmtQ16W16V16U16  D3DFormat = 110
	D3DFmtR16F          D3DFormat = 111
	D3DFmtG16R16F       D3DFormat = 112
	D3DFmtA16B16G16R16F D3DFormat = 113
	D3DFmtR32F          D3DFormat = 114
	D3DFmtG32R32F       D3DFormat = 115
	D3DFmtA32B32G32R32F D3DFormat = 116
)

var d3dTable = map[D3DFormat]Format{
	D3DFmtDXT1: FormatRGBDXT1UnormBlock8,
	D3DFmtDXT2: FormatRGBADXT3UnormBlock16,
	D3DFmtDXT3: FormatRGBADXT3UnormBlock16,
	D3DFmtDXT4: FormatRGBADXT5UnormBlock16,
	D3DFmtDXT5: FormatRGBADXT5UnormBlock16,
	D3DFmtATI1: FormatRATI1NUnormBlock8,
	D3DFmtBC4U: FormatRATI1NUnormBlock8,
	D3DFmtBC4S: FormatRATI1NSnormBlock8,
	D3DFmtATI2: FormatRGATI2NUnormBlock16,
	D3DFmtBC5U: FormatRGATI2NUnormBlock16,
	D3DFmtBC5S: FormatRGATI2NSnormBlock16,

	D3DFmtA16B16G16R16:  FormatRGBA16UnormPack16,
	D3DFmtQ16W16V16U16:  FormatRGBA16SnormPack16,
	D3DFmtR16F:          FormatR16SfloatPack16,
	D3DFmtG16R16F:       FormatRG16SfloatPack16,
	D3DFmtA16B16G16R16F: FormatRGBA16SfloatPack16,
	D3DFmtR32F:          FormatR32SfloatPack32,
	D3DFmtG32R32F:       FormatRG32SfloatPack32,
	D3DFmtA32B32G32R32F: FormatRGBA32SfloatPack32,
}

// d3dWrite lists the formats written with a legacy FourCC instead of a DX10
// header.
var d3dWrite = map[Format]D3DFormat{
	FormatRGBDXT1UnormBlock8:   D3DFmtDXT1,
	FormatRGBADXT3UnormBlock16: D3DFmtDXT3,
	FormatRGBADXT5UnormBlock16: D3DFmtDXT5,
	FormatRATI1NUnormBlock8:    D3DFmtATI1,
	FormatRGATI2NUnormBlock16:  D3DFmtATI2,
}

// FormatFromD3D returns the format named by a legacy FourCC, or
// FormatUndefined.
func FormatFromD3D(d D3DFormat) Format {
	return d3dTable[d]
}

// String returns the FourCC characters, or the number for legacy codes.
func (d D3DFormat) String() string {
	b := [4]byte{byte(d), byte(d >> 8), byte(d >> 16), byte(d >> 24)}
	for _, c := range b {
		if c < ' ' || c > '~' {
			return "D3DFormat(" + strconv.FormatUint(uint64(d), 10) + ")"
		}
	}
	return string(b[:])
}
