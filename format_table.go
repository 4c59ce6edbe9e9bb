package gli

import "github.com/gogpu/gli/internal/texel"

// formatTable is indexed by Format. Entry 0 describes FormatUndefined and
// is all zero.
var formatTable = [formatCount]formatInfo{
	FormatRG4UnormPack8: uncompressed("RG4_UNORM_PACK8", 1, 2, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{4, 4}, []int{0, 1})),
	FormatRGBA4UnormPack16: uncompressed("RGBA4_UNORM_PACK16", 2, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{4, 4, 4, 4}, []int{0, 1, 2, 3})),
	FormatBGRA4UnormPack16: uncompressed("BGRA4_UNORM_PACK16", 2, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{4, 4, 4, 4}, []int{2, 1, 0, 3})),
	FormatR5G6B5UnormPack16: uncompressed("R5G6B5_UNORM_PACK16", 2, 3, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{5, 6, 5}, []int{0, 1, 2})),
	FormatB5G6R5UnormPack16: uncompressed("B5G6R5_UNORM_PACK16", 2, 3, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{5, 6, 5}, []int{2, 1, 0})),
	FormatRGB5A1UnormPack16: uncompressed("RGB5A1_UNORM_PACK16", 2, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{5, 5, 5, 1}, []int{0, 1, 2, 3})),
	FormatBGR5A1UnormPack16: uncompressed("BGR5A1_UNORM_PACK16", 2, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{5, 5, 5, 1}, []int{2, 1, 0, 3})),
	FormatA1RGB5UnormPack16: uncompressed("A1RGB5_UNORM_PACK16", 2, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{1, 5, 5, 5}, []int{3, 0, 1, 2})),
	FormatR8UnormPack8: uncompressed("R8_UNORM_PACK8", 1, 1, classUnorm, texel.Plain(texel.Unorm, 8, 0)),
	FormatR8SnormPack8: uncompressed("R8_SNORM_PACK8", 1, 1, classSnorm, texel.Plain(texel.Snorm, 8, 0)),
	FormatR8UscaledPack8: uncompressed("R8_USCALED_PACK8", 1, 1, classUscaled, texel.Plain(texel.Uscaled, 8, 0)),
	FormatR8SscaledPack8: uncompressed("R8_SSCALED_PACK8", 1, 1, classSscaled, texel.Plain(texel.Sscaled, 8, 0)),
	FormatR8UintPack8: uncompressed("R8_UINT_PACK8", 1, 1, classUint, texel.Plain(texel.Uint, 8, 0)),
	FormatR8SintPack8: uncompressed("R8_SINT_PACK8", 1, 1, classSint, texel.Plain(texel.Sint, 8, 0)),
	FormatR8SrgbPack8: uncompressed("R8_SRGB_PACK8", 1, 1, classSRGB, texel.Plain(texel.SRGB, 8, 0)),
	FormatRG8UnormPack8: uncompressed("RG8_UNORM_PACK8", 2, 2, classUnorm, texel.Plain(texel.Unorm, 8, 0, 1)),
	FormatRG8SnormPack8: uncompressed("RG8_SNORM_PACK8", 2, 2, classSnorm, texel.Plain(texel.Snorm, 8, 0, 1)),
	FormatRG8UscaledPack8: uncompressed("RG8_USCALED_PACK8", 2, 2, classUscaled, texel.Plain(texel.Uscaled, 8, 0, 1)),
	FormatRG8SscaledPack8: uncompressed("RG8_SSCALED_PACK8", 2, 2, classSscaled, texel.Plain(texel.Sscaled, 8, 0, 1)),
	FormatRG8UintPack8: uncompressed("RG8_UINT_PACK8", 2, 2, classUint, texel.Plain(texel.Uint, 8, 0, 1)),
	FormatRG8SintPack8: uncompressed("RG8_SINT_PACK8", 2, 2, classSint, texel.Plain(texel.Sint, 8, 0, 1)),
	FormatRG8SrgbPack8: uncompressed("RG8_SRGB_PACK8", 2, 2, classSRGB, texel.Plain(texel.SRGB, 8, 0, 1)),
	FormatRGB8UnormPack8: uncompressed("RGB8_UNORM_PACK8", 3, 3, classUnorm, texel.Plain(texel.Unorm, 8, 0, 1, 2)),
	FormatRGB8SnormPack8: uncompressed("RGB8_SNORM_PACK8", 3, 3, classSnorm, texel.Plain(texel.Snorm, 8, 0, 1, 2)),
	FormatRGB8UscaledPack8: uncompressed("RGB8_USCALED_PACK8", 3, 3, classUscaled, texel.Plain(texel.Uscaled, 8, 0, 1, 2)),
	FormatRGB8SscaledPack8: uncompressed("RGB8_SSCALED_PACK8", 3, 3, classSscaled, texel.Plain(texel.Sscaled, 8, 0, 1, 2)),
	FormatRGB8UintPack8: uncompressed("RGB8_UINT_PACK8", 3, 3, classUint, texel.Plain(texel.Uint, 8, 0, 1, 2)),
	FormatRGB8SintPack8: uncompressed("RGB8_SINT_PACK8", 3, 3, classSint, texel.Plain(texel.Sint, 8, 0, 1, 2)),
	FormatRGB8SrgbPack8: uncompressed("RGB8_SRGB_PACK8", 3, 3, classSRGB, texel.Plain(texel.SRGB, 8, 0, 1, 2)),
	FormatBGR8UnormPack8: uncompressed("BGR8_UNORM_PACK8", 3, 3, classUnorm, texel.Plain(texel.Unorm, 8, 2, 1, 0)),
	FormatBGR8SnormPack8: uncompressed("BGR8_SNORM_PACK8", 3, 3, classSnorm, texel.Plain(texel.Snorm, 8, 2, 1, 0)),
	FormatBGR8UscaledPack8: uncompressed("BGR8_USCALED_PACK8", 3, 3, classUscaled, texel.Plain(texel.Uscaled, 8, 2, 1, 0)),
	FormatBGR8SscaledPack8: uncompressed("BGR8_SSCALED_PACK8", 3, 3, classSscaled, texel.Plain(texel.Sscaled, 8, 2, 1, 0)),
	FormatBGR8UintPack8: uncompressed("BGR8_UINT_PACK8", 3, 3, classUint, texel.Plain(texel.Uint, 8, 2, 1, 0)),
	FormatBGR8SintPack8: uncompressed("BGR8_SINT_PACK8", 3, 3, classSint, texel.Plain(texel.Sint, 8, 2, 1, 0)),
	FormatBGR8SrgbPack8: uncompressed("BGR8_SRGB_PACK8", 3, 3, classSRGB, texel.Plain(texel.SRGB, 8, 2, 1, 0)),
	FormatRGBA8UnormPack8: uncompressed("RGBA8_UNORM_PACK8", 4, 4, classUnorm, texel.Plain(texel.Unorm, 8, 0, 1, 2, 3)),
	FormatRGBA8SnormPack8: uncompressed("RGBA8_SNORM_PACK8", 4, 4, classSnorm, texel.Plain(texel.Snorm, 8, 0, 1, 2, 3)),
	FormatRGBA8UscaledPack8: uncompressed("RGBA8_USCALED_PACK8", 4, 4, classUscaled, texel.Plain(texel.Uscaled, 8, 0, 1, 2, 3)),
	FormatRGBA8SscaledPack8: uncompressed("RGBA8_SSCALED_PACK8", 4, 4, classSscaled, texel.Plain(texel.Sscaled, 8, 0, 1, 2, 3)),
	FormatRGBA8UintPack8: uncompressed("RGBA8_UINT_PACK8", 4, 4, classUint, texel.Plain(texel.Uint, 8, 0, 1, 2, 3)),
	FormatRGBA8SintPack8: uncompressed("RGBA8_SINT_PACK8", 4, 4, classSint, texel.Plain(texel.Sint, 8, 0, 1, 2, 3)),
	FormatRGBA8SrgbPack8: uncompressed("RGBA8_SRGB_PACK8", 4, 4, classSRGB, texel.Plain(texel.SRGB, 8, 0, 1, 2, 3)),
	FormatBGRA8UnormPack8: uncompressed("BGRA8_UNORM_PACK8", 4, 4, classUnorm, texel.Plain(texel.Unorm, 8, 2, 1, 0, 3)),
	FormatBGRA8SnormPack8: uncompressed("BGRA8_SNORM_PACK8", 4, 4, classSnorm, texel.Plain(texel.Snorm, 8, 2, 1, 0, 3)),
	FormatBGRA8UscaledPack8: uncompressed("BGRA8_USCALED_PACK8", 4, 4, classUscaled, texel.Plain(texel.Uscaled, 8, 2, 1, 0, 3)),
	FormatBGRA8SscaledPack8: uncompressed("BGRA8_SSCALED_PACK8", 4, 4, classSscaled, texel.Plain(texel.Sscaled, 8, 2, 1, 0, 3)),
	FormatBGRA8UintPack8: uncompressed("BGRA8_UINT_PACK8", 4, 4, classUint, texel.Plain(texel.Uint, 8, 2, 1, 0, 3)),
	FormatBGRA8SintPack8: uncompressed("BGRA8_SINT_PACK8", 4, 4, classSint, texel.Plain(texel.Sint, 8, 2, 1, 0, 3)),
	FormatBGRA8SrgbPack8: uncompressed("BGRA8_SRGB_PACK8", 4, 4, classSRGB, texel.Plain(texel.SRGB, 8, 2, 1, 0, 3)),
	FormatRGBA8UnormPack32: uncompressed("RGBA8_UNORM_PACK32", 4, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGBA8SnormPack32: uncompressed("RGBA8_SNORM_PACK32", 4, 4, classSnorm|flagPacked, texel.Packed(texel.Snorm, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGBA8UscaledPack32: uncompressed("RGBA8_USCALED_PACK32", 4, 4, classUscaled|flagPacked, texel.Packed(texel.Uscaled, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGBA8SscaledPack32: uncompressed("RGBA8_SSCALED_PACK32", 4, 4, classSscaled|flagPacked, texel.Packed(texel.Sscaled, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGBA8UintPack32: uncompressed("RGBA8_UINT_PACK32", 4, 4, classUint|flagPacked, texel.Packed(texel.Uint, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGBA8SintPack32: uncompressed("RGBA8_SINT_PACK32", 4, 4, classSint|flagPacked, texel.Packed(texel.Sint, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGBA8SrgbPack32: uncompressed("RGBA8_SRGB_PACK32", 4, 4, classSRGB|flagPacked, texel.Packed(texel.SRGB, []int{8, 8, 8, 8}, []int{3, 2, 1, 0})),
	FormatRGB10A2UnormPack32: uncompressed("RGB10A2_UNORM_PACK32", 4, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{2, 10, 10, 10}, []int{3, 0, 1, 2})),
	FormatRGB10A2SnormPack32: uncompressed("RGB10A2_SNORM_PACK32", 4, 4, classSnorm|flagPacked, texel.Packed(texel.Snorm, []int{2, 10, 10, 10}, []int{3, 0, 1, 2})),
	FormatRGB10A2UscaledPack32: uncompressed("RGB10A2_USCALED_PACK32", 4, 4, classUscaled|flagPacked, texel.Packed(texel.Uscaled, []int{2, 10, 10, 10}, []int{3, 0, 1, 2})),
	FormatRGB10A2SscaledPack32: uncompressed("RGB10A2_SSCALED_PACK32", 4, 4, classSscaled|flagPacked, texel.Packed(texel.Sscaled, []int{2, 10, 10, 10}, []int{3, 0, 1, 2})),
	FormatRGB10A2UintPack32: uncompressed("RGB10A2_UINT_PACK32", 4, 4, classUint|flagPacked, texel.Packed(texel.Uint, []int{2, 10, 10, 10}, []int{3, 0, 1, 2})),
	FormatRGB10A2SintPack32: uncompressed("RGB10A2_SINT_PACK32", 4, 4, classSint|flagPacked, texel.Packed(texel.Sint, []int{2, 10, 10, 10}, []int{3, 0, 1, 2})),
	FormatBGR10A2UnormPack32: uncompressed("BGR10A2_UNORM_PACK32", 4, 4, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{2, 10, 10, 10}, []int{3, 2, 1, 0})),
	FormatBGR10A2SnormPack32: uncompressed("BGR10A2_SNORM_PACK32", 4, 4, classSnorm|flagPacked, texel.Packed(texel.Snorm, []int{2, 10, 10, 10}, []int{3, 2, 1, 0})),
	FormatBGR10A2UscaledPack32: uncompressed("BGR10A2_USCALED_PACK32", 4, 4, classUscaled|flagPacked, texel.Packed(texel.Uscaled, []int{2, 10, 10, 10}, []int{3, 2, 1, 0})),
	FormatBGR10A2SscaledPack32: uncompressed("BGR10A2_SSCALED_PACK32", 4, 4, classSscaled|flagPacked, texel.Packed(texel.Sscaled, []int{2, 10, 10, 10}, []int{3, 2, 1, 0})),
	FormatBGR10A2UintPack32: uncompressed("BGR10A2_UINT_PACK32", 4, 4, classUint|flagPacked, texel.Packed(texel.Uint, []int{2, 10, 10, 10}, []int{3, 2, 1, 0})),
	FormatBGR10A2SintPack32: uncompressed("BGR10A2_SINT_PACK32", 4, 4, classSint|flagPacked, texel.Packed(texel.Sint, []int{2, 10, 10, 10}, []int{3, 2, 1, 0})),
	FormatR16UnormPack16: uncompressed("R16_UNORM_PACK16", 2, 1, classUnorm, texel.Plain(texel.Unorm, 16, 0)),
	FormatR16SnormPack16: uncompressed("R16_SNORM_PACK16", 2, 1, classSnorm, texel.Plain(texel.Snorm, 16, 0)),
	FormatR16UscaledPack16: uncompressed("R16_USCALED_PACK16", 2, 1, classUscaled, texel.Plain(texel.Uscaled, 16, 0)),
	FormatR16SscaledPack16: uncompressed("R16_SSCALED_PACK16", 2, 1, classSscaled, texel.Plain(texel.Sscaled, 16, 0)),
	FormatR16UintPack16: uncompressed("R16_UINT_PACK16", 2, 1, classUint, texel.Plain(texel.Uint, 16, 0)),
	FormatR16SintPack16: uncompressed("R16_SINT_PACK16", 2, 1, classSint, texel.Plain(texel.Sint, 16, 0)),
	FormatR16SfloatPack16: uncompressed("R16_SFLOAT_PACK16", 2, 1, classSfloat, texel.Plain(texel.Float, 16, 0)),
	FormatRG16UnormPack16: uncompressed("RG16_UNORM_PACK16", 4, 2, classUnorm, texel.Plain(texel.Unorm, 16, 0, 1)),
	FormatRG16SnormPack16: uncompressed("RG16_SNORM_PACK16", 4, 2, classSnorm, texel.Plain(texel.Snorm, 16, 0, 1)),
	FormatRG16UscaledPack16: uncompressed("RG16_USCALED_PACK16", 4, 2, classUscaled, texel.Plain(texel.Uscaled, 16, 0, 1)),
	FormatRG16SscaledPack16: uncompressed("RG16_SSCALED_PACK16", 4, 2, classSscaled, texel.Plain(texel.Sscaled, 16, 0, 1)),
	FormatRG16UintPack16: uncompressed("RG16_UINT_PACK16", 4, 2, classUint, texel.Plain(texel.Uint, 16, 0, 1)),
	FormatRG16SintPack16: uncompressed("RG16_SINT_PACK16", 4, 2, classSint, texel.Plain(texel.Sint, 16, 0, 1)),
	FormatRG16SfloatPack16: uncompressed("RG16_SFLOAT_PACK16", 4, 2, classSfloat, texel.Plain(texel.Float, 16, 0, 1)),
	FormatRGB16UnormPack16: uncompressed("RGB16_UNORM_PACK16", 6, 3, classUnorm, texel.Plain(texel.Unorm, 16, 0, 1, 2)),
	FormatRGB16SnormPack16: uncompressed("RGB16_SNORM_PACK16", 6, 3, classSnorm, texel.Plain(texel.Snorm, 16, 0, 1, 2)),
	FormatRGB16UscaledPack16: uncompressed("RGB16_USCALED_PACK16", 6, 3, classUscaled, texel.Plain(texel.Uscaled, 16, 0, 1, 2)),
	FormatRGB16SscaledPack16: uncompressed("RGB16_SSCALED_PACK16", 6, 3, classSscaled, texel.Plain(texel.Sscaled, 16, 0, 1, 2)),
	FormatRGB16UintPack16: uncompressed("RGB16_UINT_PACK16", 6, 3, classUint, texel.Plain(texel.Uint, 16, 0, 1, 2)),
	FormatRGB16SintPack16: uncompressed("RGB16_SINT_PACK16", 6, 3, classSint, texel.Plain(texel.Sint, 16, 0, 1, 2)),
	FormatRGB16SfloatPack16: uncompressed("RGB16_SFLOAT_PACK16", 6, 3, classSfloat, texel.Plain(texel.Float, 16, 0, 1, 2)),
	FormatRGBA16UnormPack16: uncompressed("RGBA16_UNORM_PACK16", 8, 4, classUnorm, texel.Plain(texel.Unorm, 16, 0, 1, 2, 3)),
	FormatRGBA16SnormPack16: uncompressed("RGBA16_SNORM_PACK16", 8, 4, classSnorm, texel.Plain(texel.Snorm, 16, 0, 1, 2, 3)),
	FormatRGBA16UscaledPack16: uncompressed("RGBA16_USCALED_PACK16", 8, 4, classUscaled, texel.Plain(texel.Uscaled, 16, 0, 1, 2, 3)),
	FormatRGBA16SscaledPack16: uncompressed("RGBA16_SSCALED_PACK16", 8, 4, classSscaled, texel.Plain(texel.Sscaled, 16, 0, 1, 2, 3)),
	FormatRGBA16UintPack16: uncompressed("RGBA16_UINT_PACK16", 8, 4, classUint, texel.Plain(texel.Uint, 16, 0, 1, 2, 3)),
	FormatRGBA16SintPack16: uncompressed("RGBA16_SINT_PACK16", 8, 4, classSint, texel.Plain(texel.Sint, 16, 0, 1, 2, 3)),
	FormatRGBA16SfloatPack16: uncompressed("RGBA16_SFLOAT_PACK16", 8, 4, classSfloat, texel.Plain(texel.Float, 16, 0, 1, 2, 3)),
	FormatR32UintPack32: uncompressed("R32_UINT_PACK32", 4, 1, classUint, texel.Plain(texel.Uint, 32, 0)),
	FormatR32SintPack32: uncompressed("R32_SINT_PACK32", 4, 1, classSint, texel.Plain(texel.Sint, 32, 0)),
	FormatR32SfloatPack32: uncompressed("R32_SFLOAT_PACK32", 4, 1, classSfloat, texel.Plain(texel.Float, 32, 0)),
	FormatRG32UintPack32: uncompressed("RG32_UINT_PACK32", 8, 2, classUint, texel.Plain(texel.Uint, 32, 0, 1)),
	FormatRG32SintPack32: uncompressed("RG32_SINT_PACK32", 8, 2, classSint, texel.Plain(texel.Sint, 32, 0, 1)),
	FormatRG32SfloatPack32: uncompressed("RG32_SFLOAT_PACK32", 8, 2, classSfloat, texel.Plain(texel.Float, 32, 0, 1)),
	FormatRGB32UintPack32: uncompressed("RGB32_UINT_PACK32", 12, 3, classUint, texel.Plain(texel.Uint, 32, 0, 1, 2)),
	FormatRGB32SintPack32: uncompressed("RGB32_SINT_PACK32", 12, 3, classSint, texel.Plain(texel.Sint, 32, 0, 1, 2)),
	FormatRGB32SfloatPack32: uncompressed("RGB32_SFLOAT_PACK32", 12, 3, classSfloat, texel.Plain(texel.Float, 32, 0, 1, 2)),
	FormatRGBA32UintPack32: uncompressed("RGBA32_UINT_PACK32", 16, 4, classUint, texel.Plain(texel.Uint, 32, 0, 1, 2, 3)),
	FormatRGBA32SintPack32: uncompressed("RGBA32_SINT_PACK32", 16, 4, classSint, texel.Plain(texel.Sint, 32, 0, 1, 2, 3)),
	FormatRGBA32SfloatPack32: uncompressed("RGBA32_SFLOAT_PACK32", 16, 4, classSfloat, texel.Plain(texel.Float, 32, 0, 1, 2, 3)),
	FormatR64UintPack64: uncompressed("R64_UINT_PACK64", 8, 1, classUint, texel.Plain(texel.Uint, 64, 0)),
	FormatR64SintPack64: uncompressed("R64_SINT_PACK64", 8, 1, classSint, texel.Plain(texel.Sint, 64, 0)),
	FormatR64SfloatPack64: uncompressed("R64_SFLOAT_PACK64", 8, 1, classSfloat, texel.Plain(texel.Float, 64, 0)),
	FormatRG64UintPack64: uncompressed("RG64_UINT_PACK64", 16, 2, classUint, texel.Plain(texel.Uint, 64, 0, 1)),
	FormatRG64SintPack64: uncompressed("RG64_SINT_PACK64", 16, 2, classSint, texel.Plain(texel.Sint, 64, 0, 1)),
	FormatRG64SfloatPack64: uncompressed("RG64_SFLOAT_PACK64", 16, 2, classSfloat, texel.Plain(texel.Float, 64, 0, 1)),
	FormatRGB64UintPack64: uncompressed("RGB64_UINT_PACK64", 24, 3, classUint, texel.Plain(texel.Uint, 64, 0, 1, 2)),
	FormatRGB64SintPack64: uncompressed("RGB64_SINT_PACK64", 24, 3, classSint, texel.Plain(texel.Sint, 64, 0, 1, 2)),
	FormatRGB64SfloatPack64: uncompressed("RGB64_SFLOAT_PACK64", 24, 3, classSfloat, texel.Plain(texel.Float, 64, 0, 1, 2)),
	FormatRGBA64UintPack64: uncompressed("RGBA64_UINT_PACK64", 32, 4, classUint, texel.Plain(texel.Uint, 64, 0, 1, 2, 3)),
	FormatRGBA64SintPack64: uncompressed("RGBA64_SINT_PACK64", 32, 4, classSint, texel.Plain(texel.Sint, 64, 0, 1, 2, 3)),
	FormatRGBA64SfloatPack64: uncompressed("RGBA64_SFLOAT_PACK64", 32, 4, classSfloat, texel.Plain(texel.Float, 64, 0, 1, 2, 3)),
	FormatRG11B10UfloatPack32: uncompressed("RG11B10_UFLOAT_PACK32", 4, 3, classUfloat|flagPacked, texel.RG11B10()),
	FormatRGB9E5UfloatPack32: uncompressed("RGB9E5_UFLOAT_PACK32", 4, 3, classUfloat|flagPacked, texel.RGB9E5()),
	FormatD16UnormPack16: uncompressed("D16_UNORM_PACK16", 2, 1, flagDepth|classUnorm, texel.DepthStencil(texel.Depth16, -1)),
	FormatD24UnormPack32: uncompressed("D24_UNORM_PACK32", 4, 1, flagDepth|classUnorm|flagPacked, texel.DepthStencil(texel.Depth24, -1)),
	FormatD32SfloatPack32: uncompressed("D32_SFLOAT_PACK32", 4, 1, flagDepth|classSfloat, texel.DepthStencil(texel.Depth32, -1)),
	FormatS8UintPack8: uncompressed("S8_UINT_PACK8", 1, 1, flagStencil|classUint, texel.DepthStencil(texel.NoDepth, 0)),
	FormatD16UnormS8UintPack32: uncompressed("D16_UNORM_S8_UINT_PACK32", 4, 2, flagDepth|flagStencil|classUnorm|flagPacked, texel.DepthStencil(texel.Depth16, 2)),
	FormatD24UnormS8UintPack32: uncompressed("D24_UNORM_S8_UINT_PACK32", 4, 2, flagDepth|flagStencil|classUnorm|flagPacked, texel.DepthStencil(texel.Depth24, 3)),
	FormatD32SfloatS8UintPack64: uncompressed("D32_SFLOAT_S8_UINT_PACK64", 8, 2, flagDepth|flagStencil|classSfloat, texel.DepthStencil(texel.Depth32, 4)),
	FormatRGBDXT1UnormBlock8: compressed("RGB_DXT1_UNORM_BLOCK8", 8, 4, 4, 3, flagCompressed|flagS3TC|classUnorm, texel.BC1(false, false)),
	FormatRGBDXT1SrgbBlock8: compressed("RGB_DXT1_SRGB_BLOCK8", 8, 4, 4, 3, flagCompressed|flagS3TC|classSRGB, texel.BC1(false, true)),
	FormatRGBADXT1UnormBlock8: compressed("RGBA_DXT1_UNORM_BLOCK8", 8, 4, 4, 4, flagCompressed|flagS3TC|classUnorm, texel.BC1(true, false)),
	FormatRGBADXT1SrgbBlock8: compressed("RGBA_DXT1_SRGB_BLOCK8", 8, 4, 4, 4, flagCompressed|flagS3TC|classSRGB, texel.BC1(true, true)),
	FormatRGBADXT3UnormBlock16: compressed("RGBA_DXT3_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|flagS3TC|classUnorm, texel.BC2(false)),
	FormatRGBADXT3SrgbBlock16: compressed("RGBA_DXT3_SRGB_BLOCK16", 16, 4, 4, 4, flagCompressed|flagS3TC|classSRGB, texel.BC2(true)),
	FormatRGBADXT5UnormBlock16: compressed("RGBA_DXT5_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|flagS3TC|classUnorm, texel.BC3(false)),
	FormatRGBADXT5SrgbBlock16: compressed("RGBA_DXT5_SRGB_BLOCK16", 16, 4, 4, 4, flagCompressed|flagS3TC|classSRGB, texel.BC3(true)),
	FormatRATI1NUnormBlock8: compressed("R_ATI1N_UNORM_BLOCK8", 8, 4, 4, 1, flagCompressed|classUnorm, texel.BC4(false)),
	FormatRATI1NSnormBlock8: compressed("R_ATI1N_SNORM_BLOCK8", 8, 4, 4, 1, flagCompressed|classSnorm, texel.BC4(true)),
	FormatRGATI2NUnormBlock16: compressed("RG_ATI2N_UNORM_BLOCK16", 16, 4, 4, 2, flagCompressed|classUnorm, texel.BC5(false)),
	FormatRGATI2NSnormBlock16: compressed("RG_ATI2N_SNORM_BLOCK16", 16, 4, 4, 2, flagCompressed|classSnorm, texel.BC5(true)),
	FormatRGBBPUfloatBlock16: compressed("RGB_BP_UFLOAT_BLOCK16", 16, 4, 4, 3, flagCompressed|classUfloat, nil),
	FormatRGBBPSfloatBlock16: compressed("RGB_BP_SFLOAT_BLOCK16", 16, 4, 4, 3, flagCompressed|classSfloat, nil),
	FormatRGBABPUnormBlock16: compressed("RGBA_BP_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBABPSrgbBlock16: compressed("RGBA_BP_SRGB_BLOCK16", 16, 4, 4, 4, flagCompressed|classSRGB, nil),
	FormatRGBETC2UnormBlock8: compressed("RGB_ETC2_UNORM_BLOCK8", 8, 4, 4, 3, flagCompressed|classUnorm, nil),
	FormatRGBETC2SrgbBlock8: compressed("RGB_ETC2_SRGB_BLOCK8", 8, 4, 4, 3, flagCompressed|classSRGB, nil),
	FormatRGBAETC2UnormBlock8: compressed("RGBA_ETC2_UNORM_BLOCK8", 8, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAETC2SrgbBlock8: compressed("RGBA_ETC2_SRGB_BLOCK8", 8, 4, 4, 4, flagCompressed|classSRGB, nil),
	FormatRGBAETC2UnormBlock16: compressed("RGBA_ETC2_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAETC2SrgbBlock16: compressed("RGBA_ETC2_SRGB_BLOCK16", 16, 4, 4, 4, flagCompressed|classSRGB, nil),
	FormatREACUnormBlock8: compressed("R_EAC_UNORM_BLOCK8", 8, 4, 4, 1, flagCompressed|classUnorm, nil),
	FormatREACSnormBlock8: compressed("R_EAC_SNORM_BLOCK8", 8, 4, 4, 1, flagCompressed|classSnorm, nil),
	FormatRGEACUnormBlock16: compressed("RG_EAC_UNORM_BLOCK16", 16, 4, 4, 2, flagCompressed|classUnorm, nil),
	FormatRGEACSnormBlock16: compressed("RG_EAC_SNORM_BLOCK16", 16, 4, 4, 2, flagCompressed|classSnorm, nil),
	FormatRGBAASTC4x4UnormBlock16: compressed("RGBA_ASTC_4X4_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC4x4SrgbBlock16: compressed("RGBA_ASTC_4X4_SRGB_BLOCK16", 16, 4, 4, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC5x4UnormBlock16: compressed("RGBA_ASTC_5X4_UNORM_BLOCK16", 16, 5, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC5x4SrgbBlock16: compressed("RGBA_ASTC_5X4_SRGB_BLOCK16", 16, 5, 4, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC5x5UnormBlock16: compressed("RGBA_ASTC_5X5_UNORM_BLOCK16", 16, 5, 5, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC5x5SrgbBlock16: compressed("RGBA_ASTC_5X5_SRGB_BLOCK16", 16, 5, 5, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC6x5UnormBlock16: compressed("RGBA_ASTC_6X5_UNORM_BLOCK16", 16, 6, 5, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC6x5SrgbBlock16: compressed("RGBA_ASTC_6X5_SRGB_BLOCK16", 16, 6, 5, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC6x6UnormBlock16: compressed("RGBA_ASTC_6X6_UNORM_BLOCK16", 16, 6, 6, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC6x6SrgbBlock16: compressed("RGBA_ASTC_6X6_SRGB_BLOCK16", 16, 6, 6, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC8x5UnormBlock16: compressed("RGBA_ASTC_8X5_UNORM_BLOCK16", 16, 8, 5, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC8x5SrgbBlock16: compressed("RGBA_ASTC_8X5_SRGB_BLOCK16", 16, 8, 5, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC8x6UnormBlock16: compressed("RGBA_ASTC_8X6_UNORM_BLOCK16", 16, 8, 6, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC8x6SrgbBlock16: compressed("RGBA_ASTC_8X6_SRGB_BLOCK16", 16, 8, 6, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC8x8UnormBlock16: compressed("RGBA_ASTC_8X8_UNORM_BLOCK16", 16, 8, 8, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC8x8SrgbBlock16: compressed("RGBA_ASTC_8X8_SRGB_BLOCK16", 16, 8, 8, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC10x5UnormBlock16: compressed("RGBA_ASTC_10X5_UNORM_BLOCK16", 16, 10, 5, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC10x5SrgbBlock16: compressed("RGBA_ASTC_10X5_SRGB_BLOCK16", 16, 10, 5, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC10x6UnormBlock16: compressed("RGBA_ASTC_10X6_UNORM_BLOCK16", 16, 10, 6, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC10x6SrgbBlock16: compressed("RGBA_ASTC_10X6_SRGB_BLOCK16", 16, 10, 6, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC10x8UnormBlock16: compressed("RGBA_ASTC_10X8_UNORM_BLOCK16", 16, 10, 8, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC10x8SrgbBlock16: compressed("RGBA_ASTC_10X8_SRGB_BLOCK16", 16, 10, 8, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC10x10UnormBlock16: compressed("RGBA_ASTC_10X10_UNORM_BLOCK16", 16, 10, 10, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC10x10SrgbBlock16: compressed("RGBA_ASTC_10X10_SRGB_BLOCK16", 16, 10, 10, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC12x10UnormBlock16: compressed("RGBA_ASTC_12X10_UNORM_BLOCK16", 16, 12, 10, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC12x10SrgbBlock16: compressed("RGBA_ASTC_12X10_SRGB_BLOCK16", 16, 12, 10, 4, flagCompressed|classSRGB, nil),
	FormatRGBAASTC12x12UnormBlock16: compressed("RGBA_ASTC_12X12_UNORM_BLOCK16", 16, 12, 12, 4, flagCompressed|classUnorm, nil),
	FormatRGBAASTC12x12SrgbBlock16: compressed("RGBA_ASTC_12X12_SRGB_BLOCK16", 16, 12, 12, 4, flagCompressed|classSRGB, nil),
	FormatRGBPVRTC1_8x8UnormBlock32: compressed("RGB_PVRTC1_8X8_UNORM_BLOCK32", 32, 8, 8, 3, flagCompressed|classUnorm, nil),
	FormatRGBPVRTC1_8x8SrgbBlock32: compressed("RGB_PVRTC1_8X8_SRGB_BLOCK32", 32, 8, 8, 3, flagCompressed|classSRGB, nil),
	FormatRGBPVRTC1_16x8UnormBlock32: compressed("RGB_PVRTC1_16X8_UNORM_BLOCK32", 32, 16, 8, 3, flagCompressed|classUnorm, nil),
	FormatRGBPVRTC1_16x8SrgbBlock32: compressed("RGB_PVRTC1_16X8_SRGB_BLOCK32", 32, 16, 8, 3, flagCompressed|classSRGB, nil),
	FormatRGBAPVRTC1_8x8UnormBlock32: compressed("RGBA_PVRTC1_8X8_UNORM_BLOCK32", 32, 8, 8, 4, flagCompressed|classUnorm, nil),
	FormatRGBAPVRTC1_8x8SrgbBlock32: compressed("RGBA_PVRTC1_8X8_SRGB_BLOCK32", 32, 8, 8, 4, flagCompressed|classSRGB, nil),
	FormatRGBAPVRTC1_16x8UnormBlock32: compressed("RGBA_PVRTC1_16X8_UNORM_BLOCK32", 32, 16, 8, 4, flagCompressed|classUnorm, nil),
	FormatRGBAPVRTC1_16x8SrgbBlock32: compressed("RGBA_PVRTC1_16X8_SRGB_BLOCK32", 32, 16, 8, 4, flagCompressed|classSRGB, nil),
	FormatRGBAPVRTC2_4x4UnormBlock8: compressed("RGBA_PVRTC2_4X4_UNORM_BLOCK8", 8, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAPVRTC2_4x4SrgbBlock8: compressed("RGBA_PVRTC2_4X4_SRGB_BLOCK8", 8, 4, 4, 4, flagCompressed|classSRGB, nil),
	FormatRGBAPVRTC2_8x4UnormBlock8: compressed("RGBA_PVRTC2_8X4_UNORM_BLOCK8", 8, 8, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAPVRTC2_8x4SrgbBlock8: compressed("RGBA_PVRTC2_8X4_SRGB_BLOCK8", 8, 8, 4, 4, flagCompressed|classSRGB, nil),
	FormatRGBETCUnormBlock8: compressed("RGB_ETC_UNORM_BLOCK8", 8, 4, 4, 3, flagCompressed|classUnorm, nil),
	FormatRGBATCUnormBlock8: compressed("RGB_ATC_UNORM_BLOCK8", 8, 4, 4, 3, flagCompressed|classUnorm, nil),
	FormatRGBAATCAUnormBlock16: compressed("RGBA_ATCA_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatRGBAATCIUnormBlock16: compressed("RGBA_ATCI_UNORM_BLOCK16", 16, 4, 4, 4, flagCompressed|classUnorm, nil),
	FormatL8UnormPack8: uncompressed("L8_UNORM_PACK8", 1, 1, classUnorm|flagLuminanceAlpha, texel.Luminance(8, true, false)),
	FormatA8UnormPack8: uncompressed("A8_UNORM_PACK8", 1, 1, classUnorm|flagLuminanceAlpha, texel.Luminance(8, false, true)),
	FormatLA8UnormPack8: uncompressed("LA8_UNORM_PACK8", 2, 2, classUnorm|flagLuminanceAlpha, texel.Luminance(8, true, true)),
	FormatL16UnormPack16: uncompressed("L16_UNORM_PACK16", 2, 1, classUnorm|flagLuminanceAlpha, texel.Luminance(16, true, false)),
	FormatA16UnormPack16: uncompressed("A16_UNORM_PACK16", 2, 1, classUnorm|flagLuminanceAlpha, texel.Luminance(16, false, true)),
	FormatLA16UnormPack16: uncompressed("LA16_UNORM_PACK16", 4, 2, classUnorm|flagLuminanceAlpha, texel.Luminance(16, true, true)),
	FormatBGR8UnormPack32: uncompressed("BGR8_UNORM_PACK32", 4, 3, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{8, 8, 8, 8}, []int{texel.Pad, 0, 1, 2})),
	FormatBGR8SrgbPack32: uncompressed("BGR8_SRGB_PACK32", 4, 3, classSRGB|flagPacked, texel.Packed(texel.SRGB, []int{8, 8, 8, 8}, []int{texel.Pad, 0, 1, 2})),
	FormatRG3B2UnormPack8: uncompressed("RG3B2_UNORM_PACK8", 1, 3, classUnorm|flagPacked, texel.Packed(texel.Unorm, []int{3, 3, 2}, []int{0, 1, 2})),}
