package gli

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

var webgpuTable = map[Format]gputypes.TextureFormat{
	FormatR8UnormPack8: gputypes.TextureFormatR8Unorm,
	FormatR8SnormPack8: gputypes.TextureFormatR8Snorm,
	FormatR8UintPack8:  gputypes.TextureFormatR8Uint,
	FormatR8SintPack8:  gputypes.TextureFormatR8Sint,

	FormatR16UnormPack16:  gputypes.TextureFormatR16Unorm,
	FormatR16SnormPack16:  gputypes.TextureFormatR16Snorm,
	FormatR16UintPack16:   gputypes.TextureFormatR16Uint,
	FormatR16SintPack16:   gputypes.TextureFormatR16Sint,
	FormatR16SfloatPack16: gputypes.TextureFormatR16Float,

	FormatRG8UnormPack8: gputypes.TextureFormatRG8Unorm,
	FormatRG8SnormPack8: gputypes.TextureFormatRG8Snorm,
	FormatRG8UintPack8:  gputypes.TextureFormatRG8Uint,
	FormatRG8SintPack8:  gputypes.TextureFormatRG8Sint,

	FormatR32SfloatPack32: gputypes.TextureFormatR32Float,
	FormatR32UintPack32:   gputypes.TextureFormatR32Uint,
	FormatR32SintPack32:   gputypes.TextureFormatR32Sint,

	FormatRG16UnormPack16:  gputypes.TextureFormatRG16Unorm,
	FormatRG16SnormPack16:  gputypes.TextureFormatRG16Snorm,
	FormatRG16UintPack16:   gputypes.TextureFormatRG16Uint,
	FormatRG16SintPack16:   gputypes.TextureFormatRG16Sint,
	FormatRG16SfloatPack16: gputypes.TextureFormatRG16Float,

	FormatRGBA8UnormPack8: gputypes.TextureFormatRGBA8Unorm,
	FormatRGBA8SrgbPack8:  gputypes.TextureFormatRGBA8UnormSrgb,
	FormatRGBA8SnormPack8: gputypes.TextureFormatRGBA8Snorm,
	FormatRGBA8UintPack8:  gputypes.TextureFormatRGBA8Uint,
	FormatRGBA8SintPack8:  gputypes.TextureFormatRGBA8Sint,
	FormatBGRA8UnormPack8: gputypes.TextureFormatBGRA8Unorm,
	FormatBGRA8SrgbPack8:  gputypes.TextureFormatBGRA8UnormSrgb,

	FormatBGR10A2UintPack32:   gputypes.TextureFormatRGB10A2Uint,
	FormatBGR10A2UnormPack32:  gputypes.TextureFormatRGB10A2Unorm,
	FormatRG11B10UfloatPack32: gputypes.TextureFormatRG11B10Ufloat,
	FormatRGB9E5UfloatPack32:  gputypes.TextureFormatRGB9E5Ufloat,

	FormatRG32SfloatPack32: gputypes.TextureFormatRG32Float,
	FormatRG32UintPack32:   gputypes.TextureFormatRG32Uint,
	FormatRG32SintPack32:   gputypes.TextureFormatRG32Sint,

	FormatRGBA16UnormPack16:  gputypes.TextureFormatRGBA16Unorm,
	FormatRGBA16SnormPack16:  gputypes.TextureFormatRGBA16Snorm,
	FormatRGBA16UintPack16:   gputypes.TextureFormatRGBA16Uint,
	FormatRGBA16SintPack16:   gputypes.TextureFormatRGBA16Sint,
	FormatRGBA16SfloatPack16: gputypes.TextureFormatRGBA16Float,

	FormatRGBA32SfloatPack32: gputypes.TextureFormatRGBA32Float,
	FormatRGBA32UintPack32:   gputypes.TextureFormatRGBA32Uint,
	FormatRGBA32SintPack32:   gputypes.TextureFormatRGBA32Sint,

	FormatS8UintPack8:           gputypes.TextureFormatStencil8,
	FormatD16UnormPack16:        gputypes.TextureFormatDepth16Unorm,
	FormatD24UnormPack32:        gputypes.TextureFormatDepth24Plus,
	FormatD24UnormS8UintPack32:  gputypes.TextureFormatDepth24PlusStencil8,
	FormatD32SfloatPack32:       gputypes.TextureFormatDepth32Float,
	FormatD32SfloatS8UintPack64: gputypes.TextureFormatDepth32FloatStencil8,

	FormatRGBADXT1UnormBlock8:  gputypes.TextureFormatBC1RGBAUnorm,
	FormatRGBADXT1SrgbBlock8:   gputypes.TextureFormatBC1RGBAUnormSrgb,
	FormatRGBADXT3UnormBlock16: gputypes.TextureFormatBC2RGBAUnorm,
	FormatRGBADXT3SrgbBlock16:  gputypes.TextureFormatBC2RGBAUnormSrgb,
	FormatRGBADXT5UnormBlock16: gputypes.TextureFormatBC3RGBAUnorm,
	FormatRGBADXT5SrgbBlock16:  gputypes.TextureFormatBC3RGBAUnormSrgb,
	FormatRATI1NUnormBlock8:    gputypes.TextureFormatBC4RUnorm,
	FormatRATI1NSnormBlock8:    gputypes.TextureFormatBC4RSnorm,
	FormatRGATI2NUnormBlock16:  gputypes.TextureFormatBC5RGUnorm,
	FormatRGATI2NSnormBlock16:  gputypes.TextureFormatBC5RGSnorm,
	FormatRGBBPUfloatBlock16:   gputypes.TextureFormatBC6HRGBUfloat,
	FormatRGBBPSfloatBlock16:   gputypes.TextureFormatBC6HRGBFloat,
	FormatRGBABPUnormBlock16:   gputypes.TextureFormatBC7RGBAUnorm,
	FormatRGBABPSrgbBlock16:    gputypes.TextureFormatBC7RGBAUnormSrgb,

	FormatRGBETC2UnormBlock8:   gputypes.TextureFormatETC2RGB8Unorm,
	FormatRGBETC2SrgbBlock8:    gputypes.TextureFormatETC2RGB8UnormSrgb,
	FormatRGBAETC2UnormBlock8:  gputypes.TextureFormatETC2RGB8A1Unorm,
	FormatRGBAETC2SrgbBlock8:   gputypes.TextureFormatETC2RGB8A1UnormSrgb,
	FormatRGBAETC2UnormBlock16: gputypes.TextureFormatETC2RGBA8Unorm,
	FormatRGBAETC2SrgbBlock16:  gputypes.TextureFormatETC2RGBA8UnormSrgb,
	FormatREACUnormBlock8:      gputypes.TextureFormatEACR11Unorm,
	FormatREACSnormBlock8:      gputypes.TextureFormatEACR11Snorm,
	FormatRGEACUnormBlock16:    gputypes.TextureFormatEACRG11Unorm,
	FormatRGEACSnormBlock16:    gputypes.TextureFormatEACRG11Snorm,

	FormatRGBAASTC4x4UnormBlock16:   gputypes.TextureFormatASTC4x4Unorm,
	FormatRGBAASTC4x4SrgbBlock16:    gputypes.TextureFormatASTC4x4UnormSrgb,
	FormatRGBAASTC5x4UnormBlock16:   gputypes.TextureFormatASTC5x4Unorm,
	FormatRGBAASTC5x4SrgbBlock16:    gputypes.TextureFormatASTC5x4UnormSrgb,
	FormatRGBAASTC5x5UnormBlock16:   gputypes.TextureFormatASTC5x5Unorm,
	FormatRGBAASTC5x5SrgbBlock16:    gputypes.TextureFormatASTC5x5UnormSrgb,
	FormatRGBAASTC6x5UnormBlock16:   gputypes.TextureFormatASTC6x5Unorm,
	FormatRGBAASTC6x5SrgbBlock16:    gputypes.TextureFormatASTC6x5UnormSrgb,
	FormatRGBAASTC6x6UnormBlock16:   gputypes.TextureFormatASTC6x6Unorm,
	FormatRGBAASTC6x6SrgbBlock16:    gputypes.TextureFormatASTC6x6UnormSrgb,
	FormatRGBAASTC8x5UnormBlock16:   gputypes.TextureFormatASTC8x5Unorm,
	FormatRGBAASTC8x5SrgbBlock16:    gputypes.TextureFormatASTC8x5UnormSrgb,
	FormatRGBAASTC8x6UnormBlock16:   gputypes.TextureFormatASTC8x6Unorm,
	FormatRGBAASTC8x6SrgbBlock16:    gputypes.TextureFormatASTC8x6UnormSrgb,
	FormatRGBAASTC8x8UnormBlock16:   gputypes.TextureFormatASTC8x8Unorm,
	FormatRGBAASTC8x8SrgbBlock16:    gputypes.TextureFormatASTC8x8UnormSrgb,
	FormatRGBAASTC10x5UnormBlock16:  gputypes.TextureFormatASTC10x5Unorm,
	FormatRGBAASTC10x5SrgbBlock16:   gputypes.TextureFormatASTC10x5UnormSrgb,
	FormatRGBAASTC10x6UnormBlock16:  gputypes.TextureFormatASTC10x6Unorm,
	FormatRGBAASTC10x6SrgbBlock16:   gputypes.TextureFormatASTC10x6UnormSrgb,
	FormatRGBAASTC10x8UnormBlock16:  gputypes.TextureFormatASTC10x8Unorm,
	FormatRGBAASTC10x8SrgbBlock16:   gputypes.TextureFormatASTC10x8UnormSrgb,
	FormatRGBAASTC10x10UnormBlock16: gputypes.TextureFormatASTC10x10Unorm,
	FormatRGBAASTC10x10SrgbBlock16:  gputypes.TextureFormatASTC10x10UnormSrgb,
	FormatRGBAASTC12x10UnormBlock16: gputypes.TextureFormatASTC12x10Unorm,
	FormatRGBAASTC12x10SrgbBlock16:  gputypes.TextureFormatASTC12x10UnormSrgb,
	FormatRGBAASTC12x12UnormBlock16: gputypes.TextureFormatASTC12x12Unorm,
	FormatRGBAASTC12x12SrgbBlock16:  gputypes.TextureFormatASTC12x12UnormSrgb,
}

var webgpuReverse = func() map[gputypes.TextureFormat]Format {
	m := make(map[gputypes.TextureFormat]Format, len(webgpuTable))
	for f, w := range webgpuTable {
		m[w] = f
	}
	return m
}()

// WebGPUFormatFor returns the WebGPU texture format of f.
func WebGPUFormatFor(f Format) (gputypes.TextureFormat, bool) {
	w, ok := webgpuTable[f]
	return w, ok
}

// FormatFromWebGPU returns the format matching w, or FormatUndefined.
func FormatFromWebGPU(w gputypes.TextureFormat) Format {
	return webgpuReverse[w]
}

// webgpuViewDimension maps targets to view dimensions. 1D arrays have no
// WebGPU view.
var webgpuViewDimension = [targetCount]gputypes.TextureViewDimension{
	Target1D:        gputypes.TextureViewDimension1D,
	Target2D:        gputypes.TextureViewDimension2D,
	Target2DArray:   gputypes.TextureViewDimension2DArray,
	Target3D:        gputypes.TextureViewDimension3D,
	TargetRect:      gputypes.TextureViewDimension2D,
	TargetRectArray: gputypes.TextureViewDimension2DArray,
	TargetCube:      gputypes.TextureViewDimensionCube,
	TargetCubeArray: gputypes.TextureViewDimensionCubeArray,
}

// webgpuShape checks that the view of t can become a WebGPU texture.
func (t *Texture) webgpuShape() (gputypes.TextureFormat, gputypes.TextureViewDimension, error) {
	if err := t.usable(); err != nil {
		return 0, 0, err
	}
	w, ok := webgpuTable[t.format]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v has no WebGPU format", ErrUnsupportedFormat, t.format)
	}
	dim := webgpuViewDimension[t.target]
	if dim == gputypes.TextureViewDimensionUndefined {
		return 0, 0, fmt.Errorf("%w: %v has no WebGPU view dimension", ErrInvalidTarget, t.target)
	}
	return w, dim, nil
}

// WebGPUDescriptor describes a WebGPU texture holding the images in view
// of t. Layers and cube faces both map to array layers.
func (t *Texture) WebGPUDescriptor(usage gputypes.TextureUsage) (gputypes.TextureDescriptor, error) {
	w, _, err := t.webgpuShape()
	if err != nil {
		return gputypes.TextureDescriptor{}, err
	}
	e := t.Extent(0)
	desc := gputypes.TextureDescriptor{
		Size:          gputypes.NewExtent2D(uint32(e.Width), uint32(e.Height)),
		MipLevelCount: uint32(t.Levels()),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        w,
		Usage:         usage,
	}
	switch {
	case t.target.Is1D():
		desc.Dimension = gputypes.TextureDimension1D
	case t.target == Target3D:
		desc.Dimension = gputypes.TextureDimension3D
		desc.Size.DepthOrArrayLayers = uint32(e.Depth)
	default:
		desc.Size.DepthOrArrayLayers = uint32(t.Layers() * t.Faces())
	}
	return desc, nil
}

// WebGPUViewDescriptor describes a view covering every image of the
// texture made from WebGPUDescriptor.
func (t *Texture) WebGPUViewDescriptor() (gputypes.TextureViewDescriptor, error) {
	w, dim, err := t.webgpuShape()
	if err != nil {
		return gputypes.TextureViewDescriptor{}, err
	}
	desc := gputypes.TextureViewDescriptor{
		Format:        w,
		Dimension:     dim,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: uint32(t.Levels()),
	}
	if t.target != Target3D {
		desc.ArrayLayerCount = uint32(t.Layers() * t.Faces())
	} else {
		desc.ArrayLayerCount = 1
	}
	return desc, nil
}

// WebGPUDescriptor returns the WebGPU sampler matching s. Border wrap modes
// and mirror-once have no WebGPU equivalent.
func (s *Sampler) WebGPUDescriptor() (gputypes.SamplerDescriptor, error) {
	var mode gputypes.AddressMode
	switch s.wrap {
	case WrapClampToEdge:
		mode = gputypes.AddressModeClampToEdge
	case WrapRepeat:
		mode = gputypes.AddressModeRepeat
	case WrapMirrorRepeat:
		mode = gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.SamplerDescriptor{}, fmt.Errorf("gli: wrap %v has no WebGPU address mode", s.wrap)
	}
	filter := gputypes.FilterModeNearest
	if s.min == FilterLinear {
		filter = gputypes.FilterModeLinear
	}
	desc := gputypes.SamplerDescriptor{
		AddressModeU:  mode,
		AddressModeV:  mode,
		AddressModeW:  mode,
		MagFilter:     filter,
		MinFilter:     filter,
		MipmapFilter:  gputypes.MipmapFilterModeNearest,
		LodMaxClamp:   float32(max(s.tex.Levels()-1, 0)),
		MaxAnisotropy: 1,
	}
	switch s.mip {
	case FilterNone:
		desc.LodMaxClamp = 0
	case FilterLinear:
		desc.MipmapFilter = gputypes.MipmapFilterModeLinear
	}
	return desc, nil
}
