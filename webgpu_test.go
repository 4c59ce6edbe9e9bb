package gli

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestWebGPUFormat(t *testing.T) {
	tests := []struct {
		in   Format
		want gputypes.TextureFormat
		ok   bool
	}{
		{FormatRGBA8UnormPack8, gputypes.TextureFormatRGBA8Unorm, true},
		{FormatBGRA8SrgbPack8, gputypes.TextureFormatBGRA8UnormSrgb, true},
		{FormatD24UnormPack32, gputypes.TextureFormatDepth24Plus, true},
		{FormatRGBAASTC12x12UnormBlock16, gputypes.TextureFormatASTC12x12Unorm, true},
		{FormatRGB8UnormPack8, gputypes.TextureFormatUndefined, false},
	}
	for _, tt := range tests {
		got, ok := WebGPUFormatFor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("WebGPUFormatFor(%v) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if f := FormatFromWebGPU(gputypes.TextureFormatRGBA8Unorm); f != FormatRGBA8UnormPack8 {
		t.Errorf("FormatFromWebGPU(RGBA8Unorm) = %v", f)
	}
	for f, w := range webgpuTable {
		if back := FormatFromWebGPU(w); back.BlockSize() != f.BlockSize() || back.BlockExtent() != f.BlockExtent() {
			t.Errorf("FormatFromWebGPU(%v) = %v, want the layout of %v", w, back, f)
		}
	}
}

func TestWebGPUDescriptor(t *testing.T) {
	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	tests := []struct {
		name     string
		target   Target
		extent   Extent
		layers   int
		levels   int
		dim      gputypes.TextureDimension
		size     gputypes.Extent3D
		viewDim  gputypes.TextureViewDimension
		viewLays uint32
	}{
		{"1d", Target1D, Extent{16, 1, 1}, 1, 1, gputypes.TextureDimension1D,
			gputypes.Extent3D{Width: 16, Height: 1, DepthOrArrayLayers: 1}, gputypes.TextureViewDimension1D, 1},
		{"2d", Target2D, Extent{8, 4, 1}, 1, 4, gputypes.TextureDimension2D,
			gputypes.Extent3D{Width: 8, Height: 4, DepthOrArrayLayers: 1}, gputypes.TextureViewDimension2D, 1},
		{"2d array", Target2DArray, Extent{8, 8, 1}, 3, 1, gputypes.TextureDimension2D,
			gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 3}, gputypes.TextureViewDimension2DArray, 3},
		{"rect", TargetRect, Extent{5, 3, 1}, 1, 1, gputypes.TextureDimension2D,
			gputypes.Extent3D{Width: 5, Height: 3, DepthOrArrayLayers: 1}, gputypes.TextureViewDimension2D, 1},
		{"cube", TargetCube, Extent{4, 4, 1}, 1, 3, gputypes.TextureDimension2D,
			gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 6}, gputypes.TextureViewDimensionCube, 6},
		{"cube array", TargetCubeArray, Extent{4, 4, 1}, 2, 1, gputypes.TextureDimension2D,
			gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 12}, gputypes.TextureViewDimensionCubeArray, 12},
		{"3d", Target3D, Extent{4, 4, 8}, 1, 2, gputypes.TextureDimension3D,
			gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 8}, gputypes.TextureViewDimension3D, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := newTestTexture(t, tt.target, FormatRGBA8UnormPack8, tt.extent, tt.layers, tt.levels)
			desc, err := tex.WebGPUDescriptor(usage)
			if err != nil {
				t.Fatalf("WebGPUDescriptor() error = %v", err)
			}
			if desc.Dimension != tt.dim || desc.Size != tt.size {
				t.Errorf("WebGPUDescriptor() dimension %v size %+v, want %v %+v", desc.Dimension, desc.Size, tt.dim, tt.size)
			}
			if desc.MipLevelCount != uint32(tt.levels) || desc.SampleCount != 1 || desc.Usage != usage {
				t.Errorf("WebGPUDescriptor() = %+v", desc)
			}
			if desc.Format != gputypes.TextureFormatRGBA8Unorm {
				t.Errorf("Format = %v, want RGBA8Unorm", desc.Format)
			}

			view, err := tex.WebGPUViewDescriptor()
			if err != nil {
				t.Fatalf("WebGPUViewDescriptor() error = %v", err)
			}
			if view.Dimension != tt.viewDim || view.ArrayLayerCount != tt.viewLays || view.MipLevelCount != uint32(tt.levels) {
				t.Errorf("WebGPUViewDescriptor() = %+v, want dimension %v with %d layers", view, tt.viewDim, tt.viewLays)
			}
		})
	}
}

func TestWebGPUDescriptorOfView(t *testing.T) {
	tex := newTestTexture(t, Target2DArray, FormatRGBA8UnormPack8, Extent{8, 8, 1}, 4, 4)
	view, err := ShareFromDetail(tex, FormatRGBA8UnormPack8, 1, 2, 0, 0, 1, 3)
	if err != nil {
		t.Fatalf("ShareFromDetail() error = %v", err)
	}
	defer view.Release()
	desc, err := view.WebGPUDescriptor(gputypes.TextureUsageCopyDst)
	if err != nil {
		t.Fatalf("WebGPUDescriptor() error = %v", err)
	}
	want := gputypes.Extent3D{Width: 4, Height: 4, DepthOrArrayLayers: 2}
	if desc.Size != want || desc.MipLevelCount != 3 {
		t.Errorf("WebGPUDescriptor() size %+v levels %d, want %+v levels 3", desc.Size, desc.MipLevelCount, want)
	}
}

func TestWebGPUDescriptorErrors(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		format Format
		extent Extent
		want   error
	}{
		{"1d array", Target1DArray, FormatRGBA8UnormPack8, Extent{8, 1, 1}, ErrInvalidTarget},
		{"no webgpu format", Target2D, FormatRGB8UnormPack8, Extent{4, 4, 1}, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := newTestTexture(t, tt.target, tt.format, tt.extent, 1, 1)
			if _, err := tex.WebGPUDescriptor(gputypes.TextureUsageCopyDst); !errors.Is(err, tt.want) {
				t.Errorf("WebGPUDescriptor() error = %v, want %v", err, tt.want)
			}
			if _, err := tex.WebGPUViewDescriptor(); !errors.Is(err, tt.want) {
				t.Errorf("WebGPUViewDescriptor() error = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := NewEmpty(Target2D).WebGPUDescriptor(0); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("empty WebGPUDescriptor() error = %v, want ErrEmptyTexture", err)
	}
}

func TestSamplerWebGPUDescriptor(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{16, 16, 1}, 1, 5)
	tests := []struct {
		name    string
		wrap    Wrap
		mip     Filter
		min     Filter
		address gputypes.AddressMode
		filter  gputypes.FilterMode
		mipMode gputypes.MipmapFilterMode
		lodMax  float32
	}{
		{"repeat linear", WrapRepeat, FilterLinear, FilterLinear,
			gputypes.AddressModeRepeat, gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear, 4},
		{"clamp nearest", WrapClampToEdge, FilterNearest, FilterNearest,
			gputypes.AddressModeClampToEdge, gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest, 4},
		{"mirror no mips", WrapMirrorRepeat, FilterNone, FilterLinear,
			gputypes.AddressModeMirrorRepeat, gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSampler(t, tex, tt.wrap, tt.mip, tt.min)
			desc, err := s.WebGPUDescriptor()
			if err != nil {
				t.Fatalf("WebGPUDescriptor() error = %v", err)
			}
			if desc.AddressModeU != tt.address || desc.AddressModeV != tt.address || desc.AddressModeW != tt.address {
				t.Errorf("address modes = %v %v %v, want %v", desc.AddressModeU, desc.AddressModeV, desc.AddressModeW, tt.address)
			}
			if desc.MinFilter != tt.filter || desc.MagFilter != tt.filter || desc.MipmapFilter != tt.mipMode {
				t.Errorf("filters = %v %v %v", desc.MinFilter, desc.MagFilter, desc.MipmapFilter)
			}
			if desc.LodMaxClamp != tt.lodMax {
				t.Errorf("LodMaxClamp = %v, want %v", desc.LodMaxClamp, tt.lodMax)
			}
		})
	}

	for _, w := range []Wrap{WrapClampToBorder, WrapMirrorClampToEdge, WrapMirrorClampToBorder} {
		s := newTestSampler(t, tex, w, FilterNone, FilterLinear)
		if _, err := s.WebGPUDescriptor(); err == nil {
			t.Errorf("WebGPUDescriptor(%v) succeeded", w)
		}
	}
}
