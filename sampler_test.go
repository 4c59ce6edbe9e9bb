package gli

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func newTestSampler(t *testing.T, tex *Texture, wrap Wrap, mip, minFilter Filter, opts ...SamplerOption) *Sampler {
	t.Helper()
	s, err := NewSampler(tex, wrap, mip, minFilter, opts...)
	if err != nil {
		t.Fatalf("NewSampler() error = %v", err)
	}
	return s
}

func near(a, b f32.Vec4, eps float32) bool {
	for i := range a {
		if float32(math.Abs(float64(a[i]-b[i]))) > eps {
			return false
		}
	}
	return true
}

// writeGradient stores (x, y, z, 1) / 16 in every texel of level 0.
func writeGradient(t *testing.T, s *Sampler) {
	t.Helper()
	e := s.Texture().Extent(0)
	for z := range e.Depth {
		for y := range e.Height {
			for x := range e.Width {
				v := f32.Vec4{float32(x) / 16, float32(y) / 16, float32(z) / 16, 1}
				if err := s.TexelWrite(Coord{x, y, z}, 0, 0, 0, v); err != nil {
					t.Fatalf("TexelWrite() error = %v", err)
				}
			}
		}
	}
}

func TestWrapCoord(t *testing.T) {
	const n = 4
	border := -100
	tests := []struct {
		wrap Wrap
		in   []int
		want []int
	}{
		{WrapClampToEdge, []int{-1, 0, 3, 4, 5, -5}, []int{0, 0, 3, 3, 3, 0}},
		{WrapClampToBorder, []int{-1, 0, 3, 4}, []int{border, 0, 3, border}},
		{WrapRepeat, []int{-1, 0, 4, 5, -5, 9}, []int{3, 0, 0, 1, 3, 1}},
		{WrapMirrorRepeat, []int{-1, 4, 5, -5, 8}, []int{0, 3, 2, 3, 0}},
		{WrapMirrorClampToEdge, []int{-1, -4, -5, 5}, []int{0, 3, 3, 3}},
		{WrapMirrorClampToBorder, []int{-1, -4, -5, 4}, []int{0, 3, border, border}},
	}
	for _, tt := range tests {
		t.Run(tt.wrap.String(), func(t *testing.T) {
			for i, x := range tt.in {
				got, ok := wrapCoord(x, n, tt.wrap)
				if !ok {
					got = border
				}
				if got != tt.want[i] {
					t.Errorf("wrapCoord(%d) = %d, want %d", x, got, tt.want[i])
				}
			}
		})
	}
}

func TestSamplerRepeatFetch(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 1, 1)
	s := newTestSampler(t, tex, WrapRepeat, FilterNone, FilterNearest)
	writeGradient(t, s)

	a, err := s.TexelFetch(Coord{5, 0, 0}, 0, 0, 0)
	if err != nil {
		t.Fatalf("TexelFetch() error = %v", err)
	}
	b, err := s.TexelFetch(Coord{1, 0, 0}, 0, 0, 0)
	if err != nil {
		t.Fatalf("TexelFetch() error = %v", err)
	}
	if a != b {
		t.Errorf("TexelFetch(5, 0) = %v, want TexelFetch(1, 0) = %v", a, b)
	}
	if _, err := s.TexelFetch(Coord{}, 0, 0, 1); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("TexelFetch(level 1) error = %v, want ErrRangeOutOfBounds", err)
	}
}

func TestSamplerBorder(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 1, 1)
	red := f32.Vec4{1, 0, 0, 1}
	s := newTestSampler(t, tex, WrapClampToBorder, FilterNone, FilterNearest, WithBorderColor(red))

	got, err := s.TexelFetch(Coord{-1, 0, 0}, 0, 0, 0)
	if err != nil {
		t.Fatalf("TexelFetch() error = %v", err)
	}
	if got != red {
		t.Errorf("border fetch = %v, want %v", got, red)
	}
	if err := s.TexelWrite(Coord{2, 0, 0}, 0, 0, 0, f32.Vec4{1, 1, 1, 1}); err != nil {
		t.Fatalf("TexelWrite(border) error = %v", err)
	}
	for i, b := range tex.Data() {
		if b != 0 {
			t.Fatalf("border write reached byte %d", i)
		}
	}

	s.SetBorderColor(f32.Vec4{})
	if got, _ := s.TexelFetch(Coord{0, 5, 0}, 0, 0, 0); got != (f32.Vec4{}) {
		t.Errorf("border fetch after SetBorderColor = %v", got)
	}
	if def := newTestSampler(t, tex, WrapClampToBorder, FilterNone, FilterNearest); def.BorderColor() != (f32.Vec4{0, 0, 0, 1}) {
		t.Errorf("default border color = %v", def.BorderColor())
	}
}

func TestNewSamplerValidation(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatR8UnormPack8, Extent{2, 2, 1}, 1, 1)
	if _, err := NewSampler(tex, WrapRepeat, FilterNone, FilterNone); err == nil {
		t.Error("NewSampler(min filter NONE) succeeded")
	}
	if _, err := NewSampler(tex, Wrap(17), FilterNone, FilterLinear); err == nil {
		t.Error("NewSampler(unknown wrap) succeeded")
	}
	if _, err := NewSampler(NewEmpty(Target2D), WrapRepeat, FilterNone, FilterLinear); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("NewSampler(empty) error = %v, want ErrEmptyTexture", err)
	}
}

func TestTextureLodFilters(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA32SfloatPack32, Extent{2, 2, 1}, 1, 1)
	s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, FilterLinear)
	values := map[Coord]float32{{0, 0, 0}: 0, {1, 0, 0}: 1, {0, 1, 0}: 2, {1, 1, 0}: 3}
	for c, v := range values {
		if err := s.TexelWrite(c, 0, 0, 0, f32.Vec4{v, v, v, 1}); err != nil {
			t.Fatalf("TexelWrite() error = %v", err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		uv     f32.Vec3
		want   float32
	}{
		{"linear centre", FilterLinear, f32.Vec3{0.5, 0.5, 0}, 1.5},
		{"linear texel centre", FilterLinear, f32.Vec3{0.25, 0.25, 0}, 0},
		{"linear between columns", FilterLinear, f32.Vec3{0.5, 0.25, 0}, 0.5},
		{"linear clamped edge", FilterLinear, f32.Vec3{1, 0.75, 0}, 3},
		{"nearest", FilterNearest, f32.Vec3{0.6, 0.1, 0}, 1},
		{"nearest bottom right", FilterNearest, f32.Vec3{0.99, 0.99, 0}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, tt.filter)
			got, err := s.TextureLod(tt.uv, 0, 0, 0)
			if err != nil {
				t.Fatalf("TextureLod() error = %v", err)
			}
			if !near(got, f32.Vec4{tt.want, tt.want, tt.want, 1}, 1e-5) {
				t.Errorf("TextureLod(%v) = %v, want %v", tt.uv, got, tt.want)
			}
		})
	}
}

func TestTextureLodMipFilter(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatR32SfloatPack32, Extent{2, 2, 1}, 1, 2)
	if err := tex.ClearTo(f32.Vec4{1}); err != nil {
		t.Fatalf("ClearTo() error = %v", err)
	}
	top, _ := ShareFromSubset(tex, 1, 1)
	defer top.Release()
	if err := top.ClearTo(f32.Vec4{0}); err != nil {
		t.Fatalf("ClearTo() error = %v", err)
	}

	uv := f32.Vec3{0.5, 0.5, 0}
	tests := []struct {
		mip  Filter
		lod  float32
		want float32
	}{
		{FilterNone, 1, 1},
		{FilterNearest, 0.4, 1},
		{FilterNearest, 0.6, 0},
		{FilterNearest, 7, 0},
		{FilterLinear, 0.25, 0.75},
		{FilterLinear, -3, 1},
		{FilterLinear, float32(math.NaN()), 1},
	}
	for _, tt := range tests {
		s := newTestSampler(t, tex, WrapRepeat, tt.mip, FilterLinear)
		got, err := s.TextureLod(uv, 0, 0, tt.lod)
		if err != nil {
			t.Fatalf("TextureLod() error = %v", err)
		}
		if math.Abs(float64(got[0]-tt.want)) > 1e-5 {
			t.Errorf("mip %v lod %v = %v, want %v", tt.mip, tt.lod, got[0], tt.want)
		}
	}
}

func TestTextureLod3D(t *testing.T) {
	tex := newTestTexture(t, Target3D, FormatR32SfloatPack32, Extent{2, 2, 2}, 1, 1)
	s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, FilterLinear)
	for i := range 8 {
		c := Coord{i & 1, i >> 1 & 1, i >> 2 & 1}
		if err := s.TexelWrite(c, 0, 0, 0, f32.Vec4{float32(i)}); err != nil {
			t.Fatalf("TexelWrite() error = %v", err)
		}
	}
	got, err := s.TextureLod(f32.Vec3{0.5, 0.5, 0.5}, 0, 0, 0)
	if err != nil {
		t.Fatalf("TextureLod() error = %v", err)
	}
	if math.Abs(float64(got[0]-3.5)) > 1e-5 {
		t.Errorf("trilinear centre = %v, want 3.5", got[0])
	}
}

func TestGenerateMipmaps(t *testing.T) {
	tests := []struct {
		filter Filter
		want   float32 // level 1 texel (0, 0)
	}{
		{FilterLinear, (0 + 1 + 4 + 5) / 4.0},
		{FilterNearest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			tex := newTestTexture(t, Target2D, FormatR32SfloatPack32, Extent{4, 4, 1}, 1, 3)
			s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, FilterNearest)
			for i := range 16 {
				_ = s.TexelWrite(Coord{i % 4, i / 4, 0}, 0, 0, 0, f32.Vec4{float32(i)})
			}
			if err := s.GenerateMipmaps(tt.filter); err != nil {
				t.Fatalf("GenerateMipmaps() error = %v", err)
			}
			got, _ := s.TexelFetch(Coord{}, 0, 0, 1)
			if got[0] != tt.want {
				t.Errorf("level 1 (0, 0) = %v, want %v", got[0], tt.want)
			}
			last, _ := s.TexelFetch(Coord{}, 0, 0, 2)
			if tt.filter == FilterLinear && last[0] != 7.5 {
				t.Errorf("level 2 = %v, want 7.5", last[0])
			}
		})
	}
}

func TestGenerateMipmapsSingleLevel(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		extent  Extent
		wantErr error
	}{
		{"2D without chain", Target2D, Extent{4, 4, 1}, ErrInvalidLevels},
		{"rect", TargetRect, Extent{4, 2, 1}, ErrInvalidLevels},
		{"1x1 is complete", Target2D, Extent{1, 1, 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := newTestTexture(t, tt.target, FormatRGBA8UnormPack8, tt.extent, 1, 1)
			s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, FilterNearest)
			if err := s.GenerateMipmaps(FilterLinear); !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateMipmaps() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 1, 3)
	top, err := ShareFromSubset(tex, 0, 0)
	if err != nil {
		t.Fatalf("ShareFromSubset() error = %v", err)
	}
	defer top.Release()
	s := newTestSampler(t, top, WrapClampToEdge, FilterNone, FilterNearest)
	if err := s.GenerateMipmaps(FilterLinear); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("GenerateMipmaps(level 0 view) error = %v, want ErrInvalidLevels", err)
	}
}

func TestGenerateMipmapsDetail(t *testing.T) {
	tex := newTestTexture(t, Target2DArray, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 2, 3)
	if err := tex.ClearTo(f32.Vec4{1, 1, 1, 1}); err != nil {
		t.Fatalf("ClearTo() error = %v", err)
	}
	s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, FilterNearest)
	level2, _ := tex.ImageData(1, 0, 2)
	clear(level2)

	if err := s.GenerateMipmapsDetail(0, 1, FilterLinear); err != nil {
		t.Fatalf("GenerateMipmapsDetail() error = %v", err)
	}
	if level2[0] != 0 {
		t.Error("level outside the requested range was written")
	}
	if err := s.GenerateMipmapsDetail(1, 2, FilterLinear); err != nil {
		t.Fatalf("GenerateMipmapsDetail() error = %v", err)
	}
	if level2[0] != 255 {
		t.Errorf("level 2 of layer 1 = %d, want 255", level2[0])
	}

	for _, r := range [][2]int{{-1, 1}, {2, 1}, {0, 3}} {
		if err := s.GenerateMipmapsDetail(r[0], r[1], FilterLinear); !errors.Is(err, ErrRangeOutOfBounds) {
			t.Errorf("GenerateMipmapsDetail(%d, %d) error = %v, want ErrRangeOutOfBounds", r[0], r[1], err)
		}
	}
}

func TestSamplerLayerView(t *testing.T) {
	tex := newTestTexture(t, Target2DArray, FormatR8UnormPack8, Extent{2, 2, 1}, 3, 1)
	layer, err := tex.Layer(2)
	if err != nil {
		t.Fatalf("Layer(2) error = %v", err)
	}
	defer layer.Release()
	s := newTestSampler(t, layer, WrapRepeat, FilterNone, FilterNearest)
	if err := s.TexelWrite(Coord{1, 1, 0}, 0, 0, 0, f32.Vec4{1}); err != nil {
		t.Fatalf("TexelWrite() error = %v", err)
	}
	img, _ := tex.ImageData(2, 0, 0)
	if img[3] != 255 {
		t.Errorf("write through layer view = %v, want byte 3 set", img)
	}
	if _, err := s.TexelFetch(Coord{}, 1, 0, 0); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("TexelFetch(layer 1 of a single layer view) error = %v", err)
	}
}

func TestSamplerFormats(t *testing.T) {
	tests := []struct {
		format Format
		in     f32.Vec4
		want   f32.Vec4
		eps    float32
	}{
		{FormatRGBA8SrgbPack8, f32.Vec4{0.5, 0.2, 0.8, 0.5}, f32.Vec4{0.5, 0.2, 0.8, 0.5}, 0.01},
		{FormatR8SnormPack8, f32.Vec4{-1, 0, 0, 1}, f32.Vec4{-1, 0, 0, 1}, 0},
		{FormatRG16SfloatPack16, f32.Vec4{0.5, -2, 0, 1}, f32.Vec4{0.5, -2, 0, 1}, 0},
		{FormatR32SintPack32, f32.Vec4{-7, 0, 0, 1}, f32.Vec4{-7, 0, 0, 1}, 0},
		{FormatR5G6B5UnormPack16, f32.Vec4{1, 0, 1, 1}, f32.Vec4{1, 0, 1, 1}, 0},
		{FormatRG11B10UfloatPack32, f32.Vec4{0.5, 2, 4, 1}, f32.Vec4{0.5, 2, 4, 1}, 0},
		{FormatRGB9E5UfloatPack32, f32.Vec4{1, 0.5, 0.25, 1}, f32.Vec4{1, 0.5, 0.25, 1}, 0.01},
		{FormatD24UnormS8UintPack32, f32.Vec4{0.5, 7, 0, 1}, f32.Vec4{0.5, 7, 0, 1}, 1e-6},
		{FormatS8UintPack8, f32.Vec4{200, 0, 0, 1}, f32.Vec4{200, 0, 0, 1}, 0},
		{FormatLA8UnormPack8, f32.Vec4{1, 1, 1, 0}, f32.Vec4{1, 1, 1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			tex := newTestTexture(t, Target2D, tt.format, Extent{2, 2, 1}, 1, 1)
			s := newTestSampler(t, tex, WrapClampToEdge, FilterNone, FilterNearest)
			if err := s.TexelWrite(Coord{1, 0, 0}, 0, 0, 0, tt.in); err != nil {
				t.Fatalf("TexelWrite() error = %v", err)
			}
			got, err := s.TexelFetch(Coord{1, 0, 0}, 0, 0, 0)
			if err != nil {
				t.Fatalf("TexelFetch() error = %v", err)
			}
			if !near(got, tt.want, tt.eps) {
				t.Errorf("round trip %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSamplerBC1(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBADXT1UnormBlock8, Extent{8, 4, 1}, 1, 1)
	data := tex.Data()
	// Block 0: red, block 1: blue. All indices select color0.
	binary.LittleEndian.PutUint16(data[0:], 0xF800)
	binary.LittleEndian.PutUint16(data[2:], 0x001F)
	binary.LittleEndian.PutUint16(data[8:], 0x001F)
	binary.LittleEndian.PutUint16(data[10:], 0x0000)

	s := newTestSampler(t, tex, WrapRepeat, FilterNone, FilterNearest)
	tests := []struct {
		c    Coord
		want f32.Vec4
	}{
		{Coord{1, 2, 0}, f32.Vec4{1, 0, 0, 1}},
		{Coord{6, 3, 0}, f32.Vec4{0, 0, 1, 1}},
		{Coord{9, 0, 0}, f32.Vec4{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		got, err := s.TexelFetch(tt.c, 0, 0, 0)
		if err != nil {
			t.Fatalf("TexelFetch() error = %v", err)
		}
		if !near(got, tt.want, 1e-6) {
			t.Errorf("TexelFetch(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
	if err := s.TexelWrite(Coord{}, 0, 0, 0, f32.Vec4{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("TexelWrite(BC1) error = %v, want ErrUnsupportedFormat", err)
	}
	if err := s.GenerateMipmaps(FilterLinear); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("GenerateMipmaps(BC1) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSamplerUndecodableFormat(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBAASTC4x4UnormBlock16, Extent{4, 4, 1}, 1, 1)
	s := newTestSampler(t, tex, WrapRepeat, FilterNone, FilterNearest)
	if _, err := s.TexelFetch(Coord{}, 0, 0, 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("TexelFetch(ASTC) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := s.TextureLod(f32.Vec3{}, 0, 0, 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("TextureLod(ASTC) error = %v, want ErrUnsupportedFormat", err)
	}
}

func BenchmarkTexelFetch(b *testing.B) {
	tex, _ := New2D(FormatRGBA8UnormPack8, Extent{256, 256, 1}, 1)
	defer tex.Release()
	s, _ := NewSampler(tex, WrapRepeat, FilterNone, FilterNearest)
	b.ResetTimer()
	for i := range b.N {
		_, _ = s.TexelFetch(Coord{i & 511, i >> 9 & 511, 0}, 0, 0, 0)
	}
}

func BenchmarkTextureLodLinear(b *testing.B) {
	tex, _ := NewWithMipmapChain(Target2D, FormatRGBA8UnormPack8, Extent{256, 256, 1}, 1)
	defer tex.Release()
	s, _ := NewSampler(tex, WrapRepeat, FilterLinear, FilterLinear)
	b.ResetTimer()
	for i := range b.N {
		u := float32(i%1000) / 1000
		_, _ = s.TextureLod(f32.Vec3{u, 1 - u, 0}, 0, 0, 1.5)
	}
}
