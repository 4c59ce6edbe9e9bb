package gli

import (
	"fmt"
	"math"

	"github.com/gogpu/gli/internal/texel"
	"golang.org/x/image/math/f32"
)

// Sampler reads, writes and filters texels of a texture view.
//
// A Sampler borrows its texture: it takes no reference and must not be used
// after the texture is released. Coordinates on axes the target does not
// use are ignored. Layer, face and level arguments are relative to the
// view's bases.
type Sampler struct {
	tex    *Texture
	wrap   Wrap
	mip    Filter
	min    Filter
	border f32.Vec4
	codec  texel.Codec
	block  texel.BlockDecoder
}

// NewSampler returns a sampler over tex. mipFilter selects how levels are
// combined by TextureLod; FilterNone samples the base level only. minFilter
// must be FilterNearest or FilterLinear.
func NewSampler(tex *Texture, wrap Wrap, mipFilter, minFilter Filter, opts ...SamplerOption) (*Sampler, error) {
	if err := tex.usable(); err != nil {
		return nil, err
	}
	if !wrap.IsValid() || !mipFilter.IsValid() || minFilter == FilterNone || !minFilter.IsValid() {
		return nil, fmt.Errorf("gli: invalid sampler state wrap=%v mip=%v min=%v", wrap, mipFilter, minFilter)
	}
	if tex.format.BlockExtent() != tex.storage.format.BlockExtent() {
		return nil, bugf(ErrIncompatibleFormat, "sampler view %v over %v", tex.format, tex.storage.format)
	}
	o := defaultSamplerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sampler{
		tex:    tex,
		wrap:   wrap,
		mip:    mipFilter,
		min:    minFilter,
		border: o.border,
		codec:  tex.format.texelCodec(),
		block:  tex.format.blockDecoder(),
	}, nil
}

func (s *Sampler) Texture() *Texture { return s.tex }
func (s *Sampler) Wrap() Wrap        { return s.wrap }

// BorderColor returns the color used for border wrapped coordinates.
func (s *Sampler) BorderColor() f32.Vec4 { return s.border }

// SetBorderColor sets the color used for border wrapped coordinates.
func (s *Sampler) SetBorderColor(c f32.Vec4) { s.border = c }

// resolveCoord wraps c into the extent of the given absolute level. It
// returns false when the coordinate resolves to the border.
func (s *Sampler) resolveCoord(c Coord, level int) (Coord, bool) {
	e := s.tex.storage.extent.mip(level)
	axes := s.tex.target.Axes()
	var out Coord
	var ok bool
	if out.X, ok = wrapCoord(c.X, e.Width, s.wrap); !ok {
		return out, false
	}
	if axes >= 2 {
		if out.Y, ok = wrapCoord(c.Y, e.Height, s.wrap); !ok {
			return out, false
		}
	}
	if axes >= 3 {
		if out.Z, ok = wrapCoord(c.Z, e.Depth, s.wrap); !ok {
			return out, false
		}
	}
	return out, true
}

// load reads the texel at a resolved coordinate and absolute indices.
func (s *Sampler) load(layer, face, level int, c Coord) f32.Vec4 {
	st := s.tex.storage
	off := st.blockOffset(layer, face, level, c)
	if s.codec != nil {
		return s.codec.Decode(st.data[off:])
	}
	var block [16]f32.Vec4
	s.block.DecodeBlock(st.data[off:], &block)
	be := s.tex.format.BlockExtent()
	return block[(c.Y%be.Height)*4+c.X%be.Width]
}

func (s *Sampler) readable() error {
	if s.codec == nil && s.block == nil {
		return fmt.Errorf("%w: sampling %v", ErrUnsupportedFormat, s.tex.format)
	}
	return nil
}

// TexelFetch returns the texel at an integer coordinate. Coordinates outside
// the level are resolved by the wrap mode.
func (s *Sampler) TexelFetch(c Coord, layer, face, level int) (f32.Vec4, error) {
	l, f, m, err := s.tex.resolve(layer, face, level)
	if err != nil {
		return f32.Vec4{}, err
	}
	if err := s.readable(); err != nil {
		return f32.Vec4{}, err
	}
	rc, ok := s.resolveCoord(c, m)
	if !ok {
		return s.border, nil
	}
	return s.load(l, f, m, rc), nil
}

// TexelWrite stores v at an integer coordinate resolved like TexelFetch.
// Writes that resolve to the border are dropped. Compressed formats cannot
// be written.
func (s *Sampler) TexelWrite(c Coord, layer, face, level int, v f32.Vec4) error {
	l, f, m, err := s.tex.resolve(layer, face, level)
	if err != nil {
		return err
	}
	if s.codec == nil {
		return fmt.Errorf("%w: writing %v", ErrUnsupportedFormat, s.tex.format)
	}
	rc, ok := s.resolveCoord(c, m)
	if !ok {
		return nil
	}
	st := s.tex.storage
	s.codec.Encode(st.data[st.blockOffset(l, f, m, rc):], v)
	return nil
}

// Clear fills every texel of the view with v.
func (s *Sampler) Clear(v f32.Vec4) error {
	return s.tex.ClearTo(v)
}

// TextureLod returns the filtered texel at normalized coordinates uv. lod
// selects the level relative to the base level; it is clamped to the
// levels in view.
func (s *Sampler) TextureLod(uv f32.Vec3, layer, face int, lod float32) (f32.Vec4, error) {
	l, f, base, err := s.tex.resolve(layer, face, 0)
	if err != nil {
		return f32.Vec4{}, err
	}
	if err := s.readable(); err != nil {
		return f32.Vec4{}, err
	}

	maxLod := float32(s.tex.Levels() - 1)
	if lod != lod || lod < 0 {
		lod = 0
	}
	lod = min(lod, maxLod)

	switch s.mip {
	case FilterNearest:
		level := int(math.Floor(float64(lod) + 0.5))
		return s.sampleLevel(uv, l, f, base+level), nil
	case FilterLinear:
		lo := int(math.Floor(float64(lod)))
		hi := min(lo+1, s.tex.Levels()-1)
		a := s.sampleLevel(uv, l, f, base+lo)
		if hi == lo {
			return a, nil
		}
		b := s.sampleLevel(uv, l, f, base+hi)
		return mixVec4(a, b, lod-float32(lo)), nil
	}
	return s.sampleLevel(uv, l, f, base), nil
}

// fetch reads through the wrap mode with absolute indices.
func (s *Sampler) fetch(layer, face, level int, c Coord) f32.Vec4 {
	rc, ok := s.resolveCoord(c, level)
	if !ok {
		return s.border
	}
	return s.load(layer, face, level, rc)
}

// sampleLevel applies the min filter at one absolute level.
func (s *Sampler) sampleLevel(uv f32.Vec3, layer, face, level int) f32.Vec4 {
	e := s.tex.storage.extent.mip(level)
	axes := s.tex.target.Axes()
	size := [3]int{e.Width, e.Height, e.Depth}

	if s.min == FilterNearest {
		var c [3]int
		for i := range axes {
			c[i] = int(math.Floor(float64(uv[i]) * float64(size[i])))
		}
		return s.fetch(layer, face, level, Coord{c[0], c[1], c[2]})
	}

	// Linear: 2, 4 or 8 taps around the texel centre.
	var c0 [3]int
	var frac [3]float32
	for i := range axes {
		p := float64(uv[i])*float64(size[i]) - 0.5
		fl := math.Floor(p)
		c0[i] = int(fl)
		frac[i] = float32(p - fl)
	}
	var out f32.Vec4
	taps := 1 << uint(axes)
	for tap := range taps {
		w := float32(1)
		var c [3]int
		for i := range axes {
			c[i] = c0[i]
			if tap&(1<<uint(i)) != 0 {
				c[i]++
				w *= frac[i]
			} else {
				w *= 1 - frac[i]
			}
		}
		if w == 0 {
			continue
		}
		v := s.fetch(layer, face, level, Coord{c[0], c[1], c[2]})
		for k := range out {
			out[k] += v[k] * w
		}
	}
	return out
}

func mixVec4(a, b f32.Vec4, t float32) f32.Vec4 {
	var out f32.Vec4
	for i := range out {
		out[i] = a[i]*(1-t) + b[i]*t
	}
	return out
}
