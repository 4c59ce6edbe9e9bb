package gli

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// GenerateMipmaps fills every level below the base level from its parent.
// A single level view fails with ErrInvalidLevels unless that level is
// already 1x1x1.
func (s *Sampler) GenerateMipmaps(filter Filter) error {
	if err := s.tex.usable(); err != nil {
		return err
	}
	if s.codec == nil {
		return fmt.Errorf("%w: mipmaps of %v", ErrUnsupportedFormat, s.tex.format)
	}
	if e := s.tex.Extent(0); s.tex.Levels() == 1 && e.Texels() > 1 {
		return fmt.Errorf("%w: %v view of %v has no mip chain", ErrInvalidLevels, s.tex.target, e)
	}
	return s.GenerateMipmapsDetail(0, s.tex.Levels()-1, filter)
}

// GenerateMipmapsDetail fills levels baseLevel+1 through maxLevel, relative
// to the view, each from the level above it. FilterNearest picks the top
// left source texel; FilterLinear averages the 2, 4 or 8 source texels.
func (s *Sampler) GenerateMipmapsDetail(baseLevel, maxLevel int, filter Filter) error {
	if err := s.tex.usable(); err != nil {
		return err
	}
	if baseLevel < 0 || baseLevel > maxLevel || maxLevel >= s.tex.Levels() {
		return fmt.Errorf("%w: mipmap levels [%d, %d] of %d", ErrRangeOutOfBounds,
			baseLevel, maxLevel, s.tex.Levels())
	}
	if filter != FilterNearest && filter != FilterLinear {
		return fmt.Errorf("gli: invalid mipmap filter %v", filter)
	}
	if s.codec == nil {
		return fmt.Errorf("%w: mipmaps of %v", ErrUnsupportedFormat, s.tex.format)
	}

	t := s.tex
	for layer := t.baseLayer; layer <= t.maxLayer; layer++ {
		for face := t.baseFace; face <= t.maxFace; face++ {
			for level := t.baseLevel + baseLevel + 1; level <= t.baseLevel+maxLevel; level++ {
				s.downsample(layer, face, level, filter)
			}
		}
	}
	return nil
}

// downsample writes the absolute level from level-1.
func (s *Sampler) downsample(layer, face, level int, filter Filter) {
	st := s.tex.storage
	src := st.extent.mip(level - 1)
	dst := st.extent.mip(level)

	for z := 0; z < dst.Depth; z++ {
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				sx, sy, sz := x*2, y*2, z*2
				var v f32.Vec4
				if filter == FilterNearest {
					v = s.load(layer, face, level-1, Coord{min(sx, src.Width-1), min(sy, src.Height-1), min(sz, src.Depth-1)})
				} else {
					v = s.box(layer, face, level-1, src, sx, sy, sz)
				}
				s.codec.Encode(st.data[st.blockOffset(layer, face, level, Coord{x, y, z}):], v)
			}
		}
	}
}

// box averages the 2x2x2 neighbourhood at (sx, sy, sz), clamped to the
// source extent so odd and unit axes repeat their last texel.
func (s *Sampler) box(layer, face, level int, src Extent, sx, sy, sz int) f32.Vec4 {
	var sum f32.Vec4
	for dz := range 2 {
		for dy := range 2 {
			for dx := range 2 {
				v := s.load(layer, face, level, Coord{
					min(sx+dx, src.Width-1),
					min(sy+dy, src.Height-1),
					min(sz+dz, src.Depth-1),
				})
				for k := range sum {
					sum[k] += v[k]
				}
			}
		}
	}
	for k := range sum {
		sum[k] /= 8
	}
	return sum
}
