package gli

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gli/internal/pool"
)

// storage is one reference counted pixel buffer and the physical layout of
// its images.
//
// Images are laid out layer-major: all faces of layer 0, each face holding
// its complete mip chain, then layer 1 and so on. The layout depends only on
// (format, extent, layers, faces, levels).
type storage struct {
	data   []byte
	format Format
	extent Extent
	layers int
	faces  int
	levels int

	levelOffsets []int // offset of each level inside one face
	levelSizes   []int
	faceSize     int
	layerSize    int

	refs  atomic.Int32
	frees int // number of times data was returned, for tests
}

func newStorage(format Format, extent Extent, layers, faces, levels int) (*storage, error) {
	switch {
	case !format.IsValid():
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	case !extent.positive():
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtent, extent)
	case levels < 1 || levels > MipmapLevels(extent):
		return nil, fmt.Errorf("%w: %d levels for extent %v", ErrInvalidLevels, levels, extent)
	case layers < 1:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayers, layers)
	case faces < 1:
		return nil, fmt.Errorf("%w: %d", ErrInvalidFaces, faces)
	}

	s := &storage{
		format:       format,
		extent:       extent,
		layers:       layers,
		faces:        faces,
		levels:       levels,
		levelOffsets: make([]int, levels),
		levelSizes:   make([]int, levels),
	}
	for l := range levels {
		s.levelOffsets[l] = s.faceSize
		s.levelSizes[l] = levelSize(format, extent.mip(l))
		s.faceSize += s.levelSizes[l]
	}
	s.layerSize = s.faceSize * faces
	s.data = pool.Get(s.layerSize * layers)
	s.refs.Store(1)

	if debugEnabled() {
		Logger().Debug("gli: storage allocated",
			"format", format, "extent", extent, "layers", layers,
			"faces", faces, "levels", levels, "bytes", len(s.data))
	}
	return s, nil
}

// levelSize returns the byte size of one image of extent e.
func levelSize(format Format, e Extent) int {
	b := e.blocks(format.BlockExtent())
	return b.Texels() * format.BlockSize()
}

func (s *storage) acquire() { s.refs.Add(1) }

// release drops one reference and returns the buffer to the pool when none
// remain.
func (s *storage) release() {
	if s.refs.Add(-1) != 0 {
		return
	}
	pool.Put(s.data)
	s.data = nil
	s.frees++
	if debugEnabled() {
		Logger().Debug("gli: storage freed", "format", s.format, "extent", s.extent)
	}
}

func (s *storage) imageOffset(layer, face, level int) int {
	return layer*s.layerSize + face*s.faceSize + s.levelOffsets[level]
}

func (s *storage) image(layer, face, level int) []byte {
	off := s.imageOffset(layer, face, level)
	return s.data[off : off+s.levelSizes[level] : off+s.levelSizes[level]]
}

// blockOffset returns the offset of the block holding texel c inside the
// image at (layer, face, level). c must lie inside the level extent.
func (s *storage) blockOffset(layer, face, level int, c Coord) int {
	be := s.format.BlockExtent()
	blocks := s.extent.mip(level).blocks(be)
	bx, by, bz := c.X/be.Width, c.Y/be.Height, c.Z/be.Depth
	return s.imageOffset(layer, face, level) +
		((bz*blocks.Height+by)*blocks.Width+bx)*s.format.BlockSize()
}

// storageSize returns the byte size newStorage would allocate, or false
// when the layout is invalid or larger than limit. Container decoders use it
// to reject headers before allocating.
func storageSize(format Format, extent Extent, layers, faces, levels, limit int) (int, bool) {
	if !format.IsValid() || !extent.positive() || layers < 1 || faces < 1 ||
		levels < 1 || levels > MipmapLevels(extent) {
		return 0, false
	}
	mul := func(a, b int) (int, bool) {
		if a != 0 && b > limit/a {
			return 0, false
		}
		return a * b, true
	}
	face := 0
	for l := range levels {
		b := extent.mip(l).blocks(format.BlockExtent())
		n, ok := mul(b.Width, b.Height)
		if ok {
			n, ok = mul(n, b.Depth)
		}
		if ok {
			n, ok = mul(n, format.BlockSize())
		}
		if !ok || face+n > limit {
			return 0, false
		}
		face += n
	}
	total, ok := mul(face, faces)
	if ok {
		total, ok = mul(total, layers)
	}
	return total, ok
}
