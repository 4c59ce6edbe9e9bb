package gli

import (
	"bytes"
	"fmt"

	"golang.org/x/image/math/f32"
)

// Texture is a view over a reference counted pixel buffer.
//
// A view names a format, a target and a range along each of the layer, face
// and level axes. Views derived with ShareFrom, ShareFromDetail,
// ShareFromSubset, As, Layer and Face alias the same buffer; each holds one
// reference that Release drops. The buffer is returned to the allocator when
// the last reference is released.
//
// Texture is not safe for concurrent mutation. Byte slices returned by Data
// and ImageData are valid until the texture is released.
type Texture struct {
	storage  *storage
	released bool

	format    Format
	target    Target
	baseLayer int
	maxLayer  int
	baseFace  int
	maxFace   int
	baseLevel int
	maxLevel  int
	swizzles  Swizzles
}

// NewEmpty returns an empty texture of the given target. It owns no buffer.
func NewEmpty(target Target) *Texture {
	return &Texture{target: target, swizzles: DefaultSwizzles}
}

// New allocates a zeroed texture. Axes of extent that target does not use
// are ignored. Cube targets need six faces and a square extent; targets
// without a layer axis need exactly one layer. Rectangle targets have a
// single level.
func New(target Target, format Format, extent Extent, layers, faces, levels int) (*Texture, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, uint32(target))
	}
	extent = target.shape(fill(extent))
	switch {
	case !target.IsArray() && layers != 1:
		return nil, fmt.Errorf("%w: %d layers for %v", ErrInvalidLayers, layers, target)
	case faces != target.faceCount():
		return nil, fmt.Errorf("%w: %d faces for %v", ErrInvalidFaces, faces, target)
	case target.IsCube() && extent.Width != extent.Height:
		return nil, fmt.Errorf("%w: cube faces must be square, got %v", ErrInvalidExtent, extent)
	case target.IsRect() && levels != 1:
		return nil, fmt.Errorf("%w: %d levels for %v", ErrInvalidLevels, levels, target)
	}

	s, err := newStorage(format, extent, layers, faces, levels)
	if err != nil {
		return nil, err
	}
	return &Texture{
		storage:  s,
		format:   format,
		target:   target,
		maxLayer: layers - 1,
		maxFace:  faces - 1,
		maxLevel: levels - 1,
		swizzles: DefaultSwizzles,
	}, nil
}

// fill replaces zero axes with 1 so callers can leave unused axes unset.
func fill(e Extent) Extent {
	if e.Height == 0 {
		e.Height = 1
	}
	if e.Depth == 0 {
		e.Depth = 1
	}
	return e
}

// NewWithMipmapChain allocates a texture with a complete mip chain. The
// chain of a rectangle target is its single level.
func NewWithMipmapChain(target Target, format Format, extent Extent, layers int) (*Texture, error) {
	levels := 1
	if !target.IsRect() {
		levels = MipmapLevels(target.shape(fill(extent)))
	}
	return New(target, format, extent, layers, target.faceCount(), levels)
}

func New1D(format Format, width, levels int) (*Texture, error) {
	return New(Target1D, format, Extent{Width: width}, 1, 1, levels)
}

func New1DArray(format Format, width, layers, levels int) (*Texture, error) {
	return New(Target1DArray, format, Extent{Width: width}, layers, 1, levels)
}

func New2D(format Format, extent Extent, levels int) (*Texture, error) {
	return New(Target2D, format, extent, 1, 1, levels)
}

func New2DArray(format Format, extent Extent, layers, levels int) (*Texture, error) {
	return New(Target2DArray, format, extent, layers, 1, levels)
}

func New3D(format Format, extent Extent, levels int) (*Texture, error) {
	return New(Target3D, format, extent, 1, 1, levels)
}

// NewRect allocates a rectangle texture. Rectangle textures have a single
// level.
func NewRect(format Format, extent Extent) (*Texture, error) {
	return New(TargetRect, format, extent, 1, 1, 1)
}

func NewRectArray(format Format, extent Extent, layers int) (*Texture, error) {
	return New(TargetRectArray, format, extent, layers, 1, 1)
}

func NewCube(format Format, extent Extent, levels int) (*Texture, error) {
	return New(TargetCube, format, extent, 1, 6, levels)
}

func NewCubeArray(format Format, extent Extent, layers, levels int) (*Texture, error) {
	return New(TargetCubeArray, format, extent, layers, 6, levels)
}

// usable reports why t cannot be read, or nil.
func (t *Texture) usable() error {
	switch {
	case t == nil || (t.storage == nil && !t.released):
		return ErrEmptyTexture
	case t.released:
		return bugf(ErrReleased, "texture used after release")
	}
	return nil
}

// ShareFrom returns a new view with the same format, target and ranges as
// src.
func ShareFrom(src *Texture) (*Texture, error) {
	if err := src.usable(); err != nil {
		return nil, err
	}
	return src.derive(*src), nil
}

// ShareFromDetail returns a view of src reinterpreted as format and narrowed
// to the given inclusive ranges. Indices are absolute storage indices. The
// new format must have the block size and block extent of src's format, and
// each range must lie inside src's range; violations are KindBug errors.
func ShareFromDetail(src *Texture, format Format,
	baseLayer, maxLayer, baseFace, maxFace, baseLevel, maxLevel int) (*Texture, error) {
	if err := src.usable(); err != nil {
		return nil, err
	}
	if !format.IsValid() {
		return nil, bugf(ErrInvalidFormat, "share as %v", format)
	}
	if format.BlockSize() != src.format.BlockSize() || format.BlockExtent() != src.format.BlockExtent() {
		return nil, bugf(ErrIncompatibleFormat, "share %v as %v", src.format, format)
	}
	ranges := []struct {
		axis               string
		base, max, lo, hi int
	}{
		{"layer", baseLayer, maxLayer, src.baseLayer, src.maxLayer},
		{"face", baseFace, maxFace, src.baseFace, src.maxFace},
		{"level", baseLevel, maxLevel, src.baseLevel, src.maxLevel},
	}
	for _, r := range ranges {
		if r.base > r.max || r.base < r.lo || r.max > r.hi {
			return nil, bugf(ErrRangeOutOfBounds, "%s range [%d, %d] outside [%d, %d]",
				r.axis, r.base, r.max, r.lo, r.hi)
		}
	}

	desc := *src
	desc.format = format
	desc.baseLayer, desc.maxLayer = baseLayer, maxLayer
	desc.baseFace, desc.maxFace = baseFace, maxFace
	desc.baseLevel, desc.maxLevel = baseLevel, maxLevel
	return src.derive(desc), nil
}

// ShareFromSubset returns a view of src narrowed to the absolute level range
// [baseLevel, maxLevel].
func ShareFromSubset(src *Texture, baseLevel, maxLevel int) (*Texture, error) {
	if err := src.usable(); err != nil {
		return nil, err
	}
	return ShareFromDetail(src, src.format,
		src.baseLayer, src.maxLayer, src.baseFace, src.maxFace, baseLevel, maxLevel)
}

// derive takes a reference for a new view described by desc.
func (t *Texture) derive(desc Texture) *Texture {
	t.storage.acquire()
	v := desc
	v.released = false
	if debugEnabled() {
		Logger().Debug("gli: view derived", textureAttrs(&v), "refs", v.RefCount())
	}
	return &v
}

// As returns a view of t with another target of the same dimensionality.
// Dropping the layer or face axis keeps only the base layer or face. A cube
// view requires all six faces and a rectangle view a single level.
func (t *Texture) As(target Target) (*Texture, error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	if !target.IsValid() || target.Axes() != t.target.Axes() {
		return nil, bugf(ErrInvalidTarget, "view %v as %v", t.target, target)
	}
	if target.IsCube() && t.Faces() != 6 {
		return nil, bugf(ErrInvalidTarget, "cube view of %d faces", t.Faces())
	}
	if target.IsRect() && t.Levels() != 1 {
		return nil, bugf(ErrInvalidLevels, "%v view of %d levels", target, t.Levels())
	}
	desc := *t
	desc.target = target
	if !target.IsArray() {
		desc.maxLayer = desc.baseLayer
	}
	if !target.IsCube() {
		desc.maxFace = desc.baseFace
	}
	return t.derive(desc), nil
}

// Layer returns a view of the single layer at index i, relative to the base
// layer.
func (t *Texture) Layer(i int) (*Texture, error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	l := t.baseLayer + i
	return ShareFromDetail(t, t.format, l, l, t.baseFace, t.maxFace, t.baseLevel, t.maxLevel)
}

// Face returns a view of the single face at index i, relative to the base
// face.
func (t *Texture) Face(i int) (*Texture, error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	f := t.baseFace + i
	return ShareFromDetail(t, t.format, t.baseLayer, t.maxLayer, f, f, t.baseLevel, t.maxLevel)
}

// Release drops the reference held by t. Releasing an empty texture is a
// no-op; releasing twice is a KindBug error and does not drop a second
// reference.
func (t *Texture) Release() error {
	if t == nil || (t.storage == nil && !t.released) {
		return nil
	}
	if t.released {
		Logger().Warn("gli: texture released twice", "format", t.format, "target", t.target)
		return bugf(ErrReleased, "double release")
	}
	t.released = true
	t.storage.release()
	return nil
}

// RefCount returns the number of live views sharing t's buffer, or 0 for an
// empty or released texture.
func (t *Texture) RefCount() int {
	if t.Empty() {
		return 0
	}
	return int(t.storage.refs.Load())
}

// Empty reports whether t holds no buffer.
func (t *Texture) Empty() bool {
	return t == nil || t.storage == nil || t.released
}

func (t *Texture) Format() Format     { return t.format }
func (t *Texture) Target() Target     { return t.target }
func (t *Texture) Swizzles() Swizzles { return t.swizzles }

// SetSwizzles sets the channel mapping carried by the view.
func (t *Texture) SetSwizzles(s Swizzles) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidSwizzle, s)
	}
	t.swizzles = s
	return nil
}

func (t *Texture) BaseLayer() int { return t.baseLayer }
func (t *Texture) MaxLayer() int  { return t.maxLayer }
func (t *Texture) BaseFace() int  { return t.baseFace }
func (t *Texture) MaxFace() int   { return t.maxFace }
func (t *Texture) BaseLevel() int { return t.baseLevel }
func (t *Texture) MaxLevel() int  { return t.maxLevel }

// Layers returns the number of layers in view, 0 when empty.
func (t *Texture) Layers() int {
	if t.Empty() {
		return 0
	}
	return t.maxLayer - t.baseLayer + 1
}

// Faces returns the number of faces in view, 0 when empty.
func (t *Texture) Faces() int {
	if t.Empty() {
		return 0
	}
	return t.maxFace - t.baseFace + 1
}

// Levels returns the number of levels in view, 0 when empty.
func (t *Texture) Levels() int {
	if t.Empty() {
		return 0
	}
	return t.maxLevel - t.baseLevel + 1
}

// Extent returns the extent of the given level, relative to the base level.
func (t *Texture) Extent(level int) Extent {
	if t.Empty() || level < 0 || level >= t.Levels() {
		return Extent{}
	}
	return t.storage.extent.mip(t.baseLevel + level)
}

// SizeAtLevel returns the byte size of one image of the given level,
// relative to the base level.
func (t *Texture) SizeAtLevel(level int) int {
	if t.Empty() || level < 0 || level >= t.Levels() {
		return 0
	}
	return t.storage.levelSizes[t.baseLevel+level]
}

// Size returns the total byte size of the images in view.
func (t *Texture) Size() int {
	if t.Empty() {
		return 0
	}
	size := 0
	for l := t.baseLevel; l <= t.maxLevel; l++ {
		size += t.storage.levelSizes[l]
	}
	return size * t.Layers() * t.Faces()
}

// Data returns the bytes from the first to the last image in view. When the
// view is narrowed the span also covers images of the storage that lie
// between, which the view does not own.
func (t *Texture) Data() []byte {
	if t.Empty() {
		return nil
	}
	s := t.storage
	start := s.imageOffset(t.baseLayer, t.baseFace, t.baseLevel)
	end := s.imageOffset(t.maxLayer, t.maxFace, t.maxLevel) + s.levelSizes[t.maxLevel]
	return s.data[start:end:end]
}

// ImageData returns the bytes of one image. Indices are relative to the
// view's base layer, face and level.
func (t *Texture) ImageData(layer, face, level int) ([]byte, error) {
	l, f, m, err := t.resolve(layer, face, level)
	if err != nil {
		return nil, err
	}
	return t.storage.image(l, f, m), nil
}

// resolve converts relative indices to absolute storage indices.
func (t *Texture) resolve(layer, face, level int) (int, int, int, error) {
	if err := t.usable(); err != nil {
		return 0, 0, 0, err
	}
	if layer < 0 || layer >= t.Layers() || face < 0 || face >= t.Faces() || level < 0 || level >= t.Levels() {
		return 0, 0, 0, fmt.Errorf("%w: layer %d face %d level %d", ErrRangeOutOfBounds, layer, face, level)
	}
	return t.baseLayer + layer, t.baseFace + face, t.baseLevel + level, nil
}

// each calls fn for every image in view with absolute indices.
func (t *Texture) each(fn func(layer, face, level int)) {
	for layer := t.baseLayer; layer <= t.maxLayer; layer++ {
		for face := t.baseFace; face <= t.maxFace; face++ {
			for level := t.baseLevel; level <= t.maxLevel; level++ {
				fn(layer, face, level)
			}
		}
	}
}

// Clear zeroes every image in view. Images of the storage outside the view
// are not touched.
func (t *Texture) Clear() {
	if t.Empty() {
		return
	}
	t.each(func(layer, face, level int) {
		clear(t.storage.image(layer, face, level))
	})
}

// ClearTo fills every texel in view with v, encoded in the view's format.
func (t *Texture) ClearTo(v f32.Vec4) error {
	if err := t.usable(); err != nil {
		return err
	}
	codec := t.format.texelCodec()
	if codec == nil {
		return fmt.Errorf("%w: clear %v", ErrUnsupportedFormat, t.format)
	}
	pattern := make([]byte, t.format.BlockSize())
	codec.Encode(pattern, v)
	t.each(func(layer, face, level int) {
		fillPattern(t.storage.image(layer, face, level), pattern)
	})
	return nil
}

// fillPattern repeats pattern over dst, doubling the filled prefix.
func fillPattern(dst, pattern []byte) {
	if len(dst) == 0 {
		return
	}
	n := copy(dst, pattern)
	for n < len(dst) {
		n += copy(dst[n:], dst[:n])
	}
}

// Copy copies one image of src into one image of t. Indices are relative to
// each view. The formats must have the same block size and the images the
// same extent.
func (t *Texture) Copy(src *Texture, srcLayer, srcFace, srcLevel, dstLayer, dstFace, dstLevel int) error {
	sl, sf, sm, err := src.resolve(srcLayer, srcFace, srcLevel)
	if err != nil {
		return err
	}
	dl, df, dm, err := t.resolve(dstLayer, dstFace, dstLevel)
	if err != nil {
		return err
	}
	if src.format.BlockSize() != t.format.BlockSize() || src.format.BlockExtent() != t.format.BlockExtent() {
		return bugf(ErrIncompatibleFormat, "copy %v into %v", src.format, t.format)
	}
	se, de := src.storage.extent.mip(sm), t.storage.extent.mip(dm)
	if se != de {
		return fmt.Errorf("%w: copy %v into %v", ErrInvalidExtent, se, de)
	}
	copy(t.storage.image(dl, df, dm), src.storage.image(sl, sf, sm))
	return nil
}

// CopySubset copies a box of texels from one image of src into one image of
// t. Offsets and extent must be aligned to the format's block extent, except
// where the box ends at the image edge.
func (t *Texture) CopySubset(src *Texture, srcLayer, srcFace, srcLevel int, srcOffset Coord,
	dstLayer, dstFace, dstLevel int, dstOffset Coord, extent Extent) error {
	sl, sf, sm, err := src.resolve(srcLayer, srcFace, srcLevel)
	if err != nil {
		return err
	}
	dl, df, dm, err := t.resolve(dstLayer, dstFace, dstLevel)
	if err != nil {
		return err
	}
	if src.format.BlockSize() != t.format.BlockSize() || src.format.BlockExtent() != t.format.BlockExtent() {
		return bugf(ErrIncompatibleFormat, "copy %v into %v", src.format, t.format)
	}
	extent = fill(extent)
	be := t.format.BlockExtent()
	se, de := src.storage.extent.mip(sm), t.storage.extent.mip(dm)
	if !boxInside(srcOffset, extent, se, be) || !boxInside(dstOffset, extent, de, be) {
		return fmt.Errorf("%w: copy %v at %v into %v at %v", ErrRangeOutOfBounds,
			extent, srcOffset, extent, dstOffset)
	}

	blocks := extent.blocks(be)
	rowBytes := blocks.Width * t.format.BlockSize()
	for z := 0; z < blocks.Depth; z++ {
		for y := 0; y < blocks.Height; y++ {
			so := src.storage.blockOffset(sl, sf, sm, Coord{srcOffset.X, srcOffset.Y + y*be.Height, srcOffset.Z + z*be.Depth})
			do := t.storage.blockOffset(dl, df, dm, Coord{dstOffset.X, dstOffset.Y + y*be.Height, dstOffset.Z + z*be.Depth})
			copy(t.storage.data[do:do+rowBytes], src.storage.data[so:so+rowBytes])
		}
	}
	return nil
}

// boxInside reports whether the box at off of size e lies inside an image of
// extent img with block aligned edges.
func boxInside(off Coord, e, img, block Extent) bool {
	if !e.positive() || off.X < 0 || off.Y < 0 || off.Z < 0 {
		return false
	}
	if off.X+e.Width > img.Width || off.Y+e.Height > img.Height || off.Z+e.Depth > img.Depth {
		return false
	}
	if off.X%block.Width != 0 || off.Y%block.Height != 0 || off.Z%block.Depth != 0 {
		return false
	}
	aligned := func(end, size, b int) bool { return end%b == 0 || end == size }
	return aligned(off.X+e.Width, img.Width, block.Width) &&
		aligned(off.Y+e.Height, img.Height, block.Height) &&
		aligned(off.Z+e.Depth, img.Depth, block.Depth)
}

// Equal reports whether t and o have the same format, target, shape and
// image bytes. Two empty textures are equal.
func (t *Texture) Equal(o *Texture) bool {
	if t.Empty() || o.Empty() {
		return t.Empty() == o.Empty()
	}
	if t.format != o.format || t.target != o.target ||
		t.Layers() != o.Layers() || t.Faces() != o.Faces() || t.Levels() != o.Levels() ||
		t.Extent(0) != o.Extent(0) {
		return false
	}
	for layer := range t.Layers() {
		for face := range t.Faces() {
			for level := range t.Levels() {
				a, _ := t.ImageData(layer, face, level)
				b, _ := o.ImageData(layer, face, level)
				if !bytes.Equal(a, b) {
					return false
				}
			}
		}
	}
	return true
}

// Level returns the image of the given level, relative to the base level,
// at the base layer and face.
func (t *Texture) Level(level int) (*Image, error) {
	return t.ImageAt(0, 0, level)
}

// ImageAt returns the image at the given indices, relative to the view's
// bases. The image shares t's buffer and holds its own reference.
func (t *Texture) ImageAt(layer, face, level int) (*Image, error) {
	l, f, m, err := t.resolve(layer, face, level)
	if err != nil {
		return nil, err
	}
	t.storage.acquire()
	return &Image{storage: t.storage, format: t.format, layer: l, face: f, level: m}, nil
}
