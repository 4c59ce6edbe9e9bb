package gli

import (
	"bytes"
	"fmt"
)

// Image is a window onto one (layer, face, level) of a texture buffer.
//
// Images returned by Texture.Level and Texture.ImageAt share the texture's
// buffer. Each Image holds a reference that Release drops.
type Image struct {
	storage  *storage
	released bool
	format   Format
	layer    int
	face     int
	level    int
}

// NewImage allocates a standalone zeroed image.
func NewImage(format Format, extent Extent) (*Image, error) {
	s, err := newStorage(format, fill(extent), 1, 1, 1)
	if err != nil {
		return nil, err
	}
	return &Image{storage: s, format: format}, nil
}

// NewEmptyImage returns an image with no buffer.
func NewEmptyImage() *Image { return &Image{} }

// ShareImage returns a view of img reinterpreted as format. The formats must
// have the same block size and block extent.
func ShareImage(img *Image, format Format) (*Image, error) {
	if img.Empty() {
		return nil, ErrEmptyTexture
	}
	if !format.IsValid() {
		return nil, bugf(ErrInvalidFormat, "share image as %v", format)
	}
	if format.BlockSize() != img.format.BlockSize() || format.BlockExtent() != img.format.BlockExtent() {
		return nil, bugf(ErrIncompatibleFormat, "share image %v as %v", img.format, format)
	}
	img.storage.acquire()
	v := *img
	v.format = format
	return &v, nil
}

// Empty reports whether img holds no buffer.
func (img *Image) Empty() bool {
	return img == nil || img.storage == nil || img.released
}

func (img *Image) Format() Format { return img.format }

// Extent returns the image extent, or a zero extent when empty.
func (img *Image) Extent() Extent {
	if img.Empty() {
		return Extent{}
	}
	return img.storage.extent.mip(img.level)
}

// Size returns the byte size of the image.
func (img *Image) Size() int {
	if img.Empty() {
		return 0
	}
	return img.storage.levelSizes[img.level]
}

// Data returns the image bytes. The slice is valid until the image and
// every texture sharing its buffer are released.
func (img *Image) Data() []byte {
	if img.Empty() {
		return nil
	}
	return img.storage.image(img.layer, img.face, img.level)
}

// Clear zeroes the image.
func (img *Image) Clear() { clear(img.Data()) }

// Equal reports whether img and o hold the same bytes, regardless of
// whether they share a buffer.
func (img *Image) Equal(o *Image) bool {
	if img.Empty() || o.Empty() {
		return img.Empty() == o.Empty()
	}
	return img.Extent() == o.Extent() && bytes.Equal(img.Data(), o.Data())
}

// Release drops the reference held by img. Releasing twice is a KindBug
// error.
func (img *Image) Release() error {
	if img == nil || (img.storage == nil && !img.released) {
		return nil
	}
	if img.released {
		return bugf(ErrReleased, "double release of image")
	}
	img.released = true
	img.storage.release()
	return nil
}

func (img *Image) String() string {
	if img.Empty() {
		return "Image(empty)"
	}
	return fmt.Sprintf("Image(%v %v)", img.format, img.Extent())
}
