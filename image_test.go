package gli

import (
	"errors"
	"testing"
)

func TestImageEqualIsContentBased(t *testing.T) {
	a, err := NewImage(FormatRGBA8UnormPack8, Extent{2, 2, 1})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	defer a.Release()
	b, err := NewImage(FormatRGBA8UnormPack8, Extent{2, 2, 1})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	defer b.Release()

	copy(a.Data(), []byte{1, 2, 3, 4})
	copy(b.Data(), []byte{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Error("images from different buffers with the same bytes are not equal")
	}

	tex := newTestTexture(t, Target2DArray, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 2, 1)
	l0, err := tex.ImageAt(0, 0, 0)
	if err != nil {
		t.Fatalf("ImageAt(0) error = %v", err)
	}
	defer l0.Release()
	l1, err := tex.ImageAt(1, 0, 0)
	if err != nil {
		t.Fatalf("ImageAt(1) error = %v", err)
	}
	defer l1.Release()
	l1.Data()[0] = 0xFF
	if l0.Equal(l1) {
		t.Error("images of one buffer with different bytes are equal")
	}
}

func TestTextureLevel(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatR5G6B5UnormPack16, Extent{16, 8, 1}, 1, 3)
	fillSequence(t, tex, 0)

	img, err := tex.Level(1)
	if err != nil {
		t.Fatalf("Level(1) error = %v", err)
	}
	if got := img.Extent(); got != (Extent{8, 4, 1}) {
		t.Errorf("Extent() = %v, want 8x4x1", got)
	}
	if got := img.Size(); got != 8*4*2 {
		t.Errorf("Size() = %d, want %d", got, 8*4*2)
	}
	want, _ := tex.ImageData(0, 0, 1)
	if &img.Data()[0] != &want[0] {
		t.Error("level image does not alias the texture buffer")
	}

	// The image keeps the buffer alive after the texture is released.
	if got := tex.RefCount(); got != 2 {
		t.Errorf("RefCount() = %d, want 2", got)
	}
	if err := tex.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if img.Empty() || img.Data()[0] != want[0] {
		t.Error("image lost its buffer when the texture was released")
	}
	if err := img.Release(); err != nil {
		t.Fatalf("image Release() error = %v", err)
	}
	if err := img.Release(); !IsBug(err) || !errors.Is(err, ErrReleased) {
		t.Errorf("second image Release() error = %v, want bug wrapping ErrReleased", err)
	}
	if _, err := tex.Level(0); !errors.Is(err, ErrReleased) {
		t.Errorf("Level() on released texture error = %v, want ErrReleased", err)
	}
}

func TestShareImage(t *testing.T) {
	img, err := NewImage(FormatRGBA8UnormPack8, Extent{4, 4, 1})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	defer img.Release()

	view, err := ShareImage(img, FormatR32SfloatPack32)
	if err != nil {
		t.Fatalf("ShareImage() error = %v", err)
	}
	defer view.Release()
	view.Data()[3] = 0x3F
	if img.Data()[3] != 0x3F {
		t.Error("shared image does not alias its source")
	}

	if _, err := ShareImage(img, FormatR16UnormPack16); !errors.Is(err, ErrIncompatibleFormat) || !IsBug(err) {
		t.Errorf("ShareImage(R16) error = %v, want bug wrapping ErrIncompatibleFormat", err)
	}
	if _, err := ShareImage(NewEmptyImage(), FormatR32SfloatPack32); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("ShareImage(empty) error = %v, want ErrEmptyTexture", err)
	}
}

func TestImageClear(t *testing.T) {
	img, err := NewImage(FormatR8UnormPack8, Extent{3, 3, 1})
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	defer img.Release()
	for i := range img.Data() {
		img.Data()[i] = byte(i + 1)
	}
	img.Clear()
	for i, b := range img.Data() {
		if b != 0 {
			t.Fatalf("byte %d = %d after Clear", i, b)
		}
	}
	empty := NewEmptyImage()
	if !empty.Empty() || empty.Size() != 0 || empty.Data() != nil {
		t.Error("empty image reports contents")
	}
	empty.Clear()
}
