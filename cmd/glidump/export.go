package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gli"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// exportImage decodes one image of tex through a sampler and writes it in
// the format named by the extension of path. Channels are clamped to [0, 1].
func exportImage(tex *gli.Texture, path string, layer, face, level, slice int) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported image extension %q", ext)
	}

	s, err := gli.NewSampler(tex, gli.WrapClampToEdge, gli.FilterNone, gli.FilterNearest)
	if err != nil {
		return err
	}
	if level < 0 || level >= tex.Levels() {
		return fmt.Errorf("level %d out of range [0, %d)", level, tex.Levels())
	}
	e := tex.Extent(level)
	if slice < 0 || slice >= e.Depth {
		return fmt.Errorf("slice %d out of range [0, %d)", slice, e.Depth)
	}

	img := image.NewNRGBA(image.Rect(0, 0, e.Width, e.Height))
	swizzles := tex.Swizzles()
	for y := range e.Height {
		for x := range e.Width {
			v, err := s.TexelFetch(gli.Coord{X: x, Y: y, Z: slice}, layer, face, level)
			if err != nil {
				return err
			}
			v = swizzles.Apply(v)
			img.SetNRGBA(x, y, color.NRGBA{R: to8(v[0]), G: to8(v[1]), B: to8(v[2]), A: to8(v[3])})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func to8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
