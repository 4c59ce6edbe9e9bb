// Command glidump inspects DDS, KTX and KMG texture files.
//
// Usage:
//
//	glidump [-v] [-yaml] [-mipmaps] [-convert out.ktx] [-export out.png] [-level n] file
//
// The description is printed first. -mipmaps regenerates every level below
// the base level, allocating a full chain when the file has only one level.
// -convert writes the result to another container, chosen by extension.
// -export writes one image of the texture as PNG, BMP or TIFF.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gli"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "log library activity to stderr")
		asYAML  = flag.Bool("yaml", false, "print the description as YAML")
		mipmaps = flag.Bool("mipmaps", false, "generate mipmaps before converting or exporting")
		convert = flag.String("convert", "", "write the texture to `file` (.dds, .ktx, .kmg, optionally .zst)")
		export  = flag.String("export", "", "write one image to `file` (.png, .bmp, .tiff)")
		level   = flag.Int("level", 0, "mip level to export")
		layer   = flag.Int("layer", 0, "layer to export")
		face    = flag.Int("face", 0, "cube face to export")
		slice   = flag.Int("slice", 0, "depth slice of a 3D texture to export")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: glidump [flags] file\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *verbose {
		gli.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tex, err := gli.Load(path)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	defer tex.Release()

	if *mipmaps {
		full, err := withMipmaps(tex)
		if err != nil {
			log.Fatalf("Failed to generate mipmaps: %v", err)
		}
		defer full.Release()
		tex = full
	}

	desc := describe(path, tex)
	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			log.Fatalf("Failed to encode YAML: %v", err)
		}
		_ = enc.Close()
	} else {
		desc.print(os.Stdout, message.NewPrinter(language.English))
	}

	if *convert != "" {
		if err := gli.Save(tex, *convert); err != nil {
			log.Fatalf("Failed to convert: %v", err)
		}
		log.Printf("Converted to %s\n", *convert)
	}
	if *export != "" {
		if err := exportImage(tex, *export, *layer, *face, *level, *slice); err != nil {
			log.Fatalf("Failed to export: %v", err)
		}
		log.Printf("Exported level %d to %s\n", *level, *export)
	}
}

// withMipmaps returns a view of tex with every level below the base level
// regenerated. A texture with a single level is copied into a new texture
// with a complete chain first. Rectangle textures have no chain and are
// returned as they are.
func withMipmaps(tex *gli.Texture) (*gli.Texture, error) {
	out, err := gli.ShareFrom(tex)
	if err != nil {
		return nil, err
	}
	if tex.Target().IsRect() {
		return out, nil
	}
	if tex.Levels() == 1 && gli.MipmapLevels(tex.Extent(0)) > 1 {
		_ = out.Release()
		out, err = gli.NewWithMipmapChain(tex.Target(), tex.Format(), tex.Extent(0), tex.Layers())
		if err != nil {
			return nil, err
		}
		for layer := range tex.Layers() {
			for face := range tex.Faces() {
				if err := out.Copy(tex, layer, face, 0, layer, face, 0); err != nil {
					_ = out.Release()
					return nil, err
				}
			}
		}
		if err := out.SetSwizzles(tex.Swizzles()); err != nil {
			_ = out.Release()
			return nil, err
		}
	}

	s, err := gli.NewSampler(out, gli.WrapClampToEdge, gli.FilterLinear, gli.FilterLinear)
	if err == nil {
		err = s.GenerateMipmaps(gli.FilterLinear)
	}
	if err != nil {
		_ = out.Release()
		return nil, err
	}
	return out, nil
}
