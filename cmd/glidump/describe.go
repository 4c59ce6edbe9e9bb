package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gogpu/gli"
	"golang.org/x/text/message"
)

type levelInfo struct {
	Level  int `yaml:"level"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
	Bytes  int `yaml:"bytes"`
}

type description struct {
	File       string      `yaml:"file"`
	Format     string      `yaml:"format"`
	Target     string      `yaml:"target"`
	Swizzles   string      `yaml:"swizzles"`
	Layers     int         `yaml:"layers"`
	Faces      int         `yaml:"faces"`
	Levels     []levelInfo `yaml:"levels"`
	Bytes      int         `yaml:"bytes"`
	Compressed bool        `yaml:"compressed"`
	SRGB       bool        `yaml:"srgb"`
	DXGI       *uint32     `yaml:"dxgi,omitempty"`
	GL         *glInfo     `yaml:"gl,omitempty"`
	WebGPU     string      `yaml:"webgpu,omitempty"`
}

type glInfo struct {
	Internal uint32 `yaml:"internal"`
	External uint32 `yaml:"external"`
	Type     uint32 `yaml:"type"`
}

func describe(path string, tex *gli.Texture) description {
	f := tex.Format()
	d := description{
		File:       filepath.Base(path),
		Format:     f.String(),
		Target:     tex.Target().String(),
		Swizzles:   tex.Swizzles().String(),
		Layers:     tex.Layers(),
		Faces:      tex.Faces(),
		Bytes:      tex.Size(),
		Compressed: f.IsCompressed(),
		SRGB:       f.IsSRGB(),
	}
	for level := range tex.Levels() {
		e := tex.Extent(level)
		d.Levels = append(d.Levels, levelInfo{
			Level:  level,
			Width:  e.Width,
			Height: e.Height,
			Depth:  e.Depth,
			Bytes:  tex.SizeAtLevel(level),
		})
	}
	if dx, ok := gli.DXGIFormatFor(f); ok {
		v := uint32(dx)
		d.DXGI = &v
	}
	if g, ok := gli.GLFormatFor(f); ok {
		d.GL = &glInfo{Internal: g.Internal, External: g.External, Type: g.Type}
	}
	if w, ok := gli.WebGPUFormatFor(f); ok {
		d.WebGPU = w.String()
	}
	return d
}

func (d description) print(w io.Writer, p *message.Printer) {
	p.Fprintf(w, "%s: %s %s\n", d.File, d.Target, d.Format)
	p.Fprintf(w, "  layers %d, faces %d, levels %d, swizzles %s\n", d.Layers, d.Faces, len(d.Levels), d.Swizzles)
	for _, l := range d.Levels {
		extent := fmt.Sprintf("%dx%dx%d", l.Width, l.Height, l.Depth)
		p.Fprintf(w, "  level %2d: %s, %d bytes\n", l.Level, extent, l.Bytes)
	}
	p.Fprintf(w, "  total %d bytes per layer and face, %d bytes\n", d.Bytes/(d.Layers*d.Faces), d.Bytes)
	if d.DXGI != nil {
		p.Fprintf(w, "  DXGI %d\n", *d.DXGI)
	}
	if d.GL != nil {
		p.Fprintf(w, "  GL internal %#x, format %#x, type %#x\n", d.GL.Internal, d.GL.External, d.GL.Type)
	}
	if d.WebGPU != "" {
		p.Fprintf(w, "  WebGPU %s\n", d.WebGPU)
	}
}
