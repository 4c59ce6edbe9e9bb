package gli

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

const (
	ddsMagic           = 0x20534444 // "DDS "
	ddsHeaderSize      = 124
	ddsPixelFormatSize = 32
)

// DDS header flags.
const (
	ddsdCaps        = 0x1
	ddsdHeight      = 0x2
	ddsdWidth       = 0x4
	ddsdPitch       = 0x8
	ddsdPixelFormat = 0x1000
	ddsdMipMapCount = 0x20000
	ddsdLinearSize  = 0x80000
	ddsdDepth       = 0x800000
)

// DDS pixel format flags.
const (
	ddpfAlphaPixels = 0x1
	ddpfAlpha       = 0x2
	ddpfFourCC      = 0x4
	ddpfRGB         = 0x40
	ddpfLuminance   = 0x20000

	ddpfKindMask = ddpfAlpha | ddpfFourCC | ddpfRGB | ddpfLuminance
)

// DDS caps.
const (
	ddsCapsComplex    = 0x8
	ddsCapsTexture    = 0x1000
	ddsCapsMipMap     = 0x400000
	ddsCaps2Cubemap   = 0xFE00 // cube map with all six faces
	ddsCaps2Volume    = 0x200000
	ddsMiscCube       = 0x4
	ddsDimTexture1D   = 2
	ddsDimTexture2D   = 3
	ddsDimTexture3D   = 4
	ddsExtensionBytes = 20
)

type ddsPixelFormat struct {
	Size     uint32
	Flags    uint32
	FourCC   uint32
	BitCount uint32
	RMask    uint32
	GMask    uint32
	BMask    uint32
	AMask    uint32
}

type ddsHeader struct {
	Size        uint32
	Flags       uint32
	Height      uint32
	Width       uint32
	Pitch       uint32
	Depth       uint32
	MipMapCount uint32
	Reserved1   [11]uint32
	Format      ddsPixelFormat
	Caps        uint32
	Caps2       uint32
	Caps3       uint32
	Caps4       uint32
	Reserved2   uint32
}

// ddsHeader10 follows the header when the FourCC is DX10 or GLI1. For GLI1
// the format field holds a Format instead of a DXGIFormat.
type ddsHeader10 struct {
	Format     uint32
	Dimension  uint32
	MiscFlag   uint32
	ArraySize  uint32
	MiscFlags2 uint32
}

// ddsMask is an uncompressed legacy pixel format described by bit masks.
type ddsMask struct {
	flags      uint32
	bits       uint32
	r, g, b, a uint32
}

var ddsMasks = map[Format]ddsMask{
	FormatBGRA8UnormPack8:   {ddpfRGB | ddpfAlphaPixels, 32, 0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000},
	FormatRGBA8UnormPack8:   {ddpfRGB | ddpfAlphaPixels, 32, 0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000},
	FormatBGR8UnormPack32:   {ddpfRGB, 32, 0x00FF0000, 0x0000FF00, 0x000000FF, 0},
	FormatBGR8UnormPack8:    {ddpfRGB, 24, 0x00FF0000, 0x0000FF00, 0x000000FF, 0},
	FormatRGB8UnormPack8:    {ddpfRGB, 24, 0x000000FF, 0x0000FF00, 0x00FF0000, 0},
	FormatR5G6B5UnormPack16: {ddpfRGB, 16, 0xF800, 0x07E0, 0x001F, 0},
	FormatA1RGB5UnormPack16: {ddpfRGB | ddpfAlphaPixels, 16, 0x7C00, 0x03E0, 0x001F, 0x8000},
	FormatRGBA4UnormPack16:  {ddpfRGB | ddpfAlphaPixels, 16, 0xF000, 0x0F00, 0x00F0, 0x000F},
	FormatL8UnormPack8:      {ddpfLuminance, 8, 0xFF, 0, 0, 0},
	FormatLA8UnormPack8:     {ddpfLuminance | ddpfAlphaPixels, 16, 0x00FF, 0, 0, 0xFF00},
	FormatL16UnormPack16:    {ddpfLuminance, 16, 0xFFFF, 0, 0, 0},
	FormatA8UnormPack8:      {ddpfAlpha, 8, 0, 0, 0, 0xFF},
}

// ddsReadMask is a legacy layout without a matching format. It loads as
// format after convert rewrites the pixel data in place.
type ddsReadMask struct {
	mask    ddsMask
	format  Format
	convert func([]byte)
}

var ddsReadMasks = []ddsReadMask{
	// D3DFMT_A4R4G4B4
	{ddsMask{ddpfRGB | ddpfAlphaPixels, 16, 0x0F00, 0x00F0, 0x000F, 0xF000}, FormatRGBA4UnormPack16, rotateNibbles16},
}

// rotateNibbles16 turns ARGB4 words into RGBA4 words.
func rotateNibbles16(b []byte) {
	for i := 0; i+2 <= len(b); i += 2 {
		w := binary.LittleEndian.Uint16(b[i:])
		binary.LittleEndian.PutUint16(b[i:], bits.RotateLeft16(w, 4))
	}
}

func (m ddsMask) matches(pf ddsPixelFormat) bool {
	if pf.Flags&ddpfKindMask != m.flags&ddpfKindMask || pf.BitCount != m.bits {
		return false
	}
	if pf.RMask != m.r || pf.GMask != m.g || pf.BMask != m.b {
		return false
	}
	hasAlpha := pf.Flags&(ddpfAlphaPixels|ddpfAlpha) != 0
	return !(hasAlpha && pf.AMask != m.a || !hasAlpha && m.a != 0)
}

// ddsMaskFormat matches a legacy pixel format against ddsMasks, then
// ddsReadMasks. convert is nil unless the data needs rewriting.
func ddsMaskFormat(pf ddsPixelFormat) (format Format, convert func([]byte)) {
	for f, m := range ddsMasks {
		if m.matches(pf) {
			return f, nil
		}
	}
	for _, r := range ddsReadMasks {
		if r.mask.matches(pf) {
			return r.format, r.convert
		}
	}
	return FormatUndefined, nil
}

// ddsEncoding is the header variant a texture is written with.
type ddsEncoding uint8

const (
	ddsLegacyFourCC ddsEncoding = iota
	ddsLegacyMask
	ddsDX10
	ddsGLI1
)

// ddsEncodingFor picks the most portable header for target and format.
// Legacy headers cannot describe layers.
func ddsEncodingFor(target Target, format Format) ddsEncoding {
	legacy := !target.IsArray()
	if _, ok := d3dWrite[format]; ok && legacy {
		return ddsLegacyFourCC
	}
	if _, ok := dxgiTable[format]; ok {
		return ddsDX10
	}
	if _, ok := ddsMasks[format]; ok && legacy {
		return ddsLegacyMask
	}
	return ddsGLI1
}

// IsDDSExtension reports whether a texture of target and format can only
// be stored in DDS with the GLI1 extension header, which other readers do
// not understand.
func IsDDSExtension(target Target, format Format) bool {
	return ddsEncodingFor(target, format) == ddsGLI1
}

func decodeDDS(data []byte) (*Texture, error) {
	r := bytes.NewReader(data)
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil || magic != ddsMagic {
		return nil, malformed("missing DDS magic")
	}
	var h ddsHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, malformed("truncated DDS header")
	}
	if h.Size != ddsHeaderSize || h.Format.Size != ddsPixelFormatSize {
		return nil, malformed("DDS header size %d, pixel format size %d", h.Size, h.Format.Size)
	}

	format := FormatUndefined
	var convert func([]byte)
	var h10 ddsHeader10
	fourCC := D3DFormat(h.Format.FourCC)
	extended := h.Format.Flags&ddpfFourCC != 0 && (fourCC == D3DFmtDX10 || fourCC == D3DFmtGLI1)
	switch {
	case extended:
		if err := binary.Read(r, binary.LittleEndian, &h10); err != nil {
			return nil, malformed("truncated DDS DX10 header")
		}
		if fourCC == D3DFmtDX10 {
			format = FormatFromDXGI(DXGIFormat(h10.Format))
		} else {
			format = Format(h10.Format)
		}
	case h.Format.Flags&ddpfFourCC != 0:
		format = FormatFromD3D(fourCC)
	default:
		format, convert = ddsMaskFormat(h.Format)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: DDS pixel format %v (flags %#x, dxgi %d)",
			ErrUnsupportedFormat, fourCC, h.Format.Flags, h10.Format)
	}

	extent := Extent{Width: int(h.Width), Height: max(int(h.Height), 1), Depth: 1}
	if h.Flags&ddsdDepth != 0 || h.Caps2&ddsCaps2Volume != 0 {
		extent.Depth = max(int(h.Depth), 1)
	}
	levels := 1
	if h.Flags&ddsdMipMapCount != 0 || h.Caps&ddsCapsMipMap != 0 {
		levels = max(int(h.MipMapCount), 1)
	}
	layers, faces := 1, 1
	if h.Caps2&ddsCaps2Cubemap != 0 {
		if h.Caps2&ddsCaps2Cubemap != ddsCaps2Cubemap {
			return nil, malformed("partial cube map %#x", h.Caps2)
		}
		faces = 6
	}

	var target Target
	if extended {
		layers = max(int(h10.ArraySize), 1)
		switch h10.Dimension {
		case ddsDimTexture1D:
			target = Target1D
		case ddsDimTexture2D:
			target = Target2D
			if h10.MiscFlag&ddsMiscCube != 0 {
				target, faces = TargetCube, 6
			}
		case ddsDimTexture3D:
			target = Target3D
		default:
			return nil, malformed("DDS resource dimension %d", h10.Dimension)
		}
		if layers > 1 {
			target = arrayOf(target)
		}
	} else {
		switch {
		case extent.Depth > 1 || h.Caps2&ddsCaps2Volume != 0:
			target = Target3D
		case faces == 6:
			target = TargetCube
		case h.Flags&ddsdHeight == 0:
			target = Target1D
		default:
			target = Target2D
		}
	}

	payload := data[len(data)-r.Len():]
	size, ok := storageSize(format, target.shape(extent), layers, faces, levels, len(payload))
	if !ok {
		return nil, malformed("DDS %v %v %v with %d layers, %d faces, %d levels does not fit %d bytes of pixel data",
			target, format, extent, layers, faces, levels, len(payload))
	}
	tex, err := New(target, format, extent, layers, faces, levels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	// DDS orders images by layer, face then level, as storage does.
	copy(tex.storage.data, payload[:size])
	if convert != nil {
		convert(tex.storage.data[:size])
	}
	return tex, nil
}

// arrayOf returns the array variant of a non-array target.
func arrayOf(t Target) Target {
	switch t {
	case Target1D:
		return Target1DArray
	case Target2D:
		return Target2DArray
	case TargetRect:
		return TargetRectArray
	case TargetCube:
		return TargetCubeArray
	}
	return t
}

// EncodeDDS writes the images in view of t as a DDS file.
func EncodeDDS(w io.Writer, t *Texture) error {
	if err := t.usable(); err != nil {
		return err
	}
	shape := t.storedShape()
	format, target := t.format, shape.target
	enc := ddsEncodingFor(target, format)
	extent := t.Extent(0)

	h := ddsHeader{
		Size:        ddsHeaderSize,
		Flags:       ddsdCaps | ddsdWidth | ddsdPixelFormat,
		Width:       uint32(extent.Width),
		MipMapCount: uint32(t.Levels()),
		Format:      ddsPixelFormat{Size: ddsPixelFormatSize},
		Caps:        ddsCapsTexture,
	}
	if !target.Is1D() {
		h.Flags |= ddsdHeight
		h.Height = uint32(extent.Height)
	}
	if format.IsCompressed() {
		h.Flags |= ddsdLinearSize
		h.Pitch = uint32(t.SizeAtLevel(0))
	} else {
		h.Flags |= ddsdPitch
		h.Pitch = uint32(extent.blocks(format.BlockExtent()).Width * format.BlockSize())
	}
	if t.Levels() > 1 {
		h.Flags |= ddsdMipMapCount
		h.Caps |= ddsCapsMipMap | ddsCapsComplex
	}
	if target.IsCube() {
		h.Caps |= ddsCapsComplex
		h.Caps2 |= ddsCaps2Cubemap
	}
	if target == Target3D {
		h.Flags |= ddsdDepth
		h.Depth = uint32(extent.Depth)
		h.Caps |= ddsCapsComplex
		h.Caps2 |= ddsCaps2Volume
	}

	var h10 *ddsHeader10
	switch enc {
	case ddsLegacyFourCC:
		h.Format.Flags = ddpfFourCC
		h.Format.FourCC = uint32(d3dWrite[format])
	case ddsLegacyMask:
		m := ddsMasks[format]
		h.Format.Flags = m.flags
		h.Format.BitCount = m.bits
		h.Format.RMask, h.Format.GMask, h.Format.BMask, h.Format.AMask = m.r, m.g, m.b, m.a
	case ddsDX10, ddsGLI1:
		h.Format.Flags = ddpfFourCC
		h10 = &ddsHeader10{ArraySize: uint32(shape.layers)}
		if enc == ddsDX10 {
			h.Format.FourCC = uint32(D3DFmtDX10)
			h10.Format = uint32(dxgiTable[format])
		} else {
			h.Format.FourCC = uint32(D3DFmtGLI1)
			h10.Format = uint32(format)
		}
		switch {
		case target.Is1D():
			h10.Dimension = ddsDimTexture1D
		case target == Target3D:
			h10.Dimension = ddsDimTexture3D
		default:
			h10.Dimension = ddsDimTexture2D
		}
		if target.IsCube() {
			h10.MiscFlag = ddsMiscCube
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, 4+ddsHeaderSize+ddsExtensionBytes+t.Size()))
	_ = binary.Write(buf, binary.LittleEndian, uint32(ddsMagic))
	_ = binary.Write(buf, binary.LittleEndian, &h)
	if h10 != nil {
		_ = binary.Write(buf, binary.LittleEndian, h10)
	}
	t.each(func(layer, face, level int) {
		buf.Write(t.storage.image(layer, face, level))
	})
	_, err := buf.WriteTo(w)
	return err
}
