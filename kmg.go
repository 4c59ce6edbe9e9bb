package gli

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var kmgIdentifier = [14]byte{0xAB, 'K', 'I', 'M', 'G', ' ', '1', '0', '0', 0xBB, '\r', '\n', 0x1A, '\n'}

const kmgEndianness = 0x04030201

// kmgHeader describes a raw storage dump. Format, Target and the swizzles
// are stored with their enum values.
type kmgHeader struct {
	Endianness      uint32
	Format          uint32
	Target          uint32
	SwizzleRed      uint32
	SwizzleGreen    uint32
	SwizzleBlue     uint32
	SwizzleAlpha    uint32
	Width           uint32
	Height          uint32
	Depth           uint32
	Layers          uint32
	Levels          uint32
	Faces           uint32
	GenerateMipmaps uint32
	BaseLevel       uint32
	MaxLevel        uint32
}

func decodeKMG(data []byte) (*Texture, error) {
	if len(data) < len(kmgIdentifier) || !bytes.Equal(data[:len(kmgIdentifier)], kmgIdentifier[:]) {
		return nil, malformed("missing KMG identifier")
	}
	r := bytes.NewReader(data[len(kmgIdentifier):])
	var h kmgHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, malformed("truncated KMG header")
	}
	if h.Endianness != kmgEndianness {
		return nil, malformed("KMG endianness %#x", h.Endianness)
	}
	format, target := Format(h.Format), Target(h.Target)
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: KMG format %d", ErrMalformed, h.Format)
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: KMG target %d", ErrMalformed, h.Target)
	}
	swizzles := Swizzles{Swizzle(h.SwizzleRed), Swizzle(h.SwizzleGreen), Swizzle(h.SwizzleBlue), Swizzle(h.SwizzleAlpha)}
	if !swizzles.IsValid() {
		return nil, fmt.Errorf("%w: KMG swizzles %v", ErrMalformed, swizzles)
	}

	extent := Extent{Width: int(h.Width), Height: int(h.Height), Depth: int(h.Depth)}
	layers, faces, levels := int(h.Layers), int(h.Faces), int(h.Levels)
	payload := data[len(data)-r.Len():]
	size, ok := storageSize(format, target.shape(fill(extent)), layers, faces, levels, len(payload))
	if !ok {
		return nil, malformed("KMG %v %v %v with %d layers, %d faces, %d levels does not fit %d bytes of pixel data",
			target, format, extent, layers, faces, levels, len(payload))
	}
	tex, err := New(target, format, extent, layers, faces, levels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	copy(tex.storage.data, payload[:size])
	tex.swizzles = swizzles
	return tex, nil
}

// EncodeKMG writes the images in view of t as a KMG file. Compressed
// formats are not supported.
func EncodeKMG(w io.Writer, t *Texture) error {
	if err := t.usable(); err != nil {
		return err
	}
	if t.format.IsCompressed() {
		return fmt.Errorf("%w: KMG cannot store compressed format %v", ErrUnsupportedFormat, t.format)
	}
	shape := t.storedShape()
	extent := t.Extent(0)
	h := kmgHeader{
		Endianness:   kmgEndianness,
		Format:       uint32(t.format),
		Target:       uint32(shape.target),
		SwizzleRed:   uint32(t.swizzles[0]),
		SwizzleGreen: uint32(t.swizzles[1]),
		SwizzleBlue:  uint32(t.swizzles[2]),
		SwizzleAlpha: uint32(t.swizzles[3]),
		Width:        uint32(extent.Width),
		Height:       uint32(extent.Height),
		Depth:        uint32(extent.Depth),
		Layers:       uint32(shape.layers),
		Levels:       uint32(t.Levels()),
		Faces:        uint32(shape.faces),
		MaxLevel:     uint32(t.Levels() - 1),
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(kmgIdentifier)+64+t.Size()))
	buf.Write(kmgIdentifier[:])
	_ = binary.Write(buf, binary.LittleEndian, &h)
	t.each(func(layer, face, level int) {
		buf.Write(t.storage.image(layer, face, level))
	})
	_, err := buf.WriteTo(w)
	return err
}
