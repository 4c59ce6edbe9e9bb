package gli

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var ktxIdentifier = [12]byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}

const (
	ktxEndianness        = 0x04030201
	ktxEndiannessSwapped = 0x01020304
	ktxHeaderSize        = 64
)

type ktxHeader struct {
	Identifier            [12]byte
	Endianness            uint32
	GLType                uint32
	GLTypeSize            uint32
	GLFormat              uint32
	GLInternalFormat      uint32
	GLBaseInternalFormat  uint32
	PixelWidth            uint32
	PixelHeight           uint32
	PixelDepth            uint32
	NumberOfArrayElements uint32
	NumberOfFaces         uint32
	NumberOfMipmapLevels  uint32
	BytesOfKeyValueData   uint32
}

// ktxPad returns the number of bytes that align n to 4.
func ktxPad(n int) int { return (4 - n%4) % 4 }

func decodeKTX(data []byte) (*Texture, error) {
	if len(data) < ktxHeaderSize || !bytes.Equal(data[:12], ktxIdentifier[:]) {
		return nil, malformed("missing KTX identifier")
	}
	var order binary.ByteOrder = binary.LittleEndian
	switch binary.LittleEndian.Uint32(data[12:]) {
	case ktxEndianness:
	case ktxEndiannessSwapped:
		order = binary.BigEndian
	default:
		return nil, malformed("KTX endianness %#x", binary.LittleEndian.Uint32(data[12:]))
	}
	r := bytes.NewReader(data)
	var h ktxHeader
	if err := binary.Read(r, order, &h); err != nil {
		return nil, malformed("truncated KTX header")
	}
	if int64(h.BytesOfKeyValueData) > int64(r.Len()) {
		return nil, malformed("KTX key/value data of %d bytes", h.BytesOfKeyValueData)
	}
	body := data[ktxHeaderSize+int(h.BytesOfKeyValueData):]

	format := FormatFromGL(GLFormat{Internal: h.GLInternalFormat, External: h.GLFormat, Type: h.GLType})
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: KTX internal format %#x, format %#x, type %#x",
			ErrUnsupportedFormat, h.GLInternalFormat, h.GLFormat, h.GLType)
	}

	extent := Extent{Width: int(h.PixelWidth), Height: max(int(h.PixelHeight), 1), Depth: max(int(h.PixelDepth), 1)}
	layers := max(int(h.NumberOfArrayElements), 1)
	faces := max(int(h.NumberOfFaces), 1)
	levels := max(int(h.NumberOfMipmapLevels), 1)
	var target Target
	switch {
	case faces == 6:
		target = TargetCube
	case faces != 1:
		return nil, malformed("KTX face count %d", faces)
	case h.PixelDepth > 0:
		target = Target3D
	case h.PixelHeight == 0:
		target = Target1D
	default:
		target = Target2D
	}
	if h.NumberOfArrayElements > 0 {
		target = arrayOf(target)
	}

	if _, ok := storageSize(format, target.shape(extent), layers, faces, levels, len(body)); !ok {
		return nil, malformed("KTX %v %v %v with %d layers, %d faces, %d levels does not fit %d bytes of pixel data",
			target, format, extent, layers, faces, levels, len(body))
	}
	tex, err := New(target, format, extent, layers, faces, levels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	swap := order == binary.BigEndian && !format.IsCompressed()
	off := 0
	for level := range levels {
		if off+4 > len(body) {
			_ = tex.Release()
			return nil, malformed("truncated KTX level %d", level)
		}
		off += 4 // imageSize
		for layer := range layers {
			for face := range faces {
				img := tex.storage.image(layer, face, level)
				if off+len(img) > len(body) {
					_ = tex.Release()
					return nil, malformed("truncated KTX image layer %d face %d level %d", layer, face, level)
				}
				copy(img, body[off:off+len(img)])
				if swap {
					swapWords(img, int(h.GLTypeSize))
				}
				off += len(img)
				if target == TargetCube {
					off += ktxPad(len(img))
				}
			}
		}
		off += ktxPad(off)
	}
	return tex, nil
}

// swapWords reverses the byte order of every size-byte word in b.
func swapWords(b []byte, size int) {
	if size < 2 {
		return
	}
	for i := 0; i+size <= len(b); i += size {
		w := b[i : i+size]
		for l, r := 0, size-1; l < r; l, r = l+1, r-1 {
			w[l], w[r] = w[r], w[l]
		}
	}
}

// EncodeKTX writes the images in view of t as a KTX 1.1 file.
func EncodeKTX(w io.Writer, t *Texture) error {
	if err := t.usable(); err != nil {
		return err
	}
	g, ok := GLFormatFor(t.format)
	if !ok {
		return fmt.Errorf("%w: %v has no OpenGL format", ErrUnsupportedFormat, t.format)
	}
	shape := t.storedShape()
	extent := t.Extent(0)
	h := ktxHeader{
		Identifier:           ktxIdentifier,
		Endianness:           ktxEndianness,
		GLType:               g.Type,
		GLTypeSize:           glTypeSize(t.format),
		GLFormat:             g.External,
		GLInternalFormat:     g.Internal,
		GLBaseInternalFormat: glBaseInternalFormat(t.format, g),
		PixelWidth:           uint32(extent.Width),
		NumberOfFaces:        uint32(shape.faces),
		NumberOfMipmapLevels: uint32(t.Levels()),
	}
	if !shape.target.Is1D() {
		h.PixelHeight = uint32(extent.Height)
	}
	if shape.target == Target3D {
		h.PixelDepth = uint32(extent.Depth)
	}
	if shape.target.IsArray() {
		h.NumberOfArrayElements = uint32(shape.layers)
	}

	var pad [3]byte
	buf := bytes.NewBuffer(make([]byte, 0, ktxHeaderSize+t.Size()+8*t.Levels()))
	_ = binary.Write(buf, binary.LittleEndian, &h)
	for level := range t.Levels() {
		size := t.SizeAtLevel(level)
		if shape.target != TargetCube {
			size *= t.Layers() * t.Faces()
		}
		_ = binary.Write(buf, binary.LittleEndian, uint32(size))
		for layer := range t.Layers() {
			for face := range t.Faces() {
				img, err := t.ImageData(layer, face, level)
				if err != nil {
					return err
				}
				buf.Write(img)
				if shape.target == TargetCube {
					buf.Write(pad[:ktxPad(len(img))])
				}
			}
		}
		buf.Write(pad[:ktxPad(buf.Len())])
	}
	_, err := buf.WriteTo(w)
	return err
}
