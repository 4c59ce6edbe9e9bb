package gli

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// container identifies a texture file format.
type container uint8

const (
	containerUnknown container = iota
	containerDDS
	containerKTX
	containerKMG
)

func (c container) String() string {
	switch c {
	case containerDDS:
		return "DDS"
	case containerKTX:
		return "KTX"
	case containerKMG:
		return "KMG"
	}
	return "unknown"
}

// fileShape is the target and the layer and face counts a view is written
// with.
type fileShape struct {
	target Target
	layers int
	faces  int
}

// storedShape returns the shape containers store t as. A cube view narrowed
// to fewer than six faces is stored as a 2D texture, or as a 2D array when
// more than one image remains, with each face of each layer as one layer.
// Storage order is unchanged since faces follow layers.
func (t *Texture) storedShape() fileShape {
	s := fileShape{target: t.target, layers: t.Layers(), faces: t.Faces()}
	if !t.target.IsCube() || s.faces == 6 {
		return s
	}
	s.layers, s.faces = s.layers*s.faces, 1
	s.target = Target2D
	if t.target.IsArray() || s.layers > 1 {
		s.target = Target2DArray
	}
	return s
}

func (c container) decode(data []byte) (*Texture, error) {
	switch c {
	case containerDDS:
		return decodeDDS(data)
	case containerKTX:
		return decodeKTX(data)
	case containerKMG:
		return decodeKMG(data)
	}
	return nil, ErrUnsupportedContainer
}

func (c container) encode(w io.Writer, t *Texture) error {
	switch c {
	case containerDDS:
		return EncodeDDS(w, t)
	case containerKTX:
		return EncodeKTX(w, t)
	case containerKMG:
		return EncodeKMG(w, t)
	}
	return ErrUnsupportedContainer
}

// containerForExt maps a lower case file extension to a container.
func containerForExt(ext string) container {
	switch ext {
	case ".dds":
		return containerDDS
	case ".ktx":
		return containerKTX
	case ".kmg":
		return containerKMG
	}
	return containerUnknown
}

// sniff identifies the container of data from its leading bytes.
func sniff(data []byte) container {
	switch {
	case len(data) >= 4 && string(data[:4]) == "DDS ":
		return containerDDS
	case bytes.HasPrefix(data, ktxIdentifier[:]):
		return containerKTX
	case bytes.HasPrefix(data, kmgIdentifier[:]):
		return containerKMG
	}
	return containerUnknown
}

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// maxDecompressed bounds the size of a zstd wrapped container.
const maxDecompressed = 1 << 30

func isZstd(data []byte) bool { return bytes.HasPrefix(data, zstdMagic) }

func compressZstd(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(maxDecompressed))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(dec); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
