package gli

import (
	"fmt"
	"os"
)

// Load reads a DDS, KTX or KMG file, optionally zstd compressed. The
// container is identified from the file contents.
func Load(path string, opts ...LoadOption) (*Texture, error) {
	return loadFile(path, containerUnknown, opts)
}

// LoadDDS reads a DDS file.
func LoadDDS(path string, opts ...LoadOption) (*Texture, error) {
	return loadFile(path, containerDDS, opts)
}

// LoadKTX reads a KTX 1.1 file.
func LoadKTX(path string, opts ...LoadOption) (*Texture, error) {
	return loadFile(path, containerKTX, opts)
}

// LoadKMG reads a KMG file.
func LoadKMG(path string, opts ...LoadOption) (*Texture, error) {
	return loadFile(path, containerKMG, opts)
}

// LoadFromMemory parses a container held in data. data is not retained.
func LoadFromMemory(data []byte, opts ...LoadOption) (*Texture, error) {
	return load("", data, containerUnknown, opts)
}

func LoadDDSFromMemory(data []byte, opts ...LoadOption) (*Texture, error) {
	return load("", data, containerDDS, opts)
}

func LoadKTXFromMemory(data []byte, opts ...LoadOption) (*Texture, error) {
	return load("", data, containerKTX, opts)
}

func LoadKMGFromMemory(data []byte, opts ...LoadOption) (*Texture, error) {
	return load("", data, containerKMG, opts)
}

func loadFile(path string, want container, opts []LoadOption) (*Texture, error) {
	if path == "" {
		return nil, pathError(path, ErrInvalidPath, "empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	return load(path, data, want, opts)
}

// load decodes data as the container want, or the sniffed container when
// want is unknown. The result is never a partially decoded texture.
func load(path string, data []byte, want container, opts []LoadOption) (*Texture, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if isZstd(data) {
		raw, err := decompressZstd(data)
		if err != nil {
			return nil, loadError(path, fmt.Errorf("%w: zstd: %w", ErrMalformed, err))
		}
		data = raw
	}
	kind := sniff(data)
	switch {
	case kind == containerUnknown:
		return nil, loadError(path, ErrUnsupportedContainer)
	case want != containerUnknown && kind != want:
		return nil, loadError(path, malformed("%v data is not %v", kind, want))
	}

	tex, err := kind.decode(data)
	if err != nil {
		Logger().Warn("gli: container rejected", "path", path, "container", kind, "err", err)
		return nil, loadError(path, err)
	}
	if o.hasTarget && o.target != tex.target {
		view, err := tex.As(o.target)
		_ = tex.Release()
		if err != nil {
			return nil, loadError(path, err)
		}
		tex = view
	}

	Logger().Info("gli: texture loaded", "path", path, "container", kind, textureAttrs(tex))
	return tex, nil
}
