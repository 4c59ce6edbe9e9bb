package gli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const zstdExt = ".zst"

// Save writes t to path in the container named by the extension: .dds, .ktx
// or .kmg, case-insensitive. A trailing .zst, as in "sky.ktx.zst",
// compresses the file with zstd.
func Save(t *Texture, path string) error {
	name := strings.ToLower(path)
	compress := strings.HasSuffix(name, zstdExt)
	name = strings.TrimSuffix(name, zstdExt)
	ext := filepath.Ext(name)
	if ext == "" {
		return pathError(path, ErrUnsupportedContainer, "missing file extension")
	}
	kind := containerForExt(ext)
	if kind == containerUnknown {
		return saveError(path, fmt.Errorf("%w: %q", ErrUnsupportedContainer, ext))
	}
	return save(t, path, kind, compress)
}

// SaveDDS writes t to path as DDS whatever the extension of path.
func SaveDDS(t *Texture, path string) error { return save(t, path, containerDDS, false) }

// SaveKTX writes t to path as KTX whatever the extension of path.
func SaveKTX(t *Texture, path string) error { return save(t, path, containerKTX, false) }

// SaveKMG writes t to path as KMG whatever the extension of path.
func SaveKMG(t *Texture, path string) error { return save(t, path, containerKMG, false) }

func save(t *Texture, path string, kind container, compress bool) error {
	if path == "" {
		return pathError(path, ErrInvalidPath, "empty path")
	}
	var buf bytes.Buffer
	if err := kind.encode(&buf, t); err != nil {
		return saveError(path, err)
	}
	data := buf.Bytes()
	if compress {
		var err error
		if data, err = compressZstd(data); err != nil {
			return saveError(path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ioError(path, err)
	}
	Logger().Info("gli: texture saved", "path", path, "container", kind, textureAttrs(t),
		"bytes", len(data), "zstd", compress)
	return nil
}
