package gli

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// errorKind returns the kind of a *Error in err's chain.
func errorKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not a *Error", err)
	}
	return e.Kind
}

func encodeTo(t *testing.T, kind container, tex *Texture) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := kind.encode(&buf, tex); err != nil {
		t.Fatalf("%v encode error = %v", kind, err)
	}
	return buf.Bytes()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		target Target
		format Format
		extent Extent
		layers int
		levels int
	}{
		{"dds 2d dx10", "a.dds", Target2D, FormatRGBA8UnormPack8, Extent{8, 4, 1}, 1, 4},
		{"dds dxt1 fourcc", "a.dds", Target2D, FormatRGBDXT1UnormBlock8, Extent{16, 16, 1}, 1, 3},
		{"dds luminance mask", "a.dds", Target2D, FormatL8UnormPack8, Extent{5, 3, 1}, 1, 2},
		{"dds 1d", "a.dds", Target1D, FormatRGBA16SfloatPack16, Extent{16, 1, 1}, 1, 1},
		{"dds 2d array", "a.dds", Target2DArray, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 3, 2},
		{"dds cube", "a.dds", TargetCube, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 1, 3},
		{"dds cube array", "a.dds", TargetCubeArray, FormatRGBADXT5UnormBlock16, Extent{8, 8, 1}, 2, 2},
		{"dds 3d", "a.dds", Target3D, FormatRGBA16SfloatPack16, Extent{4, 4, 4}, 1, 3},
		{"dds gli1", "a.dds", Target2DArray, FormatRG3B2UnormPack8, Extent{3, 3, 1}, 2, 2},
		{"ktx 2d", "a.ktx", Target2D, FormatR5G6B5UnormPack16, Extent{7, 5, 1}, 1, 3},
		{"ktx 1d array", "a.ktx", Target1DArray, FormatRGBA8UnormPack8, Extent{8, 1, 1}, 2, 4},
		{"ktx 2d array", "a.ktx", Target2DArray, FormatRGB8UnormPack8, Extent{3, 3, 1}, 2, 2},
		{"ktx cube", "a.ktx", TargetCube, FormatR8UnormPack8, Extent{3, 3, 1}, 1, 2},
		{"ktx cube array", "a.ktx", TargetCubeArray, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 2, 2},
		{"ktx 3d", "a.ktx", Target3D, FormatR16UnormPack16, Extent{4, 2, 3}, 1, 2},
		{"ktx compressed", "a.ktx", Target2D, FormatRGBADXT5UnormBlock16, Extent{8, 8, 1}, 1, 4},
		{"kmg rect", "a.kmg", TargetRect, FormatRGBA8UnormPack8, Extent{6, 2, 1}, 1, 1},
		{"kmg 1d array", "a.kmg", Target1DArray, FormatRG16SfloatPack16, Extent{8, 1, 1}, 1, 2},
		{"kmg cube array", "a.kmg", TargetCubeArray, FormatR32SfloatPack32, Extent{2, 2, 1}, 2, 1},
		{"zstd ktx", "a.KTX.zst", Target2D, FormatRGBA8UnormPack8, Extent{32, 32, 1}, 1, 6},
		{"zstd dds", "a.dds.zst", TargetCube, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := newTestTexture(t, tt.target, tt.format, tt.extent, tt.layers, tt.levels)
			fillSequence(t, tex, 7)
			path := filepath.Join(t.TempDir(), tt.file)

			if err := Save(tex, path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer got.Release()
			if !got.Equal(tex) {
				t.Errorf("Load() = %v %v %v layers=%d faces=%d levels=%d, want %v %v %v layers=%d faces=%d levels=%d",
					got.Target(), got.Format(), got.Extent(0), got.Layers(), got.Faces(), got.Levels(),
					tex.Target(), tex.Format(), tex.Extent(0), tex.Layers(), tex.Faces(), tex.Levels())
			}
		})
	}
}

func TestSaveLoadCubeFaceViews(t *testing.T) {
	cube := newTestTexture(t, TargetCube, FormatR8UnormPack8, Extent{3, 3, 1}, 1, 2)
	fillSequence(t, cube, 11)
	cubes := newTestTexture(t, TargetCubeArray, FormatR8UnormPack8, Extent{3, 3, 1}, 2, 2)
	fillSequence(t, cubes, 5)

	views := []struct {
		name       string
		view       func() (*Texture, error)
		wantTarget Target
		wantLayers int
	}{
		{"face", func() (*Texture, error) { return cube.Face(2) }, Target2D, 1},
		{"face range", func() (*Texture, error) {
			return ShareFromDetail(cube, cube.Format(), 0, 0, 1, 3, 0, 1)
		}, Target2DArray, 3},
		{"array face", func() (*Texture, error) { return cubes.Face(4) }, Target2DArray, 2},
	}
	for _, v := range views {
		for _, kind := range []container{containerDDS, containerKTX, containerKMG} {
			t.Run(v.name+" "+kind.String(), func(t *testing.T) {
				view, err := v.view()
				if err != nil {
					t.Fatalf("view error = %v", err)
				}
				defer view.Release()

				got, err := LoadFromMemory(encodeTo(t, kind, view))
				if err != nil {
					t.Fatalf("LoadFromMemory() error = %v", err)
				}
				defer got.Release()
				if got.Target() != v.wantTarget || got.Layers() != v.wantLayers || got.Faces() != 1 ||
					got.Levels() != view.Levels() || got.Extent(0) != view.Extent(0) {
					t.Fatalf("Load() = %v layers=%d faces=%d levels=%d, want %v layers=%d faces=1 levels=%d",
						got.Target(), got.Layers(), got.Faces(), got.Levels(), v.wantTarget, v.wantLayers, view.Levels())
				}
				for layer := range view.Layers() {
					for face := range view.Faces() {
						for level := range view.Levels() {
							want, _ := view.ImageData(layer, face, level)
							img, err := got.ImageData(layer*view.Faces()+face, 0, level)
							if err != nil || !bytes.Equal(img, want) {
								t.Errorf("image layer %d face %d level %d = %v (%v), want %v",
									layer, face, level, img, err, want)
							}
						}
					}
				}
			})
		}
	}
}

func TestSaveCompressesZstd(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{64, 64, 1}, 1, 1)
	dir := t.TempDir()
	plain, packed := filepath.Join(dir, "a.kmg"), filepath.Join(dir, "a.kmg.zst")
	for _, p := range []string{plain, packed} {
		if err := Save(tex, p); err != nil {
			t.Fatalf("Save(%s) error = %v", p, err)
		}
	}
	raw, _ := os.ReadFile(plain)
	z, _ := os.ReadFile(packed)
	if !isZstd(z) || isZstd(raw) {
		t.Fatalf("isZstd(plain) = %v, isZstd(packed) = %v", isZstd(raw), isZstd(z))
	}
	if len(z) >= len(raw) {
		t.Errorf("compressed size %d, want less than %d", len(z), len(raw))
	}
	got, err := LoadKMGFromMemory(z)
	if err != nil {
		t.Fatalf("LoadKMGFromMemory() error = %v", err)
	}
	defer got.Release()
	if !got.Equal(tex) {
		t.Error("zstd KMG does not round trip")
	}
}

func TestLoadKTX565(t *testing.T) {
	src := newTestTexture(t, Target2D, FormatR5G6B5UnormPack16, Extent{256, 256, 1}, 1, 1)
	data := encodeTo(t, containerKTX, src)

	tex, err := LoadFromMemory(data)
	if err != nil {
		t.Fatalf("LoadFromMemory() error = %v", err)
	}
	defer tex.Release()
	if tex.Levels() != 1 || tex.Faces() != 1 || tex.Layers() != 1 {
		t.Errorf("levels/faces/layers = %d/%d/%d, want 1/1/1", tex.Levels(), tex.Faces(), tex.Layers())
	}
	if tex.Extent(0) != (Extent{256, 256, 1}) {
		t.Errorf("Extent(0) = %v, want 256x256x1", tex.Extent(0))
	}
	img, err := tex.Level(0)
	if err != nil {
		t.Fatalf("Level(0) error = %v", err)
	}
	defer img.Release()
	if img.Size() != 256*256*2 {
		t.Errorf("Level(0).Size() = %d, want %d", img.Size(), 256*256*2)
	}
}

func TestLoadKTXBigEndian(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(ktxIdentifier[:])
	for _, v := range []uint32{
		ktxEndianness, glUnsignedShort, 2, glRed, glR16, glRed,
		2, 1, 0, // width, height, depth
		0, 1, 1, 0, // array elements, faces, levels, key/value bytes
		4, // image size
	} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write([]byte{0x12, 0x34, 0xAB, 0xCD})

	tex, err := LoadKTXFromMemory(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadKTXFromMemory() error = %v", err)
	}
	defer tex.Release()
	if tex.Format() != FormatR16UnormPack16 || tex.Target() != Target2D {
		t.Fatalf("loaded %v %v, want R16 2D", tex.Format(), tex.Target())
	}
	if want := []byte{0x34, 0x12, 0xCD, 0xAB}; !bytes.Equal(tex.Data(), want) {
		t.Errorf("Data() = % x, want % x", tex.Data(), want)
	}
}

func TestLoadKTXKeyValueData(t *testing.T) {
	src := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 1, 1)
	fillSequence(t, src, 1)
	data := encodeTo(t, containerKTX, src)

	kv := []byte{12, 0, 0, 0, 'k', 'e', 'y', 0, 'v', 'a', 'l', 0, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(data[60:], uint32(len(kv)))
	patched := append(append(append([]byte{}, data[:ktxHeaderSize]...), kv...), data[ktxHeaderSize:]...)

	tex, err := LoadFromMemory(patched)
	if err != nil {
		t.Fatalf("LoadFromMemory() error = %v", err)
	}
	defer tex.Release()
	if !tex.Equal(src) {
		t.Error("key/value data was not skipped")
	}
}

func TestLoadMalformed(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 1, 2)
	dds := encodeTo(t, containerDDS, tex)
	ktx := encodeTo(t, containerKTX, tex)
	kmg := encodeTo(t, containerKMG, tex)

	hugeDDS := bytes.Clone(dds)
	binary.LittleEndian.PutUint32(hugeDDS[16:], 0x7FFFFFFF)
	hugeKTX := bytes.Clone(ktx)
	binary.LittleEndian.PutUint32(hugeKTX[36:], 1<<30)
	badKMG := bytes.Clone(kmg)
	binary.LittleEndian.PutUint32(badKMG[len(kmgIdentifier)+4:], 0xFFFF)
	badDX10 := encodeTo(t, containerDDS, newTestTexture(t, Target2DArray, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 2, 1))
	binary.LittleEndian.PutUint32(badDX10[4+ddsHeaderSize:], 0xFFFF)
	badZstd := append(bytes.Clone(zstdMagic), 1, 2, 3, 4, 5)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrUnsupportedContainer},
		{"garbage", []byte("not a texture"), ErrUnsupportedContainer},
		{"dds magic only", []byte("DDS "), ErrMalformed},
		{"dds truncated header", dds[:60], ErrMalformed},
		{"dds truncated pixels", dds[:len(dds)-1], ErrMalformed},
		{"dds huge width", hugeDDS, ErrMalformed},
		{"dds unknown dxgi", badDX10, ErrUnsupportedFormat},
		{"ktx truncated header", ktx[:40], ErrMalformed},
		{"ktx truncated pixels", ktx[:len(ktx)-3], ErrMalformed},
		{"ktx huge width", hugeKTX, ErrMalformed},
		{"kmg truncated", kmg[:len(kmgIdentifier)+10], ErrMalformed},
		{"kmg truncated pixels", kmg[:len(kmg)-1], ErrMalformed},
		{"kmg bad format", badKMG, ErrMalformed},
		{"zstd garbage", badZstd, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFromMemory(tt.data)
			if err == nil {
				_ = got.Release()
				t.Fatal("LoadFromMemory() succeeded")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadFromMemory() error = %v, want %v", err, tt.want)
			}
			if k := errorKind(t, err); k != KindLoadTexture {
				t.Errorf("error kind = %v, want %v", k, KindLoadTexture)
			}
		})
	}
}

func TestLoadContainerMismatch(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 1, 1)
	dds := encodeTo(t, containerDDS, tex)
	loaders := map[string]func([]byte, ...LoadOption) (*Texture, error){
		"KTX": LoadKTXFromMemory,
		"KMG": LoadKMGFromMemory,
	}
	for name, load := range loaders {
		if _, err := load(dds); !errors.Is(err, ErrMalformed) {
			t.Errorf("Load%sFromMemory(DDS) error = %v, want ErrMalformed", name, err)
		}
	}
	got, err := LoadDDSFromMemory(dds)
	if err != nil {
		t.Fatalf("LoadDDSFromMemory() error = %v", err)
	}
	_ = got.Release()
}

func TestLoadWithTarget(t *testing.T) {
	tex := newTestTexture(t, Target2DArray, FormatRGBA8UnormPack8, Extent{4, 4, 1}, 1, 1)
	fillSequence(t, tex, 3)
	dds := encodeTo(t, containerDDS, tex)
	if fourCC, size := D3DFormat(binary.LittleEndian.Uint32(dds[84:])), binary.LittleEndian.Uint32(dds[140:]); fourCC != D3DFmtDX10 || size != 1 {
		t.Fatalf("header FourCC %v with array size %d, want DX10 with 1", fourCC, size)
	}

	plain, err := LoadFromMemory(dds)
	if err != nil {
		t.Fatalf("LoadFromMemory() error = %v", err)
	}
	defer plain.Release()
	if plain.Target() != Target2D {
		t.Errorf("single layer DDS loads as %v, want %v", plain.Target(), Target2D)
	}

	arr, err := LoadFromMemory(dds, WithTarget(Target2DArray))
	if err != nil {
		t.Fatalf("LoadFromMemory(WithTarget) error = %v", err)
	}
	defer arr.Release()
	if !arr.Equal(tex) {
		t.Errorf("WithTarget(%v) = %v, want equal texture", Target2DArray, arr.Target())
	}
	if arr.RefCount() != 1 {
		t.Errorf("RefCount() = %d, want 1", arr.RefCount())
	}

	if _, err := LoadFromMemory(dds, WithTarget(Target3D)); err == nil {
		t.Error("LoadFromMemory(WithTarget(3D)) succeeded for a 2D texture")
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load("")
	if k := errorKind(t, err); k != KindPath {
		t.Errorf("Load(\"\") kind = %v, want %v", k, KindPath)
	}
	if !errors.Is(err, ErrInvalidPath) || errors.Is(err, ErrUnsupportedContainer) {
		t.Errorf("Load(\"\") error = %v, want %v only", err, ErrInvalidPath)
	}

	missing := filepath.Join(t.TempDir(), "missing.dds")
	_, err = Load(missing)
	if k := errorKind(t, err); k != KindIO {
		t.Errorf("Load(missing) kind = %v, want %v", k, KindIO)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 1, 1)
	bc := newTestTexture(t, Target2D, FormatRGBADXT5UnormBlock16, Extent{4, 4, 1}, 1, 1)
	released, _ := New2D(FormatRGBA8UnormPack8, Extent{2, 2, 1}, 1)
	_ = released.Release()

	tests := []struct {
		name     string
		save     func() error
		wantKind ErrorKind
		want     error
	}{
		{"no extension", func() error { return Save(tex, filepath.Join(dir, "texture")) }, KindPath, ErrUnsupportedContainer},
		{"only zst", func() error { return Save(tex, filepath.Join(dir, "texture.zst")) }, KindPath, ErrUnsupportedContainer},
		{"empty path", func() error { return SaveKTX(tex, "") }, KindPath, ErrInvalidPath},
		{"unknown extension", func() error { return Save(tex, filepath.Join(dir, "a.png")) }, KindSaveTexture, ErrUnsupportedContainer},
		{"kmg compressed", func() error { return Save(bc, filepath.Join(dir, "a.kmg")) }, KindSaveTexture, ErrUnsupportedFormat},
		{"released", func() error { return Save(released, filepath.Join(dir, "a.dds")) }, KindSaveTexture, ErrReleased},
		{"missing directory", func() error { return Save(tex, filepath.Join(dir, "no", "a.dds")) }, KindIO, fs.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.save()
			if err == nil {
				t.Fatal("save succeeded")
			}
			if k := errorKind(t, err); k != tt.wantKind {
				t.Errorf("error kind = %v, want %v (%v)", k, tt.wantKind, err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveDDSIgnoresExtension(t *testing.T) {
	tex := newTestTexture(t, Target2D, FormatRGBA8UnormPack8, Extent{2, 2, 1}, 1, 1)
	path := filepath.Join(t.TempDir(), "texture.bin.zst")
	if err := SaveDDS(tex, path); err != nil {
		t.Fatalf("SaveDDS() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if sniff(data) != containerDDS {
		t.Errorf("SaveDDS wrote %v data", sniff(data))
	}
}

func TestDDSHeaderVariant(t *testing.T) {
	fourCCAt := func(data []byte) D3DFormat {
		return D3DFormat(binary.LittleEndian.Uint32(data[4+72+8:]))
	}
	tests := []struct {
		name   string
		target Target
		format Format
		layers int
		want   D3DFormat
	}{
		{"bc1 2d", Target2D, FormatRGBDXT1UnormBlock8, 1, D3DFmtDXT1},
		{"bc3 cube", TargetCube, FormatRGBADXT5UnormBlock16, 1, D3DFmtDXT5},
		{"bc1 array", Target2DArray, FormatRGBDXT1UnormBlock8, 2, D3DFmtDX10},
		{"rgba8", Target2D, FormatRGBA8UnormPack8, 1, D3DFmtDX10},
		{"luminance", Target2D, FormatL8UnormPack8, 1, 0},
		{"luminance array", Target2DArray, FormatL8UnormPack8, 2, D3DFmtGLI1},
		{"rg3b2", Target2D, FormatRG3B2UnormPack8, 1, D3DFmtGLI1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := newTestTexture(t, tt.target, tt.format, Extent{4, 4, 1}, tt.layers, 1)
			data := encodeTo(t, containerDDS, tex)
			if got := fourCCAt(data); got != tt.want {
				t.Errorf("FourCC = %v, want %v", got, tt.want)
			}
			if got := IsDDSExtension(tt.target, tt.format); got != (tt.want == D3DFmtGLI1) {
				t.Errorf("IsDDSExtension() = %v", got)
			}
		})
	}
}

func TestLoadDDSA4R4G4B4(t *testing.T) {
	src := newTestTexture(t, Target2D, FormatRGBA4UnormPack16, Extent{2, 1, 1}, 1, 1)
	data := encodeTo(t, containerDDS, src)
	// Swap in the D3DFMT_A4R4G4B4 masks, then store opaque red and half
	// transparent blue with alpha in the top nibble.
	for i, m := range []uint32{0x0F00, 0x00F0, 0x000F, 0xF000} {
		binary.LittleEndian.PutUint32(data[92+4*i:], m)
	}
	binary.LittleEndian.PutUint16(data[128:], 0xFF00)
	binary.LittleEndian.PutUint16(data[130:], 0x800F)

	tex, err := LoadDDSFromMemory(data)
	if err != nil {
		t.Fatalf("LoadDDSFromMemory() error = %v", err)
	}
	defer tex.Release()
	if tex.Format() != FormatRGBA4UnormPack16 {
		t.Fatalf("Format() = %v, want %v", tex.Format(), FormatRGBA4UnormPack16)
	}
	for i, want := range []uint16{0xF00F, 0x00F8} {
		if got := binary.LittleEndian.Uint16(tex.Data()[2*i:]); got != want {
			t.Errorf("texel %d = %#04x, want %#04x", i, got, want)
		}
	}
}

func TestGLTables(t *testing.T) {
	g, ok := GLFormatFor(FormatRGBA8UnormPack8)
	if !ok || g != (GLFormat{glRGBA8, glRGBA, glUnsignedByte}) {
		t.Errorf("GLFormatFor(RGBA8) = %#v, %v", g, ok)
	}
	tests := []struct {
		in   GLFormat
		want Format
	}{
		{GLFormat{glRGBA8, glRGBA, glUnsignedByte}, FormatRGBA8UnormPack8},
		{GLFormat{glR16, glRed, glUnsignedShort}, FormatR16UnormPack16},
		{GLFormat{Internal: 0x83F3}, FormatRGBADXT5UnormBlock16},
		{GLFormat{Internal: 0x83F3, External: glRGBA, Type: glUnsignedByte}, FormatRGBADXT5UnormBlock16},
		{GLFormat{Internal: 0xDEAD}, FormatUndefined},
	}
	for _, tt := range tests {
		if got := FormatFromGL(tt.in); got != tt.want {
			t.Errorf("FormatFromGL(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for f, g := range glTable {
		if got := FormatFromGL(g); got.BlockSize() != f.BlockSize() || got.BlockExtent() != f.BlockExtent() {
			t.Errorf("FormatFromGL(GLFormatFor(%v)) = %v with a different layout", f, got)
		}
	}

	targets := []struct {
		in   Target
		want GLTarget
		ok   bool
	}{
		{Target2D, GLTexture2D, true},
		{TargetCubeArray, GLTextureCubeMapArray, true},
		{TargetRect, GLTextureRectangle, true},
		{TargetRectArray, 0, false},
	}
	for _, tt := range targets {
		if got, ok := GLTargetFor(tt.in); got != tt.want || ok != tt.ok {
			t.Errorf("GLTargetFor(%v) = %#x, %v, want %#x, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDXTables(t *testing.T) {
	if d, ok := DXGIFormatFor(FormatRGBA8UnormPack8); !ok || d != DXGIR8G8B8A8Unorm {
		t.Errorf("DXGIFormatFor(RGBA8) = %d, %v", d, ok)
	}
	if f := FormatFromDXGI(DXGIBC1Unorm); f != FormatRGBADXT1UnormBlock8 {
		t.Errorf("FormatFromDXGI(BC1) = %v", f)
	}
	if f := FormatFromDXGI(0); f != FormatUndefined {
		t.Errorf("FormatFromDXGI(0) = %v", f)
	}
	for f, d := range dxgiTable {
		if back := FormatFromDXGI(d); back.BlockSize() != f.BlockSize() {
			t.Errorf("FormatFromDXGI(%d) = %v, want the layout of %v", d, back, f)
		}
	}

	tests := []struct {
		in     D3DFormat
		want   Format
		str    string
	}{
		{D3DFmtDXT1, FormatRGBDXT1UnormBlock8, "DXT1"},
		{D3DFmtBC5S, FormatRGATI2NSnormBlock16, "BC5S"},
		{D3DFmtA16B16G16R16F, FormatRGBA16SfloatPack16, "D3DFormat(113)"},
		{fourCC("XXXX"), FormatUndefined, "XXXX"},
	}
	for _, tt := range tests {
		if got := FormatFromD3D(tt.in); got != tt.want {
			t.Errorf("FormatFromD3D(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := tt.in.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
	}
}
