// Package gli provides texture storage, texture views and texel sampling
// for GPU texture data.
//
// # Overview
//
// A Texture is a view over one reference counted buffer holding every image
// of a texture: each layer, each cube face and each mip level. Views share
// the buffer and narrow it to a range of layers, faces and levels, or
// reinterpret it with another format of the same block size. Images address
// a single (layer, face, level) triple. A Sampler reads, writes and filters
// texels of a view in any uncompressed format and in BC1 to BC5.
//
// # Quick Start
//
//	tex, err := gli.Load("sky.dds")
//	if err != nil {
//		return err
//	}
//	defer tex.Release()
//
//	s, err := gli.NewSampler(tex, gli.WrapRepeat, gli.FilterLinear, gli.FilterLinear)
//	if err != nil {
//		return err
//	}
//	c, err := s.TextureLod(f32.Vec3{0.5, 0.5, 0}, 0, 0, 0)
//
// # Containers
//
// Load, Save and their variants read and write DDS, KTX 1.1 and KMG files.
// Files ending in .zst are zstd compressed. Formats without a DXGI code are
// stored in DDS with the GLI1 extension header; see IsDDSExtension.
//
// # Ownership
//
// Every Texture and Image returned by this package holds one reference to
// its buffer and must be released exactly once. Releasing twice is reported
// as a KindBug error. Samplers borrow their texture.
//
// # Concurrency
//
// Textures are meant for a single owner at a time. Only the reference count
// and the package logger are safe for concurrent use.
package gli

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
