package gli

import "fmt"

// Extent is a size in texels. Axes a target does not use are 1.
type Extent struct {
	Width, Height, Depth int
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%dx%d", e.Width, e.Height, e.Depth)
}

// Max returns the largest axis.
func (e Extent) Max() int { return max(e.Width, e.Height, e.Depth) }

// Texels returns the number of texels covered by e.
func (e Extent) Texels() int { return e.Width * e.Height * e.Depth }

// mip returns the extent of the given level below e.
func (e Extent) mip(level int) Extent {
	return Extent{
		Width:  max(1, e.Width>>uint(level)),
		Height: max(1, e.Height>>uint(level)),
		Depth:  max(1, e.Depth>>uint(level)),
	}
}

// blocks returns the number of blocks of the given footprint needed to
// cover e.
func (e Extent) blocks(block Extent) Extent {
	return Extent{
		Width:  (e.Width + block.Width - 1) / block.Width,
		Height: (e.Height + block.Height - 1) / block.Height,
		Depth:  (e.Depth + block.Depth - 1) / block.Depth,
	}
}

func (e Extent) positive() bool {
	return e.Width > 0 && e.Height > 0 && e.Depth > 0
}

// Coord is an integer texel coordinate. Axes a target does not use are 0.
type Coord struct {
	X, Y, Z int
}

// MipmapLevels returns floor(log2(e.Max())) + 1, the length of a full mip
// chain for e.
func MipmapLevels(e Extent) int {
	n := e.Max()
	levels := 1
	for n > 1 {
		n >>= 1
		levels++
	}
	return levels
}
