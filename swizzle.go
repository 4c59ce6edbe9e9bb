package gli

import (
	"strings"

	"golang.org/x/image/math/f32"
)

// Swizzle selects the source of one output channel.
type Swizzle uint32

const (
	SwizzleRed Swizzle = iota
	SwizzleGreen
	SwizzleBlue
	SwizzleAlpha
	SwizzleZero
	SwizzleOne
)

// IsChannel reports whether s reads a stored channel rather than a
// constant.
func (s Swizzle) IsChannel() bool { return s <= SwizzleAlpha }

// IsValid reports whether s is a known swizzle.
func (s Swizzle) IsValid() bool { return s <= SwizzleOne }

func (s Swizzle) String() string {
	switch s {
	case SwizzleRed:
		return "RED"
	case SwizzleGreen:
		return "GREEN"
	case SwizzleBlue:
		return "BLUE"
	case SwizzleAlpha:
		return "ALPHA"
	case SwizzleZero:
		return "ZERO"
	case SwizzleOne:
		return "ONE"
	default:
		return "UNKNOWN"
	}
}

// Swizzles maps the red, green, blue and alpha outputs.
type Swizzles [4]Swizzle

// DefaultSwizzles is the identity mapping.
var DefaultSwizzles = Swizzles{SwizzleRed, SwizzleGreen, SwizzleBlue, SwizzleAlpha}

// IsValid reports whether every entry is a known swizzle.
func (s Swizzles) IsValid() bool {
	for _, c := range s {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// String returns the four swizzles separated by commas, such as
// "BLUE,GREEN,RED,ONE".
func (s Swizzles) String() string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

// Apply remaps v.
func (s Swizzles) Apply(v f32.Vec4) f32.Vec4 {
	var out f32.Vec4
	for i, c := range s {
		switch {
		case c.IsChannel():
			out[i] = v[c]
		case c == SwizzleOne:
			out[i] = 1
		}
	}
	return out
}
