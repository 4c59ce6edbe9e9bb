package gli

// Wrap resolves coordinates outside [0, n).
type Wrap uint32

const (
	WrapClampToEdge Wrap = iota
	WrapClampToBorder
	WrapRepeat
	WrapMirrorRepeat
	WrapMirrorClampToEdge
	WrapMirrorClampToBorder
)

// IsValid reports whether w is a known wrap mode.
func (w Wrap) IsValid() bool { return w <= WrapMirrorClampToBorder }

func (w Wrap) String() string {
	switch w {
	case WrapClampToEdge:
		return "CLAMP_TO_EDGE"
	case WrapClampToBorder:
		return "CLAMP_TO_BORDER"
	case WrapRepeat:
		return "REPEAT"
	case WrapMirrorRepeat:
		return "MIRROR_REPEAT"
	case WrapMirrorClampToEdge:
		return "MIRROR_CLAMP_TO_EDGE"
	case WrapMirrorClampToBorder:
		return "MIRROR_CLAMP_TO_BORDER"
	default:
		return "UNKNOWN"
	}
}

// Filter selects how texels are combined.
type Filter uint32

const (
	FilterNone Filter = iota
	FilterNearest
	FilterLinear
)

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool { return f <= FilterLinear }

func (f Filter) String() string {
	switch f {
	case FilterNone:
		return "NONE"
	case FilterNearest:
		return "NEAREST"
	case FilterLinear:
		return "LINEAR"
	default:
		return "UNKNOWN"
	}
}

// wrapCoord folds x into [0, n). It returns false when the coordinate
// resolves to the border.
func wrapCoord(x, n int, w Wrap) (int, bool) {
	switch w {
	case WrapClampToBorder:
		return x, x >= 0 && x < n
	case WrapRepeat:
		return mod(x, n), true
	case WrapMirrorRepeat:
		m := mod(x, 2*n)
		if m >= n {
			m = 2*n - 1 - m
		}
		return m, true
	case WrapMirrorClampToEdge:
		return clampInt(mirror(x), 0, n-1), true
	case WrapMirrorClampToBorder:
		m := mirror(x)
		return m, m < n
	}
	return clampInt(x, 0, n-1), true
}

// mirror reflects negative coordinates once around the origin.
func mirror(x int) int {
	if x < 0 {
		return -1 - x
	}
	return x
}

func mod(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
