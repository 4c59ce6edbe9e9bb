package gli

// Target is the topological kind of a texture.
type Target uint32

const (
	Target1D Target = iota
	Target1DArray
	Target2D
	Target2DArray
	Target3D
	TargetRect
	TargetRectArray
	TargetCube
	TargetCubeArray

	targetCount
)

// targetInfo describes which axes a target uses.
type targetInfo struct {
	name     string
	axes     int
	hasLayer bool
	hasFace  bool
}

var targetTable = [targetCount]targetInfo{
	Target1D:        {"1D", 1, false, false},
	Target1DArray:   {"1D_ARRAY", 1, true, false},
	Target2D:        {"2D", 2, false, false},
	Target2DArray:   {"2D_ARRAY", 2, true, false},
	Target3D:        {"3D", 3, false, false},
	TargetRect:      {"RECT", 2, false, false},
	TargetRectArray: {"RECT_ARRAY", 2, true, false},
	TargetCube:      {"CUBE", 2, false, true},
	TargetCubeArray: {"CUBE_ARRAY", 2, true, true},
}

// IsValid reports whether t is a known target.
func (t Target) IsValid() bool { return t < targetCount }

func (t Target) String() string {
	if !t.IsValid() {
		return "UNKNOWN"
	}
	return targetTable[t].name
}

// Axes returns the number of coordinate axes: 1, 2 or 3.
func (t Target) Axes() int {
	if !t.IsValid() {
		return 0
	}
	return targetTable[t].axes
}

// IsArray reports whether t has a layer axis.
func (t Target) IsArray() bool { return t.IsValid() && targetTable[t].hasLayer }

// IsCube reports whether t has a face axis.
func (t Target) IsCube() bool { return t.IsValid() && targetTable[t].hasFace }

func (t Target) Is1D() bool   { return t == Target1D || t == Target1DArray }
func (t Target) IsRect() bool { return t == TargetRect || t == TargetRectArray }

// faceCount returns the number of faces a storage of target t holds.
func (t Target) faceCount() int {
	if t.IsCube() {
		return 6
	}
	return 1
}

// shape collapses the axes t does not use to 1.
func (t Target) shape(e Extent) Extent {
	switch t.Axes() {
	case 1:
		return Extent{Width: e.Width, Height: 1, Depth: 1}
	case 2:
		return Extent{Width: e.Width, Height: e.Height, Depth: 1}
	}
	return e
}
