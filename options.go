package gli

import "golang.org/x/image/math/f32"

// SamplerOption configures a Sampler during creation.
//
// Example:
//
//	s, err := gli.NewSampler(tex, gli.WrapClampToBorder, gli.FilterNone, gli.FilterLinear,
//	    gli.WithBorderColor(f32.Vec4{1, 0, 1, 1}))
type SamplerOption func(*samplerOptions)

type samplerOptions struct {
	border f32.Vec4
}

func defaultSamplerOptions() samplerOptions {
	return samplerOptions{border: f32.Vec4{0, 0, 0, 1}}
}

// WithBorderColor sets the color returned for coordinates that a border
// wrap mode places outside the texture.
func WithBorderColor(c f32.Vec4) SamplerOption {
	return func(o *samplerOptions) {
		o.border = c
	}
}

// LoadOption configures Load and its variants.
type LoadOption func(*loadOptions)

type loadOptions struct {
	target    Target
	hasTarget bool
}

func defaultLoadOptions() loadOptions {
	return loadOptions{}
}

// WithTarget makes Load return a view of the loaded texture as target, as
// Texture.As does. Loading fails when the file's target cannot be viewed
// that way.
func WithTarget(target Target) LoadOption {
	return func(o *loadOptions) {
		o.target = target
		o.hasTarget = true
	}
}
