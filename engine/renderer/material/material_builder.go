package material

import (
	"image"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

type MaterialBuilderOption func(*material)

// WithName sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's name
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor sets the solid albedo color used when no diffuse sampler is set.
//
// Parameters:
//   - r, g, b, a: the base color components
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's base color
func WithBaseColor(r, g, b, a float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = [4]float32{r, g, b, a}
	}
}

// WithDiffuseSampler sets the diffuse texture sampler.
//
// Parameters:
//   - s: the diffuse sampler
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's diffuse sampler
func WithDiffuseSampler(s shading.TextureSampler) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseSampler = s
	}
}

// WithNormalSampler sets the normal map sampler, switching the material to
// the tangent-space shading path.
//
// Parameters:
//   - s: the normal map sampler
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's normal sampler
func WithNormalSampler(s shading.TextureSampler) MaterialBuilderOption {
	return func(m *material) {
		m.normalSampler = s
	}
}

// WithDiffuseImage sets the diffuse sampler from a decoded image using
// bilinear filtering.
//
// Parameters:
//   - img: the diffuse texture image
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's diffuse sampler
func WithDiffuseImage(img image.Image) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseSampler = NewImageSampler(img, WithFilter(FilterLinear))
	}
}

// WithNormalImage sets the normal map sampler from a decoded image. Normal
// maps use nearest filtering so texel-encoded directions are not blended
// across texels.
//
// Parameters:
//   - img: the normal map image
//
// Returns:
//   - MaterialBuilderOption: a function that sets the material's normal sampler
func WithNormalImage(img image.Image) MaterialBuilderOption {
	return func(m *material) {
		m.normalSampler = NewImageSampler(img, WithFilter(FilterNearest))
	}
}
