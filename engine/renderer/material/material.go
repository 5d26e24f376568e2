package material

import (
	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

// material is the implementation of the Material interface.
type material struct {
	name           string
	baseColor      [4]float32
	diffuseSampler shading.TextureSampler
	normalSampler  shading.TextureSampler
	pipelineKey    string
}

// Material defines the interface for a render material. A material pairs a
// diffuse color source with an optional normal map; when no diffuse sampler
// is set, the base color acts as a solid fallback so every material can be
// shaded.
//
// Surface properties (name, base color, samplers) are set at construction and
// are read-only through this interface. The pipeline key is mutable so it can
// be assigned once the shader variant for the material is chosen.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material,
	// used as the solid diffuse source when no diffuse sampler is set.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// DiffuseSampler retrieves the diffuse texture sampler, or nil if none is set.
	//
	// Returns:
	//   - shading.TextureSampler: the diffuse sampler, or nil
	DiffuseSampler() shading.TextureSampler

	// NormalSampler retrieves the normal map sampler, or nil if none is set.
	//
	// Returns:
	//   - shading.TextureSampler: the normal sampler, or nil
	NormalSampler() shading.TextureSampler

	// NormalMapped reports whether the material carries a normal map, which
	// selects the tangent-space shader variant.
	//
	// Returns:
	//   - bool: true if a normal sampler is set
	NormalMapped() bool

	// Shading captures the sampler pair consumed by the shading core. The
	// diffuse slot falls back to a solid base-color sampler when unset.
	//
	// Returns:
	//   - shading.Material: the material value
	Shading() shading.Material

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: [4]float32{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) DiffuseSampler() shading.TextureSampler {
	return m.diffuseSampler
}

func (m *material) NormalSampler() shading.TextureSampler {
	return m.normalSampler
}

func (m *material) NormalMapped() bool {
	return m.normalSampler != nil
}

func (m *material) Shading() shading.Material {
	diffuse := m.diffuseSampler
	if diffuse == nil {
		diffuse = shading.SolidSampler(m.baseColor)
	}
	return shading.Material{
		Diffuse: diffuse,
		Normal:  m.normalSampler,
	}
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}
