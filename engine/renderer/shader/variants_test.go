package shader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/shading"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestVariantKeys(t *testing.T) {
	assert.Equal(t, "lit_single_blinn", Variant{Config: shading.DefaultConfig()}.Key())
	assert.Equal(t, "lit_multi_nmap_reflect", Variant{
		Lighting:     LightingModeMulti,
		NormalMapped: true,
		Config:       shading.SimpleLitConfig(),
	}.Key())

	naive := shading.DefaultConfig()
	naive.NormalTransform = shading.NormalTransformNaiveModel
	assert.Equal(t, "lit_single_blinn_naive", Variant{Config: naive}.Key())
}

func TestVertexShaderComposition(t *testing.T) {
	s := NewVertexShader(Variant{Config: shading.DefaultConfig()})

	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, "vs_main", s.EntryPoint())

	src := s.Source()
	assert.Contains(t, src, "struct VertexInput")
	assert.Contains(t, src, "struct InstanceInput")
	assert.Contains(t, src, "struct CameraUniform")
	assert.Contains(t, src, "mat4x4<f32>(inst.model_0, inst.model_1, inst.model_2, inst.model_3)")
	assert.Contains(t, src, "normal_matrix * in.normal")

	layouts := s.VertexLayouts()
	require.Len(t, layouts, 2)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, wgpu.VertexStepModeInstance, layouts[1].StepMode)
}

func TestVertexShaderNaiveNormalVariant(t *testing.T) {
	cfg := shading.DefaultConfig()
	cfg.NormalTransform = shading.NormalTransformNaiveModel
	s := NewVertexShader(Variant{Config: cfg})

	src := s.Source()
	assert.Contains(t, src, "model * vec4<f32>(in.normal, 1.0)")
	assert.NotContains(t, src, "normal_matrix * in.normal")
}

func TestFragmentShaderSingleLight(t *testing.T) {
	s := NewFragmentShader(Variant{Config: shading.DefaultConfig()})

	assert.Equal(t, "fs_main", s.EntryPoint())
	src := s.Source()
	assert.Contains(t, src, "var<uniform> point_light: PointLightUniform")
	assert.NotContains(t, src, "light_count")
	assert.Contains(t, src, "half_dir", "default config uses the half-vector specular")

	lighting := s.BindGroupLayoutDescriptor(2)
	require.Len(t, lighting.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, lighting.Entries[0].Buffer.Type)
}

func TestFragmentShaderMultiLight(t *testing.T) {
	s := NewFragmentShader(Variant{Lighting: LightingModeMulti, Config: shading.SimpleLitConfig()})

	src := s.Source()
	assert.Contains(t, src, fmt.Sprintf("array<PointLightUniform, %d>", light.MaxPointLights))
	assert.Contains(t, src, "var<uniform> light_count: u32")
	assert.Contains(t, src, fmt.Sprintf("min(light_count, %du)", light.MaxPointLights))
	assert.Contains(t, src, "reflect(-light_dir, normal)", "simple lit config uses the reflect specular")

	lighting := s.BindGroupLayoutDescriptor(2)
	require.Len(t, lighting.Entries, 2)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, lighting.Entries[0].Buffer.Type)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, lighting.Entries[1].Buffer.Type)
}

func TestFragmentShaderNormalMapped(t *testing.T) {
	s := NewFragmentShader(Variant{NormalMapped: true, Config: shading.DefaultConfig()})

	src := s.Source()
	assert.Contains(t, src, "t_normal")
	assert.Contains(t, src, "tangent_matrix * camera.view_position")
	assert.Contains(t, src, "normal_sample * 2.0 - 1.0")

	material := s.BindGroupLayoutDescriptor(0)
	require.Len(t, material.Entries, 4)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, material.Entries[2].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, material.Entries[3].Sampler.Type)
}

func TestConfigConstantsReachSource(t *testing.T) {
	cfg := shading.SimpleLitConfig()
	s := NewFragmentShader(Variant{Config: cfg})

	src := s.Source()
	assert.Contains(t, src, "0.2 * diffuse_strength")
	assert.Contains(t, src, "0.7 * specular_strength")
	assert.Contains(t, src, "* 0.1")
	assert.Contains(t, src, "pow(max(dot(view_dir, reflect_dir), 0.0), 64.0)")
}

func TestModuleDescriptorsCarrySource(t *testing.T) {
	v := Variant{Lighting: LightingModeMulti, NormalMapped: true, Config: shading.DefaultConfig()}
	for _, s := range []Shader{NewVertexShader(v), NewFragmentShader(v)} {
		mod := s.Module()
		require.NotNil(t, mod)
		assert.Equal(t, s.Key(), mod.Label)
		assert.Equal(t, s.Source(), mod.WGSLDescriptor.Code)
		assert.False(t, strings.Contains(s.Source(), "%"), "no unexpanded format verbs")
	}
}
