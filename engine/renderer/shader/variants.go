package shader

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/lumen-go/engine/camera"
	"github.com/Carmen-Shannon/lumen-go/engine/instance"
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

// varyingOutputSource is the canonical WGSL definition of the VaryingOutput
// struct carried from the vertex stage to the fragment stage.
//
//go:embed assets/varying_output.wgsl
var varyingOutputSource string

// LightingMode selects how the fragment stage sources its lights.
type LightingMode int

const (
	// LightingModeSingle binds one point light as a uniform at group 2 binding 0.
	LightingModeSingle LightingMode = iota
	// LightingModeMulti binds a fixed-capacity light array as read-only storage
	// at group 2 binding 0 with the active count as a uniform at binding 1.
	LightingModeMulti
)

// Variant selects one composed shader pair out of the supported lighting
// permutations. The same Config drives both the WGSL constants and the
// CPU shading core, so a variant evaluated on either side produces the
// same colors.
type Variant struct {
	Lighting     LightingMode
	NormalMapped bool
	Config       shading.Config
}

// Key returns the unique identifier for this variant, used for pipeline
// caching and shader lookups.
//
// Returns:
//   - string: the variant key (e.g. "lit_multi_nmap_blinn")
func (v Variant) Key() string {
	var sb strings.Builder
	sb.WriteString("lit")
	if v.Lighting == LightingModeMulti {
		sb.WriteString("_multi")
	} else {
		sb.WriteString("_single")
	}
	if v.NormalMapped {
		sb.WriteString("_nmap")
	}
	if v.Config.Specular == shading.SpecularReflect {
		sb.WriteString("_reflect")
	} else {
		sb.WriteString("_blinn")
	}
	if v.Config.NormalTransform == shading.NormalTransformNaiveModel {
		sb.WriteString("_naive")
	}
	return sb.String()
}

// NewVertexShader composes the vertex shader for a variant. The source
// reassembles the model and normal matrices from the packed per-instance
// columns, projects the position through the camera, and forwards the
// tangent frame to the fragment stage.
//
// Parameters:
//   - v: the variant to compose
//
// Returns:
//   - Shader: the composed vertex shader
func NewVertexShader(v Variant) Shader {
	key := v.Key() + "_vs"
	src := composeVertexSource(v)
	return &shader{
		key:        key,
		source:     src,
		shaderType: ShaderTypeVertex,
		entryPoint: "vs_main",
		bindGroupLayoutDescriptors: map[int]wgpu.BindGroupLayoutDescriptor{
			1: cameraBindGroupLayout(key),
		},
		vertexLayouts: []wgpu.VertexBufferLayout{
			mesh.VertexBufferLayout(),
			instance.VertexBufferLayout(),
		},
		module: &wgpu.ShaderModuleDescriptor{
			Label:          key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src},
		},
	}
}

// NewFragmentShader composes the fragment shader for a variant. The source
// samples the material textures, accumulates every active light with the
// variant's specular model, and applies the ambient term once.
//
// Parameters:
//   - v: the variant to compose
//
// Returns:
//   - Shader: the composed fragment shader
func NewFragmentShader(v Variant) Shader {
	key := v.Key() + "_fs"
	src := composeFragmentSource(v)
	return &shader{
		key:        key,
		source:     src,
		shaderType: ShaderTypeFragment,
		entryPoint: "fs_main",
		bindGroupLayoutDescriptors: map[int]wgpu.BindGroupLayoutDescriptor{
			0: materialBindGroupLayout(key, v.NormalMapped),
			1: cameraBindGroupLayout(key),
			2: lightingBindGroupLayout(key, v.Lighting),
		},
		module: &wgpu.ShaderModuleDescriptor{
			Label:          key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src},
		},
	}
}

func composeVertexSource(v Variant) string {
	var sb strings.Builder
	sb.WriteString(mesh.GPUVertexSource)
	sb.WriteString("\n")
	sb.WriteString(instance.GPUInstanceTransformSource)
	sb.WriteString("\n")
	sb.WriteString(camera.GPUCameraUniformSource)
	sb.WriteString("\n")
	sb.WriteString(varyingOutputSource)
	sb.WriteString("\n@group(1) @binding(0) var<uniform> camera: CameraUniform;\n\n")

	sb.WriteString("@vertex\n")
	sb.WriteString("fn vs_main(in: VertexInput, inst: InstanceInput) -> VaryingOutput {\n")
	sb.WriteString("    let model = mat4x4<f32>(inst.model_0, inst.model_1, inst.model_2, inst.model_3);\n")
	if v.Config.NormalTransform == shading.NormalTransformNaiveModel {
		// legacy path: directions ride through the full model transform with
		// w = 1, picking up translation and ignoring non-uniform scale
		sb.WriteString("    let world_normal = (model * vec4<f32>(in.normal, 1.0)).xyz;\n")
		sb.WriteString("    let world_tangent = (model * vec4<f32>(in.tangent, 1.0)).xyz;\n")
		sb.WriteString("    let world_bitangent = (model * vec4<f32>(in.bitangent, 1.0)).xyz;\n")
	} else {
		sb.WriteString("    let normal_matrix = mat3x3<f32>(inst.normal_0, inst.normal_1, inst.normal_2);\n")
		sb.WriteString("    let world_normal = normal_matrix * in.normal;\n")
		sb.WriteString("    let world_tangent = normal_matrix * in.tangent;\n")
		sb.WriteString("    let world_bitangent = normal_matrix * in.bitangent;\n")
	}
	sb.WriteString(`    let world_position = model * vec4<f32>(in.position, 1.0);

    var out: VaryingOutput;
    out.clip_position = camera.view_proj * world_position;
    out.tex_coords = in.tex_coords;
    out.world_position = world_position.xyz;
    out.world_normal = normalize(world_normal);
    out.world_tangent = normalize(world_tangent);
    out.world_bitangent = normalize(world_bitangent);
    return out;
}
`)
	return sb.String()
}

func composeFragmentSource(v Variant) string {
	var sb strings.Builder
	sb.WriteString(camera.GPUCameraUniformSource)
	sb.WriteString("\n")
	sb.WriteString(light.GPUPointLightSource)
	sb.WriteString("\n")
	sb.WriteString(varyingOutputSource)
	sb.WriteString("\n@group(0) @binding(0) var t_diffuse: texture_2d<f32>;\n")
	sb.WriteString("@group(0) @binding(1) var s_diffuse: sampler;\n")
	if v.NormalMapped {
		sb.WriteString("@group(0) @binding(2) var t_normal: texture_2d<f32>;\n")
		sb.WriteString("@group(0) @binding(3) var s_normal: sampler;\n")
	}
	sb.WriteString("@group(1) @binding(0) var<uniform> camera: CameraUniform;\n")
	if v.Lighting == LightingModeMulti {
		fmt.Fprintf(&sb, "@group(2) @binding(0) var<storage, read> lights: array<PointLightUniform, %d>;\n", light.MaxPointLights)
		sb.WriteString("@group(2) @binding(1) var<uniform> light_count: u32;\n")
	} else {
		sb.WriteString("@group(2) @binding(0) var<uniform> point_light: PointLightUniform;\n")
	}

	fmt.Fprintf(&sb, `
fn shade_light(light_position: vec3<f32>, light_color: vec3<f32>, normal: vec3<f32>, surface_position: vec3<f32>, view_position: vec3<f32>) -> vec3<f32> {
    let light_dir = normalize(light_position - surface_position);
    let view_dir = normalize(view_position - surface_position);
    let diffuse_strength = max(dot(normal, light_dir), 0.0);
`)
	if v.Config.Specular == shading.SpecularReflect {
		sb.WriteString("    let reflect_dir = reflect(-light_dir, normal);\n")
		fmt.Fprintf(&sb, "    let specular_strength = pow(max(dot(view_dir, reflect_dir), 0.0), %s);\n", wgslFloat(v.Config.Shininess))
	} else {
		sb.WriteString("    let half_dir = normalize(view_dir + light_dir);\n")
		fmt.Fprintf(&sb, "    let specular_strength = pow(max(dot(normal, half_dir), 0.0), %s);\n", wgslFloat(v.Config.Shininess))
	}
	fmt.Fprintf(&sb, "    return (%s * diffuse_strength + %s * specular_strength) * light_color;\n}\n",
		wgslFloat(v.Config.DiffuseWeight), wgslFloat(v.Config.SpecularWeight))

	sb.WriteString(`
@fragment
fn fs_main(in: VaryingOutput) -> @location(0) vec4<f32> {
    let object_color = textureSample(t_diffuse, s_diffuse, in.tex_coords);
`)
	if v.NormalMapped {
		sb.WriteString(`    let tangent_matrix = transpose(mat3x3<f32>(
        normalize(in.world_tangent),
        normalize(in.world_bitangent),
        normalize(in.world_normal),
    ));
    let normal_sample = textureSample(t_normal, s_normal, in.tex_coords).xyz;
    let normal = normalize(normal_sample * 2.0 - 1.0);
    let surface_position = tangent_matrix * in.world_position;
    let view_position = tangent_matrix * camera.view_position;
`)
	} else {
		sb.WriteString(`    let normal = normalize(in.world_normal);
    let surface_position = in.world_position;
    let view_position = camera.view_position;
`)
	}

	fmt.Fprintf(&sb, "\n    var total = vec3<f32>(%s, %s, %s) * %s;\n",
		wgslFloat(v.Config.AmbientColor[0]), wgslFloat(v.Config.AmbientColor[1]), wgslFloat(v.Config.AmbientColor[2]),
		wgslFloat(v.Config.AmbientStrength))

	lightPos := "point_light.position"
	if v.NormalMapped {
		lightPos = "tangent_matrix * point_light.position"
	}
	if v.Lighting == LightingModeMulti {
		fmt.Fprintf(&sb, "    let count = min(light_count, %du);\n", light.MaxPointLights)
		sb.WriteString("    for (var i = 0u; i < count; i = i + 1u) {\n")
		pos := "lights[i].position"
		if v.NormalMapped {
			pos = "tangent_matrix * lights[i].position"
		}
		fmt.Fprintf(&sb, "        total += shade_light(%s, lights[i].color, normal, surface_position, view_position);\n", pos)
		sb.WriteString("    }\n")
	} else {
		fmt.Fprintf(&sb, "    total += shade_light(%s, point_light.color, normal, surface_position, view_position);\n", lightPos)
	}

	sb.WriteString(`
    return vec4<f32>(total * object_color.xyz, object_color.a);
}
`)
	return sb.String()
}

func materialBindGroupLayout(label string, normalMapped bool) wgpu.BindGroupLayoutDescriptor {
	entries := []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
			},
		},
		{
			Binding:    1,
			Visibility: wgpu.ShaderStageFragment,
			Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
		},
	}
	if normalMapped {
		entries = append(entries,
			wgpu.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			wgpu.BindGroupLayoutEntry{
				Binding:    3,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		)
	}
	return wgpu.BindGroupLayoutDescriptor{
		Label:   label + " Material",
		Entries: entries,
	}
}

func cameraBindGroupLayout(label string) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: label + " Camera",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	}
}

func lightingBindGroupLayout(label string, mode LightingMode) wgpu.BindGroupLayoutDescriptor {
	if mode == LightingModeMulti {
		return wgpu.BindGroupLayoutDescriptor{
			Label: label + " Lighting",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageFragment,
					Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage},
				},
				{
					Binding:    1,
					Visibility: wgpu.ShaderStageFragment,
					Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
				},
			},
		}
	}
	return wgpu.BindGroupLayoutDescriptor{
		Label: label + " Lighting",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	}
}

// wgslFloat formats a float32 as a WGSL f32 literal, keeping a decimal point
// so the literal never parses as an abstract int.
func wgslFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
