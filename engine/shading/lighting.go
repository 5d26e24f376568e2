package shading

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/lumen-go/common"
)

// SpecularModel selects the specular term computation. The two forms are both
// observed across the shader variants and are numerically distinct; they are
// not interchangeable bit-for-bit.
type SpecularModel int

const (
	// SpecularBlinn computes the highlight from the half-vector between the
	// view and light directions: pow(max(dot(n, h), 0), shininess). This is
	// the multi-light variants' form and the default.
	SpecularBlinn SpecularModel = iota

	// SpecularReflect computes the highlight from the reflected light
	// direction: pow(max(dot(reflect(-l, n), v), 0), shininess).
	SpecularReflect
)

// Config carries the closed set of lighting-model knobs that distinguish the
// shader variants. The zero value is not useful; start from DefaultConfig or
// SimpleLitConfig.
type Config struct {
	// Specular selects the highlight form.
	Specular SpecularModel

	// Shininess is the specular exponent. The variants all use 64.
	Shininess float32

	// DiffuseWeight scales the summed diffuse term per light.
	DiffuseWeight float32

	// SpecularWeight scales the summed specular term per light.
	SpecularWeight float32

	// AmbientStrength scales the ambient term added once outside the light
	// loop. 0 disables ambient entirely.
	AmbientStrength float32

	// AmbientColor is the ambient base color multiplied by AmbientStrength.
	AmbientColor [3]float32

	// NormalTransform selects the vertex-stage normal path, see the
	// NormalTransform constants.
	NormalTransform NormalTransform
}

// DefaultConfig returns the unweighted multi-light configuration: Blinn
// specular with exponent 64, diffuse and specular at full weight, ambient
// disabled, correct normal-matrix transform.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Specular:        SpecularBlinn,
		Shininess:       64,
		DiffuseWeight:   1,
		SpecularWeight:  1,
		AmbientStrength: 0,
		AmbientColor:    [3]float32{1, 1, 1},
		NormalTransform: NormalTransformNormalMatrix,
	}
}

// SimpleLitConfig returns the fixed-constant configuration used by the
// simplest lit variant: 0.2 diffuse, 0.7 specular, 0.1 white ambient, with
// the reflection-vector specular form that variant uses.
//
// Returns:
//   - Config: the simple-variant configuration
func SimpleLitConfig() Config {
	return Config{
		Specular:        SpecularReflect,
		Shininess:       64,
		DiffuseWeight:   0.2,
		SpecularWeight:  0.7,
		AmbientStrength: 0.1,
		AmbientColor:    [3]float32{1, 1, 1},
		NormalTransform: NormalTransformNormalMatrix,
	}
}

// EvaluateLight computes one light's unweighted diffuse and specular
// contributions at a surface point. All vectors must live in the same
// lighting space (world space, or tangent space for the normal-mapped
// variant) and normal must be unit length. Dot products are clamped to
// non-negative before use, which suppresses back-face contributions; a
// degenerate half-vector (eye antipodal to the light) yields zero specular.
//
// Parameters:
//   - light: the point light, position in the active lighting space
//   - normal: the unit surface normal in the active space
//   - surfacePos: the fragment position in the active space
//   - eyePos: the eye position in the active space
//   - cfg: the lighting configuration (specular model and exponent)
//
// Returns:
//   - diffuse: the diffuse radiance contribution (light color scaled by incidence)
//   - specular: the specular radiance contribution
func EvaluateLight(light Light, normal, surfacePos, eyePos [3]float32, cfg Config) (diffuse, specular [3]float32) {
	lightDir := common.Normalize3(common.Sub3(light.Position, surfacePos))
	viewDir := common.Normalize3(common.Sub3(eyePos, surfacePos))

	diffuseStrength := max(common.Dot3(normal, lightDir), 0)
	diffuse = common.Scale3(light.Color, diffuseStrength)

	var specularStrength float32
	switch cfg.Specular {
	case SpecularReflect:
		reflectDir := common.Reflect3(common.Scale3(lightDir, -1), normal)
		specularStrength = max(common.Dot3(reflectDir, viewDir), 0)
	default:
		// With the eye exactly antipodal to the light the half-vector
		// degenerates to zero; there is no highlight direction, so the
		// specular term is zero rather than normalize(0) NaN.
		halfDir := common.Add3(viewDir, lightDir)
		if halfDir != ([3]float32{}) {
			specularStrength = max(common.Dot3(normal, common.Normalize3(halfDir)), 0)
		}
	}
	specular = common.Scale3(light.Color, math32.Pow(specularStrength, cfg.Shininess))
	return diffuse, specular
}

// Accumulate runs the light loop for one fragment: it sums the weighted
// diffuse and specular contributions of the first count lights against the
// sampled base color, adds the ambient term once, and passes the base alpha
// through unmodified.
//
// Lights are visited in buffer order; iteration stops at count, so a light
// buffer's physical capacity and its active count stay decoupled. count is
// additionally clamped to len(lights). The accumulation is linear: the result
// over N lights equals the sum of N single-light evaluations.
//
// Parameters:
//   - base: the sampled base (albedo) RGBA color
//   - normal: the unit surface normal in the active lighting space
//   - surfacePos: the fragment position in the active space
//   - eyePos: the eye position in the active space
//   - lights: the light buffer (read-only snapshot)
//   - count: the number of active lights at the front of the buffer
//   - cfg: the lighting configuration
//
// Returns:
//   - [4]float32: the accumulated linear RGB color with base alpha
func Accumulate(base [4]float32, normal, surfacePos, eyePos [3]float32, lights []Light, count int, cfg Config) [4]float32 {
	return accumulate(base, normal, surfacePos, eyePos, lights, count, nil, cfg)
}

// accumulate is the shared light loop. When basis is non-nil, light positions
// are mapped into tangent space before evaluation; normal, surfacePos, and
// eyePos are then expected to already live in tangent space.
func accumulate(base [4]float32, normal, surfacePos, eyePos [3]float32, lights []Light, count int, basis *TangentBasis, cfg Config) [4]float32 {
	baseRGB := [3]float32{base[0], base[1], base[2]}

	result := common.Scale3(mulColor(cfg.AmbientColor, baseRGB), cfg.AmbientStrength)

	for i := 0; i < min(count, len(lights)); i++ {
		light := lights[i]
		if basis != nil {
			light.Position = basis.Transform(light.Position)
		}
		diffuse, specular := EvaluateLight(light, normal, surfacePos, eyePos, cfg)
		radiance := common.Add3(
			common.Scale3(diffuse, cfg.DiffuseWeight),
			common.Scale3(specular, cfg.SpecularWeight),
		)
		result = common.Add3(result, mulColor(radiance, baseRGB))
	}

	return [4]float32{result[0], result[1], result[2], base[3]}
}

// mulColor multiplies two linear RGB colors component-wise.
func mulColor(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
