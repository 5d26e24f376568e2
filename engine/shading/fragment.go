package shading

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// Material is the fragment stage's view of a material: the diffuse sampler,
// and optionally a normal-map sampler. A nil Normal selects the plain lit
// path; a non-nil Normal selects the tangent-space normal-mapped path.
type Material struct {
	Diffuse TextureSampler
	Normal  TextureSampler
}

// ShadeFragment computes the final color for one fragment invocation.
//
// The plain lit path renormalizes the interpolated world normal and runs the
// light loop in world space. The normal-mapped path rebuilds the tangent
// frame from the interpolated vectors, maps the fragment position, the eye
// position, and each light position into tangent space, and uses the decoded
// normal-map sample directly as the surface normal — lighting in tangent
// space is what lets the sample be used without transforming it back out.
//
// Inputs are read-only snapshots for the draw call; the function holds no
// state between invocations and may run concurrently with any number of
// other invocations.
//
// Parameters:
//   - vars: the interpolated vertex outputs for this fragment
//   - mat: the material samplers (Diffuse required, Normal optional)
//   - cam: the per-draw camera snapshot
//   - lights: the light buffer (read-only snapshot)
//   - count: the number of active lights at the front of the buffer
//   - cfg: the lighting configuration
//
// Returns:
//   - [4]float32: the fragment's linear RGBA color, alpha from the base sample
func ShadeFragment(vars Varyings, mat Material, cam Camera, lights []Light, count int, cfg Config) [4]float32 {
	base := mat.Diffuse.Sample(vars.TexCoord[0], vars.TexCoord[1])

	if mat.Normal == nil {
		normal := common.Normalize3(vars.WorldNormal)
		return accumulate(base, normal, vars.WorldPosition, cam.ViewPosition, lights, count, nil, cfg)
	}

	basis := NewTangentBasis(vars.WorldTangent, vars.WorldBitangent, vars.WorldNormal)
	normal := DecodeNormal(mat.Normal.Sample(vars.TexCoord[0], vars.TexCoord[1]))
	surfacePos := basis.Transform(vars.WorldPosition)
	eyePos := basis.Transform(cam.ViewPosition)
	return accumulate(base, normal, surfacePos, eyePos, lights, count, &basis, cfg)
}
