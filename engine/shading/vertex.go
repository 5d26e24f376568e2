package shading

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// NormalTransform selects how the vertex stage carries normals (and, when
// present, tangents/bitangents) into world space.
type NormalTransform int

const (
	// NormalTransformNormalMatrix applies the instance's dedicated 3x3 normal
	// matrix (inverse-transpose of the model's linear part). Correct under
	// non-uniform scale. This is the default.
	NormalTransformNormalMatrix NormalTransform = iota

	// NormalTransformNaiveModel applies the full 4x4 model matrix to the
	// normal as a point (w = 1) and takes the xyz, as one of the simpler
	// shader variants does. This is geometrically incorrect under non-uniform
	// scale and translation; it is preserved as a selectable behavior for
	// parity with that variant rather than silently corrected.
	NormalTransformNaiveModel
)

// TransformVertex is the vertex projection stage: it carries one model-space
// vertex into world and clip space using the resolved instance matrices and
// the per-draw camera snapshot.
//
//	world_position = model * vec4(position, 1)
//	clip_position  = view_proj * world_position
//
// World-space normal, tangent, and bitangent are renormalized on output; they
// will still need per-fragment renormalization after interpolation.
// Deterministic per-vertex arithmetic with no error conditions.
//
// Parameters:
//   - v: the model-space vertex
//   - model: the column-major 4x4 model matrix (from ResolveModelMatrix)
//   - normal: the column-major 3x3 normal matrix (from ResolveNormalMatrix);
//     ignored when nt is NormalTransformNaiveModel
//   - cam: the per-draw camera snapshot
//   - nt: the normal transform behavior
//
// Returns:
//   - Varyings: the interpolatable vertex outputs plus the rasterizer clip position
func TransformVertex(v Vertex, model [16]float32, normal [9]float32, cam Camera, nt NormalTransform) Varyings {
	world := common.TransformPoint4(model[:], v.Position[0], v.Position[1], v.Position[2])
	worldPos := [3]float32{world[0], world[1], world[2]}

	return Varyings{
		ClipPosition:   common.TransformPoint4(cam.ViewProj[:], worldPos[0], worldPos[1], worldPos[2]),
		TexCoord:       v.TexCoord,
		WorldPosition:  worldPos,
		WorldNormal:    transformDirection(v.Normal, model, normal, nt),
		WorldTangent:   transformDirection(v.Tangent, model, normal, nt),
		WorldBitangent: transformDirection(v.Bitangent, model, normal, nt),
	}
}

// transformDirection carries one direction vector into world space under the
// selected normal transform. Zero inputs (unused tangent slots on non-mapped
// variants) pass through as zero without normalization.
func transformDirection(d [3]float32, model [16]float32, normal [9]float32, nt NormalTransform) [3]float32 {
	if d == ([3]float32{}) {
		return d
	}
	if nt == NormalTransformNaiveModel {
		h := common.TransformPoint4(model[:], d[0], d[1], d[2])
		return common.Normalize3([3]float32{h[0], h[1], h[2]})
	}
	return common.Normalize3(common.TransformVec3Mat3(normal[:], d))
}
