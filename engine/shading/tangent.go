package shading

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// TangentBasis is the per-fragment change of basis from world space into
// tangent space, built from the interpolated tangent, bitangent, and normal.
// The three vectors form the rows of the transform.
//
// Each vector is renormalized independently on construction, but the frame is
// NOT re-orthogonalized (no Gram-Schmidt). Interpolated frames carry a small
// amount of shear on distorted UV mappings and the variants tolerate it; rows
// are unit length, orthonormality between them is not guaranteed.
type TangentBasis struct {
	Tangent   [3]float32
	Bitangent [3]float32
	Normal    [3]float32
}

// NewTangentBasis builds the world-to-tangent basis from interpolated
// world-space vectors. Inputs need not be unit length; each is renormalized.
// Callers must guarantee none of them is the zero vector.
//
// Parameters:
//   - tangent, bitangent, normal: interpolated world-space frame vectors
//
// Returns:
//   - TangentBasis: the renormalized change-of-basis frame
func NewTangentBasis(tangent, bitangent, normal [3]float32) TangentBasis {
	return TangentBasis{
		Tangent:   common.Normalize3(tangent),
		Bitangent: common.Normalize3(bitangent),
		Normal:    common.Normalize3(normal),
	}
}

// Transform maps a world-space vector into tangent space. Applying the frame
// vectors as matrix rows is equivalent to building the matrix with them as
// columns and multiplying by its transpose.
//
// Parameters:
//   - v: the world-space vector or position
//
// Returns:
//   - [3]float32: the vector expressed in tangent space
func (b TangentBasis) Transform(v [3]float32) [3]float32 {
	return [3]float32{
		common.Dot3(b.Tangent, v),
		common.Dot3(b.Bitangent, v),
		common.Dot3(b.Normal, v),
	}
}

// Mat3 returns the basis as a column-major 3x3 matrix with the frame vectors
// as rows, suitable for comparison against the WGSL transpose(mat3x3(t, b, n))
// construction.
//
// Returns:
//   - [9]float32: the column-major world-to-tangent matrix
func (b TangentBasis) Mat3() [9]float32 {
	return [9]float32{
		b.Tangent[0], b.Bitangent[0], b.Normal[0],
		b.Tangent[1], b.Bitangent[1], b.Normal[1],
		b.Tangent[2], b.Bitangent[2], b.Normal[2],
	}
}
