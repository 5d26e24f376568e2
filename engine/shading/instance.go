package shading

// ResolveModelMatrix assembles the 4x4 model matrix from the four packed
// per-instance attribute vectors, in buffer order. Each packed vector is one
// column of the resulting column-major matrix, mirroring the WGSL
// mat4x4<f32>(c0, c1, c2, c3) constructor in the instanced vertex stage.
//
// No validation is performed: malformed columns produce a malformed transform.
// The host contract guarantees four columns are always supplied. Pure value
// construction, re-executed per vertex invocation exactly as the GPU does.
//
// Parameters:
//   - c0, c1, c2, c3: the packed instance attribute vectors (matrix columns)
//
// Returns:
//   - [16]float32: the column-major model matrix
func ResolveModelMatrix(c0, c1, c2, c3 [4]float32) [16]float32 {
	return [16]float32{
		c0[0], c0[1], c0[2], c0[3],
		c1[0], c1[1], c1[2], c1[3],
		c2[0], c2[1], c2[2], c2[3],
		c3[0], c3[1], c3[2], c3[3],
	}
}

// ResolveNormalMatrix assembles the 3x3 normal matrix from the three packed
// per-instance attribute vectors, in buffer order. Each packed vector is one
// column of the resulting column-major matrix. The host supplies these columns
// pre-computed as the inverse-transpose of the model's upper-left 3x3 (see
// common.NormalMatrix3); the core never inverts matrices itself.
//
// Parameters:
//   - c0, c1, c2: the packed instance attribute vectors (matrix columns)
//
// Returns:
//   - [9]float32: the column-major normal matrix
func ResolveNormalMatrix(c0, c1, c2 [3]float32) [9]float32 {
	return [9]float32{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}
