package mesh

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct
// for lit mesh pipelines. Matches GPUVertex layout exactly (56 bytes, tightly
// packed vertex attributes).
//
//go:embed assets/vertex_input.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// The tangent and bitangent are authored per vertex alongside the normal so
// the vertex stage can build a tangent frame without derivatives.
// Size: 56 bytes (tightly packed, no padding required).
type GPUVertex struct {
	Position  [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoord  [2]float32 // offset 12: UV texture coordinate (8 bytes)
	Normal    [3]float32 // offset 20: vertex normal for lighting (12 bytes)
	Tangent   [3]float32 // offset 32: tangent vector for normal mapping (12 bytes)
	Bitangent [3]float32 // offset 44: bitangent vector for normal mapping (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (56)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 56-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoord[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Tangent[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Tangent[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Tangent[2]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Bitangent[0]))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Bitangent[1]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.Bitangent[2]))
	return buf
}

// Shading converts the packed vertex into the plain value consumed by the
// shading core.
//
// Returns:
//   - shading.Vertex: the vertex value
func (g *GPUVertex) Shading() shading.Vertex {
	return shading.Vertex{
		Position:  g.Position,
		TexCoord:  g.TexCoord,
		Normal:    g.Normal,
		Tangent:   g.Tangent,
		Bitangent: g.Bitangent,
	}
}

// VertexBufferLayout returns the vertex-stepped buffer layout for the packed
// mesh vertex, matching the VertexInput WGSL struct.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-vertex layout (stride 56, locations 0-4)
func VertexBufferLayout() wgpu.VertexBufferLayout {
	var g GPUVertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(g.Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 20, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 32, ShaderLocation: 3},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 44, ShaderLocation: 4},
		},
	}
}
