package instance

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUInstanceTransformSource is the canonical WGSL definition of the
// InstanceInput struct. Matches GPUInstanceTransform layout exactly (100
// bytes, tightly packed as vertex attributes).
//
//go:embed assets/instance_input.wgsl
var GPUInstanceTransformSource string

// GPUInstanceTransform is the GPU-aligned per-instance vertex buffer entry.
// The model matrix is packed as four vec4 columns at shader locations 5-8 and
// the normal matrix as three vec3 columns at locations 9-11; the vertex stage
// reassembles both from the packed columns. Size: 100 bytes (tightly packed,
// no std140 padding since this rides in a vertex buffer).
type GPUInstanceTransform struct {
	Model  [16]float32 // offset  0: model matrix columns (4x vec4<f32>, locations 5-8)
	Normal [9]float32  // offset 64: normal matrix columns (3x vec3<f32>, locations 9-11)
}

// Size returns the size of the GPUInstanceTransform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (100)
func (g *GPUInstanceTransform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstanceTransform struct into a byte buffer
// suitable for vertex buffer upload.
//
// Returns:
//   - []byte: 100-byte buffer ready for GPU upload
func (g *GPUInstanceTransform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 9 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Normal[i]))
	}
	return buf
}

// ModelColumns returns the model matrix split into its four packed vec4
// columns, in shader location order 5 through 8.
//
// Returns:
//   - c0, c1, c2, c3: the model matrix columns
func (g *GPUInstanceTransform) ModelColumns() (c0, c1, c2, c3 [4]float32) {
	copy(c0[:], g.Model[0:4])
	copy(c1[:], g.Model[4:8])
	copy(c2[:], g.Model[8:12])
	copy(c3[:], g.Model[12:16])
	return
}

// NormalColumns returns the normal matrix split into its three packed vec3
// columns, in shader location order 9 through 11.
//
// Returns:
//   - c0, c1, c2: the normal matrix columns
func (g *GPUInstanceTransform) NormalColumns() (c0, c1, c2 [3]float32) {
	copy(c0[:], g.Normal[0:3])
	copy(c1[:], g.Normal[3:6])
	copy(c2[:], g.Normal[6:9])
	return
}

// VertexBufferLayout returns the instance-stepped vertex buffer layout for
// the packed transform, matching the InstanceInput WGSL struct.
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-instance layout (stride 100, locations 5-11)
func VertexBufferLayout() wgpu.VertexBufferLayout {
	var g GPUInstanceTransform
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(g.Size()),
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 5},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 6},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 7},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 8},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 64, ShaderLocation: 9},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 76, ShaderLocation: 10},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 88, ShaderLocation: 11},
		},
	}
}
