package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUPointLightSource is the canonical WGSL definition of the PointLightUniform
// struct. Matches GPUPointLight layout exactly (32 bytes, std140 aligned).
//
//go:embed assets/point_light.wgsl
var GPUPointLightSource string

// GPUPointLight is the GPU-aligned representation of a single point light.
// Matches the WGSL PointLightUniform struct layout exactly (see
// GPUPointLightSource). Size: 32 bytes (std140 / WGSL aligned).
type GPUPointLight struct {
	Position [3]float32 // offset  0: world-space position (vec3<f32>)
	_pad0    uint32     // offset 12: padding for vec3 alignment
	Color    [3]float32 // offset 16: RGB color (vec3<f32>)
	_pad1    uint32     // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUPointLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUPointLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointLight struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUPointLight) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], 0) // _pad0
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[28:], 0) // _pad1
	return buf
}
