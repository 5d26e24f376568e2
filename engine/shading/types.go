// Package shading implements the instanced per-fragment lighting core shared
// by the lit shader variants: packed-attribute matrix resolution, vertex
// projection, tangent-basis construction, and Blinn-Phong light accumulation.
//
// Every function in this package models a single GPU invocation: pure value
// computation over read-only inputs, no shared state, no blocking. Hosts bind
// the same data to the GPU through the gpu_types in the camera, light, and
// instance packages; this package is the CPU-exact statement of what those
// shaders compute.
package shading

// Vertex is one model-space vertex as supplied by the vertex attribute stream.
// Normal, Tangent, and Bitangent are unit length at authoring time; lit
// variants read Normal, normal-mapped variants read all three.
type Vertex struct {
	Position  [3]float32
	TexCoord  [2]float32
	Normal    [3]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// Camera is the per-draw camera snapshot: world-to-clip and world-to-view
// matrices (column-major) plus the world-space eye position. Immutable for
// the duration of a draw; the core only ever reads it.
type Camera struct {
	ViewProj     [16]float32
	View         [16]float32
	ViewPosition [3]float32
}

// Varyings is the vertex-to-fragment interpolated state. ClipPosition is
// consumed by the rasterizer only; the fragment stage reads the world-space
// fields, which lose unit length under barycentric interpolation and must be
// renormalized before use.
type Varyings struct {
	ClipPosition   [4]float32
	TexCoord       [2]float32
	WorldPosition  [3]float32
	WorldNormal    [3]float32
	WorldTangent   [3]float32
	WorldBitangent [3]float32
}

// Light is one point light: a world-space position and a linear RGB intensity.
type Light struct {
	Position [3]float32
	Color    [3]float32
}
