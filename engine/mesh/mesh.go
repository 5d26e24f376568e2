package mesh

import (
	"encoding/binary"
	"sync"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

type meshImpl struct {
	mu *sync.Mutex

	vertices []GPUVertex
	indices  []uint32
}

// Mesh defines the interface for an indexed triangle mesh. A mesh owns its
// vertex and index data and serializes both into GPU-ready buffers; every
// placement of the mesh in a scene is expressed through instances, so the
// vertex data itself stays in model space.
type Mesh interface {
	// Vertices returns a copy of the mesh's vertex data.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns a copy of the mesh's index data.
	//
	// Returns:
	//   - []uint32: the triangle indices
	Indices() []uint32

	// Snapshot captures the vertices as the plain values consumed by the
	// shading core.
	//
	// Returns:
	//   - []shading.Vertex: the vertex values
	Snapshot() []shading.Vertex

	// MarshalVertexBuffer serializes the vertices into a vertex buffer.
	//
	// Returns:
	//   - []byte: len(vertices) * 56 bytes ready for GPU upload
	MarshalVertexBuffer() []byte

	// MarshalIndexBuffer serializes the indices into a 32-bit index buffer.
	//
	// Returns:
	//   - []byte: len(indices) * 4 bytes ready for GPU upload
	MarshalIndexBuffer() []byte
}

var _ Mesh = &meshImpl{}

// NewMesh creates a Mesh from vertex and index data. The slices are copied;
// the caller keeps ownership of its arguments.
//
// Parameters:
//   - vertices: the vertex data
//   - indices: the triangle indices
//
// Returns:
//   - Mesh: a new Mesh instance
func NewMesh(vertices []GPUVertex, indices []uint32) Mesh {
	m := &meshImpl{
		mu:       &sync.Mutex{},
		vertices: make([]GPUVertex, len(vertices)),
		indices:  make([]uint32, len(indices)),
	}
	copy(m.vertices, vertices)
	copy(m.indices, indices)
	return m
}

func (m *meshImpl) Vertices() []GPUVertex {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GPUVertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

func (m *meshImpl) Indices() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint32, len(m.indices))
	copy(out, m.indices)
	return out
}

func (m *meshImpl) Snapshot() []shading.Vertex {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]shading.Vertex, len(m.vertices))
	for i := range m.vertices {
		out[i] = m.vertices[i].Shading()
	}
	return out
}

func (m *meshImpl) MarshalVertexBuffer() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	var stride GPUVertex
	buf := make([]byte, 0, len(m.vertices)*stride.Size())
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *meshImpl) MarshalIndexBuffer() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
