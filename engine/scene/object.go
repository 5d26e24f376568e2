package scene

import (
	"sync"

	"github.com/Carmen-Shannon/lumen-go/engine/instance"
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
	"github.com/Carmen-Shannon/lumen-go/engine/renderer/material"
)

type objectImpl struct {
	mu *sync.Mutex

	name      string
	mesh      mesh.Mesh
	material  material.Material
	instances []instance.Instance
}

// Object defines the interface for one renderable entry in a scene: a mesh,
// the material it is shaded with, and every instance placement drawn in a
// single instanced draw call.
type Object interface {
	// Name retrieves the object identifier.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Mesh retrieves the object's mesh.
	//
	// Returns:
	//   - mesh.Mesh: the mesh
	Mesh() mesh.Mesh

	// Material retrieves the object's material.
	//
	// Returns:
	//   - material.Material: the material
	Material() material.Material

	// Instances retrieves the object's instance placements.
	//
	// Returns:
	//   - []instance.Instance: the instances, in draw order
	Instances() []instance.Instance

	// AddInstance appends an instance placement.
	//
	// Parameters:
	//   - inst: the instance to add
	AddInstance(inst instance.Instance)

	// InstanceCount returns the number of instance placements.
	//
	// Returns:
	//   - int: the instance count
	InstanceCount() int

	// MarshalInstanceBuffer serializes every instance's packed transform
	// into the per-instance vertex buffer, in draw order.
	//
	// Returns:
	//   - []byte: InstanceCount() * 100 bytes ready for GPU upload
	MarshalInstanceBuffer() []byte
}

var _ Object = &objectImpl{}

// NewObject creates an Object from a mesh and material with no instances.
//
// Parameters:
//   - name: the object identifier
//   - m: the mesh
//   - mat: the material
//
// Returns:
//   - Object: a new Object instance
func NewObject(name string, m mesh.Mesh, mat material.Material) Object {
	return &objectImpl{
		mu:       &sync.Mutex{},
		name:     name,
		mesh:     m,
		material: mat,
	}
}

func (o *objectImpl) Name() string {
	return o.name
}

func (o *objectImpl) Mesh() mesh.Mesh {
	return o.mesh
}

func (o *objectImpl) Material() material.Material {
	return o.material
}

func (o *objectImpl) Instances() []instance.Instance {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]instance.Instance, len(o.instances))
	copy(out, o.instances)
	return out
}

func (o *objectImpl) AddInstance(inst instance.Instance) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.instances = append(o.instances, inst)
}

func (o *objectImpl) InstanceCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.instances)
}

func (o *objectImpl) MarshalInstanceBuffer() []byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	var stride instance.GPUInstanceTransform
	buf := make([]byte, 0, len(o.instances)*stride.Size())
	for _, inst := range o.instances {
		raw := inst.Raw()
		buf = append(buf, raw.Marshal()...)
	}
	return buf
}
