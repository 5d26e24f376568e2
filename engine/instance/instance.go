package instance

import (
	"sync"

	"github.com/Carmen-Shannon/lumen-go/common"
)

type instanceImpl struct {
	mu *sync.Mutex

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	modelMatrix  [16]float32
	normalMatrix [9]float32
}

// Instance defines the interface for a single placement of a mesh in world
// space. An instance holds translate/rotate/scale state and keeps its model
// matrix and normal matrix (the inverse-transpose of the model's upper-left
// 3x3 block) up to date so they can be packed into the per-instance vertex
// buffer.
type Instance interface {
	// Position returns the instance's world-space translation.
	//
	// Returns:
	//   - x, y, z: translation components
	Position() (x, y, z float32)

	// Rotation returns the instance's Euler rotation in radians.
	//
	// Returns:
	//   - x, y, z: rotation components
	Rotation() (x, y, z float32)

	// Scale returns the instance's per-axis scale.
	//
	// Returns:
	//   - x, y, z: scale components
	Scale() (x, y, z float32)

	// ModelMatrix returns the current 4x4 model matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// NormalMatrix returns the current 3x3 normal matrix as 9 floats
	// (column-major), the inverse-transpose of the model's upper-left 3x3
	// block. Non-uniform scale is handled correctly; for a singular block
	// the upper-left 3x3 is used as-is.
	//
	// Returns:
	//   - [9]float32: the normal matrix
	NormalMatrix() [9]float32

	// Raw captures the GPU-aligned per-instance transform for vertex buffer
	// upload.
	//
	// Returns:
	//   - GPUInstanceTransform: the packed model and normal matrices
	Raw() GPUInstanceTransform

	// SetPosition sets the translation and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: translation components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation in radians and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: rotation components
	SetRotation(x, y, z float32)

	// SetScale sets the per-axis scale and recomputes matrices.
	//
	// Parameters:
	//   - x, y, z: scale components
	SetScale(x, y, z float32)
}

var _ Instance = &instanceImpl{}

// NewInstance creates a new Instance at the origin with identity rotation and
// unit scale, with any provided options applied.
//
// Parameters:
//   - opts: variadic list of InstanceBuilderOption functions to configure the instance
//
// Returns:
//   - Instance: a new Instance instance
func NewInstance(opts ...InstanceBuilderOption) Instance {
	i := &instanceImpl{
		mu:    &sync.Mutex{},
		scale: [3]float32{1, 1, 1},
	}
	for _, opt := range opts {
		opt(i)
	}
	i.updateMatrices()
	return i
}

// updateMatrices recomputes the model and normal matrices from the current
// translate/rotate/scale state. Caller must hold mu (or be the constructor
// before publication).
func (i *instanceImpl) updateMatrices() {
	common.BuildModelMatrix(i.modelMatrix[:],
		i.position[0], i.position[1], i.position[2],
		i.rotation[0], i.rotation[1], i.rotation[2],
		i.scale[0], i.scale[1], i.scale[2],
	)
	common.NormalMatrix3(i.normalMatrix[:], i.modelMatrix[:])
}

func (i *instanceImpl) Position() (x, y, z float32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.position[0], i.position[1], i.position[2]
}

func (i *instanceImpl) Rotation() (x, y, z float32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.rotation[0], i.rotation[1], i.rotation[2]
}

func (i *instanceImpl) Scale() (x, y, z float32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.scale[0], i.scale[1], i.scale[2]
}

func (i *instanceImpl) ModelMatrix() [16]float32 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.modelMatrix
}

func (i *instanceImpl) NormalMatrix() [9]float32 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.normalMatrix
}

func (i *instanceImpl) Raw() GPUInstanceTransform {
	i.mu.Lock()
	defer i.mu.Unlock()
	return GPUInstanceTransform{
		Model:  i.modelMatrix,
		Normal: i.normalMatrix,
	}
}

func (i *instanceImpl) SetPosition(x, y, z float32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.position = [3]float32{x, y, z}
	i.updateMatrices()
}

func (i *instanceImpl) SetRotation(x, y, z float32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.rotation = [3]float32{x, y, z}
	i.updateMatrices()
}

func (i *instanceImpl) SetScale(x, y, z float32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.scale = [3]float32{x, y, z}
	i.updateMatrices()
}
