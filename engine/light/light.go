package light

import (
	"sync"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

type pointLightImpl struct {
	mu *sync.Mutex

	position [3]float32
	color    [3]float32
	enabled  bool
}

// PointLight defines the interface for a point light source. A point light
// radiates its color uniformly from a world-space position with no distance
// falloff; disabled lights keep their state but are skipped when a collection
// is packed for shading.
type PointLight interface {
	// Position returns the light's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Color returns the light's RGB color.
	//
	// Returns:
	//   - r, g, b: color components
	Color() (r, g, b float32)

	// Enabled reports whether the light contributes to shading.
	//
	// Returns:
	//   - bool: true if the light is active
	Enabled() bool

	// SetPosition sets the light's world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the light's RGB color.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetEnabled toggles whether the light contributes to shading.
	//
	// Parameters:
	//   - enabled: true to activate the light
	SetEnabled(enabled bool)

	// Snapshot captures the light's position and color as the plain value
	// consumed by the shading core.
	//
	// Returns:
	//   - shading.Light: the light value
	Snapshot() shading.Light

	// Uniform captures the GPU-aligned representation of the light.
	//
	// Returns:
	//   - GPUPointLight: the value matching the WGSL PointLightUniform struct
	Uniform() GPUPointLight
}

var _ PointLight = &pointLightImpl{}

// NewPointLight creates a new PointLight with default state (white light at
// the origin, enabled) and any provided options applied.
//
// Parameters:
//   - opts: variadic list of PointLightBuilderOption functions to configure the light
//
// Returns:
//   - PointLight: a new PointLight instance
func NewPointLight(opts ...PointLightBuilderOption) PointLight {
	l := &pointLightImpl{
		mu:      &sync.Mutex{},
		color:   [3]float32{1, 1, 1},
		enabled: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *pointLightImpl) Position() (x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position[0], l.position[1], l.position[2]
}

func (l *pointLightImpl) Color() (r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color[0], l.color[1], l.color[2]
}

func (l *pointLightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *pointLightImpl) SetPosition(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = [3]float32{x, y, z}
}

func (l *pointLightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *pointLightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *pointLightImpl) Snapshot() shading.Light {
	l.mu.Lock()
	defer l.mu.Unlock()
	return shading.Light{
		Position: l.position,
		Color:    l.color,
	}
}

func (l *pointLightImpl) Uniform() GPUPointLight {
	l.mu.Lock()
	defer l.mu.Unlock()
	return GPUPointLight{
		Position: l.position,
		Color:    l.color,
	}
}
