package light

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

// MaxPointLights is the physical capacity of a point light collection's GPU
// storage buffer. The buffer is always allocated at this capacity so lights
// can be added or removed at runtime without reallocating; the active count
// travels in a separate uniform.
const MaxPointLights = 1000

// ErrCollectionFull is returned by Add when the collection already holds
// MaxPointLights lights.
var ErrCollectionFull = errors.New("point light collection is full")

type pointLightCollectionImpl struct {
	mu *sync.Mutex

	lights []PointLight
}

// PointLightCollection manages a set of point lights backed by a fixed-capacity
// GPU storage buffer. The marshaled buffer always spans the full capacity;
// only the first Count entries are meaningful, and shaders read the active
// count from the separate count uniform rather than the buffer size.
type PointLightCollection interface {
	// Add appends a light to the collection.
	//
	// Parameters:
	//   - l: the light to add
	//
	// Returns:
	//   - error: ErrCollectionFull if the collection holds MaxPointLights lights
	Add(l PointLight) error

	// Remove removes a previously added light. Removing a light that is not
	// in the collection is a no-op.
	//
	// Parameters:
	//   - l: the light to remove
	Remove(l PointLight)

	// Count returns the number of enabled lights, the value uploaded as the
	// count uniform.
	//
	// Returns:
	//   - int: the active light count
	Count() int

	// Len returns the number of lights held, enabled or not.
	//
	// Returns:
	//   - int: the total light count
	Len() int

	// Snapshot captures the enabled lights in insertion order as the plain
	// values consumed by the shading core.
	//
	// Returns:
	//   - []shading.Light: the active lights
	Snapshot() []shading.Light

	// MarshalBuffer serializes the enabled lights into a storage buffer
	// spanning the full MaxPointLights capacity. Entries past the active
	// count are zeroed.
	//
	// Returns:
	//   - []byte: MaxPointLights * 32 bytes ready for GPU upload
	MarshalBuffer() []byte

	// MarshalCount serializes the active light count as the u32 count uniform.
	//
	// Returns:
	//   - []byte: 4-byte buffer ready for GPU upload
	MarshalCount() []byte
}

var _ PointLightCollection = &pointLightCollectionImpl{}

// NewPointLightCollection creates an empty PointLightCollection.
//
// Returns:
//   - PointLightCollection: a new collection instance
func NewPointLightCollection() PointLightCollection {
	return &pointLightCollectionImpl{
		mu:     &sync.Mutex{},
		lights: make([]PointLight, 0, MaxPointLights),
	}
}

func (c *pointLightCollectionImpl) Add(l PointLight) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lights) >= MaxPointLights {
		return ErrCollectionFull
	}
	c.lights = append(c.lights, l)
	return nil
}

func (c *pointLightCollectionImpl) Remove(l PointLight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.lights {
		if existing == l {
			c.lights = append(c.lights[:i], c.lights[i+1:]...)
			return
		}
	}
}

func (c *pointLightCollectionImpl) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.enabled())
}

func (c *pointLightCollectionImpl) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lights)
}

func (c *pointLightCollectionImpl) Snapshot() []shading.Light {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := c.enabled()
	out := make([]shading.Light, len(active))
	for i, l := range active {
		out[i] = l.Snapshot()
	}
	return out
}

func (c *pointLightCollectionImpl) MarshalBuffer() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	var stride GPUPointLight
	buf := make([]byte, MaxPointLights*stride.Size())
	for i, l := range c.enabled() {
		u := l.Uniform()
		copy(buf[i*stride.Size():], u.Marshal())
	}
	return buf
}

func (c *pointLightCollectionImpl) MarshalCount() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(len(c.enabled())))
	return buf
}

// enabled returns the enabled lights in insertion order. Caller must hold mu.
func (c *pointLightCollectionImpl) enabled() []PointLight {
	active := make([]PointLight, 0, len(c.lights))
	for _, l := range c.lights {
		if l.Enabled() {
			active = append(active, l)
		}
	}
	return active
}
