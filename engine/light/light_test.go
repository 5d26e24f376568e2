package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointLightDefaults(t *testing.T) {
	l := NewPointLight()

	x, y, z := l.Position()
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{x, y, z})
	r, g, b := l.Color()
	assert.Equal(t, [3]float32{1, 1, 1}, [3]float32{r, g, b})
	assert.True(t, l.Enabled())
}

func TestPointLightBuilderOptions(t *testing.T) {
	l := NewPointLight(
		WithPosition(1, 2, 3),
		WithColor(0.5, 0.25, 0.125),
		WithEnabled(false),
	)

	snap := l.Snapshot()
	assert.Equal(t, [3]float32{1, 2, 3}, snap.Position)
	assert.Equal(t, [3]float32{0.5, 0.25, 0.125}, snap.Color)
	assert.False(t, l.Enabled())
}

func TestGPUPointLightLayout(t *testing.T) {
	g := GPUPointLight{
		Position: [3]float32{1, 2, 3},
		Color:    [3]float32{4, 5, 6},
	}
	assert.Equal(t, 32, g.Size())

	buf := g.Marshal()
	assert.Len(t, buf, 32)

	readAt := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(1), readAt(0))
	assert.Equal(t, float32(3), readAt(8))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[12:]), "vec3 padding must be zero")
	assert.Equal(t, float32(4), readAt(16))
	assert.Equal(t, float32(6), readAt(24))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[28:]), "trailing padding must be zero")
}

func TestCollectionCapacityDecoupledFromCount(t *testing.T) {
	c := NewPointLightCollection()
	require.NoError(t, c.Add(NewPointLight(WithPosition(1, 0, 0))))
	require.NoError(t, c.Add(NewPointLight(WithPosition(2, 0, 0))))

	buf := c.MarshalBuffer()
	assert.Len(t, buf, MaxPointLights*32, "buffer always spans full capacity")

	count := c.MarshalCount()
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(count))

	readAt := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(1), readAt(0))
	assert.Equal(t, float32(2), readAt(32))
	assert.Equal(t, float32(0), readAt(64), "entries past the count are zeroed")
}

func TestCollectionSkipsDisabledLights(t *testing.T) {
	c := NewPointLightCollection()
	on := NewPointLight(WithPosition(1, 0, 0))
	off := NewPointLight(WithPosition(9, 9, 9), WithEnabled(false))
	require.NoError(t, c.Add(on))
	require.NoError(t, c.Add(off))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Count())

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, [3]float32{1, 0, 0}, snap[0].Position)
}

func TestCollectionRemove(t *testing.T) {
	c := NewPointLightCollection()
	a := NewPointLight(WithPosition(1, 0, 0))
	b := NewPointLight(WithPosition(2, 0, 0))
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	c.Remove(a)
	assert.Equal(t, 1, c.Len())

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, [3]float32{2, 0, 0}, snap[0].Position)

	// removing a light that was never added is a no-op
	c.Remove(a)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionFull(t *testing.T) {
	c := NewPointLightCollection()
	for range MaxPointLights {
		require.NoError(t, c.Add(NewPointLight()))
	}
	assert.ErrorIs(t, c.Add(NewPointLight()), ErrCollectionFull)
}
