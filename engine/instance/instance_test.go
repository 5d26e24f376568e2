package instance

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/shading"
	"github.com/cogentcore/webgpu/wgpu"
)

const epsilon = 1e-5

func TestNewInstanceDefaults(t *testing.T) {
	i := NewInstance()

	var want [16]float32
	common.Identity(want[:])
	assert.Equal(t, want, i.ModelMatrix())

	assert.Equal(t, [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, i.NormalMatrix())
}

func TestInstanceBuilderOptions(t *testing.T) {
	i := NewInstance(
		WithPosition(1, 2, 3),
		WithScale(2, 2, 2),
	)

	m := i.ModelMatrix()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{m[12], m[13], m[14]}, "translation rides in the last column")
	assert.Equal(t, float32(2), m[0])
}

func TestSettersRecomputeMatrices(t *testing.T) {
	i := NewInstance()
	before := i.ModelMatrix()
	i.SetRotation(0, 1.2, 0)
	assert.NotEqual(t, before, i.ModelMatrix())
}

func TestNormalMatrixCountersNonUniformScale(t *testing.T) {
	i := NewInstance(WithScale(4, 1, 1))

	n := i.NormalMatrix()
	// inverse-transpose of diag(4, 1, 1) is diag(0.25, 1, 1)
	assert.InDelta(t, 0.25, n[0], epsilon)
	assert.InDelta(t, 1.0, n[4], epsilon)
	assert.InDelta(t, 1.0, n[8], epsilon)
}

func TestPackedColumnsRoundTripThroughResolver(t *testing.T) {
	i := NewInstance(
		WithPosition(3, -1, 2),
		WithRotation(0.3, 0.7, -0.2),
		WithScale(2, 0.5, 1.5),
	)
	raw := i.Raw()

	c0, c1, c2, c3 := raw.ModelColumns()
	assert.Equal(t, i.ModelMatrix(), shading.ResolveModelMatrix(c0, c1, c2, c3))

	n0, n1, n2 := raw.NormalColumns()
	assert.Equal(t, i.NormalMatrix(), shading.ResolveNormalMatrix(n0, n1, n2))
}

func TestGPUInstanceTransformLayout(t *testing.T) {
	g := GPUInstanceTransform{}
	for i := range g.Model {
		g.Model[i] = float32(i)
	}
	for i := range g.Normal {
		g.Normal[i] = float32(100 + i)
	}
	assert.Equal(t, 100, g.Size())

	buf := g.Marshal()
	require.Len(t, buf, 100)

	readAt := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(0), readAt(0))
	assert.Equal(t, float32(15), readAt(60))
	assert.Equal(t, float32(100), readAt(64))
	assert.Equal(t, float32(108), readAt(96))
}

func TestVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()

	assert.Equal(t, uint64(100), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, layout.StepMode)
	require.Len(t, layout.Attributes, 7)

	for idx, attr := range layout.Attributes {
		assert.Equal(t, uint32(5+idx), attr.ShaderLocation)
	}
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layout.Attributes[0].Format)
	assert.Equal(t, uint64(48), layout.Attributes[3].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[4].Format)
	assert.Equal(t, uint64(64), layout.Attributes[4].Offset)
	assert.Equal(t, uint64(88), layout.Attributes[6].Offset)
}
