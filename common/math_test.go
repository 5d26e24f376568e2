package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func TestIdentityMul4(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	BuildModelMatrix(m[:], 1, 2, 3, 0.4, 0.5, 0.6, 1, 2, 3)

	Mul4(out[:], id[:], m[:])
	assert.Equal(t, m, out, "identity * m should equal m")

	Mul4(out[:], m[:], id[:])
	assert.Equal(t, m, out, "m * identity should equal m")
}

func TestTransformPoint4Identity(t *testing.T) {
	var id [16]float32
	Identity(id[:])
	p := TransformPoint4(id[:], 1, -2, 3)
	assert.Equal(t, [4]float32{1, -2, 3, 1}, p)
}

func TestTransformPoint4Translation(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 10, 20, 30, 0, 0, 0, 1, 1, 1)
	p := TransformPoint4(m[:], 1, 2, 3)
	assert.InDelta(t, 11, p[0], epsilon)
	assert.InDelta(t, 22, p[1], epsilon)
	assert.InDelta(t, 33, p[2], epsilon)
	assert.InDelta(t, 1, p[3], epsilon)
}

func TestInvert3RoundTrip(t *testing.T) {
	var model [16]float32
	BuildModelMatrix(model[:], 0, 0, 0, 0.3, 1.1, -0.7, 2, 0.5, 3)

	var m, inv [9]float32
	Mat3FromMat4(m[:], model[:])
	require.True(t, Invert3(inv[:], m[:]))

	// inv * m should map any vector back to itself.
	v := [3]float32{0.2, -1.5, 0.9}
	got := TransformVec3Mat3(inv[:], TransformVec3Mat3(m[:], v))
	for i := range v {
		assert.InDelta(t, v[i], got[i], epsilon)
	}
}

func TestInvert3Singular(t *testing.T) {
	m := [9]float32{1, 2, 3, 2, 4, 6, 0, 0, 0}
	out := [9]float32{9, 9, 9, 9, 9, 9, 9, 9, 9}
	assert.False(t, Invert3(out[:], m[:]))
	assert.Equal(t, float32(9), out[0], "output must be untouched on singular input")
}

func TestNormalMatrix3NonUniformScale(t *testing.T) {
	// A surface normal on a non-uniformly scaled object must stay
	// perpendicular after transform by the normal matrix.
	var model [16]float32
	BuildModelMatrix(model[:], 0, 0, 0, 0, 0, 0, 2, 1, 1)

	var normalMat [9]float32
	require.True(t, NormalMatrix3(normalMat[:], model[:]))

	// Tangent plane of the normal (1,1,0)/sqrt2 contains (-1,1,0)/sqrt2.
	n := Normalize3([3]float32{1, 1, 0})
	tangent := Normalize3([3]float32{-1, 1, 0})

	var m3 [9]float32
	Mat3FromMat4(m3[:], model[:])
	worldTangent := TransformVec3Mat3(m3[:], tangent)
	worldNormal := Normalize3(TransformVec3Mat3(normalMat[:], n))

	assert.InDelta(t, 0, Dot3(worldNormal, worldTangent), epsilon,
		"normal must remain perpendicular to the transformed tangent")
}

func TestNormalize3Reflect3(t *testing.T) {
	n := Normalize3([3]float32{3, 4, 0})
	assert.InDelta(t, 1, Length3(n), epsilon)

	// Reflecting straight-down incidence off a flat floor flips Y.
	up := [3]float32{0, 1, 0}
	r := Reflect3([3]float32{0, -1, 0}, up)
	assert.InDelta(t, 0, r[0], epsilon)
	assert.InDelta(t, 1, r[1], epsilon)
	assert.InDelta(t, 0, r[2], epsilon)
}

func TestCross3(t *testing.T) {
	x := [3]float32{1, 0, 0}
	y := [3]float32{0, 1, 0}
	assert.Equal(t, [3]float32{0, 0, 1}, Cross3(x, y))
	assert.Equal(t, [3]float32{0, 0, -1}, Cross3(y, x))
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], math32.Pi/4, 16.0/9.0, 0.1, 100)

	// Points on the near plane map to clip z/w = 0, WebGPU convention.
	near := TransformPoint4(proj[:], 0, 0, -0.1)
	assert.InDelta(t, 0, near[2]/near[3], 1e-4)

	far := TransformPoint4(proj[:], 0, 0, -100)
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 5, 3, -2, 0, 0, 0, 0, 1, 0)
	p := TransformPoint4(view[:], 5, 3, -2)
	assert.InDelta(t, 0, p[0], epsilon)
	assert.InDelta(t, 0, p[1], epsilon)
	assert.InDelta(t, 0, p[2], epsilon)
}
