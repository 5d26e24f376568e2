package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

func testVertices(n int) []shading.Vertex {
	verts := make([]shading.Vertex, n)
	for i := range verts {
		f := float32(i)
		verts[i] = shading.Vertex{
			Position:  [3]float32{f * 0.1, f * 0.2, f * 0.05},
			TexCoord:  [2]float32{0.5, 0.5},
			Normal:    [3]float32{0, 1, 0},
			Tangent:   [3]float32{1, 0, 0},
			Bitangent: [3]float32{0, 0, 1},
		}
	}
	return verts
}

func testCamera() shading.Camera {
	var cam shading.Camera
	for i := range 4 {
		cam.ViewProj[i*4+i] = 1
		cam.View[i*4+i] = 1
	}
	cam.ViewPosition = [3]float32{0, 2, 5}
	return cam
}

func identityInstance() ([16]float32, [9]float32) {
	var model [16]float32
	var normal [9]float32
	for i := range 4 {
		model[i*4+i] = 1
	}
	for i := range 3 {
		normal[i*3+i] = 1
	}
	return model, normal
}

func TestTransformVerticesMatchesSerial(t *testing.T) {
	e := NewEvaluator(WithWorkers(3), WithBatchSize(7))
	defer e.Close()

	verts := testVertices(100)
	model, normal := identityInstance()
	cam := testCamera()

	got := e.TransformVertices(verts, model, normal, cam, shading.NormalTransformNormalMatrix)
	require.Len(t, got, len(verts))
	for i, v := range verts {
		want := shading.TransformVertex(v, model, normal, cam, shading.NormalTransformNormalMatrix)
		assert.Equal(t, want, got[i], "vertex %d", i)
	}
}

func TestShadeFragmentsMatchesSerial(t *testing.T) {
	e := NewEvaluator(WithWorkers(4), WithBatchSize(5))
	defer e.Close()

	verts := testVertices(64)
	model, normal := identityInstance()
	cam := testCamera()
	varyings := e.TransformVertices(verts, model, normal, cam, shading.NormalTransformNormalMatrix)

	mat := shading.Material{Diffuse: shading.SolidSampler{0.8, 0.6, 0.4, 1}}
	lights := []shading.Light{
		{Position: [3]float32{0, 10, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{5, 3, -2}, Color: [3]float32{0.3, 0.4, 0.5}},
	}
	cfg := shading.SimpleLitConfig()

	got := e.ShadeFragments(varyings, mat, cam, lights, len(lights), cfg)
	require.Len(t, got, len(varyings))
	for i, v := range varyings {
		want := shading.ShadeFragment(v, mat, cam, lights, len(lights), cfg)
		assert.Equal(t, want, got[i], "fragment %d", i)
	}
}

func TestDeterministicAcrossWorkerCounts(t *testing.T) {
	verts := testVertices(50)
	model, normal := identityInstance()
	cam := testCamera()
	mat := shading.Material{Diffuse: shading.SolidSampler{1, 1, 1, 1}}
	// The light must not coincide with any test vertex: surface-at-light
	// geometry is a caller precondition violation and would shade to NaN.
	// testVertices walks the ray (0.1, 0.2, 0.05)*i, so (2.5, 4, 1) is off it.
	lights := []shading.Light{{Position: [3]float32{2.5, 4, 1}, Color: [3]float32{1, 0.9, 0.8}}}
	cfg := shading.DefaultConfig()

	var baseline [][4]float32
	for _, workers := range []int{1, 2, 8} {
		e := NewEvaluator(WithWorkers(workers), WithBatchSize(3))
		varyings := e.TransformVertices(verts, model, normal, cam, shading.NormalTransformNormalMatrix)
		colors := e.ShadeFragments(varyings, mat, cam, lights, 1, cfg)
		e.Close()

		if baseline == nil {
			baseline = colors
			for i, c := range baseline {
				for ch := range 3 {
					require.False(t, math.IsNaN(float64(c[ch])), "fragment %d channel %d", i, ch)
				}
			}
			continue
		}
		assert.Equal(t, baseline, colors, "workers=%d", workers)
	}
}

func TestEmptyBatches(t *testing.T) {
	e := NewEvaluator(WithWorkers(2))
	defer e.Close()

	model, normal := identityInstance()
	cam := testCamera()
	assert.Empty(t, e.TransformVertices(nil, model, normal, cam, shading.NormalTransformNormalMatrix))
	assert.Empty(t, e.ShadeFragments(nil, shading.Material{Diffuse: shading.SolidSampler{}}, cam, nil, 0, shading.DefaultConfig()))
}

func TestBuilderOptionsIgnoreInvalidValues(t *testing.T) {
	e := NewEvaluator(WithWorkers(0), WithBatchSize(-5))
	defer e.Close()

	impl := e.(*evaluatorImpl)
	assert.Equal(t, 4, impl.workers)
	assert.Equal(t, 256, impl.batchSize)
}
