package shading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/lumen-go/common"
)

func TestAccumulateFullIncidenceEqualsProduct(t *testing.T) {
	// Light exactly along the surface normal, ambient off, diffuse weight 1,
	// specular weight 0: output RGB is light.color * base.rgb exactly.
	cfg := DefaultConfig()
	cfg.SpecularWeight = 0

	base := [4]float32{0.5, 0.25, 1, 0.8}
	normal := [3]float32{0, 1, 0}
	surface := [3]float32{0, 0, 0}
	eye := [3]float32{0, 5, 5}
	lights := []Light{{Position: [3]float32{0, 10, 0}, Color: [3]float32{2, 0.5, 1}}}

	got := Accumulate(base, normal, surface, eye, lights, 1, cfg)

	assert.InDelta(t, 2*0.5, got[0], epsilon)
	assert.InDelta(t, 0.5*0.25, got[1], epsilon)
	assert.InDelta(t, 1*1, got[2], epsilon)
	assert.Equal(t, float32(0.8), got[3], "alpha passes through from the base sample")
}

func TestAccumulateBackFacingLightContributesNothing(t *testing.T) {
	cfg := DefaultConfig()

	base := [4]float32{1, 1, 1, 1}
	normal := [3]float32{0, 1, 0}
	surface := [3]float32{0, 0, 0}
	eye := [3]float32{0, 3, 0}
	// Below the surface: dot(normal, light_dir) < 0.
	lights := []Light{{Position: [3]float32{0, -10, 0}, Color: [3]float32{5, 5, 5}}}

	got := Accumulate(base, normal, surface, eye, lights, 1, cfg)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, got)
}

func TestEvaluateLightAntipodalEyeHasNoHighlight(t *testing.T) {
	// Eye exactly opposite the light across the surface: view_dir + light_dir
	// is the zero vector, so the Blinn half-vector has no direction. The
	// specular term must collapse to zero instead of NaN.
	light := Light{Position: [3]float32{0, -10, 0}, Color: [3]float32{5, 5, 5}}
	normal := [3]float32{0, 1, 0}
	surface := [3]float32{0, 0, 0}
	eye := [3]float32{0, 3, 0}

	diffuse, specular := EvaluateLight(light, normal, surface, eye, DefaultConfig())
	assert.Equal(t, [3]float32{0, 0, 0}, diffuse)
	assert.Equal(t, [3]float32{0, 0, 0}, specular)
}

func TestAccumulateZeroCountIsAmbientOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AmbientStrength = 0.1
	cfg.AmbientColor = [3]float32{1, 0.5, 1}

	base := [4]float32{0.8, 0.8, 0.4, 1}
	lights := []Light{{Position: [3]float32{0, 10, 0}, Color: [3]float32{9, 9, 9}}}

	got := Accumulate(base, [3]float32{0, 1, 0}, [3]float32{}, [3]float32{0, 1, 1}, lights, 0, cfg)

	assert.InDelta(t, 0.1*1*0.8, got[0], epsilon)
	assert.InDelta(t, 0.1*0.5*0.8, got[1], epsilon)
	assert.InDelta(t, 0.1*1*0.4, got[2], epsilon)
}

func TestAccumulateZeroCountZeroAmbientIsBlack(t *testing.T) {
	cfg := DefaultConfig()
	got := Accumulate([4]float32{1, 1, 1, 0.5}, [3]float32{0, 1, 0}, [3]float32{}, [3]float32{0, 1, 1}, nil, 0, cfg)
	assert.Equal(t, [4]float32{0, 0, 0, 0.5}, got)
}

func TestAccumulateSuperposition(t *testing.T) {
	// Summing N single-light evaluations must equal one N-light evaluation.
	for _, cfg := range []Config{DefaultConfig(), SimpleLitConfig()} {
		base := [4]float32{0.6, 0.7, 0.8, 1}
		normal := common.Normalize3([3]float32{0.2, 1, 0.1})
		surface := [3]float32{1, 0, -2}
		eye := [3]float32{4, 3, 2}
		lights := []Light{
			{Position: [3]float32{2, 5, 0}, Color: [3]float32{1, 0.2, 0.1}},
			{Position: [3]float32{-3, 2, 4}, Color: [3]float32{0.3, 0.9, 0.5}},
			{Position: [3]float32{0, 8, -6}, Color: [3]float32{0.7, 0.7, 1.2}},
		}

		ambientFree := cfg
		ambientFree.AmbientStrength = 0

		all := Accumulate(base, normal, surface, eye, lights, len(lights), ambientFree)

		var sum [3]float32
		for i := range lights {
			one := Accumulate(base, normal, surface, eye, lights[i:i+1], 1, ambientFree)
			sum = common.Add3(sum, [3]float32{one[0], one[1], one[2]})
		}

		for c := range 3 {
			assert.InDelta(t, sum[c], all[c], 1e-4, "channel %d under %+v", c, cfg)
		}
	}
}

func TestAccumulateRespectsCountBelowCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpecularWeight = 0

	base := [4]float32{1, 1, 1, 1}
	normal := [3]float32{0, 1, 0}
	lights := []Light{
		{Position: [3]float32{0, 10, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{0, 10, 0}, Color: [3]float32{100, 100, 100}}, // inactive tail
	}

	got := Accumulate(base, normal, [3]float32{}, [3]float32{0, 5, 5}, lights, 1, cfg)
	assert.InDelta(t, 1, got[0], epsilon, "inactive buffer tail must not contribute")
}

func TestAccumulateClampsCountToBuffer(t *testing.T) {
	cfg := DefaultConfig()
	lights := []Light{{Position: [3]float32{0, 10, 0}, Color: [3]float32{1, 1, 1}}}
	assert.NotPanics(t, func() {
		Accumulate([4]float32{1, 1, 1, 1}, [3]float32{0, 1, 0}, [3]float32{}, [3]float32{0, 5, 5}, lights, 10, cfg)
	})
}

func TestSpecularModelsDiverge(t *testing.T) {
	// Blinn half-vector and reflection-vector highlights are numerically
	// distinct under glancing geometry.
	light := Light{Position: [3]float32{5, 5, 0}, Color: [3]float32{1, 1, 1}}
	normal := [3]float32{0, 1, 0}
	surface := [3]float32{0, 0, 0}
	eye := [3]float32{0, 5, 5}

	blinn := DefaultConfig()
	reflect := DefaultConfig()
	reflect.Specular = SpecularReflect

	_, specBlinn := EvaluateLight(light, normal, surface, eye, blinn)
	_, specReflect := EvaluateLight(light, normal, surface, eye, reflect)

	assert.NotEqual(t, specBlinn[0], specReflect[0])
}

func TestEvaluateLightSpecularNonNegative(t *testing.T) {
	// Eye behind the surface: the clamped reflection dot must floor at zero
	// rather than going negative.
	light := Light{Position: [3]float32{0, 10, 0}, Color: [3]float32{1, 1, 1}}
	normal := [3]float32{0, 1, 0}

	for _, cfg := range []Config{DefaultConfig(), {Specular: SpecularReflect, Shininess: 64}} {
		_, spec := EvaluateLight(light, normal, [3]float32{0, 0, 0}, [3]float32{0, -4, 1}, cfg)
		for c := range 3 {
			assert.GreaterOrEqual(t, spec[c], float32(0))
		}
	}
}
