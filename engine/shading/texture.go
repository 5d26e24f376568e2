package shading

import (
	"github.com/Carmen-Shannon/lumen-go/common"
)

// TextureSampler is the bridge to the host's texture/sampler resource system.
// Given a coordinate in [0,1]^2 it returns a 4-component color; wrap and
// filter behavior belong to the sampler's own configuration. The core only
// ever reads through this interface and never owns the underlying resources.
type TextureSampler interface {
	// Sample fetches the filtered texel color at the given coordinate.
	//
	// Parameters:
	//   - u, v: the texture coordinate in [0,1]^2
	//
	// Returns:
	//   - [4]float32: the sampled RGBA color
	Sample(u, v float32) [4]float32
}

// DecodeNormal converts a sampled normal-map texel from its [0,1] channel
// encoding back to a unit direction: 2*sample - 1, renormalized. The texel's
// alpha channel is ignored.
//
// Parameters:
//   - sample: the sampled normal-map RGBA texel
//
// Returns:
//   - [3]float32: the unit tangent-space normal
func DecodeNormal(sample [4]float32) [3]float32 {
	return common.Normalize3([3]float32{
		2*sample[0] - 1,
		2*sample[1] - 1,
		2*sample[2] - 1,
	})
}

// EncodeNormal converts a unit direction into the [0,1] channel encoding a
// normal map stores: (v+1)/2, alpha 1. Round-trips through DecodeNormal
// within floating-point tolerance.
//
// Parameters:
//   - n: the unit direction to encode
//
// Returns:
//   - [4]float32: the encoded RGBA texel
func EncodeNormal(n [3]float32) [4]float32 {
	return [4]float32{
		(n[0] + 1) / 2,
		(n[1] + 1) / 2,
		(n[2] + 1) / 2,
		1,
	}
}

// SolidSampler is a TextureSampler returning one constant color everywhere.
// Hosts use it for untextured materials; tests use it to pin base colors.
type SolidSampler [4]float32

var _ TextureSampler = SolidSampler{}

// Sample returns the constant color, ignoring the coordinate.
func (s SolidSampler) Sample(u, v float32) [4]float32 {
	return [4]float32(s)
}
