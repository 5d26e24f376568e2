package material

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

// FilterMode selects how an ImageSampler resolves UV coordinates that fall
// between texel centers.
type FilterMode int

const (
	// FilterNearest snaps to the closest texel.
	FilterNearest FilterMode = iota
	// FilterLinear blends the four surrounding texels bilinearly.
	FilterLinear
)

type imageSamplerImpl struct {
	pixels [][4]float32
	width  int
	height int
	filter FilterMode
}

var _ shading.TextureSampler = &imageSamplerImpl{}

type ImageSamplerOption func(*imageSamplerImpl)

// WithFilter sets the sampler's filter mode.
//
// Parameters:
//   - filter: FilterNearest or FilterLinear
//
// Returns:
//   - ImageSamplerOption: a function that sets the filter mode
func WithFilter(filter FilterMode) ImageSamplerOption {
	return func(s *imageSamplerImpl) {
		s.filter = filter
	}
}

// NewImageSampler creates a texture sampler over a decoded image. Pixels are
// converted to linear [0, 1] floats once at construction; sampling uses
// repeat wrapping on both axes, with v increasing down the image the same
// way GPU texture sampling does. Defaults to nearest filtering.
//
// Parameters:
//   - img: the source image
//   - opts: variadic list of ImageSamplerOption functions to configure the sampler
//
// Returns:
//   - shading.TextureSampler: the image-backed sampler
func NewImageSampler(img image.Image, opts ...ImageSamplerOption) shading.TextureSampler {
	bounds := img.Bounds()
	s := &imageSamplerImpl{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		filter: FilterNearest,
	}
	s.pixels = make([][4]float32, s.width*s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			s.pixels[y*s.width+x] = [4]float32{
				float32(r) / 0xffff,
				float32(g) / 0xffff,
				float32(b) / 0xffff,
				float32(a) / 0xffff,
			}
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *imageSamplerImpl) Sample(u, v float32) [4]float32 {
	if s.width == 0 || s.height == 0 {
		return [4]float32{}
	}
	if s.filter == FilterLinear {
		return s.sampleLinear(u, v)
	}
	x := wrapTexel(int(math32.Floor(u*float32(s.width))), s.width)
	y := wrapTexel(int(math32.Floor(v*float32(s.height))), s.height)
	return s.pixels[y*s.width+x]
}

func (s *imageSamplerImpl) sampleLinear(u, v float32) [4]float32 {
	// sample positions sit at texel centers, so shift by half a texel before
	// splitting into integer texel and blend fraction
	fx := u*float32(s.width) - 0.5
	fy := v*float32(s.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	p00 := s.texel(x0, y0)
	p10 := s.texel(x0+1, y0)
	p01 := s.texel(x0, y0+1)
	p11 := s.texel(x0+1, y0+1)

	var out [4]float32
	for i := range out {
		top := p00[i]*(1-tx) + p10[i]*tx
		bottom := p01[i]*(1-tx) + p11[i]*tx
		out[i] = top*(1-ty) + bottom*ty
	}
	return out
}

func (s *imageSamplerImpl) texel(x, y int) [4]float32 {
	return s.pixels[wrapTexel(y, s.height)*s.width+wrapTexel(x, s.width)]
}

// wrapTexel maps any texel index into [0, n) with repeat wrapping.
func wrapTexel(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
