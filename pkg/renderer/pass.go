package renderer

import (
	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
)

// sampleSeedStride spreads consecutive sample indices across the PCG seed space
const sampleSeedStride = 0x9E3779B97F4A7C15

// Pass describes one sweep that adds exactly one sample to every pixel.
// Everything a job reads is fixed for the lifetime of the pass.
type Pass struct {
	Sample     int             // 1-based sample index since the last reset
	Camera     geometry.Camera // Snapshot of the camera pose for this pass
	World      geometry.Shape
	Integrator integrator.Integrator
	Buffer     *RenderBuffer
	Seed       uint64
}

// RenderPixel traces one jittered camera ray through pixel (x, y) and folds the
// result into that pixel's running mean. The random stream depends only on the
// seed, the sample index and the pixel, so scheduling order never changes the image.
func (p *Pass) RenderPixel(x, y int) {
	width, height := p.Buffer.Width(), p.Buffer.Height()
	sampler := core.NewSeededSampler(
		p.Seed+uint64(p.Sample)*sampleSeedStride,
		uint64(y)*uint64(width)+uint64(x),
	)

	// Row 0 is the top of the image, camera t = 0 is the bottom edge
	jitter := sampler.Get2D()
	s := (float64(x) + jitter.X) / float64(width)
	t := (float64(height-1-y) + jitter.Y) / float64(height)

	ray := p.Camera.GetRay(s, t, sampler)
	p.Buffer.At(x, y).AddSample(p.Integrator.RayColor(ray, p.World, sampler))
}
