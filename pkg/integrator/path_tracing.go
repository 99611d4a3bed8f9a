package integrator

import (
	"math"

	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance, keeping bounced rays off their own surface
const ShadowAcneEpsilon = 0.001

// SamplingConfig contains the integrator's tuning parameters
type SamplingConfig struct {
	MaxDepth int // Maximum ray bounce depth
}

// PathTracingIntegrator follows one scatter chain per camera ray until it
// escapes, is absorbed, reaches a light or runs out of depth
type PathTracingIntegrator struct {
	config     SamplingConfig
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config SamplingConfig, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config:     config,
		background: background,
	}
}

// RayColor computes the color for a single ray using the configured depth bound
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, sampler, pt.config.MaxDepth)
}

// Trace returns the radiance along ray, bouncing at most depth times.
// The loop carries the product of attenuations instead of recursing.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.background.Color(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			if emission, emits := hit.Material.Emit(); emits {
				return throughput.MultiplyVec(emission)
			}
			// Absorbed
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached, no more light is gathered
	return core.Vec3{}
}
