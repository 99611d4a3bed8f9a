package integrator

import (
	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along a camera ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background is the vertical sky gradient returned for rays that escape the scene
type Background struct {
	Zenith  core.Vec3 // Color straight up
	Horizon core.Vec3 // Color straight down
}

// Color returns the gradient value for the ray's normalized vertical direction
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Horizon.Lerp(b.Zenith, t)
}
