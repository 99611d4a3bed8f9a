package material

import (
	"github.com/df07/go-live-raytracer/pkg/core"
)

// DefaultDiffusion scales the random perturbation added to the normal on a diffuse bounce
const DefaultDiffusion = 1.0

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	noEmission
	Albedo    core.Vec3 // Base color/reflectance
	Diffusion float64   // Length of the random offset added to the normal
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo, Diffusion: DefaultDiffusion}
}

// NewLambertianWithDiffusion creates a lambertian material with a custom diffusion scalar
func NewLambertianWithDiffusion(albedo core.Vec3, diffusion float64) *Lambertian {
	return &Lambertian{Albedo: albedo, Diffusion: diffusion}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler).Multiply(l.Diffusion))

	// Catch degenerate scatter direction
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}
