package material

import (
	"math"

	"github.com/df07/go-live-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	noEmission
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter either reflects or refracts. Total internal reflection forces a
// reflection; otherwise the Schlick reflectance is the probability of reflecting.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1 / d.RefractiveIndex
	}

	in := rayIn.Direction.Normalize()
	cosTheta := math.Min(in.Negate().Dot(hit.Normal), 1)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	out := core.Refract(in, hit.Normal, eta)
	if eta*sinTheta > 1 || Reflectance(cosTheta, eta) > sampler.Get1D() {
		out = core.Reflect(in, hit.Normal)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, out),
		Attenuation: core.NewVec3(1, 1, 1), // glass absorbs nothing
	}, true
}

// Reflectance is Schlick's approximation of the Fresnel reflectance at the given cosine
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
