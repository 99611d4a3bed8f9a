package material

import (
	"github.com/df07/go-live-raytracer/pkg/core"
)

// Material is implemented by every surface type. The set is closed:
// Lambertian, Metal, Dielectric and Emissive.
type Material interface {
	// Scatter returns the attenuation and the continuation ray, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emit returns the emitted light, or false for materials that do not emit
	Emit() (core.Vec3, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always opposing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that never emit light
type noEmission struct{}

// Emit implements Material for non-emissive surfaces
func (noEmission) Emit() (core.Vec3, bool) {
	return core.Vec3{}, false
}
