package material

import (
	"github.com/df07/go-live-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// A ray reaching a light is absorbed and the path ends there.
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light for this material
func (e *Emissive) Emit() (core.Vec3, bool) {
	return e.Emission, true
}
