package geometry

import (
	"math"

	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/material"
)

// degenerateEpsilon guards the quadratic against zero-length ray directions
const degenerateEpsilon = 1e-12

// Sphere represents a sphere shape. A negative radius flips the normals inward,
// which turns the sphere into the inner wall of a hollow glass shell.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit returns the nearest intersection with t in [tMin, tMax]
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	a := ray.Direction.LengthSquared()
	if a < degenerateEpsilon || s.Radius == 0 {
		return nil, false
	}

	// |o + t*d - c|^2 = r^2 written as a*t^2 + 2*halfB*t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	root, ok := nearestRoot(halfB, math.Sqrt(discriminant), a, tMin, tMax)
	if !ok {
		return nil, false
	}

	point := ray.At(root)
	hit := &material.HitRecord{T: root, Point: point, Material: s.Material}
	// Dividing by the signed radius points the normal inward for negative spheres
	hit.SetFaceNormal(ray, point.Subtract(s.Center).Multiply(1/s.Radius))

	return hit, true
}

// nearestRoot picks the smaller quadratic root inside [tMin, tMax], falling back to the larger
func nearestRoot(halfB, sqrtD, a, tMin, tMax float64) (float64, bool) {
	for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if root >= tMin && root <= tMax {
			return root, true
		}
	}
	return 0, false
}
