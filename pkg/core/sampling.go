package core

import (
	"math"
	"math/rand/v2"
)

// Sampler hands out uniform random numbers in [0, 1). Materials and cameras draw
// through it so tests can substitute scripted sequences.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// PCGSampler draws from a PCG generator
type PCGSampler struct {
	rng *rand.Rand
}

// NewSeededSampler returns a sampler for the PCG stream (seed, stream).
// The same pair always yields the same sequence.
func NewSeededSampler(seed, stream uint64) *PCGSampler {
	return &PCGSampler{rng: rand.New(rand.NewPCG(seed, stream))}
}

func (p *PCGSampler) Get1D() float64 {
	return p.rng.Float64()
}

func (p *PCGSampler) Get2D() Vec2 {
	return Vec2{X: p.rng.Float64(), Y: p.rng.Float64()}
}

func (p *PCGSampler) Get3D() Vec3 {
	return Vec3{X: p.rng.Float64(), Y: p.rng.Float64(), Z: p.rng.Float64()}
}

// SampleOnUnitSphere maps a uniform square sample to a uniform direction.
// X picks the height z in [-1, 1], Y the azimuth.
func SampleOnUnitSphere(u Vec2) Vec3 {
	z := 1 - 2*u.X
	ring := math.Sqrt(math.Max(0, 1-z*z))
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * u.Y)
	return Vec3{X: ring * cosPhi, Y: ring * sinPhi, Z: z}
}

// SamplePointInUnitSphere maps a uniform cube sample to a uniform point in the
// ball. The cube root of X keeps the density constant in volume.
func SamplePointInUnitSphere(u Vec3) Vec3 {
	dir := SampleOnUnitSphere(Vec2{X: 1 - u.Z, Y: u.Y})
	return dir.Multiply(math.Cbrt(u.X))
}

// SamplePointInUnitDisk maps a uniform square sample to the unit disk on the XY
// plane with Shirley's concentric mapping; the center of the square maps to the origin.
func SamplePointInUnitDisk(u Vec2) Vec3 {
	a, b := 2*u.X-1, 2*u.Y-1
	if a == 0 && b == 0 {
		return Vec3{}
	}

	var r, theta float64
	if math.Abs(a) > math.Abs(b) {
		r, theta = a, (math.Pi/4)*(b/a)
	} else {
		r, theta = b, math.Pi/2-(math.Pi/4)*(a/b)
	}

	sinT, cosT := math.Sincos(theta)
	return Vec3{X: r * cosT, Y: r * sinT}
}

func RandomUnitVector(s Sampler) Vec3 {
	return SampleOnUnitSphere(s.Get2D())
}

func RandomInUnitSphere(s Sampler) Vec3 {
	return SamplePointInUnitSphere(s.Get3D())
}

func RandomInUnitDisk(s Sampler) Vec3 {
	return SamplePointInUnitDisk(s.Get2D())
}
