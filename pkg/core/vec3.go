package core

import "math"

// nearZeroEpsilon is the per-component threshold below which a vector counts as degenerate
const nearZeroEpsilon = 1e-8

// Vec2 holds a pair of samples
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec3 is a point, a direction or a linear RGB color
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Subtract(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Multiply scales every component by s
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MultiplyVec is the component-wise (Hadamard) product, used to tint colors
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross follows the right-hand rule
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length; the zero vector stays zero
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// NearZero reports whether every component is within nearZeroEpsilon of zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}

// Clamp limits each component to [lo, hi]
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 { return max(lo, min(hi, x)) }
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// GammaCorrect raises each component to 1/gamma; negative components become 0
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	inv := 1 / gamma
	return Vec3{
		math.Pow(max(0, v.X), inv),
		math.Pow(max(0, v.Y), inv),
		math.Pow(max(0, v.Z), inv),
	}
}

// Lerp blends from v at t = 0 to o at t = 1
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Multiply(1 - t).Add(o.Multiply(t))
}

// Reflect mirrors v about the unit normal n
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n, where
// etaRatio is the incident index over the transmitted index
func Refract(uv, n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1)
	perp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1 - perp.LengthSquared())))
	return perp.Add(parallel)
}

// Ray is the half-line Origin + t*Direction. Direction need not be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
