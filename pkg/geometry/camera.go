package geometry

import (
	"math"

	"github.com/df07/go-live-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height ratio
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the focal plane, 0 = distance to LookAt
}

// Camera generates rays for rendering. The struct holds no pointers, so a
// plain copy is a consistent snapshot that later moves cannot disturb.
type Camera struct {
	config CameraConfig

	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3

	viewportWidth  float64
	viewportHeight float64
	lensRadius     float64
	focusDistance  float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h

	camera := &Camera{
		config:         config,
		origin:         config.Center,
		viewportHeight: viewportHeight,
		viewportWidth:  config.AspectRatio * viewportHeight,
		lensRadius:     config.Aperture / 2,
	}
	camera.updateBasis()

	return camera
}

// updateBasis derives the orthonormal basis and viewport from the current origin
func (c *Camera) updateBasis() {
	c.w = c.origin.Subtract(c.config.LookAt).Normalize()
	c.u = c.config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.focusDistance = c.config.FocusDistance
	if c.focusDistance <= 0 {
		c.focusDistance = c.origin.Subtract(c.config.LookAt).Length()
	}

	c.horizontal = c.u.Multiply(c.focusDistance * c.viewportWidth)
	c.vertical = c.v.Multiply(c.focusDistance * c.viewportHeight)
	c.lowerLeftCorner = c.origin.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(c.w.Multiply(c.focusDistance))
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// t = 0 is the bottom edge of the viewport.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

// Move translates the camera along its own axes (X = right, Y = up, Z = back)
// and re-aims it at the unchanged look-at target. A step that would land on the
// target or look straight along Up leaves the pose unchanged and returns false.
func (c *Camera) Move(delta core.Vec3) bool {
	origin := c.origin.
		Add(c.u.Multiply(delta.X)).
		Add(c.v.Multiply(delta.Y)).
		Add(c.w.Multiply(delta.Z))
	if !ValidPose(origin, c.config.LookAt, c.config.Up) {
		return false
	}
	c.origin = origin
	c.config.Center = c.origin
	c.updateBasis()
	return true
}

const (
	minViewDistance = 1e-6
	minBasisLength  = 1e-6
)

// ValidPose reports whether a camera at origin aimed at lookAt has a well-defined basis
func ValidPose(origin, lookAt, up core.Vec3) bool {
	view := origin.Subtract(lookAt)
	if view.Length() < minViewDistance {
		return false
	}
	return up.Cross(view.Normalize()).Length() >= minBasisLength
}

// Origin returns the camera position
func (c Camera) Origin() core.Vec3 {
	return c.origin
}

// Basis returns the right (u), up (v) and backward (w) camera axes
func (c Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// GetCameraForward returns the viewing direction
func (c Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// FocusDistance returns the distance to the plane in perfect focus
func (c Camera) FocusDistance() float64 {
	return c.focusDistance
}

// Config returns the configuration, with Center tracking the current position
func (c Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels derived from width and aspect ratio
func (c Camera) Height() int {
	if c.config.AspectRatio <= 0 {
		return c.config.Width
	}
	return max(1, int(float64(c.config.Width)/c.config.AspectRatio))
}
