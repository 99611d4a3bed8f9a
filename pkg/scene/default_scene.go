package scene

import (
	"math"

	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
	"github.com/df07/go-live-raytracer/pkg/material"
)

var (
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
	darkBlue = core.NewVec3(0.0, 0.0, 0.4)
	white    = core.NewVec3(1.0, 1.0, 1.0)
)

// NewDefaultScene creates the live scene: a yellow ground, a large light sphere,
// diffuse and metal spheres and a hollow glass sphere
func NewDefaultScene() *Scene {
	s := &Scene{
		Name:        "default",
		Description: "Diffuse, metal and hollow glass spheres lit by a large light",
		CameraConfig: geometry.CameraConfig{
			Center:      core.NewVec3(-2, 2, 1),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			Width:       1000,
			AspectRatio: 16.0 / 9.0,
			VFov:        50,
			Aperture:    0,
		},
		World: geometry.NewHittableList(),
		Background: integrator.Background{
			Zenith:  skyBlue,
			Horizon: darkBlue,
		},
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        10,
		},
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.1))
	light := material.NewEmissive(core.NewVec3(1, 1, 1))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	left := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	glass := material.NewDielectric(1.5)
	rightmost := material.NewLambertian(core.NewVec3(0.6, 0.3, 1.0))
	last := material.NewMetal(core.NewVec3(0.2, 0.9, 0.8), 0.1)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(5, 5, 5), 5, light)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, left)

	// Negative inner radius flips the normals, leaving a thin glass shell
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), -0.45, glass)

	s.AddSphere(core.NewVec3(2, 0, -1), 0.5, rightmost)
	s.AddSphere(core.NewVec3(1.5, 0, -1-math.Sqrt(3)/2), 0.5, last)

	return s
}

// NewBasicScene creates the batch scene: one diffuse sphere resting on a huge one
// under a white to sky blue gradient
func NewBasicScene() *Scene {
	s := &Scene{
		Name:        "basic",
		Description: "A grey sphere on a grey ground under a white to blue sky",
		CameraConfig: geometry.CameraConfig{
			Center:      core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			Width:       1080,
			AspectRatio: 16.0 / 9.0,
			VFov:        90,
		},
		World: geometry.NewHittableList(),
		Background: integrator.Background{
			Zenith:  skyBlue,
			Horizon: white,
		},
		SamplingConfig: SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	grey := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, grey)
	s.AddSphere(core.NewVec3(1, -500.5, -1), 500, grey)

	return s
}
