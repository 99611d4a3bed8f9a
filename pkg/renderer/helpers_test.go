package renderer

import (
	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
	"github.com/df07/go-live-raytracer/pkg/material"
)

// testScene is a small scene with diffuse, metal and glass surfaces
type testScene struct {
	camera     geometry.CameraConfig
	world      *geometry.HittableList
	integrator integrator.Integrator
}

func (s *testScene) GetCamera() geometry.CameraConfig     { return s.camera }
func (s *testScene) GetWorld() geometry.Shape             { return s.world }
func (s *testScene) GetIntegrator() integrator.Integrator { return s.integrator }

func newTestScene(width int) *testScene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.1))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewDielectric(1.5)),
	)

	return &testScene{
		camera: geometry.CameraConfig{
			Center:      core.NewVec3(-2, 2, 1),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			Width:       width,
			AspectRatio: 2.0,
			VFov:        50,
		},
		world: world,
		integrator: integrator.NewPathTracingIntegrator(
			integrator.SamplingConfig{MaxDepth: 10},
			integrator.Background{Zenith: core.NewVec3(0.5, 0.7, 1.0), Horizon: core.NewVec3(0, 0, 0.4)},
		),
	}
}

// newTestPass builds a pass over a fresh buffer for the test scene
func newTestPass(scene *testScene, sample int, seed uint64) *Pass {
	camera := geometry.NewCamera(scene.camera)
	return &Pass{
		Sample:     sample,
		Camera:     *camera,
		World:      scene.world,
		Integrator: scene.integrator,
		Buffer:     NewRenderBuffer(camera.Width(), camera.Height()),
		Seed:       seed,
	}
}
