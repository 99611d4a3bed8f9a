package scene

import (
	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
	"github.com/df07/go-live-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Description    string
	CameraConfig   geometry.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	Background     integrator.Background
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Samples per pixel for batch renders
	MaxDepth        int // Maximum ray bounce depth
}

// AddSphere appends a sphere and returns its index in the world
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) int {
	if s.World == nil {
		s.World = geometry.NewHittableList()
	}
	return s.World.Add(geometry.NewSphere(center, radius, mat))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}

// GetCamera returns the initial camera pose
func (s *Scene) GetCamera() geometry.CameraConfig {
	return s.CameraConfig
}

// GetWorld returns the scene geometry
func (s *Scene) GetWorld() geometry.Shape {
	if s.World == nil {
		return geometry.NewHittableList()
	}
	return s.World
}

// GetIntegrator returns a path tracer bound to the scene's background and depth
func (s *Scene) GetIntegrator() integrator.Integrator {
	return integrator.NewPathTracingIntegrator(
		integrator.SamplingConfig{MaxDepth: s.SamplingConfig.MaxDepth},
		s.Background,
	)
}
