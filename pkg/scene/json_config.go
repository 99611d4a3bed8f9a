package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
	"github.com/df07/go-live-raytracer/pkg/material"
)

// Default values for optional scene file fields
const (
	DefaultWidth           = 400
	DefaultSamplesPerPixel = 100
	DefaultMaxDepth        = 10
)

// Vec3Cfg is a vector written as a three element JSON array
type Vec3Cfg [3]float64

func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func (v Vec3Cfg) isZero() bool {
	return v == Vec3Cfg{}
}

type CameraCfg struct {
	LookFrom      Vec3Cfg `json:"lookFrom"`
	LookAt        Vec3Cfg `json:"lookAt"`
	Up            Vec3Cfg `json:"up"` // defaults to +Y
	Width         int     `json:"width,omitempty"`
	AspectRatio   float64 `json:"aspectRatio"`
	VFov          float64 `json:"vfov"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focusDistance,omitempty"` // 0 = distance to lookAt
}

type BackgroundCfg struct {
	Zenith  Vec3Cfg `json:"zenith"`
	Horizon Vec3Cfg `json:"horizon"`
}

type SamplingCfg struct {
	SamplesPerPixel int `json:"samplesPerPixel,omitempty"`
	MaxDepth        int `json:"maxDepth,omitempty"`
}

// MaterialCfg describes one material. Type is lambertian, metal, dielectric or light.
type MaterialCfg struct {
	Type            string  `json:"type"`
	Albedo          Vec3Cfg `json:"albedo"`
	Diffusion       float64 `json:"diffusion,omitempty"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
	Emission        Vec3Cfg `json:"emission"`
}

type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"` // key into Config.Materials
}

// Config is the on-disk scene description
type Config struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Camera      CameraCfg              `json:"camera"`
	Background  BackgroundCfg          `json:"background"`
	Sampling    SamplingCfg            `json:"sampling"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Spheres     []SphereCfg            `json:"spheres"`
}

// Build validates the material parameters and constructs it
func (mc MaterialCfg) Build() (material.Material, error) {
	switch mc.Type {
	case "lambertian":
		if mc.Diffusion < 0 {
			return nil, fmt.Errorf("diffusion must be >= 0, got %g", mc.Diffusion)
		}
		if mc.Diffusion == 0 {
			return material.NewLambertian(mc.Albedo.Vec3()), nil
		}
		return material.NewLambertianWithDiffusion(mc.Albedo.Vec3(), mc.Diffusion), nil
	case "metal":
		if mc.Fuzz < 0 || mc.Fuzz > 1 {
			return nil, fmt.Errorf("fuzz must be in [0,1], got %g", mc.Fuzz)
		}
		return material.NewMetal(mc.Albedo.Vec3(), mc.Fuzz), nil
	case "dielectric":
		if mc.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("refractive index must be > 0, got %g", mc.RefractiveIndex)
		}
		return material.NewDielectric(mc.RefractiveIndex), nil
	case "light":
		return material.NewEmissive(mc.Emission.Vec3()), nil
	}
	return nil, fmt.Errorf("unknown material type %q", mc.Type)
}

// Build validates the camera and fills in defaults
func (cc CameraCfg) Build() (geometry.CameraConfig, error) {
	if cc.Width == 0 {
		cc.Width = DefaultWidth
	}
	if cc.Up.isZero() {
		cc.Up = Vec3Cfg{0, 1, 0}
	}

	switch {
	case cc.Width < 0:
		return geometry.CameraConfig{}, fmt.Errorf("width must be > 0, got %d", cc.Width)
	case cc.AspectRatio <= 0:
		return geometry.CameraConfig{}, fmt.Errorf("aspect ratio must be > 0, got %g", cc.AspectRatio)
	case cc.VFov <= 0 || cc.VFov >= 180:
		return geometry.CameraConfig{}, fmt.Errorf("vfov must be in (0,180), got %g", cc.VFov)
	case cc.Aperture < 0:
		return geometry.CameraConfig{}, fmt.Errorf("aperture must be >= 0, got %g", cc.Aperture)
	case cc.FocusDistance < 0:
		return geometry.CameraConfig{}, fmt.Errorf("focus distance must be >= 0, got %g", cc.FocusDistance)
	case cc.LookFrom == cc.LookAt:
		return geometry.CameraConfig{}, fmt.Errorf("lookFrom and lookAt must differ")
	case !geometry.ValidPose(cc.LookFrom.Vec3(), cc.LookAt.Vec3(), cc.Up.Vec3()):
		return geometry.CameraConfig{}, fmt.Errorf("up %v must not be parallel to the view direction", cc.Up.Vec3())
	}

	return geometry.CameraConfig{
		Center:        cc.LookFrom.Vec3(),
		LookAt:        cc.LookAt.Vec3(),
		Up:            cc.Up.Vec3(),
		Width:         cc.Width,
		AspectRatio:   cc.AspectRatio,
		VFov:          cc.VFov,
		Aperture:      cc.Aperture,
		FocusDistance: cc.FocusDistance,
	}, nil
}

// Build validates the whole description and constructs the scene.
// Spheres naming the same material share one instance.
func (c *Config) Build() (*Scene, error) {
	camera, err := c.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: camera: %v", ErrInvalidScene, err)
	}

	sampling := SamplingConfig{
		SamplesPerPixel: c.Sampling.SamplesPerPixel,
		MaxDepth:        c.Sampling.MaxDepth,
	}
	if sampling.SamplesPerPixel <= 0 {
		sampling.SamplesPerPixel = DefaultSamplesPerPixel
	}
	if sampling.MaxDepth <= 0 {
		sampling.MaxDepth = DefaultMaxDepth
	}

	// Build materials in a stable order so errors are reproducible
	names := make([]string, 0, len(c.Materials))
	for name := range c.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(names))
	for _, name := range names {
		mat, err := c.Materials[name].Build()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %v", ErrInvalidScene, name, err)
		}
		materials[name] = mat
	}

	s := &Scene{
		Name:         c.Name,
		Description:  c.Description,
		CameraConfig: camera,
		World:        geometry.NewHittableList(),
		Background: integrator.Background{
			Zenith:  c.Background.Zenith.Vec3(),
			Horizon: c.Background.Horizon.Vec3(),
		},
		SamplingConfig: sampling,
	}

	for i, sc := range c.Spheres {
		mat, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d: unknown material %q", ErrInvalidScene, i, sc.Material)
		}
		if sc.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere %d: radius must be non-zero", ErrInvalidScene, i)
		}
		s.AddSphere(sc.Center.Vec3(), sc.Radius, mat)
	}

	return s, nil
}

// Parse decodes and builds a scene from JSON
func Parse(data []byte) (*Scene, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return cfg.Build()
}

// LoadFile reads a JSON scene file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
