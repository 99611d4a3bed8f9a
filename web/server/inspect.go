package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
	"github.com/df07/go-live-raytracer/pkg/material"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeIndex   int                    `json:"shapeIndex"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func vecToHex(v core.Vec3) string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecToArray(m.Albedo)
		properties["color"] = vecToHex(m.Albedo)
		properties["diffusion"] = m.Diffusion
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecToArray(m.Albedo)
		properties["color"] = vecToHex(m.Albedo)
		properties["fuzz"] = m.Fuzz
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.Emissive:
		properties["emission"] = vecToArray(m.Emission)
		properties["color"] = vecToHex(m.Emission)
		return "light", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecToArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of pixel (x, y), row 0 at the top,
// and reports the nearest shape it hits
func inspectPixel(camera geometry.Camera, world geometry.Shape, width, height, x, y int) InspectResponse {
	s := (float64(x) + 0.5) / float64(width)
	t := (float64(height-1-y) + 0.5) / float64(height)

	// Fixed stream so inspecting a defocused camera is repeatable
	sampler := core.NewSeededSampler(0, uint64(y)*uint64(width)+uint64(x))
	ray := camera.GetRay(s, t, sampler)

	var (
		hit   *material.HitRecord
		index = -1
		isHit bool
		shape geometry.Shape
	)
	if list, ok := world.(*geometry.HittableList); ok {
		hit, index, isHit = list.HitIndex(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
		if isHit {
			shape = list.Shape(index)
		}
	} else {
		hit, isHit = world.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	}

	if !isHit {
		return InspectResponse{Hit: false, ShapeIndex: -1}
	}

	materialType, materialProps := extractMaterialInfo(hit.Material)
	geometryType, geometryProps := extractGeometryInfo(shape)

	return InspectResponse{
		Hit:          true,
		ShapeIndex:   index,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecToArray(hit.Point),
		Normal:       vecToArray(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

// handleInspect reports what a running session sees through one pixel
func (s *Server) handleInspect(c echo.Context) error {
	sess, ok := s.getSession(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown render session: " + c.Param("id")})
	}

	pixelX, err := strconv.Atoi(c.QueryParam("x"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
	}
	pixelY, err := strconv.Atoi(c.QueryParam("y"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
	}

	camera := sess.raytracer.Camera()
	width, height := camera.Width(), camera.Height()
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
	}

	return c.JSON(http.StatusOK, inspectPixel(camera, sess.raytracer.World(), width, height, pixelX, pixelY))
}
