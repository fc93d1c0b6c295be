package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func hexColor(c core.Vec3) string {
	c = core.Clamp(c, 0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X()*255), int(c.Y()*255), int(c.Z()*255))
}

// extractMaterialInfo describes a material with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = [3]float32(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = [3]float32(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzziness"] = m.Fuzziness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff"
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes a shape
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float32(geom.Center)
		properties["radius"] = geom.Radius
		properties["hollow"] = geom.Radius < 0
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// InspectResult contains the hit record and the shape an inspection ray found
type InspectResult struct {
	Hit       bool
	HitRecord material.HitRecord
	Shape     geometry.Shape
}

// inspectPixel casts a ray through the center of pixel (pixelX, pixelY),
// y counted from the top, and reports the first object hit
func inspectPixel(sc *scene.Scene, width, height, pixelX, pixelY int) InspectResult {
	// A fixed seed gives the same lens sample on every call
	sampler := core.NewSeededSampler(0)
	s := (float32(pixelX) + 0.5) / float32(width)
	t := (float32(height-1-pixelY) + 0.5) / float32(height)
	ray := sc.GetCamera().GetRay(s, t, sampler)

	hit, isHit := sc.Hit(ray, integrator.ShadowAcneEpsilon, math32.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// Scene.Hit does not report the shape, so find the one at the same distance
	for _, shape := range sc.Shapes {
		if shapeHit, ok := shape.Hit(ray, integrator.ShadowAcneEpsilon, math32.Inf(1)); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid scene parameters: "+err.Error())
	}

	pixelX, err := strconv.Atoi(c.QueryParam("x"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid x coordinate")
	}
	pixelY, err := strconv.Atoi(c.QueryParam("y"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid y coordinate")
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		return errorJSON(c, http.StatusBadRequest, "pixel coordinates out of bounds")
	}

	preset, err := scene.Lookup(req.Scene)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	result := inspectPixel(preset.Build(req.sceneOptions()), req.Width, req.Height, pixelX, pixelY)
	if !result.Hit {
		return c.JSON(http.StatusOK, InspectResponse{Hit: false})
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	return c.JSON(http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        [3]float32(result.HitRecord.Point),
		Normal:       [3]float32(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
