package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	GeometryType string         `json:"geometryType,omitempty"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"`
	Distance     float64        `json:"distance"`
	Inside       bool           `json:"inside"`
	N1           float64        `json:"n1"`
	N2           float64        `json:"n2"`
	Color        [3]float64     `json:"color"`
	Groups       []uint64       `json:"groups,omitempty"` // Enclosing group ids, innermost first
	Properties   map[string]any `json:"properties,omitempty"`
}

// inspectPixel casts the camera ray through pixel (x, y) and describes the
// first surface it hits
func inspectPixel(sceneObj *scene.Scene, x, y, maxDepth int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(x, y)
	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false}
	}

	comps := integrator.PrepareComputations(hit, ray, xs)
	color := integrator.NewWhitted(nil).ShadeHit(sceneObj.World, comps, maxDepth)
	geometryType, geometryProps := extractGeometryInfo(hit.Object)

	var groups []uint64
	for g := hit.Object.Parent(); g != nil; g = g.Parent() {
		groups = append(groups, g.ID())
	}

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vec(comps.Point),
		Normal:       vec(comps.Normal),
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        vec(color),
		Groups:       groups,
		Properties: map[string]any{
			"material": extractMaterialInfo(*hit.Object.Material()),
			"geometry": geometryProps,
		},
	}
}

// extractMaterialInfo lists the shading parameters of a material
func extractMaterialInfo(m material.Material) map[string]any {
	properties := map[string]any{
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
		"castsShadow":     !m.NoCastShadow,
	}

	switch p := m.Pattern.(type) {
	case nil:
		properties["color"] = hexColor(m.Color)
	case *material.StripePattern:
		properties["pattern"] = "stripes"
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
	case *material.RingPattern:
		properties["pattern"] = "rings"
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
	case *material.GradientPattern:
		properties["pattern"] = "gradient"
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
	case *material.CheckersPattern:
		properties["pattern"] = "checkers"
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
	default:
		properties["pattern"] = fmt.Sprintf("%T", p)
	}
	return properties
}

// extractGeometryInfo names the primitive and its shape-specific parameters
func extractGeometryInfo(shape geometry.Shape) (string, map[string]any) {
	properties := make(map[string]any)

	switch geom := shape.(type) {
	case *geometry.Sphere:
		return "sphere", properties
	case *geometry.Plane:
		return "plane", properties
	case *geometry.Cube:
		return "cube", properties
	case *geometry.Cylinder:
		addBounds(properties, geom.Minimum, geom.Maximum, geom.Closed)
		return "cylinder", properties
	case *geometry.Cone:
		addBounds(properties, geom.Minimum, geom.Maximum, geom.Closed)
		return "cone", properties
	default:
		return "unknown", properties
	}
}

// addBounds records finite bounds only; JSON has no infinity
func addBounds(properties map[string]any, minimum, maximum float64, closed bool) {
	if !math.IsInf(minimum, 0) {
		properties["minimum"] = minimum
	}
	if !math.IsInf(maximum, 0) {
		properties["maximum"] = maximum
	}
	properties["closed"] = closed
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := sceneObj.Camera
	if pixelX < 0 || pixelX >= camera.HSize || pixelY < 0 || pixelY >= camera.VSize {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY, req.MaxDepth))
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// hexColor formats a color as #rrggbb, clamping each channel
func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255+0.5), int(c.Y*255+0.5), int(c.Z*255+0.5))
}
