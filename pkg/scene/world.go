package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// World is a list of shapes lit by a single point light.
// A world must not be modified while a render is reading it.
type World struct {
	Shapes []*geometry.Shape
	Light  lights.PointLight
}

// NewWorld creates a world from a light and any number of shapes
func NewWorld(light lights.PointLight, shapes ...*geometry.Shape) *World {
	return &World{
		Shapes: append([]*geometry.Shape(nil), shapes...),
		Light:  light,
	}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...*geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Intersect tests the ray against every shape and returns all hits sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = xs.Merge(shape.Intersect(ray))
	}
	return xs
}

// ShadeHit returns the color at a prepared intersection, including the shadow test
func (w *World) ShadeHit(comps geometry.Computations) core.Color {
	shadowed := w.IsShadowed(comps.OverPoint)
	return comps.Object.Material().Lighting(comps.Object, w.Light, comps.Point, comps.Eye, comps.Normal, shadowed)
}

// ColorAt returns the color seen along ray, or black when nothing is hit
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black()
	}
	return w.ShadeHit(geometry.PrepareComputations(hit, ray))
}

// IsShadowed reports whether an object lies between point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	direction, distance := w.Light.SampleDirection(point)
	// point and direction are already well formed, skip NewRay validation
	shadowRay := core.Ray{Origin: point, Direction: direction}

	hit, ok := w.Intersect(shadowRay).Hit()
	return ok && hit.T < distance
}

// DefaultWorld creates the two concentric spheres lit from the upper left
// that the shading tests are written against.
func DefaultWorld() (*World, error) {
	light, err := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())
	if err != nil {
		return nil, err
	}

	outerConfig := geometry.DefaultConfig()
	outerConfig.Material.Color = core.NewColor(0.8, 1.0, 0.6)
	outerConfig.Material.Diffuse = 0.7
	outerConfig.Material.Specular = 0.2
	outer, err := geometry.NewSphere(outerConfig)
	if err != nil {
		return nil, fmt.Errorf("outer sphere: %w", err)
	}

	innerConfig := geometry.DefaultConfig()
	innerConfig.Transform = core.Scaling(0.5, 0.5, 0.5)
	inner, err := geometry.NewSphere(innerConfig)
	if err != nil {
		return nil, fmt.Errorf("inner sphere: %w", err)
	}

	return NewWorld(light, outer, inner), nil
}
