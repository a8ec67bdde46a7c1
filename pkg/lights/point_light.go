// Package lights holds the light sources used for shading.
package lights

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no size and no distance falloff
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light. The position must be a point.
func NewPointLight(position core.Tuple, intensity core.Color) (PointLight, error) {
	if !position.IsPoint() {
		return PointLight{}, fmt.Errorf("point light position %v is not a point", position)
	}
	return PointLight{Position: position, Intensity: intensity}, nil
}

// SampleDirection returns the unit vector from point toward the light and the distance to it
func (pl PointLight) SampleDirection(point core.Tuple) (core.Tuple, float64) {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Magnitude()
	return toLight.Normalize(), distance
}
