package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong reflectance parameters of a surface.
// Coefficients are conventionally in [0, 1] but are not clamped.
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   *Pattern // Optional, overrides Color per point
}

// DefaultMaterial returns a white material with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200
func DefaultMaterial() Material {
	return Material{
		Color:     core.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate rejects non-finite parameters and a non-positive shininess
func (m Material) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"color red", m.Color.R},
		{"color green", m.Color.G},
		{"color blue", m.Color.B},
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("material %s must be finite, got %v", v.name, v.value)
		}
	}
	if m.Shininess <= 0 {
		return fmt.Errorf("material shininess must be positive, got %v", m.Shininess)
	}
	return nil
}

// colorSource returns the pattern if set, otherwise the solid color
func (m Material) colorSource() ColorSource {
	if m.Pattern != nil {
		return m.Pattern
	}
	return NewSolidColor(m.Color)
}

// Equals compares two materials within core.Epsilon. Patterns are compared by identity.
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		core.FloatEqual(m.Ambient, other.Ambient) &&
		core.FloatEqual(m.Diffuse, other.Diffuse) &&
		core.FloatEqual(m.Specular, other.Specular) &&
		core.FloatEqual(m.Shininess, other.Shininess) &&
		m.Pattern == other.Pattern
}
