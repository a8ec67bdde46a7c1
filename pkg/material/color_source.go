package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAtObject returns the solid color regardless of position
func (s *SolidColor) ColorAtObject(objectPoint core.Tuple) core.Color {
	return s.Color
}

// colorAt resolves the surface color for a world point, using object space
// only when a pattern needs it
func colorAt(source ColorSource, object ObjectSpace, worldPoint core.Tuple) core.Color {
	if _, solid := source.(*SolidColor); solid || object == nil {
		return source.ColorAtObject(worldPoint)
	}
	return source.ColorAtObject(object.WorldToObject(worldPoint))
}
