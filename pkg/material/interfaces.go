package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ObjectSpace converts world-space points into the local space of the object
// being shaded. Implemented by geometry shapes.
type ObjectSpace interface {
	WorldToObject(worldPoint core.Tuple) core.Tuple
}

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// ColorAtObject returns the color at a point given in object space
	ColorAtObject(objectPoint core.Tuple) core.Color
}
