package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// intersectPlane intersects an object-space ray with the xz plane
func (s *Shape) intersectPlane(ray core.Ray) Intersections {
	// Parallel and coplanar rays never report a hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return NewIntersections(NewIntersection(t, s))
}

// planeNormal is constant everywhere on the plane
func planeNormal(objectPoint core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
