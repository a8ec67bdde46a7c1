package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// intersectSphere solves the ray/unit-sphere quadratic for an object-space ray
func (s *Shape) intersectSphere(ray core.Ray) Intersections {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// Both roots are kept, including a repeated root at a tangent
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return NewIntersections(NewIntersection(t1, s), NewIntersection(t2, s))
}

// sphereNormal points from the center to the object-space surface point
func sphereNormal(objectPoint core.Tuple) core.Tuple {
	return objectPoint.Subtract(core.NewPoint(0, 0, 0))
}
