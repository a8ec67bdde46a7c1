package geometry

import "github.com/df07/go-phong-raytracer/pkg/core"

// Computations holds the values needed to shade a hit
type Computations struct {
	T         float64
	Object    *Shape
	Point     core.Tuple // World-space hit point
	Eye       core.Tuple // Unit vector from the point toward the eye
	Normal    core.Tuple // Surface normal, flipped to face the eye
	Inside    bool       // Whether the ray started inside the object
	OverPoint core.Tuple // Point nudged along the normal for shadow rays
}

// PrepareComputations derives shading inputs for intersection hit along ray
func PrepareComputations(hit Intersection, ray core.Ray) Computations {
	point := ray.Position(hit.T)
	eye := ray.Direction.Negate()
	normal := hit.Object.NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return Computations{
		T:         hit.T,
		Object:    hit.Object,
		Point:     point,
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
		OverPoint: point.Add(normal.Multiply(core.Epsilon)),
	}
}
