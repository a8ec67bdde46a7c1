package core

import "fmt"

// Ray represents a ray with an origin point and direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray. The origin must be a point and the direction a vector.
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() {
		return Ray{}, fmt.Errorf("%w: origin %v is not a point", ErrInvalidRay, origin)
	}
	if !direction.IsVector() {
		return Ray{}, fmt.Errorf("%w: direction %v is not a vector", ErrInvalidRay, direction)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both the origin and the direction
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{Origin: m.MultiplyTuple(r.Origin), Direction: m.MultiplyTuple(r.Direction)}
}
