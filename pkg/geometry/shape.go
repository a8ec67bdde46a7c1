package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

type ShapeType string

const (
	ShapeSphere ShapeType = "sphere"
	ShapePlane  ShapeType = "plane"
)

// Config holds the construction parameters shared by every shape
type Config struct {
	Transform core.Matrix4      // Object-to-world transform, default identity
	Material  material.Material // Default material.DefaultMaterial()
}

// DefaultConfig returns an identity transform and the default material
func DefaultConfig() Config {
	return Config{
		Transform: core.IdentityMatrix(),
		Material:  material.DefaultMaterial(),
	}
}

// Shape is one of a closed set of primitives defined in object space and
// placed in the world by its transform
type Shape struct {
	shapeType        ShapeType
	transform        core.Matrix4
	inverse          core.Matrix4
	inverseTranspose core.Matrix4
	material         material.Material
}

// NewSphere creates a unit sphere centered at the object-space origin
func NewSphere(config Config) (*Shape, error) {
	return newShape(ShapeSphere, config)
}

// NewPlane creates the object-space xz plane with normal (0, 1, 0)
func NewPlane(config Config) (*Shape, error) {
	return newShape(ShapePlane, config)
}

func newShape(shapeType ShapeType, config Config) (*Shape, error) {
	inverse, err := config.Transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s transform: %w", shapeType, err)
	}
	if err := config.Material.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", shapeType, err)
	}

	return &Shape{
		shapeType:        shapeType,
		transform:        config.Transform,
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
		material:         config.Material,
	}, nil
}

// Type returns the primitive kind
func (s *Shape) Type() ShapeType {
	return s.shapeType
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix4 {
	return s.transform
}

// Material returns the surface material
func (s *Shape) Material() material.Material {
	return s.material
}

// WorldToObject converts a world-space point into object space
func (s *Shape) WorldToObject(worldPoint core.Tuple) core.Tuple {
	return s.inverse.MultiplyTuple(worldPoint)
}

// Intersect returns every intersection of the ray with the shape, sorted by t.
// Intersections behind the ray origin are included.
func (s *Shape) Intersect(ray core.Ray) Intersections {
	local := ray.Transform(s.inverse)

	switch s.shapeType {
	case ShapeSphere:
		return s.intersectSphere(local)
	case ShapePlane:
		return s.intersectPlane(local)
	default:
		return nil
	}
}

// NormalAt returns the world-space unit normal at a world-space point on the surface
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.WorldToObject(worldPoint)

	var objectNormal core.Tuple
	switch s.shapeType {
	case ShapeSphere:
		objectNormal = sphereNormal(objectPoint)
	case ShapePlane:
		objectNormal = planeNormal(objectPoint)
	}

	worldNormal := s.inverseTranspose.MultiplyTuple(objectNormal)
	// the inverse transpose of a translation leaks into w
	worldNormal.W = 0
	return worldNormal.Normalize()
}
