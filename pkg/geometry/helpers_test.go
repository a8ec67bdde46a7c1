package geometry

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func mustRay(t *testing.T, origin, direction core.Tuple) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("Unexpected ray error: %v", err)
	}
	return ray
}

func mustSphere(t *testing.T, transform core.Matrix4) *Shape {
	t.Helper()
	config := DefaultConfig()
	config.Transform = transform
	sphere, err := NewSphere(config)
	if err != nil {
		t.Fatalf("Unexpected sphere error: %v", err)
	}
	return sphere
}

func mustPlane(t *testing.T, transform core.Matrix4) *Shape {
	t.Helper()
	config := DefaultConfig()
	config.Transform = transform
	plane, err := NewPlane(config)
	if err != nil {
		t.Fatalf("Unexpected plane error: %v", err)
	}
	return plane
}

func tValues(xs Intersections) []float64 {
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}
