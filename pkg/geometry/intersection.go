package geometry

import (
	"cmp"
	"slices"
)

// Intersection is a ray parameter at which a ray meets a shape
type Intersection struct {
	T      float64
	Object *Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections kept sorted ascending by T
type Intersections []Intersection

// NewIntersections collects intersections into a sorted list
func NewIntersections(xs ...Intersection) Intersections {
	sorted := append(Intersections(nil), xs...)
	slices.SortStableFunc(sorted, compareT)
	return sorted
}

// Merge returns a new sorted list containing the intersections of both lists
func (xs Intersections) Merge(other Intersections) Intersections {
	merged := make(Intersections, 0, len(xs)+len(other))
	merged = append(merged, xs...)
	merged = append(merged, other...)
	slices.SortStableFunc(merged, compareT)
	return merged
}

// Hit returns the intersection with the smallest positive t.
// Intersections at or behind the ray origin are never a hit.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, i := range xs {
		if i.T > 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

func compareT(a, b Intersection) int {
	return cmp.Compare(a.T, b.T)
}
