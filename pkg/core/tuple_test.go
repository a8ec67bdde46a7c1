package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestTuple_PointAndVector(t *testing.T) {
	tests := []struct {
		name     string
		tuple    Tuple
		isPoint  bool
		isVector bool
	}{
		{"w=1 is a point", NewTuple(4.3, -4.2, 3.1, 1), true, false},
		{"w=0 is a vector", NewTuple(4.3, -4.2, 3.1, 0), false, true},
		{"NewPoint", NewPoint(4, -4, 3), true, false},
		{"NewVector", NewVector(4, -4, 3), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tuple.IsPoint() != tt.isPoint {
				t.Errorf("Expected IsPoint=%t for %v", tt.isPoint, tt.tuple)
			}
			if tt.tuple.IsVector() != tt.isVector {
				t.Errorf("Expected IsVector=%t for %v", tt.isVector, tt.tuple)
			}
		})
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{"point + vector", NewTuple(3, -2, 5, 1).Add(NewTuple(-2, 3, 1, 0)), NewTuple(1, 1, 6, 1)},
		{"point - point", NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)), NewVector(-2, -4, -6)},
		{"point - vector", NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewPoint(-2, -4, -6)},
		{"vector - vector", NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewVector(-2, -4, -6)},
		{"negate", NewTuple(1, -2, 3, -4).Negate(), NewTuple(-1, 2, -3, 4)},
		{"multiply by scalar", NewTuple(1, -2, 3, -4).Multiply(3.5), NewTuple(3.5, -7, 10.5, -14)},
		{"multiply by fraction", NewTuple(1, -2, 3, -4).Multiply(0.5), NewTuple(0.5, -1, 1.5, -2)},
		{"divide by scalar", NewTuple(1, -2, 3, -4).Divide(2), NewTuple(0.5, -1, 1.5, -2)},
		{"cross a x b", NewVector(1, 2, 3).Cross(NewVector(2, 3, 4)), NewVector(-1, 2, -1)},
		{"cross b x a", NewVector(2, 3, 4).Cross(NewVector(1, 2, 3)), NewVector(1, -2, 1)},
		{"normalize (4,0,0)", NewVector(4, 0, 0).Normalize(), NewVector(1, 0, 0)},
		{"normalize (1,2,3)", NewVector(1, 2, 3).Normalize(), NewVector(0.26726, 0.53452, 0.80178)},
		{"normalize zero", NewVector(0, 0, 0).Normalize(), NewVector(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_MagnitudeAndDot(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"magnitude (1,0,0)", NewVector(1, 0, 0).Magnitude(), 1},
		{"magnitude (0,1,0)", NewVector(0, 1, 0).Magnitude(), 1},
		{"magnitude (0,0,1)", NewVector(0, 0, 1).Magnitude(), 1},
		{"magnitude (1,2,3)", NewVector(1, 2, 3).Magnitude(), math.Sqrt(14)},
		{"magnitude (-1,-2,-3)", NewVector(-1, -2, -3).Magnitude(), math.Sqrt(14)},
		{"dot", NewVector(1, 2, 3).Dot(NewVector(2, 3, 4)), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !FloatEqual(tt.got, tt.expected) {
				t.Errorf("Expected %f, got %f", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		normal   Tuple
		expected Tuple
	}{
		{
			name:     "approaching at 45 degrees",
			v:        NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			v:        NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Reflect(tt.normal)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTuple_NormalizeHasUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := NewVector(random.Float64()*200-100, random.Float64()*200-100, random.Float64()*200-100)
		if v.Magnitude() < 1e-9 {
			continue
		}
		if length := v.Normalize().Magnitude(); !FloatEqual(length, 1) {
			t.Fatalf("Expected unit length for normalize(%v), got %f", v, length)
		}
	}
}

func TestTuple_EqualsTolerance(t *testing.T) {
	a := NewPoint(1, 2, 3)
	if !a.Equals(NewPoint(1+Epsilon/2, 2, 3)) {
		t.Error("Expected tuples within epsilon to be equal")
	}
	if a.Equals(NewPoint(1+Epsilon*2, 2, 3)) {
		t.Error("Expected tuples outside epsilon to differ")
	}
}
