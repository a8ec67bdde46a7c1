package core

import "errors"

var (
	// ErrInvalidRay is returned when a ray origin is not a point or its direction is not a vector
	ErrInvalidRay = errors.New("invalid ray")

	// ErrSingularMatrix is returned when an inverse is requested for a matrix with a zero determinant
	ErrSingularMatrix = errors.New("matrix is not invertible")

	// ErrDegenerateView is returned when a view transform cannot build an orthonormal basis
	ErrDegenerateView = errors.New("degenerate view transform")
)
