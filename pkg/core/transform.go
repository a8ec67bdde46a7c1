package core

import (
	"fmt"
	"math"
)

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix4 {
	m := IdentityMatrix()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix4 {
	m := IdentityMatrix()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation of r radians around the x axis
func RotationX(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	m := IdentityMatrix()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a rotation of r radians around the y axis
func RotationY(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	m := IdentityMatrix()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a rotation of r radians around the z axis
func RotationZ(r float64) Matrix4 {
	sin, cos := math.Sincos(r)
	m := IdentityMatrix()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y" and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := IdentityMatrix()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Translate applies a translation after m
func (m Matrix4) Translate(x, y, z float64) Matrix4 {
	return Translation(x, y, z).Multiply(m)
}

// Scale applies a scaling after m
func (m Matrix4) Scale(x, y, z float64) Matrix4 {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX applies an x rotation after m
func (m Matrix4) RotateX(r float64) Matrix4 {
	return RotationX(r).Multiply(m)
}

// RotateY applies a y rotation after m
func (m Matrix4) RotateY(r float64) Matrix4 {
	return RotationY(r).Multiply(m)
}

// RotateZ applies a z rotation after m
func (m Matrix4) RotateZ(r float64) Matrix4 {
	return RotationZ(r).Multiply(m)
}

// Shear applies a shearing after m
func (m Matrix4) Shear(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}

// ViewTransform orients the world relative to an eye at from looking at to.
// up only needs to be roughly upward; the true up vector is recomputed.
func ViewTransform(from, to, up Tuple) (Matrix4, error) {
	forwardDir := to.Subtract(from)
	if FloatEqual(forwardDir.Magnitude(), 0) {
		return Matrix4{}, fmt.Errorf("%w: from %v and to %v coincide", ErrDegenerateView, from, to)
	}
	forward := forwardDir.Normalize()

	left := forward.Cross(up.Normalize())
	if FloatEqual(left.Magnitude(), 0) {
		return Matrix4{}, fmt.Errorf("%w: up %v is parallel to the view direction", ErrDegenerateView, up)
	}
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
