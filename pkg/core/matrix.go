package core

import "fmt"

// Matrix2 is a row-major 2x2 matrix
type Matrix2 [2][2]float64

// Matrix3 is a row-major 3x3 matrix
type Matrix3 [3][3]float64

// Matrix4 is a row-major 4x4 matrix holding an affine transform
type Matrix4 [4][4]float64

// Determinant returns ad - bc
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Submatrix returns m with the given row and column removed
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var res Matrix2
	r := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			res[r][c] = m[i][j]
			c++
		}
		r++
	}
	return res
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor, negated when row+col is odd
func (m Matrix3) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Determinant expands cofactors along row 0
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IdentityMatrix returns the 4x4 identity
func IdentityMatrix() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var res Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return res
}

// MultiplyTuple applies m to t
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	var res Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[col][row] = m[row][col]
		}
	}
	return res
}

// Submatrix returns m with the given row and column removed
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var res Matrix3
	r := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			res[r][c] = m[i][j]
			c++
		}
		r++
	}
	return res
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor, negated when row+col is odd
func (m Matrix4) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Determinant expands cofactors along row 0
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero within Epsilon
func (m Matrix4) IsInvertible() bool {
	return !FloatEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of m via the adjugate, or ErrSingularMatrix
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if FloatEqual(det, 0) {
		return Matrix4{}, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}

	var res Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed on write
			res[col][row] = m.Cofactor(row, col) / det
		}
	}
	return res, nil
}

// Equals compares two matrices component-wise within Epsilon
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}
