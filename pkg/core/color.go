package core

import (
	"fmt"
	"math"
)

// Color is an RGB triple. Channels are nominally in [0, 1] but are not clamped
// until conversion to bytes.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns (0, 0, 0)
func Black() Color {
	return Color{}
}

// White returns (1, 1, 1)
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// RGBA8 converts the color to 8-bit channels: clamp to [0, 1], scale to
// [0, 255] and round to the nearest integer. Alpha is always 255.
func (c Color) RGBA8() (r, g, b, a uint8) {
	clamped := c.Clamp(0, 1)
	return toByte(clamped.R), toByte(clamped.G), toByte(clamped.B), 255
}

func toByte(v float64) uint8 {
	// min and max propagate NaN, and converting NaN to uint8 is implementation defined
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(v * 255))
}

// Equals compares two colors within Epsilon
func (c Color) Equals(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}
