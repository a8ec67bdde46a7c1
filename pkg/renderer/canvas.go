package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a row-major grid of colors with (0, 0) at the top left
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.contains(x, y) {
		return core.Black()
	}
	return c.pixels[y*c.width+x]
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
// Concurrent writes are safe as long as they touch different pixels.
func (c *Canvas) WritePixel(x, y int, pixel core.Color) {
	if !c.contains(x, y) {
		return
	}
	c.pixels[y*c.width+x] = pixel
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// ToImage converts the canvas to an 8-bit RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b, a := c.pixels[y*c.width+x].RGBA8()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
