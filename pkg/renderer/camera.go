package renderer

import (
	"context"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig describes a camera by where it sits and what it looks at
type CameraConfig struct {
	From        core.Tuple // Eye position (point)
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction (vector)
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Horizontal or vertical field of view in radians, whichever side is longer
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	return result
}

// Camera maps canvas pixels to rays in world space. The canvas sits one unit
// in front of the eye, and the transform orients the world relative to it.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   core.Matrix4
	inverse     core.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for an hsize x vsize canvas
func NewCamera(hsize, vsize int, fieldOfView float64, transform core.Matrix4) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size %dx%d must be positive", hsize, vsize)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi || math.IsNaN(fieldOfView) {
		return nil, fmt.Errorf("camera field of view %v must be in (0, pi)", fieldOfView)
	}
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   transform,
		inverse:     inverse,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   halfWidth * 2 / float64(hsize),
	}, nil
}

// NewCameraFromConfig creates a camera whose transform is the view transform of config
func NewCameraFromConfig(config CameraConfig) (*Camera, error) {
	view, err := core.ViewTransform(config.From, config.To, config.Up)
	if err != nil {
		return nil, fmt.Errorf("camera view: %w", err)
	}
	return NewCamera(config.Width, config.Height, config.FieldOfView, view)
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int {
	return c.hsize
}

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int {
	return c.vsize
}

func (c *Camera) FieldOfView() float64 {
	return c.fieldOfView
}

func (c *Camera) Transform() core.Matrix4 {
	return c.transform
}

// PixelSize returns the width of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the eye through the center of pixel (x, y)
func (c *Camera) RayForPixel(x, y int) (core.Ray, error) {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render renders world into a new canvas using the default render config.
// Nothing is logged.
func (c *Camera) Render(world World) (*Canvas, error) {
	canvas, _, err := NewRenderer(c, DefaultRenderConfig(), nil).Render(context.Background(), world)
	return canvas, err
}
