package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// World is the part of a scene the renderer needs.
// Declared here to avoid circular imports with the scene package.
type World interface {
	ColorAt(ray core.Ray) core.Color
}

// TileRenderer renders individual tiles of a camera's canvas
type TileRenderer struct {
	camera *Camera
	world  World
}

// NewTileRenderer creates a new tile renderer for the given camera and world
func NewTileRenderer(camera *Camera, world World) *TileRenderer {
	return &TileRenderer{
		camera: camera,
		world:  world,
	}
}

// RenderTileBounds casts one ray through every pixel within bounds and writes
// the result to canvas
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, canvas *Canvas) error {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray, err := tr.camera.RayForPixel(x, y)
			if err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			canvas.WritePixel(x, y, tr.world.ColorAt(ray))
		}
	}
	return nil
}
