package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/google/uuid"
)

// DefaultTileSize is the tile edge length used when none is configured
const DefaultTileSize = 16

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: runtime.NumCPU(),
	}
}

// Renderer renders a world through a camera by splitting the canvas into
// tiles and handing them to a worker pool
type Renderer struct {
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger discards all output.
func NewRenderer(camera *Camera, config RenderConfig, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = discardLogger{}
	}

	return &Renderer{
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render renders every pixel of the camera's canvas. On error no canvas is
// returned. The result does not depend on the number of workers.
func (r *Renderer) Render(ctx context.Context, world World) (*Canvas, RenderStats, error) {
	start := time.Now()
	renderID := uuid.NewString()
	logger := NewRenderLogger(r.logger, renderID)

	width, height := r.camera.HSize(), r.camera.VSize()
	canvas := NewCanvas(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)

	stats := RenderStats{
		RenderID:   renderID,
		TotalTiles: len(tiles),
		NumWorkers: r.config.NumWorkers,
	}

	logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), r.config.NumWorkers)

	workerPool := NewWorkerPool(NewTileRenderer(r.camera, world), len(tiles), r.config.NumWorkers)
	workerPool.Start(ctx)

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Canvas: canvas,
		})
	}

	if err := workerPool.Stop(); err != nil {
		logger.Printf("Render failed: %v\n", err)
		return nil, stats, fmt.Errorf("render %s: %w", renderID, err)
	}

	completedTiles := 0
	for {
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		stats.TotalPixels += result.Pixels
		completedTiles++
	}
	if completedTiles != len(tiles) {
		// only possible when ctx was cancelled by the caller
		return nil, stats, fmt.Errorf("render %s: %d of %d tiles completed: %w", renderID, completedTiles, len(tiles), context.Cause(ctx))
	}

	stats.Duration = time.Since(start)
	logger.Printf("Render completed in %v (%d pixels, %.0f pixels/s)\n",
		stats.Duration, stats.TotalPixels, stats.PixelsPerSecond())

	return canvas, stats, nil
}
