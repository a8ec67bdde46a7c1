package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

// Ensure testLogger implements core.Logger
var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {}

// recordingLogger keeps every formatted line
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (rl *recordingLogger) Printf(format string, args ...interface{}) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.lines = append(rl.lines, fmt.Sprintf(format, args...))
}

// directionWorld colors each ray by its direction so every pixel differs
type directionWorld struct{}

func (directionWorld) ColorAt(ray core.Ray) core.Color {
	d := ray.Direction
	return core.NewColor(math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z))
}

func TestRenderer_CoversEveryPixel(t *testing.T) {
	// 37x23 leaves partial tiles on the right and bottom edges
	camera := mustCamera(t, 37, 23, math.Pi/3, core.IdentityMatrix())
	renderer := NewRenderer(camera, RenderConfig{TileSize: 8, NumWorkers: 3}, &testLogger{})

	canvas, stats, err := renderer.Render(context.Background(), directionWorld{})
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	for y := 0; y < camera.VSize(); y++ {
		for x := 0; x < camera.HSize(); x++ {
			ray, err := camera.RayForPixel(x, y)
			if err != nil {
				t.Fatalf("Unexpected ray error: %v", err)
			}
			expected := directionWorld{}.ColorAt(ray)
			if got := canvas.PixelAt(x, y); !got.Equals(expected) {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
			}
		}
	}

	if stats.TotalPixels != 37*23 {
		t.Errorf("Expected %d pixels, got %d", 37*23, stats.TotalPixels)
	}
	if stats.TotalTiles != 15 {
		t.Errorf("Expected 15 tiles, got %d", stats.TotalTiles)
	}
	if stats.NumWorkers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.NumWorkers)
	}
	if stats.RenderID == "" {
		t.Error("Expected a render ID")
	}
}

func TestRenderer_DeterministicAcrossWorkerCounts(t *testing.T) {
	camera := mustCamera(t, 50, 40, math.Pi/2, core.RotationY(0.3))

	reference, _, err := NewRenderer(camera, RenderConfig{TileSize: 7, NumWorkers: 1}, &testLogger{}).
		Render(context.Background(), directionWorld{})
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	for _, workers := range []int{2, 4, 16} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			canvas, _, err := NewRenderer(camera, RenderConfig{TileSize: 7, NumWorkers: workers}, &testLogger{}).
				Render(context.Background(), directionWorld{})
			if err != nil {
				t.Fatalf("Unexpected render error: %v", err)
			}
			for y := 0; y < 40; y++ {
				for x := 0; x < 50; x++ {
					if canvas.PixelAt(x, y) != reference.PixelAt(x, y) {
						t.Fatalf("Pixel (%d,%d) differs: expected %v, got %v", x, y, reference.PixelAt(x, y), canvas.PixelAt(x, y))
					}
				}
			}
		})
	}
}

func TestRenderer_PropagatesRayErrors(t *testing.T) {
	projective := core.IdentityMatrix()
	projective[3][2] = 0.5
	camera := mustCamera(t, 20, 20, math.Pi/2, projective)

	canvas, _, err := NewRenderer(camera, RenderConfig{TileSize: 4, NumWorkers: 4}, &testLogger{}).
		Render(context.Background(), directionWorld{})
	if !errors.Is(err, core.ErrInvalidRay) {
		t.Errorf("Expected ErrInvalidRay, got %v", err)
	}
	if canvas != nil {
		t.Error("Expected no canvas from a failed render")
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	camera := mustCamera(t, 20, 20, math.Pi/2, core.IdentityMatrix())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	canvas, _, err := NewRenderer(camera, RenderConfig{TileSize: 4, NumWorkers: 2}, &testLogger{}).
		Render(ctx, directionWorld{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if canvas != nil {
		t.Error("Expected no canvas from a cancelled render")
	}
}

func TestRenderer_LogsWithRenderID(t *testing.T) {
	camera := mustCamera(t, 8, 8, math.Pi/2, core.IdentityMatrix())
	logger := &recordingLogger{}

	_, stats, err := NewRenderer(camera, DefaultRenderConfig(), logger).Render(context.Background(), directionWorld{})
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if len(logger.lines) != 2 {
		t.Fatalf("Expected start and completion lines, got %q", logger.lines)
	}
	for _, line := range logger.lines {
		if !strings.HasPrefix(line, "["+stats.RenderID+"] ") {
			t.Errorf("Expected line to start with render ID %s, got %q", stats.RenderID, line)
		}
	}
}

func TestCamera_Render(t *testing.T) {
	camera := mustCamera(t, 5, 3, math.Pi/2, core.IdentityMatrix())

	canvas, err := camera.Render(directionWorld{})
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if canvas.Width() != 5 || canvas.Height() != 3 {
		t.Fatalf("Expected 5x3 canvas, got %dx%d", canvas.Width(), canvas.Height())
	}

	// last row and column are rendered too
	corner := canvas.PixelAt(4, 2)
	if corner.Equals(core.Black()) {
		t.Errorf("Expected bottom right pixel to be rendered, got %v", corner)
	}
}

func TestDefaultRenderConfig(t *testing.T) {
	config := DefaultRenderConfig()

	if config.TileSize != DefaultTileSize {
		t.Errorf("Expected tile size %d, got %d", DefaultTileSize, config.TileSize)
	}
	if config.NumWorkers <= 0 {
		t.Errorf("Expected positive worker count, got %d", config.NumWorkers)
	}
}
