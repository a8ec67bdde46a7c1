package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/ppm"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Supported output formats
const (
	formatPNG = "png"
	formatPPM = "ppm"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "three-spheres", "Scene to render (see -help for the list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	format := flag.String("format", formatPNG, "Output format: 'png' or 'ppm'")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-14s - %s\n", info.ID, info.Description)
		}
		return
	}

	if *format != formatPNG && *format != formatPPM {
		fmt.Printf("Unknown output format: %s\n", *format)
		os.Exit(1)
	}

	fmt.Println("Starting Phong Raytracer...")

	selectedScene, err := createScene(*sceneType, *width, *height)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	camera, err := selectedScene.Camera()
	if err != nil {
		fmt.Printf("Error creating camera: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultRenderConfig()
	if *workers > 0 {
		config.NumWorkers = *workers
	}
	r := renderer.NewRenderer(camera, config, renderer.NewDefaultLogger())

	canvas, stats, err := r.Render(context.Background(), selectedScene.World)
	if err != nil {
		fmt.Printf("Error rendering scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d pixels in %d tiles with %d workers\n", stats.TotalPixels, stats.TotalTiles, stats.NumWorkers)

	filename := *output
	if filename == "" {
		filename = createOutputPath(selectedScene.Name, *format, time.Now())
	}

	if err := writeImage(filename, *format, canvas); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene, overriding its image size when width or height are set
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("image size %dx%d must not be negative", width, height)
	}
	return scene.NewScene(sceneType, renderer.CameraConfig{Width: width, Height: height})
}

// createOutputPath returns output/<scene>/render_<timestamp>.<format>
func createOutputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// writeImage encodes canvas to filename, creating parent directories as needed
func writeImage(filename, format string, canvas *renderer.Canvas) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	switch format {
	case formatPNG:
		err = png.Encode(file, canvas.ToImage())
	case formatPPM:
		err = ppm.Encode(file, canvas)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	return file.Close()
}
