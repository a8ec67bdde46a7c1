package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtInScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtInScenes), len(scenes))
	}

	seen := make(map[string]bool)
	for _, info := range scenes {
		if info.ID == "" || info.DisplayName == "" {
			t.Errorf("Expected ID and display name, got %+v", info)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene ID %q", info.ID)
		}
		seen[info.ID] = true
	}
}

func TestNewScene_BuiltIns(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			// Render a tiny version of the scene to keep the test fast
			scene, err := NewScene(info.ID, renderer.CameraConfig{Width: 16, Height: 12})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if scene.Name != info.ID {
				t.Errorf("Expected scene name %q, got %q", info.ID, scene.Name)
			}
			if len(scene.World.Shapes) == 0 {
				t.Error("Expected scene to contain shapes")
			}

			camera, err := scene.Camera()
			if err != nil {
				t.Fatalf("Unexpected camera error: %v", err)
			}
			if camera.HSize() != 16 || camera.VSize() != 12 {
				t.Errorf("Expected 16x12 camera, got %dx%d", camera.HSize(), camera.VSize())
			}

			canvas, err := camera.Render(scene.World)
			if err != nil {
				t.Fatalf("Unexpected render error: %v", err)
			}

			lit := false
			for y := 0; y < canvas.Height() && !lit; y++ {
				for x := 0; x < canvas.Width(); x++ {
					if !canvas.PixelAt(x, y).Equals(core.Black()) {
						lit = true
						break
					}
				}
			}
			if !lit {
				t.Error("Expected at least one pixel to be lit")
			}
		})
	}
}

func TestNewThreeSpheresScene(t *testing.T) {
	scene, err := NewThreeSpheresScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(scene.World.Shapes) != 4 {
		t.Fatalf("Expected floor and three spheres, got %d shapes", len(scene.World.Shapes))
	}
	if scene.World.Shapes[0].Type() != geometry.ShapePlane {
		t.Errorf("Expected first shape to be the floor plane, got %s", scene.World.Shapes[0].Type())
	}

	middle := scene.World.Shapes[2]
	expected := core.Translation(-0.5, 1, 0.5).Multiply(core.Scaling(0.5, 0.5, 0.5))
	if !middle.Transform().Equals(expected) {
		t.Errorf("Expected middle sphere transform %v, got %v", expected, middle.Transform())
	}
	if scene.CameraConfig.Width != 400 || scene.CameraConfig.Height != 400 {
		t.Errorf("Expected default 400x400 camera, got %dx%d", scene.CameraConfig.Width, scene.CameraConfig.Height)
	}
}

func TestNewPatternScene(t *testing.T) {
	scene, err := NewPatternScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, shape := range scene.World.Shapes {
		if shape.Material().Pattern == nil {
			t.Errorf("Expected shape %d to have a pattern", i)
		}
	}
}

func TestNewScene_Unknown(t *testing.T) {
	_, err := NewScene("nonexistent")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
