package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by NewScene for an ID that is not built in
var ErrUnknownScene = errors.New("unknown scene")

// Scene pairs a world with the camera it is meant to be viewed through
type Scene struct {
	Name         string
	World        *World
	CameraConfig renderer.CameraConfig
}

// Camera builds the scene's camera from its camera config
func (s *Scene) Camera() (*renderer.Camera, error) {
	return renderer.NewCameraFromConfig(s.CameraConfig)
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier, used by the -scene flag
	DisplayName string // Human readable name
	Description string // Optional description
}

type sceneBuilder func(cameraConfig renderer.CameraConfig) (*Scene, error)

type builtInScene struct {
	info          SceneInfo
	defaultCamera renderer.CameraConfig
	build         sceneBuilder
}

var builtInScenes = []builtInScene{
	{
		info: SceneInfo{
			ID:          "three-spheres",
			DisplayName: "Three Spheres",
			Description: "Three spheres on a floor plane casting shadows",
		},
		defaultCamera: renderer.CameraConfig{
			From:        core.NewPoint(0, 1.5, -5),
			To:          core.NewPoint(0, 1, 0),
			Up:          core.NewVector(0, 1, 0),
			Width:       400,
			Height:      400,
			FieldOfView: math.Pi / 3,
		},
		build: newThreeSpheresScene,
	},
	{
		info: SceneInfo{
			ID:          "patterns",
			DisplayName: "Patterns",
			Description: "Striped, gradient and ringed spheres on a checkered floor",
		},
		defaultCamera: renderer.CameraConfig{
			From:        core.NewPoint(0, 2, -6),
			To:          core.NewPoint(0, 0.75, 0),
			Up:          core.NewVector(0, 1, 0),
			Width:       400,
			Height:      225,
			FieldOfView: math.Pi / 3,
		},
		build: newPatternScene,
	},
	{
		info: SceneInfo{
			ID:          "default-world",
			DisplayName: "Default World",
			Description: "Two concentric spheres lit from the upper left",
		},
		defaultCamera: renderer.CameraConfig{
			From:        core.NewPoint(0, 0, -5),
			To:          core.NewPoint(0, 0, 0),
			Up:          core.NewVector(0, 1, 0),
			Width:       200,
			Height:      200,
			FieldOfView: math.Pi / 2,
		},
		build: newDefaultWorldScene,
	},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	for i, s := range builtInScenes {
		scenes[i] = s.info
	}
	return scenes
}

// NewScene builds the built-in scene with the given ID. Non-zero fields of the
// optional camera override replace the scene's default camera settings.
func NewScene(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, s := range builtInScenes {
		if s.info.ID != id {
			continue
		}
		cameraConfig := s.defaultCamera
		if len(cameraOverrides) > 0 {
			cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
		}
		scene, err := s.build(cameraConfig)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", id, err)
		}
		return scene, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// NewThreeSpheresScene creates three spheres of different sizes on a floor plane
func NewThreeSpheresScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	return NewScene("three-spheres", cameraOverrides...)
}

// NewPatternScene creates a scene exercising every pattern type
func NewPatternScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	return NewScene("patterns", cameraOverrides...)
}

// newShape builds a sphere or plane with the given transform and material
func newShape(shapeType geometry.ShapeType, transform core.Matrix4, mat material.Material) (*geometry.Shape, error) {
	config := geometry.Config{Transform: transform, Material: mat}
	switch shapeType {
	case geometry.ShapeSphere:
		return geometry.NewSphere(config)
	case geometry.ShapePlane:
		return geometry.NewPlane(config)
	default:
		return nil, fmt.Errorf("unknown shape type %q", shapeType)
	}
}
