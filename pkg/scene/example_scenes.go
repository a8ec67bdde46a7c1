package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

func newThreeSpheresScene(cameraConfig renderer.CameraConfig) (*Scene, error) {
	light, err := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())
	if err != nil {
		return nil, err
	}

	// Create materials
	floorMaterial := material.DefaultMaterial()
	floorMaterial.Color = core.NewColor(1, 0.9, 0.9)
	floorMaterial.Specular = 0

	greenMaterial := material.DefaultMaterial()
	greenMaterial.Color = core.NewColor(0.5, 1, 0.1)
	greenMaterial.Diffuse = 0.7
	greenMaterial.Specular = 0.3

	yellowMaterial := greenMaterial
	yellowMaterial.Color = core.NewColor(1, 0.8, 0.1)

	world := NewWorld(light)

	floor, err := newShape(geometry.ShapePlane, core.IdentityMatrix(), floorMaterial)
	if err != nil {
		return nil, err
	}
	world.Add(floor)

	// Spheres are placed as scale first, then translate
	spheres := []struct {
		transform core.Matrix4
		material  material.Material
	}{
		{core.IdentityMatrix().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75), yellowMaterial}, // left
		{core.IdentityMatrix().Scale(0.5, 0.5, 0.5).Translate(-0.5, 1, 0.5), greenMaterial},          // middle
		{core.IdentityMatrix().Scale(0.33, 0.33, 0.33).Translate(1.5, 0.5, -0.5), greenMaterial},     // right
	}
	for _, s := range spheres {
		sphere, err := newShape(geometry.ShapeSphere, s.transform, s.material)
		if err != nil {
			return nil, err
		}
		world.Add(sphere)
	}

	return &Scene{Name: "three-spheres", World: world, CameraConfig: cameraConfig}, nil
}

func newPatternScene(cameraConfig renderer.CameraConfig) (*Scene, error) {
	light, err := lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White())
	if err != nil {
		return nil, err
	}

	white := core.White()
	world := NewWorld(light)

	checker, err := material.NewPattern(material.PatternConfig{
		Type:      material.PatternChecker,
		ColorA:    white,
		ColorB:    core.NewColor(0.3, 0.3, 0.35),
		// lifted off y = 0 so rounding noise on the floor does not flip the cube parity
		Transform: core.IdentityMatrix().Scale(0.75, 0.75, 0.75).Translate(0, 0.01, 0),
	})
	if err != nil {
		return nil, err
	}
	floorMaterial := material.DefaultMaterial()
	floorMaterial.Pattern = checker
	floorMaterial.Specular = 0

	stripe, err := material.NewPattern(material.PatternConfig{
		Type:      material.PatternStripe,
		ColorA:    core.NewColor(0.9, 0.2, 0.2),
		ColorB:    white,
		Transform: core.IdentityMatrix().Scale(0.2, 0.2, 0.2).RotateZ(math.Pi / 4),
	})
	if err != nil {
		return nil, err
	}

	gradient, err := material.NewPattern(material.PatternConfig{
		Type:      material.PatternGradient,
		ColorA:    core.NewColor(0.1, 0.3, 0.9),
		ColorB:    core.NewColor(0.1, 0.9, 0.4),
		Transform: core.IdentityMatrix().Scale(2, 1, 1).Translate(-1, 0, 0),
	})
	if err != nil {
		return nil, err
	}

	ring, err := material.NewPattern(material.PatternConfig{
		Type:      material.PatternRing,
		ColorA:    core.NewColor(1, 0.8, 0.1),
		ColorB:    core.NewColor(0.4, 0.2, 0.05),
		Transform: core.IdentityMatrix().Scale(0.15, 0.15, 0.15).RotateX(math.Pi / 2),
	})
	if err != nil {
		return nil, err
	}

	shapes := []struct {
		shapeType geometry.ShapeType
		transform core.Matrix4
		pattern   *material.Pattern
	}{
		{geometry.ShapePlane, core.IdentityMatrix(), checker},
		{geometry.ShapeSphere, core.Translation(-2, 1, 0.5), stripe},
		{geometry.ShapeSphere, core.Translation(0, 1, 1), gradient},
		{geometry.ShapeSphere, core.IdentityMatrix().Scale(0.75, 0.75, 0.75).Translate(2, 0.75, 0), ring},
	}
	for _, s := range shapes {
		mat := material.DefaultMaterial()
		mat.Pattern = s.pattern
		mat.Diffuse = 0.8
		mat.Specular = 0.4
		if s.shapeType == geometry.ShapePlane {
			mat = floorMaterial
		}

		shape, err := newShape(s.shapeType, s.transform, mat)
		if err != nil {
			return nil, err
		}
		world.Add(shape)
	}

	return &Scene{Name: "patterns", World: world, CameraConfig: cameraConfig}, nil
}

func newDefaultWorldScene(cameraConfig renderer.CameraConfig) (*Scene, error) {
	world, err := DefaultWorld()
	if err != nil {
		return nil, err
	}
	return &Scene{Name: "default-world", World: world, CameraConfig: cameraConfig}, nil
}
