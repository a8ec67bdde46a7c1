package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Lighting shades a point with the Phong model: ambient + diffuse + specular.
// object is used to map the point into pattern space and may be nil when the
// material has no pattern. A point in shadow receives ambient light only.
func (m Material) Lighting(object ObjectSpace, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	surface := colorAt(m.colorSource(), object, point)
	effectiveColor := surface.MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv, _ := light.SampleDirection(point)
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normal)
	reflectDotEye := reflectv.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
