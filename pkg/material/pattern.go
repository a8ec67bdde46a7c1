package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

type PatternType string

const (
	PatternStripe   PatternType = "stripe"
	PatternGradient PatternType = "gradient"
	PatternRing     PatternType = "ring"
	PatternChecker  PatternType = "checker"
)

// PatternConfig describes a procedural pattern
type PatternConfig struct {
	Type      PatternType
	ColorA    core.Color   // Default white
	ColorB    core.Color   // Default black
	Transform core.Matrix4 // Pattern-to-object transform, default identity
}

// DefaultPatternConfig returns a white/black pattern of the given type with an identity transform
func DefaultPatternConfig(patternType PatternType) PatternConfig {
	return PatternConfig{
		Type:      patternType,
		ColorA:    core.White(),
		ColorB:    core.Black(),
		Transform: core.IdentityMatrix(),
	}
}

// Pattern is a procedural color function evaluated in its own pattern space
type Pattern struct {
	patternType PatternType
	colorA      core.Color
	colorB      core.Color
	transform   core.Matrix4
	inverse     core.Matrix4
}

// NewPattern validates the config and creates a pattern
func NewPattern(config PatternConfig) (*Pattern, error) {
	switch config.Type {
	case PatternStripe, PatternGradient, PatternRing, PatternChecker:
	default:
		return nil, fmt.Errorf("unknown pattern type %q", config.Type)
	}

	inverse, err := config.Transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s pattern transform: %w", config.Type, err)
	}

	return &Pattern{
		patternType: config.Type,
		colorA:      config.ColorA,
		colorB:      config.ColorB,
		transform:   config.Transform,
		inverse:     inverse,
	}, nil
}

// NewStripePattern creates an untransformed stripe pattern alternating along x
func NewStripePattern(a, b core.Color) *Pattern {
	return newIdentityPattern(PatternStripe, a, b)
}

// NewGradientPattern creates an untransformed gradient blending from a to b along x
func NewGradientPattern(a, b core.Color) *Pattern {
	return newIdentityPattern(PatternGradient, a, b)
}

// NewRingPattern creates an untransformed pattern of concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return newIdentityPattern(PatternRing, a, b)
}

// NewCheckerPattern creates an untransformed 3D checker pattern of unit cubes
func NewCheckerPattern(a, b core.Color) *Pattern {
	return newIdentityPattern(PatternChecker, a, b)
}

func newIdentityPattern(patternType PatternType, a, b core.Color) *Pattern {
	return &Pattern{
		patternType: patternType,
		colorA:      a,
		colorB:      b,
		transform:   core.IdentityMatrix(),
		inverse:     core.IdentityMatrix(),
	}
}

// Type returns the pattern type
func (p *Pattern) Type() PatternType {
	return p.patternType
}

// Transform returns the pattern-to-object transform
func (p *Pattern) Transform() core.Matrix4 {
	return p.transform
}

// ColorAt evaluates the pattern at a point already in pattern space
func (p *Pattern) ColorAt(point core.Tuple) core.Color {
	switch p.patternType {
	case PatternStripe:
		return p.pick(floorInt(point.X))
	case PatternGradient:
		fraction := point.X - math.Floor(point.X)
		return p.colorA.Add(p.colorB.Subtract(p.colorA).Multiply(fraction))
	case PatternRing:
		return p.pick(floorInt(math.Sqrt(point.X*point.X + point.Z*point.Z)))
	case PatternChecker:
		return p.pick(floorInt(point.X) + floorInt(point.Y) + floorInt(point.Z))
	default:
		return p.colorA
	}
}

// ColorAtObject converts an object-space point into pattern space and evaluates the pattern
func (p *Pattern) ColorAtObject(objectPoint core.Tuple) core.Color {
	return p.ColorAt(p.inverse.MultiplyTuple(objectPoint))
}

// ColorAtShape evaluates the pattern for a world-space point on object
func (p *Pattern) ColorAtShape(object ObjectSpace, worldPoint core.Tuple) core.Color {
	return p.ColorAtObject(object.WorldToObject(worldPoint))
}

// pick returns colorA for even n and colorB for odd n
func (p *Pattern) pick(n int64) core.Color {
	if n%2 == 0 {
		return p.colorA
	}
	return p.colorB
}

func floorInt(v float64) int64 {
	return int64(math.Floor(v))
}
