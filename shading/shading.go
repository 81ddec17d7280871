// Package shading holds the wave shaders and float32 host-side versions of
// the height functions they evaluate per vertex.
package shading

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/*.vs shaders/*.fs
var shaderFS embed.FS

// Shader interface names shared by every variant.
const (
	AttribPosition = "vPosition"
	UniformTime    = "time"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown shading variant")

// Variant selects the vertex height function.
type Variant int

const (
	// VariantNoise is the cosine wave plus iq-hash value noise.
	VariantNoise Variant = iota
	// VariantAnalytic is the sum of three closed-form trig terms.
	VariantAnalytic
)

// String returns the config name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantNoise:
		return "noise"
	case VariantAnalytic:
		return "analytic"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps a config name to a Variant. "a" and "b" are accepted as
// aliases for the noise and analytic variants.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noise", "a":
		return VariantNoise, nil
	case "analytic", "b":
		return VariantAnalytic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Preset returns the grid resolution each variant was designed for.
func (v Variant) Preset() (rows, columns int) {
	if v == VariantAnalytic {
		return 16, 64
	}
	return 16, 32
}

// VertexSource returns the GLSL vertex stage for the variant.
func (v Variant) VertexSource() string {
	name := "shaders/noise.vs"
	if v == VariantAnalytic {
		name = "shaders/analytic.vs"
	}
	return mustRead(name)
}

// FragmentSource returns the GLSL fragment stage shared by all variants.
func FragmentSource() string {
	return mustRead("shaders/wave.fs")
}

func mustRead(name string) string {
	data, err := shaderFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("shading: embedded shader %s missing: %v", name, err))
	}
	return string(data)
}

// Height evaluates the variant's height offset at (x, z) and time t.
func Height(v Variant, x, z, t float32) float32 {
	if v == VariantAnalytic {
		return AnalyticHeight(x, z, t)
	}
	return NoiseHeight(x, z, t)
}

// NoiseHeight mirrors noise.vs:
//
//	-cos((x + z/3 + t)*2)/10 + noise(x + t/2, 0, 3z)/4
func NoiseHeight(x, z, t float32) float32 {
	wave := -math32.Cos((x+z/3+t)*2) / 10
	return wave + ValueNoise(mgl32.Vec3{x + t/2, 0, z * 3})/4
}

// AnalyticHeight mirrors analytic.vs:
//
//	cos(x+z+t)/3 + cos((x+t/5)*10)/20 + sin(x*z)/10
func AnalyticHeight(x, z, t float32) float32 {
	return math32.Cos(x+z+t)/3 + math32.Cos((x+t/5)*10)/20 + math32.Sin(x*z)/10
}

// Displace returns p with its y component replaced by the variant height.
func Displace(v Variant, p mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{p.X(), Height(v, p.X(), p.Z(), t), p.Z()}
}
