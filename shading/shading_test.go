package shading

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAnalyticHeightAtOrigin(t *testing.T) {
	got := AnalyticHeight(0, 0, 0)
	want := 1.0/3.0 + 1.0/20.0

	if math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("expected %f at origin, got %f", want, got)
	}
}

func TestHeightIsPure(t *testing.T) {
	points := []struct{ x, z, t float32 }{
		{0, 0, 0},
		{-1, -1, 0.01},
		{0.5, -0.25, 3.7},
		{0.9375, 0.875, 1234.56},
	}

	for _, v := range []Variant{VariantNoise, VariantAnalytic} {
		for _, p := range points {
			first := Height(v, p.x, p.z, p.t)
			// Interleave other evaluations to catch hidden state.
			Height(v, p.z, p.x, p.t+1)
			second := Height(v, p.x, p.z, p.t)
			if first != second {
				t.Errorf("%s: Height(%v, %v, %v) not repeatable: %v then %v", v, p.x, p.z, p.t, first, second)
			}
		}
	}
}

func TestHeightDispatch(t *testing.T) {
	if Height(VariantAnalytic, 0.3, 0.2, 1) != AnalyticHeight(0.3, 0.2, 1) {
		t.Error("analytic variant should dispatch to AnalyticHeight")
	}
	if Height(VariantNoise, 0.3, 0.2, 1) != NoiseHeight(0.3, 0.2, 1) {
		t.Error("noise variant should dispatch to NoiseHeight")
	}
}

func TestHeightBounds(t *testing.T) {
	// cos/10 + [0,1]/4 and 1/3 + 1/20 + 1/10 bound the two variants.
	for i := 0; i < 200; i++ {
		x := float32(i%32)/16 - 1
		z := float32(i/32)/8 - 1
		tm := float32(i) * 0.37

		if h := NoiseHeight(x, z, tm); h < -0.1-1e-5 || h > 0.35+1e-5 {
			t.Errorf("noise height %f out of range at (%f, %f, %f)", h, x, z, tm)
		}
		if h := AnalyticHeight(x, z, tm); math.Abs(float64(h)) > 1.0/3+1.0/20+1.0/10+1e-5 {
			t.Errorf("analytic height %f out of range at (%f, %f, %f)", h, x, z, tm)
		}
	}
}

func TestValueNoiseAtLattice(t *testing.T) {
	// At integer coordinates every blend weight is zero, leaving the corner hash.
	got := ValueNoise(mgl32.Vec3{2, 0, 1})
	want := Hash(2 + strideZ)
	if got != want {
		t.Errorf("expected lattice value %f, got %f", want, got)
	}
}

func TestValueNoiseRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		p := mgl32.Vec3{float32(i) * 0.173, float32(i%7) * 0.5, float32(i) * -0.091}
		n := ValueNoise(p)
		if n < 0 || n > 1+1e-6 {
			t.Errorf("noise %f out of [0,1] at %v", n, p)
		}
	}
}

func TestDisplaceKeepsXZ(t *testing.T) {
	p := mgl32.Vec3{0.25, 0, -0.5}
	d := Displace(VariantAnalytic, p, 2)

	if d.X() != p.X() || d.Z() != p.Z() {
		t.Errorf("displace moved x/z: %v -> %v", p, d)
	}
	if d.Y() != AnalyticHeight(0.25, -0.5, 2) {
		t.Errorf("unexpected displaced height %f", d.Y())
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"noise", VariantNoise},
		{"A", VariantNoise},
		{" analytic ", VariantAnalytic},
		{"b", VariantAnalytic},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if err != nil {
			t.Errorf("ParseVariant(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseVariant("perlin"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	if r, c := VariantNoise.Preset(); r != 16 || c != 32 {
		t.Errorf("noise preset = %dx%d, want 16x32", r, c)
	}
	if r, c := VariantAnalytic.Preset(); r != 16 || c != 64 {
		t.Errorf("analytic preset = %dx%d, want 16x64", r, c)
	}
}

func TestShaderSources(t *testing.T) {
	for _, v := range []Variant{VariantNoise, VariantAnalytic} {
		src := v.VertexSource()
		for _, want := range []string{"#version 330", "in vec3 " + AttribPosition, "uniform float " + UniformTime} {
			if !strings.Contains(src, want) {
				t.Errorf("%s vertex source missing %q", v, want)
			}
		}
	}

	if !strings.Contains(VariantNoise.VertexSource(), "43758.5453") {
		t.Error("noise vertex source should contain the iq hash")
	}
	if !strings.Contains(FragmentSource(), "vec4(1.0, 1.0, 1.0, 0.25)") {
		t.Error("fragment source should output translucent white")
	}
}
