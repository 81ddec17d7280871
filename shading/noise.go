package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lattice strides for the hashed cell index, n = x + 57y + 113z.
const (
	strideY = 57
	strideZ = 113
)

// Hash is the iq sine hash, fract(sin(n) * 43758.5453). Results lie in [0, 1).
// GPUs evaluate sin at lower precision, so large n will not match the shader
// bit for bit.
func Hash(n float32) float32 {
	return fract(math32.Sin(n) * 43758.5453)
}

// ValueNoise returns smooth value noise at p: hashed lattice values at the
// eight corners of floor(p), blended with smoothstep weights.
func ValueNoise(p mgl32.Vec3) float32 {
	fx, fy, fz := fract(p[0]), fract(p[1]), fract(p[2])
	u, w, s := fade(fx), fade(fy), fade(fz)

	n := math32.Floor(p[0]) + math32.Floor(p[1])*strideY + math32.Floor(p[2])*strideZ

	return mix(
		mix(mix(Hash(n), Hash(n+1), u),
			mix(Hash(n+strideY), Hash(n+strideY+1), u), w),
		mix(mix(Hash(n+strideZ), Hash(n+strideZ+1), u),
			mix(Hash(n+strideY+strideZ), Hash(n+strideY+strideZ+1), u), w),
		s)
}

func fract(x float32) float32 {
	return x - math32.Floor(x)
}

// fade is the cubic smoothstep weight f*f*(3-2f).
func fade(f float32) float32 {
	return f * f * (3 - 2*f)
}

// mix matches GLSL mix(a, b, t).
func mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
