package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 represents a 3D vector, used for points, directions and RGB colors
type Vec3 = mgl32.Vec3

// Vec2 represents a 2D vector
type Vec2 = mgl32.Vec2

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// MulVec returns component-wise multiplication of two vectors
func MulVec(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Lerp linearly interpolates between a (t=0) and b (t=1)
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// GammaCorrect applies gamma 2 correction (component-wise square root)
func GammaCorrect(c Vec3) Vec3 {
	return Vec3{
		math32.Sqrt(max(c[0], 0)),
		math32.Sqrt(max(c[1], 0)),
		math32.Sqrt(max(c[2], 0)),
	}
}

// Clamp returns a vector with components clamped to [minVal, maxVal].
// NaN components map to minVal.
func Clamp(v Vec3, minVal, maxVal float32) Vec3 {
	var out Vec3
	for i, c := range v {
		switch {
		case math32.IsNaN(c) || c < minVal:
			out[i] = minVal
		case c > maxVal:
			out[i] = maxVal
		default:
			out[i] = c
		}
	}
	return out
}
