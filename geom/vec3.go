// Package geom defines the immutable geometry primitives and the
// intersection kernel the kd-tree builders and traversal are built on:
// vectors, axes, boxes, rays, planes and triangles.
package geom

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec3 is a 3-component vector. It is a named type over f32.Vec3 so it
// can be indexed by an Axis without a conversion at every call site.
type Vec3 f32.Vec3

// XYZ builds a vector from its three components.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Axis returns the component of v along the given axis.
func (v Vec3) Axis(a Axis) float32 {
	return v[a]
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// epsilon below which a vector is considered degenerate for normalization.
const lengthEpsilon = 1e-8

// Normalize returns v scaled to unit length. A near-zero vector normalizes
// to the zero vector rather than dividing by zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < lengthEpsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// MinVec3 returns the componentwise minimum of a and b.
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{fmin(a[0], b[0]), fmin(a[1], b[1]), fmin(a[2], b[2])}
}

// MaxVec3 returns the componentwise maximum of a and b.
func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{fmax(a[0], b[0]), fmax(a[1], b[1]), fmax(a[2], b[2])}
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
