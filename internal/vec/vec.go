// Package vec provides 2D vector math used throughout the physics core.
// All functions are pure and operate on values; there is no shared state.
package vec

import "math"

// Vec2 is a 2D vector with float64 components.
type Vec2 struct {
	X, Y float64
}

// Add returns a + b.
func Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns v multiplied by the scalar s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the 2D scalar cross product a.X*b.Y - a.Y*b.X.
func Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Perp returns v rotated by 90 degrees counter-clockwise: (-v.Y, v.X).
// The velocity contribution of rotation at offset r is w * Perp(r).
func Perp(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// LengthSqr returns the squared length of v.
func LengthSqr(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of v.
func Length(v Vec2) float64 {
	return math.Sqrt(LengthSqr(v))
}

// DistSqr returns the squared distance between a and b.
func DistSqr(a, b Vec2) float64 {
	return LengthSqr(Sub(a, b))
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSqr(a, b))
}

// Normalize returns v scaled to length 1. The zero vector is returned
// unchanged; callers that care must check the length themselves.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return Scale(v, 1/l)
}
