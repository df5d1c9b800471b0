package ambient

import "math"

// Size is the pixel extent of the drawing surface.
type Size struct {
	W, H float64
}

// Empty reports whether the surface has no drawable area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Center returns the middle of the surface.
func (s Size) Center() Point { return Point{s.W / 2, s.H / 2} }

// Point is a position in surface space.
type Point struct {
	X, Y float64
}

// wrap folds v into [0, limit). A non-positive limit collapses to 0.
func wrap(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	if v < 0 {
		v = math.Mod(v, limit) + limit
	} else if v >= limit {
		v = math.Mod(v, limit)
	}
	// -tiny + limit rounds to limit
	if v >= limit {
		return 0
	}
	return v
}
