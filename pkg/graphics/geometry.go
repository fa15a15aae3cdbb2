// Package graphics provides the geometry value types shared by scroll
// surfaces and refresh controls.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// EdgeInsets represents padding reserved on each edge of a surface.
type EdgeInsets struct {
	Top, Bottom, Left, Right float64
}

// FloatEqual returns true if two float64 values are approximately equal.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Clamp bounds value to [min, max]. NaN collapses to min.
func Clamp(value, min, max float64) float64 {
	if math.IsNaN(value) || value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
