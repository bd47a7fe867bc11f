// Package geo defines the virtual tactical coordinate space that all
// simulation state lives in, and the scaling between virtual and display
// coordinates.
//
// Aircraft positions, destinations, and the tactical grid are always
// expressed in virtual coordinates. Display coordinates exist only at draw
// time, derived through a Scale built from the current drawable extent.
// This keeps the simulation correct across any terminal resize.
package geo

import "math"

// Constants for the tactical coordinate space
const (
	// VirtualMax is the upper bound of the virtual coordinate space.
	// All simulation state lives in [0, VirtualMax] x [0, VirtualMax].
	VirtualMax = 600.0

	// ScopeRadiusFactor is the scope circle radius as a fraction of the
	// display extent. Leaves a 20-virtual-unit margin at the scope edge.
	ScopeRadiusFactor = 0.5 - 20.0/VirtualMax
)

// Point is a position in 2D space. Whether it is a virtual or a display
// coordinate depends on context; the simulation only ever stores virtual
// points, trails only ever store display points.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// InBounds reports whether p lies within the virtual coordinate space,
// boundary included.
func (p Point) InBounds(max float64) bool {
	return p.X >= 0 && p.X <= max && p.Y >= 0 && p.Y <= max
}

// VirtualCenter returns the center of the virtual coordinate space.
func VirtualCenter(max float64) Point {
	return Point{X: max / 2, Y: max / 2}
}

// VirtualRadius returns the scope radius in virtual units.
func VirtualRadius(max, radiusFactor float64) float64 {
	return max * radiusFactor
}
