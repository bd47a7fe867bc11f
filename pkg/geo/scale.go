package geo

// Scale maps between the virtual coordinate space and a square drawable
// area of a given extent. A Scale is an immutable value; when the display
// is resized the frontend builds a new one with NewScale and discards any
// display-space history captured under the old extent.
//
// Center and ScopeRadius are pure functions of the extent. They are derived
// on every call rather than stored, so a Scale can never hold stale geometry.
type Scale struct {
	extent       float64
	virtualMax   float64
	radiusFactor float64
}

// NewScale builds a Scale for a square drawable area of side extent.
// A zero or negative extent is a caller error; the scale degenerates to
// mapping everything to the origin rather than dividing by zero.
func NewScale(extent, virtualMax, radiusFactor float64) Scale {
	if extent < 0 {
		extent = 0
	}
	return Scale{extent: extent, virtualMax: virtualMax, radiusFactor: radiusFactor}
}

// Extent returns the display extent this scale was built for.
func (s Scale) Extent() float64 {
	return s.extent
}

// Factor returns the virtual-to-display multiplier.
func (s Scale) Factor() float64 {
	return s.extent / s.virtualMax
}

// ToDisplay converts a virtual-space point to display coordinates.
func (s Scale) ToDisplay(p Point) Point {
	return p.Mul(s.Factor())
}

// ToVirtual converts a display-space point back to virtual coordinates.
// ToVirtual(ToDisplay(p)) == p up to floating point tolerance as long as
// the extent is unchanged between the two calls.
func (s Scale) ToVirtual(p Point) Point {
	if s.extent == 0 {
		return Point{}
	}
	return p.Mul(s.virtualMax / s.extent)
}

// Center returns the scope center in display coordinates.
func (s Scale) Center() Point {
	return Point{X: s.extent / 2, Y: s.extent / 2}
}

// ScopeRadius returns the scope circle radius in display units.
func (s Scale) ScopeRadius() float64 {
	return s.extent * s.radiusFactor
}
