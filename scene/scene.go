// Package scene holds the click-driven state of the geometric probability
// demo: the fixed unit square and triangle, and the artifacts produced by
// the most recent accepted click.
package scene

import (
	"math/rand"

	"geoprob/geom"
)

// DefaultTriangle returns the fixed region that accepts clicks: the isosceles
// triangle spanning the base of the unit square.
func DefaultTriangle() geom.Triangle {
	return geom.Tri(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, 0.5))
}

// Scene owns the fixed shapes and the dynamic artifacts of the demo. All
// dynamic fields describe the most recent accepted click and are replaced
// wholesale on the next one. Scene is not safe for concurrent use; the
// event loop drives it from a single goroutine.
type Scene struct {
	Triangle geom.Triangle

	// Dynamic artifacts, valid only while HasPoint is true.
	HasPoint  bool
	Reference geom.Point // the clicked point
	Random    geom.Point // uniformly sampled companion point

	// Radii of the quarter-circle wedges anchored at the base corners.
	RadiusLeft  float64
	RadiusRight float64

	// Where the perpendicular bisector of Reference-Random crosses the
	// x-axis. Defined is false for a horizontal segment; OnEdge additionally
	// requires the crossing to land on the square's base edge, which is the
	// condition for drawing it.
	Intersection geom.Point
	Defined      bool
	OnEdge       bool

	generation uint64
}

// New returns a Scene with the fixed triangle and no click recorded.
func New() *Scene {
	return &Scene{Triangle: DefaultTriangle()}
}

// Generation increments on every accepted click. Renderers compare it
// against the generation of their cached frame to decide whether to redraw.
func (s *Scene) Generation() uint64 {
	return s.generation
}

// Click processes one pointer event at q. A click outside the triangle is
// rejected with no state change. An accepted click discards all previous
// artifacts, records q, samples the companion point from rng with both
// coordinates uniform in [0,1), and computes the wedge radii and the
// bisector crossing.
func (s *Scene) Click(q geom.Point, rng *rand.Rand) bool {
	if !s.Triangle.Contains(q) {
		return false
	}
	s.clear()

	s.HasPoint = true
	s.Reference = q
	s.Random = geom.Pt(rng.Float64(), rng.Float64())
	s.RadiusLeft = s.Triangle.A.Distance(q)
	s.RadiusRight = s.Triangle.B.Distance(q)

	s.Intersection, s.Defined = geom.BisectorAxisIntersection(s.Reference, s.Random)
	s.OnEdge = s.Defined && 0 <= s.Intersection.X && s.Intersection.X <= 1

	s.generation++
	return true
}

// clear resets every dynamic artifact ahead of an accepted click.
func (s *Scene) clear() {
	s.HasPoint = false
	s.Reference = geom.Point{}
	s.Random = geom.Point{}
	s.RadiusLeft = 0
	s.RadiusRight = 0
	s.Intersection = geom.Point{}
	s.Defined = false
	s.OnEdge = false
}
