package geom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The demo's fixed triangle.
var demoTriangle = Tri(Pt(0, 0), Pt(1, 0), Pt(0.5, 0.5))

func TestContainsDemoTriangle(t *testing.T) {
	cases := []struct {
		name string
		q    Point
		want bool
	}{
		{"interior", Pt(0.25, 0.1), true},
		{"outside", Pt(0.9, 0.9), false},
		{"vertex", Pt(0, 0), true},
		{"edge midpoint", Pt(0.5, 0), true},
		{"apex", Pt(0.5, 0.5), true},
		{"just above apex", Pt(0.5, 0.5001), false},
		{"left of base", Pt(-0.01, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, demoTriangle.Contains(tc.q))
		})
	}
}

func TestBarycentricWeightsSumToOne(t *testing.T) {
	queries := []Point{
		Pt(0.25, 0.1),
		Pt(0.9, 0.9),
		Pt(0, 0),
		Pt(0.5, 0),
		Pt(-3, 7),
		Pt(100, -42.5),
	}
	for _, q := range queries {
		t.Run(fmt.Sprintf("(%g,%g)", q.X, q.Y), func(t *testing.T) {
			a, b, c, ok := demoTriangle.Barycentric(q)
			assert.True(t, ok)
			assert.InDelta(t, 1, a+b+c, 1e-9)
		})
	}
}

func TestContainsCollinearTriangle(t *testing.T) {
	degenerate := Tri(Pt(0, 0), Pt(1, 0), Pt(2, 0))
	queries := []Point{
		Pt(0.5, 0), // on the shared line
		Pt(0, 0),   // a vertex
		Pt(0.5, 0.5),
		Pt(-1, -1),
	}
	for _, q := range queries {
		assert.False(t, degenerate.Contains(q), "query (%g,%g)", q.X, q.Y)
		_, _, _, ok := degenerate.Barycentric(q)
		assert.False(t, ok)
	}
}

func TestContainsIsPure(t *testing.T) {
	q := Pt(0.25, 0.1)
	first := demoTriangle.Contains(q)
	second := demoTriangle.Contains(q)
	assert.Equal(t, first, second)

	a1, b1, c1, ok1 := demoTriangle.Barycentric(q)
	a2, b2, c2, ok2 := demoTriangle.Barycentric(q)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, c1, c2)
}
