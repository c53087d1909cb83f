package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoprob/geom"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestClickOutsideIsRejected(t *testing.T) {
	s := New()
	rng := testRand()

	assert.False(t, s.Click(geom.Pt(0.9, 0.9), rng))
	assert.False(t, s.HasPoint)
	assert.Equal(t, uint64(0), s.Generation())

	// A rejected click after an accepted one leaves the artifacts alone.
	require.True(t, s.Click(geom.Pt(0.25, 0.1), rng))
	before := *s
	assert.False(t, s.Click(geom.Pt(-1, -1), rng))
	assert.Equal(t, before, *s)
}

func TestClickRecordsArtifacts(t *testing.T) {
	s := New()
	rng := testRand()
	q := geom.Pt(0.25, 0.1)

	require.True(t, s.Click(q, rng))
	assert.True(t, s.HasPoint)
	assert.Equal(t, q, s.Reference)
	assert.Equal(t, uint64(1), s.Generation())

	// Companion point coordinates come from the unit interval.
	assert.GreaterOrEqual(t, s.Random.X, 0.0)
	assert.Less(t, s.Random.X, 1.0)
	assert.GreaterOrEqual(t, s.Random.Y, 0.0)
	assert.Less(t, s.Random.Y, 1.0)

	// Wedge radii are the corner distances to the clicked point.
	assert.Equal(t, geom.Pt(0, 0).Distance(q), s.RadiusLeft)
	assert.Equal(t, geom.Pt(1, 0).Distance(q), s.RadiusRight)

	if s.Defined {
		want, ok := geom.BisectorAxisIntersection(s.Reference, s.Random)
		assert.True(t, ok)
		assert.Equal(t, want, s.Intersection)
		assert.Equal(t, 0 <= want.X && want.X <= 1, s.OnEdge)
	} else {
		assert.False(t, s.OnEdge)
	}
}

func TestClickReplacesPreviousArtifacts(t *testing.T) {
	s := New()
	rng := testRand()

	require.True(t, s.Click(geom.Pt(0.25, 0.1), rng))
	firstRandom := s.Random

	q := geom.Pt(0.5, 0.4)
	require.True(t, s.Click(q, rng))
	assert.Equal(t, uint64(2), s.Generation())
	assert.Equal(t, q, s.Reference)
	assert.NotEqual(t, firstRandom, s.Random)
	assert.Equal(t, geom.Pt(0, 0).Distance(q), s.RadiusLeft)
	assert.Equal(t, geom.Pt(1, 0).Distance(q), s.RadiusRight)
}

func TestClickDeterministicForSeed(t *testing.T) {
	q := geom.Pt(0.3, 0.2)

	a := New()
	require.True(t, a.Click(q, testRand()))
	b := New()
	require.True(t, b.Click(q, testRand()))

	assert.Equal(t, a.Random, b.Random)
	assert.Equal(t, a.Intersection, b.Intersection)
	assert.Equal(t, a.Defined, b.Defined)
	assert.Equal(t, a.OnEdge, b.OnEdge)
}

func TestClickOnBoundaryIsAccepted(t *testing.T) {
	s := New()
	rng := testRand()

	// Vertices and edge midpoints count as inside.
	for _, q := range []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(0.5, 0),
		geom.Pt(0.5, 0.5),
	} {
		assert.True(t, s.Click(q, rng), "point (%g,%g)", q.X, q.Y)
	}
}

func TestDefaultTriangle(t *testing.T) {
	tri := DefaultTriangle()
	assert.Equal(t, geom.Pt(0, 0), tri.A)
	assert.Equal(t, geom.Pt(1, 0), tri.B)
	assert.Equal(t, geom.Pt(0.5, 0.5), tri.C)
}
