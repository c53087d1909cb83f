package geom

// Triangle is an ordered triple of vertices.
type Triangle struct {
	A, B, C Point
}

// Tri is a convenience constructor for a Triangle.
func Tri(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Barycentric expresses q as a weighted combination of the triangle's
// vertices. The weights sum to 1 and all lie in [0,1] exactly when q is
// inside or on the boundary. ok is false when the vertices are collinear,
// in which case the weights are meaningless and returned as zero.
func (t Triangle) Barycentric(q Point) (a, b, c float64, ok bool) {
	denom := (t.B.Y-t.C.Y)*(t.A.X-t.C.X) + (t.C.X-t.B.X)*(t.A.Y-t.C.Y)
	if denom == 0 {
		return 0, 0, 0, false
	}
	a = ((t.B.Y-t.C.Y)*(q.X-t.C.X) + (t.C.X-t.B.X)*(q.Y-t.C.Y)) / denom
	b = ((t.C.Y-t.A.Y)*(q.X-t.C.X) + (t.A.X-t.C.X)*(q.Y-t.C.Y)) / denom
	c = 1 - a - b
	return a, b, c, true
}

// Contains reports whether q lies inside the triangle, boundary inclusive.
// A degenerate (collinear) triangle contains no points.
func (t Triangle) Contains(q Point) bool {
	a, b, c, ok := t.Barycentric(q)
	if !ok {
		return false
	}
	return 0 <= a && a <= 1 && 0 <= b && b <= 1 && 0 <= c && c <= 1
}
