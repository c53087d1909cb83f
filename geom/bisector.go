package geom

// BisectorAxisIntersection returns the point where the perpendicular
// bisector of segment p1-p2 crosses the x-axis.
//
// Two segment orientations are special:
//   - vertical (p1.X == p2.X): the bisector is horizontal and never meets
//     the axis; by convention the shared x-coordinate is returned as (x, 0).
//   - horizontal (p1.Y == p2.Y): the bisector is vertical and its slope form
//     is undefined; ok is false and the result must not be used.
func BisectorAxisIntersection(p1, p2 Point) (Point, bool) {
	if p1.X == p2.X {
		return Point{X: p1.X, Y: 0}, true
	}
	if p1.Y == p2.Y {
		return Point{}, false
	}
	mid := p1.Midpoint(p2)
	slope := -(p2.X - p1.X) / (p2.Y - p1.Y)
	intercept := mid.Y - slope*mid.X
	return Point{X: -intercept / slope, Y: 0}, true
}
