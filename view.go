package main

import "geoprob/geom"

// viewToScene maps a window pixel to scene coordinates. Pixel centers are
// sampled and the y-axis is flipped so the scene origin sits at the bottom
// left, matching the rasterizer's transform.
func viewToScene(px, py int) geom.Point {
	x := viewMin + (float64(px)+0.5)/pxPerUnit
	y := viewMax - (float64(py)+0.5)/pxPerUnit
	return geom.Pt(x, y)
}

// sceneToView maps scene coordinates to the containing window pixel.
func sceneToView(p geom.Point) (int, int) {
	px := int((p.X - viewMin) * pxPerUnit)
	py := int((viewMax - p.Y) * pxPerUnit)
	return clampCoord(px, 0, screenW-1), clampCoord(py, 0, screenH-1)
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
