package main

// Rendering and sampling configuration constants used throughout the
// application. The view window covers the unit square with a 0.1 margin on
// every side.
const (
	screenW, screenH = 480, 480
	windowScale      = 2

	viewMin = -0.1
	viewMax = 1.1
	// Pixels per scene unit; the window spans viewMax-viewMin scene units.
	pxPerUnit = screenW / (viewMax - viewMin)

	markerRadius = 0.012 // scene units
	outlineWidth = 2.0   // device pixels
	gridWidth    = 1.0
	dashOn       = 6.0
	dashOff      = 4.0
	gridStep     = 0.2
	shapeAlpha   = 0.3

	defaultSnapshotPoint = "0.4,0.2"
)
