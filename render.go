package main

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"geoprob/geom"
	"geoprob/scene"
)

// Draw uploads the cached rasterization of the scene, re-rendering it only
// when a click has changed the scene generation.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.hasFrame || g.frameGen != g.scene.Generation() {
		g.frame = renderScene(g.scene)
		g.frameGen = g.scene.Generation()
		g.hasFrame = true
	}
	screen.WritePixels(g.frame.Pix)

	if *debugFlag {
		mx, my := ebiten.CursorPosition()
		cursor := viewToScene(mx, my)
		msg := fmt.Sprintf("FPS: %.1f\nCursor: (%.3f, %.3f)\nClicks: %d",
			ebiten.ActualFPS(), cursor.X, cursor.Y, g.scene.Generation())
		if g.scene.HasPoint {
			if g.scene.OnEdge {
				msg += fmt.Sprintf("\nCrossing: x=%.3f", g.scene.Intersection.X)
			} else if g.scene.Defined {
				msg += "\nCrossing: off the base edge"
			} else {
				msg += "\nCrossing: undefined"
			}
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// renderScene rasterizes the scene into an RGBA frame sized for the window.
// The context is flipped and scaled so paths are built in scene coordinates
// with the origin at the bottom left.
func renderScene(sc *scene.Scene) *image.RGBA {
	dc := gg.NewContext(screenW, screenH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.Translate(0, screenH)
	dc.Scale(1, -1)
	dc.Scale(pxPerUnit, pxPerUnit)
	dc.Translate(-viewMin, -viewMin)

	if *showGridFlag {
		drawGrid(dc)
	}
	drawSquare(dc)
	drawTriangle(dc, sc.Triangle)

	if sc.HasPoint {
		drawWedge(dc, sc.Triangle.A, sc.RadiusLeft, 0, gg.Radians(90))
		drawWedge(dc, sc.Triangle.B, sc.RadiusRight, gg.Radians(90), gg.Radians(180))
		drawMarker(dc, sc.Reference, 0, 0, 1)
		drawMarker(dc, sc.Random, 1, 0, 0)
		if sc.OnEdge {
			drawDashed(dc, sc.Reference, sc.Intersection, 0, 0, 1)
			drawDashed(dc, sc.Random, sc.Intersection, 1, 0, 0)
			drawMarker(dc, sc.Intersection, 0, 0.6, 0)
		}
	}
	return dc.Image().(*image.RGBA)
}

// drawGrid strokes light guide lines at the axis tick positions.
func drawGrid(dc *gg.Context) {
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(gridWidth)
	for v := 0.0; v <= 1+gridStep/2; v += gridStep {
		dc.MoveTo(v, viewMin)
		dc.LineTo(v, viewMax)
		dc.MoveTo(viewMin, v)
		dc.LineTo(viewMax, v)
	}
	dc.Stroke()
}

// drawSquare strokes the unit square outline.
func drawSquare(dc *gg.Context) {
	dc.MoveTo(0, 0)
	dc.LineTo(1, 0)
	dc.LineTo(1, 1)
	dc.LineTo(0, 1)
	dc.ClosePath()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()
}

// drawTriangle fills and outlines the click region.
func drawTriangle(dc *gg.Context, t geom.Triangle) {
	dc.MoveTo(t.A.X, t.A.Y)
	dc.LineTo(t.B.X, t.B.Y)
	dc.LineTo(t.C.X, t.C.Y)
	dc.ClosePath()
	dc.SetRGBA(0, 0, 1, shapeAlpha)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 1)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()
}

// drawWedge fills a circular sector spanning [a0, a1] around center.
func drawWedge(dc *gg.Context, center geom.Point, radius, a0, a1 float64) {
	dc.MoveTo(center.X, center.Y)
	dc.DrawArc(center.X, center.Y, radius, a0, a1)
	dc.ClosePath()
	dc.SetRGBA(0, 0, 1, shapeAlpha)
	dc.Fill()
}

// drawMarker fills a small dot at p.
func drawMarker(dc *gg.Context, p geom.Point, r, g, b float64) {
	dc.DrawCircle(p.X, p.Y, markerRadius)
	dc.SetRGB(r, g, b)
	dc.Fill()
}

// drawDashed strokes a dashed segment between two points.
func drawDashed(dc *gg.Context, from, to geom.Point, r, g, b float64) {
	dc.SetDash(dashOn, dashOff)
	dc.MoveTo(from.X, from.Y)
	dc.LineTo(to.X, to.Y)
	dc.SetRGB(r, g, b)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()
	dc.SetDash()
}
