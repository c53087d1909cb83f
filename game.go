package main

import (
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"geoprob/scene"
)

// Game drives the interactive demo: it forwards clicks to the Scene and
// keeps a cached rasterization of the current frame.
type Game struct {
	scene      *scene.Scene
	sampleRand *rand.Rand

	frame    *image.RGBA
	frameGen uint64
	hasFrame bool
}

// newGame constructs a fully initialized Game instance.
func newGame() *Game {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		scene:      scene.New(),
		sampleRand: rand.New(rand.NewSource(seed)),
	}
}

// Update polls for mouse clicks and forwards them to the scene. Each click
// is handled to completion before the next tick; there is no overlapping
// work.
func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && mx < screenW && my >= 0 && my < screenH {
			q := viewToScene(mx, my)
			if !g.scene.Click(q, g.sampleRand) {
				log.Printf("Click at (%.3f, %.3f) is outside the triangle.", q.X, q.Y)
			}
		}
	}
	return nil
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }
