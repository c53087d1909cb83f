package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"geoprob/geom"
	"geoprob/scene"
)

// writeSnapshot performs one scripted click and renders the resulting scene
// to a PNG without opening a window, then prints the image to the terminal.
func writeSnapshot(path, pointSpec string, seed int64) error {
	q, err := parsePoint(pointSpec)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc := scene.New()
	rng := rand.New(rand.NewSource(seed))
	if !sc.Click(q, rng) {
		return fmt.Errorf("snapshot point (%g, %g) is outside the triangle", q.X, q.Y)
	}
	if err := gg.SavePNG(path, renderScene(sc)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

// parsePoint parses a coordinate pair in the form "x,y".
func parsePoint(spec string) (geom.Point, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("point %q: want \"x,y\"", spec)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", spec, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", spec, err)
	}
	return geom.Pt(x, y), nil
}
