package main

import (
	"math/rand"
	"sync"

	"geoprob/geom"
	"geoprob/scene"
)

// estimateProbability estimates, by Monte Carlo sampling, the probability
// that the perpendicular bisector of the two points crosses the square's
// base edge: the reference point is uniform in the fixed triangle, the
// companion point uniform in the unit square. The work is split across
// worker goroutines, each driving its own Scene with its own rand stream.
func estimateProbability(samples, workers int, seed int64) (hits int, estimate float64) {
	if samples <= 0 {
		return 0, 0
	}
	if workers < 1 {
		workers = 1
	}
	if workers > samples {
		workers = samples
	}

	perWorker := samples / workers
	remainder := samples % workers

	var wg sync.WaitGroup
	results := make(chan int, workers)
	for i := 0; i < workers; i++ {
		n := perWorker
		if i == workers-1 {
			n += remainder
		}
		wg.Add(1)
		go func(worker, n int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(worker)))
			results <- countEdgeCrossings(n, rng)
		}(i, n)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for h := range results {
		hits += h
	}
	return hits, float64(hits) / float64(samples)
}

// countEdgeCrossings runs n scripted clicks through a Scene and counts how
// many produce a drawable base-edge crossing.
func countEdgeCrossings(n int, rng *rand.Rand) int {
	sc := scene.New()
	hits := 0
	for i := 0; i < n; i++ {
		q := samplePointInTriangle(sc.Triangle, rng)
		if !sc.Click(q, rng) {
			continue
		}
		if sc.OnEdge {
			hits++
		}
	}
	return hits
}

// samplePointInTriangle draws a uniform point from the triangle by rejection
// sampling over its bounding box.
func samplePointInTriangle(t geom.Triangle, rng *rand.Rand) geom.Point {
	minX, maxX := boundsOf(t.A.X, t.B.X, t.C.X)
	minY, maxY := boundsOf(t.A.Y, t.B.Y, t.C.Y)
	for {
		q := geom.Pt(
			minX+rng.Float64()*(maxX-minX),
			minY+rng.Float64()*(maxY-minY),
		)
		if t.Contains(q) {
			return q
		}
	}
}

// boundsOf returns the minimum and maximum of three values.
func boundsOf(a, b, c float64) (min, max float64) {
	min, max = a, a
	for _, v := range [...]float64{b, c} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
