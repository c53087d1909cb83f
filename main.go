package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	if *estimateFlag > 0 {
		runEstimate(*estimateFlag, *estimateWorkersFlag)
		return
	}
	if *snapshotFlag != "" {
		if err := writeSnapshot(*snapshotFlag, *snapshotPointFlag, *seedFlag); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		return
	}

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle("Click inside the Triangle to set a point")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}

// runEstimate executes the Monte Carlo mode, optionally under a CPU profile.
func runEstimate(samples, workers int) {
	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile failed: %v", err)
		}
		defer stop()
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()
	hits, estimate := estimateProbability(samples, workers, seed)
	log.Printf("Estimated base-edge crossing probability: %.6f (%d/%d samples, %d workers, %v)",
		estimate, hits, samples, workers, time.Since(start).Round(time.Millisecond))
}
