package main

import (
	"flag"
	"runtime"
)

// Command-line flags that control presentation and the optional headless
// modes. The geometry itself is fixed and has no knobs.
var (
	// debugFlag enables the FPS and cursor overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and cursor coordinate overlay")

	// showGridFlag toggles the light background grid lines.
	showGridFlag = flag.Bool("show-grid", true, "draw background grid lines")

	// seedFlag makes the random companion point reproducible.
	seedFlag = flag.Int64("seed", 0, "seed for the random point source (0 uses the current time)")

	// snapshotFlag renders one scripted click to a PNG instead of opening a window.
	snapshotFlag = flag.String("snapshot", "", "render one click headlessly to the given PNG and exit")

	// snapshotPointFlag selects the clicked point used by -snapshot.
	snapshotPointFlag = flag.String("snapshot-point", defaultSnapshotPoint, "reference point for -snapshot, as \"x,y\"")

	// estimateFlag runs the Monte Carlo probability estimate and exits.
	estimateFlag = flag.Int("estimate", 0, "estimate the base-edge crossing probability with this many samples and exit")

	// estimateWorkersFlag sets the goroutine count used by -estimate.
	estimateWorkersFlag = flag.Int("estimate-workers", runtime.NumCPU(), "worker goroutines used by -estimate")

	// cpuProfileFlag captures a CPU profile while -estimate runs.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of the -estimate run to the given file")
)
