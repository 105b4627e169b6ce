// Package metrics holds the per-render counters and timings, written once
// per render job and handed back to the caller alongside the image.
package metrics

import "time"

// Counters tallies per-render face/voxel statistics.
type Counters struct {
	Voxels         int
	FacesDrawn     int
	FacesBackfaced int
	FacesCulledAdj int
	PolygonsFilled int
}

// Timings records how long each render stage took. Zero value for a stage
// that did not run (e.g. Outline when no outline was requested).
type Timings struct {
	Optimize         time.Duration
	TransformAndSort time.Duration
	Draw             time.Duration
	Outline          time.Duration
	Downsample       time.Duration
	Total            time.Duration
}

// Metrics is the full per-render report handed back alongside the image.
type Metrics struct {
	Counters Counters
	Timings  Timings
}

// Stopwatch accumulates a single stage's duration across possibly multiple
// Start/Stop calls (a stage can be entered more than once, e.g. per-frame in
// an animation run summed into one report).
type Stopwatch struct {
	start   time.Time
	Elapsed time.Duration
	running bool
}

// Start begins timing. Calling Start while already running is a no-op.
func (s *Stopwatch) Start(now time.Time) {
	if s.running {
		return
	}
	s.start = now
	s.running = true
}

// Stop accumulates the elapsed time since Start into Elapsed.
func (s *Stopwatch) Stop(now time.Time) {
	if !s.running {
		return
	}
	s.Elapsed += now.Sub(s.start)
	s.running = false
}
