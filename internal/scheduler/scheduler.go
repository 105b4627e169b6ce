// Package scheduler implements a preview scheduler: a single-threaded,
// cooperative coalescing layer in front of the engine's pure Render
// function. The engine itself never imports this package — a render is
// just a function call from any thread; scheduler owns the coalescing,
// adaptive-throttle, and ordering policy around it, the same separation
// the teacher draws between batch.Run's worker pool and the pure per-item
// render call it drives.
package scheduler

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voxelforge/vrender/internal/engine"
)

// Source names where a request originated, determining whether it bypasses
// the adaptive throttle.
type Source int

const (
	SourceUI Source = iota
	SourceControls
	SourceMouseMove
	SourceImmediate
	SourceManual
)

// BypassesThrottle reports whether requests from this source run as soon as
// the scheduler is polled, skipping the adaptive-throttle wait.
func (s Source) BypassesThrottle() bool {
	return s == SourceImmediate || s == SourceManual
}

// Key is the entire observable view snapshot a request was built from:
// rotation, camera, shading config, model identity, output size. Two
// requests with an equal Key represent the same intended render; callers
// are not required to recompute a model's voxels to know this — the model's
// part of the Key is the caller-supplied modelID alone.
type Key string

// BuildKey derives a Key from the inputs that fully determine a render's
// output, without reaching into the model itself. Enqueue does not compare
// keys: its single slot always holds the newest request, whatever its Key.
func BuildKey(modelID string, view engine.ViewParameters, shader engine.ShaderConfig) Key {
	return Key(fmt.Sprintf("%s|%+v|%+v", modelID, view, shader))
}

// RenderRequest is one coalescable unit of scheduling work.
type RenderRequest struct {
	Handle  uuid.UUID
	Seq     uint64
	Key     Key
	Source  Source
	ModelID string
	View    engine.ViewParameters
	Shader  engine.ShaderConfig
}

// NewRequest builds a RenderRequest with a fresh handle and derived key. Seq
// is assigned later, by Enqueue.
func NewRequest(source Source, modelID string, view engine.ViewParameters, shader engine.ShaderConfig) RenderRequest {
	return RenderRequest{
		Handle:  uuid.New(),
		Source:  source,
		ModelID: modelID,
		View:    view,
		Shader:  shader,
		Key:     BuildKey(modelID, view, shader),
	}
}

// Options configures the adaptive throttle's ring buffer and bounds
// (defaults: N=16, min=16ms, max=250ms).
type Options struct {
	RingSize    int
	MinThrottle time.Duration
	MaxThrottle time.Duration
}

// DefaultOptions returns the stated defaults.
func DefaultOptions() Options {
	return Options{RingSize: 16, MinThrottle: 16 * time.Millisecond, MaxThrottle: 250 * time.Millisecond}
}

// Scheduler owns exactly one pending request slot, a monotone delivery
// sequence, and a ring buffer of recent render latencies. All state is
// per-instance — no global mutable state — so callers construct one
// Scheduler per preview surface.
type Scheduler struct {
	mu            sync.Mutex
	opts          Options
	pending       *RenderRequest
	seq           uint64
	lastDelivered uint64
	lastRenderEnd time.Time
	latencies     []time.Duration
	latIdx        int
}

// New builds a Scheduler with the given options.
func New(opts Options) *Scheduler {
	if opts.RingSize <= 0 {
		opts.RingSize = DefaultOptions().RingSize
	}
	if opts.MinThrottle <= 0 {
		opts.MinThrottle = DefaultOptions().MinThrottle
	}
	if opts.MaxThrottle <= 0 {
		opts.MaxThrottle = DefaultOptions().MaxThrottle
	}
	return &Scheduler{opts: opts}
}

// Enqueue submits a request. Coalescing keeps only one pending slot: the
// newest Enqueue call always wins, the latest snapshot, for a
// single-threaded UI event loop (there is at most one outstanding,
// not-yet-popped request at a time). The assigned sequence number is
// returned for the caller's own bookkeeping.
func (s *Scheduler) Enqueue(req RenderRequest) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	req.Seq = s.seq
	s.pending = &req
	return req.Seq
}

// Ready reports whether the pending request (if any) may run now.
// Priority-bypass sources are always ready; everything else must wait for
// the adaptive throttle interval to elapse since the last render completed.
func (s *Scheduler) Ready(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return false
	}
	if s.pending.Source.BypassesThrottle() {
		return true
	}
	return now.Sub(s.lastRenderEnd) >= s.throttleInterval()
}

// Pop removes and returns the pending request, clearing the slot. Callers
// should check Ready first; Pop itself does not throttle.
func (s *Scheduler) Pop() (RenderRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return RenderRequest{}, false
	}
	req := *s.pending
	s.pending = nil
	return req, true
}

// Complete records a finished job's latency, feeding the adaptive throttle,
// and reports whether its result should still be delivered. A result is
// stale, and dropped, when a newer request has been enqueued since it was
// (seq < the latest assigned sequence) or when its sequence is not newer
// than the last delivered one, so delivery stays monotone.
func (s *Scheduler) Complete(seq uint64, latency time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRenderEnd = now
	s.recordLatency(latency)
	if seq <= s.lastDelivered || seq < s.seq {
		return false
	}
	s.lastDelivered = seq
	return true
}

func (s *Scheduler) recordLatency(d time.Duration) {
	if len(s.latencies) < s.opts.RingSize {
		s.latencies = append(s.latencies, d)
		return
	}
	s.latencies[s.latIdx] = d
	s.latIdx = (s.latIdx + 1) % s.opts.RingSize
}

// throttleInterval computes max(minMs, round(p75)) bounded by maxMs over the
// ring buffer's current contents. An empty buffer (no render has completed
// yet) uses the floor.
func (s *Scheduler) throttleInterval() time.Duration {
	if len(s.latencies) == 0 {
		return s.opts.MinThrottle
	}
	sorted := make([]time.Duration, len(s.latencies))
	copy(sorted, s.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(math.Ceil(0.75*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	p75 := sorted[idx]

	interval := p75
	if interval < s.opts.MinThrottle {
		interval = s.opts.MinThrottle
	}
	if interval > s.opts.MaxThrottle {
		interval = s.opts.MaxThrottle
	}
	return interval
}
