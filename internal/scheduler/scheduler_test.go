package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/voxelforge/vrender/internal/engine"
	"github.com/voxelforge/vrender/internal/shading"
)

func view() engine.ViewParameters {
	return engine.ViewParameters{EulerX: 10, Width: 64, Height: 64}
}

func TestEnqueueCoalescesToLatestRequest(t *testing.T) {
	s := New(DefaultOptions())
	r1 := NewRequest(SourceUI, "model-a", view(), shading.DefaultConfig())
	r2 := NewRequest(SourceUI, "model-a", view(), shading.DefaultConfig())

	s.Enqueue(r1)
	seq2 := s.Enqueue(r2)

	req, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, seq2, req.Seq)
	require.Equal(t, r2.Handle, req.Handle)

	_, ok = s.Pop()
	require.False(t, ok, "slot should be empty after Pop")
}

func TestImmediateSourceBypassesThrottle(t *testing.T) {
	s := New(DefaultOptions())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Enqueue(NewRequest(SourceImmediate, "m", view(), shading.DefaultConfig()))
	require.True(t, s.Ready(now))
}

func TestThrottledSourceWaitsForMinInterval(t *testing.T) {
	s := New(DefaultOptions())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.lastRenderEnd = now
	s.Enqueue(NewRequest(SourceMouseMove, "m", view(), shading.DefaultConfig()))

	require.False(t, s.Ready(now.Add(5*time.Millisecond)))
	require.True(t, s.Ready(now.Add(20*time.Millisecond)))
}

func TestCompleteDropsStaleSequences(t *testing.T) {
	s := New(DefaultOptions())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	req1 := s.Enqueue(NewRequest(SourceUI, "m", view(), shading.DefaultConfig()))
	req2 := s.Enqueue(NewRequest(SourceUI, "m", view(), shading.DefaultConfig()))

	require.True(t, s.Complete(req2, 10*time.Millisecond, now))
	require.False(t, s.Complete(req1, 10*time.Millisecond, now), "an older sequence must never be delivered after a newer one")
}

func TestThrottleIntervalTracksP75BoundedByMinMax(t *testing.T) {
	s := New(Options{RingSize: 4, MinThrottle: 16 * time.Millisecond, MaxThrottle: 250 * time.Millisecond})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, ms := range []int{10, 100, 100, 100} {
		s.Complete(0, time.Duration(ms)*time.Millisecond, now)
	}
	interval := s.throttleInterval()
	require.Equal(t, 100*time.Millisecond, interval)
}

func TestThrottleIntervalNeverExceedsMax(t *testing.T) {
	s := New(Options{RingSize: 2, MinThrottle: 16 * time.Millisecond, MaxThrottle: 250 * time.Millisecond})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Complete(0, 900*time.Millisecond, now)
	s.Complete(0, 900*time.Millisecond, now)
	require.Equal(t, 250*time.Millisecond, s.throttleInterval())
}

func TestKeyEqualForIdenticalInputs(t *testing.T) {
	k1 := BuildKey("m", view(), shading.DefaultConfig())
	k2 := BuildKey("m", view(), shading.DefaultConfig())
	require.Equal(t, k1, k2)

	other := view()
	other.EulerX = 99
	k3 := BuildKey("m", other, shading.DefaultConfig())
	require.NotEqual(t, k1, k3)
}
