package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFillsDefaultsWhenEmpty(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	require.Equal(t, 256, cfg.Width)
	require.Equal(t, 256, cfg.Height)
	require.Equal(t, 20.0, cfg.Scale)
	require.Equal(t, 1.0, cfg.Supersample)
	require.Equal(t, 90, cfg.WebPQuality)
	require.Equal(t, 16, cfg.ThrottleRingSize)
	require.Equal(t, 16, cfg.ThrottleMinMs)
	require.Equal(t, 250, cfg.ThrottleMaxMs)
}

func TestResolveFlagsOverrideConfigFileValues(t *testing.T) {
	cfg := Config{Width: 128, WebPQuality: 50}
	cfg.Resolve(Flags{Width: 512, Quality: 80})
	require.Equal(t, 512, cfg.Width)
	require.Equal(t, 80, cfg.WebPQuality)
}

func TestThrottleDurationsConvertFromMilliseconds(t *testing.T) {
	cfg := Config{ThrottleMinMs: 16, ThrottleMaxMs: 250}
	require.Equal(t, "16ms", cfg.ThrottleMin().String())
	require.Equal(t, "250ms", cfg.ThrottleMax().String())
}
