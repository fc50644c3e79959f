package app

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodcross/internal/settings"
	"floodcross/internal/sims/flood"
)

func TestControlsClampAndPending(t *testing.T) {
	cfg := flood.Config{Rows: 3, Cols: 3, Seed: 5}
	c := NewControls(cfg, 100*time.Millisecond)
	assert.Equal(t, 200, c.IntervalMs)
	assert.False(t, c.Pending(cfg))

	require.True(t, c.SetIntParameter("rows", 50))
	assert.Equal(t, flood.MaxDimension, c.Rows)
	require.True(t, c.SetIntParameter("cols", 0))
	assert.Equal(t, flood.MinDimension, c.Cols)
	require.True(t, c.SetIntParameter("interval_ms", 1250))
	assert.Equal(t, 1300, c.IntervalMs)
	assert.Equal(t, 1300*time.Millisecond, c.Interval())
	require.True(t, c.SetBoolParameter("random", true))

	assert.True(t, c.Pending(cfg))
	next := c.Config(cfg)
	assert.Equal(t, flood.Config{Rows: 20, Cols: 2, Randomize: true, Seed: 5}, next)
	assert.NoError(t, next.Validate())

	assert.False(t, c.SetIntParameter("random", 1))
	assert.False(t, c.SetIntParameter("nope", 1))
	assert.False(t, c.SetBoolParameter("rows", true))
}

func TestControlsParameters(t *testing.T) {
	c := NewControls(flood.Config{Rows: 4, Cols: 6, Randomize: true}, time.Second)
	snap := c.Parameters()
	for key, want := range map[string]string{"rows": "4", "cols": "6", "interval_ms": "1000", "random": "true"} {
		p, ok := snap.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, want, p.Value, key)
	}
	assert.Len(t, c.ParameterControls(), 4)
}

func TestConfigApplySettingsKeepsExplicitFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("floodcross", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-rows", "9", "-theme", "dark"}))

	f := settings.Defaults()
	f.Rows = 4
	f.Cols = 7
	f.Randomize = true
	f.IntervalMs = 500
	f.Theme = "light"
	cfg.ApplySettings(f, fs)

	assert.Equal(t, 9, cfg.Rows, "explicit flag wins")
	assert.Equal(t, 7, cfg.Cols)
	assert.True(t, cfg.Random)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.Interval())
	assert.Equal(t, flood.Config{Rows: 9, Cols: 7, Randomize: true, Seed: f.Seed}, cfg.FloodConfig())
}
