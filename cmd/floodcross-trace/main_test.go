package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodcross/internal/settings"
	"floodcross/internal/sims/flood"
)

func parseOptions(t *testing.T, args ...string) (*options, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("floodcross-trace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var o options
	o.bind(fs)
	require.NoError(t, fs.Parse(args))
	return &o, fs
}

func TestSettingsDoNotOverrideExplicitFlags(t *testing.T) {
	f, err := settings.Parse([]byte(`{rows: 9, cols: 8, random: true, seed: 7, interval_ms: 600, loglevel: debug}`))
	require.NoError(t, err)

	o, fs := parseOptions(t, "-rows=4", "-loglevel=warn", "-config=trace.hjson")
	o.applySettings(f, fs)

	assert.Equal(t, flood.Config{Rows: 4, Cols: 8, Randomize: true, Seed: 7}, o.floodConfig())
	assert.Equal(t, 600, o.intervalMs)
	assert.Equal(t, "warn", o.loglevel)
}

func TestSettingsFillUnsetFlags(t *testing.T) {
	f, err := settings.Parse([]byte(`{rows: 5, cols: 6}`))
	require.NoError(t, err)

	o, fs := parseOptions(t, "-instant")
	o.applySettings(f, fs)

	want := settings.Defaults()
	assert.Equal(t, 5, o.rows)
	assert.Equal(t, 6, o.cols)
	assert.Equal(t, want.Seed, o.seed)
	assert.Equal(t, want.IntervalMs, o.intervalMs)
	assert.True(t, o.instant)
}
