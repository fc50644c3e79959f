package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodcross/internal/sims/flood"
)

func TestParseHJSON(t *testing.T) {
	doc := []byte(`{
  # grid
  rows: 8
  cols: 12
  random: true
  seed: 99
  interval_ms: 400
  theme: dark
}`)
	f, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, flood.Config{Rows: 8, Cols: 12, Randomize: true, Seed: 99}, f.Config())
	assert.Equal(t, 400*time.Millisecond, f.Interval())
	assert.Equal(t, flood.ThemeDark, f.ThemeValue())
	assert.Equal(t, "info", f.LogLevel)
}

func TestParseKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte(`{"cols": 5}`))
	require.NoError(t, err)
	want := Defaults()
	want.Cols = 5
	assert.Equal(t, want, f)
}

func TestParseRejectsBadDimensions(t *testing.T) {
	for _, doc := range []string{
		`{rows: 30}`,
		`{rows: 2.7}`,
		`{cols: 4.5}`,
		`{cols: "six"}`,
		`{rows: "1"}`,
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, flood.ErrInvalidDimension, doc)
	}
}

func TestParseQuotedDimensions(t *testing.T) {
	f, err := Parse([]byte(`{rows: "7", cols: 9.0}`))
	require.NoError(t, err)
	assert.Equal(t, 7, f.Rows)
	assert.Equal(t, 9, f.Cols)
}

func TestParseSeedPrecision(t *testing.T) {
	f, err := Parse([]byte(`{seed: "9007199254740993"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), f.Seed)

	f, err = Parse([]byte(`{seed: -12}`))
	require.NoError(t, err)
	assert.Equal(t, int64(-12), f.Seed)

	for _, doc := range []string{
		`{seed: 9007199254740993}`,
		`{seed: 1.5}`,
		`{interval_ms: 250.5}`,
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrNotInteger, doc)
	}

	_, err = Parse([]byte(`{seed: "lucky"}`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownKeysAndThemes(t *testing.T) {
	_, err := Parse([]byte(`{speed: 3}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{theme: neon}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floodcross.hjson")
	require.NoError(t, os.WriteFile(path, []byte("{\n  rows: 4\n  cols: 6\n}\n"), 0o644))
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Rows)
	assert.Equal(t, 6, f.Cols)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hjson"))
	assert.Error(t, err)
}
