package flood

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"Default", DefaultConfig(), true},
		{"Smallest", Config{Rows: 2, Cols: 2}, true},
		{"Largest", Config{Rows: 20, Cols: 20}, true},
		{"RowsTooSmall", Config{Rows: 1, Cols: 5}, false},
		{"ColsTooLarge", Config{Rows: 5, Cols: 21}, false},
		{"Zero", Config{}, false},
		{"Negative", Config{Rows: -3, Cols: 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidDimension), "got %v", err)
		})
	}
}

func TestParseDimension(t *testing.T) {
	v, err := ParseDimension(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	for _, in := range []string{"", "abc", "3.5", "1", "21", "-2"} {
		_, err := ParseDimension(in)
		assert.ErrorIs(t, err, ErrInvalidDimension, "input %q", in)
	}
}

func TestWithTimeSeed(t *testing.T) {
	c := Config{Rows: 3, Cols: 3, Seed: 5}
	assert.Equal(t, c, c.WithTimeSeed())

	c.Seed = 0
	seeded := c.WithTimeSeed()
	assert.NotZero(t, seeded.Seed)
	assert.Equal(t, 3, seeded.Rows)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
	assert.Equal(t, ThemeLight, th.Toggle())

	th, err = ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, th)

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	g := gridFromRows(t, "~.", "..")
	route, ok := CrossingRoute(g)
	require.True(t, ok)
	assert.Equal(t, "~*\n.*\n", Format(g, route))
	assert.Equal(t, "~.\n..\n", Format(g, nil))
}
