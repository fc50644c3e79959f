// Package settings loads the optional HJSON settings file shared by the
// floodcross commands.
package settings

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/hjson/hjson-go"
	"github.com/mitchellh/mapstructure"

	"floodcross/internal/sims/flood"
)

// ErrNotInteger reports a number that cannot be stored in an integer field
// without losing information.
var ErrNotInteger = errors.New("settings: not an exact integer")

// HJSON numbers are float64; integers past 2^53 may already be rounded.
const maxExactInt = 1 << 53

// File is the on-disk settings document. Omitted keys keep their defaults.
type File struct {
	Rows       int    `mapstructure:"rows"`
	Cols       int    `mapstructure:"cols"`
	Randomize  bool   `mapstructure:"random"`
	Seed       int64  `mapstructure:"seed"`
	IntervalMs int    `mapstructure:"interval_ms"`
	Theme      string `mapstructure:"theme"`
	LogLevel   string `mapstructure:"loglevel"`
}

// Defaults mirrors flood.DefaultConfig plus the front-end defaults.
func Defaults() File {
	cfg := flood.DefaultConfig()
	return File{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Randomize:  cfg.Randomize,
		Seed:       cfg.Seed,
		IntervalMs: 1000,
		Theme:      flood.ThemeLight.String(),
		LogLevel:   "info",
	}
}

// Load reads and decodes path on top of Defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes an HJSON (or plain JSON) document on top of Defaults and
// validates it.
func Parse(data []byte) (File, error) {
	var dat map[string]interface{}
	if err := hjson.Unmarshal(data, &dat); err != nil {
		return File{}, fmt.Errorf("settings: parse: %w", err)
	}
	if err := checkIntegers(dat); err != nil {
		return File{}, fmt.Errorf("settings: %w", err)
	}
	f := Defaults()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  stringToInt64Hook,
		Result:      &f,
		ErrorUnused: true,
	})
	if err != nil {
		return File{}, err
	}
	if err := decoder.Decode(dat); err != nil {
		return File{}, fmt.Errorf("settings: decode: %w", err)
	}
	if err := f.Config().Validate(); err != nil {
		return File{}, fmt.Errorf("settings: %w", err)
	}
	if _, err := flood.ParseTheme(f.Theme); err != nil {
		return File{}, fmt.Errorf("settings: %w", err)
	}
	return f, nil
}

// checkIntegers rejects fractional or imprecise numbers for the integer keys
// before mapstructure truncates them. Dimensions may also be quoted.
func checkIntegers(dat map[string]interface{}) error {
	for _, key := range []string{"rows", "cols"} {
		switch v := dat[key].(type) {
		case float64:
			if v != math.Trunc(v) || math.Abs(v) >= maxExactInt {
				return fmt.Errorf("%s=%v is not an integer: %w", key, v, flood.ErrInvalidDimension)
			}
		case string:
			n, err := flood.ParseDimension(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			dat[key] = n
		}
	}
	for _, key := range []string{"seed", "interval_ms"} {
		v, ok := dat[key].(float64)
		if !ok {
			continue
		}
		if v != math.Trunc(v) {
			return fmt.Errorf("%s=%v: %w", key, v, ErrNotInteger)
		}
		if math.Abs(v) >= maxExactInt {
			return fmt.Errorf("%s=%v: %w (quote it as a string)", key, v, ErrNotInteger)
		}
	}
	return nil
}

// stringToInt64Hook lets seeds be written as strings so every int64 value
// survives the float64 number parsing.
func stringToInt64Hook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int64 {
		return data, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(data.(string)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", data, ErrNotInteger)
	}
	return n, nil
}

// Config returns the simulation part of the settings.
func (f File) Config() flood.Config {
	return flood.Config{Rows: f.Rows, Cols: f.Cols, Randomize: f.Randomize, Seed: f.Seed}
}

// Interval returns the autoplay period.
func (f File) Interval() time.Duration {
	return time.Duration(f.IntervalMs) * time.Millisecond
}

// ThemeValue returns the parsed theme, light when unset.
func (f File) ThemeValue() flood.Theme {
	t, _ := flood.ParseTheme(f.Theme)
	return t
}
