// Package config loads server settings from the environment.
//
// Values come from process environment variables, optionally seeded from a
// .env file. Each setting is declared on a struct field with an `env` tag:
//
//	`env:"KEY"`          required, error if missing
//	`env:"KEY,default"`  optional, uses default if missing
//
// Supported field types are string, signed integers, bool and float64.
// Nested structs are walked recursively.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/floor-tools-mcp/internal/logging"
)

// Config holds every server setting.
type Config struct {
	Log logging.Config

	// Workers is the goroutine count for constrained searches.
	// Zero selects runtime.NumCPU().
	Workers int `env:"FLOOR_MCP_WORKERS,0"`

	// FloodMaxCells caps the grown bounding box a flood fill may allocate.
	FloodMaxCells int64 `env:"FLOOR_MCP_FLOOD_MAX_CELLS,4000000"`

	// RenderMaxDimension is the default longest side of rendered images.
	RenderMaxDimension int `env:"FLOOR_MCP_RENDER_MAX_DIM,512"`
}

// Load reads the given .env files (".env" when none are named), then fills
// a Config from the environment. Missing .env files are not an error;
// variables already set in the environment take precedence over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := FromEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &cfg, nil
}

// Upper limits accepted by Validate.
const (
	MaxWorkers         = 1024
	MaxRenderDimension = 8192
)

// ErrOutOfRange is wrapped by every Validate failure.
var ErrOutOfRange = errors.New("setting out of range")

// Validate checks that numeric settings are usable, reporting every bad
// setting at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, key string, got int64, want string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s=%d, want %s", ErrOutOfRange, key, got, want))
		}
	}

	check(c.Workers >= 0 && c.Workers <= MaxWorkers,
		"FLOOR_MCP_WORKERS", int64(c.Workers), fmt.Sprintf("0..%d", MaxWorkers))
	check(c.FloodMaxCells > 0,
		"FLOOR_MCP_FLOOD_MAX_CELLS", c.FloodMaxCells, "> 0")
	check(c.RenderMaxDimension > 0 && c.RenderMaxDimension <= MaxRenderDimension,
		"FLOOR_MCP_RENDER_MAX_DIM", int64(c.RenderMaxDimension), fmt.Sprintf("1..%d", MaxRenderDimension))
	check(c.Log.MaxSizeMB > 0,
		"FLOOR_MCP_LOG_MAX_SIZE", int64(c.Log.MaxSizeMB), "> 0")
	check(c.Log.MaxFiles >= 0,
		"FLOOR_MCP_LOG_MAX_FILES", int64(c.Log.MaxFiles), ">= 0")

	return errors.Join(errs...)
}

// FromEnv fills the tagged fields of the struct pointed to by cfg.
func FromEnv(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: expected a pointer to a struct, got %T", cfg)
	}
	return fill(v.Elem())
}

// envTag is a parsed `env:"KEY,default"` tag.
type envTag struct {
	key        string
	def        string
	hasDefault bool
}

func parseTag(tag string) envTag {
	k, d, ok := strings.Cut(tag, ",")
	return envTag{key: strings.TrimSpace(k), def: strings.TrimSpace(d), hasDefault: ok}
}

// lookup returns the environment value, or the default when the variable is
// unset or empty.
func (t envTag) lookup() (string, bool) {
	if val, ok := os.LookupEnv(t.key); ok && val != "" {
		return val, true
	}
	return t.def, t.hasDefault
}

// fill walks the struct, recursing into nested structs and setting every
// field that carries an `env` tag.
func fill(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field, sf := v.Field(i), t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := fill(field); err != nil {
				return err
			}
			continue
		}

		raw, ok := sf.Tag.Lookup("env")
		if !ok || raw == "" {
			continue
		}
		tag := parseTag(raw)

		val, ok := tag.lookup()
		if !ok {
			return fmt.Errorf("missing required env variable %q (for field %q)", tag.key, sf.Name)
		}
		if err := setField(field, val); err != nil {
			return fmt.Errorf("field %q from %s=%q: %w", sf.Name, tag.key, val, err)
		}
	}
	return nil
}

// setField converts val to the field's kind and stores it.
func setField(field reflect.Value, val string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(val, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
