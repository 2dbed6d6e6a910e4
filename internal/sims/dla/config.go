package dla

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"dla/internal/core"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// maxAgeBands is bounded by the display encoding: values 0 and 1 are reserved
// for empty cells and walkers.
const maxAgeBands = 254

// ErrInvalidConfig reports a configuration the aggregate cannot run with.
var ErrInvalidConfig = errors.New("invalid dla config")

// Config controls the aggregate dimensions, population, and display.
type Config struct {
	Width         int   `yaml:"width"`
	Height        int   `yaml:"height"`
	ParticleCount int   `yaml:"particles"`
	Seed          int64 `yaml:"seed"`

	// SeedX and SeedY locate the initial stuck cell. Negative values select
	// the grid centre.
	SeedX int `yaml:"seed_x"`
	SeedY int `yaml:"seed_y"`

	ShowWalkers bool `yaml:"show_walkers"`
	AgeBands    int  `yaml:"age_bands"`
	BandTicks   int  `yaml:"band_ticks"`
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("dla: parsing embedded defaults: %v", err))
	}
	return c
}

// LoadConfig reads a YAML file and merges it over the embedded defaults. An
// empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config file: %w", err)
	}
	return c, nil
}

// YAML encodes the effective configuration.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// SeedPoint resolves the initial stuck cell.
func (c Config) SeedPoint() core.Point {
	p := core.Point{X: c.SeedX, Y: c.SeedY}
	if p.X < 0 {
		p.X = c.Width / 2
	}
	if p.Y < 0 {
		p.Y = c.Height / 2
	}
	return p
}

// Validate rejects configurations that would leave the walkers without an
// empty cell to respawn into, since Reset would then never terminate.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	seed := c.SeedPoint()
	if !(core.Size{W: c.Width, H: c.Height}).Contains(seed.X, seed.Y) {
		return fmt.Errorf("%w: seed (%d,%d) outside %dx%d grid", ErrInvalidConfig, seed.X, seed.Y, c.Width, c.Height)
	}
	if c.ParticleCount < 0 {
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalidConfig, c.ParticleCount)
	}
	if c.ParticleCount+1 >= c.Width*c.Height {
		return fmt.Errorf("%w: %d particles plus the seed leave no empty cell in a %dx%d grid",
			ErrInvalidConfig, c.ParticleCount, c.Width, c.Height)
	}
	if c.AgeBands < 1 || c.AgeBands > maxAgeBands {
		return fmt.Errorf("%w: age bands %d outside [1, %d]", ErrInvalidConfig, c.AgeBands, maxAgeBands)
	}
	if c.BandTicks <= 0 {
		return fmt.Errorf("%w: band ticks %d must be positive", ErrInvalidConfig, c.BandTicks)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs)
// layered over the defaults. A "config" key names a YAML file to load first.
func FromMap(cfg map[string]string) (Config, error) {
	c, err := LoadConfig(cfg["config"])
	if err != nil {
		return c, err
	}
	return ApplyMap(c, cfg), nil
}

// ApplyMap overrides fields of c from key/value pairs. Unparseable values are
// ignored.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ParticleCount = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedX = parsed
		}
	}
	if v, ok := cfg["seed_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedY = parsed
		}
	}
	if v, ok := cfg["show_walkers"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowWalkers = parsed
		}
	}
	if v, ok := cfg["age_bands"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.AgeBands = parsed
		}
	}
	if v, ok := cfg["band_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BandTicks = parsed
		}
	}
	return c
}
