package app

import (
	"flag"
	"fmt"
	"strings"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	HUDWidth   int
	LogLevel   string
	Sets       kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "dla", Scale: 2, TPS: 60, HUDWidth: 220, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 = config seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML config file")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 = hidden)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug, trace")
	fs.Var(&c.Sets, "set", "parameter override in key=value form (repeatable)")
}

// SimOptions merges the config path and -set overrides into the factory map.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.ConfigPath != "" {
		opts["config"] = c.ConfigPath
	}
	for _, kv := range c.Sets {
		key, value, _ := strings.Cut(kv, "=")
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return opts
}
