// Package telemetry writes run artefacts: CSV samples, snapshots, charts and
// video of a growing aggregate.
package telemetry

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"dla/internal/analysis"

	"github.com/gocarina/gocsv"
)

// OutputManager owns the output directory of a single run.
type OutputManager struct {
	dir       string
	statsFile *os.File

	statsHeaderWritten bool
	history            []analysis.Stats
}

// NewOutputManager creates the output directory and opens stats.csv.
// Returns nil if dir is empty (output disabled); every method is nil-safe.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	return &OutputManager{dir: dir, statsFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Path joins name onto the output directory.
func (om *OutputManager) Path(name string) string {
	return filepath.Join(om.Dir(), name)
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(data []byte) error {
	if om == nil {
		return nil
	}
	if err := os.WriteFile(om.Path("config.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}
	return nil
}

// WriteStats appends one sample to stats.csv and to the in-memory history.
func (om *OutputManager) WriteStats(s analysis.Stats) error {
	if om == nil {
		return nil
	}
	om.history = append(om.history, s)
	records := []analysis.Stats{s}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// History returns the samples written so far.
func (om *OutputManager) History() []analysis.Stats {
	if om == nil {
		return nil
	}
	return om.history
}

// WriteSnapshot encodes img as a PNG file in the output directory.
func (om *OutputManager) WriteSnapshot(name string, img image.Image) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(om.Path(name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return f.Close()
}

// WriteGrowthChart renders the history as growth.png.
func (om *OutputManager) WriteGrowthChart() error {
	if om == nil {
		return nil
	}
	f, err := os.Create(om.Path("growth.png"))
	if err != nil {
		return fmt.Errorf("creating growth.png: %w", err)
	}
	if err := RenderGrowthChart(f, om.history); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close flushes and closes the stats file.
func (om *OutputManager) Close() error {
	if om == nil || om.statsFile == nil {
		return nil
	}
	err := om.statsFile.Close()
	om.statsFile = nil
	return err
}
