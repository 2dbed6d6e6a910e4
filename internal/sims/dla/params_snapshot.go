package dla

import (
	"strconv"

	"dla/internal/core"
)

// Parameters reports the configuration together with live counters.
func (a *Aggregate) Parameters() core.ParameterSnapshot {
	seed := a.cfg.SeedPoint()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", a.cfg.Width),
				intParam("h", "Height", a.cfg.Height),
				int64Param("seed", "RNG seed", a.cfg.Seed),
				intParam("seed_x", "Seed X", seed.X),
				intParam("seed_y", "Seed Y", seed.Y),
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				intParam("particles", "Particles", a.cfg.ParticleCount),
				intParam("tick", "Tick", a.tick),
				intParam("stuck", "Stuck cells", len(a.stuck)),
				intParam("wandering", "Wandering", a.Wandering()),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				boolParam("show_walkers", "Show walkers", a.cfg.ShowWalkers),
				intParam("age_bands", "Age bands", a.cfg.AgeBands),
				intParam("band_ticks", "Ticks per band", a.cfg.BandTicks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the knobs the HUD may adjust.
func (a *Aggregate) ParameterControls() []core.ParameterControl {
	area := a.cfg.Width * a.cfg.Height
	return []core.ParameterControl{
		{Key: "particles", Label: "Particles", Type: core.ParamTypeInt, Step: 500, Min: 0, Max: area - 2},
		{Key: "show_walkers", Label: "Show walkers", Type: core.ParamTypeBool},
		{Key: "age_bands", Label: "Age bands", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxAgeBands},
		{Key: "band_ticks", Label: "Ticks per band", Type: core.ParamTypeInt, Step: 50, Min: 1, Max: 100000},
	}
}

// SetIntParameter updates an integer parameter. Particle count changes apply
// on the next Reset; display settings repaint immediately. Values that would
// make the configuration invalid are rejected.
func (a *Aggregate) SetIntParameter(key string, value int) bool {
	next := a.cfg
	switch key {
	case "particles":
		next.ParticleCount = value
	case "age_bands":
		next.AgeBands = value
	case "band_ticks":
		next.BandTicks = value
	default:
		return false
	}
	if next.Validate() != nil {
		return false
	}
	a.cfg = next
	if key != "particles" {
		a.rebuildDisplay()
	}
	return true
}

// SetBoolParameter toggles a boolean parameter.
func (a *Aggregate) SetBoolParameter(key string, value bool) bool {
	if key != "show_walkers" {
		return false
	}
	if a.cfg.ShowWalkers == value {
		return true
	}
	a.cfg.ShowWalkers = value
	a.rebuildDisplay()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
