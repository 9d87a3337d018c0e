package serpent

import (
	"time"

	"github.com/okhoma/snakepit/internal/config"
	"github.com/okhoma/snakepit/internal/registry"
	"github.com/okhoma/snakepit/internal/sim"
)

// Variant describes what actually differs between the serpent games.
// Everything else (engine, sampler, effect timer, state machine) is the
// one shared core in internal/sim.
type Variant struct {
	ID       string
	Title    string
	Boundary sim.BoundaryPolicy
	Scheme   sim.TurnScheme
	PowerUps bool
}

var variants = []Variant{
	{
		ID:       "serpent",
		Title:    "Serpent",
		Boundary: sim.BoundaryWall,
		Scheme:   sim.TurnAbsolute,
	},
	{
		ID:       "serpent_wrap",
		Title:    "Serpent (Wrap)",
		Boundary: sim.BoundaryWrap,
		Scheme:   sim.TurnAbsolute,
		PowerUps: true,
	},
	{
		ID:       "serpent_relative",
		Title:    "Serpent (Left/Right)",
		Boundary: sim.BoundaryWrap,
		Scheme:   sim.TurnRelative,
		PowerUps: true,
	},
}

func init() {
	for _, v := range variants {
		variant := v
		registry.Register(variant.ID, func() registry.Game {
			return NewVariant(variant)
		})
	}
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// simConfig builds the core simulation config for a variant from the
// loaded YAML settings.
func simConfig(v Variant, fc config.SerpentConfig) sim.Config {
	cfg := sim.Config{
		Width:               fc.Grid.Width,
		Height:              fc.Grid.Height,
		Boundary:            v.Boundary,
		Metric:              sim.MetricEuclidean,
		Scheme:              v.Scheme,
		TickInterval:        time.Duration(fc.Timing.TickMillis) * time.Millisecond,
		InitialLength:       3,
		SelfCollisionRadius: fc.Thresholds.SelfCollision,
		PickupRadius:        fc.Thresholds.Pickup,
		Clearance:           fc.Thresholds.Clearance,
		BoundaryMargin:      fc.Thresholds.BoundaryMargin,
		PlacementAttempts:   fc.Placement.Attempts,
		FoodCap:             1,
		Effects: sim.EffectParams{
			Duration:      time.Duration(fc.PowerUps.DurationSecs) * time.Second,
			ShrinkScale:   fc.PowerUps.ShrinkScale,
			SpeedUpScale:  fc.PowerUps.SpeedUpScale,
			SlowDownScale: fc.PowerUps.SlowDownScale,
		},
	}

	// A wrap variant has no walls to keep clear of.
	if v.Boundary == sim.BoundaryWrap {
		cfg.BoundaryMargin = 0
	}

	if v.PowerUps && fc.PowerUps.Enabled {
		cfg.PowerUps = effectKinds(fc.PowerUps.Kinds)
		cfg.PowerUpCap = fc.PowerUps.Cap
		cfg.PowerUpChance = fc.PowerUps.Chance
		cfg.PowerUpLifetime = time.Duration(fc.PowerUps.LifetimeSecs) * time.Second
	}
	return cfg
}

// effectKinds parses the config's effect names; unknown names are skipped.
func effectKinds(names []string) []sim.EffectKind {
	kinds := make([]sim.EffectKind, 0, len(names))
	for _, name := range names {
		switch name {
		case "shrink":
			kinds = append(kinds, sim.EffectShrink)
		case "speedup":
			kinds = append(kinds, sim.EffectSpeedUp)
		case "slowdown":
			kinds = append(kinds, sim.EffectSlowDown)
		}
	}
	if len(kinds) == 0 {
		kinds = []sim.EffectKind{sim.EffectShrink, sim.EffectSpeedUp, sim.EffectSlowDown}
	}
	return kinds
}
