package config

import (
	_ "embed"
)

//go:embed defaults/serpent.yaml
var defaultSerpentYAML []byte

//go:embed defaults/railshot.yaml
var defaultRailshotYAML []byte

// DefaultSerpentConfig returns the default serpent configuration.
// Matches defaults/serpent.yaml; used as the last-resort fallback.
func DefaultSerpentConfig() SerpentConfig {
	return SerpentConfig{
		Grid: GridSettings{
			Width:    32,
			Height:   20,
			Boundary: "wall",
		},
		Timing: TimingSettings{
			TickMillis: 120,
		},
		Thresholds: ThresholdSettings{
			SelfCollision:  0.4,
			Pickup:         0.5,
			Clearance:      0.8,
			BoundaryMargin: 1.0,
		},
		Placement: PlacementSettings{
			Attempts: 50,
		},
		PowerUps: PowerUpSettings{
			Enabled:       true,
			Kinds:         []string{"shrink", "speedup", "slowdown"},
			Cap:           1,
			Chance:        35,
			LifetimeSecs:  12,
			DurationSecs:  8,
			ShrinkScale:   0.4,
			SpeedUpScale:  0.6,
			SlowDownScale: 1.6,
		},
	}
}

// DefaultRailshotConfig returns the default rail shooter configuration.
func DefaultRailshotConfig() RailshotConfig {
	return RailshotConfig{
		Grid: GridSettings{
			Width:    28,
			Height:   18,
			Boundary: "wall",
		},
		Timing: TimingSettings{
			TickMillis: 90,
		},
		Targets: TargetSettings{
			Cap:               4,
			Clearance:         2.0,
			DescendEveryTicks: 10,
		},
		Placement: PlacementSettings{
			Attempts: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game family.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "serpent":
		return defaultSerpentYAML
	case "railshot":
		return defaultRailshotYAML
	default:
		return nil
	}
}
