// Package config provides YAML-based game configuration loading for the
// arcade. Each variant's tuning (grid size, tick interval, boundary
// policy, thresholds, power-up set) lives here instead of being forked
// per game.
package config

// SerpentConfig contains all configuration for the serpent games.
type SerpentConfig struct {
	Grid       GridSettings      `yaml:"grid"`
	Timing     TimingSettings    `yaml:"timing"`
	Thresholds ThresholdSettings `yaml:"thresholds"`
	Placement  PlacementSettings `yaml:"placement"`
	PowerUps   PowerUpSettings   `yaml:"power_ups"`
}

// GridSettings defines the playfield.
type GridSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Boundary is "wall" or "wrap".
	Boundary string `yaml:"boundary"`
}

// TimingSettings defines the logic tick.
type TimingSettings struct {
	// TickMillis is the base logic tick interval in milliseconds.
	TickMillis int `yaml:"tick_ms"`
}

// ThresholdSettings holds the collision/pickup/placement distances in
// grid units. The source variants used different constants with no
// documented rationale; they are tunables, not derived values.
type ThresholdSettings struct {
	SelfCollision  float64 `yaml:"self_collision"`
	Pickup         float64 `yaml:"pickup"`
	Clearance      float64 `yaml:"clearance"`
	BoundaryMargin float64 `yaml:"boundary_margin"`
}

// PlacementSettings bounds the spawn sampler.
type PlacementSettings struct {
	Attempts int `yaml:"attempts"`
}

// PowerUpSettings defines the power-up set and its effect parameters.
type PowerUpSettings struct {
	Enabled bool `yaml:"enabled"`

	// Kinds lists the spawnable effects: "shrink", "speedup", "slowdown".
	Kinds []string `yaml:"kinds"`

	// Cap limits concurrent power-ups on the grid; Chance is the percent
	// chance to spawn one after each food pickup.
	Cap    int `yaml:"cap"`
	Chance int `yaml:"chance"`

	// LifetimeSecs removes an uncollected power-up after this many
	// seconds on the grid (0 = never).
	LifetimeSecs int `yaml:"lifetime_secs"`

	// DurationSecs is how long a collected effect stays active.
	DurationSecs int `yaml:"duration_secs"`

	// Effect modifier scales.
	ShrinkScale   float64 `yaml:"shrink_scale"`
	SpeedUpScale  float64 `yaml:"speedup_scale"`
	SlowDownScale float64 `yaml:"slowdown_scale"`
}

// RailshotConfig contains all configuration for the rail shooter.
type RailshotConfig struct {
	Grid      GridSettings      `yaml:"grid"`
	Timing    TimingSettings    `yaml:"timing"`
	Targets   TargetSettings    `yaml:"targets"`
	Placement PlacementSettings `yaml:"placement"`
}

// TargetSettings defines target spawning and drift for the rail shooter.
type TargetSettings struct {
	// Cap is the number of targets kept on the field.
	Cap int `yaml:"cap"`

	// Clearance keeps fresh targets apart from each other.
	Clearance float64 `yaml:"clearance"`

	// DescendEveryTicks is how many logic ticks pass between target
	// drift steps toward the rail.
	DescendEveryTicks int `yaml:"descend_every_ticks"`
}
