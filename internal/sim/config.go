package sim

import "time"

// TurnScheme selects how turn requests map onto the heading.
type TurnScheme int

const (
	// TurnAbsolute accepts four absolute headings; a request that would
	// exactly reverse the current heading is rejected.
	TurnAbsolute TurnScheme = iota

	// TurnRelative accepts only left/right rotations relative to the
	// current heading, which makes reversal structurally impossible.
	TurnRelative
)

// Turn is a buffered turn request. Exactly one field group applies,
// depending on the variant's TurnScheme.
type Turn struct {
	// Heading is the requested absolute heading (TurnAbsolute).
	Heading Vec

	// Relative is -1 for a left rotation, +1 for a right rotation
	// (TurnRelative).
	Relative int
}

// TurnTo builds an absolute turn request.
func TurnTo(heading Vec) Turn {
	return Turn{Heading: heading}
}

// TurnLeft builds a relative left rotation request.
func TurnLeft() Turn {
	return Turn{Relative: -1}
}

// TurnRight builds a relative right rotation request.
func TurnRight() Turn {
	return Turn{Relative: 1}
}

// Config parameterizes one variant of the simulation: grid size, tick
// interval, boundary policy, thresholds, power-up set. Variants differ
// only in the Config they pass in.
type Config struct {
	// Grid dimensions in cells.
	Width  int
	Height int

	Boundary BoundaryPolicy
	Metric   Metric
	Scheme   TurnScheme

	// TickInterval is the base logic tick period; effects scale it.
	TickInterval time.Duration

	// InitialLength is the body length seeded on reset.
	InitialLength int

	// Thresholds in grid units, scaled by the active size modifier.
	// The constants differ per variant with no single correct value;
	// they are tuning knobs, not derived quantities.
	SelfCollisionRadius float64
	PickupRadius        float64

	// Clearance and BoundaryMargin constrain spawn placement.
	Clearance      float64
	BoundaryMargin float64

	// PlacementAttempts caps the sampler's rejection loop (0 = default).
	PlacementAttempts int

	// FoodCap is the number of food items kept on the grid.
	FoodCap int

	// PowerUps is the effect set this variant spawns; empty disables
	// power-ups entirely.
	PowerUps []EffectKind

	// PowerUpCap limits concurrent power-ups on the grid; PowerUpChance
	// is the percent chance to spawn one after each food pickup.
	PowerUpCap    int
	PowerUpChance int

	// PowerUpLifetime removes uncollected power-ups after this long on
	// the grid. Zero keeps them until picked up.
	PowerUpLifetime time.Duration

	Effects EffectParams
}

// DefaultConfig returns the classic-variant parameters: hard walls,
// 4-way turning, food only.
func DefaultConfig() Config {
	return Config{
		Width:               32,
		Height:              20,
		Boundary:            BoundaryWall,
		Metric:              MetricEuclidean,
		Scheme:              TurnAbsolute,
		TickInterval:        120 * time.Millisecond,
		InitialLength:       3,
		SelfCollisionRadius: 0.4,
		PickupRadius:        0.5,
		Clearance:           0.8,
		BoundaryMargin:      1,
		FoodCap:             1,
		Effects:             DefaultEffectParams(),
	}
}
