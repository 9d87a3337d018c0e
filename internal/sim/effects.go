package sim

import "time"

// EffectKind is a timed gameplay modifier carried by a power-up.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectShrink
	EffectSpeedUp
	EffectSlowDown
)

// String returns the config/display name of the effect.
func (e EffectKind) String() string {
	switch e {
	case EffectShrink:
		return "shrink"
	case EffectSpeedUp:
		return "speedup"
	case EffectSlowDown:
		return "slowdown"
	default:
		return "none"
	}
}

// Glyph returns the board glyph for the effect's pickup.
func (e EffectKind) Glyph() rune {
	switch e {
	case EffectShrink:
		return 'S'
	case EffectSpeedUp:
		return '+'
	case EffectSlowDown:
		return '-'
	default:
		return '?'
	}
}

// Base modifier values. Deactivation always restores these constants
// rather than inverting the last delta, so repeated activate/deactivate
// cycles cannot drift.
const (
	baseSizeScale  = 1.0
	baseSpeedScale = 1.0
)

// EffectParams configures the single effect timer.
type EffectParams struct {
	// Duration each effect stays active once picked up.
	Duration time.Duration

	// ShrinkScale multiplies collision/pickup radii while Shrink is
	// active (< 1 makes the body effectively smaller).
	ShrinkScale float64

	// SpeedUpScale and SlowDownScale multiply the tick interval while the
	// respective effect is active (< 1 is faster, > 1 slower).
	SpeedUpScale  float64
	SlowDownScale float64
}

// DefaultEffectParams returns the values used by the stock variants.
func DefaultEffectParams() EffectParams {
	return EffectParams{
		Duration:      8 * time.Second,
		ShrinkScale:   0.4,
		SpeedUpScale:  0.6,
		SlowDownScale: 1.6,
	}
}

// EffectTimer is the power-up state machine: Inactive, or Active with a
// kind and an absolute expiry in simulation time. At most one effect is
// ever active; activating a new one deterministically reverts the old one
// first.
type EffectTimer struct {
	params EffectParams

	active bool
	kind   EffectKind
	expiry time.Duration

	sizeScale  float64
	speedScale float64
}

// NewEffectTimer creates an inactive timer.
func NewEffectTimer(params EffectParams) *EffectTimer {
	t := &EffectTimer{params: params}
	t.Deactivate()
	return t
}

// Activate applies kind's modifiers and schedules expiry at now plus the
// configured duration. Any currently active effect is fully reverted
// first; effects never stack.
func (t *EffectTimer) Activate(kind EffectKind, now time.Duration) {
	if t.active {
		t.Deactivate()
	}
	if kind == EffectNone {
		return
	}

	switch kind {
	case EffectShrink:
		t.sizeScale = t.params.ShrinkScale
	case EffectSpeedUp:
		t.speedScale = t.params.SpeedUpScale
	case EffectSlowDown:
		t.speedScale = t.params.SlowDownScale
	}

	t.active = true
	t.kind = kind
	t.expiry = now + t.params.Duration
}

// Tick deactivates the effect once its expiry has passed. Returns true if
// an effect expired on this call.
func (t *EffectTimer) Tick(now time.Duration) bool {
	if t.active && now >= t.expiry {
		t.Deactivate()
		return true
	}
	return false
}

// Deactivate reverts all modifiers to their base values and transitions
// to Inactive. Safe to call when already inactive.
func (t *EffectTimer) Deactivate() {
	t.active = false
	t.kind = EffectNone
	t.expiry = 0
	t.sizeScale = baseSizeScale
	t.speedScale = baseSpeedScale
}

// Active returns the active effect kind, or EffectNone.
func (t *EffectTimer) Active() EffectKind {
	if !t.active {
		return EffectNone
	}
	return t.kind
}

// Expiry returns the absolute simulation time the active effect ends.
// Zero when inactive.
func (t *EffectTimer) Expiry() time.Duration {
	return t.expiry
}

// SizeScale returns the current collision/pickup radius multiplier.
func (t *EffectTimer) SizeScale() float64 {
	return t.sizeScale
}

// SpeedScale returns the current tick-interval multiplier.
func (t *EffectTimer) SpeedScale() float64 {
	return t.speedScale
}
