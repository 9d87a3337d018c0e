package sim

import (
	"math/rand"
	"time"

	"github.com/okhoma/snakepit/internal/core"
)

// TickOutcome reports what happened during one logic tick. The zero value
// means no tick fired.
type TickOutcome struct {
	Ticked   bool
	AteFood  bool
	PickedUp EffectKind // power-up activated this tick, EffectNone otherwise
	Collided bool

	// DegradedPlacement marks that a respawn had to take the sampler's
	// fallback path this tick. Diagnostic only, never fatal.
	DegradedPlacement bool

	// InvalidTurn marks a turn request dropped by the reversal rule.
	InvalidTurn bool

	// EffectExpired marks that the active effect ran out this tick.
	EffectExpired bool
}

// Sim is one variant of the simulation: the world, the entity registry,
// the placement sampler, the effect timer and the lifecycle machine wired
// together and driven by a fixed-rate clock. All of it runs on a single
// logical thread; input only ever writes the pending-turn slot.
type Sim struct {
	cfg     Config
	world   World
	machine *Machine
	clock   *Clock
	effects *EffectTimer
	reg     *Registry
	sampler *Sampler
	bridge  Bridge
	rng     *rand.Rand

	heading Vec
	pending *Turn

	score    int
	now      time.Duration
	tick     uint64
	degraded int
}

// New creates a simulation for the given variant config and seeds it into
// Idle. The bridge receives the initial entity spawns.
func New(cfg Config, bridge Bridge, seed int64) *Sim {
	if bridge == nil {
		bridge = NopBridge{}
	}
	world := World{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Boundary: cfg.Boundary,
		Metric:   cfg.Metric,
	}
	rng := rand.New(rand.NewSource(seed))
	s := &Sim{
		cfg:     cfg,
		world:   world,
		machine: NewMachine(),
		clock:   NewClock(cfg.TickInterval),
		effects: NewEffectTimer(cfg.Effects),
		reg:     NewRegistry(bridge),
		sampler: NewSampler(world, rng, cfg.PlacementAttempts),
		bridge:  bridge,
		rng:     rng,
	}
	s.Reset()
	return s
}

// Reset returns the simulation to Idle from any state: stops the clock
// (guaranteeing no stale driver survives a restart), clears all entities,
// reverts any active effect, re-seeds the initial body and food, and
// re-arms the idle prompt.
func (s *Sim) Reset() {
	s.clock.Stop()
	s.effects.Deactivate()
	s.reg.Clear()
	s.machine.Reset()

	s.score = 0
	s.now = 0
	s.tick = 0
	s.degraded = 0
	s.pending = nil
	s.heading = DirRight

	cx := float64(s.cfg.Width / 2)
	cy := float64(s.cfg.Height / 2)
	body := make([]Vec, s.cfg.InitialLength)
	for i := range body {
		body[i] = Vec{X: cx - float64(i), Y: cy}
	}
	s.reg.SeedBody(body)

	for s.reg.CountKind(ConsumableFood) < s.cfg.FoodCap {
		s.spawnFood()
	}

	s.bridge.UpdateScore(0)
	s.bridge.ShowIdlePrompt()
}

// Start transitions Idle → Running and arms the clock. Returns false from
// any other state; in particular, GameOver requires a Reset first.
func (s *Sim) Start() bool {
	if !s.machine.Start() {
		return false
	}
	s.clock.Start()
	s.bridge.PlayCue(core.CueStart)
	return true
}

// RequestTurn writes the single pending-turn slot. The last write before
// the next tick wins; turns are never queued.
func (s *Sim) RequestTurn(t Turn) {
	s.pending = &t
}

// Advance feeds elapsed real time to the simulation. At most one logic
// tick fires per call; rendering continues every frame regardless.
func (s *Sim) Advance(elapsed time.Duration) TickOutcome {
	if s.machine.State() != StateRunning {
		return TickOutcome{}
	}
	s.now += elapsed
	if !s.clock.Advance(elapsed, s.effects.SpeedScale()) {
		return TickOutcome{}
	}
	return s.step()
}

// step runs one logic tick in the fixed order: resolve the pending turn,
// compute the candidate head, apply the boundary policy, check
// self-collision, check pickups, then shift the body. A terminal
// collision ends the tick with no further mutation.
func (s *Sim) step() TickOutcome {
	s.tick++
	out := TickOutcome{Ticked: true}

	out.EffectExpired = s.effects.Tick(s.now)
	if s.cfg.PowerUpLifetime > 0 {
		s.reg.CullExpired(s.now)
	}

	// 1. At most one buffered turn is honored per tick.
	if s.pending != nil {
		t := *s.pending
		s.pending = nil
		switch s.cfg.Scheme {
		case TurnRelative:
			if t.Relative < 0 {
				s.heading = RotateCCW(s.heading)
			} else if t.Relative > 0 {
				s.heading = RotateCW(s.heading)
			}
		default:
			switch {
			case t.Heading == (Vec{}):
				// Empty request, ignore.
			case t.Heading == s.heading.Neg():
				// No instant 180° turns; dropped silently.
				out.InvalidTurn = true
			default:
				s.heading = t.Heading
			}
		}
	}

	// 2. Candidate head position, one grid step along the heading.
	cand := s.reg.Head().Add(s.heading)

	// 3. Boundary policy.
	if s.world.Boundary == BoundaryWrap {
		cand = s.world.Wrap(cand)
	} else if !s.world.IsInside(cand) {
		s.terminate()
		out.Collided = true
		return out
	}

	// 4. Self-collision against every non-head segment, with the radius
	// scaled by the active size modifier.
	selfRadius := s.cfg.SelfCollisionRadius * s.effects.SizeScale()
	for _, seg := range s.reg.Segments()[1:] {
		if s.world.Distance(cand, seg) < selfRadius {
			s.terminate()
			out.Collided = true
			return out
		}
	}

	// 5. Consumable pickup.
	grow := false
	pickupRadius := s.cfg.PickupRadius * s.effects.SizeScale()
	for _, c := range s.reg.Consumables() {
		if s.world.Distance(cand, c.Pos) >= pickupRadius {
			continue
		}
		s.reg.RemoveConsumable(c.ID)
		switch c.Kind {
		case ConsumableFood:
			s.score++
			grow = true
			out.AteFood = true
			s.bridge.UpdateScore(s.score)
			s.bridge.PlayCue(core.CuePickup)
			if s.reg.CountKind(ConsumableFood) < s.cfg.FoodCap {
				out.DegradedPlacement = s.spawnFood() || out.DegradedPlacement
			}
			s.maybeSpawnPowerUp()
		case ConsumablePowerUp:
			s.effects.Activate(c.Effect, s.now)
			out.PickedUp = c.Effect
			s.bridge.PlayCue(core.CuePowerUp)
		}
		break
	}

	// 6. Follow-the-leader shift; growth appends at the vacated tail.
	s.reg.Shift(cand, grow)

	return out
}

// terminate handles a terminal collision: Running → GameOver, effect
// reverted, clock stopped, score frozen.
func (s *Sim) terminate() {
	if !s.machine.ReportCollision() {
		return
	}
	s.effects.Deactivate()
	s.clock.Stop()
	s.bridge.PlayCue(core.CueCollision)
	s.bridge.ShowGameOver(s.score)
}

// spawnFood places one food item. Returns true if placement degraded.
func (s *Sim) spawnFood() bool {
	p := s.sampler.Sample(s.cfg.Clearance, s.reg.Occupied(), s.cfg.BoundaryMargin)
	s.reg.AddConsumable(ConsumableFood, EffectNone, p.Pos, 0)
	if p.Degraded {
		s.degraded++
	}
	return p.Degraded
}

// maybeSpawnPowerUp rolls the variant's spawn chance after a food pickup.
func (s *Sim) maybeSpawnPowerUp() {
	if len(s.cfg.PowerUps) == 0 || s.cfg.PowerUpCap <= 0 {
		return
	}
	if s.reg.CountKind(ConsumablePowerUp) >= s.cfg.PowerUpCap {
		return
	}
	if s.rng.Intn(100) >= s.cfg.PowerUpChance {
		return
	}

	kind := s.cfg.PowerUps[s.rng.Intn(len(s.cfg.PowerUps))]
	var expiry time.Duration
	if s.cfg.PowerUpLifetime > 0 {
		expiry = s.now + s.cfg.PowerUpLifetime
	}
	p := s.sampler.Sample(s.cfg.Clearance, s.reg.Occupied(), s.cfg.BoundaryMargin)
	if p.Degraded {
		s.degraded++
	}
	s.reg.AddConsumable(ConsumablePowerUp, kind, p.Pos, expiry)
}

// --- Read accessors for the presentation layer and tests ---

// State returns the lifecycle state.
func (s *Sim) State() State { return s.machine.State() }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Heading returns the current heading.
func (s *Sim) Heading() Vec { return s.heading }

// Segments returns the body positions, head first. Read-only.
func (s *Sim) Segments() []Vec { return s.reg.Segments() }

// Consumables returns the live food and power-up items. Read-only.
func (s *Sim) Consumables() []Consumable { return s.reg.Consumables() }

// ActiveEffect returns the active effect kind, or EffectNone.
func (s *Sim) ActiveEffect() EffectKind { return s.effects.Active() }

// EffectRemaining returns how long the active effect has left.
func (s *Sim) EffectRemaining() time.Duration {
	if s.effects.Active() == EffectNone {
		return 0
	}
	rem := s.effects.Expiry() - s.now
	if rem < 0 {
		return 0
	}
	return rem
}

// World returns the coordinate space.
func (s *Sim) World() World { return s.world }

// Now returns accumulated simulation time.
func (s *Sim) Now() time.Duration { return s.now }

// TickCount returns the number of logic ticks since the last reset.
func (s *Sim) TickCount() uint64 { return s.tick }

// DegradedPlacements returns how many spawns took the fallback path since
// the last reset.
func (s *Sim) DegradedPlacements() int { return s.degraded }
