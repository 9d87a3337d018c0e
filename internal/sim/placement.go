package sim

import "math/rand"

// DefaultPlacementAttempts bounds the rejection-sampling loop. Placement
// must complete in bounded time inside a tick, so the sampler never
// retries past this cap; it falls back to a degraded draw instead.
const DefaultPlacementAttempts = 50

// Placement is a sampler result. Degraded marks the fallback path: the
// position satisfies hard occupancy only, not the clearance contract, and
// callers should surface it as a diagnostic.
type Placement struct {
	Pos      Vec
	Degraded bool
}

// Sampler finds valid spawn positions by rejection sampling: draw a
// candidate cell uniformly from the grid interior, accept it if it keeps
// clearance from every occupied position and from the boundary, retry up
// to a bounded attempt count. The first accepted candidate wins; there is
// no search for a "best" placement.
type Sampler struct {
	world    World
	rng      *rand.Rand
	attempts int
}

// NewSampler creates a sampler over the given world. attempts <= 0 selects
// DefaultPlacementAttempts.
func NewSampler(world World, rng *rand.Rand, attempts int) *Sampler {
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}
	return &Sampler{world: world, rng: rng, attempts: attempts}
}

// Sample draws a position at least clearance away from every occupied
// position and at least margin cells from the grid boundary.
//
// If the attempt budget is exhausted, Sample falls back to an
// unconstrained draw that only rejects exact cell occupancy, so placement
// never deadlocks on a crowded grid. The result is flagged Degraded.
func (s *Sampler) Sample(clearance float64, occupied []Vec, margin float64) Placement {
	for range s.attempts {
		cand := s.randomCell(margin)
		if s.clear(cand, clearance, occupied) {
			return Placement{Pos: cand}
		}
	}
	return s.degraded(occupied)
}

// SampleNear draws a position offset from a randomly chosen anchor and
// snapped to the grid, for variants that cluster spawns near scenery. The
// clearance and fallback rules match Sample.
func (s *Sampler) SampleNear(anchors []Vec, spread int, clearance float64, occupied []Vec, margin float64) Placement {
	if len(anchors) == 0 || spread <= 0 {
		return s.Sample(clearance, occupied, margin)
	}
	for range s.attempts {
		anchor := anchors[s.rng.Intn(len(anchors))]
		cand := Vec{
			X: anchor.X + float64(s.rng.Intn(2*spread+1)-spread),
			Y: anchor.Y + float64(s.rng.Intn(2*spread+1)-spread),
		}
		if !s.world.IsInside(cand) || s.world.BorderDistance(cand) < margin {
			continue
		}
		if s.clear(cand, clearance, occupied) {
			return Placement{Pos: cand}
		}
	}
	return s.degraded(occupied)
}

// randomCell draws a uniform interior cell honoring the boundary margin.
func (s *Sampler) randomCell(margin float64) Vec {
	lo := int(margin)
	spanX := s.world.Width - 2*lo
	spanY := s.world.Height - 2*lo
	if spanX < 1 || spanY < 1 {
		lo = 0
		spanX = s.world.Width
		spanY = s.world.Height
	}
	return Vec{
		X: float64(lo + s.rng.Intn(spanX)),
		Y: float64(lo + s.rng.Intn(spanY)),
	}
}

// clear reports whether cand keeps clearance from every occupied position.
func (s *Sampler) clear(cand Vec, clearance float64, occupied []Vec) bool {
	for _, p := range occupied {
		if s.world.Distance(cand, p) < clearance {
			return false
		}
	}
	return true
}

// degraded is the fallback draw: ignore clearance and margin, reject only
// exact cell occupancy. Bounded by the same attempt cap; if even that
// fails the last candidate is returned, which can only happen on a grid
// with no free cell at all.
func (s *Sampler) degraded(occupied []Vec) Placement {
	var cand Vec
	for range s.attempts {
		cand = s.randomCell(0)
		occupiedCell := false
		for _, p := range occupied {
			if p == cand {
				occupiedCell = true
				break
			}
		}
		if !occupiedCell {
			break
		}
	}
	return Placement{Pos: cand, Degraded: true}
}
