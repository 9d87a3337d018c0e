package railshot

import "github.com/okhoma/snakepit/internal/sim"

// Target is one descending target. Targets drift toward the rail on a
// fixed cadence and end the run if they reach it.
type Target struct {
	ID  sim.EntityID
	Pos sim.Vec
}

// spawnTarget places a fresh target in the upper spawn band, keeping the
// configured clearance from existing targets. IDs are never reused.
func (g *Game) spawnTarget() {
	occupied := make([]sim.Vec, len(g.targets))
	for i, t := range g.targets {
		occupied[i] = t.Pos
	}
	p := g.sampler.Sample(g.clearance, occupied, 1)
	if p.Degraded {
		g.degraded++
	}
	g.nextID++
	g.targets = append(g.targets, Target{ID: g.nextID, Pos: p.Pos})
}

// removeTarget drops the target with the given ID, preserving order.
func (g *Game) removeTarget(id sim.EntityID) {
	for i, t := range g.targets {
		if t.ID == id {
			g.targets = append(g.targets[:i], g.targets[i+1:]...)
			return
		}
	}
}
