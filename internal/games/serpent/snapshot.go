package serpent

import "github.com/okhoma/snakepit/internal/sim"

// Snapshot captures the observable game state for determinism testing
// and replay verification.
type Snapshot struct {
	Tick     uint64
	State    sim.State
	Score    int
	BodyLen  int
	HeadX    float64
	HeadY    float64
	Heading  sim.Vec
	Effect   sim.EffectKind
	Items    int
	Degraded int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.sim.Segments()[0]
	return Snapshot{
		Tick:     g.sim.TickCount(),
		State:    g.sim.State(),
		Score:    g.sim.Score(),
		BodyLen:  len(g.sim.Segments()),
		HeadX:    head.X,
		HeadY:    head.Y,
		Heading:  g.sim.Heading(),
		Effect:   g.sim.ActiveEffect(),
		Items:    len(g.sim.Consumables()),
		Degraded: g.sim.DegradedPlacements(),
	}
}
