package railshot

import "github.com/okhoma/snakepit/internal/sim"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    sim.State
	Score    int
	ShooterX int
	Shots    int
	Targets  int
	Degraded int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		State:    g.machine.State(),
		Score:    g.score,
		ShooterX: g.shooterX,
		Shots:    len(g.shots),
		Targets:  len(g.targets),
		Degraded: g.degraded,
	}
}
