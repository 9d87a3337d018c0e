// Package railshot implements an on-rails shooter: the player slides
// along the bottom rail and shoots targets drifting down from the top.
// It reuses the shared simulation building blocks (the fixed-rate clock,
// the lifecycle machine, the coordinate space and the placement sampler)
// with its own tick semantics.
package railshot

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/okhoma/snakepit/internal/config"
	"github.com/okhoma/snakepit/internal/core"
	"github.com/okhoma/snakepit/internal/registry"
	"github.com/okhoma/snakepit/internal/sim"
)

// hitRadius is the shot/target collision distance in grid units.
const hitRadius = 0.5

// Game implements the rail shooter.
type Game struct {
	world   sim.World
	machine *sim.Machine
	clock   *sim.Clock
	sampler *sim.Sampler
	rng     *rand.Rand

	clearance  float64
	descendGap int

	frameDt time.Duration

	// Rail state. pendingMove and pendingFire are single buffered slots,
	// resolved at the next tick; the last write before a tick wins.
	shooterX    int
	pendingMove int
	pendingFire bool

	shots   []sim.Vec
	targets []Target
	nextID  sim.EntityID

	tick          uint64
	score         int
	descendTicker int
	degraded      int

	paused   bool
	tooSmall bool

	// Screen layout.
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	cues []core.Cue
}

var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("railshot", func() registry.Game {
		return New()
	})
}

// New creates a new rail shooter game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "railshot"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Railshot"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fc, err := config.LoadRailshot(configPath)
	if err != nil {
		fc = config.DefaultRailshotConfig()
	}

	g.world = sim.World{
		Width:    fc.Grid.Width,
		Height:   fc.Grid.Height,
		Boundary: sim.BoundaryWall,
		Metric:   sim.MetricEuclidean,
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.machine = sim.NewMachine()
	g.clock = sim.NewClock(time.Duration(fc.Timing.TickMillis) * time.Millisecond)
	g.clearance = fc.Targets.Clearance
	g.descendGap = fc.Targets.DescendEveryTicks

	// Targets spawn in the upper band of the field so a fresh target
	// never materializes on top of the rail.
	band := g.world
	band.Height = max(2, g.world.Height/2)
	g.sampler = sim.NewSampler(band, g.rng, fc.Placement.Attempts)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frameDt = time.Second / time.Duration(tickRate)

	g.shooterX = g.world.Width / 2
	g.pendingMove = 0
	g.pendingFire = false
	g.shots = nil
	g.targets = nil
	g.nextID = 0
	g.tick = 0
	g.score = 0
	g.descendTicker = 0
	g.degraded = 0
	g.paused = false
	g.cues = nil

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	requiredW := g.world.Width + 2
	requiredH := g.world.Height + g.hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW-g.world.Width)/2 + 1
	g.mapOffsetY = g.hudHeight + 1

	for i := 0; i < fc.Targets.Cap; i++ {
		g.spawnTarget()
	}
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]

	if input.Has(core.ActionPause) && g.machine.State() == sim.StateRunning {
		g.paused = !g.paused
	}

	switch g.machine.State() {
	case sim.StateIdle:
		if input.Has(core.ActionConfirm) {
			g.start()
		}
	case sim.StateGameOver:
		if input.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				Seed:     g.rng.Int63(),
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: int(time.Second / g.frameDt),
			})
			g.start()
		}
	case sim.StateRunning:
		if !g.paused && !g.tooSmall {
			g.processInput(input)
			g.advance(g.frameDt)
		}
	}

	result := core.StepResult{State: g.State(), Degraded: g.degraded}
	if len(g.cues) > 0 {
		result.Cues = append([]core.Cue(nil), g.cues...)
	}
	return result
}

// start transitions Idle → Running and arms the clock.
func (g *Game) start() {
	if !g.machine.Start() {
		return
	}
	g.clock.Start()
	g.cues = append(g.cues, core.CueStart)
}

// processInput buffers this frame's movement and fire requests.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLeft):
		g.pendingMove = -1
	case input.Has(core.ActionRight):
		g.pendingMove = 1
	}
	if input.Has(core.ActionFire) {
		g.pendingFire = true
	}
}

// advance feeds elapsed real time to the fixed-rate clock; at most one
// logic tick fires per call.
func (g *Game) advance(elapsed time.Duration) {
	if !g.clock.Advance(elapsed, 1.0) {
		return
	}
	g.step()
}

// step runs one logic tick: resolve buffered input, move shots, resolve
// hits, then descend targets. A target reaching the rail ends the run.
func (g *Game) step() {
	g.tick++
	railY := float64(g.world.Height - 1)

	if g.pendingMove != 0 {
		g.shooterX = core.Clamp(g.shooterX+g.pendingMove, 0, g.world.Width-1)
		g.pendingMove = 0
	}
	if g.pendingFire {
		g.pendingFire = false
		g.shots = append(g.shots, sim.Vec{X: float64(g.shooterX), Y: railY - 1})
	}

	// Shots travel one cell up per tick; off-grid shots are culled.
	kept := g.shots[:0]
	for _, s := range g.shots {
		s.Y--
		if s.Y < 0 {
			continue
		}
		kept = append(kept, s)
	}
	g.shots = kept

	g.resolveHits()

	g.descendTicker++
	if g.descendTicker >= g.descendGap {
		g.descendTicker = 0
		for i := range g.targets {
			g.targets[i].Pos.Y++
			if g.targets[i].Pos.Y >= railY {
				g.terminate()
				return
			}
		}
		// Re-check after descent so a shot and a target closing on each
		// other within one tick cannot pass through without meeting.
		g.resolveHits()
	}
}

// resolveHits removes shot/target pairs within the hit radius. Each shot
// destroys at most one target; destroyed targets respawn at the top.
func (g *Game) resolveHits() {
	respawn := 0
	keptShots := g.shots[:0]
	for _, s := range g.shots {
		hit := false
		for _, t := range g.targets {
			if g.world.Distance(s, t.Pos) < hitRadius {
				g.removeTarget(t.ID)
				g.score++
				respawn++
				g.cues = append(g.cues, core.CuePickup)
				hit = true
				break
			}
		}
		if !hit {
			keptShots = append(keptShots, s)
		}
	}
	g.shots = keptShots

	for i := 0; i < respawn; i++ {
		g.spawnTarget()
	}
}

// terminate handles a target reaching the rail: Running → GameOver,
// clock stopped, score frozen.
func (g *Game) terminate() {
	if !g.machine.ReportCollision() {
		return
	}
	g.clock.Stop()
	g.cues = append(g.cues, core.CueCollision)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.machine.State() == sim.StateGameOver,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Railshot — Score: %d", g.score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.Rect{
		X: g.mapOffsetX - 1,
		Y: g.mapOffsetY - 1,
		W: g.world.Width + 2,
		H: g.world.Height + 2,
	})

	for _, s := range g.shots {
		x, y := g.toScreen(s)
		dst.SetColor(x, y, '|', core.ColorBrightYellow)
	}
	for _, t := range g.targets {
		x, y := g.toScreen(t.Pos)
		dst.SetColor(x, y, '@', core.ColorRed)
	}
	dst.SetColor(g.mapOffsetX+g.shooterX, g.mapOffsetY+g.world.Height-1, '^', core.ColorBrightCyan)

	switch {
	case g.machine.State() == sim.StateIdle:
		g.renderOverlay(dst, "Press Enter to start", "A/D move, Space to fire")
	case g.machine.State() == sim.StateGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// toScreen maps a grid position to screen coordinates.
func (g *Game) toScreen(p sim.Vec) (int, int) {
	return g.mapOffsetX + int(math.Round(p.X)), g.mapOffsetY + int(math.Round(p.Y))
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	box := core.Rect{W: maxLen + 4, H: 5}
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
