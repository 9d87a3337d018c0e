// Package serpent implements the snake-style arcade games on top of the
// shared simulation core. Three variants register themselves: classic
// walls, wrapping edges with power-ups, and relative left/right steering.
package serpent

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/okhoma/snakepit/internal/config"
	"github.com/okhoma/snakepit/internal/core"
	"github.com/okhoma/snakepit/internal/sim"
)

// Game adapts one simulation variant to the platform's game interface.
// It owns the simulation, translates input actions into turn requests,
// collects audio cues triggered during each step, and draws the world
// into the screen buffer every frame.
type Game struct {
	variant Variant
	simCfg  sim.Config
	sim     *sim.Sim

	// frameDt is the real time one platform frame represents.
	frameDt time.Duration

	// Screen layout, recomputed on Reset.
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool

	paused bool

	// Bridge state: score mirrored from the simulation and cues
	// collected during the current step.
	hudScore int
	cues     []core.Cue
}

// NewVariant creates a game for the given variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fc, err := config.LoadSerpent(configPath)
	if err != nil {
		fc = config.DefaultSerpentConfig()
	}
	g.simCfg = simConfig(g.variant, fc)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frameDt = time.Second / time.Duration(tickRate)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.paused = false
	g.hudScore = 0
	g.cues = nil

	// The playfield needs a one-cell border frame plus the HUD.
	requiredW := g.simCfg.Width + 2
	requiredH := g.simCfg.Height + g.hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW-g.simCfg.Width)/2 + 1
	g.mapOffsetY = g.hudHeight + 1

	g.sim = sim.New(g.simCfg, g, cfg.Seed)
}

// Step advances the game by one platform frame. The simulation's own
// fixed-rate clock decides whether a logic tick fires inside.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]

	if input.Has(core.ActionPause) && g.sim.State() == sim.StateRunning {
		g.paused = !g.paused
	}

	switch g.sim.State() {
	case sim.StateIdle:
		if input.Has(core.ActionConfirm) {
			g.sim.Start()
		}
	case sim.StateGameOver:
		if input.Has(core.ActionRestart) {
			g.sim.Reset()
			g.sim.Start()
		}
	case sim.StateRunning:
		if !g.paused && !g.tooSmall {
			g.processInput(input)
			g.sim.Advance(g.frameDt)
		}
	}

	result := core.StepResult{State: g.State(), Degraded: g.sim.DegradedPlacements()}
	if len(g.cues) > 0 {
		result.Cues = append([]core.Cue(nil), g.cues...)
	}
	return result
}

// processInput translates this frame's actions into a turn request.
// The simulation keeps a single pending slot, so a later action in the
// same frame overwrites an earlier one.
func (g *Game) processInput(input core.InputFrame) {
	if g.variant.Scheme == sim.TurnRelative {
		switch {
		case input.Has(core.ActionTurnLeft) || input.Has(core.ActionLeft):
			g.sim.RequestTurn(sim.TurnLeft())
		case input.Has(core.ActionTurnRight) || input.Has(core.ActionRight):
			g.sim.RequestTurn(sim.TurnRight())
		}
		return
	}

	switch {
	case input.Has(core.ActionUp):
		g.sim.RequestTurn(sim.TurnTo(sim.DirUp))
	case input.Has(core.ActionDown):
		g.sim.RequestTurn(sim.TurnTo(sim.DirDown))
	case input.Has(core.ActionLeft):
		g.sim.RequestTurn(sim.TurnTo(sim.DirLeft))
	case input.Has(core.ActionRight):
		g.sim.RequestTurn(sim.TurnTo(sim.DirRight))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.State() == sim.StateGameOver,
		Paused:   g.paused,
	}
}

// --- Bridge implementation ---
//
// The game is its own presentation bridge: the simulation reports entity
// changes, score updates and cues here. The cell renderer redraws the
// whole field from simulation state every frame, so per-entity visual
// lifecycle needs no bookkeeping; cues and score do.

func (g *Game) SpawnVisual(sim.EntityID, sim.VisualKind, sim.Vec) {}

func (g *Game) RemoveVisual(sim.EntityID) {}

func (g *Game) UpdateScore(value int) {
	g.hudScore = value
}

func (g *Game) ShowGameOver(finalScore int) {
	g.hudScore = finalScore
}

func (g *Game) ShowIdlePrompt() {}

func (g *Game) PlayCue(cue core.Cue) {
	g.cues = append(g.cues, cue)
}

// --- Rendering ---

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBorder(dst)
	g.renderItems(dst)
	g.renderBody(dst)

	switch {
	case g.sim.State() == sim.StateIdle:
		g.renderOverlay(dst, "Press Enter to start", g.controlsHint())
	case g.sim.State() == sim.StateGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// controlsHint returns the idle-screen controls line for this variant.
func (g *Game) controlsHint() string {
	if g.variant.Scheme == sim.TurnRelative {
		return "A/D turn left/right"
	}
	return "WASD/arrows to steer"
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d", g.variant.Title, g.hudScore)
	dst.DrawText(0, 0, hud)
	if effect := g.sim.ActiveEffect(); effect != sim.EffectNone {
		secs := g.sim.EffectRemaining().Round(time.Second) / time.Second
		tag := fmt.Sprintf("[%s %ds]", effect, secs)
		dst.DrawTextColor(utf8.RuneCountInString(hud)+2, 0, tag, core.ColorMagenta)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBorder frames the playfield: solid walls for the wall variant,
// a dotted outline for wrapping edges.
func (g *Game) renderBorder(dst *core.Screen) {
	frame := core.Rect{
		X: g.mapOffsetX - 1,
		Y: g.mapOffsetY - 1,
		W: g.simCfg.Width + 2,
		H: g.simCfg.Height + 2,
	}
	if g.variant.Boundary == sim.BoundaryWall {
		dst.DrawBox(frame)
		return
	}
	for x := frame.X; x < frame.Right(); x++ {
		dst.SetColor(x, frame.Y, '·', core.ColorGray)
		dst.SetColor(x, frame.Bottom()-1, '·', core.ColorGray)
	}
	for y := frame.Y; y < frame.Bottom(); y++ {
		dst.SetColor(frame.X, y, '·', core.ColorGray)
		dst.SetColor(frame.Right()-1, y, '·', core.ColorGray)
	}
}

// renderItems draws food and power-ups.
func (g *Game) renderItems(dst *core.Screen) {
	for _, c := range g.sim.Consumables() {
		x, y := g.toScreen(c.Pos)
		switch c.Kind {
		case sim.ConsumableFood:
			dst.SetColor(x, y, '*', core.ColorRed)
		case sim.ConsumablePowerUp:
			dst.SetColor(x, y, c.Effect.Glyph(), core.ColorMagenta)
		}
	}
}

// renderBody draws the body, head first.
func (g *Game) renderBody(dst *core.Screen) {
	for i, seg := range g.sim.Segments() {
		x, y := g.toScreen(seg)
		if i == 0 {
			dst.SetColor(x, y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(x, y, 'o', core.ColorGreen)
		}
	}
}

// toScreen maps a grid position to screen coordinates. Positions are
// continuous; the cell renderer rounds to the nearest cell.
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
