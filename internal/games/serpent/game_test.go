package serpent

import (
	"strings"
	"testing"

	"github.com/okhoma/snakepit/internal/core"
	"github.com/okhoma/snakepit/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func startGame(t *testing.T, g *Game) {
	t.Helper()
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.sim.State() != sim.StateRunning {
		t.Fatalf("expected running after confirm, got %v", g.sim.State())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	cfg := testRuntime()
	for _, v := range variants {
		t.Run(v.ID, func(t *testing.T) {
			g1 := NewVariant(v)
			g1.Reset(cfg)
			g2 := NewVariant(v)
			g2.Reset(cfg)

			input := core.NewInputFrame()
			input.Set(core.ActionConfirm)
			g1.Step(input)
			g2.Step(input)

			for i := 0; i < 600; i++ {
				input.Clear()
				if i == 30 {
					input.Set(core.ActionDown)
					input.Set(core.ActionTurnRight)
				}
				if i == 90 {
					input.Set(core.ActionLeft)
					input.Set(core.ActionTurnLeft)
				}
				g1.Step(input)
				g2.Step(input)
			}

			if g1.Snapshot() != g2.Snapshot() {
				t.Errorf("snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
			}
		})
	}
}

func TestIdleUntilConfirm(t *testing.T) {
	g := NewVariant(variants[0])
	g.Reset(testRuntime())

	// Steering input alone must not start a run.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	if g.sim.State() != sim.StateIdle {
		t.Fatalf("expected idle without confirm, got %v", g.sim.State())
	}
	if g.sim.TickCount() != 0 {
		t.Errorf("expected no ticks while idle, got %d", g.sim.TickCount())
	}

	input.Clear()
	input.Set(core.ActionConfirm)
	res := g.Step(input)
	if g.sim.State() != sim.StateRunning {
		t.Fatalf("expected running after confirm, got %v", g.sim.State())
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueStart {
		t.Errorf("expected start cue, got %v", res.Cues)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := NewVariant(variants[0]) // wall variant
	g.Reset(testRuntime())
	startGame(t, g)

	// Hold up until the wall ends the run.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	for i := 0; i < 3000 && g.sim.State() != sim.StateGameOver; i++ {
		g.Step(input)
	}
	if g.sim.State() != sim.StateGameOver {
		t.Fatal("expected wall collision to end the run")
	}

	// Steering must not revive a finished run.
	g.Step(input)
	if g.sim.State() != sim.StateGameOver {
		t.Fatal("game over state must persist until restart")
	}

	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)
	if g.sim.State() != sim.StateRunning {
		t.Fatalf("expected running after restart, got %v", g.sim.State())
	}
	if g.sim.Score() != 0 {
		t.Errorf("expected score reset on restart, got %d", g.sim.Score())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := NewVariant(variants[0])
	g.Reset(testRuntime())
	startGame(t, g)

	input := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	ticksBefore := g.sim.TickCount()

	input.Set(core.ActionPause)
	g.Step(input)
	input.Clear()
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	if g.sim.TickCount() != ticksBefore {
		t.Errorf("paused game ticked: %d -> %d", ticksBefore, g.sim.TickCount())
	}

	input.Set(core.ActionPause)
	g.Step(input)
	input.Clear()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.sim.TickCount() == ticksBefore {
		t.Error("expected ticks to resume after unpause")
	}
}

func TestRenderShowsFieldAndHUD(t *testing.T) {
	g := NewVariant(variants[0])
	g.Reset(testRuntime())
	startGame(t, g)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Serpent") {
		t.Error("HUD title missing from render")
	}
	if !strings.Contains(out, "O") {
		t.Error("head glyph missing from render")
	}
	if !strings.Contains(out, "*") {
		t.Error("food glyph missing from render")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewVariant(variants[0])
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("expected tooSmall on a 10x5 screen")
	}
	screen := core.NewScreen(10, 5)
	g.Render(screen)

	// Simulation must not advance while the window is unusable.
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	input.Clear()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}
	if g.sim.TickCount() != 0 {
		t.Errorf("expected no ticks while too small, got %d", g.sim.TickCount())
	}
}

func TestCuesForwardedOnce(t *testing.T) {
	g := NewVariant(variants[0])
	g.Reset(testRuntime())

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	res := g.Step(input)
	if len(res.Cues) != 1 {
		t.Fatalf("expected exactly one cue on start, got %v", res.Cues)
	}

	// The next frame must not repeat it.
	input.Clear()
	res = g.Step(input)
	for _, c := range res.Cues {
		if c == core.CueStart {
			t.Error("start cue repeated on a later frame")
		}
	}
}

func TestVariantConfigs(t *testing.T) {
	for _, v := range variants {
		g := NewVariant(v)
		g.Reset(testRuntime())

		if g.simCfg.Boundary != v.Boundary {
			t.Errorf("%s: boundary = %v, want %v", v.ID, g.simCfg.Boundary, v.Boundary)
		}
		if g.simCfg.Scheme != v.Scheme {
			t.Errorf("%s: scheme = %v, want %v", v.ID, g.simCfg.Scheme, v.Scheme)
		}
		if v.PowerUps && len(g.simCfg.PowerUps) == 0 {
			t.Errorf("%s: expected power-ups enabled", v.ID)
		}
		if !v.PowerUps && len(g.simCfg.PowerUps) != 0 {
			t.Errorf("%s: expected power-ups disabled", v.ID)
		}
	}
}

func TestEffectKindParsing(t *testing.T) {
	kinds := effectKinds([]string{"shrink", "bogus", "slowdown"})
	want := []sim.EffectKind{sim.EffectShrink, sim.EffectSlowDown}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	// Nothing recognized falls back to the full set.
	if got := effectKinds(nil); len(got) != 3 {
		t.Errorf("expected full fallback set, got %v", got)
	}
}
