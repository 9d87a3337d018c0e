package sim

import (
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 6
	cfg.TickInterval = 100 * time.Millisecond
	return cfg
}

// forceState puts the simulation into an exact running position: body
// segments head-first, heading, and no consumables on the grid.
func forceState(s *Sim, body []Vec, heading Vec) {
	s.reg.SeedBody(body)
	s.reg.items = s.reg.items[:0]
	s.heading = heading
	s.pending = nil
}

// tickOnce advances by exactly one base interval, firing one logic tick.
func tickOnce(s *Sim) TickOutcome {
	return s.Advance(s.cfg.TickInterval)
}

func TestQueueShiftProperty(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, DirRight)

	before := append([]Vec(nil), s.Segments()...)
	out := tickOnce(s)

	if !out.Ticked || out.Collided {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	got := s.Segments()
	if len(got) != len(before) {
		t.Fatalf("length changed without food: %d -> %d", len(before), len(got))
	}
	// Every segment after the shift equals the previous position of its
	// predecessor.
	for i := 1; i < len(got); i++ {
		if got[i] != before[i-1] {
			t.Errorf("segment %d = %v, expected predecessor's old position %v", i, got[i], before[i-1])
		}
	}
	want := []Vec{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	for i, p := range want {
		if got[i] != p {
			t.Errorf("segment %d = %v, expected %v", i, got[i], p)
		}
	}
}

func TestTurnRequestHonored(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}, DirRight)

	s.RequestTurn(TurnTo(DirUp))
	out := tickOnce(s)

	if out.InvalidTurn {
		t.Fatal("valid turn reported invalid")
	}
	if s.Heading() != DirUp {
		t.Errorf("heading = %v, expected up", s.Heading())
	}
	if head := s.Segments()[0]; head != (Vec{X: 5, Y: 2}) {
		t.Errorf("head = %v, expected (5,2)", head)
	}
}

func TestReversalRejected(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}, DirRight)

	s.RequestTurn(TurnTo(DirLeft))
	out := tickOnce(s)

	if !out.InvalidTurn {
		t.Error("reversal was not flagged as dropped")
	}
	if s.Heading() != DirRight {
		t.Errorf("heading = %v, reversal must leave heading unchanged", s.Heading())
	}
}

func TestLastTurnRequestWins(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}, DirRight)

	// Two requests within one tick window: only the last is honored.
	s.RequestTurn(TurnTo(DirUp))
	s.RequestTurn(TurnTo(DirDown))
	tickOnce(s)

	if s.Heading() != DirDown {
		t.Errorf("heading = %v, expected the last requested direction", s.Heading())
	}
}

func TestRelativeTurnScheme(t *testing.T) {
	cfg := testConfig()
	cfg.Scheme = TurnRelative
	s := New(cfg, nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}}, DirRight)

	s.RequestTurn(TurnRight())
	tickOnce(s)
	if s.Heading() != DirDown {
		t.Fatalf("heading after right turn = %v, expected down", s.Heading())
	}

	s.RequestTurn(TurnLeft())
	tickOnce(s)
	if s.Heading() != DirRight {
		t.Fatalf("heading after left turn = %v, expected right", s.Heading())
	}
}

func TestEatFoodGrowsAndRespawns(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, DirRight)
	s.reg.AddConsumable(ConsumableFood, EffectNone, Vec{X: 3, Y: 0}, 0)

	out := tickOnce(s)

	if !out.AteFood {
		t.Fatal("food at the candidate head position was not eaten")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}

	got := s.Segments()
	want := []Vec{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("length = %d, expected %d", len(got), len(want))
	}
	for i, p := range want {
		if got[i] != p {
			t.Errorf("segment %d = %v, expected %v", i, got[i], p)
		}
	}

	// The replacement food spawned within the same tick.
	if n := s.reg.CountKind(ConsumableFood); n != s.cfg.FoodCap {
		t.Errorf("food count = %d, expected cap %d restored within the tick", n, s.cfg.FoodCap)
	}
	for _, c := range s.Consumables() {
		if c.Pos == (Vec{X: 3, Y: 0}) {
			t.Error("replacement food spawned on the eaten cell")
		}
	}
}

func TestSelfCollisionEndsRun(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	// Head at (0,0) moving +x into the second segment at (1,0).
	forceState(s, []Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, DirRight)

	before := append([]Vec(nil), s.Segments()...)
	out := tickOnce(s)

	if !out.Collided {
		t.Fatal("self-collision not detected")
	}
	if s.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", s.State())
	}
	// No position mutation on a terminal tick.
	for i, p := range s.Segments() {
		if p != before[i] {
			t.Errorf("segment %d mutated on terminal tick: %v -> %v", i, before[i], p)
		}
	}
	// The clock is stopped; further time cannot tick the simulation.
	if out := s.Advance(time.Second); out.Ticked {
		t.Error("simulation ticked after game over")
	}
}

func TestWallCollision(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary = BoundaryWall
	s := New(cfg, nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 9, Y: 3}, {X: 8, Y: 3}, {X: 7, Y: 3}}, DirRight)

	out := tickOnce(s)
	if !out.Collided {
		t.Fatal("hard wall did not terminate the run")
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, expected game over", s.State())
	}
}

func TestWrapBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary = BoundaryWrap
	s := New(cfg, nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 9, Y: 3}, {X: 8, Y: 3}, {X: 7, Y: 3}}, DirRight)

	out := tickOnce(s)
	if out.Collided {
		t.Fatal("wrap variant collided at the edge")
	}
	if head := s.Segments()[0]; head != (Vec{X: 0, Y: 3}) {
		t.Errorf("head = %v, expected wrapped to (0,3)", head)
	}
}

func TestShrinkScalesCollisionThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []EffectKind{EffectShrink}
	s := New(cfg, nil, 1)
	s.Start()

	// A near-miss 0.3 units from the candidate head: inside the base
	// 0.4 threshold, outside the shrunk 0.4*0.4 = 0.16 threshold.
	nearMiss := []Vec{{X: 0, Y: 0}, {X: 1, Y: 0.3}, {X: 2, Y: 0.3}}

	forceState(s, nearMiss, DirRight)
	s.effects.Activate(EffectShrink, s.Now())
	out := tickOnce(s)
	if out.Collided {
		t.Fatal("near-miss registered as collision while shrunk")
	}

	// Once the effect expires the same geometry must collide.
	s.effects.Deactivate()
	forceState(s, nearMiss, DirRight)
	out = tickOnce(s)
	if !out.Collided {
		t.Fatal("near-miss did not collide at base threshold")
	}
}

func TestPowerUpPickupActivatesSingleEffect(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []EffectKind{EffectShrink, EffectSpeedUp, EffectSlowDown}
	cfg.PowerUpCap = 1
	s := New(cfg, nil, 1)
	s.Start()

	forceState(s, []Vec{{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3}}, DirRight)
	s.reg.AddConsumable(ConsumablePowerUp, EffectSlowDown, Vec{X: 3, Y: 3}, 0)
	out := tickOnce(s)

	if out.PickedUp != EffectSlowDown {
		t.Fatalf("PickedUp = %v, expected slowdown", out.PickedUp)
	}
	if s.ActiveEffect() != EffectSlowDown {
		t.Fatalf("ActiveEffect = %v, expected slowdown", s.ActiveEffect())
	}

	// Picking up a second power-up replaces the first entirely. The
	// active slowdown stretches the tick interval, so feed two base
	// intervals to guarantee a tick fires.
	s.reg.AddConsumable(ConsumablePowerUp, EffectShrink, Vec{X: 4, Y: 3}, 0)
	s.Advance(2 * cfg.TickInterval)
	if s.ActiveEffect() != EffectShrink {
		t.Fatalf("ActiveEffect = %v, expected shrink only", s.ActiveEffect())
	}
	if s.effects.SpeedScale() != 1.0 {
		t.Errorf("SpeedScale = %f, slowdown modifier leaked", s.effects.SpeedScale())
	}
}

func TestPowerUpLifetimeExpiry(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps = []EffectKind{EffectShrink}
	cfg.PowerUpCap = 1
	cfg.PowerUpLifetime = 250 * time.Millisecond
	s := New(cfg, nil, 1)
	s.Start()

	forceState(s, []Vec{{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3}}, DirRight)
	s.reg.AddConsumable(ConsumablePowerUp, EffectShrink, Vec{X: 8, Y: 1}, s.Now()+cfg.PowerUpLifetime)

	tickOnce(s)
	if s.reg.CountKind(ConsumablePowerUp) != 1 {
		t.Fatal("power-up culled before its lifetime")
	}
	tickOnce(s)
	tickOnce(s)
	if s.reg.CountKind(ConsumablePowerUp) != 0 {
		t.Error("uncollected power-up survived past its lifetime")
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	s := New(testConfig(), nil, 1)
	s.Start()
	forceState(s, []Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, DirRight)
	tickOnce(s) // terminal collision

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", s.State())
	}
	// GameOver cannot start directly.
	if s.Start() {
		t.Fatal("Start accepted from game over")
	}

	s.Reset()
	if s.State() != StateIdle {
		t.Fatalf("state after Reset = %v, expected idle", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("score after Reset = %d, expected 0", s.Score())
	}
	if s.reg.Len() != s.cfg.InitialLength {
		t.Errorf("body length after Reset = %d, expected %d", s.reg.Len(), s.cfg.InitialLength)
	}
	if n := s.reg.CountKind(ConsumableFood); n != s.cfg.FoodCap {
		t.Errorf("food count after Reset = %d, expected %d", n, s.cfg.FoodCap)
	}
	if !s.Start() {
		t.Error("Start rejected after Reset")
	}
}

func TestScoreMonotonicWhileRunning(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary = BoundaryWrap
	s := New(cfg, nil, 42)
	s.Start()

	last := 0
	for range 500 {
		out := tickOnce(s)
		if s.Score() < last {
			t.Fatalf("score decreased: %d -> %d", last, s.Score())
		}
		last = s.Score()
		if out.Collided {
			break
		}
		// Wander deterministically to eventually hit food.
		if s.TickCount()%7 == 0 {
			s.RequestTurn(TurnTo(RotateCW(s.Heading())))
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary = BoundaryWrap
	cfg.PowerUps = []EffectKind{EffectShrink, EffectSpeedUp}
	cfg.PowerUpCap = 1
	cfg.PowerUpChance = 50

	run := func() (int, []Vec, uint64) {
		s := New(cfg, nil, 12345)
		s.Start()
		for i := range 300 {
			if i%11 == 0 {
				s.RequestTurn(TurnTo(RotateCW(s.Heading())))
			}
			if out := s.Advance(cfg.TickInterval); out.Collided {
				break
			}
		}
		return s.Score(), append([]Vec(nil), s.Segments()...), s.TickCount()
	}

	score1, body1, ticks1 := run()
	score2, body2, ticks2 := run()

	if score1 != score2 {
		t.Errorf("score mismatch: %d vs %d", score1, score2)
	}
	if ticks1 != ticks2 {
		t.Errorf("tick count mismatch: %d vs %d", ticks1, ticks2)
	}
	if len(body1) != len(body2) {
		t.Fatalf("body length mismatch: %d vs %d", len(body1), len(body2))
	}
	for i := range body1 {
		if body1[i] != body2[i] {
			t.Errorf("segment %d mismatch: %v vs %v", i, body1[i], body2[i])
		}
	}
}
