package sim

import (
	"math/rand"
	"testing"
)

func TestSampleRespectsClearance(t *testing.T) {
	world := World{Width: 20, Height: 20, Metric: MetricEuclidean}
	rng := rand.New(rand.NewSource(7))
	s := NewSampler(world, rng, 0)

	occupied := []Vec{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5},
		{X: 12, Y: 12},
	}
	const clearance = 2.0

	for range 200 {
		p := s.Sample(clearance, occupied, 1)
		if p.Degraded {
			t.Fatal("sampler degraded on a nearly empty grid")
		}
		for _, o := range occupied {
			if world.Distance(p.Pos, o) < clearance {
				t.Fatalf("sample %v within clearance of occupied %v", p.Pos, o)
			}
		}
		if !world.IsInside(p.Pos) {
			t.Fatalf("sample %v outside world", p.Pos)
		}
	}
}

func TestSampleDegradedFallback(t *testing.T) {
	// A 3x3 grid where clearance against the center can never be met:
	// the sampler must fall back rather than loop forever, and the
	// result must be distinguishably flagged.
	world := World{Width: 3, Height: 3, Metric: MetricEuclidean}
	rng := rand.New(rand.NewSource(1))
	s := NewSampler(world, rng, 10)

	occupied := []Vec{{X: 1, Y: 1}}
	p := s.Sample(10.0, occupied, 0)

	if !p.Degraded {
		t.Fatal("impossible clearance did not produce a degraded placement")
	}
	// Even degraded, hard occupancy is still rechecked.
	if p.Pos == occupied[0] {
		t.Errorf("degraded placement landed on an occupied cell: %v", p.Pos)
	}
	if !world.IsInside(p.Pos) {
		t.Errorf("degraded placement outside world: %v", p.Pos)
	}
}

func TestSampleHonorsBoundaryMargin(t *testing.T) {
	world := World{Width: 10, Height: 10, Metric: MetricEuclidean}
	rng := rand.New(rand.NewSource(3))
	s := NewSampler(world, rng, 0)

	for range 200 {
		p := s.Sample(0.5, nil, 2)
		if p.Degraded {
			t.Fatal("unexpected degraded placement on empty grid")
		}
		if world.BorderDistance(p.Pos) < 2 {
			t.Fatalf("sample %v closer than margin to boundary", p.Pos)
		}
	}
}

func TestSampleNearClustersAroundAnchors(t *testing.T) {
	world := World{Width: 40, Height: 40, Metric: MetricEuclidean}
	rng := rand.New(rand.NewSource(11))
	s := NewSampler(world, rng, 0)

	anchors := []Vec{{X: 10, Y: 10}, {X: 30, Y: 30}}
	const spread = 3

	for range 100 {
		p := s.SampleNear(anchors, spread, 0.5, nil, 1)
		if p.Degraded {
			t.Fatal("unexpected degraded anchored placement")
		}
		near := false
		for _, a := range anchors {
			if world.Distance(p.Pos, a) <= spread*2 {
				near = true
				break
			}
		}
		if !near {
			t.Fatalf("anchored sample %v landed away from every anchor", p.Pos)
		}
	}
}

func TestSampleNearWithoutAnchorsFallsBack(t *testing.T) {
	world := World{Width: 10, Height: 10, Metric: MetricEuclidean}
	rng := rand.New(rand.NewSource(5))
	s := NewSampler(world, rng, 0)

	p := s.SampleNear(nil, 3, 0.5, nil, 1)
	if !world.IsInside(p.Pos) {
		t.Errorf("fallback sample outside world: %v", p.Pos)
	}
}
