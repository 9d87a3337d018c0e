// Package sim implements the shared real-time simulation core for the
// arcade's grid games: a fixed-rate logic tick decoupled from the render
// loop, an entity registry with presentation notifications, constrained
// random placement, timed power-up effects, and the idle/running/game-over
// state machine. The package is pure: it never touches the terminal, the
// speaker, or the clock on its own.
package sim

import "math"

// Vec is a position or direction on the unit grid. Cells sit on integer
// coordinates; fractional values only appear in distance thresholds.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the opposite vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Axis-aligned unit headings.
var (
	DirUp    = Vec{X: 0, Y: -1}
	DirDown  = Vec{X: 0, Y: 1}
	DirLeft  = Vec{X: -1, Y: 0}
	DirRight = Vec{X: 1, Y: 0}
)

// RotateCW returns v rotated 90° clockwise in screen space (y grows down).
func RotateCW(v Vec) Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// RotateCCW returns v rotated 90° counter-clockwise in screen space.
func RotateCCW(v Vec) Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Metric selects the grid distance function. Collision and placement use
// the same metric so clearance and pickup behave consistently per variant.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricChebyshev
)

// BoundaryPolicy selects what happens when the head leaves the grid.
type BoundaryPolicy int

const (
	// BoundaryWall treats out-of-bounds as a terminal collision.
	BoundaryWall BoundaryPolicy = iota

	// BoundaryWrap reflects the coordinate to the opposite edge.
	BoundaryWrap
)

// String returns the policy name used in configs.
func (b BoundaryPolicy) String() string {
	if b == BoundaryWrap {
		return "wrap"
	}
	return "wall"
}

// World is the grid coordinate space: boundary policy, containment and
// distance queries. All methods are pure.
type World struct {
	Width    int
	Height   int
	Boundary BoundaryPolicy
	Metric   Metric
}

// IsInside reports whether p lies on the grid. Cells occupy integer
// coordinates 0..Width-1 / 0..Height-1.
func (w World) IsInside(p Vec) bool {
	return p.X >= 0 && p.X <= float64(w.Width-1) &&
		p.Y >= 0 && p.Y <= float64(w.Height-1)
}

// Wrap reflects an out-of-bounds coordinate to the opposite edge.
// In-bounds positions are returned unchanged.
func (w World) Wrap(p Vec) Vec {
	maxX := float64(w.Width - 1)
	maxY := float64(w.Height - 1)
	if p.X < 0 {
		p.X = maxX
	} else if p.X > maxX {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = maxY
	} else if p.Y > maxY {
		p.Y = 0
	}
	return p
}

// Distance returns the grid distance between a and b under the world's
// metric.
func (w World) Distance(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if w.Metric == MetricChebyshev {
		return math.Max(math.Abs(dx), math.Abs(dy))
	}
	return math.Hypot(dx, dy)
}

// BorderDistance returns the distance from p to the nearest grid edge.
func (w World) BorderDistance(p Vec) float64 {
	d := p.X
	if v := p.Y; v < d {
		d = v
	}
	if v := float64(w.Width-1) - p.X; v < d {
		d = v
	}
	if v := float64(w.Height-1) - p.Y; v < d {
		d = v
	}
	return d
}
