package sim

import "github.com/okhoma/snakepit/internal/core"

// VisualKind tags the visual class of a registered entity so the
// presentation layer can pick glyphs, colors or meshes without inspecting
// simulation types.
type VisualKind string

const (
	VisualSegment VisualKind = "segment"
	VisualFood    VisualKind = "food"
	VisualPowerUp VisualKind = "powerup"
)

// Bridge is the presentation layer as the simulation core sees it: render
// resources, score/UI sinks and audio triggers. The core calls it on every
// registry mutation and state transition; it never reads anything back.
//
// Implementations must treat every call as fire-and-forget. A bridge that
// fails to render or play a cue must swallow the failure; nothing it does
// may corrupt a logic tick.
type Bridge interface {
	// SpawnVisual is invoked exactly once when an entity enters the
	// registry. RemoveVisual is invoked exactly once when it leaves, and
	// must release any render-side resources tied to the visual.
	SpawnVisual(id EntityID, kind VisualKind, pos Vec)
	RemoveVisual(id EntityID)

	// UpdateScore, ShowGameOver and ShowIdlePrompt fire on state
	// transitions only, never per frame.
	UpdateScore(value int)
	ShowGameOver(finalScore int)
	ShowIdlePrompt()

	// PlayCue triggers an audio cue on pickup/collision events.
	PlayCue(cue core.Cue)
}

// NopBridge is a Bridge that does nothing. Useful for tests and for
// running the core headless.
type NopBridge struct{}

func (NopBridge) SpawnVisual(EntityID, VisualKind, Vec) {}
func (NopBridge) RemoveVisual(EntityID)                 {}
func (NopBridge) UpdateScore(int)                       {}
func (NopBridge) ShowGameOver(int)                      {}
func (NopBridge) ShowIdlePrompt()                       {}
func (NopBridge) PlayCue(core.Cue)                      {}
