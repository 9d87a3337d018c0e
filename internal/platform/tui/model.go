package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/okhoma/snakepit/internal/core"
	"github.com/okhoma/snakepit/internal/registry"
	"github.com/okhoma/snakepit/internal/storage"
)

// CuePlayer receives audio cues emitted by games. Implementations must
// never block and must swallow their own failures; a nil CuePlayer
// disables audio entirely.
type CuePlayer interface {
	Play(cue core.Cue)
}

// GameModel is the Bubble Tea model that runs one game: it collects key
// input into a frame, steps the game every render tick, forwards audio
// cues, and persists the score once per finished run.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	cues       CuePlayer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
	degraded   int
}

// NewGameModel creates a game model. store and cues may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cues CuePlayer, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		cues:       cues,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B/Esc leaves a finished or paused game.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}
	return m, nil
}

// handleResize processes window resize events. The game restarts with
// the new dimensions unless the run already ended.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one platform frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restarting after game over re-arms score saving; the game itself
	// handles its internal reset on the restart action.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.scoreSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Degraded > m.degraded {
		log.Warn("placement fell back past clearance",
			"game", m.game.ID(), "count", result.Degraded)
	}
	m.degraded = result.Degraded

	if m.cues != nil {
		for _, cue := range result.Cues {
			m.cues.Play(cue)
		}
	}

	// Save score once per finished run.
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cues CuePlayer, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cues, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
