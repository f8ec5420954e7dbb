package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// DefaultSlot is the save slot used when none is configured.
const DefaultSlot = "default"

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// maxTickRate caps redraws per second.
const maxTickRate = 240

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a Model.
type Options struct {
	Store   *storage.Store // nil disables scores and save slots
	Slot    string         // save slot for ctrl+s / ctrl+l
	Logger  *log.Logger    // nil discards log output
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model for one 2048 session.
type Model struct {
	game   *t2048.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	slot   string
	keys   KeyMap
	help   help.Model

	status     string
	statusAt   time.Time
	scoreSaved bool // Whether the score has been recorded for the current game over
	quitting   bool
}

// NewModel creates a model driving game.
func NewModel(game *t2048.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.TickRate = core.Clamp(cfg.TickRate, 1, maxTickRate)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	slot := opts.Slot
	if slot == "" {
		slot = DefaultSlot
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		slot:       slot,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scoreSaved: game.Status().Over(),
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SpawnMsg:
		return m.handleSpawn()

	case TickMsg:
		if m.status != "" && time.Time(msg).Sub(m.statusAt) >= statusTTL {
			m.status = ""
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg, m.prompting()); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit, core.ActionDecline:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm, core.ActionNewGame:
		m.game.NewGame()
		m.scoreSaved = false
		m.setStatus("New game")

	case core.ActionSave:
		m.save()

	case core.ActionLoad:
		m.load()

	default:
		res := m.game.Step(core.FrameOf(action))
		if res.Moved {
			return m, spawnCmd(m.config.SpawnDelay)
		}
		if action == core.ActionUndo {
			m.setStatus(fmt.Sprintf("%d undos left", m.game.UndosRemaining()))
		}
	}

	m.recordGameOver()
	return m, nil
}

// handleSpawn completes a pending move once the new-tile delay elapsed.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	if m.game.Status() != t2048.StatusPendingSpawn {
		return m, nil
	}
	if _, _, err := m.game.SpawnTile(); err != nil {
		m.logger.Error("spawn failed", "error", err)
		return m, nil
	}
	m.recordGameOver()
	return m, nil
}

// recordGameOver saves the score once per finished game.
func (m *Model) recordGameOver() {
	if !m.game.Status().Over() || m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.game.Score() == 0 {
		return
	}
	best, bestErr := m.store.HighScore(m.game.ID())
	if bestErr != nil {
		m.logger.Warn("could not read high score", "error", bestErr)
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.game.Score(), t2048.MaxTile(m.game.Tiles())); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("game over", "score", m.game.Score(), "status", m.game.Status())
	if bestErr == nil && m.game.Score() > best {
		m.setStatus("New high score!")
	}
}

func (m *Model) save() {
	if m.store == nil {
		m.setStatus("No database: saving disabled")
		return
	}
	payload, err := m.game.Serialize()
	var pending *t2048.PreconditionError
	if errors.As(err, &pending) {
		m.setStatus("Wait for the new tile before saving")
		return
	}
	if err != nil {
		m.logger.Error("encode failed", "error", err)
		m.setStatus("Save failed")
		return
	}
	if err := m.store.SaveGame(m.slot, payload, m.game.Score()); err != nil {
		m.logger.Error("save failed", "slot", m.slot, "error", err)
		m.setStatus("Save failed")
		return
	}
	m.logger.Info("game saved", "slot", m.slot)
	m.setStatus(fmt.Sprintf("Saved to slot %q", m.slot))
}

func (m *Model) load() {
	if m.store == nil {
		m.setStatus("No database: loading disabled")
		return
	}
	if m.game.Status() == t2048.StatusPendingSpawn {
		return
	}

	sv, err := m.store.LoadGame(m.slot)
	if err == nil {
		err = m.game.Deserialize(sv.Payload)
	}

	switch {
	case errors.Is(err, storage.ErrSaveNotFound):
		m.setStatus(fmt.Sprintf("No save in slot %q", m.slot))
	case errors.Is(err, t2048.ErrCorruptSave):
		m.logger.Warn("corrupt save", "slot", m.slot, "error", err)
		m.setStatus(fmt.Sprintf("Save in slot %q is corrupt", m.slot))
	case err != nil:
		m.logger.Error("load failed", "slot", m.slot, "error", err)
		m.setStatus("Load failed")
	default:
		m.scoreSaved = m.game.Status().Over()
		m.logger.Info("game loaded", "slot", m.slot)
		m.setStatus(fmt.Sprintf("Loaded slot %q", m.slot))
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

func (m Model) prompting() bool {
	return m.game.Status().Over()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	h := max(m.config.ScreenH-lipgloss.Height(footer), 1)
	m.screen.Resize(m.config.ScreenW, h)

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// footer renders the status line and the help line.
func (m Model) footer() string {
	var b strings.Builder

	line := m.status
	switch m.game.Status() {
	case t2048.StatusWon:
		line = joinNonEmpty(t2048.WinMessage, m.status)
	case t2048.StatusLost:
		line = joinNonEmpty(t2048.LossMessage, m.status)
	}
	b.WriteString(statusStyle.Render(line))
	b.WriteString("\n")

	if m.prompting() {
		b.WriteString(helpStyle.Render(m.help.View(promptHelp{m.keys})))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "  ")
}

// Game returns the game the model drives.
func (m Model) Game() *t2048.Game {
	return m.game
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(game *t2048.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
