package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omacats/platformer/internal/config"
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/session"
	"github.com/omacats/platformer/internal/storage"
	"github.com/omacats/platformer/internal/telemetry"
)

var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	machine    *session.Machine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper

	nameInput    textinput.Model
	enteringName bool
	scoreHandled bool // Commit decided for the current terminal phase
	commitNote   string

	quitting bool
}

// NewModel creates a new Bubble Tea model for a play session. The store may
// be nil, in which case scores are not persisted.
func NewModel(game config.GameConfig, store *storage.Store, cfg core.RuntimeConfig, emitter telemetry.Emitter, defaultName string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 2

	return Model{
		machine:    session.NewMachine(game, cfg, emitter),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
	}
}

// Init starts the tick loop.
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
		m.screen.Resize(msg.Width, msg.Height)
		m.machine.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input, routing it either to the name entry
// overlay or the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameEntryKey(msg)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// Skip the leaderboard for this run.
		m.enteringName = false
		m.scoreHandled = true
		return m, nil

	case "enter":
		name := m.nameInput.Value()
		if name == "" {
			name = m.nameInput.Placeholder
		}
		err := m.machine.CommitScore(m.store, name)
		switch {
		case errors.Is(err, storage.ErrInvalidName):
			m.commitNote = "name must be 1-15 characters"
			return m, nil
		case err != nil:
			m.commitNote = "score not saved"
		default:
			m.commitNote = fmt.Sprintf("saved as %s", name)
		}
		m.enteringName = false
		m.scoreHandled = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The overlay freezes the session until the name is decided.
	if !m.enteringName {
		m.machine.Tick(m.inputFrame)
	}
	m.inputFrame.Clear()

	switch m.machine.Phase() {
	case session.PhaseVictory, session.PhaseGameOver:
		if !m.scoreHandled && !m.enteringName {
			m = m.maybeStartNameEntry()
		}
	case session.PhasePlaying:
		// A new run resets the commit state.
		m.scoreHandled = false
		m.commitNote = ""
	}

	return m, tickCmd(m.config.TickRate)
}

// maybeStartNameEntry opens the name overlay when the terminal score makes
// the leaderboard. Non-qualifying scores are resolved silently.
func (m Model) maybeStartNameEntry() Model {
	if m.store == nil {
		m.scoreHandled = true
		return m
	}

	ok, err := m.store.Qualifies(m.machine.FinalScore())
	if err != nil || !ok {
		m.scoreHandled = true
		return m
	}

	m.nameInput.SetValue("")
	m.nameInput.Focus()
	m.enteringName = true
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.machine.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.enteringName {
		overlay := overlayStyle.Render(fmt.Sprintf(
			"High score: %d!\nEnter your name:\n%s\n\nenter save   esc skip",
			m.machine.FinalScore(), m.nameInput.View(),
		))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, overlay)
	}

	if m.commitNote != "" {
		note := m.commitNote
		if note == "score not saved" {
			note = errorStyle.Render(note)
		}
		return out + "\n" + note
	}
	return out
}

// Run starts the Bubble Tea program for a local play session.
func Run(game config.GameConfig, store *storage.Store, cfg core.RuntimeConfig, emitter telemetry.Emitter, playerName string) error {
	model := NewModel(game, store, cfg, emitter, playerName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
