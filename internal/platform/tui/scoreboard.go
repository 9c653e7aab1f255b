package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omacats/platformer/internal/storage"
)

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11")).
	MarginBottom(1)

// ScoreboardModel is the Bubble Tea model for the high score table.
type ScoreboardModel struct {
	table    table.Model
	loadErr  error
	quitting bool
}

// NewScoreboardModel loads the leaderboard into a table model.
func NewScoreboardModel(store *storage.Store) ScoreboardModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: storage.MaxNameLen + 1},
		{Title: "Score", Width: 8},
		{Title: "Rounds", Width: 6},
		{Title: "Date", Width: 12},
	}

	entries, err := store.Top(storage.Capacity)
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Rounds),
			e.CreatedAt.Format("2006-01-02"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(storage.Capacity+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return ScoreboardModel{table: t, loadErr: err}
}

// Init is a no-op; the table is loaded up front.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and exit keys.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c", "enter":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("cannot load scores: %v\n", m.loadErr)
	}
	if len(m.table.Rows()) == 0 {
		return scoreboardTitleStyle.Render("High Scores") +
			"\nNo scores yet. Go rescue some cats!\n\nq - back\n"
	}
	return scoreboardTitleStyle.Render("High Scores") + "\n" +
		m.table.View() + "\n\nq - back\n"
}

// RunScoreboard shows the leaderboard until the user exits.
func RunScoreboard(store *storage.Store) error {
	p := tea.NewProgram(NewScoreboardModel(store))
	_, err := p.Run()
	return err
}
