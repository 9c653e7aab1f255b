package session

import (
	"fmt"
	"strings"

	"github.com/omacats/platformer/internal/core"
)

// Render draws the current phase into the screen buffer.
func (m *Machine) Render(s *core.Screen) {
	s.Clear()

	switch m.phase {
	case PhaseTitle:
		m.renderTitle(s)
	case PhasePlaying:
		m.world.Render(s)
		m.renderHUD(s)
		if m.paused {
			s.DrawTextCentered(s.Height()/2, "PAUSED - press P to resume")
		}
	case PhaseRoundTransition:
		m.renderTransition(s)
	case PhaseVictory:
		m.renderOutcome(s, "VICTORY!", "Oma is safe. Every round cleared.")
	case PhaseGameOver:
		m.renderOutcome(s, "GAME OVER", "The vacuums got all three cats.")
	}
}

func (m *Machine) renderTitle(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-4, "O M A ' S   A D V E N T U R E")
	s.DrawTextCentered(mid-2, "Guide the cats past the vacuums to Oma's bed")
	s.DrawTextCentered(mid+1, "Enter - start    Q - quit")
	s.DrawTextCentered(mid+3, "arrows/WASD move   Space attack   X switch cat")
}

func (m *Machine) renderTransition(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, fmt.Sprintf("Round %d cleared!", m.rounds.Index()))
	s.DrawTextCentered(mid, fmt.Sprintf("Score: %d", m.tracker.CurrentTotal()))
	s.DrawTextCentered(mid+2, fmt.Sprintf("Round %d starting...", m.rounds.Index()+1))
	s.DrawTextCentered(mid+4, "Enter - skip    Esc - abandon")
}

func (m *Machine) renderOutcome(s *core.Screen, title, line string) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-3, title)
	s.DrawTextCentered(mid-1, line)
	s.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d   Rounds: %d", m.finalScore, m.finalRounds))
	s.DrawTextCentered(mid+3, "R - back to title")
}

// renderHUD draws the score, round and per-cat lives along the top rows.
func (m *Machine) renderHUD(s *core.Screen) {
	s.DrawTextColored(1, 0,
		fmt.Sprintf("Score %d", m.tracker.CurrentTotal()), core.ColorYellow)

	roundLabel := fmt.Sprintf("Round %d/%d", m.rounds.Index(), m.cfg.Rounds.FinalRound)
	s.DrawTextColored(s.Width()-len(roundLabel)-1, 0, roundLabel, core.ColorWhite)

	x := 1
	for _, c := range m.ros.Members() {
		marker := " "
		if c.ID == m.ros.ActiveID() {
			marker = ">"
		}
		label := fmt.Sprintf("%s%s %s", marker, c.ID, strings.Repeat("♥", c.Lives))
		color := core.ColorRed
		if !c.Alive {
			label = fmt.Sprintf("%s%s x", marker, c.ID)
			color = core.ColorWhite
		}
		s.DrawTextColored(x, 1, label, color)
		x += len([]rune(label)) + 3
	}

	active := m.ros.Active()
	status := make([]string, 0, 2)
	if active.Charges > 0 {
		status = append(status, fmt.Sprintf("charges %d", active.Charges))
	}
	if m.world.BoostTicks() > 0 {
		status = append(status, "BOOST")
	}
	if active.Ability.TreatJumpBoost > 0 && m.world.TreatCount() > 0 {
		status = append(status, fmt.Sprintf("treats %d", m.world.TreatCount()))
	}
	if len(status) > 0 {
		s.DrawTextColored(1, 2, strings.Join(status, "  "), core.ColorCyan)
	}
}
