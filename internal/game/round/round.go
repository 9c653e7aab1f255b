// Package round defines the difficulty curve and round progression policy.
// Difficulty parameters are a deterministic linear function of the round
// index, so the same index always yields the same round.
package round

import (
	"fmt"

	"github.com/omacats/platformer/internal/config"
)

// Params are the derived difficulty parameters of one round.
type Params struct {
	Index      int     // 1-based, monotonically increasing
	EnemyCount int     // Enemies spawned, all of which count toward the clear condition
	Length     int     // Level length in cells
	EnemySpeed float64 // Patrol speed in cells per tick
}

// Round is one level attempt. Immutable once generated aside from the
// completion flag; advancing supersedes the round with a new one.
type Round struct {
	Params    Params
	Completed bool
}

// Manager derives round parameters from config and tracks the current round.
type Manager struct {
	cfg     config.RoundsConfig
	current *Round
}

// NewManager creates a round manager for the given curve.
func NewManager(cfg config.RoundsConfig) *Manager {
	return &Manager{cfg: cfg}
}

// DifficultyFor returns the parameters for the given round index. The curve
// is linear and monotonically non-decreasing; calling it twice with the same
// index yields identical results. A non-positive index is a programming
// fault and panics.
func (m *Manager) DifficultyFor(index int) Params {
	if index < 1 {
		panic(fmt.Sprintf("round: invalid round index %d", index))
	}
	return Params{
		Index:      index,
		EnemyCount: m.cfg.EnemyBase + m.cfg.EnemyPerRound*(index-1),
		Length:     m.cfg.LengthBase + m.cfg.LengthPerRound*(index-1),
		EnemySpeed: m.cfg.EnemySpeedBase + m.cfg.EnemySpeedPerRound*float64(index-1),
	}
}

// Start generates the round with the given index and makes it current.
// Starting a round with a lower index than the current one is a programming
// fault and panics; the round index only moves forward.
func (m *Manager) Start(index int) Params {
	if m.current != nil && index < m.current.Params.Index {
		panic(fmt.Sprintf("round: index moving backwards: %d -> %d", m.current.Params.Index, index))
	}
	m.current = &Round{Params: m.DifficultyFor(index)}
	return m.current.Params
}

// Advance supersedes the current round with the next one.
func (m *Manager) Advance() Params {
	if m.current == nil {
		return m.Start(1)
	}
	return m.Start(m.current.Params.Index + 1)
}

// Current returns the parameters of the current round.
func (m *Manager) Current() Params {
	if m.current == nil {
		return Params{}
	}
	return m.current.Params
}

// Index returns the current round index, or 0 before the first round.
func (m *Manager) Index() int {
	if m.current == nil {
		return 0
	}
	return m.current.Params.Index
}

// IsFinal reports whether the current round is the session's last.
func (m *Manager) IsFinal() bool {
	return m.current != nil && m.current.Params.Index >= m.cfg.FinalRound
}

// CheckCompletion marks the round complete when its win condition holds:
// every required enemy defeated, or the goal (Oma's bed) reached. It returns
// true only on the tick the round first completes, so the completion bonus
// is awarded exactly once no matter how often the check runs.
func (m *Manager) CheckCompletion(enemiesDefeated int, goalReached bool) bool {
	if m.current == nil || m.current.Completed {
		return false
	}
	if !goalReached && enemiesDefeated < m.current.Params.EnemyCount {
		return false
	}
	m.current.Completed = true
	return true
}
