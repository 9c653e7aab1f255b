// Package session owns the run lifecycle: the phase state machine, score
// folding at round boundaries, life bookkeeping and the terminal outcomes.
// It consumes world events and is the only writer of the score tracker.
package session

import (
	"fmt"

	"github.com/omacats/platformer/internal/config"
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/game/round"
	"github.com/omacats/platformer/internal/game/roster"
	"github.com/omacats/platformer/internal/game/score"
	"github.com/omacats/platformer/internal/game/world"
	"github.com/omacats/platformer/internal/telemetry"
)

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseRoundTransition
	PhaseVictory
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseRoundTransition:
		return "RoundTransition"
	case PhaseVictory:
		return "Victory"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// transitionTicks is how long the between-rounds banner stays up before the
// next round starts automatically. Confirm skips the wait.
const transitionTicks = 120

// Leaderboard persists qualifying terminal scores. The session machine never
// talks to storage directly; the platform layer passes an implementation in
// at commit time.
type Leaderboard interface {
	Submit(name string, score, rounds int) error
	Qualifies(score int) (bool, error)
}

// Machine drives one play session from the title screen through victory,
// defeat or abandonment and back.
type Machine struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	emitter telemetry.Emitter

	phase  Phase
	tick   uint64
	paused bool

	ros     *roster.Roster
	tracker *score.Tracker
	rounds  *round.Manager
	world   *world.World

	transitionLeft int

	// Terminal outcome, captured when the session ends. The score is final
	// once folded; abandonment leaves both at zero.
	finalScore  int
	finalRounds int
}

// NewMachine creates a session machine on the title screen.
func NewMachine(cfg config.GameConfig, rt core.RuntimeConfig, emitter telemetry.Emitter) *Machine {
	if emitter == nil {
		emitter = telemetry.NopEmitter{}
	}
	return &Machine{
		cfg:     cfg,
		runtime: rt,
		emitter: emitter,
		phase:   PhaseTitle,
	}
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Score returns the live cumulative total during play.
func (m *Machine) Score() int {
	if m.tracker == nil {
		return 0
	}
	return m.tracker.CurrentTotal()
}

// RoundIndex returns the current round number, or 0 outside a session.
func (m *Machine) RoundIndex() int {
	if m.rounds == nil {
		return 0
	}
	return m.rounds.Index()
}

// FinalScore returns the folded score of the finished session. Meaningful
// only in the Victory and GameOver phases.
func (m *Machine) FinalScore() int {
	return m.finalScore
}

// FinalRounds returns how many rounds the finished session completed.
func (m *Machine) FinalRounds() int {
	return m.finalRounds
}

// Roster exposes the character roster for HUD rendering. Nil outside a
// session.
func (m *Machine) Roster() *roster.Roster {
	return m.ros
}

// World exposes the running simulation. Nil outside the playing phases.
func (m *Machine) World() *world.World {
	return m.world
}

// Paused reports whether play is suspended.
func (m *Machine) Paused() bool {
	return m.paused
}

// Tick advances the session by one frame.
func (m *Machine) Tick(in core.InputFrame) {
	m.tick++

	switch m.phase {
	case PhaseTitle:
		if in.Has(core.ActionConfirm) {
			m.startSession()
		}

	case PhasePlaying:
		m.tickPlaying(in)

	case PhaseRoundTransition:
		if in.Has(core.ActionAbandon) {
			m.abandon()
			return
		}
		m.transitionLeft--
		if m.transitionLeft <= 0 || in.Has(core.ActionConfirm) {
			m.startNextRound()
		}

	case PhaseVictory, PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			m.reset()
		}
	}
}

// startSession begins a fresh run: Shoogie alone, full lives, round one.
func (m *Machine) startSession() {
	ros, err := roster.New([]roster.CharacterID{roster.Shoogie}, m.cfg)
	if err != nil {
		// A fixed starting roster cannot be invalid.
		panic(fmt.Sprintf("session: %v", err))
	}
	m.ros = ros
	m.tracker = score.NewTracker(m.cfg.Scoring)
	m.rounds = round.NewManager(m.cfg.Rounds)
	params := m.rounds.Start(1)
	m.world = world.New(m.cfg, params, m.ros, m.runtime.ScreenW, m.runtime.ScreenH)
	m.paused = false
	m.finalScore = 0
	m.finalRounds = 0
	m.phase = PhasePlaying

	m.emitter.Emit(telemetry.EventGameStarted, map[string]any{
		"final_round": m.cfg.Rounds.FinalRound,
		"lives":       m.cfg.Lives,
	})
}

func (m *Machine) tickPlaying(in core.InputFrame) {
	if in.Has(core.ActionAbandon) {
		m.abandon()
		return
	}
	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.paused {
		return
	}

	events := m.world.Step(in)
	for _, ev := range events {
		m.handleEvent(ev)
		if m.phase != PhasePlaying {
			return
		}
	}

	if m.rounds.CheckCompletion(m.world.EnemiesDefeated(), m.world.Level().GoalReached()) {
		m.completeRound()
	}
}

// handleEvent maps one world event onto score, lives and telemetry.
func (m *Machine) handleEvent(ev world.Event) {
	switch e := ev.(type) {
	case world.EnemyDefeatedEvent:
		m.tracker.Award(score.EnemyDefeat, m.tick)

	case world.TreatCollectedEvent:
		m.tracker.Award(score.TreatCollected, m.tick)

	case world.PlantCollectedEvent:
		m.tracker.Award(score.PlantCollected, m.tick)

	case world.CharacterRescuedEvent:
		m.tracker.Award(score.CharacterRescued, m.tick)

	case world.CharacterSwitchedEvent:
		m.emitter.Emit(telemetry.EventCharacterSwitched, map[string]any{
			"from": e.From.String(),
			"to":   e.To.String(),
		})

	case world.DamageTakenEvent:
		m.applyDamage(e.Character)
	}
}

// applyDamage charges a life and the death penalty for a hit, handing
// control to the next surviving cat on elimination and ending the session
// when nobody is left.
func (m *Machine) applyDamage(id roster.CharacterID) {
	m.tracker.ApplyDeathPenalty(m.tick)

	eliminated := m.ros.ApplyDamage(id)
	if !eliminated {
		return
	}

	m.emitter.Emit(telemetry.EventCharacterDeath, map[string]any{
		"character": id.String(),
		"round":     m.rounds.Index(),
	})

	if m.ros.IsPartyWiped() {
		m.finish(PhaseGameOver)
		return
	}

	if next, ok := m.ros.NextAlive(id); ok {
		_ = m.ros.SwitchActive(id, next)
	}
}

// completeRound awards the bonus, folds the round delta into the total and
// either declares victory or schedules the next round.
func (m *Machine) completeRound() {
	m.tracker.Award(score.RoundCompleted, m.tick)
	m.tracker.FoldRound()

	m.emitter.Emit(telemetry.EventLevelCompleted, map[string]any{
		"round": m.rounds.Index(),
		"score": m.tracker.CurrentTotal(),
	})

	if m.rounds.IsFinal() {
		m.finish(PhaseVictory)
		return
	}

	m.transitionLeft = transitionTicks
	m.phase = PhaseRoundTransition
}

func (m *Machine) startNextRound() {
	params := m.rounds.Advance()
	m.world = world.New(m.cfg, params, m.ros, m.runtime.ScreenW, m.runtime.ScreenH)
	m.phase = PhasePlaying
}

// finish folds any outstanding delta, captures the terminal score and moves
// to the given terminal phase.
func (m *Machine) finish(outcome Phase) {
	m.tracker.FoldRound()
	m.finalScore = m.tracker.CurrentTotal()
	m.finalRounds = m.rounds.Index()
	if outcome == PhaseGameOver {
		// The fatal round was not completed.
		m.finalRounds--
	}
	m.phase = outcome

	label := "victory"
	if outcome == PhaseGameOver {
		label = "defeat"
	}
	m.emitter.Emit(telemetry.EventGameOver, map[string]any{
		"outcome":          label,
		"score":            m.finalScore,
		"rounds_completed": m.finalRounds,
	})
}

// abandon discards the session: nothing is folded, nothing is committed.
func (m *Machine) abandon() {
	m.reset()
}

// reset returns the machine to the title screen, dropping session state.
func (m *Machine) reset() {
	m.phase = PhaseTitle
	m.paused = false
	m.ros = nil
	m.tracker = nil
	m.rounds = nil
	m.world = nil
}

// CommitScore submits a finished session's score to the leaderboard. The
// submit is retried once on failure; a second failure is returned so the
// interface can tell the player the score was not saved.
func (m *Machine) CommitScore(lb Leaderboard, name string) error {
	err := lb.Submit(name, m.finalScore, m.finalRounds)
	if err == nil {
		return nil
	}
	if err2 := lb.Submit(name, m.finalScore, m.finalRounds); err2 == nil {
		return nil
	}
	return fmt.Errorf("session: score not saved: %w", err)
}

// Resize propagates new terminal dimensions to the running world.
func (m *Machine) Resize(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
	if m.world != nil {
		m.world.Resize(w, h)
	}
}
