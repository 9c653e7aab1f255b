// Package score accumulates point deltas during play. Points earned within a
// round live in a round-scoped delta that is folded into the cumulative total
// at round boundaries; the cumulative total is floored at zero at every fold,
// never retroactively.
package score

import "github.com/omacats/platformer/internal/config"

// Source enumerates the origins of point events.
type Source int

const (
	EnemyDefeat Source = iota
	TreatCollected
	PlantCollected
	CharacterRescued
	RoundCompleted
	DeathPenalty
)

// String returns a stable name for the source, used in telemetry payloads.
func (s Source) String() string {
	switch s {
	case EnemyDefeat:
		return "enemy_defeat"
	case TreatCollected:
		return "treat_collected"
	case PlantCollected:
		return "plant_collected"
	case CharacterRescued:
		return "character_rescued"
	case RoundCompleted:
		return "round_completed"
	case DeathPenalty:
		return "death_penalty"
	default:
		return "unknown"
	}
}

// PointEvent is one attributed score change.
type PointEvent struct {
	Source Source
	Points int // Negative for penalties
	Tick   uint64
}

// Tracker owns the session's score state.
type Tracker struct {
	cfg    config.ScoringConfig
	folded int // Sum of folded round deltas, floored at zero at each fold
	delta  int // Round-scoped delta; may go negative within a round
	events []PointEvent
}

// NewTracker creates a tracker with the given point values.
func NewTracker(cfg config.ScoringConfig) *Tracker {
	return &Tracker{cfg: cfg}
}

// points returns the configured value for a positive source.
func (t *Tracker) points(src Source) int {
	switch src {
	case EnemyDefeat:
		return t.cfg.EnemyDefeat
	case TreatCollected:
		return t.cfg.TreatCollected
	case PlantCollected:
		return t.cfg.PlantCollected
	case CharacterRescued:
		return t.cfg.CharacterRescued
	case RoundCompleted:
		return t.cfg.RoundCompleted
	default:
		return 0
	}
}

// Award adds the source's configured points to the round-scoped delta and
// records the attributed event. Returns the points awarded.
func (t *Tracker) Award(src Source, tick uint64) int {
	pts := t.points(src)
	t.delta += pts
	t.events = append(t.events, PointEvent{Source: src, Points: pts, Tick: tick})
	return pts
}

// ApplyDeathPenalty subtracts the configured penalty from the round-scoped
// delta only. The delta itself is not clamped and can go negative, reflecting
// a bad round; the cumulative total clamps at zero when read or folded.
func (t *Tracker) ApplyDeathPenalty(tick uint64) {
	t.delta -= t.cfg.DeathPenalty
	t.events = append(t.events, PointEvent{Source: DeathPenalty, Points: -t.cfg.DeathPenalty, Tick: tick})
}

// FoldRound folds the round-scoped delta into the cumulative total, flooring
// the result at zero, and resets the delta. Called exactly once per round
// transition and once at session termination.
func (t *Tracker) FoldRound() {
	t.folded += t.delta
	if t.folded < 0 {
		t.folded = 0
	}
	t.delta = 0
}

// CurrentTotal returns the live cumulative total: all folded rounds plus the
// current round's delta, floored at zero.
func (t *Tracker) CurrentTotal() int {
	total := t.folded + t.delta
	if total < 0 {
		return 0
	}
	return total
}

// CurrentRoundDelta returns the round-scoped delta, which may be negative.
func (t *Tracker) CurrentRoundDelta() int {
	return t.delta
}

// Events returns the attributed point events recorded so far.
func (t *Tracker) Events() []PointEvent {
	return t.events
}
