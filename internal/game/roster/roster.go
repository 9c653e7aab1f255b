// Package roster holds the playable character definitions and the mutable
// per-session lives state. The roster is the single owner of the shared life
// pool: combat and scoring receive references to it, never copies.
package roster

import (
	"errors"
	"fmt"

	"github.com/omacats/platformer/internal/config"
	"github.com/omacats/platformer/internal/game/combat"
)

// CharacterID identifies one of the fixed playable cats.
type CharacterID int

const (
	Shoogie CharacterID = iota
	Florence
	Sue
)

// AllIDs lists every playable character in canonical order.
func AllIDs() []CharacterID {
	return []CharacterID{Shoogie, Florence, Sue}
}

// String returns the cat's display name.
func (id CharacterID) String() string {
	switch id {
	case Shoogie:
		return "Shoogie"
	case Florence:
		return "Florence"
	case Sue:
		return "Sue"
	default:
		return "Unknown"
	}
}

// Valid reports whether the id names a known character.
func (id CharacterID) Valid() bool {
	return id >= Shoogie && id <= Sue
}

// Errors returned by roster operations.
var (
	// ErrInvalidRoster indicates a configuration error at session start:
	// an empty id set, an unknown id, or a duplicate.
	ErrInvalidRoster = errors.New("roster: invalid roster")

	// ErrNoAliveCandidate indicates a switch request that cannot be
	// honored. Callers treat it as a user-facing no-op.
	ErrNoAliveCandidate = errors.New("roster: no alive candidate")
)

// Ability is the static definition of a character's combat and movement
// abilities, built from config at session start.
type Ability struct {
	Combat          combat.Ability
	JumpMultiplier  float64
	SpeedMultiplier float64
	DoubleJump      bool
	ChargeCap       int     // Max stored attack charges (0 = ability has none)
	BoostTicks      int     // Plant power-up duration (0 = no boost ability)
	TreatJumpBoost  float64 // Jump bonus per collected treat (0 = none)
}

// AbilityFor builds the ability record for a character from config.
func AbilityFor(id CharacterID, chars config.CharactersConfig) Ability {
	var cc config.CharacterConfig
	switch id {
	case Florence:
		cc = chars.Florence
	case Sue:
		cc = chars.Sue
	default:
		cc = chars.Shoogie
	}
	return Ability{
		Combat: combat.Ability{
			Attack: combat.ParseAttackKind(cc.Attack),
			Damage: cc.Damage,
		},
		JumpMultiplier:  cc.JumpMultiplier,
		SpeedMultiplier: cc.SpeedMultiplier,
		DoubleJump:      cc.DoubleJump,
		ChargeCap:       cc.ChargeCap,
		BoostTicks:      cc.BoostTicks,
		TreatJumpBoost:  cc.TreatJumpBoost,
	}
}

// Character is the mutable per-session record for one cat. Eliminated
// characters remain in the roster with Lives = 0; records are never removed
// mid-session.
type Character struct {
	ID      CharacterID
	Ability Ability
	Lives   int
	Alive   bool
	Charges int // Saturating attack charge counter (e.g. Shoogie's omni-meow)
}

// Roster owns the character records for one session.
type Roster struct {
	members map[CharacterID]*Character
	order   []CharacterID // Recruitment order, for stable display and cycling
	active  CharacterID
	chars   config.CharactersConfig
	lives   int
}

// New creates a roster with the given starting characters, each with the
// configured number of lives. Returns ErrInvalidRoster if the id set is
// empty or contains unknown or duplicate ids.
func New(ids []CharacterID, cfg config.GameConfig) (*Roster, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty id set", ErrInvalidRoster)
	}

	lives := cfg.Lives
	if lives <= 0 {
		lives = 3
	}

	r := &Roster{
		members: make(map[CharacterID]*Character, len(ids)),
		order:   make([]CharacterID, 0, len(ids)),
		chars:   cfg.Characters,
		lives:   lives,
	}

	for _, id := range ids {
		if !id.Valid() {
			return nil, fmt.Errorf("%w: unknown id %d", ErrInvalidRoster, id)
		}
		if _, dup := r.members[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidRoster, id)
		}
		r.members[id] = &Character{
			ID:      id,
			Ability: AbilityFor(id, cfg.Characters),
			Lives:   lives,
			Alive:   true,
		}
		r.order = append(r.order, id)
	}

	r.active = ids[0]
	return r, nil
}

// Member returns the record for the given character, or nil if the
// character has not joined the roster.
func (r *Roster) Member(id CharacterID) *Character {
	return r.members[id]
}

// Members returns the roster in recruitment order.
func (r *Roster) Members() []*Character {
	out := make([]*Character, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.members[id])
	}
	return out
}

// Active returns the currently controlled character.
func (r *Roster) Active() *Character {
	return r.members[r.active]
}

// ActiveID returns the id of the currently controlled character.
func (r *Roster) ActiveID() CharacterID {
	return r.active
}

// ApplyDamage decrements the character's lives by one and marks it dead when
// lives reach zero. Returns true if the character became eliminated by this
// call. Damaging an already eliminated character is a no-op, not an error.
func (r *Roster) ApplyDamage(id CharacterID) bool {
	c := r.members[id]
	if c == nil || !c.Alive {
		return false
	}

	c.Lives--
	if c.Lives <= 0 {
		c.Lives = 0
		c.Alive = false
		return true
	}
	return false
}

// SwitchActive changes the controlled character from one cat to another.
// The target must be a recruited, alive character distinct from the current
// one; otherwise ErrNoAliveCandidate is returned and the switch is ignored.
func (r *Roster) SwitchActive(from, to CharacterID) error {
	if from == to {
		return fmt.Errorf("%w: already controlling %s", ErrNoAliveCandidate, to)
	}
	c := r.members[to]
	if c == nil || !c.Alive {
		return fmt.Errorf("%w: %s cannot take over", ErrNoAliveCandidate, to)
	}
	r.active = to
	return nil
}

// NextAlive returns the next alive character after the given one in
// recruitment order, wrapping around. The second result is false when no
// other character is alive.
func (r *Roster) NextAlive(from CharacterID) (CharacterID, bool) {
	start := 0
	for i, id := range r.order {
		if id == from {
			start = i
			break
		}
	}
	for step := 1; step <= len(r.order); step++ {
		id := r.order[(start+step)%len(r.order)]
		if id != from && r.members[id].Alive {
			return id, true
		}
	}
	return from, false
}

// IsPartyWiped returns true iff every roster member is dead.
func (r *Roster) IsPartyWiped() bool {
	for _, c := range r.members {
		if c.Alive {
			return false
		}
	}
	return true
}

// AliveCount returns the number of roster members still alive.
func (r *Roster) AliveCount() int {
	n := 0
	for _, c := range r.members {
		if c.Alive {
			n++
		}
	}
	return n
}

// Rescue adds a previously absent character to the roster with full lives
// and returns true. Returns false if the character is already recruited or
// the id is unknown.
func (r *Roster) Rescue(id CharacterID) bool {
	if !id.Valid() {
		return false
	}
	if _, ok := r.members[id]; ok {
		return false
	}
	r.members[id] = &Character{
		ID:      id,
		Ability: AbilityFor(id, r.chars),
		Lives:   r.lives,
		Alive:   true,
	}
	r.order = append(r.order, id)
	return true
}

// AddCharge increments the character's attack charge counter. The counter
// saturates at the ability's cap instead of overflowing.
func (r *Roster) AddCharge(id CharacterID) {
	c := r.members[id]
	if c == nil || c.Ability.ChargeCap <= 0 {
		return
	}
	if c.Charges < c.Ability.ChargeCap {
		c.Charges++
	}
}

// UseCharge spends a full charge meter, returning whether it was ready.
// The counter builds toward the cap on qualifying hits and resets to zero on
// use; a partially filled meter cannot be spent.
func (r *Roster) UseCharge(id CharacterID) bool {
	c := r.members[id]
	if c == nil || c.Ability.ChargeCap <= 0 || c.Charges < c.Ability.ChargeCap {
		return false
	}
	c.Charges = 0
	return true
}
