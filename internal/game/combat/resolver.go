// Package combat resolves attack actions against enemies into damage and
// defeat outcomes. Resolution is a pure function of its inputs; enemy health
// bookkeeping lives with the caller.
package combat

// AttackKind identifies a character's attack ability.
type AttackKind int

const (
	AttackMeow     AttackKind = iota // Shoogie: short-range sound wave
	AttackHairball                   // Florence: long-range projectile
	AttackPound                      // Sue: ground pound shockwave
)

// String returns a human-readable name for the attack kind.
func (k AttackKind) String() string {
	switch k {
	case AttackMeow:
		return "meow"
	case AttackHairball:
		return "hairball"
	case AttackPound:
		return "pound"
	default:
		return "unknown"
	}
}

// ParseAttackKind maps a config string to an attack kind.
// Unknown strings fall back to the meow.
func ParseAttackKind(s string) AttackKind {
	switch s {
	case "hairball":
		return AttackHairball
	case "pound":
		return AttackPound
	default:
		return AttackMeow
	}
}

// Ability carries the combat-relevant parameters of a character.
type Ability struct {
	Attack AttackKind
	Damage int // Fixed damage dealt per landed attack
}

// Target is the combat view of an enemy: its remaining health.
type Target struct {
	Health int
}

// OutcomeKind classifies the result of an attack resolution.
type OutcomeKind int

const (
	OutcomeMiss   OutcomeKind = iota // No effect (target already down, or zero damage)
	OutcomeHit                       // Damage dealt, target survives
	OutcomeDefeat                    // Damage dealt, target health reached zero
)

// Outcome is the result of resolving one attack against one target.
type Outcome struct {
	Kind   OutcomeKind
	Damage int // Damage actually dealt
}

// ResolveAttack resolves a single attack against a target.
// It never mutates anything: the caller applies Outcome.Damage to its own
// enemy records.
func ResolveAttack(ab Ability, t Target) Outcome {
	if t.Health <= 0 || ab.Damage <= 0 {
		return Outcome{Kind: OutcomeMiss}
	}
	if t.Health-ab.Damage <= 0 {
		return Outcome{Kind: OutcomeDefeat, Damage: ab.Damage}
	}
	return Outcome{Kind: OutcomeHit, Damage: ab.Damage}
}
