package world

import (
	"github.com/omacats/platformer/internal/game/combat"
	"github.com/omacats/platformer/internal/game/roster"
)

// Event is a discrete gameplay occurrence produced by one simulation step.
// The session consumes events to drive scoring, lives and round progression;
// the world itself never touches the score.
type Event interface {
	worldEvent()
}

// EnemyDefeatedEvent fires when a vacuum is destroyed by an attack.
type EnemyDefeatedEvent struct {
	Attack combat.AttackKind
}

func (EnemyDefeatedEvent) worldEvent() {}

// TreatCollectedEvent fires when the player picks up a dog treat.
type TreatCollectedEvent struct{}

func (TreatCollectedEvent) worldEvent() {}

// PlantCollectedEvent fires when the player picks up a house plant.
type PlantCollectedEvent struct{}

func (PlantCollectedEvent) worldEvent() {}

// CharacterRescuedEvent fires when a new cat joins the roster mid-level.
type CharacterRescuedEvent struct {
	ID roster.CharacterID
}

func (CharacterRescuedEvent) worldEvent() {}

// CharacterSwitchedEvent fires when the player changes the controlled cat.
type CharacterSwitchedEvent struct {
	From roster.CharacterID
	To   roster.CharacterID
}

func (CharacterSwitchedEvent) worldEvent() {}

// DamageTakenEvent fires when the active cat touches an enemy. The session
// applies the life loss and the death penalty; the world has already
// respawned the player.
type DamageTakenEvent struct {
	Character roster.CharacterID
}

func (DamageTakenEvent) worldEvent() {}

// GoalReachedEvent fires once when the player reaches Oma's bed.
type GoalReachedEvent struct{}

func (GoalReachedEvent) worldEvent() {}
