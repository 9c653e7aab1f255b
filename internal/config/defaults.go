package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
// Values mirror the embedded defaults/game.yaml and serve as a fallback
// if the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      0.18,
			JumpImpulse:  -1.5,
			MaxFallSpeed: 1.2,
			MoveSpeed:    0.9,
		},
		Characters: CharactersConfig{
			Shoogie: CharacterConfig{
				Attack:          "meow",
				Damage:          1,
				JumpMultiplier:  1.0,
				SpeedMultiplier: 1.0,
				ChargeCap:       3,
			},
			Florence: CharacterConfig{
				Attack:          "hairball",
				Damage:          1,
				JumpMultiplier:  1.2,
				SpeedMultiplier: 1.0,
				BoostTicks:      600,
			},
			Sue: CharacterConfig{
				Attack:          "pound",
				Damage:          1,
				JumpMultiplier:  1.1,
				SpeedMultiplier: 1.3,
				DoubleJump:      true,
				TreatJumpBoost:  0.02,
			},
		},
		Scoring: ScoringConfig{
			EnemyDefeat:      50,
			TreatCollected:   10,
			PlantCollected:   20,
			CharacterRescued: 100,
			RoundCompleted:   1000,
			DeathPenalty:     200,
		},
		Rounds: RoundsConfig{
			EnemyBase:          6,
			EnemyPerRound:      2,
			LengthBase:         240,
			LengthPerRound:     20,
			FinalRound:         10,
			EnemySpeedBase:     0.25,
			EnemySpeedPerRound: 0.03,
		},
		Lives: 3,
	}
}
