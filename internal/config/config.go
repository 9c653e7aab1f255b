// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// GameConfig contains all tunable parameters for a play session.
type GameConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Characters CharactersConfig `yaml:"characters"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rounds     RoundsConfig     `yaml:"rounds"`
	Lives      int              `yaml:"lives"`
}

// PhysicsConfig defines movement parameters shared by all characters,
// in screen cells per tick.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
}

// CharactersConfig holds the per-cat ability parameters.
type CharactersConfig struct {
	Shoogie  CharacterConfig `yaml:"shoogie"`
	Florence CharacterConfig `yaml:"florence"`
	Sue      CharacterConfig `yaml:"sue"`
}

// CharacterConfig defines one cat's ability set. Fields that only apply to
// a particular cat (charge cap, boost duration, treat boost) are zero for
// the others.
type CharacterConfig struct {
	Attack          string  `yaml:"attack"` // "meow", "hairball" or "pound"
	Damage          int     `yaml:"damage"`
	JumpMultiplier  float64 `yaml:"jump_multiplier"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	DoubleJump      bool    `yaml:"double_jump"`
	ChargeCap       int     `yaml:"charge_cap"`      // Shoogie: max stored omni-meow charges
	BoostTicks      int     `yaml:"boost_ticks"`     // Florence: plant power-up duration
	TreatJumpBoost  float64 `yaml:"treat_jump_boost"` // Sue: jump bonus per treat
}

// ScoringConfig defines point values for score events.
type ScoringConfig struct {
	EnemyDefeat      int `yaml:"enemy_defeat"`
	TreatCollected   int `yaml:"treat_collected"`
	PlantCollected   int `yaml:"plant_collected"`
	CharacterRescued int `yaml:"character_rescued"`
	RoundCompleted   int `yaml:"round_completed"`
	DeathPenalty     int `yaml:"death_penalty"`
}

// RoundsConfig defines the deterministic difficulty curve. Enemy count and
// round length grow linearly with the round index; the same index always
// yields the same parameters.
type RoundsConfig struct {
	EnemyBase          int     `yaml:"enemy_base"`
	EnemyPerRound      int     `yaml:"enemy_per_round"`
	LengthBase         int     `yaml:"length_base"`
	LengthPerRound     int     `yaml:"length_per_round"`
	FinalRound         int     `yaml:"final_round"`
	EnemySpeedBase     float64 `yaml:"enemy_speed_base"`
	EnemySpeedPerRound float64 `yaml:"enemy_speed_per_round"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return the
// empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}
