package config

// ApplyPreset adjusts the round difficulty curve for a named preset.
// Presets scale how quickly rounds get harder; the curve stays linear and
// deterministic in the round index either way.
//
//	easy  - half the per-round growth
//	normal- the config's curve unchanged
//	hard  - double the per-round growth
//	fixed - no growth, every round uses the base parameters
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rounds.EnemyPerRound = cfg.Rounds.EnemyPerRound / 2
		cfg.Rounds.EnemySpeedPerRound = cfg.Rounds.EnemySpeedPerRound / 2
		cfg.Rounds.LengthPerRound = cfg.Rounds.LengthPerRound / 2
	case DifficultyNormal:
		// Config values as-is
	case DifficultyHard:
		cfg.Rounds.EnemyPerRound = cfg.Rounds.EnemyPerRound * 2
		cfg.Rounds.EnemySpeedPerRound = cfg.Rounds.EnemySpeedPerRound * 2
		cfg.Rounds.LengthPerRound = cfg.Rounds.LengthPerRound * 2
	case DifficultyFixed:
		cfg.Rounds.EnemyPerRound = 0
		cfg.Rounds.EnemySpeedPerRound = 0
		cfg.Rounds.LengthPerRound = 0
	}
}
