package attack

// Ruleset presets exist only as test fixtures. Production callers
// construct AttackConfig from their own ruleset scalars; nothing in
// the library reaches for these.

func tetraLeagueConfig() AttackConfig {
	return AttackConfig{
		PCGarbage:         5,
		PCB2B:             2,
		B2BChaining:       true,
		B2BCharging:       &ChargingConfig{At: 4, Base: 4},
		ComboTable:        ComboMultiplier,
		GarbageMultiplier: 1,
	}
}

func quickPlayConfig() AttackConfig {
	return AttackConfig{
		PCGarbage:         3,
		PCB2B:             2,
		B2BChaining:       false,
		B2BCharging:       &ChargingConfig{At: 4, Base: 1},
		ComboTable:        ComboMultiplier,
		GarbageMultiplier: 1,
	}
}
