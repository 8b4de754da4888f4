package attack

import (
	"fmt"
	"math"

	"github.com/MochBot/fusion/move"
)

// MaxLines is the largest line count a single placement can clear.
const MaxLines = 4

// backToBackBonus is the flat bonus for clearing with an active
// streak (non-perfect-clear case).
const backToBackBonus = 1

// baseAttack is the fixed (lines, spin) lookup. Combinations not
// listed here yield zero.
func baseAttack(lines int, spin move.SpinType) float64 {
	switch spin {
	case move.SpinFull:
		switch lines {
		case 1:
			return 2
		case 2:
			return 4
		case 3:
			return 6
		}
	case move.SpinMini:
		if lines == 2 {
			return 1
		}
	default:
		switch lines {
		case 1:
			return 0
		case 2:
			return 1
		case 3:
			return 2
		case 4:
			return 4
		}
	}
	return 0
}

// CalculateAttack computes the garbage sent by a single clear event.
// The composition order is fixed: base lookup, perfect-clear override,
// streak bonus, combo bonus, garbage multiplier, then round half-up.
// The result is never negative.
func CalculateAttack(lines int, spin move.SpinType, streak, combo int, cfg AttackConfig, isPC bool) (int, error) {
	if lines < 0 || lines > MaxLines {
		return 0, fmt.Errorf("lines %d outside 0..%d: %w", lines, MaxLines, ErrInvalidInput)
	}
	if streak < 0 {
		return 0, fmt.Errorf("streak %d below zero: %w", streak, ErrInvalidInput)
	}
	if combo < 0 {
		return 0, fmt.Errorf("combo %d below zero: %w", combo, ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if lines == 0 {
		// Not a clear event; no bonus can apply.
		return 0, nil
	}

	garbage := baseAttack(lines, spin)

	// A perfect clear replaces the line-clear base outright.
	if isPC {
		garbage = float64(cfg.PCGarbage)
	}

	if streak > 0 {
		if isPC {
			garbage += float64(cfg.PCB2B)
		} else {
			garbage += backToBackBonus
		}
	}

	garbage = cfg.ComboTable.apply(garbage, combo)
	garbage *= cfg.GarbageMultiplier

	return clampNonNegative(roundHalfUp(garbage)), nil
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
