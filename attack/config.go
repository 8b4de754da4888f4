// Package attack computes the garbage output of line clears: the
// base attack table, back-to-back and combo bonuses, perfect-clear
// overrides, and the stateful back-to-back streak tracker with its
// surge mechanic.
package attack

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every argument-validation error in
// this package. Callers hitting it have a bug upstream; it is never a
// retryable runtime condition.
var ErrInvalidInput = errors.New("invalid input")

// ChargingConfig configures surge charging for a B2BTracker: the
// streak accumulator threshold at which a surge fires, and the base
// bonus folded into the surge amount.
type ChargingConfig struct {
	At   int
	Base int
}

// AttackConfig holds the ruleset scalars for attack calculation. It
// is constructed fresh per analysis call from externally supplied
// ruleset values; this package ships no production defaults.
type AttackConfig struct {
	// PCGarbage replaces the base attack on a perfect clear.
	PCGarbage int
	// PCB2B is the streak bonus applied instead of the flat bonus
	// when the clear is a perfect clear.
	PCB2B int
	// B2BChaining preserves the surge charge accumulator across
	// plain clears.
	B2BChaining bool
	// B2BCharging enables surge emission when set.
	B2BCharging *ChargingConfig
	ComboTable  ComboTable
	// GarbageMultiplier scales the final result. Must be positive.
	GarbageMultiplier float64
}

// Validate checks the config for values that would make attack
// arithmetic meaningless.
func (c AttackConfig) Validate() error {
	if c.GarbageMultiplier <= 0 {
		return fmt.Errorf("garbage multiplier %v must be positive: %w",
			c.GarbageMultiplier, ErrInvalidInput)
	}
	if c.PCGarbage < 0 {
		return fmt.Errorf("pc garbage %d below zero: %w", c.PCGarbage, ErrInvalidInput)
	}
	if c.PCB2B < 0 {
		return fmt.Errorf("pc b2b bonus %d below zero: %w", c.PCB2B, ErrInvalidInput)
	}
	if c.B2BCharging != nil && (c.B2BCharging.At <= 0 || c.B2BCharging.Base < 0) {
		return fmt.Errorf("charging config %+v out of range: %w", *c.B2BCharging, ErrInvalidInput)
	}
	return nil
}
