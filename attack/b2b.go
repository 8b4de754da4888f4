package attack

import (
	"fmt"
	"math"
)

// ClearResult is the outcome of registering one clear event with a
// B2BTracker.
type ClearResult struct {
	// Streak is the back-to-back counter after the event.
	Streak int
	// Surge is the 3-way split surge bonus, present only when a
	// charging threshold was crossed by this event.
	Surge *[3]int
}

// B2BTracker advances a back-to-back streak across clear events and,
// when charging is configured, emits a surge bonus each time the
// charge accumulator crosses its threshold.
//
// A tracker is owned by exactly one session. It is the only stateful
// object in this library and must not be mutated from multiple
// goroutines; callers serialize RegisterClear per instance.
type B2BTracker struct {
	streak     int
	charge     int
	chaining   bool
	charging   *ChargingConfig
	multiplier float64
}

// NewB2BTracker creates a tracker. charging may be nil, in which case
// no surge is ever emitted. The surge garbage multiplier defaults
// to 1.
func NewB2BTracker(chaining bool, charging *ChargingConfig) *B2BTracker {
	var cc *ChargingConfig
	if charging != nil {
		copied := *charging
		cc = &copied
	}
	return &B2BTracker{
		chaining:   chaining,
		charging:   cc,
		multiplier: 1,
	}
}

// SetGarbageMultiplier sets the multiplier context applied to surge
// amounts.
func (t *B2BTracker) SetGarbageMultiplier(m float64) error {
	if m <= 0 {
		return fmt.Errorf("garbage multiplier %v must be positive: %w", m, ErrInvalidInput)
	}
	t.multiplier = m
	return nil
}

// Streak returns the current back-to-back counter.
func (t *B2BTracker) Streak() int {
	return t.streak
}

// Reset zeroes the streak and the charge accumulator.
func (t *B2BTracker) Reset() {
	t.streak = 0
	t.charge = 0
}

// RegisterClear advances the tracker for one placement's clear event.
// lines is the number of lines cleared (0 for a non-clearing
// placement); difficult marks spin clears, quads, and perfect clears.
func (t *B2BTracker) RegisterClear(lines int, difficult bool) (ClearResult, error) {
	if lines < 0 || lines > MaxLines {
		return ClearResult{}, fmt.Errorf("lines %d outside 0..%d: %w", lines, MaxLines, ErrInvalidInput)
	}
	if lines == 0 {
		// No clear: streak and charge untouched.
		return ClearResult{Streak: t.streak}, nil
	}

	if !difficult {
		t.streak = 0
		if !t.chaining {
			t.charge = 0
		}
		return ClearResult{Streak: t.streak}, nil
	}

	t.streak++
	if t.charging == nil {
		return ClearResult{Streak: t.streak}, nil
	}

	t.charge++
	if t.charge < t.charging.At {
		return ClearResult{Streak: t.streak}, nil
	}

	raw := int(math.Floor(float64(t.streak-t.charge+t.charging.Base+1) * t.multiplier))
	t.charge = 0
	surge := splitSurge(raw)
	return ClearResult{Streak: t.streak, Surge: &surge}, nil
}

// splitSurge divides a surge amount across three simultaneous
// application slots. The first two slots get the rounded third; the
// remainder is absorbed entirely by the third slot so the parts
// always sum to the raw amount.
func splitSurge(raw int) [3]int {
	chunk := roundHalfUp(float64(raw) / 3)
	return [3]int{chunk, chunk, raw - 2*chunk}
}
