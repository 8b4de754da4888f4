package attack

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshTrackerDifficultClear(t *testing.T) {
	is := is.New(t)
	tr := NewB2BTracker(false, nil)
	res, err := tr.RegisterClear(4, true)
	is.NoErr(err)
	is.Equal(res.Streak, 1)
	is.True(res.Surge == nil) // no charging configured
}

func TestStreakAdvancesAndResets(t *testing.T) {
	is := is.New(t)
	tr := NewB2BTracker(false, nil)
	for i := 1; i <= 3; i++ {
		res, err := tr.RegisterClear(4, true)
		is.NoErr(err)
		is.Equal(res.Streak, i)
	}
	// A plain clear breaks the streak.
	res, err := tr.RegisterClear(1, false)
	is.NoErr(err)
	is.Equal(res.Streak, 0)
	is.Equal(tr.Streak(), 0)
}

func TestNoClearLeavesEverythingAlone(t *testing.T) {
	is := is.New(t)
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 4})
	tr.RegisterClear(4, true)
	tr.RegisterClear(4, true)

	res, err := tr.RegisterClear(0, false)
	is.NoErr(err)
	is.Equal(res.Streak, 2)
	is.True(res.Surge == nil)

	// The accumulator kept its charge: two more difficult clears
	// reach the threshold.
	tr.RegisterClear(4, true)
	res, _ = tr.RegisterClear(4, true)
	is.True(res.Surge != nil)
}

func TestSurgeOnThresholdCrossing(t *testing.T) {
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 4})
	for i := 0; i < 3; i++ {
		res, err := tr.RegisterClear(4, true)
		require.NoError(t, err)
		require.Nil(t, res.Surge, "clear %d", i)
	}
	// Fourth difficult clear crosses the threshold:
	// raw = (4 - 4 + 4 + 1) = 5, split [2 2 1].
	res, err := tr.RegisterClear(4, true)
	require.NoError(t, err)
	require.NotNil(t, res.Surge)
	assert.Equal(t, [3]int{2, 2, 1}, *res.Surge)
	assert.Equal(t, 4, res.Streak)
}

func TestSurgeQuickPlayValues(t *testing.T) {
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 1})
	for i := 0; i < 3; i++ {
		tr.RegisterClear(4, true)
	}
	// raw = (4 - 4 + 1 + 1) = 2, split [1 1 0].
	res, err := tr.RegisterClear(4, true)
	require.NoError(t, err)
	require.NotNil(t, res.Surge)
	assert.Equal(t, [3]int{1, 1, 0}, *res.Surge)
}

func TestSurgeRechargesAfterEmission(t *testing.T) {
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 4})
	for i := 0; i < 4; i++ {
		tr.RegisterClear(4, true)
	}
	// Streak keeps running; the accumulator restarts from zero.
	for i := 0; i < 3; i++ {
		res, _ := tr.RegisterClear(4, true)
		require.Nil(t, res.Surge)
	}
	// raw = (8 - 4 + 4 + 1) = 9, split [3 3 3].
	res, err := tr.RegisterClear(4, true)
	require.NoError(t, err)
	require.NotNil(t, res.Surge)
	assert.Equal(t, [3]int{3, 3, 3}, *res.Surge)
	assert.Equal(t, 8, res.Streak)
}

func TestChainingPreservesChargeAcrossBreak(t *testing.T) {
	tr := NewB2BTracker(true, &ChargingConfig{At: 4, Base: 4})
	tr.RegisterClear(4, true)
	tr.RegisterClear(4, true)
	tr.RegisterClear(1, false) // break; chaining keeps the charge

	tr.RegisterClear(4, true)
	// Charge was 2 before the break, so the fourth difficult clear
	// crosses: raw = (2 - 4 + 4 + 1) = 3.
	res, err := tr.RegisterClear(4, true)
	require.NoError(t, err)
	require.NotNil(t, res.Surge)
	assert.Equal(t, [3]int{1, 1, 1}, *res.Surge)
	assert.Equal(t, 2, res.Streak)
}

func TestNoChainingResetsChargeOnBreak(t *testing.T) {
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 4})
	tr.RegisterClear(4, true)
	tr.RegisterClear(4, true)
	tr.RegisterClear(1, false) // break resets the charge too

	for i := 0; i < 3; i++ {
		res, _ := tr.RegisterClear(4, true)
		require.Nil(t, res.Surge, "clear %d after break", i)
	}
	res, _ := tr.RegisterClear(4, true)
	require.NotNil(t, res.Surge)
}

func TestSurgeMultiplierContext(t *testing.T) {
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 4})
	require.NoError(t, tr.SetGarbageMultiplier(0.5))
	for i := 0; i < 3; i++ {
		tr.RegisterClear(4, true)
	}
	// raw = floor(5 * 0.5) = 2, split [1 1 0].
	res, err := tr.RegisterClear(4, true)
	require.NoError(t, err)
	require.NotNil(t, res.Surge)
	assert.Equal(t, [3]int{1, 1, 0}, *res.Surge)

	err = tr.SetGarbageMultiplier(0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

// Split property: the three slots always sum to the raw amount and
// the first two are equal.
func TestSplitSurgeProperty(t *testing.T) {
	for raw := 0; raw <= 100; raw++ {
		s := splitSurge(raw)
		require.Equal(t, raw, s[0]+s[1]+s[2], "raw %d", raw)
		require.Equal(t, s[0], s[1], "raw %d", raw)
	}
}

func TestRegisterClearInvalidLines(t *testing.T) {
	tr := NewB2BTracker(false, nil)
	_, err := tr.RegisterClear(-1, false)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = tr.RegisterClear(5, true)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestReset(t *testing.T) {
	is := is.New(t)
	tr := NewB2BTracker(false, &ChargingConfig{At: 4, Base: 4})
	tr.RegisterClear(4, true)
	tr.RegisterClear(4, true)
	tr.Reset()
	is.Equal(tr.Streak(), 0)
	// Charge was cleared as well: threshold needs four fresh clears.
	for i := 0; i < 3; i++ {
		res, _ := tr.RegisterClear(4, true)
		is.True(res.Surge == nil)
	}
	res, _ := tr.RegisterClear(4, true)
	is.True(res.Surge != nil)
}
