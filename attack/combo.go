package attack

import "math"

type comboKind uint8

const (
	comboMultiplier comboKind = iota
	comboClassic
	comboModern
	comboNone
	comboCustom
)

// ComboTable selects how the combo counter contributes to an attack.
// It is a closed set of variants; Custom carries its own ordered
// bonus sequence.
type ComboTable struct {
	kind   comboKind
	custom []int
}

var (
	// ComboMultiplier scales the running attack by (1 + 0.25*combo)
	// with a logarithmic floor.
	ComboMultiplier = ComboTable{kind: comboMultiplier}
	// ComboClassic adds a fixed per-combo bonus from the classic
	// table.
	ComboClassic = ComboTable{kind: comboClassic}
	// ComboModern adds a fixed per-combo bonus from the modern table.
	ComboModern = ComboTable{kind: comboModern}
	// ComboNone applies no combo bonus.
	ComboNone = ComboTable{kind: comboNone}
)

// CustomComboTable builds a table that adds bonuses[combo], saturating
// at the last entry when the combo count runs past the sequence.
func CustomComboTable(bonuses []int) ComboTable {
	seq := make([]int, len(bonuses))
	copy(seq, bonuses)
	return ComboTable{kind: comboCustom, custom: seq}
}

func (t ComboTable) String() string {
	switch t.kind {
	case comboMultiplier:
		return "multiplier"
	case comboClassic:
		return "classic"
	case comboModern:
		return "modern"
	case comboNone:
		return "none"
	case comboCustom:
		return "custom"
	}
	return "unknown"
}

var (
	classicComboTable = []int{0, 1, 1, 2, 2, 3, 3, 4, 4, 4, 5}
	modernComboTable  = []int{0, 1, 1, 2, 2, 2, 3, 3, 3, 3, 3, 3, 4}
)

const comboMultiplierStep = 0.25

// apply folds the combo bonus into the running garbage value.
func (t ComboTable) apply(garbage float64, combo int) float64 {
	switch t.kind {
	case comboMultiplier:
		return applyComboMultiplier(garbage, combo)
	case comboClassic:
		return garbage + float64(saturatingLookup(classicComboTable, combo))
	case comboModern:
		return garbage + float64(saturatingLookup(modernComboTable, combo))
	case comboCustom:
		return garbage + float64(saturatingLookup(t.custom, combo))
	}
	return garbage
}

// applyComboMultiplier scales by (1 + 0.25*combo), then clamps upward
// to ln(1 + 1.25*combo) so long combos never drop below a logarithmic
// minimum even when the base attack is tiny.
func applyComboMultiplier(garbage float64, combo int) float64 {
	if combo <= 0 {
		return garbage
	}
	multiplied := garbage * (1 + comboMultiplierStep*float64(combo))
	return math.Max(multiplied, math.Log(1+1.25*float64(combo)))
}

func saturatingLookup(table []int, index int) int {
	if len(table) == 0 || index < 0 {
		return 0
	}
	if index >= len(table) {
		return table[len(table)-1]
	}
	return table[index]
}
