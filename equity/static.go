package equity

import "github.com/MochBot/fusion/board"

// Heuristic weights. These are fixed engine internals, not tunables:
// search determinism and misdrop thresholds are calibrated against
// them.
const (
	weightMaxHeight    = -0.5
	weightHoles        = -2.0
	weightBumpiness    = -0.1
	weightWells        = -0.1
	weightLinesCleared = 1.0
	weightDeepestWell  = -0.1
)

// StaticCalculator scores a board with a weighted sum of structural
// heuristics: stack height, holes, bumpiness, and well depth.
type StaticCalculator struct{}

// NewStaticCalculator creates the standard heuristic calculator.
func NewStaticCalculator() *StaticCalculator {
	return &StaticCalculator{}
}

func (c *StaticCalculator) Evaluate(b *board.Board) float64 {
	return c.EvaluateWithClear(b, 0)
}

func (c *StaticCalculator) EvaluateWithClear(b *board.Board, lines int) float64 {
	score := float64(lines) * weightLinesCleared

	heights := b.ColumnHeights()

	maxHeight := 0
	for _, h := range heights {
		if h > maxHeight {
			maxHeight = h
		}
	}
	score += float64(maxHeight) * weightMaxHeight

	holes := 0
	for col := 0; col < board.Width; col++ {
		for row := 0; row < heights[col]; row++ {
			if !b.Get(col, row) {
				holes++
			}
		}
	}
	score += float64(holes) * weightHoles

	bumpiness := 0
	for col := 0; col < board.Width-1; col++ {
		diff := heights[col] - heights[col+1]
		if diff < 0 {
			diff = -diff
		}
		bumpiness += diff
	}
	score += float64(bumpiness) * weightBumpiness

	// Wells: columns strictly below both neighbors. The board edge
	// counts as an infinitely tall neighbor. The deepest single well
	// is penalized again as an I-piece dependency.
	wells := 0
	deepest := 0
	for col := 0; col < board.Width; col++ {
		left := board.Height
		if col > 0 {
			left = heights[col-1]
		}
		right := board.Height
		if col < board.Width-1 {
			right = heights[col+1]
		}
		minNeighbor := left
		if right < minNeighbor {
			minNeighbor = right
		}
		if minNeighbor > heights[col] {
			depth := minNeighbor - heights[col]
			wells += depth
			if depth > deepest {
				deepest = depth
			}
		}
	}
	score += float64(wells) * weightWells
	score += float64(deepest) * weightDeepestWell

	return score
}

// CountHoles counts empty cells with at least one occupied cell above
// them in the same column.
func CountHoles(b *board.Board) int {
	holes := 0
	heights := b.ColumnHeights()
	for col := 0; col < board.Width; col++ {
		for row := 0; row < heights[col]; row++ {
			if !b.Get(col, row) {
				holes++
			}
		}
	}
	return holes
}
