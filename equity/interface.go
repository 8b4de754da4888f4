// Package equity evaluates board desirability: a higher score means
// a healthier stack. The score is a pure function of the board
// contents, independent of the piece queue or hold.
package equity

import "github.com/MochBot/fusion/board"

// Calculator scores boards. Implementations must be pure and safe
// for concurrent use.
type Calculator interface {
	// Evaluate scores the board as it stands.
	Evaluate(b *board.Board) float64
	// EvaluateWithClear scores the board after a placement, crediting
	// the lines that placement cleared.
	EvaluateWithClear(b *board.Board, lines int) float64
}
