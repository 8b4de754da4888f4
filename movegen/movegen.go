// Package movegen enumerates the legal placements of a piece. The
// enumeration order is fixed and load-bearing: orientation ascending
// (N, E, S, W), then column ascending, with gravity-drop semantics to
// find the resting row. Search tie-breaks and misdrop comparisons
// depend on this order being reproducible.
package movegen

import (
	"github.com/kamstrup/intmap"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/kicks"
	"github.com/MochBot/fusion/move"
	"github.com/MochBot/fusion/tiles"
)

// dropStartRow is where gravity drops begin. Piece cell offsets span
// at most two rows from the pivot, so this keeps every starting cell
// in bounds.
const dropStartRow = board.Height - 3

// GenerateMoves returns every distinct resting placement of p,
// first-enumerated-first. The result is empty when the piece cannot
// spawn (topped-out board).
func GenerateMoves(b *board.Board, p tiles.Piece) []move.Move {
	if !b.Fits(p, tiles.North, tiles.SpawnCol, tiles.SpawnRow) {
		return nil
	}

	var moves []move.Move
	// Orientations of the same piece can rest on identical cell
	// sets (I north/south, S/Z symmetry). Keep the first enumerated.
	seen := intmap.New[uint64, bool](64)

	for o := tiles.North; o <= tiles.West; o++ {
		for col := -2; col < board.Width+2; col++ {
			row, ok := b.DropRow(p, o, col, dropStartRow)
			if !ok {
				continue
			}
			key := cellKey(p, o, col, row)
			if _, dup := seen.Get(key); dup {
				continue
			}
			seen.Put(key, true)
			spin := kicks.ClassifySpin(b, p, o, col, row, false)
			moves = append(moves, move.New(p, o, col, row).WithSpin(spin))
		}
	}
	return moves
}

// GenerateMovesWithHold returns placements for the current piece plus
// hold-flagged placements for the piece a hold swap would bring in:
// the held piece, or the next queue piece when hold is empty.
func GenerateMovesWithHold(b *board.Board, current tiles.Piece, hold *tiles.Piece, queue []tiles.Piece) []move.Move {
	moves := GenerateMoves(b, current)

	var swap *tiles.Piece
	if hold != nil {
		swap = hold
	} else if len(queue) > 0 {
		swap = &queue[0]
	}
	if swap == nil || *swap == current {
		return moves
	}
	for _, m := range GenerateMoves(b, *swap) {
		moves = append(moves, m.WithHold())
	}
	return moves
}

// cellKey packs the placement's four absolute cells, sorted, into one
// integer so cell-identical placements collide.
func cellKey(p tiles.Piece, o tiles.Orientation, col, row int) uint64 {
	var cells [4]uint64
	for i, m := range p.Minos(o) {
		cells[i] = uint64((row+int(m.Dy))*board.Width + col + int(m.Dx))
	}
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && cells[j] < cells[j-1]; j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
	return cells[0]<<27 | cells[1]<<18 | cells[2]<<9 | cells[3]
}
