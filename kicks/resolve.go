package kicks

import (
	"errors"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/move"
	"github.com/MochBot/fusion/tiles"
)

// ErrNoValidKick is returned when neither the naive rotated position
// nor any kick candidate fits. The caller's piece position and
// orientation are unchanged.
var ErrNoValidKick = errors.New("no kick candidate fits")

// Result describes a successful rotation.
type Result struct {
	Orientation tiles.Orientation
	Col, Row    int
	Spin        move.SpinType
	// KickIndex is 0 for the unkicked position, i+1 for the i-th
	// table candidate.
	KickIndex int
}

// Resolve attempts to rotate p from one orientation to another with
// the pivot at (col, row). The naive rotated position is tried first,
// then each kick candidate in table order; the first that fits wins.
func Resolve(b *board.Board, p tiles.Piece, from, to tiles.Orientation, col, row int) (Result, error) {
	if b.Fits(p, to, col, row) {
		return Result{
			Orientation: to,
			Col:         col,
			Row:         row,
			Spin:        ClassifySpin(b, p, to, col, row, false),
		}, nil
	}
	for i, off := range Offsets(p, from, to) {
		nc := col + int(off.Dx)
		nr := row + int(off.Dy)
		if b.Fits(p, to, nc, nr) {
			return Result{
				Orientation: to,
				Col:         nc,
				Row:         nr,
				Spin:        ClassifySpin(b, p, to, nc, nr, true),
				KickIndex:   i + 1,
			}, nil
		}
	}
	return Result{}, ErrNoValidKick
}

// ResolveCW rotates one quarter turn clockwise.
func ResolveCW(b *board.Board, p tiles.Piece, from tiles.Orientation, col, row int) (Result, error) {
	return Resolve(b, p, from, from.CW(), col, row)
}

// ResolveCCW rotates one quarter turn counter-clockwise.
func ResolveCCW(b *board.Board, p tiles.Piece, from tiles.Orientation, col, row int) (Result, error) {
	return Resolve(b, p, from, from.CCW(), col, row)
}

// Resolve180 rotates a half turn.
func Resolve180(b *board.Board, p tiles.Piece, from tiles.Orientation, col, row int) (Result, error) {
	return Resolve(b, p, from, from.Flip(), col, row)
}

// ClassifySpin determines the spin quality of a piece resting at
// (col, row). Classes with the corner-spin capability use the
// 3-corner rule around the pivot; every class additionally qualifies
// for a mini via immobility (the all-mini-plus rule).
func ClassifySpin(b *board.Board, p tiles.Piece, o tiles.Orientation, col, row int, usedKick bool) move.SpinType {
	if CanCornerSpin(p) {
		if spin := cornerSpin(b, o, col, row, usedKick); spin != move.SpinNone {
			return spin
		}
	}
	if immobile(b, p, o, col, row) {
		return move.SpinMini
	}
	return move.SpinNone
}

// cornerSpin applies the 3-corner rule: with three or more of the
// pivot's diagonal neighbors blocked, two blocked front corners make
// a full spin; otherwise a kicked placement is a mini.
func cornerSpin(b *board.Board, o tiles.Orientation, col, row int, usedKick bool) move.SpinType {
	corners := [4][2]int{
		{col - 1, row + 1},
		{col + 1, row + 1},
		{col - 1, row - 1},
		{col + 1, row - 1},
	}
	filled := 0
	frontFilled := 0
	for i, c := range corners {
		if !cornerBlocked(b, c[0], c[1]) {
			continue
		}
		filled++
		if isFrontCorner(o, i) {
			frontFilled++
		}
	}
	if filled < 3 {
		return move.SpinNone
	}
	if frontFilled >= 2 {
		return move.SpinFull
	}
	if usedKick {
		return move.SpinMini
	}
	return move.SpinNone
}

// Out of bounds counts as blocked.
func cornerBlocked(b *board.Board, col, row int) bool {
	if col < 0 || col >= board.Width || row < 0 || row >= board.Height {
		return true
	}
	return b.Get(col, row)
}

// isFrontCorner reports whether corner index i (NW, NE, SW, SE around
// the pivot) is on the side the piece points toward.
func isFrontCorner(o tiles.Orientation, i int) bool {
	switch o {
	case tiles.North:
		return i < 2
	case tiles.East:
		return i == 1 || i == 3
	case tiles.South:
		return i >= 2
	default: // West
		return i == 0 || i == 2
	}
}

// immobile reports whether the piece can move neither left, right,
// nor down.
func immobile(b *board.Board, p tiles.Piece, o tiles.Orientation, col, row int) bool {
	return !b.Fits(p, o, col-1, row) &&
		!b.Fits(p, o, col+1, row) &&
		!b.Fits(p, o, col, row-1)
}
