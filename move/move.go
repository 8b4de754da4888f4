// Package move describes a single piece placement: the piece, its
// final orientation and pivot position, the spin classification of
// the placement, and whether hold was used to obtain the piece.
package move

import (
	"fmt"

	"github.com/MochBot/fusion/tiles"
)

// SpinType classifies the spin quality of a placement.
type SpinType uint8

const (
	SpinNone SpinType = iota
	SpinMini
	SpinFull
)

func (s SpinType) String() string {
	switch s {
	case SpinNone:
		return "none"
	case SpinMini:
		return "mini"
	case SpinFull:
		return "full"
	}
	return "unknown"
}

// Move is an immutable placement record. Construct with New and the
// With* helpers; all accessors are read-only.
type Move struct {
	piece       tiles.Piece
	orientation tiles.Orientation
	col         int8
	row         int8
	spin        SpinType
	holdUsed    bool
}

// New creates a placement of p at the given pivot position.
func New(p tiles.Piece, o tiles.Orientation, col, row int) Move {
	return Move{piece: p, orientation: o, col: int8(col), row: int8(row)}
}

// WithSpin returns a copy of the move with the spin classification set.
func (m Move) WithSpin(s SpinType) Move {
	m.spin = s
	return m
}

// WithHold returns a copy of the move marked as played from hold.
func (m Move) WithHold() Move {
	m.holdUsed = true
	return m
}

func (m Move) Piece() tiles.Piece             { return m.piece }
func (m Move) Orientation() tiles.Orientation { return m.orientation }
func (m Move) Column() int                    { return int(m.col) }
func (m Move) Row() int                       { return int(m.row) }
func (m Move) Spin() SpinType                 { return m.spin }
func (m Move) HoldUsed() bool                 { return m.holdUsed }

// Equals compares every field of the two moves.
func (m Move) Equals(other Move) bool {
	return m == other
}

// ShortDescription returns a compact human-readable form, for example
// "T-W c1 r1 (full)".
func (m Move) ShortDescription() string {
	desc := fmt.Sprintf("%v-%v c%d r%d", m.piece, m.orientation, m.col, m.row)
	if m.spin != SpinNone {
		desc += fmt.Sprintf(" (%v)", m.spin)
	}
	if m.holdUsed {
		desc += " [hold]"
	}
	return desc
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	return fmt.Sprintf("<move piece: %v orient: %v col: %d row: %d spin: %v hold: %v>",
		m.piece, m.orientation, m.col, m.row, m.spin, m.holdUsed)
}
