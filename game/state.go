// Package game holds the caller-owned snapshot of a decision point.
// The core never mutates a State; search and analysis read it and
// derive fresh boards.
package game

import (
	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/tiles"
)

// State is a composite snapshot: the board, the active piece, the
// upcoming queue, the optional held piece, and the per-session
// counters the orchestrator tracks.
type State struct {
	Board            *board.Board
	CurrentPiece     *tiles.Piece
	Hold             *tiles.Piece
	HoldUsedThisTurn bool
	Queue            []tiles.Piece
	B2BLevel         int
	Combo            int
	PiecesPlaced     int
}

// NewState returns an empty state with a fresh board.
func NewState() *State {
	return &State{Board: board.New()}
}

// StateWithQueue builds a state whose current piece is the head of
// the supplied queue.
func StateWithQueue(queue []tiles.Piece) *State {
	s := NewState()
	if len(queue) == 0 {
		return s
	}
	current := queue[0]
	s.CurrentPiece = &current
	s.Queue = append([]tiles.Piece(nil), queue[1:]...)
	return s
}
