package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/move"
	"github.com/MochBot/fusion/tiles"
)

func TestPlacementCountsEmptyBoard(t *testing.T) {
	b := board.New()
	// T has four distinct shapes, I and O collapse symmetric
	// orientations onto the same cells.
	assert.Len(t, GenerateMoves(b, tiles.PieceT), 34)
	assert.Len(t, GenerateMoves(b, tiles.PieceI), 17)
	assert.Len(t, GenerateMoves(b, tiles.PieceO), 9)
}

func TestEnumerationOrderIsStable(t *testing.T) {
	is := is.New(t)
	b := board.New()
	moves := GenerateMoves(b, tiles.PieceT)
	is.True(len(moves) > 0)

	// North before East, low columns first.
	first := moves[0]
	is.Equal(first.Orientation(), tiles.North)
	is.Equal(first.Column(), 1)
	is.Equal(first.Row(), 0)

	again := GenerateMoves(b, tiles.PieceT)
	is.Equal(len(again), len(moves))
	for i := range moves {
		is.True(moves[i].Equals(again[i]))
	}
}

func TestDeduplicatesSymmetricOrientations(t *testing.T) {
	b := board.New()
	moves := GenerateMoves(b, tiles.PieceI)
	// Upright I has seven horizontal spots and ten vertical ones.
	// South and West duplicate the North and East cell sets and the
	// first-enumerated orientation wins.
	for _, m := range moves {
		require.True(t, m.Orientation() == tiles.North || m.Orientation() == tiles.East,
			"unexpected orientation in %s", m)
	}
}

func TestRestsOnStack(t *testing.T) {
	b := board.MakeBoard(board.FlatNineDesc)
	moves := GenerateMoves(b, tiles.PieceI)

	var wellDrop *move.Move
	for i, m := range moves {
		if m.Orientation() == tiles.East && m.Column() == 9 {
			wellDrop = &moves[i]
		}
		// Nothing may rest below the stack surface outside the well.
		if m.Column() != 9 && m.Orientation() == tiles.North {
			assert.GreaterOrEqual(t, m.Row(), 4)
		}
	}
	require.NotNil(t, wellDrop, "vertical I in the open column")
	assert.Equal(t, 1, wellDrop.Row())
}

func TestToppedOutBoardHasNoMoves(t *testing.T) {
	is := is.New(t)
	b := board.New()
	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			b.Set(col, row, true)
		}
	}
	is.Equal(len(GenerateMoves(b, tiles.PieceT)), 0)
}

func TestGenerateMovesWithHold(t *testing.T) {
	b := board.New()
	hold := tiles.PieceI

	moves := GenerateMovesWithHold(b, tiles.PieceT, &hold, nil)
	assert.Len(t, moves, 34+17)
	holdFlagged := 0
	for _, m := range moves {
		if m.HoldUsed() {
			holdFlagged++
			assert.Equal(t, tiles.PieceI, m.Piece())
		}
	}
	assert.Equal(t, 17, holdFlagged)
}

func TestHoldFromQueue(t *testing.T) {
	is := is.New(t)
	b := board.New()

	// Empty hold swaps in the next queue piece.
	moves := GenerateMovesWithHold(b, tiles.PieceT, nil, []tiles.Piece{tiles.PieceO})
	is.Equal(len(moves), 34+9)

	// Swapping for the same piece type adds nothing.
	moves = GenerateMovesWithHold(b, tiles.PieceT, nil, []tiles.Piece{tiles.PieceT})
	is.Equal(len(moves), 34)

	// No hold and no queue means no swap at all.
	moves = GenerateMovesWithHold(b, tiles.PieceT, nil, nil)
	is.Equal(len(moves), 34)
}
