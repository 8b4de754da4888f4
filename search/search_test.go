package search

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/game"
	"github.com/MochBot/fusion/tiles"
)

func TestFindBestMoveTakesTheQuad(t *testing.T) {
	b := board.MakeBoard(board.FlatNineDesc)
	s := NewSearcher(1, DefaultBeamWidth)

	best, score, err := s.FindBestMove(b, tiles.PieceI, nil)
	require.NoError(t, err)
	assert.Equal(t, tiles.PieceI, best.Piece())
	assert.Equal(t, tiles.East, best.Orientation())
	assert.Equal(t, 9, best.Column())
	// Four lines clear into an empty board.
	assert.InDelta(t, 4.0, score, 1e-9)
}

func TestLookaheadDefersTheQuad(t *testing.T) {
	b := board.MakeBoard(board.FlatNineDesc)
	s := NewSearcher(2, DefaultBeamWidth)

	// With a second I coming, stacking flat and keeping the well open
	// beats clearing now: the follow-up quad leaves a cleaner board
	// than a lone I on an empty field.
	best, score, err := s.FindBestMove(b, tiles.PieceI, []tiles.Piece{tiles.PieceI})
	require.NoError(t, err)
	assert.Equal(t, tiles.North, best.Orientation())
	assert.Equal(t, 1, best.Column())
	assert.InDelta(t, 3.4, score, 1e-9)
}

func TestNarrowBeamStillFindsTheClear(t *testing.T) {
	b := board.MakeBoard(board.FlatNineDesc)
	s := NewSearcher(2, 1)

	best, _, err := s.FindBestMove(b, tiles.PieceI, []tiles.Piece{tiles.PieceT})
	require.NoError(t, err)
	assert.Equal(t, 9, best.Column())
}

func TestFindBestMoveToppedOut(t *testing.T) {
	b := board.New()
	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			b.Set(col, row, true)
		}
	}
	s := NewSearcher(1, DefaultBeamWidth)
	_, _, err := s.FindBestMove(b, tiles.PieceT, nil)
	require.ErrorIs(t, err, ErrNoLegalPlacement)
}

func TestFindTopMoves(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(board.FlatNineDesc)
	s := NewSearcher(1, DefaultBeamWidth)

	top, err := s.FindTopMoves(b, tiles.PieceI, 5)
	is.NoErr(err)
	is.Equal(len(top), 5)
	// Best first, scores non-increasing.
	is.Equal(top[0].Move.Column(), 9)
	for i := 1; i < len(top); i++ {
		is.True(top[i-1].Score >= top[i].Score)
	}

	// Asking for more than exists returns what exists.
	all, err := s.FindTopMoves(b, tiles.PieceO, 1000)
	is.NoErr(err)
	is.True(len(all) > 0)
	is.True(len(all) < 1000)

	none, err := s.FindTopMoves(b, tiles.PieceI, 0)
	is.NoErr(err)
	is.Equal(len(none), 0)
}

func TestSearchPrefersHoldSwap(t *testing.T) {
	hold := tiles.PieceI
	cur := tiles.PieceO
	state := game.NewState()
	state.Board = board.MakeBoard(board.FlatNineDesc)
	state.CurrentPiece = &cur
	state.Hold = &hold

	s := NewSearcher(1, DefaultBeamWidth)
	best, score, err := s.Search(state)
	require.NoError(t, err)
	assert.True(t, best.HoldUsed())
	assert.Equal(t, tiles.PieceI, best.Piece())
	assert.Equal(t, 9, best.Column())
	assert.InDelta(t, 4.0, score, 1e-9)
}

func TestSearchHoldAlreadyUsed(t *testing.T) {
	hold := tiles.PieceI
	cur := tiles.PieceO
	state := game.NewState()
	state.Board = board.MakeBoard(board.FlatNineDesc)
	state.CurrentPiece = &cur
	state.Hold = &hold
	state.HoldUsedThisTurn = true

	s := NewSearcher(1, DefaultBeamWidth)
	best, _, err := s.Search(state)
	require.NoError(t, err)
	assert.False(t, best.HoldUsed())
	assert.Equal(t, tiles.PieceO, best.Piece())
}

func TestSearchHoldFromQueue(t *testing.T) {
	cur := tiles.PieceO
	state := game.NewState()
	state.Board = board.MakeBoard(board.FlatNineDesc)
	state.CurrentPiece = &cur
	state.Queue = []tiles.Piece{tiles.PieceI, tiles.PieceO}

	// Holding with an empty slot swaps in the queue head.
	s := NewSearcher(1, DefaultBeamWidth)
	best, score, err := s.Search(state)
	require.NoError(t, err)
	assert.True(t, best.HoldUsed())
	assert.Equal(t, tiles.PieceI, best.Piece())
	assert.Equal(t, 9, best.Column())
	assert.InDelta(t, 4.0, score, 1e-9)
}

func TestSearchNoCurrentPiece(t *testing.T) {
	s := NewSearcher(1, DefaultBeamWidth)
	_, _, err := s.Search(game.NewState())
	require.ErrorIs(t, err, ErrNoCurrentPiece)
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard(board.FlatNineDesc)
	before := b.Copy()

	s := NewSearcher(1, DefaultBeamWidth)
	best, _, err := s.FindBestMove(b, tiles.PieceI, nil)
	is.NoErr(err)

	next, lines, err := ApplyMove(b, best)
	is.NoErr(err)
	is.Equal(lines, 4)
	is.True(next.IsEmpty())
	is.True(b.Equals(before))
}

// Scoring fans out across workers but results must not depend on the
// worker count or scheduling.
func TestSearchIsDeterministic(t *testing.T) {
	rng := frand.New()
	serial := NewSearcher(2, 50)
	serial.SetWorkers(1)
	parallel := NewSearcher(2, 50)
	parallel.SetWorkers(8)

	for trial := 0; trial < 25; trial++ {
		b := board.New()
		for row := 0; row < 8; row++ {
			open := rng.Intn(board.Width)
			for col := 0; col < board.Width; col++ {
				if col != open && rng.Intn(2) == 0 {
					b.Set(col, row, true)
				}
			}
		}
		queue := []tiles.Piece{tiles.AllPieces[rng.Intn(len(tiles.AllPieces))]}
		piece := tiles.AllPieces[rng.Intn(len(tiles.AllPieces))]

		m1, s1, err1 := serial.FindBestMove(b, piece, queue)
		m2, s2, err2 := parallel.FindBestMove(b, piece, queue)
		require.NoError(t, err1, "trial %d", trial)
		require.NoError(t, err2, "trial %d", trial)
		require.True(t, m1.Equals(m2), "trial %d: %s vs %s", trial, m1, m2)
		require.Equal(t, s1, s2, "trial %d", trial)
	}
}
