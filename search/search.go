// Package search finds the best placement for a piece with a
// bounded-depth beam search over legal placements, ranked by the
// equity calculator. Results are deterministic: candidates are scored
// in enumeration order and ties keep the earlier-enumerated move.
package search

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/equity"
	"github.com/MochBot/fusion/game"
	"github.com/MochBot/fusion/move"
	"github.com/MochBot/fusion/movegen"
	"github.com/MochBot/fusion/tiles"
)

const (
	// DefaultBeamWidth bounds how many candidates survive each ply.
	DefaultBeamWidth = 400
	// MaxDepth caps lookahead so per-call latency stays interactive.
	MaxDepth = 3
)

// ErrNoLegalPlacement is returned when the piece has no legal resting
// position, i.e. the board is topped out for it.
var ErrNoLegalPlacement = errors.New("no legal placement for piece")

// ErrNoCurrentPiece is returned by Search when the state snapshot has
// no active piece.
var ErrNoCurrentPiece = errors.New("state has no current piece")

// Scored pairs a candidate move with its evaluation.
type Scored struct {
	Move  move.Move
	Score float64
}

// Searcher runs beam searches. It carries no per-call state and is
// safe for concurrent use.
type Searcher struct {
	depth     int
	beamWidth int
	calc      equity.Calculator
	workers   int
}

// NewSearcher creates a searcher with the given lookahead depth
// (clamped to 1..MaxDepth) and beam width (at least 1).
func NewSearcher(depth, beamWidth int) *Searcher {
	if depth < 1 {
		depth = 1
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	if beamWidth < 1 {
		beamWidth = 1
	}
	return &Searcher{
		depth:     depth,
		beamWidth: beamWidth,
		calc:      equity.NewStaticCalculator(),
		workers:   runtime.NumCPU(),
	}
}

// SetCalculator swaps the equity calculator.
func (s *Searcher) SetCalculator(c equity.Calculator) {
	s.calc = c
}

// SetWorkers bounds the goroutines used for root candidate scoring.
func (s *Searcher) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// ApplyMove places the move on a copy of the board and clears any
// full lines, returning the new board and the clear count.
func ApplyMove(b *board.Board, m move.Move) (*board.Board, int, error) {
	next := b.Copy()
	if err := next.Place(m.Piece(), m.Orientation(), m.Column(), m.Row()); err != nil {
		return nil, 0, fmt.Errorf("apply move %v: %w", m.ShortDescription(), err)
	}
	return next, next.ClearLines(), nil
}

type node struct {
	board *board.Board
	score float64
	first move.Move
	queue []tiles.Piece
}

// FindBestMove returns the best placement for piece on b, looking
// ahead through queue up to the searcher's depth. It fails with
// ErrNoLegalPlacement when the piece cannot be placed at all.
func (s *Searcher) FindBestMove(b *board.Board, piece tiles.Piece, queue []tiles.Piece) (move.Move, float64, error) {
	moves := movegen.GenerateMoves(b, piece)
	nodes, err := s.scoreRoot(b, moves, queue)
	if err != nil {
		return move.Move{}, 0, err
	}
	best, err := s.deepen(nodes)
	if err != nil {
		return move.Move{}, 0, err
	}
	return best.first, best.score, nil
}

// FindTopMoves returns the n best immediate placements (depth 1),
// best first.
func (s *Searcher) FindTopMoves(b *board.Board, piece tiles.Piece, n int) ([]Scored, error) {
	if n < 1 {
		return nil, nil
	}
	moves := movegen.GenerateMoves(b, piece)
	nodes, err := s.scoreRoot(b, moves, nil)
	if err != nil {
		return nil, err
	}
	if n > len(nodes) {
		n = len(nodes)
	}
	scored := make([]Scored, n)
	for i := 0; i < n; i++ {
		scored[i] = Scored{Move: nodes[i].first, Score: nodes[i].score}
	}
	return scored, nil
}

// Search is the hold-aware entry point: the root ply considers both
// the current piece and the piece a hold swap would bring in. Deeper
// plies consume the queue without further holds.
func (s *Searcher) Search(state *game.State) (move.Move, float64, error) {
	if state.CurrentPiece == nil {
		return move.Move{}, 0, ErrNoCurrentPiece
	}
	current := *state.CurrentPiece

	var moves []move.Move
	if state.HoldUsedThisTurn {
		moves = movegen.GenerateMoves(state.Board, current)
	} else {
		moves = movegen.GenerateMovesWithHold(state.Board, current, state.Hold, state.Queue)
	}

	nodes, err := s.scoreRootFn(state.Board, moves, func(m move.Move) []tiles.Piece {
		// A hold swap with an empty hold slot consumes the queue head.
		if m.HoldUsed() && state.Hold == nil && len(state.Queue) > 0 {
			return state.Queue[1:]
		}
		return state.Queue
	})
	if err != nil {
		return move.Move{}, 0, err
	}
	best, err := s.deepen(nodes)
	if err != nil {
		return move.Move{}, 0, err
	}
	return best.first, best.score, nil
}

func (s *Searcher) scoreRoot(b *board.Board, moves []move.Move, queue []tiles.Piece) ([]*node, error) {
	return s.scoreRootFn(b, moves, func(move.Move) []tiles.Piece { return queue })
}

// scoreRootFn scores every root candidate in parallel. Workers write
// into an indexed slice, so the resulting order is exactly the
// enumeration order regardless of scheduling.
func (s *Searcher) scoreRootFn(b *board.Board, moves []move.Move, queueFor func(move.Move) []tiles.Piece) ([]*node, error) {
	if len(moves) == 0 {
		return nil, ErrNoLegalPlacement
	}
	log.Debug().Int("candidates", len(moves)).Msg("scoring-root-candidates")

	nodes := make([]*node, len(moves))
	g := errgroup.Group{}
	g.SetLimit(s.workers)
	for i := range moves {
		i := i
		g.Go(func() error {
			next, lines, err := ApplyMove(b, moves[i])
			if err != nil {
				return err
			}
			nodes[i] = &node{
				board: next,
				score: s.calc.EvaluateWithClear(next, lines),
				first: moves[i],
				queue: queueFor(moves[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortNodes(nodes)
	if len(nodes) > s.beamWidth {
		nodes = nodes[:s.beamWidth]
	}
	return nodes, nil
}

// deepen expands the beam one queue piece at a time and returns the
// best surviving node. Nodes whose boards block the next piece, or
// whose queues have run dry, survive on their own score.
func (s *Searcher) deepen(nodes []*node) (*node, error) {
	for ply := 1; ply < s.depth; ply++ {
		next := make([]*node, 0, len(nodes))
		expanded := false
		for _, n := range nodes {
			if len(n.queue) == 0 {
				next = append(next, n)
				continue
			}
			children := s.expand(n)
			if len(children) == 0 {
				next = append(next, n)
				continue
			}
			expanded = true
			next = append(next, children...)
		}
		if !expanded {
			break
		}
		sortNodes(next)
		if len(next) > s.beamWidth {
			next = next[:s.beamWidth]
		}
		nodes = next
	}
	if len(nodes) == 0 {
		return nil, ErrNoLegalPlacement
	}
	return nodes[0], nil
}

func (s *Searcher) expand(n *node) []*node {
	piece := n.queue[0]
	remaining := n.queue[1:]
	moves := movegen.GenerateMoves(n.board, piece)
	children := make([]*node, 0, len(moves))
	for _, m := range moves {
		next, lines, err := ApplyMove(n.board, m)
		if err != nil {
			// Generated moves never collide; surface it if one does.
			log.Err(err).Msg("expand-apply-move")
			continue
		}
		children = append(children, &node{
			board: next,
			score: s.calc.EvaluateWithClear(next, lines),
			first: n.first,
			queue: remaining,
		})
	}
	return children
}

// sortNodes orders by score descending. The stable sort keeps the
// deterministic enumeration order for equal scores.
func sortNodes(nodes []*node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].score > nodes[j].score
	})
}
