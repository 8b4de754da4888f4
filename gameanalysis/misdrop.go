// Package gameanalysis flags player placements that deviate
// materially from the engine's best placement (misdrops), and
// aggregates per-game analysis summaries.
package gameanalysis

import (
	"errors"
	"fmt"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/config"
	"github.com/MochBot/fusion/equity"
	"github.com/MochBot/fusion/move"
	"github.com/MochBot/fusion/search"
	"github.com/MochBot/fusion/tiles"
)

// Severity buckets a misdrop by how much evaluation it gave up.
type Severity int

const (
	SeverityMinor Severity = iota
	SeverityModerate
	SeverityMajor
)

const (
	moderateThreshold = 50.0
	majorThreshold    = 150.0
)

func (s Severity) String() string {
	switch s {
	case SeverityMinor:
		return "Minor"
	case SeverityModerate:
		return "Moderate"
	case SeverityMajor:
		return "Major"
	}
	return "Unknown"
}

// ErrPieceMismatch is returned when the player move places a
// different piece than the decision point's active piece. That is a
// caller bug, not a misdrop.
var ErrPieceMismatch = errors.New("player move piece does not match decision piece")

// Misdrop reports a placement materially worse than the best
// available one.
type Misdrop struct {
	Frame       int
	PlayerMove  move.Move
	BestMove    move.Move
	PlayerScore float64
	BestScore   float64
	ScoreDiff   float64
	// CreatesHole is set when the player's placement buried at least
	// one new hole.
	CreatesHole bool
	Severity    Severity
}

// Detector compares player placements against search recommendations.
type Detector struct {
	searcher  *search.Searcher
	calc      equity.Calculator
	threshold float64
}

// NewDetector builds a detector from analysis settings (nil means
// defaults).
func NewDetector(cfg *config.Config) *Detector {
	if cfg == nil {
		cfg = config.Default()
	}
	searcher := search.NewSearcher(cfg.SearchDepth, cfg.BeamWidth)
	if cfg.Workers > 0 {
		searcher.SetWorkers(cfg.Workers)
	}
	return &Detector{
		searcher:  searcher,
		calc:      equity.NewStaticCalculator(),
		threshold: cfg.MisdropThreshold,
	}
}

// DetectMisdrop compares the player's placement at a decision point
// against the engine's recommendation. It returns nil when the
// placement is within the policy threshold of the best move.
func (d *Detector) DetectMisdrop(b *board.Board, piece tiles.Piece, playerMove move.Move, frame int) (*Misdrop, error) {
	misdrop, _, err := d.analyze(b, piece, playerMove, frame)
	return misdrop, err
}

// analyze additionally returns the raw score gap, clamped at zero,
// for summary statistics.
func (d *Detector) analyze(b *board.Board, piece tiles.Piece, playerMove move.Move, frame int) (*Misdrop, float64, error) {
	if playerMove.Piece() != piece {
		return nil, 0, fmt.Errorf("decision piece %v, move piece %v: %w",
			piece, playerMove.Piece(), ErrPieceMismatch)
	}

	bestMove, bestScore, err := d.searcher.FindBestMove(b, piece, nil)
	if err != nil {
		return nil, 0, err
	}

	playerBoard, playerLines, err := search.ApplyMove(b, playerMove)
	if err != nil {
		return nil, 0, err
	}
	playerScore := d.calc.EvaluateWithClear(playerBoard, playerLines)

	diff := bestScore - playerScore
	gap := diff
	if gap < 0 {
		gap = 0
	}
	if playerMove.Equals(bestMove) || diff <= d.threshold {
		return nil, gap, nil
	}

	return &Misdrop{
		Frame:       frame,
		PlayerMove:  playerMove,
		BestMove:    bestMove,
		PlayerScore: playerScore,
		BestScore:   bestScore,
		ScoreDiff:   diff,
		CreatesHole: equity.CountHoles(playerBoard) > equity.CountHoles(b),
		Severity:    classifySeverity(diff),
	}, gap, nil
}

func classifySeverity(diff float64) Severity {
	switch {
	case diff < moderateThreshold:
		return SeverityMinor
	case diff < majorThreshold:
		return SeverityModerate
	default:
		return SeverityMajor
	}
}
