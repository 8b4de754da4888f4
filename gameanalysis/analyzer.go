package gameanalysis

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/MochBot/fusion/board"
	"github.com/MochBot/fusion/config"
	"github.com/MochBot/fusion/move"
	"github.com/MochBot/fusion/search"
	"github.com/MochBot/fusion/tiles"
)

// Placement is one decision point from a replay: the board before
// the placement, the active piece, and what the player did with it.
type Placement struct {
	Board  *board.Board
	Piece  tiles.Piece
	Played move.Move
	Frame  int
}

// Summary aggregates a whole game's analysis.
type Summary struct {
	Placements     int
	Misdrops       int
	WorstScoreDiff float64
	// MeanScoreLoss is the average evaluation given up per placement,
	// counting on-threshold placements as zero loss.
	MeanScoreLoss float64
}

// GameAnalysisResult holds every misdrop found plus the summary.
type GameAnalysisResult struct {
	Misdrops []*Misdrop
	Summary  Summary
}

// Analyzer runs misdrop detection over a full game's placements.
type Analyzer struct {
	detector *Detector
}

// NewAnalyzer builds an analyzer from analysis settings (nil means
// defaults).
func NewAnalyzer(cfg *config.Config) *Analyzer {
	return &Analyzer{detector: NewDetector(cfg)}
}

// AnalyzeGame analyzes every placement in order. Topped-out decision
// points (no legal placement) are skipped with a log entry; other
// errors abort the run.
func (a *Analyzer) AnalyzeGame(ctx context.Context, placements []Placement) (*GameAnalysisResult, error) {
	result := &GameAnalysisResult{}
	var gaps []float64

	for i, p := range placements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		misdrop, gap, err := a.detector.analyze(p.Board, p.Piece, p.Played, p.Frame)
		if err != nil {
			if errors.Is(err, search.ErrNoLegalPlacement) {
				log.Debug().Int("placement", i).Int("frame", p.Frame).
					Msg("skipping-topped-out-placement")
				continue
			}
			return nil, err
		}
		gaps = append(gaps, gap)
		if misdrop != nil {
			result.Misdrops = append(result.Misdrops, misdrop)
		}
	}

	result.Summary = Summary{
		Placements: len(gaps),
		Misdrops:   len(result.Misdrops),
	}
	if len(gaps) > 0 {
		result.Summary.MeanScoreLoss = lo.Sum(gaps) / float64(len(gaps))
	}
	if len(result.Misdrops) > 0 {
		worst := lo.MaxBy(result.Misdrops, func(a, b *Misdrop) bool {
			return a.ScoreDiff > b.ScoreDiff
		})
		result.Summary.WorstScoreDiff = worst.ScoreDiff
	}

	log.Debug().Int("placements", result.Summary.Placements).
		Int("misdrops", result.Summary.Misdrops).
		Msg("game-analysis-complete")
	return result, nil
}
