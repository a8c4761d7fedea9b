// Package eval contains static position evaluation: stateless functions from a board
// snapshot to a board.Score, with no move generation or search logic of their own.
package eval

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
)

// Evaluator is a static position evaluator. It must be a pure function of b: no component
// may carry search state across calls, so a single Evaluator is safe to share across an
// iterative-deepening run.
type Evaluator interface {
	// Evaluate returns the position score, positive favoring Black (the reference side for
	// evaluation; see board.Color). The components in this package score in centipawns;
	// Composite divides its weighted sum by 100.
	Evaluate(ctx context.Context, b *board.Board) board.Score
}

// Weighted is a component with its contribution weight to the composite evaluator.
type Weighted struct {
	Component Evaluator
	Weight    float64
}

// Composite combines several weighted components into one evaluator, per the weighting
// scheme: Material 1.0, CenterControl 0.5, PawnStructure 0.3, PieceSquareTables 0.1 and
// CheckBonus 0.01, summed and divided by 100, so the result is one hundredth of the weighted
// centipawn sum (whole pawns), truncated toward zero.
type Composite struct {
	Components []Weighted
}

// NewDefault returns the standard five-component evaluator.
func NewDefault() *Composite {
	return &Composite{Components: []Weighted{
		{Component: Material{}, Weight: 1.0},
		{Component: CenterControl{}, Weight: 0.5},
		{Component: PawnStructure{}, Weight: 0.3},
		{Component: PieceSquareTables{}, Weight: 0.1},
		{Component: CheckBonus{}, Weight: 0.01},
	}}
}

func (c *Composite) Evaluate(ctx context.Context, b *board.Board) board.Score {
	var total float64
	for _, w := range c.Components {
		total += w.Weight * float64(w.Component.Evaluate(ctx, b))
	}
	return board.Score(total / 100)
}
