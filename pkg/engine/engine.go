// Package engine ties the board, evaluator and search packages together into the handful
// of operations a collaborator needs: construct an engine and ask it for a move.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/eval"
	"github.com/corvidbit/negamax/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options configures an Engine at construction time.
type Options struct {
	// Hash is the transposition table size in MB. Zero disables the table.
	Hash uint
	// Noise adds centipawn-scale randomness to leaf evaluations. Zero disables it.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{hash=%vMB, noise=%vcp}", o.Hash, o.Noise)
}

// Option is an engine construction option.
type Option func(*Engine)

// WithOptions sets the engine's hash size and evaluation noise.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithEvaluator overrides the default five-component evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) { e.eval = ev }
}

// WithZobristSeed sets the seed of the evaluation-noise source, which is only used when
// Options.Noise is non-zero. It does not change Zobrist keys: boards derive those from
// their own fixed seed.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// Engine encapsulates a single instance's worth of search state: a transposition table,
// static evaluator and max search depth. Its TT is scoped to this instance only, per the
// engine-scoped transposition table design note -- a new Engine always gets a new table.
type Engine struct {
	maxDepth int
	opts     Options
	eval     eval.Evaluator
	seed     int64

	tt search.TranspositionTable
	mu sync.Mutex
}

// New constructs an engine able to search up to maxDepth plies per move.
func New(ctx context.Context, maxDepth int, opts ...Option) *Engine {
	e := &Engine{
		maxDepth: maxDepth,
		eval:     eval.NewDefault(),
	}
	for _, fn := range opts {
		fn(e)
	}

	e.tt = search.NoTranspositionTable{}
	if e.opts.Hash > 0 {
		e.tt = search.NewTranspositionTable(ctx, uint64(e.opts.Hash)<<20)
	}
	if e.opts.Noise > 0 {
		e.eval = noisyEvaluator{base: e.eval, noise: eval.NewRandom(int(e.opts.Noise), e.seed)}
	}

	logw.Infof(ctx, "initialized negamax engine %v, options=%v", version, e.opts)
	return e
}

// noisyEvaluator adds Random jitter on top of a base evaluator, composing them the way
// eval.Composite composes its weighted components.
type noisyEvaluator struct {
	base  eval.Evaluator
	noise eval.Random
}

func (n noisyEvaluator) Evaluate(ctx context.Context, b *board.Board) board.Score {
	return n.base.Evaluate(ctx, b) + n.noise.Evaluate(ctx, b)
}

// BestMove searches board from side's perspective and returns the chosen move. It reports
// false if side has no legal move at all (checkmate or stalemate); the caller uses
// board.GameOver to tell which. timeLimit of zero means no wall-clock deadline -- search
// runs to maxDepth or until the tree is exhausted. If no search depth completes, the first
// legal move is returned.
func (e *Engine) BestMove(ctx context.Context, b *board.Board, side board.Color, timeLimit time.Duration) (board.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	legal := b.LegalMoves(side)
	if len(legal) == 0 {
		return board.Move{}, false
	}

	limits := search.Limits{MaxDepth: e.maxDepth}
	if timeLimit > 0 {
		deadline := time.Now().Add(timeLimit)
		limits.Deadline = &deadline
	}

	pv := search.Iterative(ctx, e.eval, e.tt, b, limits)
	if !pv.Found {
		return legal[0], true
	}

	logw.Debugf(ctx, "best move for %v: %v (score=%v depth=%v nodes=%v time=%v)",
		side, pv.Move, pv.Score, pv.Depth, pv.Nodes, pv.Time)
	return pv.Move, true
}

// Name returns the engine's display name and version, in the teacher's "name version"
// format used for UCI id strings.
func (e *Engine) Name() string {
	return fmt.Sprintf("negamax %v", version)
}
