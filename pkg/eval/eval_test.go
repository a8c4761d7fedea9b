package eval_test

import (
	"context"
	"testing"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/board/fen"
	"github.com/corvidbit/negamax/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialIsZeroAtStart(t *testing.T) {
	b := board.NewBoard()
	assert.Equal(t, board.ZeroScore, eval.Material{}.Evaluate(context.Background(), b))
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)

	// White has an extra queen; Black-positive convention means this is negative.
	assert.Less(t, eval.Material{}.Evaluate(context.Background(), b), board.ZeroScore)

	b2, err := fen.Decode("4k3/8/8/8/8/8/8/q3K3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, eval.Material{}.Evaluate(context.Background(), b2), board.ZeroScore)
}

func TestCheckBonusFavorsCheckedSideNegatively(t *testing.T) {
	b, err := fen.Decode("4k3/4Q3/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	require.True(t, b.InCheck(board.Black))

	assert.Less(t, eval.CheckBonus{}.Evaluate(context.Background(), b), board.ZeroScore)
}

func TestCompositeCombinesComponents(t *testing.T) {
	b := board.NewBoard()
	c := eval.NewDefault()
	// Symmetric starting position should evaluate to exactly zero under every component.
	assert.Equal(t, board.ZeroScore, c.Evaluate(context.Background(), b))
}

func TestNominalValueGain(t *testing.T) {
	m := board.Move{Type: board.Capture, Capture: board.Queen}
	assert.Equal(t, board.Score(900), eval.NominalValueGain(m))

	promo := board.Move{Type: board.Promotion, Promotion: board.Queen}
	assert.Equal(t, board.Score(800), eval.NominalValueGain(promo))
}
