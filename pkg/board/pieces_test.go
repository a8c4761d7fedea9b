package board_test

import (
	"testing"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestPawnPseudoLegalMoves(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/1q6/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	moves := b.LegalMoves(board.White)
	assert.Contains(t, moveStrings(moves), "e4e5")
}

func TestKnightPseudoLegalMoves(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/4N3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	want := []string{"e4d6", "e4f6", "e4c5", "e4g5", "e4c3", "e4g3", "e4d2", "e4f2"}
	got := moveStrings(b.LegalMoves(board.White))
	for _, w := range want {
		assert.Contains(t, got, w)
	}
}

func TestPromotionExpandsToFourMoves(t *testing.T) {
	b, err := fen.Decode("7k/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var promos []board.Move
	for _, m := range b.LegalMoves(board.White) {
		if m.Type.IsPromotion() {
			promos = append(promos, m)
		}
	}
	require.Len(t, promos, 4)

	kinds := map[board.Kind]bool{}
	for _, m := range promos {
		kinds[m.Promotion] = true
	}
	assert.True(t, kinds[board.Queen])
	assert.True(t, kinds[board.Rook])
	assert.True(t, kinds[board.Bishop])
	assert.True(t, kinds[board.Knight])
}

func TestSlidingPiecesStopAtFirstBlocker(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/P7/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)

	got := moveStrings(b.LegalMoves(board.White))
	assert.Contains(t, got, "a1a2")
	assert.Contains(t, got, "a1a3")
	assert.NotContains(t, got, "a1a4", "rook should not see past its own pawn on a4")
	assert.NotContains(t, got, "a1a5", "rook should not see past its own pawn on a4")
}
