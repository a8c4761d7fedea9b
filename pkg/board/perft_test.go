package board_test

import (
	"testing"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/stretchr/testify/assert"
)

// perft counts leaf nodes of the legal-move tree under a pure generate-make-unmake
// traversal, the standard move-generator correctness check.
func perft(b *board.Board, turn board.Color, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range b.LegalMoves(turn) {
		u := b.Make(m)
		nodes += perft(b, turn.Opponent(), depth-1)
		b.Unmake(m, u)
	}
	return nodes
}

func TestPerftFromInitialPosition(t *testing.T) {
	want := []int64{20, 400, 8902, 197281}

	b := board.NewBoard()
	for depth, expected := range want {
		assert.Equal(t, expected, perft(b, board.White, depth+1), "perft(%d)", depth+1)
	}
}
