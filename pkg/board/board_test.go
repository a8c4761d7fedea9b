package board_test

import (
	"testing"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"rnbq1bnr/pppp1ppp/4pk2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQ - 0 3",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 2",
	}

	for _, p := range positions {
		t.Run(p, func(t *testing.T) {
			b, err := fen.Decode(p)
			require.NoError(t, err)

			before := fen.Encode(b)
			for _, m := range b.LegalMoves(b.Turn()) {
				u := b.Make(m)
				b.Unmake(m, u)
				assert.Equal(t, before, fen.Encode(b), "move %v did not round-trip", m)
			}
		})
	}
}

func TestInCheckAgreesWithIsAttacked(t *testing.T) {
	positions := []string{
		fen.Initial,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", // fool's mate position, white in check
		"rnbqk1nr/pppp1Qpp/5p2/4p3/1b2P3/8/PPPP1PPP/RNB1KBNR b KQkq - 0 3",
	}
	for _, p := range positions {
		b, err := fen.Decode(p)
		require.NoError(t, err)

		for _, c := range [2]board.Color{board.White, board.Black} {
			assert.Equal(t, b.IsAttacked(b.King(c), c.Opponent()), b.InCheck(c))
		}
	}
}

func TestLegalMovesNeverLeaveOwnKingInCheck(t *testing.T) {
	b, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	for _, m := range b.LegalMoves(board.White) {
		u := b.Make(m)
		assert.False(t, b.InCheck(board.White), "move %v left white in check", m)
		b.Unmake(m, u)
	}
}

func TestScholarsMate(t *testing.T) {
	b := board.NewBoard()
	moves := []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}

	for _, s := range moves {
		m, err := board.ParseMove(s)
		require.NoError(t, err)

		_, _, ok := b.Apply(m, b.Turn())
		require.Truef(t, ok, "move %v not legal", s)
	}

	over, reason := b.GameOver(board.Black)
	assert.True(t, over)
	assert.Equal(t, board.Checkmate, reason)
}

func TestFoolsMate(t *testing.T) {
	b := board.NewBoard()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}

	for _, s := range moves {
		m, err := board.ParseMove(s)
		require.NoError(t, err)

		_, _, ok := b.Apply(m, b.Turn())
		require.Truef(t, ok, "move %v not legal", s)
	}

	over, reason := b.GameOver(board.White)
	assert.True(t, over)
	assert.Equal(t, board.Checkmate, reason)
}

func TestStalemate(t *testing.T) {
	// White king a1, black king a3, black queen c2: white to move has no legal move and
	// is not in check.
	b, err := fen.Decode("8/8/8/8/8/k7/2q5/K7 w - - 0 1")
	require.NoError(t, err)

	over, reason := b.GameOver(board.White)
	assert.True(t, over)
	assert.Equal(t, board.Stalemate, reason)
}

func TestEnPassant(t *testing.T) {
	b := board.NewBoard()
	for _, s := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		_, _, ok := b.Apply(m, b.Turn())
		require.True(t, ok)
	}

	assert.Equal(t, board.D6, b.EnPassant())

	m, err := board.ParseMove("e5d6")
	require.NoError(t, err)

	var found bool
	for _, cand := range b.LegalMoves(board.White) {
		if cand.Equals(m) {
			found = true
			assert.Equal(t, board.EnPassant, cand.Type)
		}
	}
	assert.True(t, found, "e5d6 en passant capture not in legal moves")

	_, _, ok := b.Apply(m, board.White)
	require.True(t, ok)
	assert.Equal(t, board.NoSquare, b.EnPassant())
	assert.True(t, b.At(board.D5).IsEmpty(), "captured pawn should be removed")
}

func TestCastlingRequiresSafeTransit(t *testing.T) {
	// Kingside castling available, all squares empty and unattacked.
	clear, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.Contains(t, clear.LegalMoves(board.White), board.Move{Type: board.KingSideCastle, From: board.E1, To: board.G1, Piece: board.King})

	// Same shape, but black rook on f8 attacks f1, a transit square.
	attacked, err := fen.Decode("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	for _, m := range attacked.LegalMoves(board.White) {
		assert.False(t, m.Type.IsCastle(), "castling should be illegal through an attacked square")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	b := board.NewBoard()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}

	for _, s := range shuffle {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		_, _, ok := b.Apply(m, b.Turn())
		require.True(t, ok)
	}

	over, reason := b.GameOver(b.Turn())
	assert.True(t, over)
	assert.Equal(t, board.DrawByRepetition, reason)
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "8/8/8/8/8/k7/8/K7 w - - 0 1", true},
		{"king and bishop vs king", "8/8/8/8/8/k7/8/KB6 w - - 0 1", true},
		{"king and knight vs king", "8/8/8/8/8/k7/8/KN6 w - - 0 1", true},
		{"two knights vs king", "8/8/8/8/8/k7/8/KNN5 w - - 0 1", true},
		{"knight vs knight", "8/8/8/8/8/kn6/8/KN6 w - - 0 1", true},
		{"same-colored bishops", "8/8/8/4b3/8/k7/8/K1B5 w - - 0 1", true},
		{"opposite-colored bishops sufficient", "8/8/8/8/8/kb6/8/K1B5 w - - 0 1", false},
		{"king and rook vs king sufficient", "8/8/8/8/8/k7/8/KR6 w - - 0 1", false},
		{"king and pawn vs king sufficient", "8/8/8/8/8/k7/8/KP6 w - - 0 1", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := fen.Decode(tc.fen)
			require.NoError(t, err)

			over, reason := b.GameOver(b.Turn())
			if tc.want {
				assert.True(t, over)
				assert.Equal(t, board.DrawByInsufficientMaterial, reason)
			} else {
				assert.False(t, over && reason == board.DrawByInsufficientMaterial)
			}
		})
	}
}

func TestStalemateWithInsufficientMaterialIsReportedAsDraw(t *testing.T) {
	// White Ka1, black Kb3 + light-squared Bc2, white to move: white is stalemated, but the
	// position is also a dead king-and-bishop-vs-king draw. Insufficient material takes
	// precedence over the stalemate classification.
	b, err := fen.Decode("8/8/8/8/8/1k6/2b5/K7 w - - 0 1")
	require.NoError(t, err)

	require.Empty(t, b.LegalMoves(board.White))
	require.False(t, b.InCheck(board.White))

	over, reason := b.GameOver(board.White)
	assert.True(t, over)
	assert.Equal(t, board.DrawByInsufficientMaterial, reason)
}

func TestPositionKeyEquality(t *testing.T) {
	a, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, a.PositionKey(), b.PositionKey())
	assert.Equal(t, a.Hash(), b.Hash())

	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	_, _, ok := b.Apply(m, b.Turn())
	require.True(t, ok)
	assert.NotEqual(t, a.PositionKey(), b.PositionKey())
}
