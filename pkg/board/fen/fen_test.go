package fen_test

import (
	"testing"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/corvidbit/negamax/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/8/8/8/8/k7/2q5/K7 w - - 0 1",
		"4k2r/8/8/8/8/8/8/R3K3 b Qk - 12 34",
	}
	for _, in := range tests {
		b, err := fen.Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, fen.Encode(b))
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"not a fen string",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, in := range tests {
		_, err := fen.Decode(in)
		assert.Error(t, err, in)
	}
}

func TestDecodePlacesPiecesOnExpectedSquares(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.Piece{Kind: board.Rook, Color: board.White}, b.At(board.A1))
	assert.Equal(t, board.Piece{Kind: board.King, Color: board.White}, b.At(board.E1))
	assert.Equal(t, board.Piece{Kind: board.Pawn, Color: board.Black}, b.At(board.A7))
	assert.Equal(t, board.Piece{Kind: board.King, Color: board.Black}, b.At(board.E8))
	assert.True(t, b.At(board.E4).IsEmpty())
}
