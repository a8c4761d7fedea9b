// Package fen decodes and encodes Forsyth-Edwards Notation, the standard text format for a
// chess position, into/from a board.Board.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidbit/negamax/pkg/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a fresh Board. A FEN has 6 space-separated fields: piece
// placement, active color, castling availability, en passant target, halfmove clock and
// fullmove number.
func Decode(s string) (*board.Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d: %q", len(fields), s)
	}

	grid, err := decodePlacement(fields[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	turn, err := decodeColor(fields[1])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	castling, err := decodeCastling(fields[2])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	ep, err := decodeEnPassant(fields[3])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q: %w", fields[4], err)
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid fullmove number %q: %w", fields[5], err)
	}

	return board.NewBoardFromState(grid, turn, castling, ep, halfmove, fullmove), nil
}

func decodePlacement(field string) ([board.NumSquares]board.Piece, error) {
	var grid [board.NumSquares]board.Piece
	for i := range grid {
		grid[i] = board.NoPiece
	}

	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return grid, fmt.Errorf("invalid piece placement %q: want 8 ranks, got %d", field, len(rows))
	}

	for i, row := range rows {
		rank := board.Rank(7 - i)
		file := board.FileA
		for _, r := range row {
			if r >= '1' && r <= '8' {
				file += board.File(r - '0')
				continue
			}
			kind, ok := board.ParseKind(r)
			if !ok {
				return grid, fmt.Errorf("invalid piece placement %q: bad symbol %q", field, string(r))
			}
			if file > board.FileH {
				return grid, fmt.Errorf("invalid piece placement %q: rank %d overflows", field, i+1)
			}
			color := board.Black
			if r >= 'A' && r <= 'Z' {
				color = board.White
			}
			grid[board.NewSquare(file, rank)] = board.Piece{Kind: kind, Color: color}
			file++
		}
	}
	return grid, nil
}

func decodeColor(field string) (board.Color, error) {
	switch field {
	case "w":
		return board.White, nil
	case "b":
		return board.Black, nil
	default:
		return 0, fmt.Errorf("invalid active color %q", field)
	}
}

func decodeCastling(field string) (board.Castling, error) {
	if field == "-" {
		return board.NoCastling, nil
	}
	var c board.Castling
	for _, r := range field {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, fmt.Errorf("invalid castling availability %q", field)
		}
	}
	return c, nil
}

func decodeEnPassant(field string) (board.Square, error) {
	if field == "-" {
		return board.NoSquare, nil
	}
	return board.ParseSquareStr(field)
}

// Encode renders b as a FEN string.
func Encode(b *board.Board) string {
	var sb strings.Builder

	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		empty := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			p := b.At(board.NewSquare(f, board.Rank(r)))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(board.Rank1) {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Turn().String())
	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights().String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant().String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber()))
	return sb.String()
}
