package eval

import (
	"context"

	"github.com/corvidbit/negamax/pkg/board"
)

// Material returns the nominal material balance, positive favoring Black, in centipawns.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) board.Score {
	var score board.Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := b.At(sq)
		if p.IsEmpty() {
			continue
		}
		v := NominalValue(p.Kind)
		if p.Color == board.Black {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// NominalValue is the absolute nominal centipawn value of a piece kind. The king has an
// arbitrary large value so it is never traded away by material-only reasoning.
func NominalValue(k board.Kind) board.Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight, board.Bishop:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 10000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of playing m, used by move ordering's
// MVV-LVA heuristic (see pkg/search).
func NominalValueGain(m board.Move) board.Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture, board.EnPassant:
		return NominalValue(m.Capture)
	default:
		return 0
	}
}
