package board

import "fmt"

// Score is a signed position or move score in centi-pawn-like units, positive favoring Black
// (the maximizing side by convention; see color.go). The evaluator and search both read/write
// this single type so no conversion is needed crossing the eval/search boundary.
//
// Mate scores are encoded as +/-(MateScore - ply) so that shorter mates have larger magnitude;
// any score with |s| >= MateScore-1000 is treated as a forced mate (see isMateScore in
// pkg/search).
type Score int32

const (
	ZeroScore Score = 0

	// MateScore is the (unreachable in practice) magnitude assigned to an immediate mate at
	// ply 0. Actual mate scores are MateScore-ply, always strictly less in magnitude.
	MateScore Score = 1_000_000

	MinScore Score = -2_000_000
	MaxScore Score = 2_000_000
)

// Negate flips the score to the opponent's perspective, as negamax requires at every ply.
func (s Score) Negate() Score {
	return -s
}

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
