package board

import "fmt"

// File represents a chess board file, FileA=0, ..FileH=7. 3 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	if !f.IsValid() {
		return "?"
	}
	return string(rune('a' + f))
}

// Rank represents a chess board rank, Rank1=0 (White's home rank), ..Rank8=7 (Black's). 3 bits.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) IsValid() bool {
	return r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('1' + r))
}

// Square represents a square on the board as (rank, file), Square = rank*8 + file, so
// A1=0 .. H1=7, A2=8 .. H8=63. Rank 0 is White's back rank, rank 7 is Black's; pawn
// direction, promotion ranks, castling ranks and en passant all key off this single
// convention (see color.go).
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64

	// NoSquare is the sentinel for "no en passant target" / "no castling rook move".
	// It is never a legal en passant target (those only ever sit on rank 3 or rank 6),
	// so it is safe to reuse Square's own zero value's *rank* space by picking a value
	// outside 0..63 instead of overloading A1.
	NoSquare Square = 255
)

func NewSquare(f File, r Rank) Square {
	return Square(r)*8 + Square(f)
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", string(f))
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", string(r))
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	return ParseSquare(runes[0], runes[1])
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

func (s Square) File() File {
	return File(s % 8)
}

// Offset returns the square df files and dr ranks away, and whether it stayed on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := int(s.File()) + df
	r := int(s.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0, false
	}
	return NewSquare(File(f), Rank(r)), true
}

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Named squares, for tests and fixed-position setup.
const (
	A1 = Square(0*8 + iota)
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 = Square(1*8 + iota)
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 = Square(2*8 + iota)
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 = Square(3*8 + iota)
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 = Square(4*8 + iota)
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 = Square(5*8 + iota)
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 = Square(6*8 + iota)
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 = Square(7*8 + iota)
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
