package board

// IsAttacked reports whether sq is attacked by any piece of color by, scanning outward from
// sq by each attacker class in turn -- a pawn/knight/king offset check plus a sliding ray
// walk -- rather than generating every attacker's full move list. This keeps the common
// "is my king safe" check cheap relative to full pseudo-legal generation, per spec §4.2.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.attackedByPawn(sq, by) ||
		b.attackedByKnight(sq, by) ||
		b.attackedByKing(sq, by) ||
		b.attackedBySliding(sq, by, bishopDirs[:], Bishop, Queen) ||
		b.attackedBySliding(sq, by, rookDirs[:], Rook, Queen)
}

// attackedByPawn checks the two squares a pawn of color by would capture from onto sq. The
// direction is the reverse of the pawn's own forward direction.
func (b *Board) attackedByPawn(sq Square, by Color) bool {
	dir := -forward(by)
	for _, df := range [2]int{-1, 1} {
		from, ok := sq.Offset(df, dir)
		if !ok {
			continue
		}
		if p := b.grid[from]; p.Kind == Pawn && p.Color == by {
			return true
		}
	}
	return false
}

func (b *Board) attackedByKnight(sq Square, by Color) bool {
	for _, o := range knightOffsets {
		from, ok := sq.Offset(o.df, o.dr)
		if !ok {
			continue
		}
		if p := b.grid[from]; p.Kind == Knight && p.Color == by {
			return true
		}
	}
	return false
}

func (b *Board) attackedByKing(sq Square, by Color) bool {
	for _, o := range kingOffsets {
		from, ok := sq.Offset(o.df, o.dr)
		if !ok {
			continue
		}
		if p := b.grid[from]; p.Kind == King && p.Color == by {
			return true
		}
	}
	return false
}

func (b *Board) attackedBySliding(sq Square, by Color, dirs []offset, near, far Kind) bool {
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := cur.Offset(d.df, d.dr)
			if !ok {
				break
			}
			p := b.grid[to]
			if p.IsEmpty() {
				cur = to
				continue
			}
			if p.Color == by && (p.Kind == near || p.Kind == far) {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether color's king is currently attacked.
func (b *Board) InCheck(color Color) bool {
	return b.IsAttacked(b.king[color], color.Opponent())
}
