package eval

import "github.com/corvidchess/corvid/pkg/board"

// kingSafety scores shelter and attacker pressure around each king, active only while the
// phase is above 0.3 (1 is the opening, 0 a bare endgame) and scaled linearly by phase.
func kingSafety(pos *board.Position, phase float64) board.Score {
	if phase <= 0.3 {
		return 0
	}
	delta := kingSafetyFor(pos, board.White) - kingSafetyFor(pos, board.Black)
	return board.Score(float64(delta) * phase)
}

func kingSafetyFor(pos *board.Position, color board.Color) board.Score {
	king := pos.KingSquare(color)

	shield := pawnShieldCount(pos, king, color)
	openFiles := openFileCount(pos, king, color)
	attackers := kingZoneAttackers(pos, king, color.Opponent())

	return board.Score(shield*10 - openFiles*15 - attackers*8)
}

// pawnShieldCount counts own pawns in the two ranks directly in front of the king, within
// one file of the king's file.
func pawnShieldCount(pos *board.Position, king board.Square, color board.Color) int {
	dir := 1
	if color == board.Black {
		dir = -1
	}

	count := 0
	for _, df := range []int{-1, 0, 1} {
		f := int(king.File()) + df
		if f < 0 || f > 7 {
			continue
		}
		for i := 1; i <= 2; i++ {
			r := int(king.Rank()) + dir*i
			if r < 0 || r > 7 {
				continue
			}
			sq := board.NewSquare(board.File(f), board.Rank(r))
			if pos.Piece(color, board.Pawn).IsSet(sq) {
				count++
			}
		}
	}
	return count
}

// openFileCount counts files touching the king (its own file and the two adjacent ones) that
// carry no friendly pawn, whether fully open or merely semi-open against the king's own side.
func openFileCount(pos *board.Position, king board.Square, color board.Color) int {
	count := 0
	for _, df := range []int{-1, 0, 1} {
		f := int(king.File()) + df
		if f < 0 || f > 7 {
			continue
		}
		if pos.Piece(color, board.Pawn)&board.BitFile(board.File(f)) == board.EmptyBitboard {
			count++
		}
	}
	return count
}

// kingZoneAttackers counts distinct enemy pieces attacking any square within Chebyshev
// distance 2 of the king.
func kingZoneAttackers(pos *board.Position, king board.Square, enemy board.Color) int {
	var attackers board.Bitboard
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if king.Distance(sq) <= 2 {
			attackers |= pos.AttackersOf(sq, enemy)
		}
	}
	return attackers.PopCount()
}
