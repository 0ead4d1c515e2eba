package eval

import "github.com/corvidchess/corvid/pkg/board"

// pstOpening and pstEndgame are process-wide immutable piece-square tables, indexed from
// White's perspective (a pawn on its starting square is pstOpening[Pawn][A2]). Values for
// Black are looked up via a rank mirror in pstValue. The King has no table here: its
// placement is scored by the explicit king safety and king endgame activity terms instead.
var (
	pstOpening [board.NumPieces][board.NumSquares]board.Score
	pstEndgame [board.NumPieces][board.NumSquares]board.Score
)

func init() {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		centrality := 3 - centerDistance(sq) // 0..3, higher is more central
		rank := int(sq.Rank())

		pstOpening[board.Pawn][sq] = board.Score(rank * rank)
		pstEndgame[board.Pawn][sq] = board.Score(rank * 14)

		pstOpening[board.Knight][sq] = board.Score(centrality * 8)
		pstEndgame[board.Knight][sq] = board.Score(centrality * 4)

		pstOpening[board.Bishop][sq] = board.Score(centrality * 5)
		pstEndgame[board.Bishop][sq] = board.Score(centrality * 5)

		pstOpening[board.Queen][sq] = board.Score(centrality * 2)
		pstEndgame[board.Queen][sq] = board.Score(centrality * 4)

		// Rooks get no static square bonus; their value comes from the rook coordination term.
		pstOpening[board.Rook][sq] = 0
		pstEndgame[board.Rook][sq] = 0

		if sq.Rank() == board.Rank1 || sq.Rank() == board.Rank8 {
			pstOpening[board.Knight][sq] -= 10
			pstEndgame[board.Knight][sq] -= 10
		}
	}

	// The pawn table above is only meaningful beyond the starting rank; flatten rank1/rank8
	// so an (impossible) pawn there contributes nothing rather than a stale extreme.
	for _, f := range []board.File{board.FileA, board.FileB, board.FileC, board.FileD, board.FileE, board.FileF, board.FileG, board.FileH} {
		pstOpening[board.Pawn][board.NewSquare(f, board.Rank1)] = 0
		pstEndgame[board.Pawn][board.NewSquare(f, board.Rank1)] = 0
		pstOpening[board.Pawn][board.NewSquare(f, board.Rank8)] = 0
		pstEndgame[board.Pawn][board.NewSquare(f, board.Rank8)] = 0
	}
}

// pstValue returns the table value for a piece of the given color on the given square, adjusting
// the square for Black via a rank mirror since the tables are authored from White's perspective.
func pstValue(table *[board.NumPieces][board.NumSquares]board.Score, piece board.Piece, sq board.Square, color board.Color) board.Score {
	idx := sq
	if color == board.Black {
		idx = board.NewSquare(sq.File(), sq.Rank().Mirror())
	}
	return table[piece][idx]
}

// centerDistance returns the Chebyshev distance, in file/rank steps, from sq to the nearest
// of the four central squares (d4/d5/e4/e5), ranging 0 (center) to 3 (corner).
func centerDistance(sq board.Square) int {
	f := int(sq.File())
	fileDist := f - 4
	if f <= 3 {
		fileDist = 3 - f
	}
	r := int(sq.Rank())
	rankDist := r - 4
	if r <= 3 {
		rankDist = 3 - r
	}
	if fileDist > rankDist {
		return fileDist
	}
	return rankDist
}

func pstInterpolated(pos *board.Position, phase float64) board.Score {
	var total board.Score
	for _, p := range []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen} {
		total += pstSum(pos, p, board.White, phase) - pstSum(pos, p, board.Black, phase)
	}
	return total
}

func pstSum(pos *board.Position, piece board.Piece, color board.Color, phase float64) board.Score {
	var sum board.Score
	for bb := pos.Piece(color, piece); bb != board.EmptyBitboard; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)

		open := float64(pstValue(&pstOpening, piece, sq, color))
		end := float64(pstValue(&pstEndgame, piece, sq, color))
		sum += board.Score(open*phase + end*(1-phase))
	}
	return sum
}
