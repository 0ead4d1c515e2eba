package eval

import "github.com/corvidchess/corvid/pkg/board"

const (
	// openingMaterial is the non-king material total of both sides in the starting position:
	// 2 * (8*100 (pawns) + 2*300 (knights) + 2*300 (bishops) + 2*500 (rooks) + 900 (queen)).
	openingMaterial = 7800
	// endMaterial is the material total below which the position is considered a pure endgame.
	endMaterial = 2500
)

// Phase returns a continuous game phase in [0,1], where 1 is the opening/middlegame and 0 is
// a bare endgame. It is a pure function of the position's non-king material.
func Phase(pos *board.Position) float64 {
	m := nonKingMaterial(pos)
	if m >= openingMaterial {
		return 1
	}
	if m <= endMaterial {
		return 0
	}
	return float64(m-endMaterial) / float64(openingMaterial-endMaterial)
}

func nonKingMaterial(pos *board.Position) int {
	total := 0
	for _, p := range []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen} {
		count := pos.Piece(board.White, p).PopCount() + pos.Piece(board.Black, p).PopCount()
		total += count * int(NominalValue(p))
	}
	return total
}

// Bucket is a discrete phase bucket, derived from Phase by threshold. It exists solely for
// time allocation; evaluation always uses the continuous Phase value.
type Bucket int

const (
	Opening Bucket = iota
	Middlegame
	Endgame
)

// PhaseBucket derives a discrete bucket from a continuous phase value, for time management.
func PhaseBucket(phase float64) Bucket {
	switch {
	case phase > 0.7:
		return Opening
	case phase > 0.3:
		return Middlegame
	default:
		return Endgame
	}
}

func (b Bucket) String() string {
	switch b {
	case Opening:
		return "opening"
	case Middlegame:
		return "middlegame"
	case Endgame:
		return "endgame"
	default:
		return "unknown"
	}
}
