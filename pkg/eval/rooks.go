package eval

import "github.com/corvidchess/corvid/pkg/board"

// rookCoordination rewards rooks on open files, the 7th/2nd rank, and doubled rooks sharing a
// file. It is scaled down above phase 0.7 so it vanishes entirely in the true opening, where
// rooks are still undeveloped behind their own pawns.
func rookCoordination(pos *board.Position, phase float64) board.Score {
	scale := 1.0
	if phase > 0.7 {
		scale = 1 - (phase-0.7)/0.3
	}
	delta := rookCoordinationFor(pos, board.White) - rookCoordinationFor(pos, board.Black)
	return board.Score(float64(delta) * scale)
}

func rookCoordinationFor(pos *board.Position, color board.Color) board.Score {
	seventh := board.Rank7
	if color == board.Black {
		seventh = board.Rank2
	}

	var score board.Score
	var files []board.File
	for bb := pos.Piece(color, board.Rook); bb != board.EmptyBitboard; {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)

		if pos.Piece(color, board.Pawn)&board.BitFile(sq.File()) == board.EmptyBitboard {
			score += 20
		}
		if sq.Rank() == seventh {
			score += 30
		}
		files = append(files, sq.File())
	}
	if len(files) == 2 && files[0] == files[1] {
		score += 15
	}
	return score
}
