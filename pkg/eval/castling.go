package eval

import "github.com/corvidchess/corvid/pkg/board"

// castlingIncentives rewards retained castling rights and an actually-castled king, active
// only while the phase is above 0.5 and scaled linearly by phase.
func castlingIncentives(pos *board.Position, phase float64) board.Score {
	if phase <= 0.5 {
		return 0
	}
	delta := castlingIncentivesFor(pos, board.White) - castlingIncentivesFor(pos, board.Black)
	return board.Score(float64(delta) * phase)
}

func castlingIncentivesFor(pos *board.Position, color board.Color) board.Score {
	kingSide, queenSide := board.WhiteKingSideCastle, board.WhiteQueenSideCastle
	castledKingSide, castledQueenSide := board.G1, board.C1
	if color == board.Black {
		kingSide, queenSide = board.BlackKingSideCastle, board.BlackQueenSideCastle
		castledKingSide, castledQueenSide = board.G8, board.C8
	}

	var score board.Score
	if pos.Castling().IsAllowed(kingSide) {
		score += 15
	}
	if pos.Castling().IsAllowed(queenSide) {
		score += 10
	}

	king := pos.KingSquare(color)
	if king == castledKingSide || king == castledQueenSide {
		score += 30
	}
	return score
}
