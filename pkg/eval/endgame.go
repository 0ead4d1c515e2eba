package eval

import "github.com/corvidchess/corvid/pkg/board"

// kingEndgameActivity rewards a centralized, advanced king once material has thinned past
// phase 0.4, scaled up as the phase continues to drop towards a pure endgame.
func kingEndgameActivity(pos *board.Position, phase float64) board.Score {
	if phase >= 0.4 {
		return 0
	}
	delta := kingEndgameActivityFor(pos, board.White) - kingEndgameActivityFor(pos, board.Black)
	return board.Score(float64(delta) * (1 - phase))
}

func kingEndgameActivityFor(pos *board.Position, color board.Color) board.Score {
	king := pos.KingSquare(color)

	centerBonus := (4 - centerDistance(king)) * 10

	rank := int(king.Rank())
	if color == board.Black {
		rank = int(king.Rank().Mirror())
	}
	advancement := rank * 5

	return board.Score(centerBonus + advancement)
}
