// Package eval contains static position evaluation: material, piece-square tables, king
// safety, rook coordination, castling incentives and king endgame activity.
package eval

import "github.com/corvidchess/corvid/pkg/board"

// Evaluator is a static position evaluator returning a score in centipawns from the
// perspective of the side to move.
type Evaluator interface {
	Evaluate(b *board.Board) board.Score
}

// Static is the deterministic, process-wide evaluator: Material + PST + King Safety + Rook
// Coordination + Castling Incentives + King Endgame Activity. It is a pure function of the
// position; no randomness, no caching leakage between calls.
type Static struct{}

func (Static) Evaluate(b *board.Board) board.Score {
	return Evaluate(b)
}

// Evaluate computes the static score of the board in centipawns, from the perspective of the
// side to move. All terms are computed from White's perspective and the total is negated if
// Black is to move.
func Evaluate(b *board.Board) board.Score {
	pos := b.Position()
	phase := Phase(pos)

	total := material(pos) +
		pstInterpolated(pos, phase) +
		kingSafety(pos, phase) +
		rookCoordination(pos, phase) +
		castlingIncentives(pos, phase) +
		kingEndgameActivity(pos, phase)

	if b.Turn() == board.Black {
		return -total
	}
	return total
}

func material(pos *board.Position) board.Score {
	var total board.Score
	for _, p := range []board.Piece{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen} {
		delta := pos.Piece(board.White, p).PopCount() - pos.Piece(board.Black, p).PopCount()
		total += board.Score(delta) * NominalValue(p)
	}
	return total
}

// NominalValue is the absolute nominal value in centipawns of a piece, used both for material
// scoring and as the attacker/victim currency in move ordering and SEE. The King's value is an
// arbitrarily large sentinel: it is never summed into material (see material, above) but must
// still sort last among attackers.
func NominalValue(p board.Piece) board.Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain of a move, ignoring any subsequent recapture.
// Used as the MVV-LVA component of move ordering.
func NominalValueGain(m board.Move) board.Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
