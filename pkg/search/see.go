package search

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// SEE computes the static exchange evaluation of a capture: the net material gain, in
// centipawns, of playing the move and then letting both sides recapture on the
// destination square in ascending value order until it is no longer profitable. A
// non-capturing move always evaluates to zero.
func SEE(pos *board.Position, m board.Move) board.Score {
	if !m.IsCapture() {
		return 0
	}

	target := m.To
	if sq, ok := m.EnPassantCapture(); ok {
		target = sq
	}

	side, piece, ok := pos.Square(m.From)
	if !ok {
		return 0
	}

	stack := attackerStack(pos, pos.Rotated(), side.Opponent(), target)
	own := attackerStack(pos, pos.Rotated(), side, target)
	for i := range own {
		if own[i].piece == piece { // the mover itself opens the exchange
			own = append(own[:i:i], own[i+1:]...)
			break
		}
	}
	mover := attacker{piece: piece, value: eval.NominalValue(piece)}

	gain := make([]board.Score, 0, len(stack)+1)
	victim := eval.NominalValue(m.Capture)
	if m.Type == board.CapturePromotion {
		victim += eval.NominalValue(m.Promotion) - eval.NominalValue(board.Pawn)
	}

	gain = append(gain, victim)
	sides := [2][]attacker{stack, own} // the defenders recapture first, then sides alternate
	for i := 0; len(sides[i%2]) > 0; i++ {
		next := sides[i%2][0]
		if next.piece == board.King && len(sides[(i+1)%2]) > 0 {
			// King cannot recapture into further attacks; the exchange stops here.
			break
		}
		sides[i%2] = sides[i%2][1:]

		gain = append(gain, mover.value-gain[i])
		mover = next
	}

	// Fold the gain list backward: each side only continues the exchange if doing so
	// improves on stopping, per the standard SEE minimax-of-tail formulation.
	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

type attacker struct {
	piece board.Piece
	value board.Score
}

// attackerStack returns the attackers of target belonging to side, ordered from least to
// most valuable, with x-ray attackers revealed behind sliding pieces spliced in by value as
// they become relevant. A defender pinned against its own king is excluded unless target
// itself lies on the pin line, since capturing off that line would expose the king.
func attackerStack(pos *board.Position, r board.RotatedBitboard, side board.Color, target board.Square) []attacker {
	pins := eval.FindPins(pos, side, board.King)

	var list []attacker

	for _, piece := range board.KingQueenRookKnightBishop {
		bb := board.Attackboard(r, target, piece) & pos.Piece(side, piece)
		for bb != 0 {
			from := bb.LastPopSquare()
			bb ^= board.BitMask(from)
			if isPinned(pins, from, target) {
				continue
			}
			list = append(list, attacker{piece: piece, value: eval.NominalValue(piece)})
			list = append(list, xrayBehind(pos, r, side, from, target)...)
		}
	}

	bb := board.PawnCaptureboard(side.Opponent(), board.BitMask(target)) & pos.Piece(side, board.Pawn)
	for bb != 0 {
		from := bb.LastPopSquare()
		bb ^= board.BitMask(from)
		if isPinned(pins, from, target) {
			continue
		}
		list = append(list, attacker{piece: board.Pawn, value: eval.NominalValue(board.Pawn)})
		list = append(list, xrayBehind(pos, r, side, from, target)...)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].value < list[j].value
	})
	return list
}

// isPinned reports whether the piece on from is pinned against its own king such that
// capturing on target would leave the king in check.
func isPinned(pins []eval.Pin, from, target board.Square) bool {
	for _, p := range pins {
		if p.Pinned == from {
			return !board.IsBetweenOnLine(p.Attacker, p.Target, target)
		}
	}
	return false
}

// xrayBehind finds a single sliding attacker uncovered by removing the piece on from,
// if it lies behind on the same line or diagonal towards target.
func xrayBehind(pos *board.Position, r board.RotatedBitboard, side board.Color, from, target board.Square) []attacker {
	next := r.Xor(from)

	var bb board.Bitboard
	if board.IsSameRankOrFile(from, target) {
		revealed := board.RookAttackboard(next, target) &^ board.RookAttackboard(r, target)
		bb = revealed & (pos.Piece(side, board.Queen) | pos.Piece(side, board.Rook))
	} else if board.IsSameDiagonal(from, target) {
		revealed := board.BishopAttackboard(next, target) &^ board.BishopAttackboard(r, target)
		bb = revealed & (pos.Piece(side, board.Queen) | pos.Piece(side, board.Bishop))
	}
	if bb == 0 {
		return nil
	}

	sq := bb.LastPopSquare()
	_, piece, _ := pos.Square(sq)
	return []attacker{{piece: piece, value: eval.NominalValue(piece)}}
}
