package search

import (
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Priority bands used to separate move classes before any within-class tie-breaking.
// Higher always searches first.
const (
	priorityTT            board.MovePriority = 1000000
	priorityWinningCap    board.MovePriority = 100000
	priorityQueenPromo    board.MovePriority = 90000
	priorityCheck         board.MovePriority = 50000
	priorityKiller0       board.MovePriority = 40000
	priorityKiller1       board.MovePriority = 35000
	priorityUnderPromo    board.MovePriority = 20000
	priorityLosingCapture board.MovePriority = 10000

	centerBonus = 10
	minorBonus  = 5
)

// Order returns a move list ranked per the engine's move ordering policy: transposition
// table move, then winning captures (MVV-LVA), queen promotions, checks, killer moves,
// under-promotions, losing captures (by SEE), and finally quiet moves ranked by history,
// with small positional nudges for central squares and early minor piece development.
func Order(pos *board.Position, turn board.Color, moves []board.Move, ply int, ttBest board.Move, k *Killers, h *History) *board.MoveList {
	killer0, killer1 := board.Move{}, board.Move{}
	if k != nil {
		killer0, killer1 = k.Probe(ply)
	}

	priority := func(m board.Move) board.MovePriority {
		// ttBest's zero value has From == To, which no legal move can ever have, so this
		// naturally no-ops when the transposition table had no entry for this position.
		if ttBest.From != ttBest.To && m.Equals(ttBest) {
			return priorityTT
		}

		switch {
		case m.IsCapture():
			see := SEE(pos, m)
			if see >= 0 {
				return priorityWinningCap + board.MovePriority(10*eval.NominalValueGain(m)) - board.MovePriority(eval.NominalValue(m.Piece))
			}
			return priorityLosingCapture + board.MovePriority(see)
		case m.IsPromotion() && m.Promotion == board.Queen:
			return priorityQueenPromo + board.MovePriority(eval.NominalValue(m.Promotion))
		case m.IsPromotion():
			return priorityUnderPromo + board.MovePriority(eval.NominalValue(m.Promotion))
		case givesCheck(pos, turn, m):
			return priorityCheck
		case m.Equals(killer0):
			return priorityKiller0
		case m.Equals(killer1):
			return priorityKiller1
		default:
			p := board.MovePriority(0)
			if h != nil {
				p = board.MovePriority(h.Score(m))
			}
			return p + positionalBonus(m)
		}
	}

	return board.NewMoveList(moves, priority)
}

// givesCheck reports whether m leaves the opponent's king in check. It is only consulted for
// quiet moves, killers included (the TT move, captures and promotions are already classified
// above it), so a killer that gives check ranks in the check band.
func givesCheck(pos *board.Position, turn board.Color, m board.Move) bool {
	next, ok := pos.Move(m)
	if !ok {
		return false
	}
	return next.IsChecked(turn.Opponent())
}

func positionalBonus(m board.Move) board.MovePriority {
	var bonus board.MovePriority
	if isCenter(m.To) {
		bonus += centerBonus
	}
	if (m.Piece == board.Knight || m.Piece == board.Bishop) && isBackRank(m.From) {
		bonus += minorBonus
	}
	return bonus
}

func isCenter(sq board.Square) bool {
	f, r := sq.File(), sq.Rank()
	return (f == board.FileD || f == board.FileE) && (r == board.Rank4 || r == board.Rank5)
}

func isBackRank(sq board.Square) bool {
	r := sq.Rank()
	return r == board.Rank1 || r == board.Rank8
}
