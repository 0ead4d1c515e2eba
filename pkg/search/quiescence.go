package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescenceTimeCheckInterval is how often, in quiescence nodes, cancellation is polled.
const quiescenceTimeCheckInterval = 1024

// deltaMargin is added to a captured piece's nominal value before comparing against alpha,
// to avoid pruning captures that could still plausibly close the gap via the rest of the
// position's static evaluation.
const deltaMargin board.Score = 200

// Quiescence implements a capture/promotion/check-evasion-only alpha-beta search used to
// settle tactical sequences at the leaves of the main search, avoiding the horizon effect.
type Quiescence struct {
	Eval eval.Evaluator
}

func (q Quiescence) Search(ctx context.Context, sctx *Context, b *board.Board, alpha, beta board.Score) (uint64, board.Score) {
	run := &runQuiescence{eval: q.Eval, b: b}
	score := run.search(ctx, alpha, beta)
	return run.nodes, score
}

type runQuiescence struct {
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

func (r *runQuiescence) search(ctx context.Context, alpha, beta board.Score) board.Score {
	r.nodes++
	if r.nodes%quiescenceTimeCheckInterval == 0 && contextx.IsCancelled(ctx) {
		return r.eval.Evaluate(r.b)
	}
	if r.b.Result().Outcome == board.Draw {
		return 0
	}

	pos := r.b.Position()
	turn := r.b.Turn()
	inCheck := pos.IsChecked(turn)

	var standPat board.Score
	if !inCheck {
		standPat = r.eval.Evaluate(r.b)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	candidates := tacticalMoves(pos, turn, inCheck)
	ordered := board.NewMoveList(candidates, func(m board.Move) board.MovePriority {
		return board.MovePriority(100*eval.NominalValueGain(m)) - board.MovePriority(eval.NominalValue(m.Piece))
	})

	hasLegalMove := false
	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}

		if !inCheck && m.IsCapture() {
			see := SEE(pos, m)
			if see < 0 {
				continue // skip: losing capture
			}
			if standPat+eval.NominalValueGain(m)+deltaMargin < alpha {
				continue // skip: delta-pruned, cannot plausibly raise alpha
			}
		}

		if !r.b.PushMove(m) {
			continue // not legal
		}
		hasLegalMove = true

		score := -r.search(ctx, -beta, -alpha)
		r.b.PopMove()

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return beta
		}
	}

	if inCheck && !hasLegalMove {
		return -board.MateScore
	}
	return alpha
}

// tacticalMoves restricts the pseudo-legal move list to captures, queen promotions, and --
// when the side to move is in check -- all evasions, since a checked side cannot stand pat.
func tacticalMoves(pos *board.Position, turn board.Color, inCheck bool) []board.Move {
	all := pos.PseudoLegalMoves(turn)
	if inCheck {
		return all
	}

	var out []board.Move
	for _, m := range all {
		if m.IsCapture() || (m.IsPromotion() && m.Promotion == board.Queen) {
			out = append(out, m)
		}
	}
	return out
}
