package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// alphaBetaTimeCheckInterval is how often, in full-search nodes, cancellation is polled.
const alphaBetaTimeCheckInterval = 2048

// maxCheckExtensions bounds the number of single-ply check extensions along any one line
// from the root, so a long forcing sequence cannot blow up the effective depth unboundedly.
const maxCheckExtensions = 16

// nullMoveReduction is the depth reduction R applied to the verification search after a
// null move; a smaller reduction is used once the remaining depth is already shallow.
const (
	nullMoveReduction     = 3
	nullMoveReductionLow  = 2
	nullMoveLowDepthBound = 6
	nullMoveMinDepth      = 3
)

// AlphaBeta implements principal-variation search with null-move pruning, killer moves,
// the history heuristic and transposition table probing/storing.
type AlphaBeta struct {
	Quiescence Quiescence
}

func (p AlphaBeta) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, board.Score, []board.Move, error) {
	run := &runAlphaBeta{
		quiescence: p.Quiescence,
		tt:         orNoTable(sctx.TT),
		killers:    orKillers(sctx.Killers),
		history:    orHistory(sctx.History),
		b:          b,
	}

	score, pv := run.search(ctx, depth, 0, sctx.Alpha, sctx.Beta, maxCheckExtensions)
	if contextx.IsCancelled(ctx) {
		return 0, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

func orNoTable(tt TranspositionTable) TranspositionTable {
	if tt == nil {
		return NoTranspositionTable{}
	}
	return tt
}

func orKillers(k *Killers) *Killers {
	if k == nil {
		return NewKillers()
	}
	return k
}

func orHistory(h *History) *History {
	if h == nil {
		return NewHistory()
	}
	return h
}

type runAlphaBeta struct {
	quiescence Quiescence
	tt         TranspositionTable
	killers    *Killers
	history    *History
	b          *board.Board
	nodes      uint64

	extensionsUsed int
}

// search returns the score and principal variation from the perspective of the side to
// move at this node.
func (m *runAlphaBeta) search(ctx context.Context, depth, ply int, alpha, beta board.Score, extBudget int) (board.Score, []board.Move) {
	m.nodes++
	if m.nodes%alphaBetaTimeCheckInterval == 0 && contextx.IsCancelled(ctx) {
		return 0, nil
	}

	if m.b.Result().Outcome == board.Draw {
		return 0, nil
	}

	// Mate-distance pruning: a mate found deeper than the current ply cannot beat a mate
	// already guaranteed closer, so tighten the window before doing any more work.
	mateAlpha := -board.MateScore + board.Score(ply)
	mateBeta := board.MateScore - board.Score(ply)
	if alpha < mateAlpha {
		alpha = mateAlpha
	}
	if beta > mateBeta {
		beta = mateBeta
	}
	if alpha >= beta {
		return alpha, nil
	}

	pos := m.b.Position()
	turn := m.b.Turn()
	inCheck := pos.IsChecked(turn)

	var ttBest board.Move
	if bound, d, score, best, ok := m.tt.Read(m.b.Hash(), ply); ok {
		ttBest = best
		if d >= depth {
			switch bound {
			case ExactBound:
				return score, nil
			case LowerBound:
				if score >= beta {
					return score, nil
				}
			case UpperBound:
				if score <= alpha {
					return score, nil
				}
			}
		}
	}

	if depth <= 0 {
		nodes, score := m.quiescence.Search(ctx, &Context{Alpha: alpha, Beta: beta}, m.b, alpha, beta)
		m.nodes += nodes
		return score, nil
	}

	isPVNode := beta-alpha > 1

	// Null-move pruning.
	if !inCheck && !isPVNode && depth >= nullMoveMinDepth && hasNonPawnMaterial(pos, turn) {
		if m.quiescence.Eval.Evaluate(m.b) >= beta && m.b.PushNullMove() {
			r := nullMoveReduction
			if depth < nullMoveLowDepthBound {
				r = nullMoveReductionLow
			}
			score, _ := m.search(ctx, depth-1-r, ply+1, -beta, -beta+1, extBudget)
			m.b.PopNullMove()
			if -score >= beta {
				return beta, nil
			}
		}
	}

	moves := pos.PseudoLegalMoves(turn)
	ordered := Order(pos, turn, moves, ply, ttBest, m.killers, m.history)

	hasLegalMove := false
	bestScore := alpha
	var pv []board.Move
	var bestMove board.Move

	first := true
	for {
		move, ok := ordered.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue
		}
		hasLegalMove = true

		ext := 0
		if m.extensionsUsed < extBudget && m.b.Position().IsChecked(m.b.Turn()) {
			ext = 1
			m.extensionsUsed++
		}

		var score board.Score
		var rem []board.Move
		if first {
			score, rem = m.search(ctx, depth-1+ext, ply+1, -beta, -bestScore, extBudget)
			score = -score
		} else {
			score, rem = m.search(ctx, depth-1+ext, ply+1, -bestScore-1, -bestScore, extBudget)
			score = -score
			if score > bestScore && score < beta {
				score, rem = m.search(ctx, depth-1+ext, ply+1, -beta, -bestScore, extBudget)
				score = -score
			}
		}

		m.b.PopMove()
		if ext > 0 {
			m.extensionsUsed--
		}
		first = false

		if score >= beta {
			m.tt.Write(m.b.Hash(), LowerBound, ply, depth, score, move)
			if move.IsQuiet() {
				m.killers.Store(ply, move)
				m.history.Update(move, depth)
			}
			return beta, nil
		}
		if score > bestScore {
			bestScore = score
			bestMove = move
			pv = append([]board.Move{move}, rem...)
		}
	}

	if !hasLegalMove {
		if inCheck {
			return -board.MateScore + board.Score(ply), nil
		}
		return 0, nil
	}

	bound := UpperBound
	if bestScore > alpha {
		bound = ExactBound
	}
	m.tt.Write(m.b.Hash(), bound, ply, depth, bestScore, bestMove)
	return bestScore, pv
}

func hasNonPawnMaterial(pos *board.Position, turn board.Color) bool {
	for _, p := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
		if pos.Piece(turn, p) != 0 {
			return true
		}
	}
	return false
}
