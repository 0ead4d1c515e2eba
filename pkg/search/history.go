package search

import "github.com/corvidchess/corvid/pkg/board"

// History tracks how often a quiet piece-to-square move has produced a beta cutoff,
// indexed by moving piece and destination square, for move ordering. Entries accumulate
// until Decay halves them.
type History struct {
	score [board.NumPieces][board.NumSquares]int
}

// NewHistory returns an empty history table.
func NewHistory() *History {
	return &History{}
}

// Update rewards a quiet move that caused a cutoff, weighted by search depth so cutoffs
// deeper in the tree count for more.
func (h *History) Update(m board.Move, depth int) {
	if !m.IsQuiet() {
		return
	}
	h.score[m.Piece][m.To] += depth * depth
}

// Score returns the accumulated history value for a quiet move.
func (h *History) Score(m board.Move) int {
	return h.score[m.Piece][m.To]
}

// Decay halves every entry between root searches, so stale cutoffs from earlier
// positions fade out instead of permanently dominating move ordering.
func (h *History) Decay() {
	for p := range h.score {
		for sq := range h.score[p] {
			h.score[p][sq] /= 2
		}
	}
}
