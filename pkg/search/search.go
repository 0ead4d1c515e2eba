// Package search contains search functionality and utilities: alpha-beta with quiescence,
// transposition table, static exchange evaluation and move ordering heuristics.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
)

// ErrHalted is returned by a Search that was cancelled before completion.
var ErrHalted = errors.New("search halted")

// PV represents the principal variation found for some iterative deepening depth.
type PV struct {
	Depth int
	Nodes uint64
	Score board.Score
	Moves []board.Move
	Time  time.Duration
	Hash  float64 // transposition table utilization, [0;1]
}

func (p PV) String() string {
	pv := board.FormatMoves(p.Moves, func(m board.Move) string {
		return m.String()
	})
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, pv)
}

// Context carries the alpha-beta window and shared search-wide state into a single
// Search invocation. Alpha and Beta are from the perspective of the side to move at the
// root of the Search call.
type Context struct {
	Alpha, Beta board.Score
	TT          TranspositionTable
	Killers     *Killers
	History     *History
}

// Search is a fixed-depth search over a position, returning the node count, score and
// principal variation found, from the perspective of the side to move.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (nodes uint64, score board.Score, pv []board.Move, err error)
}
