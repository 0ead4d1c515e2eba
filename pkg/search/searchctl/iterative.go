package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// maxDepth caps iterative deepening so a forced mate or otherwise quiescent position
// cannot spin the driver forever.
const maxDepth = 64

// Iterative is a search harness for iterative deepening search. The history table is owned
// here, not per-call, because it persists across the depths of a single root search and
// only decays -- rather than resets -- between separate root invocations.
type Iterative struct {
	Root search.Search

	mu      sync.Mutex
	history *search.History
}

func (i *Iterative) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, noise eval.Random, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}

	i.mu.Lock()
	if i.history == nil {
		i.history = search.NewHistory()
	} else {
		i.history.Decay()
	}
	history := i.history
	i.mu.Unlock()

	root := i.Root
	if ab, ok := root.(search.AlphaBeta); ok {
		ab.Quiescence.Eval = eval.Noisy{Base: ab.Quiescence.Eval, Noise: noise}
		root = ab
	}
	go h.process(ctx, root, b, tt, history, opt, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, root search.Search, b *board.Board, tt search.TranspositionTable, history *search.History, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	killers := search.NewKillers()
	phase := eval.PhaseBucket(eval.Phase(b.Position()))

	sctx := &search.Context{Alpha: -board.Inf, Beta: board.Inf, TT: tt, Killers: killers, History: history}
	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl, b.Turn(), phase)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	searchStart := time.Now()
	depth := 1
	for !h.quit.IsClosed() {
		start := time.Now()

		nodes, score, moves, err := root.Search(wctx, sctx, b, depth)
		if err != nil {
			if err == search.ErrHalted {
				return // Halt was called.
			}
			logw.Errorf(ctx, "Search failed on %v at depth=%v: %v", b, depth, err)
			return
		}

		pv := search.PV{
			Depth: depth,
			Nodes: nodes,
			Score: score,
			Moves: moves,
			Time:  time.Since(start),
		}
		if tt != nil {
			pv.Hash = tt.Used()
		}

		logw.Debugf(ctx, "Searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return // halt: reached max depth
		}
		if depth >= maxDepth {
			return // halt: depth cap
		}
		if score.IsMate() {
			if md, ok := score.MateDistance(); ok && md <= depth {
				return // halt: forced mate found within full width search. Exact result.
			}
		}
		if useSoft && soft < time.Since(searchStart) {
			return // halt: exceeded soft time limit. Do not start new search.
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
