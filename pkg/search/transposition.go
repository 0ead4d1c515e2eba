package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/seekerror/logw"
)

// Bound represents the bound of a -- possibly inexact -- search score stored in the table.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// TranspositionTable represents a transposition table to speed up search performance.
// Caveat: evaluation heuristics that depend on the game history (notably, hasCastled or
// last move) may be unsuitable for position-keyed caching. If the recent history is short,
// then the table may only be used for depth greater than some limit. Must be thread-safe.
type TranspositionTable interface {
	// Read returns the bound, depth, score and best move for the given position hash, at the
	// given ply (for mate-distance score adjustment), if present.
	Read(hash board.ZobristHash, ply int) (Bound, int, board.Score, board.Move, bool)
	// Write stores the entry into the table, depending on table semantics and replacement policy.
	Write(hash board.ZobristHash, bound Bound, ply, depth int, score board.Score, move board.Move) bool

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

type TranspositionTableFactory func(ctx context.Context, size uint64) TranspositionTable

// metadata captures node metadata, notably precision and best move.
type metadata struct {
	bound      Bound
	from, to   board.Square
	promotion  board.Piece
	ply, depth uint16
}

// node represents a search result.
type node struct {
	hash  board.ZobristHash // full hash
	score board.Score
	md    metadata
}

// table is a lock-free transposition table, one entry per bucket, replaced via CAS.
type table struct {
	table []*node
	mask  uint64
	used  uint64
}

// defaultEntries is the table size used when the requested byte budget rounds to zero,
// matching the ~1M-entry default described for a modest hash allocation.
const defaultEntries = 1 << 20

// NewTranspositionTable allocates a table sized to the nearest power of two number of
// entries that fits within size bytes.
func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	n := uint64(defaultEntries)
	if size > 0 {
		const entrySize = 32
		if shift := 63 - bits.LeadingZeros64(size/entrySize); shift >= 0 {
			n = uint64(1) << uint(shift)
		}
	}
	if n == 0 {
		n = 1
	}

	logw.Infof(ctx, "Allocating %vMB TT with %v entries", size>>20, n)

	return &table{
		table: make([]*node, n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.table)) << 5
}

func (t *table) Used() float64 {
	return float64(t.used) / float64(len(t.table))
}

func (t *table) Read(hash board.ZobristHash, ply int) (Bound, int, board.Score, board.Move, bool) {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.table[key]))

	ptr := (*node)(atomic.LoadPointer(addr))
	if ptr == nil || ptr.hash != hash {
		return 0, 0, 0, board.Move{}, false
	}

	bestmove := board.Move{From: ptr.md.from, To: ptr.md.to, Promotion: ptr.md.promotion}
	score := adjustMateScoreFromTT(ptr.score, ply)
	return ptr.md.bound, int(ptr.md.depth), score, bestmove, true
}

func (t *table) Write(hash board.ZobristHash, bound Bound, ply, depth int, score board.Score, move board.Move) bool {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.table[key]))

	fresh := &node{
		hash:  hash,
		score: adjustMateScoreToTT(score, ply),
		md: metadata{
			bound:     bound,
			from:      move.From,
			to:        move.To,
			promotion: move.Promotion,
			ply:       uint16(ply),
			depth:     uint16(depth),
		},
	}

	ptr := (*node)(atomic.LoadPointer(addr))
	for {
		if val(ptr) > val(fresh) {
			return false // skip: higher value existing node
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(ptr), unsafe.Pointer(fresh)) {
			if ptr == nil {
				t.used++
			}
			return true
		}
		ptr = (*node)(atomic.LoadPointer(addr))
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// val defines node value towards replacement logic: deeper, more recent searches win.
func val(n *node) uint16 {
	if n == nil {
		return 0
	}
	return n.md.ply + (n.md.depth << 1)
}

// adjustMateScoreToTT converts a mate score measured from the current search root into one
// measured from the position itself, so it is valid regardless of the ply it is read back
// at. adjustMateScoreFromTT reverses the transformation on read.
func adjustMateScoreToTT(score board.Score, ply int) board.Score {
	if !score.IsMate() {
		return score
	}
	if score > 0 {
		return score + board.Score(ply)
	}
	return score - board.Score(ply)
}

func adjustMateScoreFromTT(score board.Score, ply int) board.Score {
	if !score.IsMate() {
		return score
	}
	if score > 0 {
		return score - board.Score(ply)
	}
	return score + board.Score(ply)
}

// WriteFilter is a predicate on the Write operation.
type WriteFilter func(hash board.ZobristHash, bound Bound, ply, depth int, score board.Score, move board.Move) bool

// WriteLimited is a TranspositionTable wrapper that ignores certain writes, such as
// less than a given minimum depth. Useful if evaluation uses recent move history.
type WriteLimited struct {
	Filter WriteFilter
	TT     TranspositionTable
}

func (w WriteLimited) Read(hash board.ZobristHash, ply int) (Bound, int, board.Score, board.Move, bool) {
	return w.TT.Read(hash, ply)
}

func (w WriteLimited) Write(hash board.ZobristHash, bound Bound, ply, depth int, score board.Score, move board.Move) bool {
	if w.Filter(hash, bound, ply, depth, score, move) {
		return false
	}
	return w.TT.Write(hash, bound, ply, depth, score, move)
}

func (w WriteLimited) Size() uint64 {
	return w.TT.Size()
}

func (w WriteLimited) Used() float64 {
	return w.TT.Used()
}

// NewMinDepthTranspositionTable creates depth-limited TranspositionTables.
func NewMinDepthTranspositionTable(min int) TranspositionTableFactory {
	return func(ctx context.Context, size uint64) TranspositionTable {
		return WriteLimited{
			Filter: func(hash board.ZobristHash, bound Bound, ply, depth int, score board.Score, move board.Move) bool {
				return depth < min
			},
			TT: NewTranspositionTable(ctx, size),
		}
	}
}

// NoTranspositionTable is a Nop implementation.
type NoTranspositionTable struct{}

func (n NoTranspositionTable) Read(hash board.ZobristHash, ply int) (Bound, int, board.Score, board.Move, bool) {
	return 0, 0, 0, board.Move{}, false
}

func (n NoTranspositionTable) Write(hash board.ZobristHash, bound Bound, ply, depth int, score board.Score, move board.Move) bool {
	return false
}

func (n NoTranspositionTable) Size() uint64 {
	return 0
}

func (n NoTranspositionTable) Used() float64 {
	return 0
}
