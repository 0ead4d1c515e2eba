package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable(t *testing.T) {
	ctx := context.Background()

	// (1) Test that we use MSB for size only.

	tt := search.NewTranspositionTable(ctx, 0x1000)
	assert.Equal(t, uint64(0x1000), tt.Size())
	tt2 := search.NewTranspositionTable(ctx, 0x1f00)
	assert.Equal(t, uint64(0x1000), tt2.Size())

	// (2) Test read/write.

	a := board.ZobristHash(rand.Uint64())

	_, _, _, _, ok := tt.Read(a, 0)
	assert.False(t, ok)

	m := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	s := board.Score(250)
	_ = tt.Write(a, search.ExactBound, 5, 2, s, m)

	bound, depth, score, move, ok := tt.Read(a, 5)
	assert.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 2, depth)
	assert.Equal(t, s, score)
	assert.Equal(t, m, move)

	_, _, _, _, ok = tt.Read(a^0xff0000, 0)
	assert.False(t, ok)

	// (3) Test replacement: a shallower, older entry loses to a deeper, newer one.

	norepl := tt.Write(a, search.ExactBound, 2, 1, board.Score(5), m)
	assert.False(t, norepl)

	repl := tt.Write(a, search.ExactBound, 6, 3, board.Score(5), m)
	assert.True(t, repl)
}

func TestTranspositionTableMateScoreAdjustedByPly(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 0x1000)

	a := board.ZobristHash(rand.Uint64())
	m := board.Move{From: board.E2, To: board.E4}

	// A mate found 3 plies into the search, stored from root (ply 2).
	ok := tt.Write(a, search.ExactBound, 2, 4, board.MateScore-3, m)
	assert.True(t, ok)

	// Read back at the same ply: exact round-trip.
	_, _, score, _, found := tt.Read(a, 2)
	assert.True(t, found)
	assert.Equal(t, board.MateScore-3, score)

	// Read back at a shallower ply (e.g. a transposition reached earlier): the node is now
	// closer to the root, so the mate is fewer plies away from the root.
	_, _, score, _, found = tt.Read(a, 0)
	assert.True(t, found)
	assert.Equal(t, board.MateScore-1, score)
}

func TestNoTranspositionTable(t *testing.T) {
	tt := search.NoTranspositionTable{}
	_, _, _, _, ok := tt.Read(0, 0)
	assert.False(t, ok)
	assert.False(t, tt.Write(0, search.ExactBound, 0, 1, 10, board.Move{}))
	assert.Equal(t, uint64(0), tt.Size())
}

func TestMinDepthTranspositionTable(t *testing.T) {
	ctx := context.Background()
	factory := search.NewMinDepthTranspositionTable(4)
	tt := factory(ctx, 0x1000)

	m := board.Move{From: board.D2, To: board.D4}
	assert.False(t, tt.Write(1, search.ExactBound, 0, 2, 10, m))

	assert.True(t, tt.Write(1, search.ExactBound, 0, 4, 10, m))
	_, _, _, _, ok := tt.Read(1, 0)
	assert.True(t, ok)
}
