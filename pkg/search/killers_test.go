package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestKillers(t *testing.T) {
	k := search.NewKillers()

	first, second := k.Probe(3)
	assert.True(t, first.Equals(board.Move{}))
	assert.True(t, second.Equals(board.Move{}))

	m1 := board.Move{From: board.E2, To: board.E4, Piece: board.Pawn}
	m2 := board.Move{From: board.G1, To: board.F3, Piece: board.Knight}

	k.Store(3, m1)
	first, second = k.Probe(3)
	assert.Equal(t, m1, first)
	assert.True(t, second.Equals(board.Move{}))

	k.Store(3, m2)
	first, second = k.Probe(3)
	assert.Equal(t, m2, first)
	assert.Equal(t, m1, second)

	// Storing the primary killer again is a no-op, not a rotation.
	k.Store(3, m2)
	first, second = k.Probe(3)
	assert.Equal(t, m2, first)
	assert.Equal(t, m1, second)

	// A different ply has its own slots.
	first, second = k.Probe(4)
	assert.True(t, first.Equals(board.Move{}))
	assert.True(t, second.Equals(board.Move{}))
}

func TestKillersIgnoreCapturesAndPromotions(t *testing.T) {
	k := search.NewKillers()

	capture := board.Move{From: board.E4, To: board.D5, Type: board.Capture, Piece: board.Pawn, Capture: board.Knight}
	k.Store(1, capture)
	promotion := board.Move{From: board.D7, To: board.D8, Type: board.Promotion, Piece: board.Pawn, Promotion: board.Queen}
	k.Store(1, promotion)

	first, second := k.Probe(1)
	assert.True(t, first.Equals(board.Move{}))
	assert.True(t, second.Equals(board.Move{}))
}

func TestKillersClampsOutOfRangePly(t *testing.T) {
	k := search.NewKillers()
	m := board.Move{From: board.A2, To: board.A4, Piece: board.Pawn}

	k.Store(-1, m)
	first, _ := k.Probe(-5)
	assert.Equal(t, m, first)

	k.Store(1000, m)
	first, _ = k.Probe(999999)
	assert.Equal(t, m, first)
}
