package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := search.NewHistory()

	quiet := board.Move{From: board.D2, To: board.D4, Piece: board.Pawn}
	assert.Equal(t, 0, h.Score(quiet))

	h.Update(quiet, 4)
	assert.Equal(t, 16, h.Score(quiet))

	h.Update(quiet, 3)
	assert.Equal(t, 25, h.Score(quiet))
}

func TestHistoryIgnoresCapturesAndPromotions(t *testing.T) {
	h := search.NewHistory()

	capture := board.Move{From: board.E4, To: board.D5, Type: board.Capture, Piece: board.Pawn, Capture: board.Knight}
	h.Update(capture, 10)
	assert.Equal(t, 0, h.Score(capture))

	promotion := board.Move{From: board.D7, To: board.D8, Type: board.Promotion, Piece: board.Pawn, Promotion: board.Queen}
	h.Update(promotion, 10)
	assert.Equal(t, 0, h.Score(promotion))
}

func TestHistoryDecay(t *testing.T) {
	h := search.NewHistory()

	quiet := board.Move{From: board.G1, To: board.F3, Piece: board.Knight}
	h.Update(quiet, 4) // +16

	h.Decay()
	assert.Equal(t, 8, h.Score(quiet))

	h.Decay()
	assert.Equal(t, 4, h.Score(quiet))
}
