package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, turn, np, fm, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos, turn, np, fm)
}

func TestEvaluateSymmetric(t *testing.T) {
	b := mustBoard(t, fen.Initial)
	assert.Equal(t, board.Score(0), eval.Evaluate(b))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a rook.
	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	assert.True(t, eval.Evaluate(b) > 0)
}

func TestPhaseBounds(t *testing.T) {
	opening := mustBoard(t, fen.Initial)
	assert.Equal(t, 1.0, eval.Phase(opening.Position()))

	endgame := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, 0.0, eval.Phase(endgame.Position()))
}

func TestPhaseBucket(t *testing.T) {
	assert.Equal(t, eval.Opening, eval.PhaseBucket(0.9))
	assert.Equal(t, eval.Middlegame, eval.PhaseBucket(0.5))
	assert.Equal(t, eval.Endgame, eval.PhaseBucket(0.1))
}

func TestNominalValueGain(t *testing.T) {
	capture := board.Move{Type: board.Capture, Capture: board.Knight}
	assert.Equal(t, eval.NominalValue(board.Knight), eval.NominalValueGain(capture))

	promo := board.Move{Type: board.Promotion, Promotion: board.Queen}
	assert.Equal(t, eval.NominalValue(board.Queen)-eval.NominalValue(board.Pawn), eval.NominalValueGain(promo))
}
