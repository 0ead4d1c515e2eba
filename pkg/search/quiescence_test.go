package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, turn, np, fm, err := fen.Decode(f)
	require.NoError(t, err)
	return board.NewBoard(board.NewZobristTable(1), pos, turn, np, fm)
}

func TestQuiescenceNoTacticalMovesReturnsStandPat(t *testing.T) {
	ctx := context.Background()
	b := mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	q := search.Quiescence{Eval: eval.Static{}}
	_, score := q.Search(ctx, &search.Context{}, b, board.NegInf, board.Inf)

	assert.Equal(t, eval.Static{}.Evaluate(b), score)
}

func TestQuiescenceCheckmateScoresMinusMate(t *testing.T) {
	ctx := context.Background()
	b := mustBoard(t, "R5k1/8/6K1/8/8/8/8/8 b - - 0 1")

	q := search.Quiescence{Eval: eval.Static{}}
	_, score := q.Search(ctx, &search.Context{}, b, board.NegInf, board.Inf)

	assert.Equal(t, -board.MateScore, score)
}
