package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
)

func next(t *testing.T, ml *board.MoveList) board.Move {
	t.Helper()
	m, ok := ml.Next()
	assert.True(t, ok)
	return m
}

func TestOrderTTMoveFirst(t *testing.T) {
	pos := mustPosition(t, fen.Initial)

	center := board.Move{From: board.E2, To: board.E4, Type: board.Jump, Piece: board.Pawn}
	quiet := board.Move{From: board.A2, To: board.A3, Piece: board.Pawn}
	ttBest := quiet

	ml := search.Order(pos, board.White, []board.Move{center, quiet}, 0, ttBest, nil, nil)
	assert.Equal(t, quiet, next(t, ml))
	assert.Equal(t, center, next(t, ml))
}

func TestOrderPositionalBonusAmongQuietMoves(t *testing.T) {
	pos := mustPosition(t, fen.Initial)

	center := board.Move{From: board.E2, To: board.E4, Type: board.Jump, Piece: board.Pawn}
	minorDev := board.Move{From: board.G1, To: board.F3, Piece: board.Knight}
	plain := board.Move{From: board.A2, To: board.A3, Piece: board.Pawn}

	ml := search.Order(pos, board.White, []board.Move{plain, minorDev, center}, 0, board.Move{}, nil, nil)
	assert.Equal(t, center, next(t, ml))
	assert.Equal(t, minorDev, next(t, ml))
	assert.Equal(t, plain, next(t, ml))
}

func TestOrderWinningCaptureBeforeQuiet(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")

	capture := board.Move{From: board.E4, To: board.D5, Type: board.Capture, Piece: board.Pawn, Capture: board.Knight}
	quiet := board.Move{From: board.E1, To: board.D2, Piece: board.King}

	ml := search.Order(pos, board.White, []board.Move{quiet, capture}, 0, board.Move{}, nil, nil)
	assert.Equal(t, capture, next(t, ml))
	assert.Equal(t, quiet, next(t, ml))
}

func TestOrderCapturingQueenPromotionBeforePlainQueenPromotion(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/3P4/2r1K3 w - - 0 1")

	capturePromo := board.Move{From: board.D2, To: board.C1, Type: board.CapturePromotion, Piece: board.Pawn, Capture: board.Rook, Promotion: board.Queen}
	plainPromo := board.Move{From: board.D2, To: board.D1, Type: board.Promotion, Piece: board.Pawn, Promotion: board.Queen}

	ml := search.Order(pos, board.White, []board.Move{plainPromo, capturePromo}, 0, board.Move{}, nil, nil)
	assert.Equal(t, capturePromo, next(t, ml))
	assert.Equal(t, plainPromo, next(t, ml))
}

func TestOrderCheckBeforePlainQuiet(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	check := board.Move{From: board.A1, To: board.A8, Piece: board.Rook}
	plain := board.Move{From: board.A1, To: board.A5, Piece: board.Rook}

	ml := search.Order(pos, board.White, []board.Move{plain, check}, 0, board.Move{}, nil, nil)
	assert.Equal(t, check, next(t, ml))
	assert.Equal(t, plain, next(t, ml))
}

func TestOrderKillerBeforePlainQuiet(t *testing.T) {
	pos := mustPosition(t, fen.Initial)

	killer := board.Move{From: board.B1, To: board.C3, Piece: board.Knight}
	plain := board.Move{From: board.A2, To: board.A3, Piece: board.Pawn}

	k := search.NewKillers()
	k.Store(2, killer)

	ml := search.Order(pos, board.White, []board.Move{plain, killer}, 2, board.Move{}, k, nil)
	assert.Equal(t, killer, next(t, ml))
	assert.Equal(t, plain, next(t, ml))
}
