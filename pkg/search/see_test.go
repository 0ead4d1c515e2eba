package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, f string) *board.Position {
	t.Helper()
	pos, _, _, _, err := fen.Decode(f)
	require.NoError(t, err)
	return pos
}

func TestSEE(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     board.Move
		expected board.Score
	}{
		{
			name: "quiet move scores zero",
			fen:  fen.Initial,
			move: board.Move{Type: board.Jump, From: board.E2, To: board.E4, Piece: board.Pawn},
		},
		{
			name:     "undefended knight falls for free",
			fen:      "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1",
			move:     board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Knight},
			expected: 300,
		},
		{
			name:     "pawn recapture makes the knight capture only a net pawn's worth",
			fen:      "4k3/8/4p3/3n4/4P3/8/8/4K3 w - - 0 1",
			move:     board.Move{Type: board.Capture, From: board.E4, To: board.D5, Piece: board.Pawn, Capture: board.Knight},
			expected: 200,
		},
		{
			name:     "rook takes a pawn defended by a rook loses the exchange",
			fen:      "3rk3/8/8/3p4/8/8/8/3RK3 w - - 0 1",
			move:     board.Move{Type: board.Capture, From: board.D1, To: board.D5, Piece: board.Rook, Capture: board.Pawn},
			expected: -400,
		},
	}

	for _, tt := range tests {
		pos := mustPosition(t, tt.fen)
		actual := search.SEE(pos, tt.move)
		assert.Equal(t, tt.expected, actual, "%v: %v", tt.name, tt.fen)
	}
}
