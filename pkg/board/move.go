package board

import (
	"fmt"
	"strings"
)

// FormatMoves joins a list of moves into a single space-separated string using fn to
// render each move, e.g. for UCI "pv" output or log lines.
func FormatMoves(moves []Move, fn func(Move) string) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fn(m)
	}
	return strings.Join(parts, " ")
}

// PrintMoves renders a list of moves for human-readable display, e.g. "d2-d4 e2-e4". Unlike
// Move.String, which must stay dash-free for UCI wire compatibility, this is for logs, CLI
// output and tests.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, func(m Move) string {
		if m.Promotion.IsValid() {
			return fmt.Sprintf("%v-%v%v", m.From, m.To, m.Promotion)
		}
		return fmt.Sprintf("%v-%v", m.From, m.To)
	})
}

// MoveType indicates the type of move. The no-progress counter is reset with any non-Normal move.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily legal move along with contextual metadata. The Piece and
// Capture fields are filled in by move generation and are required for incremental Zobrist
// hash updates and SEE; a Move parsed from user input via ParseMove has neither set and must
// be resolved against a Position before it can be pushed.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece // moving piece
	Promotion Piece // desired piece for promotion, if any.
	Capture   Piece // captured piece, if any.
	Score     Score // move ordering priority, not a position score.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not contain contextual information like piece, castling or en passant;
// callers must resolve it against a Position (see Position.Resolve) before pushing it.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsCapture returns true iff the move removes an opposing piece from the board.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

// IsCastle returns true iff the move is a castle, either side.
func (m Move) IsCastle() bool {
	return m.Type == QueenSideCastle || m.Type == KingSideCastle
}

// IsQuiet returns true iff the move is neither a capture nor a promotion. Outside of check
// evasions, quiet moves are excluded from quiescence search.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// EnPassantCapture returns the square of the pawn captured en passant, if any.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return 0, false
	}
	if m.Piece == Pawn {
		// The captured pawn sits on the same rank as the moving pawn's origin.
		return NewSquare(m.To.File(), m.From.Rank()), true
	}
	return 0, false
}

// EnPassantTarget returns the square a future en passant capture would target, if this move
// is a two-square pawn jump.
func (m Move) EnPassantTarget() (Square, bool) {
	if m.Type != Jump {
		return 0, false
	}
	mid := (int(m.From.Rank()) + int(m.To.Rank())) / 2
	return NewSquare(m.From.File(), Rank(mid)), true
}

// CastlingRookMove returns the rook's from/to squares for a castling move.
func (m Move) CastlingRookMove() (from, to Square, ok bool) {
	switch m.Type {
	case KingSideCastle:
		r := m.From.Rank()
		return NewSquare(FileH, r), NewSquare(FileF, r), true
	case QueenSideCastle:
		r := m.From.Rank()
		return NewSquare(FileA, r), NewSquare(FileD, r), true
	default:
		return 0, 0, false
	}
}

// CastlingRightsLost returns the castling rights this move permanently revokes, based solely
// on the squares involved (a king or rook leaving its home square, or a rook being captured
// on its home square).
func (m Move) CastlingRightsLost() Castling {
	var lost Castling
	lost |= rightsLostAt(m.From)
	lost |= rightsLostAt(m.To)
	if m.Piece == King {
		switch m.From {
		case E1:
			lost |= WhiteKingSideCastle | WhiteQueenSideCastle
		case E8:
			lost |= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	return lost
}

func rightsLostAt(sq Square) Castling {
	switch sq {
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	default:
		return 0
	}
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
