package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustBoard builds a board from compact piece strings such as "Ke1" (White)
// or "pd7" (Black). It calls t.Fatal on any malformed piece or collision.
func MustBoard(t *testing.T, pieces ...string) *chess.Board {
	t.Helper()
	parsed := make([]chess.Piece, 0, len(pieces))
	for _, s := range pieces {
		parsed = append(parsed, MustPiece(t, s))
	}
	b, err := chess.NewBoard(parsed...)
	if err != nil {
		t.Fatalf("building board %v: %v", pieces, err)
	}
	return b
}

// MustPiece parses a compact piece string, calling t.Fatal on error.
func MustPiece(t *testing.T, s string) chess.Piece {
	t.Helper()
	p, err := chess.ParsePiece(s)
	if err != nil {
		t.Fatalf("parsing piece: %v", err)
	}
	return p
}

// PieceOn returns the piece standing on square, calling t.Fatal if it is empty.
func PieceOn(t *testing.T, b *chess.Board, square string) chess.Piece {
	t.Helper()
	p, ok := b.PieceAt(Square(t, square))
	if !ok {
		t.Fatalf("no piece on %s:\n%s", square, b)
	}
	return p
}

// Square parses an algebraic square, calling t.Fatal on error.
func Square(t *testing.T, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("parsing square: %v", err)
	}
	return p
}

// Squares parses algebraic squares in order. No arguments yields nil, which
// compares equal to an empty move list from the engine.
func Squares(t *testing.T, squares ...string) []chess.Position {
	t.Helper()
	var out []chess.Position
	for _, s := range squares {
		out = append(out, Square(t, s))
	}
	return out
}

// DoublePush returns the history entry for a pawn's two-square advance from
// square from.
func DoublePush(t *testing.T, colour chess.Colour, from string) chess.History {
	t.Helper()
	start := Square(t, from)
	to, ok := start.Offset(0, 2*chess.ColourOffset(colour))
	if !ok {
		t.Fatalf("double push from %s leaves the board", from)
	}
	return chess.History{chess.NewMove(chess.NewPiece(chess.Pawn, colour, start), to)}
}
