package chess

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Move records a single move: the moved piece as it stood before the move,
// and the squares it travelled between.
type Move struct {
	Piece Piece
	From  Position
	To    Position
}

// NewMove creates a move of p from its current square to to.
func NewMove(p Piece, to Position) Move {
	return Move{Piece: p, From: p.Position, To: to}
}

// IsDoublePawnPush reports whether the move is a pawn's two-square advance
// from its start rank.
func (m Move) IsDoublePawnPush() bool {
	if m.Piece.Kind != Pawn || m.From.File != m.To.File {
		return false
	}
	if m.From.Rank != PawnStartRank(m.Piece.Colour) {
		return false
	}
	return m.To.Rank-m.From.Rank == 2*ColourOffset(m.Piece.Colour)
}

// String returns the move in long algebraic form, e.g. "Pe2e4".
func (m Move) String() string {
	return fmt.Sprintf("%c%s%s", m.Piece.Kind.Letter(), m.From, m.To)
}

// History is the append-only, order-preserving sequence of moves played.
// The engine only reads it; index-based lookback never mutates it.
type History []Move

// Len returns the number of recorded moves.
func (h History) Len() int {
	return len(h)
}

// At returns the move at ply index i (0-based).
func (h History) At(i int) (Move, bool) {
	if i < 0 || i >= len(h) {
		return Move{}, false
	}
	return h[i], true
}

// Last returns the most recent move.
func (h History) Last() (Move, bool) {
	return h.At(len(h) - 1)
}

// Append returns a new history with m added. The receiver's backing array
// is never shared with the result.
func (h History) Append(m Move) History {
	out := slices.Clone(h)
	return append(out, m)
}
