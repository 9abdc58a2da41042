// Package chess provides the board model shared by the rule engine and its callers.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// AdvanceTurn returns the side to move after c has moved.
func AdvanceTurn(c Colour) Colour {
	return c.Opposite()
}

// ParseColour converts "white"/"w" or "black"/"b" (any case) to a Colour.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q", s)
}

// PieceKind represents a chess piece type. Empty squares are not a kind;
// they are reported as absence by Board.PieceAt.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceKinds is the number of piece kinds.
const NumPieceKinds = 6

var kindNames = [NumPieceKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

var kindLetters = [NumPieceKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < NumPieceKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	if k >= 0 && int(k) < NumPieceKinds {
		return kindLetters[k]
	}
	return '?'
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k >= 0 && int(k) < NumPieceKinds
}

// ParsePieceKind converts a piece name ("queen") or letter ("Q", "q") to a PieceKind.
func ParsePieceKind(s string) (PieceKind, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		if k, ok := KindFromLetter(s[0]); ok {
			return k, nil
		}
	}
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return PieceKind(k), nil
		}
	}
	return Pawn, fmt.Errorf("unknown piece kind %q", s)
}

// KindFromLetter converts a FEN/SAN letter (either case) to a PieceKind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return Pawn, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Position is a board coordinate. File and Rank are zero-based and a valid
// position has both in [0, BoardSize). Arithmetic is signed so that
// stepping off an edge yields an invalid position rather than wrapping.
type Position struct {
	File int
	Rank int
}

// NewPosition validates file and rank and returns the position.
func NewPosition(file, rank int) (Position, error) {
	p := Position{File: file, Rank: rank}
	if !p.Valid() {
		return Position{}, fmt.Errorf("(%d,%d): %w", file, rank, errors.ErrOffBoard)
	}
	return p, nil
}

// Pos builds a position without validation. Use it for literals known to
// be on the board.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// ParsePosition parses an algebraic square such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrOffBoard)
	}
	return NewPosition(int(s[0])-FileBase, int(s[1])-RankBase)
}

// MustParsePosition is like ParsePosition but panics on error.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Offset returns the position shifted by (df, dr). The boolean is false
// when the result would leave the board.
func (p Position) Offset(df, dr int) (Position, bool) {
	q := Position{File: p.File + df, Rank: p.Rank + dr}
	return q, q.Valid()
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank pawns of the colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the far rank for pawns of the colour.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// Piece is an immutable snapshot of a piece on the board.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Position Position
}

// NewPiece creates a piece value.
func NewPiece(kind PieceKind, colour Colour, pos Position) Piece {
	return Piece{Kind: kind, Colour: colour, Position: pos}
}

// At returns a copy of the piece standing on pos.
func (p Piece) At(pos Position) Piece {
	p.Position = pos
	return p
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the piece in compact form, e.g. "Ke1" or "pd7".
func (p Piece) String() string {
	return string(p.Letter()) + p.Position.String()
}

// ParsePiece parses the compact form produced by Piece.String.
func ParsePiece(s string) (Piece, error) {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return Piece{}, fmt.Errorf("piece %q: want letter and square, e.g. Ke1", s)
	}
	kind, ok := KindFromLetter(s[0])
	if !ok {
		return Piece{}, fmt.Errorf("piece %q: unknown piece letter %q", s, s[0])
	}
	colour := White
	if s[0] >= 'a' && s[0] <= 'z' {
		colour = Black
	}
	pos, err := ParsePosition(s[1:])
	if err != nil {
		return Piece{}, fmt.Errorf("piece %q: %w", s, err)
	}
	return NewPiece(kind, colour, pos), nil
}
