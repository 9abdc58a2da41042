package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// square is one board cell. An unoccupied square holds the zero Piece.
type square struct {
	piece    Piece
	occupied bool
}

// Board is the set of pieces currently on the board. No two pieces share a
// square. A Board is treated as an immutable snapshot: every method that
// changes the position returns a new Board and leaves the receiver intact.
type Board struct {
	// squares[file][rank]
	squares [BoardSize][BoardSize]square
	count   int
}

// NewBoard creates a board holding the given pieces.
func NewBoard(pieces ...Piece) (*Board, error) {
	b := &Board{}
	for _, p := range pieces {
		if !p.Position.Valid() {
			return nil, fmt.Errorf("%s at %s: %w", p.Kind, p.Position, errors.ErrOffBoard)
		}
		if b.squares[p.Position.File][p.Position.Rank].occupied {
			return nil, fmt.Errorf("%s: %w", p.Position, errors.ErrSquareOccupied)
		}
		b.put(p)
	}
	return b, nil
}

// MustNewBoard is like NewBoard but panics on error.
func MustNewBoard(pieces ...Piece) *Board {
	b, err := NewBoard(pieces...)
	if err != nil {
		panic(err)
	}
	return b
}

// NewInitialBoard returns the standard starting position.
func NewInitialBoard() *Board {
	b := &Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.put(NewPiece(backRank[file], White, Pos(file, 0)))
		b.put(NewPiece(Pawn, White, Pos(file, 1)))
		b.put(NewPiece(Pawn, Black, Pos(file, 6)))
		b.put(NewPiece(backRank[file], Black, Pos(file, 7)))
	}
	return b
}

func (b *Board) put(p Piece) {
	sq := &b.squares[p.Position.File][p.Position.Rank]
	if !sq.occupied {
		b.count++
	}
	*sq = square{piece: p, occupied: true}
}

func (b *Board) clear(pos Position) {
	sq := &b.squares[pos.File][pos.Rank]
	if sq.occupied {
		b.count--
	}
	*sq = square{}
}

// PieceAt returns the piece on pos. The boolean is false when the square is
// empty or pos is off the board.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	sq := b.squares[pos.File][pos.Rank]
	return sq.piece, sq.occupied
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.Valid() && !b.squares[pos.File][pos.Rank].occupied
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return b.count
}

// Pieces returns all pieces in file-major scan order (a1, a2, ... h8).
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, b.count)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if sq := b.squares[file][rank]; sq.occupied {
				pieces = append(pieces, sq.piece)
			}
		}
	}
	return pieces
}

// PiecesOf returns the pieces of one colour in file-major scan order.
func (b *Board) PiecesOf(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Kings returns the kings of the given colour.
func (b *Board) Kings(colour Colour) []Piece {
	var kings []Piece
	for _, p := range b.Pieces() {
		if p.Kind == King && p.Colour == colour {
			kings = append(kings, p)
		}
	}
	return kings
}

// Validate checks the one-king-per-side invariant that engine queries rely on.
func (b *Board) Validate() error {
	for _, colour := range []Colour{White, Black} {
		switch n := len(b.Kings(colour)); {
		case n == 0:
			return fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound)
		case n > 1:
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrDuplicateKing)
		}
	}
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// WithPiece returns a copy of the board with p placed on its square,
// replacing any occupant.
func (b *Board) WithPiece(p Piece) *Board {
	nb := b.Copy()
	if p.Position.Valid() {
		nb.put(p)
	}
	return nb
}

// Without returns a copy of the board with pos emptied.
func (b *Board) Without(pos Position) *Board {
	nb := b.Copy()
	if pos.Valid() {
		nb.clear(pos)
	}
	return nb
}

// Moved returns a copy of the board with the piece on from moved to to,
// replacing any occupant of to. It returns the receiver's copy unchanged
// if from is empty.
func (b *Board) Moved(from, to Position) *Board {
	nb := b.Copy()
	p, ok := nb.PieceAt(from)
	if !ok || !to.Valid() {
		return nb
	}
	nb.clear(from)
	nb.put(p.At(to))
	return nb
}

// String renders the board as eight ranks of FEN letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if sq := b.squares[file][rank]; sq.occupied {
				sb.WriteByte(sq.piece.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
