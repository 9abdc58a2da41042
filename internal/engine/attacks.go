package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked.
// It panics if the board has no king of that colour.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := FindKing(board, colour)
	return isSquareAttacked(board, king.Position, colour.Opposite())
}

// FindKing returns the king of the given colour, found by a linear scan.
// A board without one violates the one-king-per-side invariant the caller
// must guarantee; FindKing panics with an error wrapping
// errors.ErrKingNotFound rather than guess.
func FindKing(board *chess.Board, colour chess.Colour) chess.Piece {
	for _, p := range board.Pieces() {
		if p.Kind == chess.King && p.Colour == colour {
			return p
		}
	}
	panic(fmt.Errorf("%s: %w", colour, errors.ErrKingNotFound))
}

// IsSquareAttacked returns true if any piece of byColour attacks square.
// Squares holding a piece of byColour count as attacked when covered, so
// the answer also tells whether a piece standing there is defended.
//
// This is the attack set, not the union of GenerateMoves: an empty square
// diagonally ahead of a pawn counts as attacked though the pawn cannot move
// there, and a square only a pawn could push to does not.
func IsSquareAttacked(board *chess.Board, square chess.Position, byColour chess.Colour) bool {
	return square.Valid() && isSquareAttacked(board, square, byColour)
}

// Attackers returns the pieces of byColour attacking square, in board scan order.
func Attackers(board *chess.Board, square chess.Position, byColour chess.Colour) []chess.Piece {
	var attackers []chess.Piece
	for _, p := range board.PiecesOf(byColour) {
		if attacks(board, p, square) {
			attackers = append(attackers, p)
		}
	}
	return attackers
}

// attacks reports whether piece p covers square.
func attacks(board *chess.Board, p chess.Piece, square chess.Position) bool {
	df := square.File - p.Position.File
	dr := square.Rank - p.Position.Rank
	if df == 0 && dr == 0 {
		return false
	}

	switch p.Kind {
	case chess.Pawn:
		return dr == chess.ColourOffset(p.Colour) && abs(df) == 1
	case chess.Knight:
		return (abs(df) == 1 && abs(dr) == 2) || (abs(df) == 2 && abs(dr) == 1)
	case chess.King:
		return abs(df) <= 1 && abs(dr) <= 1
	case chess.Bishop:
		return abs(df) == abs(dr) && isRayClear(board, p.Position, square)
	case chess.Rook:
		return (df == 0 || dr == 0) && isRayClear(board, p.Position, square)
	case chess.Queen:
		return (abs(df) == abs(dr) || df == 0 || dr == 0) && isRayClear(board, p.Position, square)
	}
	return false
}

// isRayClear checks that every square strictly between from and to on a
// straight or diagonal line is empty.
func isRayClear(board *chess.Board, from, to chess.Position) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq, ok := from.Offset(fileDir, rankDir)
	for ok && sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(fileDir, rankDir)
	}
	return ok
}

// isSquareAttacked returns true if the square is attacked by the given
// colour. It looks outward from the square for each attacker pattern
// rather than generating every enemy move.
func isSquareAttacked(board *chess.Board, square chess.Position, byColour chess.Colour) bool {
	is := func(pos chess.Position, kinds ...chess.PieceKind) bool {
		p, occupied := board.PieceAt(pos)
		if !occupied || p.Colour != byColour {
			return false
		}
		for _, k := range kinds {
			if p.Kind == k {
				return true
			}
		}
		return false
	}

	// Check pawn attacks: an attacking pawn stands one rank behind the
	// square from its own point of view.
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range []int{-1, 1} {
		if from, ok := square.Offset(df, pawnDir); ok && is(from, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, off := range knightOffsets {
		if from, ok := square.Offset(off[0], off[1]); ok && is(from, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, step := range kingSteps {
		if from, ok := square.Offset(step[0], step[1]); ok && is(from, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	if rayHits(board, square, diagonalDirs, is, chess.Bishop, chess.Queen) {
		return true
	}
	return rayHits(board, square, straightDirs, is, chess.Rook, chess.Queen)
}

// rayHits walks each direction from square to the first occupied square
// and reports whether it holds one of kinds of the attacking colour.
func rayHits(board *chess.Board, square chess.Position, dirs [][2]int, is func(chess.Position, ...chess.PieceKind) bool, kinds ...chess.PieceKind) bool {
	for _, dir := range dirs {
		sq, ok := square.Offset(dir[0], dir[1])
		for ok {
			if !board.IsEmpty(sq) {
				if is(sq, kinds...) {
					return true
				}
				break // Blocked
			}
			sq, ok = sq.Offset(dir[0], dir[1])
		}
	}
	return false
}
