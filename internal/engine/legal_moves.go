package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PieceMoves pairs a piece with its legal destinations.
type PieceMoves struct {
	Piece chess.Piece
	Moves []chess.Position
}

// LegalMoves returns the destinations from GenerateMoves that do not leave
// the piece's own king attacked, in GenerateMoves order. It panics if the
// board has no king of the piece's colour.
func LegalMoves(piece chess.Piece, board *chess.Board, history chess.History) []chess.Position {
	var legal []chess.Position
	for _, to := range GenerateMoves(piece, board, history) {
		if leavesKingSafe(piece, to, board, history) {
			legal = append(legal, to)
		}
	}
	return legal
}

// MoveIsLegal reports whether piece may move to the destination: it must
// be one of the piece's pseudo-legal destinations and must not leave its
// own king attacked.
func MoveIsLegal(piece chess.Piece, to chess.Position, board *chess.Board, history chess.History) bool {
	if !slices.Contains(GenerateMoves(piece, board, history), to) {
		return false
	}
	return leavesKingSafe(piece, to, board, history)
}

// AllLegalMoves returns the legal moves of every piece of the colour in
// board scan order. Pieces without legal moves are omitted.
func AllLegalMoves(board *chess.Board, colour chess.Colour, history chess.History) []PieceMoves {
	var all []PieceMoves
	for _, p := range board.PiecesOf(colour) {
		if moves := LegalMoves(p, board, history); len(moves) > 0 {
			all = append(all, PieceMoves{Piece: p, Moves: moves})
		}
	}
	return all
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, history chess.History) bool {
	for _, p := range board.PiecesOf(colour) {
		for _, to := range GenerateMoves(p, board, history) {
			if leavesKingSafe(p, to, board, history) {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe makes the move on a copied board and checks that it does
// not leave the mover's king in check.
func leavesKingSafe(piece chess.Piece, to chess.Position, board *chess.Board, history chess.History) bool {
	next, _ := ApplyMove(board, piece, to, history)
	return !IsInCheck(next, piece.Colour)
}
