package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove returns the board after piece moves to to, and the move to
// append to the history. Any piece on to is captured; an en passant
// capture also removes the pawn beside the mover. The move is not
// validated and board is left untouched.
func ApplyMove(board *chess.Board, piece chess.Piece, to chess.Position, history chess.History) (*chess.Board, chess.Move) {
	move := chess.NewMove(piece, to)

	next := board.Without(piece.Position)

	// Handle en passant capture
	if IsEnPassantCapture(piece, to, board, history) {
		next = next.Without(enPassantVictim(piece.Colour, to))
	}

	return next.WithPiece(piece.At(to)), move
}

// MakeMove plays the piece on from to to for the side to move and returns
// the resulting snapshot. The move must be legal. A pawn reaching its far
// rank stays a pawn until PromoteAt is called.
func MakeMove(s chess.Snapshot, from, to chess.Position) (chess.Snapshot, error) {
	if !from.Valid() || !to.Valid() {
		return s, fmt.Errorf("%s to %s: %w", from, to, errors.ErrOffBoard)
	}

	piece, ok := s.Board.PieceAt(from)
	if !ok {
		return s, fmt.Errorf("%s: %w", from, errors.ErrEmptySquare)
	}
	if piece.Colour != s.ToMove {
		return s, fmt.Errorf("%s moved with %s to play: %w", piece, s.ToMove, errors.ErrWrongTurn)
	}

	if legal, _ := IsMoveValid(piece, to, s.Board, s.History); !legal {
		return s, errIllegal(piece, to)
	}

	board, move := ApplyMove(s.Board, piece, to, s.History)
	return s.Next(board, move), nil
}
