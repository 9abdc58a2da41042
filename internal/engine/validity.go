package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsMoveValid reports whether piece may legally move to destination and,
// for an en passant capture, the rank offset from destination to the pawn
// being captured: -1 when White captures, +1 when Black captures, 0 for
// every other move. The captured pawn stands on
// (destination.File, destination.Rank+offset); the destination itself is
// empty.
//
// An off-board destination is reported as (false, 0).
func IsMoveValid(piece chess.Piece, destination chess.Position, board *chess.Board, history chess.History) (bool, int) {
	if !destination.Valid() {
		return false, 0
	}
	if !slices.Contains(LegalMoves(piece, board, history), destination) {
		return false, 0
	}
	if target, ok := EnPassantTarget(piece, board, history); ok && target == destination {
		return true, enPassantOffset(piece.Colour)
	}
	return true, 0
}

// CheckDestination validates a caller-supplied coordinate before it enters
// the engine.
func CheckDestination(file, rank int) (chess.Position, error) {
	pos, err := chess.NewPosition(file, rank)
	if err != nil {
		return chess.Position{}, fmt.Errorf("destination: %w", err)
	}
	return pos, nil
}

// IsEnPassantCapture reports whether moving piece to destination captures
// en passant.
func IsEnPassantCapture(piece chess.Piece, destination chess.Position, board *chess.Board, history chess.History) bool {
	target, ok := EnPassantTarget(piece, board, history)
	return ok && target == destination
}

// errIllegal builds the error MakeMove returns for a rejected move.
func errIllegal(piece chess.Piece, to chess.Position) error {
	return fmt.Errorf("%s to %s: %w", piece, to, errors.ErrIllegalMove)
}
