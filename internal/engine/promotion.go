package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PromotionKinds lists the kinds a pawn may become, strongest first.
var PromotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Promote returns piece with its kind changed to kind. It fails, returning
// piece unchanged, if piece is not a pawn or kind is Pawn or King. It does
// not check that the pawn stands on its promotion rank; see IsPromotionRank.
func Promote(piece chess.Piece, kind chess.PieceKind) (chess.Piece, error) {
	if piece.Kind != chess.Pawn {
		return piece, fmt.Errorf("%s on %s is not a pawn: %w", piece.Kind, piece.Position, errors.ErrInvalidPromotion)
	}
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return piece, fmt.Errorf("pawn cannot become %s: %w", kind, errors.ErrInvalidPromotion)
	}
	piece.Kind = kind
	return piece, nil
}

// IsPromotionRank reports whether piece is a pawn standing on its far rank.
func IsPromotionRank(piece chess.Piece) bool {
	return piece.Kind == chess.Pawn && piece.Position.Rank == chess.PromotionRank(piece.Colour)
}

// PromoteAt promotes the pawn standing on at, which must have reached its
// far rank. The turn and history are left as they are: promotion completes
// the move that brought the pawn there.
func PromoteAt(s chess.Snapshot, at chess.Position, kind chess.PieceKind) (chess.Snapshot, error) {
	piece, ok := s.Board.PieceAt(at)
	if !ok {
		return s, fmt.Errorf("promote %s: %w", at, errors.ErrEmptySquare)
	}
	if piece.Kind == chess.Pawn && !IsPromotionRank(piece) {
		return s, fmt.Errorf("pawn on %s has not reached rank %d: %w", at, chess.PromotionRank(piece.Colour)+1, errors.ErrInvalidPromotion)
	}
	promoted, err := Promote(piece, kind)
	if err != nil {
		return s, err
	}
	next := s
	next.Board = s.Board.WithPiece(promoted)
	return next, nil
}
