package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pushes, captures and the en passant capture.
func pawnMoves(pawn chess.Piece, board *chess.Board, history chess.History) []chess.Position {
	dir := chess.ColourOffset(pawn.Colour)
	var moves []chess.Position

	// Forward move
	if one, ok := pawn.Position.Offset(0, dir); ok && board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push from starting rank
		if pawn.Position.Rank == chess.PawnStartRank(pawn.Colour) {
			if two, ok := pawn.Position.Offset(0, 2*dir); ok && board.IsEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to, ok := pawn.Position.Offset(df, dir)
		if !ok {
			continue
		}
		if target, occupied := board.PieceAt(to); occupied && target.Colour != pawn.Colour {
			moves = append(moves, to)
		}
	}

	if to, ok := EnPassantTarget(pawn, board, history); ok {
		moves = append(moves, to)
	}
	return moves
}

// EnPassantTarget returns the square pawn may capture onto en passant.
// It is available only when the last move in history was an enemy pawn's
// double push that landed beside pawn on the same rank, and the square
// that enemy pawn skipped is still empty.
func EnPassantTarget(pawn chess.Piece, board *chess.Board, history chess.History) (chess.Position, bool) {
	if pawn.Kind != chess.Pawn {
		return chess.Position{}, false
	}
	last, ok := history.Last()
	if !ok {
		return chess.Position{}, false
	}
	if last.Piece.Colour == pawn.Colour || !last.IsDoublePawnPush() {
		return chess.Position{}, false
	}
	if last.To.Rank != pawn.Position.Rank || abs(last.To.File-pawn.Position.File) != 1 {
		return chess.Position{}, false
	}

	// The double-pushed pawn must still be where it landed.
	victim, occupied := board.PieceAt(last.To)
	if !occupied || victim.Kind != chess.Pawn || victim.Colour == pawn.Colour {
		return chess.Position{}, false
	}

	to, ok := last.To.Offset(0, chess.ColourOffset(pawn.Colour))
	if !ok || !board.IsEmpty(to) {
		return chess.Position{}, false
	}
	return to, true
}

// enPassantVictim returns the square of the pawn removed when a pawn of the
// given colour captures en passant onto to.
func enPassantVictim(colour chess.Colour, to chess.Position) chess.Position {
	return chess.Position{File: to.File, Rank: to.Rank + enPassantOffset(colour)}
}

// enPassantOffset is the rank offset from an en passant destination to the
// captured pawn: one rank back towards the capturing side.
func enPassantOffset(colour chess.Colour) int {
	return -chess.ColourOffset(colour)
}
