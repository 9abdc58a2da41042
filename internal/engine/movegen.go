// Package engine provides chess move generation, legality checking and
// board manipulation over immutable board snapshots.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction tables. The order of each table is the order destinations are
// produced in, so changing it changes GenerateMoves output.
var (
	// right, left, up, down
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	// up-left, down-left, up-right, down-right
	diagonalDirs = [][2]int{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}

	queenDirs = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightOffsets = [][2]int{{-2, 1}, {-2, -1}, {2, 1}, {2, -1}, {-1, 2}, {-1, -2}, {1, 2}, {1, -2}}

	// delta-file outer, delta-rank inner, zero offset skipped
	kingSteps = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// GenerateMoves returns the pseudo-legal destinations of piece: squares it
// may move to under its movement pattern and the blocking/capture rules,
// without checking whether the move leaves its own king in check.
//
// Output order is fixed:
//   - Rook: rays right, left, up, down.
//   - Bishop: rays up-left, down-left, up-right, down-right.
//   - Queen: the rook rays, then the bishop rays.
//   - Knight: (-2,+1) (-2,-1) (+2,+1) (+2,-1) (-1,+2) (-1,-2) (+1,+2) (+1,-2).
//   - King: neighbours in file-major order, skipping squares any enemy piece
//     other than the enemy king could move to pseudo-legally.
//   - Pawn: single push, double push, captures towards the lower then the
//     higher file, en passant.
//
// Each ray includes empty squares, includes a square holding an enemy
// piece and then stops, and stops before a friendly piece.
func GenerateMoves(piece chess.Piece, board *chess.Board, history chess.History) []chess.Position {
	switch piece.Kind {
	case chess.Rook:
		return slidingMoves(piece, board, straightDirs)
	case chess.Bishop:
		return slidingMoves(piece, board, diagonalDirs)
	case chess.Queen:
		return slidingMoves(piece, board, queenDirs)
	case chess.Knight:
		return stepMoves(piece, board, knightOffsets)
	case chess.King:
		return kingMoves(piece, board, history)
	case chess.Pawn:
		return pawnMoves(piece, board, history)
	}
	return nil
}

// slidingMoves walks each ray outward from the piece.
func slidingMoves(piece chess.Piece, board *chess.Board, dirs [][2]int) []chess.Position {
	var moves []chess.Position
	for _, dir := range dirs {
		to, ok := piece.Position.Offset(dir[0], dir[1])
		for ok {
			if target, occupied := board.PieceAt(to); occupied {
				if target.Colour != piece.Colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves returns the in-bounds offsets that are empty or hold an enemy piece.
func stepMoves(piece chess.Piece, board *chess.Board, offsets [][2]int) []chess.Position {
	var moves []chess.Position
	for _, off := range offsets {
		to, ok := piece.Position.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if target, occupied := board.PieceAt(to); occupied && target.Colour == piece.Colour {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// kingMoves returns the king's steps minus the squares reachable by the
// pseudo-legal moves of the enemy pieces. The enemy king is left out of
// that set; adjacency of the two kings is left to the legality filter.
func kingMoves(king chess.Piece, board *chess.Board, history chess.History) []chess.Position {
	covered := make(map[chess.Position]bool)
	for _, p := range board.PiecesOf(king.Colour.Opposite()) {
		if p.Kind == chess.King {
			continue
		}
		for _, to := range GenerateMoves(p, board, history) {
			covered[to] = true
		}
	}

	var moves []chess.Position
	for _, to := range stepMoves(king, board, kingSteps) {
		if !covered[to] {
			moves = append(moves, to)
		}
	}
	return moves
}
