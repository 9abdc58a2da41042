package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status classifies a side's situation.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsTerminal reports whether no further moves can be made.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// GameStatus returns the status of the given colour.
func GameStatus(board *chess.Board, colour chess.Colour, history chess.History) Status {
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour, history)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}

// IsCheckmate returns true if the colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour, history chess.History) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour, history)
}

// IsStalemate returns true if the colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour, history chess.History) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour, history)
}
