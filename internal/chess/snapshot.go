package chess

// Snapshot is the game state owned by the caller: the board, the moves that
// led to it and the side to move. Engine functions borrow it read-only.
type Snapshot struct {
	Board   *Board
	History History
	ToMove  Colour

	// StartPly counts the half-moves played before History begins, as
	// when a position is loaded from FEN part way through a game.
	StartPly int
}

// NewSnapshot returns the standard starting position with White to move.
func NewSnapshot() Snapshot {
	return Snapshot{Board: NewInitialBoard(), ToMove: White}
}

// Next returns the snapshot after m has been played on board, with the
// history extended and the turn advanced.
func (s Snapshot) Next(board *Board, m Move) Snapshot {
	return Snapshot{
		Board:    board,
		History:  s.History.Append(m),
		ToMove:   AdvanceTurn(s.ToMove),
		StartPly: s.StartPly,
	}
}

// Ply returns the number of half-moves recorded.
func (s Snapshot) Ply() int {
	return s.History.Len()
}

// MoveNumber returns the full-move number of the side to move, counting
// from 1 with White's first move.
func (s Snapshot) MoveNumber() int {
	return (s.StartPly+s.Ply())/2 + 1
}
