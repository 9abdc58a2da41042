package scenario

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Snapshot builds the position the scenario describes. The board must hold
// exactly one king per side.
func (s *Scenario) Snapshot() (chess.Snapshot, error) {
	var (
		snap chess.Snapshot
		err  error
	)
	switch {
	case s.SAN != "":
		snap, err = ReplaySAN(s.SAN)
	case s.FEN != "":
		snap, err = engine.NewSnapshotFromFEN(s.FEN)
	default:
		snap, err = snapshotFromPieces(s.Pieces)
	}
	if err != nil {
		return chess.Snapshot{}, s.wrap(err)
	}

	if s.ToMove != "" {
		if snap.ToMove, err = chess.ParseColour(s.ToMove); err != nil {
			return chess.Snapshot{}, s.wrap(err)
		}
	}

	for _, entry := range s.History {
		move, err := parseHistoryMove(snap.Board, entry)
		if err != nil {
			return chess.Snapshot{}, s.wrap(err)
		}
		snap.History = snap.History.Append(move)
	}

	if err := snap.Board.Validate(); err != nil {
		return chess.Snapshot{}, s.wrap(err)
	}
	return snap, nil
}

func (s *Scenario) wrap(err error) error {
	return &errors.QueryError{Err: err, Scenario: s.Name, File: s.File}
}

// snapshotFromPieces places pieces written as "Ke1" (White) or "ke8" (Black).
func snapshotFromPieces(pieces []string) (chess.Snapshot, error) {
	parsed := make([]chess.Piece, 0, len(pieces))
	for _, p := range pieces {
		piece, err := chess.ParsePiece(p)
		if err != nil {
			return chess.Snapshot{}, fmt.Errorf("%w: %w", errors.ErrInvalidScenario, err)
		}
		parsed = append(parsed, piece)
	}
	board, err := chess.NewBoard(parsed...)
	if err != nil {
		return chess.Snapshot{}, err
	}
	return chess.Snapshot{Board: board, ToMove: chess.White}, nil
}

// parseHistoryMove turns "d7d5" into a history entry. The moved piece is
// the one standing on the destination square, since history records moves
// that have already been played.
func parseHistoryMove(board *chess.Board, entry string) (chess.Move, error) {
	entry = strings.TrimSpace(entry)
	if len(entry) != 4 {
		return chess.Move{}, fmt.Errorf("history entry %q: want from-to squares such as d7d5: %w", entry, errors.ErrInvalidScenario)
	}
	from, err := chess.ParsePosition(entry[:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("history entry %q: %w", entry, err)
	}
	to, err := chess.ParsePosition(entry[2:])
	if err != nil {
		return chess.Move{}, fmt.Errorf("history entry %q: %w", entry, err)
	}
	piece, ok := board.PieceAt(to)
	if !ok {
		return chess.Move{}, fmt.Errorf("history entry %q: %s: %w", entry, to, errors.ErrEmptySquare)
	}
	return chess.NewMove(piece.At(from), to), nil
}
