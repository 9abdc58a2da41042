package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewSnapshotFromFEN creates a snapshot from a FEN string. Castling rights
// and the halfmove clock are accepted but not kept; the fullmove number is
// kept in StartPly. An en passant square becomes a synthetic history entry:
// the double pawn push that created it, which is all the engine needs to
// offer the capture.
func NewSnapshotFromFEN(fen string) (chess.Snapshot, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Snapshot{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Snapshot{}, err
	}
	board, err := chess.NewBoard(pieces...)
	if err != nil {
		return chess.Snapshot{}, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return chess.Snapshot{}, err
	}

	history, err := parseEnPassant(board, toMove, parts)
	if err != nil {
		return chess.Snapshot{}, err
	}

	startPly, err := parseStartPly(toMove, history, parts)
	if err != nil {
		return chess.Snapshot{}, err
	}

	return chess.Snapshot{Board: board, History: history, ToMove: toMove, StartPly: startPly}, nil
}

// MustSnapshotFromFEN is like NewSnapshotFromFEN but panics on error.
func MustSnapshotFromFEN(fen string) chess.Snapshot {
	s, err := NewSnapshotFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]chess.Piece, error) {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "8 ranks", Got: fmt.Sprintf("%d", len(ranks))}
	}

	var pieces []chess.Piece
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind, ok := chess.KindFromLetter(byte(c))
				if !ok {
					return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				pos, err := chess.NewPosition(file, rank)
				if err != nil {
					return nil, fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				pieces = append(pieces, chess.NewPiece(kind, colour, pos))
				file++
			}
		}
		if file != chess.BoardSize {
			return nil, fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return pieces, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseEnPassant parses the en passant target square field into the
// double push that made it available.
func parseEnPassant(board *chess.Board, toMove chess.Colour, parts []string) (chess.History, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return nil, nil
	}
	target, err := chess.ParsePosition(parts[3])
	if err != nil {
		return nil, fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := toMove.Opposite()
	dir := chess.ColourOffset(mover)
	if target.Rank != chess.PawnStartRank(mover)+dir {
		return nil, fmt.Errorf("en passant square %s on wrong rank: %w", target, errors.ErrInvalidFEN)
	}

	from := chess.Position{File: target.File, Rank: target.Rank - dir}
	to := chess.Position{File: target.File, Rank: target.Rank + dir}
	pawn, ok := board.PieceAt(to)
	if !ok || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return nil, fmt.Errorf("en passant square %s without a pawn on %s: %w", target, to, errors.ErrInvalidFEN)
	}

	return chess.History{chess.NewMove(pawn.At(from), to)}, nil
}

// parseStartPly checks the clock fields and converts the fullmove number
// into the half-moves played before history. A synthetic en passant entry
// counts as one of them.
func parseStartPly(toMove chess.Colour, history chess.History, parts []string) (int, error) {
	if len(parts) > 4 {
		if n, err := strconv.Atoi(parts[4]); err != nil || n < 0 {
			return 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	if len(parts) < 6 {
		return 0, nil
	}
	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}

	ply := 2 * (fullmove - 1)
	if toMove == chess.Black {
		ply++
	}
	return max(ply-history.Len(), 0), nil
}

// SnapshotToFEN converts a snapshot to a FEN string. Castling rights are
// always "-". The halfmove clock is not tracked and is written as 0.
func SnapshotToFEN(s chess.Snapshot) string {
	var sb strings.Builder

	writePiecePositions(&sb, s.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s.ToMove)
	sb.WriteString(" - ")
	writeEnPassant(&sb, s.History)
	fmt.Fprintf(&sb, " 0 %d", s.MoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.Pos(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the square skipped by a double push on the last
// move, or "-".
func writeEnPassant(sb *strings.Builder, history chess.History) {
	last, ok := history.Last()
	if !ok || !last.IsDoublePawnPush() {
		sb.WriteByte('-')
		return
	}
	skipped := chess.Position{File: last.To.File, Rank: (last.From.Rank + last.To.Rank) / 2}
	sb.WriteString(skipped.String())
}
