package scenario

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ReplaySAN plays a space-separated list of SAN moves from the standard
// starting position and returns the resulting snapshot. Move numbers such
// as "1." are skipped. Castling moves the rook on the board, but only the
// king's step is recorded in the history.
func ReplaySAN(moves string) (chess.Snapshot, error) {
	game := notnil.NewGame()
	for _, tok := range strings.Fields(moves) {
		if isMoveNumber(tok) {
			continue
		}
		if err := game.MoveStr(tok); err != nil {
			return chess.Snapshot{}, fmt.Errorf("san %q: %v: %w", tok, err, errors.ErrIllegalMove)
		}
	}

	positions := game.Positions()
	var history chess.History
	for i, m := range game.Moves() {
		piece, err := convertPiece(positions[i].Board().Piece(m.S1()), m.S1())
		if err != nil {
			return chess.Snapshot{}, err
		}
		history = history.Append(chess.NewMove(piece, convertSquare(m.S2())))
	}

	final := game.Position()
	var pieces []chess.Piece
	for sq, p := range final.Board().SquareMap() {
		piece, err := convertPiece(p, sq)
		if err != nil {
			return chess.Snapshot{}, err
		}
		pieces = append(pieces, piece)
	}
	board, err := chess.NewBoard(pieces...)
	if err != nil {
		return chess.Snapshot{}, err
	}

	toMove := chess.White
	if final.Turn() == notnil.Black {
		toMove = chess.Black
	}
	return chess.Snapshot{Board: board, History: history, ToMove: toMove}, nil
}

// isMoveNumber reports whether tok is a move number like "12." or "3...".
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	return strings.Trim(digits, "0123456789") == ""
}

func convertSquare(sq notnil.Square) chess.Position {
	return chess.Pos(int(sq.File()), int(sq.Rank()))
}

func convertPiece(p notnil.Piece, sq notnil.Square) (chess.Piece, error) {
	var kind chess.PieceKind
	switch p.Type() {
	case notnil.Pawn:
		kind = chess.Pawn
	case notnil.Knight:
		kind = chess.Knight
	case notnil.Bishop:
		kind = chess.Bishop
	case notnil.Rook:
		kind = chess.Rook
	case notnil.Queen:
		kind = chess.Queen
	case notnil.King:
		kind = chess.King
	default:
		return chess.Piece{}, fmt.Errorf("no piece on %s: %w", sq, errors.ErrEmptySquare)
	}
	colour := chess.White
	if p.Color() == notnil.Black {
		colour = chess.Black
	}
	return chess.NewPiece(kind, colour, convertSquare(sq)), nil
}
