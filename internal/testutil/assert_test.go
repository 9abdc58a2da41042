package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// Failure paths would need a fake *testing.T, so these exercise the
// success paths and the helpers that are testable on their own.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []chess.Position{chess.Pos(0, 1)}, []chess.Position{chess.Pos(0, 1)})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertErrors_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"), "expected error from %s", "operation")

	wrapped := fmt.Errorf("e9: %w", chesserrors.ErrOffBoard)
	AssertErrorIs(t, wrapped, chesserrors.ErrOffBoard)
}

func TestAssertPanicsWith_Success(t *testing.T) {
	AssertPanicsWith(t, chesserrors.ErrKingNotFound, func() {
		panic(fmt.Errorf("white: %w", chesserrors.ErrKingNotFound))
	})
}

func TestAssertConditions_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, 1 == 2)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
		{"non-string format", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestBoardFixtures(t *testing.T) {
	b := MustBoard(t, "Ke1", "ke8", "Pe2", "pd7")

	AssertEqual(t, b.Len(), 4)
	AssertEqual(t, PieceOn(t, b, "d7"), chess.NewPiece(chess.Pawn, chess.Black, chess.Pos(3, 6)))
	AssertEqual(t, Squares(t, "a1", "h8"), []chess.Position{chess.Pos(0, 0), chess.Pos(7, 7)})
	AssertEqual(t, Squares(t), []chess.Position(nil))

	h := DoublePush(t, chess.Black, "d7")
	AssertEqual(t, h.Len(), 1)
	AssertTrue(t, h[0].IsDoublePawnPush())
	AssertEqual(t, h[0].To, Square(t, "d5"))
}
