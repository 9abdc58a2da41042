package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMove_IsDoublePawnPush(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want bool
	}{
		{"white e2e4", NewMove(NewPiece(Pawn, White, Pos(4, 1)), Pos(4, 3)), true},
		{"black d7d5", NewMove(NewPiece(Pawn, Black, Pos(3, 6)), Pos(3, 4)), true},
		{"white single push", NewMove(NewPiece(Pawn, White, Pos(4, 1)), Pos(4, 2)), false},
		{"white from third rank", NewMove(NewPiece(Pawn, White, Pos(4, 2)), Pos(4, 4)), false},
		{"rook two squares", NewMove(NewPiece(Rook, Black, Pos(3, 6)), Pos(3, 4)), false},
		{"black wrong direction", NewMove(NewPiece(Pawn, Black, Pos(3, 6)), Pos(3, 8)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.IsDoublePawnPush(); got != tt.want {
				t.Errorf("IsDoublePawnPush(%v) = %v; want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestMove_String(t *testing.T) {
	m := NewMove(NewPiece(Knight, White, Pos(6, 0)), Pos(5, 2))
	if got := m.String(); got != "Ng1f3" {
		t.Errorf("String() = %q; want %q", got, "Ng1f3")
	}
}

func TestHistory(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Error("Last() on empty history reports a move")
	}

	m1 := NewMove(NewPiece(Pawn, White, Pos(4, 1)), Pos(4, 3))
	m2 := NewMove(NewPiece(Pawn, Black, Pos(4, 6)), Pos(4, 4))

	h1 := h.Append(m1)
	h2 := h1.Append(m2)

	if h.Len() != 0 || h1.Len() != 1 || h2.Len() != 2 {
		t.Fatalf("lengths = %d/%d/%d; want 0/1/2", h.Len(), h1.Len(), h2.Len())
	}
	if last, _ := h2.Last(); last != m2 {
		t.Errorf("Last() = %v; want %v", last, m2)
	}
	if first, _ := h2.At(0); first != m1 {
		t.Errorf("At(0) = %v; want %v", first, m1)
	}
	if _, ok := h2.At(2); ok {
		t.Error("At(2) beyond the end reports a move")
	}
	if _, ok := h2.At(-1); ok {
		t.Error("At(-1) reports a move")
	}
}

func TestHistory_AppendDoesNotAlias(t *testing.T) {
	base := make(History, 1, 4)
	base[0] = NewMove(NewPiece(Pawn, White, Pos(0, 1)), Pos(0, 2))

	a := base.Append(NewMove(NewPiece(Pawn, Black, Pos(0, 6)), Pos(0, 5)))
	b := base.Append(NewMove(NewPiece(Pawn, Black, Pos(7, 6)), Pos(7, 4)))

	lastA, _ := a.Last()
	if lastA.From != Pos(0, 6) {
		t.Errorf("second Append overwrote the first branch: %v", lastA)
	}
	if diff := cmp.Diff(History{base[0]}, History(base)); diff != "" {
		t.Errorf("base changed (-want +got):\n%s", diff)
	}
	if b.Len() != 2 {
		t.Errorf("b.Len() = %d; want 2", b.Len())
	}
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot()
	if s.ToMove != White || s.Ply() != 0 || s.MoveNumber() != 1 {
		t.Fatalf("NewSnapshot() = %+v", s)
	}

	m := NewMove(NewPiece(Pawn, White, Pos(4, 1)), Pos(4, 3))
	next := s.Next(s.Board.Moved(m.From, m.To), m)

	if next.ToMove != Black {
		t.Errorf("Next().ToMove = %v; want Black", next.ToMove)
	}
	if next.Ply() != 1 || s.Ply() != 0 {
		t.Errorf("Ply() = %d (orig %d); want 1 (orig 0)", next.Ply(), s.Ply())
	}
	if !s.Board.IsEmpty(Pos(4, 3)) {
		t.Error("original snapshot board was mutated")
	}
	if next.MoveNumber() != 1 {
		t.Errorf("MoveNumber() after 1 ply = %d; want 1", next.MoveNumber())
	}
}

func TestSnapshot_StartPly(t *testing.T) {
	s := Snapshot{Board: NewInitialBoard(), ToMove: Black, StartPly: 79}
	if s.MoveNumber() != 40 {
		t.Fatalf("MoveNumber() = %d; want 40", s.MoveNumber())
	}

	m := NewMove(NewPiece(King, Black, Pos(4, 7)), Pos(3, 7))
	next := s.Next(s.Board, m)
	if next.StartPly != 79 || next.MoveNumber() != 41 {
		t.Errorf("Next() StartPly = %d, MoveNumber() = %d; want 79, 41", next.StartPly, next.MoveNumber())
	}
}
