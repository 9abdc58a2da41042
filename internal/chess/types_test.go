package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if AdvanceTurn(White) != Black || AdvanceTurn(AdvanceTurn(White)) != White {
		t.Error("AdvanceTurn() does not alternate")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q/%q", White, Black)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    Colour
		wantErr bool
	}{
		{"white", White, false},
		{"W", White, false},
		{" Black ", Black, false},
		{"b", Black, false},
		{"red", White, true},
	}
	for _, tt := range tests {
		got, err := ParseColour(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColour(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColour(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestPieceKind(t *testing.T) {
	tests := []struct {
		kind   PieceKind
		name   string
		letter byte
	}{
		{Pawn, "Pawn", 'P'},
		{Knight, "Knight", 'N'},
		{Bishop, "Bishop", 'B'},
		{Rook, "Rook", 'R'},
		{Queen, "Queen", 'Q'},
		{King, "King", 'K'},
		{PieceKind(42), "Unknown", '?'},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("PieceKind(%d).String() = %q; want %q", int(tt.kind), got, tt.name)
		}
		if got := tt.kind.Letter(); got != tt.letter {
			t.Errorf("PieceKind(%d).Letter() = %c; want %c", int(tt.kind), got, tt.letter)
		}
	}
	if PieceKind(-1).Valid() || PieceKind(NumPieceKinds).Valid() {
		t.Error("out-of-range kinds report Valid")
	}
}

func TestParsePieceKind(t *testing.T) {
	tests := []struct {
		in      string
		want    PieceKind
		wantErr bool
	}{
		{"queen", Queen, false},
		{"Knight", Knight, false},
		{"R", Rook, false},
		{"b", Bishop, false},
		{"none", Pawn, true},
		{"", Pawn, true},
	}
	for _, tt := range tests {
		got, err := ParsePieceKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePieceKind(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePieceKind(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestPosition_Offset(t *testing.T) {
	tests := []struct {
		name   string
		from   Position
		df, dr int
		want   Position
		wantOK bool
	}{
		{"inside", Pos(3, 3), 1, 2, Pos(4, 5), true},
		{"left edge underflow", Pos(0, 3), -1, 0, Pos(-1, 3), false},
		{"bottom edge underflow", Pos(3, 0), 0, -2, Pos(3, -2), false},
		{"top edge overflow", Pos(7, 7), 0, 1, Pos(7, 8), false},
		{"corner to corner", Pos(0, 0), 7, 7, Pos(7, 7), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.from.Offset(tt.df, tt.dr)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("%v.Offset(%d, %d) = %v, %v; want %v, %v", tt.from, tt.df, tt.dr, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"a1", Pos(0, 0), false},
		{"h8", Pos(7, 7), false},
		{"e4", Pos(4, 3), false},
		{"i1", Position{}, true},
		{"a9", Position{}, true},
		{"a0", Position{}, true},
		{"e", Position{}, true},
		{"e44", Position{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if tt.wantErr {
			if !errors.Is(err, chesserrors.ErrOffBoard) {
				t.Errorf("ParsePosition(%q) error = %v; want ErrOffBoard", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePosition(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("ParsePosition(%q).String() = %q", tt.in, got.String())
		}
	}
}

func TestNewPosition(t *testing.T) {
	if _, err := NewPosition(7, 0); err != nil {
		t.Errorf("NewPosition(7, 0) error = %v", err)
	}
	if _, err := NewPosition(0, 8); !errors.Is(err, chesserrors.ErrOffBoard) {
		t.Errorf("NewPosition(0, 8) error = %v; want ErrOffBoard", err)
	}
	if got := Pos(9, -1).String(); got != "(9,-1)" {
		t.Errorf("off-board String() = %q", got)
	}
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		in      string
		want    Piece
		wantErr bool
	}{
		{"Ke1", NewPiece(King, White, Pos(4, 0)), false},
		{"pd7", NewPiece(Pawn, Black, Pos(3, 6)), false},
		{"nb8", NewPiece(Knight, Black, Pos(1, 7)), false},
		{"Xe1", Piece{}, true},
		{"Ke9", Piece{}, true},
		{"K", Piece{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePiece(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePiece(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParsePiece(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
		if got.String() != tt.in {
			t.Errorf("ParsePiece(%q).String() = %q", tt.in, got.String())
		}
	}
}

func TestRanks(t *testing.T) {
	if PawnStartRank(White) != 1 || PawnStartRank(Black) != 6 {
		t.Error("PawnStartRank mismatch")
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("PromotionRank mismatch")
	}
	if ColourOffset(White) != 1 || ColourOffset(Black) != -1 {
		t.Error("ColourOffset mismatch")
	}
}
