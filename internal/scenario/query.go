package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome is the result of one query.
type Outcome struct {
	Query   int    // 1-based
	Op      string // operation name
	Subject string // square or colour queried
	Got     string // result, rendered as text
	Want    string // expectation, empty when the query has none
	Passed  bool
	Err     error
}

// Report collects the outcomes of one scenario.
type Report struct {
	Scenario string
	File     string
	FEN      string // starting position
	Outcomes []Outcome
	Err      error // failure to build the position or to finish the queries
}

// Failed reports whether the scenario could not be run or any query failed.
func (r *Report) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, o := range r.Outcomes {
		if !o.Passed {
			return true
		}
	}
	return false
}

// operation evaluates a query, returning the rendered result and the
// snapshot later queries see.
type operation func(s chess.Snapshot, q *Query) (string, chess.Snapshot, error)

var operations = map[string]operation{
	"moves":  opMoves(engine.LegalMoves),
	"pseudo": opMoves(engine.GenerateMoves),
	"valid":  opValid,
	"check": opColour(func(s chess.Snapshot, c chess.Colour) string {
		return strconv.FormatBool(engine.IsInCheck(s.Board, c))
	}),
	"checkmate": opColour(func(s chess.Snapshot, c chess.Colour) string {
		return strconv.FormatBool(engine.IsCheckmate(s.Board, c, s.History))
	}),
	"stalemate": opColour(func(s chess.Snapshot, c chess.Colour) string {
		return strconv.FormatBool(engine.IsStalemate(s.Board, c, s.History))
	}),
	"status": opColour(func(s chess.Snapshot, c chess.Colour) string {
		return engine.GameStatus(s.Board, c, s.History).String()
	}),
	"promote": opPromote,
	"play":    opPlay,
}

// Run builds the scenario's position and evaluates its queries in order.
// A "play" or "promote" query changes the position seen by the queries
// after it.
func (s *Scenario) Run() *Report {
	report := &Report{Scenario: s.Name, File: s.File}

	snap, err := s.Snapshot()
	if err != nil {
		report.Err = err
		return report
	}
	report.FEN = engine.SnapshotToFEN(snap)

	for i := range s.Queries {
		q := &s.Queries[i]
		outcome := Outcome{Query: i + 1, Op: q.Op, Subject: q.subject()}

		got, next, err := operations[q.Op](snap, q)
		if err != nil {
			outcome.Err = s.queryError(i+1, q, err)
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}
		snap = next
		outcome.Got = got
		outcome.Passed = true

		if q.HasExpectation() {
			want, err := q.expected()
			if err != nil {
				outcome.Passed = false
				outcome.Err = s.queryError(i+1, q, err)
			} else {
				outcome.Want = want
				if got != want {
					outcome.Passed = false
					outcome.Err = s.queryError(i+1, q, fmt.Errorf("got %s, want %s: %w", got, want, errors.ErrExpectationFailed))
				}
			}
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report
}

func (s *Scenario) queryError(n int, q *Query, err error) error {
	return &errors.QueryError{Err: err, Scenario: s.Name, Query: n, Op: q.Op, Square: q.Square, File: s.File}
}

func (q *Query) subject() string {
	switch {
	case q.Square != "" && q.Target != "":
		return q.Square + "-" + q.Target
	case q.Square != "":
		return q.Square
	}
	return q.Colour
}

// expected renders the expectation the way the operation renders results:
// square lists space-separated, booleans and statuses as words, and an
// optional en passant offset after a validity verdict.
func (q *Query) expected() (string, error) {
	var want string
	switch q.Expect.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := q.Expect.Decode(&items); err != nil {
			return "", fmt.Errorf("expect: %v: %w", err, errors.ErrInvalidScenario)
		}
		want = strings.Join(items, " ")
	case yaml.ScalarNode:
		want = q.Expect.Value
	default:
		return "", fmt.Errorf("expect: want a list or a scalar: %w", errors.ErrInvalidScenario)
	}
	if q.Op == "valid" {
		offset := 0
		if q.Offset != nil {
			offset = *q.Offset
		}
		want = renderValid(want == "true", offset)
	}
	return want, nil
}

// pieceOn returns the piece on the query's square.
func (q *Query) pieceOn(s chess.Snapshot) (chess.Piece, error) {
	pos, err := chess.ParsePosition(q.Square)
	if err != nil {
		return chess.Piece{}, err
	}
	piece, ok := s.Board.PieceAt(pos)
	if !ok {
		return chess.Piece{}, fmt.Errorf("%s: %w", pos, errors.ErrEmptySquare)
	}
	return piece, nil
}

// colour returns the query's colour, defaulting to the side to move.
func (q *Query) colour(s chess.Snapshot) (chess.Colour, error) {
	if q.Colour == "" {
		return s.ToMove, nil
	}
	return chess.ParseColour(q.Colour)
}

func opMoves(gen func(chess.Piece, *chess.Board, chess.History) []chess.Position) operation {
	return func(s chess.Snapshot, q *Query) (string, chess.Snapshot, error) {
		piece, err := q.pieceOn(s)
		if err != nil {
			return "", s, err
		}
		return renderSquares(gen(piece, s.Board, s.History)), s, nil
	}
}

func opColour(eval func(chess.Snapshot, chess.Colour) string) operation {
	return func(s chess.Snapshot, q *Query) (string, chess.Snapshot, error) {
		c, err := q.colour(s)
		if err != nil {
			return "", s, err
		}
		return eval(s, c), s, nil
	}
}

func opValid(s chess.Snapshot, q *Query) (string, chess.Snapshot, error) {
	piece, err := q.pieceOn(s)
	if err != nil {
		return "", s, err
	}
	target, err := chess.ParsePosition(q.Target)
	if err != nil {
		return "", s, err
	}
	valid, offset := engine.IsMoveValid(piece, target, s.Board, s.History)
	return renderValid(valid, offset), s, nil
}

func opPromote(s chess.Snapshot, q *Query) (string, chess.Snapshot, error) {
	pos, err := chess.ParsePosition(q.Square)
	if err != nil {
		return "", s, err
	}
	kind, err := chess.ParsePieceKind(q.Kind)
	if err != nil {
		return "", s, err
	}
	next, err := engine.PromoteAt(s, pos, kind)
	if err != nil {
		return "", s, err
	}
	piece, _ := next.Board.PieceAt(pos)
	return piece.String(), next, nil
}

func opPlay(s chess.Snapshot, q *Query) (string, chess.Snapshot, error) {
	from, err := chess.ParsePosition(q.Square)
	if err != nil {
		return "", s, err
	}
	to, err := chess.ParsePosition(q.Target)
	if err != nil {
		return "", s, err
	}
	next, err := engine.MakeMove(s, from, to)
	if err != nil {
		return "", s, err
	}
	return engine.SnapshotToFEN(next), next, nil
}

// renderSquares writes destinations in generation order.
func renderSquares(squares []chess.Position) string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}

func renderValid(valid bool, offset int) string {
	if offset != 0 {
		return fmt.Sprintf("%t (en passant %+d)", valid, offset)
	}
	return strconv.FormatBool(valid)
}

// Operations lists the query operations in sorted order.
func Operations() []string {
	ops := maps.Keys(operations)
	slices.Sort(ops)
	return ops
}
