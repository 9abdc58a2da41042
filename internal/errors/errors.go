// Package errors provides sentinel errors and error types for the chess rule engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrKingNotFound indicates a board without a king of the queried colour.
	// Engine queries that need to locate a king panic with an error wrapping it.
	ErrKingNotFound = errors.New("king not found")

	// ErrDuplicateKing indicates a board with more than one king of a colour.
	ErrDuplicateKing = errors.New("more than one king of a colour")

	// ErrOffBoard indicates a coordinate outside the 8x8 board.
	ErrOffBoard = errors.New("position off the board")

	// ErrSquareOccupied indicates two pieces placed on the same square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrEmptySquare indicates a query for a piece on an empty square.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrWrongTurn indicates a move by the side not on move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion of a non-pawn or to Pawn/King.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidScenario indicates a malformed scenario file or query.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrExpectationFailed indicates a query result that differs from its expectation.
	ErrExpectationFailed = errors.New("expectation failed")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// QueryError wraps errors with scenario context, including the scenario
// name, the query index and the square being queried. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type QueryError struct {
	Err      error  // The underlying error
	Scenario string // Scenario name
	Query    int    // 1-based query number (0 if not applicable)
	Op       string // Query operation (moves, valid, check, ...)
	Square   string // Square the query refers to (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *QueryError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}

	parts = append(parts, fmt.Sprintf("scenario %q", e.Scenario))

	if e.Query > 0 {
		parts = append(parts, fmt.Sprintf("query %d", e.Query))
	}

	if e.Op != "" {
		parts = append(parts, e.Op)
	}

	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the QueryError wrapper.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for FEN strings and scenario files.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
