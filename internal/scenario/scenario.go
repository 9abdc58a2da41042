// Package scenario loads rule scenarios from YAML files and evaluates
// their queries against the engine.
//
// A scenario describes a position, either as a list of pieces, a FEN
// string or a SAN move list played from the start, and a sequence of
// queries with optional expectations:
//
//	scenarios:
//	  - name: en passant
//	    pieces: [Ke1, ke8, Pe5, pd5]
//	    history: [d7d5]
//	    queries:
//	      - {op: moves, square: e5, expect: [e6, d6]}
//	      - {op: valid, square: e5, target: d6, expect: true, offset: -1}
package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Document is the top level of a scenario file.
type Document struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one position plus the queries to run against it.
type Scenario struct {
	Name    string   `yaml:"name"`
	Pieces  []string `yaml:"pieces"`
	FEN     string   `yaml:"fen"`
	SAN     string   `yaml:"san"`
	ToMove  string   `yaml:"to_move"`
	History []string `yaml:"history"`
	Queries []Query  `yaml:"queries"`

	File string `yaml:"-"`
	Line int    `yaml:"-"`
}

// Query is a single question asked of a scenario's position.
type Query struct {
	Op     string    `yaml:"op"`
	Square string    `yaml:"square"`
	Target string    `yaml:"target"`
	Colour string    `yaml:"colour"`
	Kind   string    `yaml:"kind"`
	Expect yaml.Node `yaml:"expect"`
	Offset *int      `yaml:"offset"`

	Line int `yaml:"-"`
}

var (
	scenarioFields = []string{"name", "pieces", "fen", "san", "to_move", "history", "queries"}
	queryFields    = []string{"op", "square", "target", "colour", "kind", "expect", "offset"}
)

// UnmarshalYAML records the line a scenario starts on.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type plain Scenario
	if err := checkFields(value, scenarioFields); err != nil {
		return err
	}
	if err := value.Decode((*plain)(s)); err != nil {
		return err
	}
	s.Line = value.Line
	return nil
}

// UnmarshalYAML records the line a query starts on.
func (q *Query) UnmarshalYAML(value *yaml.Node) error {
	type plain Query
	if err := checkFields(value, queryFields); err != nil {
		return err
	}
	if err := value.Decode((*plain)(q)); err != nil {
		return err
	}
	q.Line = value.Line
	return nil
}

// checkFields rejects mapping keys outside known. Decoding a node does not
// inherit the decoder's KnownFields setting, so nested types check here.
func checkFields(value *yaml.Node, known []string) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("line %d: field %s not known", key.Line, key.Value)
		}
	}
	return nil
}

// HasExpectation reports whether the query carries an expected result.
func (q *Query) HasExpectation() bool {
	return q.Expect.Kind != 0
}

// Load reads and parses a scenario file.
func Load(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return Parse(bytes.NewReader(data), filename)
}

// Parse decodes scenarios from r. The name is used in error messages and
// recorded on each scenario.
func Parse(r io.Reader, name string) ([]Scenario, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, &errors.ParseError{Err: errors.ErrInvalidScenario, File: name, Expected: "scenarios", Got: "empty document"}
		}
		return nil, &errors.ParseError{Err: fmt.Errorf("%v: %w", err, errors.ErrInvalidScenario), File: name}
	}

	for i := range doc.Scenarios {
		sc := &doc.Scenarios[i]
		sc.File = name
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario %d", i+1)
		}
		if err := sc.check(); err != nil {
			return nil, err
		}
	}
	return doc.Scenarios, nil
}

// check validates the shape of a scenario without building its position.
func (s *Scenario) check() error {
	sources := 0
	for _, set := range []bool{len(s.Pieces) > 0, s.FEN != "", s.SAN != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return s.parseError("exactly one of pieces, fen or san", fmt.Sprintf("%d", sources))
	}
	if s.SAN != "" && len(s.History) > 0 {
		return s.parseError("no history with san", "history")
	}
	for i := range s.Queries {
		q := &s.Queries[i]
		if _, ok := operations[q.Op]; !ok {
			return &errors.ParseError{Err: errors.ErrInvalidScenario, File: s.File, Line: q.Line, Expected: "query op", Got: fmt.Sprintf("%q", q.Op)}
		}
	}
	return nil
}

func (s *Scenario) parseError(expected, got string) error {
	return &errors.ParseError{
		Err:      fmt.Errorf("%q: %w", s.Name, errors.ErrInvalidScenario),
		File:     s.File,
		Line:     s.Line,
		Expected: expected,
		Got:      got,
	}
}
