// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field separator and arity of a textual edge descriptor: "from,to,cost".
const (
	fieldSep      = ","
	fieldsPerEdge = 3
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From int     `json:"from" yaml:"from"`
	To   int     `json:"to" yaml:"to"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// String renders the edge in descriptor form.
func (e Edge) String() string {
	return fmt.Sprintf("%d,%d,%s", e.From, e.To, strconv.FormatFloat(e.Cost, 'g', -1, 64))
}

// ParseEdge parses one "from,to,cost" descriptor.
//
// Fields are trimmed of surrounding whitespace. Fields past the third are
// ignored. from/to must be base-10 integers; cost must be a finite,
// non-negative number. Range checks against a point count happen in Build.
//
// Errors: *EdgeError (matches ErrMalformedEdge) wrapping ErrTooFewFields,
// ErrBadPoint, ErrBadCost or matrix.ErrNegativeCost. Index is 1.
func ParseEdge(line string) (Edge, error) {
	e, err := parseFields(line)
	if err != nil {
		return Edge{}, &EdgeError{Index: 1, Text: line, Err: err}
	}

	return e, nil
}

// ParseEdges parses every non-blank line. On failure the returned
// *EdgeError carries the 1-based line number within lines.
func ParseEdges(lines []string) ([]Edge, error) {
	edges := make([]Edge, 0, len(lines))
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseFields(line)
		if err != nil {
			return nil, &EdgeError{Index: n + 1, Text: strings.TrimSpace(line), Err: err}
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// SplitLines splits a block of text into trimmed, non-blank lines.
// Both "\n" and "\r\n" endings are accepted.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out
}

// CountLines returns the number of non-blank entries in lines.
func CountLines(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}

	return n
}

func parseFields(line string) (Edge, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldSep)
	if len(fields) < fieldsPerEdge {
		return Edge{}, fmt.Errorf("%w: got %d field(s)", ErrTooFewFields, len(fields))
	}

	from, err := parsePoint(fields[0])
	if err != nil {
		return Edge{}, fmt.Errorf("from: %w", err)
	}
	to, err := parsePoint(fields[1])
	if err != nil {
		return Edge{}, fmt.Errorf("to: %w", err)
	}
	cost, err := parseCost(fields[2])
	if err != nil {
		return Edge{}, fmt.Errorf("cost: %w", err)
	}

	return Edge{From: from, To: to, Cost: cost}, nil
}

func parsePoint(field string) (int, error) {
	field = strings.TrimSpace(field)
	p, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPoint, field)
	}

	return p, nil
}

func parseCost(field string) (float64, error) {
	field = strings.TrimSpace(field)
	c, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadCost, field)
	}
	if err = checkCost(c); err != nil {
		return 0, err
	}

	return c, nil
}
