// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textgraph implements spec.md §6's line-oriented text e-graph
// format: "#"-prefixed comments, "## root:"/"## roots:" declarations, and
// "class, cost, op[, child-class ...]" data lines.
package textgraph

import (
	"math"
	"strconv"
	"strings"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/ioformat"
)

// Loader parses the text format.
type Loader struct {
	// File names the source for ParseError messages; optional.
	File string
}

var _ ioformat.Loader = Loader{}

// Load implements ioformat.Loader.
func (l Loader) Load(data []byte) (egraph.Parsed, error) {
	var p egraph.Parsed
	var rootsSeen = make(map[string]bool)

	lines := strings.Split(string(data), "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if roots, ok := parseRootComment(line); ok {
				for _, r := range roots {
					if !rootsSeen[r] {
						rootsSeen[r] = true
						p.Roots = append(p.Roots, r)
					}
				}
			}
			continue
		}

		node, err := parseDataLine(line)
		if err != nil {
			return egraph.Parsed{}, &ioformat.ParseError{File: l.File, Line: lineNo, Err: err}
		}
		p.Nodes = append(p.Nodes, node)
	}

	if len(p.Nodes) == 0 {
		return egraph.Parsed{}, &ioformat.ParseError{File: l.File, Err: egraph.ErrNoNodes}
	}
	return p, nil
}

// parseRootComment recognizes "## root: a, b" / "## roots: a, b". line is
// the full trimmed line, including both "#" characters; a line with a
// single leading "#" is an ordinary comment.
func parseRootComment(line string) ([]string, bool) {
	if !strings.HasPrefix(line, "##") {
		return nil, false
	}
	rest := strings.TrimSpace(line[2:])
	lower := strings.ToLower(rest)
	var prefix string
	switch {
	case strings.HasPrefix(lower, "root:"):
		prefix = "root:"
	case strings.HasPrefix(lower, "roots:"):
		prefix = "roots:"
	default:
		return nil, false
	}
	names := strings.TrimSpace(rest[len(prefix):])
	if names == "" {
		return nil, true
	}
	var out []string
	for _, n := range strings.Split(names, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out, true
}

func parseDataLine(line string) (egraph.ParsedNode, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return egraph.ParsedNode{}, errBadLine(line, "want at least class, cost, op")
	}
	class := fields[0]
	cost, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return egraph.ParsedNode{}, errBadLine(line, "cost must be a finite non-negative real")
	}
	op := fields[2]
	var children []string
	for _, c := range fields[3:] {
		if c != "" {
			children = append(children, c)
		}
	}
	return egraph.ParsedNode{Class: class, Op: op, Cost: cost, Children: children}, nil
}

func errBadLine(line, reason string) error {
	return &lineError{line: line, reason: reason}
}

type lineError struct {
	line   string
	reason string
}

func (e *lineError) Error() string {
	return "malformed line " + strconv.Quote(e.line) + ": " + e.reason
}
