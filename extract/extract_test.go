// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import "github.com/egraph-extract/extractgym/egraph"

// twoAltParsed builds the "two alternatives" scenario from spec.md §8: A
// has a leaf alternative (a1, cost 5) and one that goes through B (a2, cost
// 2 + B's 10 = 12). The tree-optimal and DAG-optimal choice is a1.
func twoAltParsed() egraph.Parsed {
	return egraph.Parsed{
		Nodes: []egraph.ParsedNode{
			{Class: "A", Op: "a1", Cost: 5},
			{Class: "A", Op: "a2", Cost: 2, Children: []string{"B"}},
			{Class: "B", Op: "b", Cost: 10},
		},
		Roots: []string{"A"},
	}
}

// sharedSubtermParsed builds a root with two children that both reference
// the same shared class S. A tree extractor double-counts S; a DAG
// extractor must not.
func sharedSubtermParsed() egraph.Parsed {
	return egraph.Parsed{
		Nodes: []egraph.ParsedNode{
			{Class: "R", Op: "r", Cost: 1, Children: []string{"P", "Q"}},
			{Class: "P", Op: "p", Cost: 1, Children: []string{"S"}},
			{Class: "Q", Op: "q", Cost: 1, Children: []string{"S"}},
			{Class: "S", Op: "s", Cost: 100},
		},
		Roots: []string{"R"},
	}
}

// cyclicAlternativeParsed gives class A one alternative that cycles back
// to itself through B, and one plain leaf alternative; every sound
// extractor must settle on the acyclic leaf.
func cyclicAlternativeParsed() egraph.Parsed {
	return egraph.Parsed{
		Nodes: []egraph.ParsedNode{
			{Class: "A", Op: "leaf", Cost: 1},
			{Class: "A", Op: "viaB", Cost: 1, Children: []string{"B"}},
			{Class: "B", Op: "backToA", Cost: 1, Children: []string{"A"}},
		},
		Roots: []string{"A"},
	}
}

// egraphParsedWithOrphan gives the graph a class ("Orphan") not reachable
// from any root, to exercise that extractors only emit choices for
// reachable classes.
func egraphParsedWithOrphan() egraph.Parsed {
	return egraph.Parsed{
		Nodes: []egraph.ParsedNode{
			{Class: "R", Op: "r", Cost: 1, Children: []string{"A"}},
			{Class: "A", Op: "a", Cost: 1},
			{Class: "Orphan", Op: "o", Cost: 1},
		},
		Roots: []string{"R"},
	}
}

type egraphCase struct {
	name   string
	parsed egraph.Parsed
}

func build(t interface{ Fatalf(string, ...any) }, p egraph.Parsed) *egraph.Graph {
	g, err := egraph.Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}
