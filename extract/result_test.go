// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"math"
	"testing"

	"github.com/egraph-extract/extractgym/egraph"
)

func TestResultCloneIndependence(t *testing.T) {
	g := build(t, twoAltParsed())
	r := BottomUp(g, g.Roots())
	clone := r.Clone()
	clone.Choose(g.Roots()[0], g.NodesOf(g.Roots()[0])[1])
	orig, _ := r.Node(g.Roots()[0])
	cloned, _ := clone.Node(g.Roots()[0])
	if orig == cloned {
		t.Fatalf("mutating the clone should not affect the original")
	}
}

func TestTreeCostUndecidedClassIsInfinite(t *testing.T) {
	g := build(t, twoAltParsed())
	r := NewResult()
	if got := r.TreeCost(g, g.Roots()); !math.IsInf(got, 1) {
		t.Errorf("TreeCost() = %v, want +Inf for an empty Result", got)
	}
}

func TestCheckDetectsMissingChild(t *testing.T) {
	g := build(t, twoAltParsed())
	r := NewResult()
	// Choose a2 (which requires class B) for A without choosing anything
	// for B.
	for _, n := range g.NodesOf(g.Roots()[0]) {
		if g.Op(n) == "a2" {
			r.Choose(g.Roots()[0], n)
		}
	}
	if err := r.Check(g, g.Roots()); err == nil {
		t.Fatalf("Check() = nil, want an error for a missing child choice")
	}
}

func TestCheckDetectsWrongClassNode(t *testing.T) {
	g := build(t, twoAltParsed())
	r := NewResult()
	var bNode egraph.NodeID
	for _, c := range g.Classes() {
		if c != g.Roots()[0] {
			bNode = g.NodesOf(c)[0]
		}
	}
	r.Choose(g.Roots()[0], bNode) // B's node recorded under A's class
	if err := r.Check(g, g.Roots()); err == nil {
		t.Fatalf("Check() = nil, want an error for a class/node mismatch")
	}
}

func TestFindCyclesDetectsSelfLoop(t *testing.T) {
	g := build(t, egraph.Parsed{
		Nodes: []egraph.ParsedNode{
			{Class: "A", Op: "selfref", Cost: 1, Children: []string{"A"}},
		},
		Roots: []string{"A"},
	})
	r := NewResult()
	r.Choose(g.Roots()[0], g.NodesOf(g.Roots()[0])[0])
	cycles := r.FindCycles(g, g.Roots())
	if len(cycles) != 1 {
		t.Fatalf("FindCycles() = %v, want exactly the self-looping class", cycles)
	}
}
