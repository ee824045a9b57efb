// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import "testing"

func TestBottomUpTwoAlternatives(t *testing.T) {
	g := build(t, twoAltParsed())
	r := BottomUp(g, g.Roots())
	root := g.Roots()[0]
	n, ok := r.Node(root)
	if !ok {
		t.Fatalf("root class has no choice")
	}
	if g.Op(n) != "a1" {
		t.Errorf("chosen op = %q, want a1 (cost 5 beats a2's 2+10=12)", g.Op(n))
	}
	if got := r.TreeCost(g, g.Roots()); got != 5 {
		t.Errorf("TreeCost() = %v, want 5", got)
	}
}

func TestBottomUpDoubleCountsSharedSubterm(t *testing.T) {
	g := build(t, sharedSubtermParsed())
	r := BottomUp(g, g.Roots())
	// Tree extraction re-prices S once for P and once for Q: 1 (R) + 1 (P)
	// + 1 (Q) + 100 (S via P) + 100 (S via Q) = 203.
	if got := r.TreeCost(g, g.Roots()); got != 203 {
		t.Errorf("TreeCost() = %v, want 203 (tree extractors double-count shared subterms)", got)
	}
}

func TestBottomUpAvoidsCycle(t *testing.T) {
	g := build(t, cyclicAlternativeParsed())
	r := BottomUp(g, g.Roots())
	n, ok := r.Node(g.Roots()[0])
	if !ok {
		t.Fatalf("root class has no choice")
	}
	if g.Op(n) != "leaf" {
		t.Errorf("chosen op = %q, want leaf (the only acyclic alternative)", g.Op(n))
	}
	if err := r.Check(g, g.Roots()); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestBottomUpIgnoresUnreachableClasses(t *testing.T) {
	g := build(t, egraphParsedWithOrphan())
	r := BottomUp(g, g.Roots())
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (R and A only, not the orphan)", r.Len())
	}
}
