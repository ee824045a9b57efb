// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"
	"math"

	"github.com/egraph-extract/extractgym/egraph"
)

// Result is the Extraction Result: a mapping from each chosen class to its
// chosen node. It grows monotonically during extraction via Choose and is
// otherwise read-only.
type Result struct {
	choices map[egraph.ClassID]egraph.NodeID

	// TimedOut is set by extract/ilp when its solver's wall-clock budget
	// expires and it falls back to returning the warm start verbatim
	// (spec.md §7: "Timeouts are not errors; they return the warm
	// start."). Every other extractor leaves this false.
	TimedOut bool
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{choices: make(map[egraph.ClassID]egraph.NodeID)}
}

// Choose records that class c's chosen node is n, overwriting any previous
// choice for c.
func (r *Result) Choose(c egraph.ClassID, n egraph.NodeID) {
	r.choices[c] = n
}

// Node returns the node chosen for c and whether c has a choice at all.
func (r *Result) Node(c egraph.ClassID) (egraph.NodeID, bool) {
	n, ok := r.choices[c]
	return n, ok
}

// Len returns the number of classes with a recorded choice.
func (r *Result) Len() int { return len(r.choices) }

// Classes returns every class with a recorded choice, in no particular
// order.
func (r *Result) Classes() []egraph.ClassID {
	out := make([]egraph.ClassID, 0, len(r.choices))
	for c := range r.choices {
		out = append(out, c)
	}
	return out
}

// Clone returns an independent copy of r.
func (r *Result) Clone() *Result {
	out := &Result{
		choices:  make(map[egraph.ClassID]egraph.NodeID, len(r.choices)),
		TimedOut: r.TimedOut,
	}
	for c, n := range r.choices {
		out.choices[c] = n
	}
	return out
}

// TreeCost re-expands every chosen subterm reachable from roots, counting
// each occurrence, and returns the sum (spec.md §4.2). A class reachable
// from roots with no recorded choice contributes +Inf, matching the
// fixed-point extractors' use of +Inf for "not yet decided".
func (r *Result) TreeCost(g *egraph.Graph, roots []egraph.ClassID) float64 {
	memo := make(map[egraph.ClassID]float64)
	var visit func(c egraph.ClassID, onPath map[egraph.ClassID]bool) float64
	visit = func(c egraph.ClassID, onPath map[egraph.ClassID]bool) float64 {
		if v, ok := memo[c]; ok {
			return v
		}
		if onPath[c] {
			// A cycle in an ill-formed result; treat as infinitely
			// expensive rather than recursing forever.
			return math.Inf(1)
		}
		n, ok := r.Node(c)
		if !ok {
			return math.Inf(1)
		}
		onPath[c] = true
		total := g.Cost(n)
		for _, cc := range g.ChildrenOf(n) {
			total += visit(cc, onPath)
		}
		delete(onPath, c)
		memo[c] = total
		return total
	}
	var sum float64
	for _, root := range roots {
		sum += visit(root, make(map[egraph.ClassID]bool))
	}
	return sum
}

// DAGCost sums each chosen node's cost exactly once across the reachable
// closure of roots (spec.md §4.2). Implementations that mark-visited-first
// tolerate cycles by construction: DAGCost never visits the same class
// twice, so it always terminates even on a malformed, cyclic Result.
func (r *Result) DAGCost(g *egraph.Graph, roots []egraph.ClassID) float64 {
	visited := make(map[egraph.ClassID]bool)
	var sum float64
	var stack []egraph.ClassID
	for _, root := range roots {
		if !visited[root] {
			visited[root] = true
			stack = append(stack, root)
		}
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := r.Node(c)
		if !ok {
			sum = math.Inf(1)
			continue
		}
		sum += g.Cost(n)
		for _, cc := range g.ChildrenOf(n) {
			if !visited[cc] {
				visited[cc] = true
				stack = append(stack, cc)
			}
		}
	}
	return sum
}

// Check asserts invariants 1-4 of spec.md §3 for a Result produced against
// g with the given roots:
//  1. every root has an entry
//  2. every entry's node belongs to its class
//  3. every chosen node's child class has an entry
//  4. the choice graph is acyclic
//
// Check returns the first invariant violation found, wrapped with context,
// or nil.
func (r *Result) Check(g *egraph.Graph, roots []egraph.ClassID) error {
	for _, root := range roots {
		if _, ok := r.Node(root); !ok {
			return fmt.Errorf("extract: root class %d has no chosen node", root)
		}
	}
	for c, n := range r.choices {
		if g.ClassOf(n) != c {
			return fmt.Errorf("extract: chosen node %d for class %d actually belongs to class %d", n, c, g.ClassOf(n))
		}
		for _, cc := range g.ChildrenOf(n) {
			if _, ok := r.Node(cc); !ok {
				return fmt.Errorf("extract: class %d's chosen node %d has child class %d with no chosen node", c, n, cc)
			}
		}
	}
	if cycles := r.FindCycles(g, roots); len(cycles) > 0 {
		return fmt.Errorf("extract: choice graph has a cycle through classes %v", cycles)
	}
	return nil
}
