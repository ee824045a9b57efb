// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extracttest

import (
	"fmt"
	"math"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

// AssertCoreProperties checks spec.md §8's properties 1-3 and 6 of r
// against g and roots, returning the first violation found or nil.
// Property 5 (tree-optimality) and 7 (ILP optimality) are checked
// separately since they compare against another computation, not just r
// in isolation. Property 4 (cost soundness) is not checked: Result
// carries no separately tracked cost for DAGCost to be compared against.
func AssertCoreProperties(g *egraph.Graph, roots []egraph.ClassID, r *extract.Result) error {
	if r.Len() == 0 {
		// The established infeasibility sentinel; nothing else to check.
		return nil
	}
	if err := r.Check(g, roots); err != nil {
		return fmt.Errorf("properties 1-3 (coverage/consistency/acyclicity): %w", err)
	}

	dag := r.DAGCost(g, roots)
	tree := r.TreeCost(g, roots)
	if dag > tree+extract.CostEpsilon {
		return fmt.Errorf("property 6 (DAG lower bound via tree): dag_cost=%v > tree_cost=%v + eps", dag, tree)
	}
	return nil
}

// AssertTreeOptimal checks spec.md §8 property 5 for a bottom-up tree
// extractor's result: for each reachable class, the cost of r's chosen
// node plus the brute-force optimum of each of its child classes must
// match the class's best cycle-free tree cost re-derived by brute-force
// DFS enumeration over g's own alternatives. Intended for the small
// graphs Random generates; not meant for production-sized inputs.
func AssertTreeOptimal(g *egraph.Graph, roots []egraph.ClassID, r *extract.Result) error {
	reach := g.Reachable(roots)
	memo := make(map[egraph.ClassID]float64)
	for c := range reach {
		want := bruteForceTreeCost(g, c, make(map[egraph.ClassID]bool), memo)
		n, ok := r.Node(c)
		if !ok {
			if !math.IsInf(want, 1) {
				return fmt.Errorf("class %d: r has no choice but brute-force tree cost is %v", c, want)
			}
			continue
		}
		got := g.Cost(n)
		for _, cc := range g.ChildrenOf(n) {
			got += bruteForceTreeCost(g, cc, make(map[egraph.ClassID]bool), memo)
		}
		if math.Abs(got-want) > extract.CostEpsilon {
			return fmt.Errorf("class %d: r's tree cost %v != brute-force optimum %v", c, got, want)
		}
	}
	return nil
}

// AssertILPOptimal checks spec.md §8 property 7: ilpResult, produced by a
// non-timed-out ILP run, must not be worse than any other extractor's
// result on the same (g, roots). Callers should skip this check when
// ilpResult.TimedOut is true, since property 7 only binds on a completed
// solve.
func AssertILPOptimal(g *egraph.Graph, roots []egraph.ClassID, ilpResult, other *extract.Result) error {
	ilp := ilpResult.DAGCost(g, roots)
	alt := other.DAGCost(g, roots)
	if ilp > alt+extract.CostEpsilon {
		return fmt.Errorf("property 7 (ILP optimality): ilp dag_cost=%v > other dag_cost=%v + eps", ilp, alt)
	}
	return nil
}

// bruteForceTreeCost enumerates every cycle-free node choice for c and
// returns the minimum achievable tree cost, memoized per class. onPath
// guards against infinite recursion through a genuine cycle in g itself
// (not in any particular Result): such a class contributes +Inf.
func bruteForceTreeCost(g *egraph.Graph, c egraph.ClassID, onPath map[egraph.ClassID]bool, memo map[egraph.ClassID]float64) float64 {
	if v, ok := memo[c]; ok {
		return v
	}
	if onPath[c] {
		return math.Inf(1)
	}
	onPath[c] = true
	defer delete(onPath, c)

	best := math.Inf(1)
	for _, n := range g.NodesOf(c) {
		total := g.Cost(n)
		for _, cc := range g.ChildrenOf(n) {
			total += bruteForceTreeCost(g, cc, onPath, memo)
			if total >= best {
				break
			}
		}
		if total < best {
			best = total
		}
	}
	memo[c] = best
	return best
}
