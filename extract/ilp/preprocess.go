// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ilp

import (
	"math"
	"sort"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

// workset is the mutable view preprocessing narrows before encoding: which
// nodes/classes survive, and each surviving node's (possibly pulled-up)
// cost. egraph.Graph itself is never mutated; it is immutable by design
// (spec.md §4.1).
type workset struct {
	g             *egraph.Graph
	excludedNode  []bool
	excludedClass []bool
	cost          []float64 // per node, starts as g.Cost(n)
}

func newWorkset(g *egraph.Graph) *workset {
	w := &workset{
		g:             g,
		excludedNode:  make([]bool, g.NumNodes()),
		excludedClass: make([]bool, g.NumClasses()),
		cost:          make([]float64, g.NumNodes()),
	}
	for n := 0; n < g.NumNodes(); n++ {
		w.cost[n] = g.Cost(egraph.NodeID(n))
	}
	return w
}

func (w *workset) liveNodesOf(c egraph.ClassID) []egraph.NodeID {
	var out []egraph.NodeID
	for _, n := range w.g.NodesOf(c) {
		if !w.excludedNode[n] {
			out = append(out, n)
		}
	}
	return out
}

func (w *workset) exclude(n egraph.NodeID) { w.excludedNode[n] = true }

// preprocess applies spec.md §4.7's preprocessing passes 1-5 and 7 (pass 6
// is documented-disabled by default, see Config; pass 8 happens during
// objective encoding, not here) against a warm-start upper bound U
// (typically extract.GreedyDAG's result).
func preprocess(g *egraph.Graph, roots []egraph.ClassID, warm *extract.Result, cfg Config) *workset {
	w := newWorkset(g)

	if !cfg.DisableUnreachableRemoval {
		removeUnreachable(w, roots)
	}
	if !cfg.DisableSelfLoopRemoval {
		removeSelfLoops(w, roots)
	}
	if !cfg.DisableHighCostRemoval {
		U := warm.DAGCost(g, roots)
		removeHighCost(w, U)
	}
	if !cfg.DisableDominatedRemoval {
		removeDominated(w, g, roots, warm)
	}
	if !cfg.DisableSubsumedRemoval {
		removeSubsumed(w, g)
	}
	if !cfg.DisableCostPullUp {
		costPullUp(w, g)
	}
	return w
}

// removeUnreachable keeps only classes reachable from roots (pass 5).
func removeUnreachable(w *workset, roots []egraph.ClassID) {
	reach := w.g.Reachable(roots)
	for c := 0; c < w.g.NumClasses(); c++ {
		cid := egraph.ClassID(c)
		if !reach[cid] {
			w.excludedClass[cid] = true
			for _, n := range w.g.NodesOf(cid) {
				w.exclude(n)
			}
		}
	}
}

// removeSelfLoops drops nodes whose child classes contain their own class,
// or — when there is exactly one root — that root (pass 1).
func removeSelfLoops(w *workset, roots []egraph.ClassID) {
	var singleRoot egraph.ClassID
	hasSingleRoot := len(roots) == 1
	if hasSingleRoot {
		singleRoot = roots[0]
	}
	for n := 0; n < w.g.NumNodes(); n++ {
		nid := egraph.NodeID(n)
		if w.excludedNode[nid] {
			continue
		}
		own := w.g.ClassOf(nid)
		for _, cc := range w.g.ChildrenOf(nid) {
			if cc == own || (hasSingleRoot && cc == singleRoot && own != singleRoot) {
				w.exclude(nid)
				break
			}
		}
	}
}

// removeHighCost drops nodes whose own cost exceeds U+epsilon (pass 2).
func removeHighCost(w *workset, U float64) {
	if math.IsInf(U, 1) {
		return
	}
	for n := 0; n < w.g.NumNodes(); n++ {
		nid := egraph.NodeID(n)
		if !w.excludedNode[nid] && w.cost[nid] > U+extract.CostEpsilon {
			w.exclude(nid)
		}
	}
}

// warmSubtreeCost returns the cost of class c's subtree under warm's
// choices, memoized; used by removeDominated (pass 3). Mirrors
// extract.Result.TreeCost's recursion but is self-contained since that
// method doesn't expose its memo.
func warmSubtreeCost(g *egraph.Graph, warm *extract.Result, c egraph.ClassID, memo map[egraph.ClassID]float64) float64 {
	if v, ok := memo[c]; ok {
		return v
	}
	n, ok := warm.Node(c)
	if !ok {
		return math.Inf(1)
	}
	memo[c] = math.Inf(1) // cycle guard
	total := g.Cost(n)
	for _, cc := range g.ChildrenOf(n) {
		total += warmSubtreeCost(g, warm, cc, memo)
	}
	memo[c] = total
	return total
}

// removeDominated drops node b when some other node in the same class has
// (own + warm-start subtree) cost no greater than b's own cost (pass 3).
// Classes with two or fewer live members are left alone, and the member
// achieving the minimum (own + subtree) cost is never itself a removal
// target — both guards mirror the original's
// remove_more_expensive_nodes (original_source/src/extract/
// faster_ilp_cbc.rs), which skips classes of size <= 2 and excludes the
// cheapest node from its own filter by identity. Without the identity
// guard, two equal-cost members (e.g. two zero-cost leaves, routinely
// produced by the random generator's duplicated-cost draws) would
// mutually dominate each other and empty the class entirely.
func removeDominated(w *workset, g *egraph.Graph, roots []egraph.ClassID, warm *extract.Result) {
	memo := make(map[egraph.ClassID]float64)
	for c := 0; c < g.NumClasses(); c++ {
		cid := egraph.ClassID(c)
		if w.excludedClass[cid] {
			continue
		}
		nodes := w.liveNodesOf(cid)
		if len(nodes) <= 2 {
			continue
		}
		domCost := make([]float64, len(nodes))
		cheapest := 0
		for i, n := range nodes {
			total := w.cost[n]
			for _, cc := range g.ChildrenOf(n) {
				total += warmSubtreeCost(g, warm, cc, memo)
			}
			domCost[i] = total
			if domCost[i] < domCost[cheapest] {
				cheapest = i
			}
		}
		cheapestCost := domCost[cheapest]
		for i, n := range nodes {
			if i == cheapest {
				continue
			}
			if !extract.CostLess(w.cost[n], cheapestCost) {
				w.exclude(n)
			}
		}
	}
}

// childSet returns the deduplicated child classes of n as a set.
func childSet(g *egraph.Graph, n egraph.NodeID) map[egraph.ClassID]bool {
	s := make(map[egraph.ClassID]bool)
	for _, cc := range g.ChildrenOf(n) {
		s[cc] = true
	}
	return s
}

func isSubsetOf(a, b map[egraph.ClassID]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// subsumeCandidate pairs a live node with its child-class set, so both can
// be sorted together by removeSubsumed.
type subsumeCandidate struct {
	node egraph.NodeID
	set  map[egraph.ClassID]bool
}

// removeSubsumed drops node b when some other node a in the same class has
// cost <= b's cost and a's child-class set is a subset of b's (pass 4).
// Candidates are sorted by child-set size and only compared forward
// (j > i), and a node already marked for removal is never used to remove
// another — the same shape as the original's
// remove_more_expensive_subsumed_nodes (original_source/src/extract/
// faster_ilp_cbc.rs), which guarantees the first surviving candidate in
// sorted order can never itself be removed. A naive all-pairs comparison
// would let two equal-cost, equal-child-set nodes (e.g. two leaves,
// ∅ ⊆ ∅) mutually subsume each other and empty the class.
func removeSubsumed(w *workset, g *egraph.Graph) {
	for c := 0; c < g.NumClasses(); c++ {
		nodes := w.liveNodesOf(egraph.ClassID(c))
		cands := make([]subsumeCandidate, len(nodes))
		for i, n := range nodes {
			cands[i] = subsumeCandidate{node: n, set: childSet(g, n)}
		}
		// SliceStable, not Slice: the original's sort_by_key is stable,
		// and with it ties in child-set size preserve declaration
		// order, which is what lets the dominance check below fire
		// deterministically instead of depending on sort-order luck.
		sort.SliceStable(cands, func(i, j int) bool { return len(cands[i].set) < len(cands[j].set) })

		removed := make([]bool, len(cands))
		for i := range cands {
			if removed[i] {
				continue
			}
			for j := i + 1; j < len(cands); j++ {
				if removed[j] {
					continue
				}
				a, b := cands[i], cands[j]
				if !extract.CostLess(w.cost[b.node], w.cost[a.node]) && isSubsetOf(a.set, b.set) {
					removed[j] = true
				}
			}
		}
		for i, r := range removed {
			if r {
				w.exclude(cands[i].node)
			}
		}
	}
}

// costPullUp implements pass 7: for a class with exactly one parent
// class, subtract its members' minimum cost from every member and add it
// to every parent node that has the class as a child. Iterates until
// stable or 10 passes.
func costPullUp(w *workset, g *egraph.Graph) {
	for iter := 0; iter < 10; iter++ {
		changed := false
		for c := 0; c < g.NumClasses(); c++ {
			cid := egraph.ClassID(c)
			if w.excludedClass[cid] {
				continue
			}
			nodes := w.liveNodesOf(cid)
			if len(nodes) == 0 {
				continue
			}
			parentClasses := make(map[egraph.ClassID]bool)
			for _, p := range g.ParentsOf(cid) {
				if !w.excludedNode[p] {
					parentClasses[g.ClassOf(p)] = true
				}
			}
			if len(parentClasses) != 1 {
				continue
			}
			var parent egraph.ClassID
			for p := range parentClasses {
				parent = p
			}
			minCost := math.Inf(1)
			for _, n := range nodes {
				if w.cost[n] < minCost {
					minCost = w.cost[n]
				}
			}
			if minCost == 0 || math.IsInf(minCost, 1) {
				continue
			}
			for _, n := range nodes {
				w.cost[n] -= minCost
			}
			for _, m := range w.liveNodesOf(parent) {
				for _, cc := range g.ChildrenOf(m) {
					if cc == cid {
						w.cost[m] += minCost
						break
					}
				}
			}
			changed = true
		}
		if !changed {
			break
		}
	}
}
