// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"math"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/internal/reachset"
)

// greedyTerm is a class's current best DAG-shaped term (spec.md §4.5): the
// set of classes it transitively covers, and the total DAG cost of
// covering them, each counted exactly once.
type greedyTerm struct {
	reach *reachset.Set
	cost  float64
}

// GreedyDAG is the greedy DAG extractor of spec.md §4.5: repeat sweeps over
// every node; for a node whose every child class already has a best term,
// assemble a candidate by unioning the children's best terms (a child
// class already present in the union-accumulator contributes nothing,
// since its subterm is already paid for), add this node's own cost, and
// install the candidate if it strictly improves its class's current best.
// Stop on the first sweep that makes no improvement.
//
// A candidate whose owning class already appears in its own accumulated
// reachable set would close a cycle (the class would depend on itself
// through a chosen child) and is rejected outright, per spec.md §4.5's
// cycle-handling clause.
//
// GreedyDAG is not optimal: once a class's term is installed it is not
// revisited to account for costs that later became cheaper elsewhere in
// its own reach set. It produces a high-quality upper bound used as warm
// start by the ILP extractor (spec.md §4.7).
//
// The original implementation this was distilled from also carries a
// worklist-driven "faster" variant of this extractor; spec.md §4.5 only
// describes the sweep form above, so that's the only one built here.
func GreedyDAG(g *egraph.Graph, roots []egraph.ClassID) *Result {
	best := make([]greedyTerm, g.NumClasses())
	for i := range best {
		best[i] = greedyTerm{cost: math.Inf(1)}
	}
	chosen := make([]egraph.NodeID, g.NumClasses())
	hasChoice := make([]bool, g.NumClasses())

	costOf := func(id uint32) float64 {
		return g.Cost(chosen[egraph.ClassID(id)])
	}

	for {
		changed := false
		for _, c := range g.Classes() {
			for _, n := range g.NodesOf(c) {
				children := g.ChildrenOf(n)
				ready := true
				for _, cc := range children {
					if !hasChoice[cc] {
						ready = false
						break
					}
				}
				if !ready {
					continue
				}
				acc := reachset.Empty()
				total := g.Cost(n)
				for _, cc := range children {
					merged, added := reachset.UnionCost(acc, best[cc].reach, costOf)
					acc = merged
					total += added
				}
				if acc.Contains(uint32(c)) {
					// Installing n would make c depend on itself.
					continue
				}
				if costLess(total, best[c].cost) {
					best[c] = greedyTerm{reach: acc.Insert(uint32(c)), cost: total}
					chosen[c] = n
					hasChoice[c] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	r := NewResult()
	reach := g.Reachable(roots)
	for c := range reach {
		if hasChoice[c] {
			r.Choose(c, chosen[c])
		}
	}
	AssertValid(r, g, roots)
	return r
}
