// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"math"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

// mergeInto folds src's choices into dst, keeping dst's node whenever a
// class appears in both (spec.md §4.6: "on equal class with different
// nodes, keep one... and accept the arbitrary pick"; this implementation
// deterministically keeps whichever side was accumulated first, resolving
// Open Question 1 on beam merge policy). It returns the DAG cost added by
// src: only classes not already present in dst contribute.
func mergeInto(dst map[egraph.ClassID]egraph.NodeID, src map[egraph.ClassID]egraph.NodeID, g *egraph.Graph) float64 {
	var added float64
	for cls, n := range src {
		if _, ok := dst[cls]; ok {
			continue
		}
		dst[cls] = n
		added += g.Cost(n)
	}
	return added
}

// combineSlots performs the branch-and-bound cross-product combination
// spec.md §4.6 describes for both node-candidate generation and final
// solution extraction: pick one candidate from each beam in slots, in
// order, merging compatibly, pruning any partial combination whose cost
// plus the remaining slots' minimum possible contribution already meets or
// exceeds cutoff (step 4).
//
// Slots are combined in a fixed deterministic order rather than the
// "random-shuffled order" spec.md mentions; determinism is explicitly not
// required for this extractor's correctness, and a fixed order keeps this
// repo's own tests reproducible without losing anything the shuffle would
// have bought beyond bias avoidance.
func combineSlots(g *egraph.Graph, slots [][]candidate, minCosts []float64, cutoff float64) []candidate {
	suffixMin := make([]float64, len(slots)+1)
	for i := len(slots) - 1; i >= 0; i-- {
		suffixMin[i] = suffixMin[i+1] + minCosts[i]
	}

	var out []candidate
	var recurse func(i int, choices map[egraph.ClassID]egraph.NodeID, cost float64)
	recurse = func(i int, choices map[egraph.ClassID]egraph.NodeID, cost float64) {
		if !math.IsInf(cutoff, 1) && cost+suffixMin[i] >= cutoff {
			return
		}
		if i == len(slots) {
			out = append(out, candidate{choices: choices, cost: cost})
			return
		}
		for _, e := range slots[i] {
			next := make(map[egraph.ClassID]egraph.NodeID, len(choices)+len(e.choices))
			for cls, n := range choices {
				next[cls] = n
			}
			added := mergeInto(next, e.choices, g)
			recurse(i+1, next, cost+added)
		}
	}
	recurse(0, make(map[egraph.ClassID]egraph.NodeID), 0)
	return out
}

// nodeCandidates generates every admissible candidate for installing node
// n (in class c) into the beam of c: combine c's children's beams (step 3
// of spec.md §4.6), add n's own cost and its class -> node entry, and
// reject any combination whose reachable class set already contains c
// (step 3's cycle rejection). snapshotOf must return a point-in-time copy
// of a child class's current beam contents and its min node cost; the
// caller is responsible for taking it under that class's read lock, since
// this function does no locking of its own (spec.md §4.6's "per-class
// read/write locks around beams").
func nodeCandidates(g *egraph.Graph, n egraph.NodeID, snapshotOf func(egraph.ClassID) (cands []candidate, minCost float64, empty bool), cutoff float64) []candidate {
	children := g.ChildrenOf(n)
	c := g.ClassOf(n)
	nodeCost := g.Cost(n)

	slots := make([][]candidate, len(children))
	minCosts := make([]float64, len(children))
	for i, cc := range children {
		cands, minCost, empty := snapshotOf(cc)
		if empty {
			return nil
		}
		slots[i] = cands
		minCosts[i] = minCost
	}

	base := combineSlots(g, slots, minCosts, subtractFinite(cutoff, nodeCost))
	out := make([]candidate, 0, len(base))
	for _, b := range base {
		if _, cyclic := b.choices[c]; cyclic {
			continue
		}
		total := b.cost + nodeCost
		if !extract.CostLess(total, cutoff) {
			continue
		}
		choices := make(map[egraph.ClassID]egraph.NodeID, len(b.choices)+1)
		for cls, cn := range b.choices {
			choices[cls] = cn
		}
		choices[c] = n
		out = append(out, candidate{choices: choices, cost: total})
	}
	return out
}

func subtractFinite(cutoff, x float64) float64 {
	if math.IsInf(cutoff, 1) {
		return cutoff
	}
	return cutoff - x
}
