// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"math"

	"github.com/egraph-extract/extractgym/egraph"
)

// BottomUp is the fixed-point bottom-up tree-cost extractor of spec.md
// §4.3: repeatedly sweep every node, and whenever cost(n) plus the sum of
// its children's current best tree cost strictly improves on its class's
// current best, record the choice. Sweeps stop the first time a full pass
// makes no change. Tree-optimal; not necessarily DAG-optimal, since shared
// subterms are re-priced at every occurrence.
func BottomUp(g *egraph.Graph, roots []egraph.ClassID) *Result {
	best := make([]float64, g.NumClasses())
	for i := range best {
		best[i] = math.Inf(1)
	}
	chosen := make([]egraph.NodeID, g.NumClasses())
	hasChoice := make([]bool, g.NumClasses())

	for {
		changed := false
		for _, c := range g.Classes() {
			for _, n := range g.NodesOf(c) {
				total := g.Cost(n)
				for _, cc := range g.ChildrenOf(n) {
					total += best[cc]
					if math.IsInf(total, 1) {
						break
					}
				}
				if costLess(total, best[c]) {
					best[c] = total
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
