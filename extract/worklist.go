// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"math"

	"github.com/egraph-extract/extractgym/egraph"
)

// WorklistBottomUp computes the identical tree-optimal costs as BottomUp
// (spec.md §4.4) but propagates updates via a deduplicating FIFO queue
// seeded with leaf nodes (nodes with no children) instead of re-sweeping
// every node on every pass. The queue is order-insensitive for
// correctness; deduplication is purely a performance optimization.
func WorklistBottomUp(g *egraph.Graph, roots []egraph.ClassID) *Result {
	best := make([]float64, g.NumClasses())
	for i := range best {
		best[i] = math.Inf(1)
	}
	chosen := make([]egraph.NodeID, g.NumClasses())
	hasChoice := make([]bool, g.NumClasses())

	queue := newNodeQueue(g.NumNodes())
	for n := 0; n < g.NumNodes(); n++ {
		nid := egraph.NodeID(n)
		if len(g.ChildrenOf(nid)) == 0 {
			queue.push(nid)
		}
	}

	for {
		n, ok := queue.pop()
		if !ok {
			break
		}
		children := g.ChildrenOf(n)
		total := g.Cost(n)
		ready := true
		for _, cc := range children {
			if !hasChoice[cc] {
				ready = false
				break
			}
			total += best[cc]
		}
		if !ready {
			continue
		}
		c := g.ClassOf(n)
		if costLess(total, best[c]) || !hasChoice[c] {
			best[c] = total
			chosen[c] = n
			hasChoice[c] = true
			for _, p := range g.ParentsOf(c) {
				queue.push(p)
			}
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

// nodeQueue is a deduplicating FIFO queue of NodeIDs: pushing a node
// already present in the queue is a no-op, matching spec.md §4.4's
// "dedup is for performance only" contract.
type nodeQueue struct {
	items   []egraph.NodeID
	queued  []bool
	popHead int
}

func newNodeQueue(numNodes int) *nodeQueue {
	return &nodeQueue{queued: make([]bool, numNodes)}
}

func (q *nodeQueue) push(n egraph.NodeID) {
	if q.queued[n] {
		return
	}
	q.queued[n] = true
	q.items = append(q.items, n)
}

func (q *nodeQueue) pop() (egraph.NodeID, bool) {
	if q.popHead >= len(q.items) {
		return 0, false
	}
	n := q.items[q.popHead]
	q.popHead++
	q.queued[n] = false
	return n, true
}
