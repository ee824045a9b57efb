// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egraph

import "sort"

// Graph is the Compact E-Graph: a read-only, index-dense representation of
// an already-saturated e-graph, built once by Build and safe for concurrent
// readers for the rest of its lifetime.
//
// Classes and nodes are both numbered densely from 0, with nodes grouped
// contiguously by owning class so that ClassOf can binary search class
// boundaries in O(log C).
type Graph struct {
	// classStart[c] is the index of the first node of class c in node
	// order; classStart[NumClasses()] == NumNodes(). len == C+1.
	classStart []uint32

	// Per-node data, indexed by NodeID.
	cost []float64
	op   []string

	// children is the flattened, per-node, deduplicated-and-sorted list of
	// child ClassIDs; childStart[n]..childStart[n+1] is node n's slice.
	// len(childStart) == N+1.
	childStart []uint32
	children   packedIndices

	// parents is the flattened, per-class, deduplicated list of NodeIDs
	// that have the class as a child; parentStart[c]..parentStart[c+1] is
	// class c's slice. len(parentStart) == C+1.
	parentStart []uint32
	parents     packedIndices

	minCost []float64 // per class, precomputed at Build time

	roots []ClassID // deduplicated, first-seen order
}

// NumClasses returns the number of e-classes in g.
func (g *Graph) NumClasses() int { return len(g.classStart) - 1 }

// NumNodes returns the number of e-nodes in g.
func (g *Graph) NumNodes() int { return len(g.cost) }

// Classes returns every class id in g, in ascending order.
func (g *Graph) Classes() []ClassID {
	out := make([]ClassID, g.NumClasses())
	for i := range out {
		out[i] = ClassID(i)
	}
	return out
}

// Roots returns the graph's declared root classes, deduplicated in
// first-seen order.
func (g *Graph) Roots() []ClassID { return g.roots }

// NodesOf returns the member e-nodes of class c, in build order.
func (g *Graph) NodesOf(c ClassID) []NodeID {
	start, end := g.classStart[c], g.classStart[c+1]
	out := make([]NodeID, 0, end-start)
	for n := start; n < end; n++ {
		out = append(out, NodeID(n))
	}
	return out
}

// ClassOf returns the e-class that owns node n, found by binary search over
// class boundaries in O(log C).
func (g *Graph) ClassOf(n NodeID) ClassID {
	// classStart is sorted ascending; find the last boundary <= n.
	i := sort.Search(len(g.classStart), func(i int) bool {
		return g.classStart[i] > uint32(n)
	})
	return ClassID(i - 1)
}

// ChildrenOf returns node n's deduplicated, sorted child classes.
func (g *Graph) ChildrenOf(n NodeID) []ClassID {
	start, end := int(g.childStart[n]), int(g.childStart[n+1])
	raw := g.children.slice(start, end)
	out := make([]ClassID, len(raw))
	for i, v := range raw {
		out[i] = ClassID(v)
	}
	return out
}

// ParentsOf returns the deduplicated set of nodes that have c as a child.
func (g *Graph) ParentsOf(c ClassID) []NodeID {
	start, end := int(g.parentStart[c]), int(g.parentStart[c+1])
	raw := g.parents.slice(start, end)
	out := make([]NodeID, len(raw))
	for i, v := range raw {
		out[i] = NodeID(v)
	}
	return out
}

// Cost returns node n's own (non-negative, finite) cost.
func (g *Graph) Cost(n NodeID) float64 { return g.cost[n] }

// Op returns node n's operator label, used only for equality/hashing by
// callers; extraction never inspects it semantically.
func (g *Graph) Op(n NodeID) string { return g.op[n] }

// MinCost returns the precomputed minimum node cost within class c.
func (g *Graph) MinCost(c ClassID) float64 { return g.minCost[c] }

// ChildrenBitWidth reports the storage width chosen for the flattened
// children table (16 or 32), for diagnostics and tests.
func (g *Graph) ChildrenBitWidth() int { return g.children.bitWidth() }

// Reachable returns the set of classes reachable from roots by following
// *every* node's children (i.e. every class that could possibly be chosen,
// not just the ones a particular extraction chose). Used by preprocessing (spec.md §4.7 pass 5, "unreachable
// class removal") and by tests that must ignore orphan clutter.
func (g *Graph) Reachable(roots []ClassID) map[ClassID]bool {
	seen := make(map[ClassID]bool, len(roots)*4)
	var stack []ClassID
	for _, r := range roots {
		if !seen[r] {
			seen[r] = true
			stack = append(stack, r)
		}
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.NodesOf(c) {
			for _, cc := range g.ChildrenOf(n) {
				if !seen[cc] {
					seen[cc] = true
					stack = append(stack, cc)
				}
			}
		}
	}
	return seen
}
