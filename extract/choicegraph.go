// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/egraph-extract/extractgym/egraph"
)

// classNode adapts an egraph.ClassID to gonum's graph.Node so the choice
// graph can be handed to gonum/graph/topo without copying it into some
// other representation first.
type classNode egraph.ClassID

func (n classNode) ID() int64 { return int64(n) }

// choiceGraph presents a Result's choice graph (class -> child classes of
// its chosen node) as a gonum.org/v1/gonum/graph.Directed, restricted to
// classes reachable from roots. Only the methods topo.TarjanSCC actually
// calls are implemented with real behavior; the rest satisfy the
// interface.
type choiceGraph struct {
	r     *Result
	g     *egraph.Graph
	nodes map[egraph.ClassID]bool // reachable classes only
}

func newChoiceGraph(r *Result, g *egraph.Graph, roots []egraph.ClassID) *choiceGraph {
	cg := &choiceGraph{r: r, g: g, nodes: make(map[egraph.ClassID]bool)}
	var stack []egraph.ClassID
	for _, root := range roots {
		if !cg.nodes[root] {
			cg.nodes[root] = true
			stack = append(stack, root)
		}
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := r.Node(c)
		if !ok {
			continue
		}
		for _, cc := range g.ChildrenOf(n) {
			if !cg.nodes[cc] {
				cg.nodes[cc] = true
				stack = append(stack, cc)
			}
		}
	}
	return cg
}

func (cg *choiceGraph) Node(id int64) graph.Node {
	c := egraph.ClassID(id)
	if cg.nodes[c] {
		return classNode(c)
	}
	return nil
}

func (cg *choiceGraph) Nodes() graph.Nodes {
	out := make([]graph.Node, 0, len(cg.nodes))
	for c := range cg.nodes {
		out = append(out, classNode(c))
	}
	return iteratorOf(out)
}

func (cg *choiceGraph) From(id int64) graph.Nodes {
	c := egraph.ClassID(id)
	n, ok := cg.r.Node(c)
	if !ok {
		return iteratorOf(nil)
	}
	var out []graph.Node
	for _, cc := range cg.g.ChildrenOf(n) {
		out = append(out, classNode(cc))
	}
	return iteratorOf(out)
}

func (cg *choiceGraph) HasEdgeBetween(x, y int64) bool {
	return cg.HasEdgeFromTo(x, y) || cg.HasEdgeFromTo(y, x)
}

func (cg *choiceGraph) HasEdgeFromTo(u, v int64) bool {
	n, ok := cg.r.Node(egraph.ClassID(u))
	if !ok {
		return false
	}
	for _, cc := range cg.g.ChildrenOf(n) {
		if egraph.ClassID(v) == cc {
			return true
		}
	}
	return false
}

func (cg *choiceGraph) Edge(u, v int64) graph.Edge {
	if !cg.HasEdgeFromTo(u, v) {
		return nil
	}
	return simpleEdge{f: classNode(egraph.ClassID(u)), t: classNode(egraph.ClassID(v))}
}

type simpleEdge struct{ f, t graph.Node }

func (e simpleEdge) From() graph.Node { return e.f }
func (e simpleEdge) To() graph.Node   { return e.t }
func (e simpleEdge) ReversedEdge() graph.Edge {
	return simpleEdge{f: e.t, t: e.f}
}

// sliceNodes is a minimal graph.Nodes over a fixed slice.
type sliceNodes struct {
	nodes []graph.Node
	idx   int
}

func iteratorOf(nodes []graph.Node) graph.Nodes { return &sliceNodes{nodes: nodes, idx: -1} }

func (s *sliceNodes) Next() bool {
	if s.idx+1 >= len(s.nodes) {
		return false
	}
	s.idx++
	return true
}

func (s *sliceNodes) Len() int {
	if s.idx >= len(s.nodes) {
		return 0
	}
	if s.idx < 0 {
		return len(s.nodes)
	}
	return len(s.nodes) - s.idx - 1
}

func (s *sliceNodes) Reset() { s.idx = -1 }

func (s *sliceNodes) Node() graph.Node { return s.nodes[s.idx] }

// FindCycles runs gonum's Tarjan strongly-connected-components algorithm
// over the choice graph restricted to classes reachable from roots, and
// returns every class that participates in a nontrivial component (a cycle)
// — spec.md §4.2's three-color-DFS contract, realized via
// gonum.org/v1/gonum/graph/topo.TarjanSCC rather than a bespoke DFS.
func (r *Result) FindCycles(g *egraph.Graph, roots []egraph.ClassID) []egraph.ClassID {
	cg := newChoiceGraph(r, g, roots)
	sccs := topo.TarjanSCC(cg)
	var cyclic []egraph.ClassID
	for _, scc := range sccs {
		if len(scc) > 1 {
			for _, node := range scc {
				cyclic = append(cyclic, egraph.ClassID(node.ID()))
			}
			continue
		}
		// A single-node component is only a cycle if it has a
		// self-loop (a node whose own class is among its children).
		c := egraph.ClassID(scc[0].ID())
		if cg.HasEdgeFromTo(int64(c), int64(c)) {
			cyclic = append(cyclic, c)
		}
	}
	return cyclic
}
