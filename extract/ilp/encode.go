// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ilp

import (
	"math"

	"github.com/egraph-extract/extractgym/egraph"
	"gonum.org/v1/gonum/mat"
)

// program is a standard-form mixed integer program ready for lp.BNB:
// minimize c·x subject to A x = b, G x <= h, with whole[i] marking the
// integer (here: binary) variables.
type program struct {
	c     []float64
	A     *mat.Dense
	b     []float64
	G     *mat.Dense
	h     []float64
	whole []bool

	// variable layout, recorded for decode.go
	classVar  map[egraph.ClassID]int
	nodeVar   map[egraph.NodeID]int
	nodeClass map[egraph.NodeID]egraph.ClassID
	levelVar  map[egraph.ClassID]int // nil unless Acyclicity == LevelEncoding
	nVars     int
}

// cycleChoice is one class/node pair along a cycle found in a prior
// solve's solution, used to block that exact selection on-the-fly.
type cycleChoice struct {
	Class egraph.ClassID
	Node  egraph.NodeID
}

// encode builds the MIP for w against roots, following the on-the-fly or
// level-encoding acyclicity strategy named by cfg.Acyclicity (spec.md
// §4.7). blockedCycles are extra on-the-fly constraints accumulated across
// prior cyclic solves; nil on the first call.
func encode(g *egraph.Graph, w *workset, roots []egraph.ClassID, cfg Config, blockedCycles [][]cycleChoice) *program {
	p := &program{
		classVar:  make(map[egraph.ClassID]int),
		nodeVar:   make(map[egraph.NodeID]int),
		nodeClass: make(map[egraph.NodeID]egraph.ClassID),
	}

	var liveClasses []egraph.ClassID
	for c := 0; c < g.NumClasses(); c++ {
		cid := egraph.ClassID(c)
		if !w.excludedClass[cid] {
			liveClasses = append(liveClasses, cid)
			p.classVar[cid] = p.nVars
			p.nVars++
		}
	}
	var liveNodes []egraph.NodeID
	for n := 0; n < g.NumNodes(); n++ {
		nid := egraph.NodeID(n)
		if !w.excludedNode[nid] {
			liveNodes = append(liveNodes, nid)
			p.nodeVar[nid] = p.nVars
			p.nodeClass[nid] = g.ClassOf(nid)
			p.nVars++
		}
	}
	if cfg.Acyclicity == LevelEncoding {
		p.levelVar = make(map[egraph.ClassID]int)
		for _, cid := range liveClasses {
			p.levelVar[cid] = p.nVars
			p.nVars++
		}
	}

	// Objective: pass 8's per-class min-cost lift, so every class pays its
	// cheapest member's cost through a_c and each node pays only the
	// marginal cost above that minimum.
	p.c = make([]float64, p.nVars)
	for _, cid := range liveClasses {
		nodes := w.liveNodesOf(cid)
		minCost := math.Inf(1)
		for _, n := range nodes {
			if w.cost[n] < minCost {
				minCost = w.cost[n]
			}
		}
		if math.IsInf(minCost, 1) {
			minCost = 0
		}
		p.c[p.classVar[cid]] = minCost
		for _, n := range nodes {
			p.c[p.nodeVar[n]] = w.cost[n] - minCost
		}
	}

	var aRows [][]float64
	var bRows []float64

	// Root activation: a_r = 1 for every root class.
	for _, r := range roots {
		if _, ok := p.classVar[r]; !ok {
			continue // root excluded by preprocessing means it's infeasible; caller handles this
		}
		row := make([]float64, p.nVars)
		row[p.classVar[r]] = 1
		aRows = append(aRows, row)
		bRows = append(bRows, 1)
	}

	// Exactly one node per active class: sum_n s_n - a_c = 0.
	for _, cid := range liveClasses {
		row := make([]float64, p.nVars)
		row[p.classVar[cid]] = -1
		for _, n := range w.liveNodesOf(cid) {
			row[p.nodeVar[n]] = 1
		}
		aRows = append(aRows, row)
		bRows = append(bRows, 0)
	}

	var gRows [][]float64
	var hRows []float64

	// Children implication: s_n <= a_c' for every live child class c' of n.
	for _, n := range liveNodes {
		ni, ok := p.nodeVar[n]
		if !ok {
			continue
		}
		seen := make(map[egraph.ClassID]bool)
		for _, cc := range g.ChildrenOf(n) {
			if seen[cc] {
				continue
			}
			seen[cc] = true
			ci, ok := p.classVar[cc]
			if !ok {
				continue
			}
			row := make([]float64, p.nVars)
			row[ni] = 1
			row[ci] = -1
			gRows = append(gRows, row)
			hRows = append(hRows, 0)
		}
	}

	switch cfg.Acyclicity {
	case LevelEncoding:
		const M = 1 << 20
		for _, n := range liveNodes {
			ni, ok := p.nodeVar[n]
			if !ok {
				continue
			}
			own := g.ClassOf(n)
			li, ok := p.levelVar[own]
			if !ok {
				continue
			}
			seen := make(map[egraph.ClassID]bool)
			for _, cc := range g.ChildrenOf(n) {
				if seen[cc] || cc == own {
					continue
				}
				seen[cc] = true
				lci, ok := p.levelVar[cc]
				if !ok {
					continue
				}
				// level[own] - level[child] + M*s_n <= M - 1, i.e.
				// level[own] + 1 <= level[child] + M*(1 - s_n).
				row := make([]float64, p.nVars)
				row[li] = 1
				row[lci] = -1
				row[ni] = M
				gRows = append(gRows, row)
				hRows = append(hRows, M-1)
			}
		}
	case OnTheFly:
		for _, cycle := range blockedCycles {
			gRows = append(gRows, blockCycleRow(p, cycle))
			hRows = append(hRows, float64(len(cycle)-1))
		}
	}

	p.A = rowsToDense(aRows, p.nVars)
	p.b = bRows
	p.G = rowsToDense(gRows, p.nVars)
	p.h = hRows

	p.whole = make([]bool, p.nVars)
	for i := range p.whole {
		p.whole[i] = true
	}

	return p
}

// blockCycleRow builds the on-the-fly cutting-plane constraint forbidding
// the exact combination of node choices along cycle from recurring: the
// sum of their s_n variables must be at most |cycle|-1, so at least one
// must flip.
func blockCycleRow(p *program, cycle []cycleChoice) []float64 {
	row := make([]float64, p.nVars)
	for _, cc := range cycle {
		if ni, ok := p.nodeVar[cc.Node]; ok {
			row[ni] = 1
		}
	}
	return row
}

func rowsToDense(rows [][]float64, nVars int) *mat.Dense {
	if len(rows) == 0 {
		return mat.NewDense(0, nVars, nil)
	}
	flat := make([]float64, 0, len(rows)*nVars)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return mat.NewDense(len(rows), nVars, flat)
}
