// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"context"
	"math"
	"sync"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

// DefaultK is the default beam width used when Extract's k argument is
// <= 0.
const DefaultK = 4

// Extract runs the Beam-K DAG extractor (spec.md §4.6) over g, keeping up
// to k candidate partial solutions per class. The worklist is drained in
// parallel passes bounded by the worker pool configured in pool.go; a
// class's beam is read under its own RLock and written under its own
// Lock, so distinct classes never contend.
func Extract(g *egraph.Graph, roots []egraph.ClassID, k int) *extract.Result {
	if k <= 0 {
		k = DefaultK
	}
	b := &beamState{
		g:     g,
		beams: make([]*TopK, g.NumClasses()),
		mus:   make([]sync.RWMutex, g.NumClasses()),
	}
	for i := range b.beams {
		b.beams[i] = NewTopK(k)
	}

	worklist := make([]egraph.NodeID, 0, g.NumNodes())
	queued := make([]bool, g.NumNodes())
	for n := 0; n < g.NumNodes(); n++ {
		nid := egraph.NodeID(n)
		if len(g.ChildrenOf(nid)) == 0 {
			worklist = append(worklist, nid)
			queued[n] = true
		}
	}

	ctx := context.Background()
	for len(worklist) > 0 {
		var mu sync.Mutex
		var next []egraph.NodeID
		nextQueued := make(map[egraph.NodeID]bool)

		_ = drainPool(ctx, worklist, func(_ context.Context, n egraph.NodeID) error {
			c := g.ClassOf(n)
			changed := b.tryInstall(n, c)
			if !changed {
				return nil
			}
			mu.Lock()
			for _, p := range g.ParentsOf(c) {
				if !nextQueued[p] {
					nextQueued[p] = true
					next = append(next, p)
				}
			}
			mu.Unlock()
			return nil
		})

		for i := range queued {
			queued[i] = false
		}
		worklist = next
		for _, n := range worklist {
			queued[n] = true
		}
	}

	return b.extractSolution(roots)
}

type beamState struct {
	g     *egraph.Graph
	beams []*TopK
	mus   []sync.RWMutex
}

// snapshot takes class c's beam contents and min node cost under RLock.
func (b *beamState) snapshot(c egraph.ClassID) (cands []candidate, minCost float64, empty bool) {
	b.mus[c].RLock()
	defer b.mus[c].RUnlock()
	if b.beams[c].Len() == 0 {
		return nil, 0, true
	}
	return b.beams[c].Candidates(), b.g.MinCost(c), false
}

// tryInstall generates n's candidates against its class's current cutoff
// and offers each one to the beam, reporting whether the beam changed.
func (b *beamState) tryInstall(n egraph.NodeID, c egraph.ClassID) bool {
	b.mus[c].RLock()
	cutoff := b.beams[c].Cutoff()
	b.mus[c].RUnlock()

	cands := nodeCandidates(b.g, n, b.snapshot, cutoff)
	if len(cands) == 0 {
		return false
	}

	b.mus[c].Lock()
	defer b.mus[c].Unlock()
	changed := false
	for _, cand := range cands {
		if b.beams[c].Offer(cand) {
			changed = true
		}
	}
	return changed
}

// extractSolution treats roots as a single compound root (spec.md §4.6)
// and runs the same combination procedure over their beams, picking the
// cheapest resulting candidate.
func (b *beamState) extractSolution(roots []egraph.ClassID) *extract.Result {
	slots := make([][]candidate, len(roots))
	minCosts := make([]float64, len(roots))
	for i, r := range roots {
		cands, minCost, empty := b.snapshot(r)
		if empty {
			return extract.NewResult()
		}
		slots[i] = cands
		minCosts[i] = minCost
	}
	combos := combineSlots(b.g, slots, minCosts, math.Inf(1))
	if len(combos) == 0 {
		return extract.NewResult()
	}
	best := combos[0]
	for _, c := range combos[1:] {
		if extract.CostLess(c.cost, best.cost) {
			best = c
		}
	}
	r := extract.NewResult()
	for cls, n := range best.choices {
		r.Choose(cls, n)
	}
	extract.AssertValid(r, b.g, roots)
	return r
}
