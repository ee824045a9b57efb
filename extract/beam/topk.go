// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"math"
	"sort"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

// candidate is a partial solution: a (class -> chosen node) mapping closed
// under children, plus its total DAG cost counted once per class (spec.md
// §4.6).
type candidate struct {
	choices map[egraph.ClassID]egraph.NodeID
	cost    float64
}

// sameChoices reports whether c and o choose the same node for every
// class, used by TopK's duplicate rejection.
func (c candidate) sameChoices(o candidate) bool {
	if len(c.choices) != len(o.choices) {
		return false
	}
	for cls, n := range c.choices {
		if on, ok := o.choices[cls]; !ok || on != n {
			return false
		}
	}
	return true
}

// TopK holds up to K distinct candidate partial solutions for one class,
// kept sorted by ascending cost (spec.md §4.6).
type TopK struct {
	k       int
	entries []candidate
}

// NewTopK returns an empty beam that holds at most k candidates.
func NewTopK(k int) *TopK {
	if k < 1 {
		k = 1
	}
	return &TopK{k: k}
}

// Len returns the number of candidates currently held.
func (t *TopK) Len() int { return len(t.entries) }

// Best returns the lowest-cost candidate and whether the beam is nonempty.
func (t *TopK) Best() (candidate, bool) {
	if len(t.entries) == 0 {
		return candidate{}, false
	}
	return t.entries[0], true
}

// Cutoff returns the cost of the K-th best candidate, or +Inf if the beam
// holds fewer than K candidates (spec.md §4.6: "cutoff() returns the
// K-th-best cost (or +∞ if <K)").
func (t *TopK) Cutoff() float64 {
	if len(t.entries) < t.k {
		return math.Inf(1)
	}
	return t.entries[len(t.entries)-1].cost
}

// Offer inserts cand in sorted position if it is not a cost-and-choice-set
// duplicate of an existing entry, and drops the worst entry if the beam
// would overflow K. It reports whether the beam changed.
func (t *TopK) Offer(cand candidate) bool {
	for _, e := range t.entries {
		if extract.CostsEqual(e.cost, cand.cost) && e.sameChoices(cand) {
			return false
		}
	}
	i := sort.Search(len(t.entries), func(i int) bool {
		return !extract.CostLess(t.entries[i].cost, cand.cost)
	})
	if i == len(t.entries) && len(t.entries) >= t.k {
		return false
	}
	t.entries = append(t.entries, candidate{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = cand
	if len(t.entries) > t.k {
		t.entries = t.entries[:t.k]
	}
	return true
}

// Candidates returns every candidate currently held, best first.
func (t *TopK) Candidates() []candidate {
	out := make([]candidate, len(t.entries))
	copy(out, t.entries)
	return out
}
