// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"math/rand/v2"
	"testing"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract/extracttest"
)

// TestPropertiesAcrossRandomGraphs exercises spec.md §8 properties 1-3 and
// 6 over random e-graphs.
func TestPropertiesAcrossRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	const trials = 40
	for trial := 0; trial < trials; trial++ {
		parsed := extracttest.Random(r, extracttest.DefaultOpts(r))
		g, err := egraph.Build(parsed)
		if err != nil {
			t.Fatalf("trial %d: Build: %v", trial, err)
		}
		roots := g.Roots()
		res := Extract(g, roots, DefaultK)
		if err := extracttest.AssertCoreProperties(g, roots, res); err != nil {
			t.Errorf("trial %d: %v", trial, err)
		}
	}
}

// TestBeamMonotoneOnAverage checks spec.md §8 property 8: dag_cost for a
// wider beam must not be worse on average over many random inputs, even
// though no single input is guaranteed to improve.
func TestBeamMonotoneOnAverage(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	const trials = 60
	const kSmall, kLarge = 1, 8
	var totalSmall, totalLarge float64
	for trial := 0; trial < trials; trial++ {
		parsed := extracttest.Random(r, extracttest.DefaultOpts(r))
		g, err := egraph.Build(parsed)
		if err != nil {
			t.Fatalf("trial %d: Build: %v", trial, err)
		}
		roots := g.Roots()
		small := Extract(g, roots, kSmall)
		large := Extract(g, roots, kLarge)
		totalSmall += small.DAGCost(g, roots)
		totalLarge += large.DAGCost(g, roots)
	}
	if totalLarge > totalSmall+avgTol {
		t.Errorf("beam width %d averaged dag_cost %v, worse than width %d's %v over %d trials",
			kLarge, totalLarge, kSmall, totalSmall, trials)
	}
}

// avgTol tolerates float summation noise across trials; property 8 is a
// statistical claim about a sum over many trials, not a single-result
// equality check.
const avgTol = 1e-5
