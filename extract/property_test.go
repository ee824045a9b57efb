// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"math/rand/v2"
	"testing"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract/extracttest"
)

// treeExtractors are the bottom-up variants spec.md §8 property 5
// (tree-optimality) applies to; greedy-dag is a DAG extractor and is
// exercised only for properties 1-3 and 6 below.
var treeExtractors = map[string]Extractor{
	"bottomup":          BottomUp,
	"worklist-bottomup": WorklistBottomUp,
}

var dagExtractors = map[string]Extractor{
	"greedy-dag": GreedyDAG,
}

// TestPropertiesAcrossRandomGraphs exercises spec.md §8 properties 1-3, 5
// and 6 over a batch of random e-graphs for every built-in extractor, in the
// manner of gonum's own graph/testgraph randomized suites.
func TestPropertiesAcrossRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const trials = 40
	for trial := 0; trial < trials; trial++ {
		parsed := extracttest.Random(r, extracttest.DefaultOpts(r))
		g, err := egraph.Build(parsed)
		if err != nil {
			t.Fatalf("trial %d: Build: %v", trial, err)
		}
		roots := g.Roots()

		for name, ex := range treeExtractors {
			res := ex(g, roots)
			if err := extracttest.AssertCoreProperties(g, roots, res); err != nil {
				t.Errorf("trial %d, %s: %v", trial, name, err)
			}
			if err := extracttest.AssertTreeOptimal(g, roots, res); err != nil {
				t.Errorf("trial %d, %s: %v", trial, name, err)
			}
		}
		for name, ex := range dagExtractors {
			res := ex(g, roots)
			if err := extracttest.AssertCoreProperties(g, roots, res); err != nil {
				t.Errorf("trial %d, %s: %v", trial, name, err)
			}
		}
	}
}
