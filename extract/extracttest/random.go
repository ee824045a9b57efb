// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extracttest is the shared property-test harness every
// extractor's own tests exercise, in the manner of gonum's own
// graph/testgraph package: a random e-graph generator plus assertions for
// spec.md §8's numbered properties.
package extracttest

import (
	"math/rand/v2"
	"strconv"

	"github.com/egraph-extract/extractgym/egraph"
)

// RandomOpts controls Random's generation (spec.md §8's property-test
// generation recipe).
type RandomOpts struct {
	// CoreNodes is the number of "core" nodes, each starting its own new
	// class; random in [1,100] per spec.md §8.
	CoreNodes int
	// ExtraNodes is the number of additional nodes added to randomly
	// chosen existing classes (alternatives), random in [1,100].
	ExtraNodes int
	// MaxChildren bounds how many child edges a single node can have.
	MaxChildren int
}

// DefaultOpts picks CoreNodes/ExtraNodes uniformly from [1,100] using r,
// matching spec.md §8 literally.
func DefaultOpts(r *rand.Rand) RandomOpts {
	return RandomOpts{
		CoreNodes:   1 + r.IntN(100),
		ExtraNodes:  1 + r.IntN(100),
		MaxChildren: 3,
	}
}

// Random builds a random well-formed egraph.Parsed plus a random
// non-empty subset of its classes as roots, per spec.md §8's generation
// recipe: random node count, random child edges among prior classes,
// random costs drawn from {uniform[0,100), a duplicated prior cost, or
// exactly zero}, random roots.
func Random(r *rand.Rand, opts RandomOpts) egraph.Parsed {
	var p egraph.Parsed
	var classNames []string
	var priorCosts []float64

	newClassName := func(i int) string {
		return "c" + strconv.Itoa(i)
	}

	randomCost := func() float64 {
		switch r.IntN(3) {
		case 0:
			return r.Float64() * 100
		case 1:
			if len(priorCosts) > 0 {
				return priorCosts[r.IntN(len(priorCosts))]
			}
			return 0
		default:
			return 0
		}
	}

	randomChildren := func(maxClass int) []string {
		if maxClass == 0 {
			return nil
		}
		k := r.IntN(opts.MaxChildren + 1)
		if k == 0 {
			return nil
		}
		if k > maxClass {
			k = maxClass
		}
		// A uniformly random k-subset of [0,maxClass) via a partial
		// Fisher-Yates shuffle: O(k) swaps over an O(maxClass) index
		// buffer, rather than materializing gonum/stat/combin's full
		// C(maxClass,k) combination list just to index one element of
		// it, which (at up to ~200 prior classes and MaxChildren=3)
		// allocates on the order of a million []int slices per node.
		idx := make([]int, maxClass)
		for i := range idx {
			idx[i] = i
		}
		for i := 0; i < k; i++ {
			j := i + r.IntN(maxClass-i)
			idx[i], idx[j] = idx[j], idx[i]
		}
		children := make([]string, k)
		for i := 0; i < k; i++ {
			children[i] = classNames[idx[i]]
		}
		return children
	}

	for i := 0; i < opts.CoreNodes; i++ {
		name := newClassName(i)
		classNames = append(classNames, name)
		cost := randomCost()
		priorCosts = append(priorCosts, cost)
		p.Nodes = append(p.Nodes, egraph.ParsedNode{
			Class:    name,
			Op:       "core" + strconv.Itoa(i),
			Cost:     cost,
			Children: randomChildren(len(classNames) - 1),
		})
	}

	for i := 0; i < opts.ExtraNodes; i++ {
		if len(classNames) == 0 {
			break
		}
		name := classNames[r.IntN(len(classNames))]
		cost := randomCost()
		priorCosts = append(priorCosts, cost)
		p.Nodes = append(p.Nodes, egraph.ParsedNode{
			Class:    name,
			Op:       "extra" + strconv.Itoa(i),
			Cost:     cost,
			Children: randomChildren(len(classNames)),
		})
	}

	if len(classNames) == 0 {
		return p
	}
	numRoots := 1 + r.IntN(len(classNames))
	seen := make(map[string]bool)
	perm := r.Perm(len(classNames))
	for _, idx := range perm {
		if len(p.Roots) >= numRoots {
			break
		}
		name := classNames[idx]
		if !seen[name] {
			seen[name] = true
			p.Roots = append(p.Roots, name)
		}
	}
	return p
}
