// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ilp

import (
	"context"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

// Extract runs the exact ILP DAG extractor (spec.md §4.7) over g with the
// given Config. A zero Config is replaced with DefaultConfig().
//
// Extract distinguishes the three solver outcomes spec.md §7 calls out
// separately: infeasibility (a root has no surviving node after
// preprocessing, or the level/cycle-blocking constraints admit no
// solution) returns an empty Result, never the warm start; a timeout or
// an exhausted cycle-blocking iteration budget returns the warm start
// with TimedOut set; any other solver error is a fatal condition the
// extractor cannot recover from and is not swallowed.
func Extract(g *egraph.Graph, roots []egraph.ClassID, cfg Config) *extract.Result {
	if (cfg == Config{}) {
		cfg = DefaultConfig()
	}

	warm := extract.GreedyDAG(g, roots)
	w := preprocess(g, roots, warm, cfg)

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.SolveTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.SolveTimeout)
		defer cancel()
	}

	var blocked [][]cycleChoice
	maxIter := cfg.MaxCycleBlockingIterations
	if maxIter <= 0 {
		maxIter = 1
	}

	for iter := 0; iter < maxIter; iter++ {
		p := encode(g, w, roots, cfg, blocked)
		_, x, err := solveWithTimeout(ctx, p, cfg.SimplexTol)
		if err == ErrTimedOut {
			return timedOutResult(warm)
		}
		if err == lp.ErrInfeasible {
			return extract.NewResult()
		}
		if err != nil {
			// Neither a timeout nor infeasibility: a genuine solver
			// failure, which spec.md §7 treats as fatal rather than
			// a condition the extractor itself can recover from.
			panic("ilp: solver failed: " + err.Error())
		}
		r := decode(p, x)

		cyclic := r.FindCycles(g, roots)
		if len(cyclic) == 0 || cfg.Acyclicity == LevelEncoding {
			if err := r.Check(g, roots); err != nil {
				panic("ilp: internal invariant violation: " + err.Error())
			}
			return r
		}

		choice := make([]cycleChoice, 0, len(cyclic))
		for _, c := range cyclic {
			if n, ok := r.Node(c); ok {
				choice = append(choice, cycleChoice{Class: c, Node: n})
			}
		}
		blocked = append(blocked, choice)
	}
	return timedOutResult(warm)
}

// timedOutResult returns warm (the warm start, doubling as the returned
// answer per spec.md §4.7) cloned with TimedOut set, for both an actual
// solver wall-clock timeout and an on-the-fly cycle-blocking loop that
// exhausts its iteration budget before converging — spec.md §7 treats
// both as "not an error."
func timedOutResult(warm *extract.Result) *extract.Result {
	out := warm.Clone()
	out.TimedOut = true
	return out
}
