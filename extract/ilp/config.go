// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ilp

import "time"

// Acyclicity selects which of spec.md §4.7's two interchangeable
// acyclicity encodings the extractor uses.
type Acyclicity int

const (
	// OnTheFly re-solves after blocking each discovered cycle.
	OnTheFly Acyclicity = iota
	// LevelEncoding adds integer level variables up front, blocking every
	// cycle before the first solve.
	LevelEncoding
)

// Config controls the ILP extractor's preprocessing passes, acyclicity
// strategy, and solver budget (spec.md §4.7).
type Config struct {
	Acyclicity Acyclicity

	// DisableSelfLoopRemoval etc. gate spec.md §4.7's preprocessing
	// passes 1-5 and 7 individually; each of those defaults to enabled
	// (false = run it). Pass 8 (the min-cost lift in encode) has no
	// switch and always runs.
	DisableSelfLoopRemoval    bool
	DisableHighCostRemoval    bool
	DisableDominatedRemoval   bool
	DisableSubsumedRemoval    bool
	DisableUnreachableRemoval bool
	// DisableSingleParentPullUp defaults to true, but preprocess never
	// reads it: pass 6 is not implemented, so setting it to false has no
	// effect. The pass rewrites the graph's effective child structure,
	// which this package's immutable egraph.Graph has no rewrite layer
	// for (see DESIGN.md). DisableCostPullUp defaults to false (enabled);
	// unlike pull-up proper, pass 7 only adjusts workset costs in
	// place and needs no such rewrite. Resolved Open Question: cost
	// pull-up is configurable, not dropped outright, matching spec.md §9.
	DisableSingleParentPullUp bool
	DisableCostPullUp         bool

	// MaxCycleBlockingIterations bounds the on-the-fly re-solve loop
	// (spec.md §4.7's "bounded... to avoid factorial blowups").
	MaxCycleBlockingIterations int

	// SolveTimeout is the wall-clock budget for the whole solve,
	// including every on-the-fly re-solve (spec.md §4.7 "Time budget").
	SolveTimeout time.Duration

	// SimplexTol is the numerical tolerance passed to lp.BNB.
	SimplexTol float64
}

// DefaultConfig returns the configuration used when ilp.Extract is called
// with a zero Config.
func DefaultConfig() Config {
	return Config{
		Acyclicity:                 OnTheFly,
		DisableSingleParentPullUp:  true,
		DisableCostPullUp:          false,
		MaxCycleBlockingIterations: 1000,
		SolveTimeout:               10 * time.Second,
		SimplexTol:                 1e-7,
	}
}
