// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"

	"github.com/egraph-extract/extractgym/egraph"
)

// StrictChecks gates whether extractors self-validate their own output
// with Result.Check before returning (spec.md §7: "production builds
// retain them because the cost is O(N) relative to extraction"). Tests
// that want to observe a deliberately malformed Result should set this to
// false for the duration of the test.
var StrictChecks = true

// AssertValid panics with a diagnostic if StrictChecks is enabled and r
// fails Check against g and roots. Every extractor calls this on its own
// result immediately before returning it; a failure here means the
// extractor itself has a bug; it is not a condition production code is
// expected to recover from.
func AssertValid(r *Result, g *egraph.Graph, roots []egraph.ClassID) {
	if !StrictChecks || r.Len() == 0 {
		// An empty Result is the established infeasibility sentinel
		// (spec.md §7), not an invariant violation.
		return
	}
	if err := r.Check(g, roots); err != nil {
		panic(fmt.Sprintf("extract: internal invariant violation: %v", err))
	}
}
