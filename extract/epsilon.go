// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// CostEpsilon is the tolerance used throughout this package when comparing
// summed floating-point costs, per spec.md §3 and §9.
const CostEpsilon = 1e-5

// costsEqual reports whether a and b agree to within CostEpsilon, treating
// +Inf as absorbing: two infinite costs of the same sign compare equal,
// never close-but-finite to infinite.
func costsEqual(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	return scalar.EqualWithinAbsOrRel(a, b, CostEpsilon, CostEpsilon)
}

// costLess reports whether a is strictly cheaper than b by at least
// CostEpsilon, the "strict improvement" test used by every fixed-point
// extractor in this package (spec.md §4.3: "only strict improvements
// trigger updates").
func costLess(a, b float64) bool {
	return a < b && !costsEqual(a, b)
}

// CostsEqual is the exported form of costsEqual, for packages (beam, ilp)
// that need the same epsilon/infinity semantics when comparing costs.
func CostsEqual(a, b float64) bool { return costsEqual(a, b) }

// CostLess is the exported form of costLess.
func CostLess(a, b float64) bool { return costLess(a, b) }
