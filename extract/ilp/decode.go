// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ilp

import (
	"github.com/egraph-extract/extractgym/extract"
)

// roundedOn reports whether x[idx] is closer to 1 than to 0.
func roundedOn(x []float64, idx int) bool {
	return idx < len(x) && x[idx] > 0.5
}

// decode reads the node variables of a solved program's solution vector
// and builds a Result out of whichever node is on in each active class.
func decode(p *program, x []float64) *extract.Result {
	r := extract.NewResult()
	for n, idx := range p.nodeVar {
		if roundedOn(x, idx) {
			r.Choose(p.nodeClass[n], n)
		}
	}
	return r
}
