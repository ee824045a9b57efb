// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
)

func init() {
	extract.Register("beam", func(g *egraph.Graph, roots []egraph.ClassID) *extract.Result {
		return Extract(g, roots, DefaultK)
	})
}
