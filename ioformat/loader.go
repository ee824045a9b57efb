// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import "github.com/egraph-extract/extractgym/egraph"

// Loader turns raw file bytes into the neutral egraph.Parsed
// representation. textgraph and jsongraph each implement it for their own
// wire format; cmd/extractgym selects between them by file extension.
type Loader interface {
	Load(data []byte) (egraph.Parsed, error)
}
