// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egraph

// ClassID identifies an e-class by its dense position in a Graph. ClassID
// values are only comparable within the Graph that produced them.
type ClassID uint32

// NodeID identifies an e-node by its dense position in a Graph. NodeID
// values are only comparable within the Graph that produced them.
type NodeID uint32

// Invalid is returned by lookups that find nothing; no real class or node
// is ever assigned this value by Build.
const Invalid = ^uint32(0)
