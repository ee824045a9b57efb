// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package egraph implements the Compact E-Graph: a read-only, index-dense
// representation of an equality-saturated e-graph, built once from a
// deserialized input and addressed by small integer handles for the
// lifetime of an extraction run.
//
// A Graph stores classes and nodes in contiguous arrays. Looking up a
// node's owning class is a binary search over class boundaries; a node's
// child classes and a class's parent nodes are contiguous, deduplicated
// slices. Per-class minimum node cost is precomputed at Build time.
//
// Graph is immutable after Build and safe for concurrent readers.
package egraph
