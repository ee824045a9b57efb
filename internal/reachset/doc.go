// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reachset implements the persistent reachable-set aggregate used
// by the greedy DAG extractor (spec.md §4.5, §9): an immutable set of
// e-class ids with structural sharing, supporting O(depth) insertion and a
// union that short-circuits whenever it encounters a shared subtree.
//
// The set is a 32-way trie keyed by 5-bit chunks of the raw id, to depth 7
// (35 bits, enough to fully resolve a 32-bit id). Every node — leaf or
// branch — carries an XOR-combined hash of the ids beneath it; two
// subtrees with equal hashes are treated as representing the same set
// without a structural walk, which is the "merkle-style" short-circuit
// spec.md §9 calls for. This trades an astronomically small chance of a
// hash collision (a 64-bit mix over a closed, small universe of e-class
// ids) for O(1) equality on any subtree that was built by reusing an
// existing node, which is the common case once sharing shows up in a
// saturated e-graph.
//
// This package deliberately uses an uncompressed 32-entry child array per
// branch node rather than the bitmap-plus-popcount-indexed array a
// production HAMT (such as Clojure's or Rust's im crate) uses to avoid
// wasting a pointer per empty slot. No library in the retrieved example
// corpus implements a persistent HAMT with aggregate hashing (see
// DESIGN.md); this is a from-scratch implementation, simplified from a
// true bitmap-compressed HAMT in exchange for a much shorter, easier to
// verify implementation — the asymptotic behavior spec.md cares about
// (structural sharing, O(depth) insert, hash-shortcut union) is preserved.
package reachset
