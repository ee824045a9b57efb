// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract holds the Extraction Result type shared by every
// extractor, plus the bottom-up tree extractors and the greedy DAG
// extractor. The beam-search and ILP extractors live in the sibling
// extract/beam and extract/ilp packages, which depend on this one but not
// vice versa.
package extract
