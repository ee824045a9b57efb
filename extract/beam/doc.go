// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package beam implements the Beam-K DAG extractor of spec.md §4.6: each
// class keeps a Top-K beam of candidate partial solutions, refined by a
// worklist that combines children's beams into node candidates, prunes
// against the class's current cutoff, and re-enqueues parents whenever a
// class's beam changes, until a global fixed point.
//
// The worklist drain is bounded-concurrent, built on
// golang.org/x/sync/errgroup and golang.org/x/sync/semaphore — promoted
// from an indirect dependency of gonum.org/v1/gonum's own go.mod to a
// direct one here, realizing spec.md §4.6's "work-stealing pool" as a
// bounded concurrent drain of each pass's worklist.
package beam
