// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ilp implements the ILP DAG extractor of spec.md §4.7: exact DAG
// extraction encoded as a mixed-integer program and solved by
// gonum.org/v1/gonum/optimize/convex/lp.BNB — the concrete instantiation
// of the "external ILP solver" the base spec treats as an out-of-scope
// collaborator.
package ilp
