// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egraph

import "errors"

// ErrEmptyClass indicates a class with no member e-nodes was encountered
// while building a Graph. Every class must have at least one node.
var ErrEmptyClass = errors.New("egraph: class has no member nodes")

// ErrUnknownRoot indicates a declared root class never appears as the
// owner of any node.
var ErrUnknownRoot = errors.New("egraph: root references unknown class")

// ErrNoNodes indicates the input declared zero e-nodes.
var ErrNoNodes = errors.New("egraph: input has no nodes")
