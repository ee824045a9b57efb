// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ioformat defines the Loader interface the text and JSON e-graph
// formats (ioformat/textgraph, ioformat/jsongraph) both implement, and the
// parse-error type they share.
package ioformat
