// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every format's parse failure wraps, so callers
// can distinguish "bad input" from other error classes with errors.Is.
var ErrParse = errors.New("ioformat: parse error")

// ParseError reports a parse failure at a specific line of a specific
// file (line is 1-based; 0 means the error isn't tied to one line, e.g. a
// whole-file JSON decode failure).
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
