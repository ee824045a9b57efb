// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import "errors"

// ErrInvalidLogLevel is unused by FromEnv today (unknown levels fall back
// to info rather than erroring, matching the driver's "never fail on
// logging config" stance) but is kept for callers that want to validate
// EXTRACTGYM_LOG strictly.
var ErrInvalidLogLevel = errors.New("xlog: invalid log level")
