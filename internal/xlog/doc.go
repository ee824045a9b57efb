// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xlog provides the driver's structured logging, built on log/slog
// in the manner of the yesoreyeram-thaiyyal example repo's pkg/logging
// package: a thin Logger wrapping *slog.Logger, level selected by an
// environment variable (EXTRACTGYM_LOG), JSON by default with an opt-in
// text handler for interactive use.
package xlog
