// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ilp

import (
	"context"
	"errors"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrTimedOut is returned by solveWithTimeout when ctx is done (Extract
// derives its deadline from Config.SolveTimeout) before lp.BNB returns.
var ErrTimedOut = errors.New("ilp: solve timed out")

type solveResult struct {
	obj float64
	x   []float64
	err error
}

// solveWithTimeout runs lp.BNB on p's own goroutine and returns ErrTimedOut
// if ctx is done first. lp.BNB takes no context itself, so this is the
// only way to bound its wall-clock time.
func solveWithTimeout(ctx context.Context, p *program, tol float64) (float64, []float64, error) {
	resultCh := make(chan solveResult, 1)
	go func() {
		obj, x, err := lp.BNB(p.c, p.A, p.b, p.G, p.h, p.whole, tol)
		resultCh <- solveResult{obj: obj, x: x, err: err}
	}()

	select {
	case res := <-resultCh:
		return res.obj, res.x, res.err
	case <-ctx.Done():
		return 0, nil, ErrTimedOut
	}
}
