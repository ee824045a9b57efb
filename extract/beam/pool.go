// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package beam

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// workerCount returns the configured worker pool size: the EXTRACTGYM_WORKERS
// env var (spec.md §6) if set to a positive integer, else
// runtime.GOMAXPROCS(0).
func workerCount() int {
	if v := os.Getenv("EXTRACTGYM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.GOMAXPROCS(0)
}

// drainPool runs fn once for every element of items, bounded to at most
// workerCount() concurrent calls, realizing spec.md §4.6's "work-stealing
// pool" as a bounded concurrent drain of a pass's worklist (an ordinary
// work queue handed out to a capped set of goroutines, rather than a
// bespoke per-goroutine deque with stealing — the observable concurrency
// bound is the same). It returns the first error fn returns, if any, after
// every in-flight call finishes.
func drainPool[T any](ctx context.Context, items []T, fn func(context.Context, T) error) error {
	sem := semaphore.NewWeighted(int64(workerCount()))
	g, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		item := item
		if err := sem.Acquire(gctx, 1); err != nil {
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)
			return fn(gctx, item)
		})
	}
	return g.Wait()
}
