// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"
	"sort"
	"sync"

	"github.com/egraph-extract/extractgym/egraph"
)

// Extractor runs one extraction strategy over g for the given roots.
type Extractor func(g *egraph.Graph, roots []egraph.ClassID) *Result

var (
	registryMu sync.RWMutex
	registry   = map[string]Extractor{
		"bottomup":          func(g *egraph.Graph, roots []egraph.ClassID) *Result { return BottomUp(g, roots) },
		"worklist-bottomup": func(g *egraph.Graph, roots []egraph.ClassID) *Result { return WorklistBottomUp(g, roots) },
		"greedy-dag":        func(g *egraph.Graph, roots []egraph.ClassID) *Result { return GreedyDAG(g, roots) },
	}
)

// Register adds or replaces the named extractor. Packages that wrap
// extract (beam, ilp) call this from an init func so cmd/extractgym never
// needs to import them directly to list or run them.
func Register(name string, e Extractor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = e
}

// Lookup returns the named extractor, or false if name isn't registered.
func Lookup(name string) (Extractor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

// Names returns every registered extractor name, sorted (spec.md §6's
// "--extractor print" lists them sorted, one per line).
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ErrUnknownExtractor reports that --extractor named something not in the
// registry.
type ErrUnknownExtractor struct {
	Name string
}

func (e *ErrUnknownExtractor) Error() string {
	return fmt.Sprintf("extract: unknown extractor %q", e.Name)
}
