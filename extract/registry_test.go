// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"sort"
	"testing"

	"github.com/egraph-extract/extractgym/egraph"
)

func TestNamesIncludesBuiltinsAndIsSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, not sorted", names)
	}
	want := []string{"bottomup", "greedy-dag", "worklist-bottomup"}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names() = %v, missing %q", names, w)
		}
	}
}

func TestLookupUnknownFails(t *testing.T) {
	if _, ok := Lookup("does-not-exist"); ok {
		t.Errorf("Lookup(\"does-not-exist\") succeeded, want false")
	}
}

func TestRegisterAddsExtractor(t *testing.T) {
	Register("test-only-noop", func(g *egraph.Graph, roots []egraph.ClassID) *Result {
		return NewResult()
	})
	e, ok := Lookup("test-only-noop")
	if !ok {
		t.Fatalf("Lookup(\"test-only-noop\") failed after Register")
	}
	if got := e(nil, nil); got == nil || got.Len() != 0 {
		t.Errorf("registered extractor returned %v, want an empty *Result", got)
	}
}
