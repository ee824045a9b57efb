// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reachset

import "testing"

func TestInsertContains(t *testing.T) {
	s := Empty()
	s = s.Insert(3)
	s = s.Insert(17)
	s = s.Insert(1000000)
	if !s.Contains(3) || !s.Contains(17) || !s.Contains(1000000) {
		t.Fatalf("expected all inserted ids to be contained")
	}
	if s.Contains(4) {
		t.Fatalf("did not expect 4 to be contained")
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestInsertIdempotent(t *testing.T) {
	s := Empty().Insert(5)
	s2 := s.Insert(5)
	if s2 != s {
		t.Fatalf("re-inserting an existing id should return the same *Set")
	}
}

func TestInsertShares(t *testing.T) {
	a := Empty().Insert(1).Insert(2)
	b := a.Insert(3)
	if b.root == a.root {
		t.Fatalf("expected a new root after inserting a new id")
	}
	if !a.Contains(1) || !a.Contains(2) || a.Contains(3) {
		t.Fatalf("original set a must be unaffected by deriving b")
	}
}

func TestUnion(t *testing.T) {
	a := Empty().Insert(1).Insert(2)
	b := Empty().Insert(2).Insert(3)
	u := Union(a, b)
	for _, id := range []uint32{1, 2, 3} {
		if !u.Contains(id) {
			t.Errorf("union missing id %d", id)
		}
	}
	if u.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", u.Len())
	}
}

func TestUnionSamePointerShortCircuits(t *testing.T) {
	a := Empty().Insert(9).Insert(10)
	u := Union(a, a)
	if u.root != a.root {
		t.Fatalf("union of a set with itself should short-circuit to the same root")
	}
}

func TestUnionCostChargesOnlyNewIDs(t *testing.T) {
	cost := func(id uint32) float64 { return float64(id) }
	a := Empty().Insert(1).Insert(2)
	b := Empty().Insert(2).Insert(3)
	merged, added := UnionCost(a, b, cost)
	if added != 3 {
		t.Fatalf("added cost = %v, want 3 (only id 3 is new)", added)
	}
	for _, id := range []uint32{1, 2, 3} {
		if !merged.Contains(id) {
			t.Errorf("merged set missing id %d", id)
		}
	}
}

func TestUnionCostWithSelfIsFree(t *testing.T) {
	cost := func(id uint32) float64 { t.Fatalf("cost should not be called"); return 0 }
	a := Empty().Insert(1).Insert(2).Insert(3)
	_, added := UnionCost(a, a, cost)
	if added != 0 {
		t.Fatalf("added cost = %v, want 0", added)
	}
}

func TestUnionCostFromEmpty(t *testing.T) {
	cost := func(id uint32) float64 { return 1 }
	b := Empty().Insert(1).Insert(2).Insert(3)
	merged, added := UnionCost(Empty(), b, cost)
	if added != 3 {
		t.Fatalf("added cost = %v, want 3", added)
	}
	if merged.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", merged.Len())
	}
}

func TestHashStableAcrossInsertOrder(t *testing.T) {
	a := Empty().Insert(1).Insert(2).Insert(3)
	b := Empty().Insert(3).Insert(2).Insert(1)
	if a.Hash() != b.Hash() {
		t.Fatalf("expected equal aggregate hashes regardless of insertion order")
	}
}

func TestManyIDsLargeDepth(t *testing.T) {
	s := Empty()
	for i := uint32(0); i < 5000; i++ {
		s = s.Insert(i * 104729) // spread across the id space
	}
	if s.Len() != 5000 {
		t.Fatalf("Len() = %d, want 5000", s.Len())
	}
	for i := uint32(0); i < 5000; i++ {
		if !s.Contains(i * 104729) {
			t.Fatalf("missing id %d", i*104729)
		}
	}
}
