// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import "testing"

func TestWorklistBottomUpMatchesBottomUp(t *testing.T) {
	cases := []egraphCase{
		{"twoAlt", twoAltParsed()},
		{"sharedSubterm", sharedSubtermParsed()},
		{"cyclicAlternative", cyclicAlternativeParsed()},
		{"orphan", egraphParsedWithOrphan()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := build(t, c.parsed)
			want := BottomUp(g, g.Roots())
			got := WorklistBottomUp(g, g.Roots())
			if wantCost, gotCost := want.TreeCost(g, g.Roots()), got.TreeCost(g, g.Roots()); wantCost != gotCost {
				t.Errorf("TreeCost() = %v, want %v (must match BottomUp)", gotCost, wantCost)
			}
			if err := got.Check(g, g.Roots()); err != nil {
				t.Errorf("Check() = %v, want nil", err)
			}
		})
	}
}

func TestNodeQueueDedups(t *testing.T) {
	q := newNodeQueue(4)
	q.push(0)
	q.push(1)
	q.push(0) // duplicate, should be a no-op
	var popped []int
	for {
		n, ok := q.pop()
		if !ok {
			break
		}
		popped = append(popped, int(n))
	}
	if len(popped) != 2 {
		t.Fatalf("popped %v, want exactly 2 entries", popped)
	}
}
