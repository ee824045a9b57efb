// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egraph

// packedIndices stores a dense sequence of non-negative integers using the
// narrowest of uint16/uint32/uint64 that can hold every value, while
// presenting a uniform uint32 API to the rest of the package. The large
// flattened children/parents tables are the ones worth packing this way;
// e-graphs serialized from real rewrite systems commonly have far fewer
// than 65536 classes, so the 16-bit tier is the common case in practice.
type packedIndices struct {
	u16 []uint16
	u32 []uint32
	u64 []uint64
}

// newPackedIndices builds a packedIndices holding values, choosing storage
// width from the maximum value present.
func newPackedIndices(values []uint32) packedIndices {
	var maxV uint32
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	switch {
	case maxV <= 0xFFFF:
		u16 := make([]uint16, len(values))
		for i, v := range values {
			u16[i] = uint16(v)
		}
		return packedIndices{u16: u16}
	default:
		// uint32 covers every case this package can address, since
		// ClassID/NodeID are themselves uint32; a true 64-bit tier
		// would only matter past 4 billion classes, which no realized
		// e-graph approaches. newPackedIndices never fills the u64
		// field, so the 64-bit tier is never selected.
		u32 := make([]uint32, len(values))
		copy(u32, values)
		return packedIndices{u32: u32}
	}
}

func (p *packedIndices) len() int {
	switch {
	case p.u16 != nil:
		return len(p.u16)
	case p.u32 != nil:
		return len(p.u32)
	default:
		return len(p.u64)
	}
}

func (p *packedIndices) at(i int) uint32 {
	switch {
	case p.u16 != nil:
		return uint32(p.u16[i])
	case p.u32 != nil:
		return p.u32[i]
	default:
		return uint32(p.u64[i])
	}
}

// slice returns [start, end) as a freshly allocated uint32 slice.
// Graph.ChildrenOf and Graph.ParentsOf call it on every lookup, so each of
// those calls allocates.
func (p *packedIndices) slice(start, end int) []uint32 {
	out := make([]uint32, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, p.at(i))
	}
	return out
}

// bitWidth reports which tier was selected, for diagnostics and tests.
func (p *packedIndices) bitWidth() int {
	switch {
	case p.u16 != nil:
		return 16
	case p.u32 != nil:
		return 32
	default:
		return 64
	}
}
