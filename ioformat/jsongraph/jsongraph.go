// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsongraph implements spec.md §6's JSON e-graph format: a
// dictionary of node-id -> {op, cost, children, eclass}, an optional
// class_data sidecar, and a root_eclasses list. A parse failure gets one
// best-effort repair pass through github.com/kaptinlin/jsonrepair before
// being reported (SPEC_FULL.md §2/§6), the same fallback leofalp-aigo's
// parser uses for LLM-shaped malformed JSON.
package jsongraph

import (
	"encoding/json"
	"sort"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/ioformat"
	"github.com/kaptinlin/jsonrepair"
)

// wireNode is one entry of the "nodes" object.
type wireNode struct {
	Op       string   `json:"op"`
	Cost     float64  `json:"cost"`
	Children []string `json:"children"`
	EClass   string   `json:"eclass"`
}

// wireGraph mirrors the on-disk shape exactly: nodes keyed by opaque
// node-id, each naming its own owning class via EClass; children are
// node-ids, not class-ids, per spec.md §6.
type wireGraph struct {
	Nodes        map[string]wireNode `json:"nodes"`
	ClassData    json.RawMessage     `json:"class_data,omitempty"`
	RootEClasses []string            `json:"root_eclasses"`
}

// Loader parses the JSON format.
type Loader struct {
	// File names the source for ParseError messages; optional.
	File string
}

var _ ioformat.Loader = Loader{}

// Load implements ioformat.Loader.
func (l Loader) Load(data []byte) (egraph.Parsed, error) {
	wg, err := decode(data)
	if err != nil {
		return egraph.Parsed{}, &ioformat.ParseError{File: l.File, Err: err}
	}
	return toParsed(wg), nil
}

// decode tries a plain json.Unmarshal first and falls back to one
// jsonrepair.JSONRepair pass before giving up, matching the retry shape
// leofalp-aigo/core/parse/parse.go uses for schema-confused LLM output.
func decode(data []byte) (wireGraph, error) {
	var wg wireGraph
	if err := json.Unmarshal(data, &wg); err == nil {
		return wg, nil
	} else {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return wireGraph{}, err
		}
		var retry wireGraph
		if retryErr := json.Unmarshal([]byte(repaired), &retry); retryErr != nil {
			return wireGraph{}, err
		}
		return retry, nil
	}
}

// toParsed resolves node-id children references into class references
// (egraph.Parsed's Children are class identifiers, resolved through each
// referenced node's own EClass), and emits nodes and roots in a
// deterministic order so repeated loads of the same file produce the same
// dense ids.
func toParsed(wg wireGraph) egraph.Parsed {
	ids := make([]string, 0, len(wg.Nodes))
	for id := range wg.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var p egraph.Parsed
	for _, id := range ids {
		n := wg.Nodes[id]
		children := make([]string, 0, len(n.Children))
		for _, childID := range n.Children {
			if cn, ok := wg.Nodes[childID]; ok {
				children = append(children, cn.EClass)
			}
		}
		p.Nodes = append(p.Nodes, egraph.ParsedNode{
			Class:    n.EClass,
			Op:       n.Op,
			Cost:     n.Cost,
			Children: children,
		})
	}

	seen := make(map[string]bool)
	for _, r := range wg.RootEClasses {
		if !seen[r] {
			seen[r] = true
			p.Roots = append(p.Roots, r)
		}
	}
	return p
}
