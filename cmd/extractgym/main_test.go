// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/egraph-extract/extractgym/extract"
	"github.com/egraph-extract/extractgym/ioformat/textgraph"
)

const singleLeafText = `## root: A
A, 3.0, a
`

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestExtractOneComputesCosts(t *testing.T) {
	path := writeTemp(t, "single.txt", singleLeafText)
	extractFn, ok := extract.Lookup("bottomup")
	if !ok {
		t.Fatalf("bottomup not registered")
	}
	r, err := extractOne(path, textgraph.Loader{File: path}, "bottomup", extractFn)
	if err != nil {
		t.Fatalf("extractOne: %v", err)
	}
	if r.tree != 3 || r.dag != 3 {
		t.Errorf("tree=%v dag=%v, want 3 and 3", r.tree, r.dag)
	}
	if r.name != "single" {
		t.Errorf("name = %q, want %q", r.name, "single")
	}
}

func TestExtractOnePropagatesParseError(t *testing.T) {
	path := writeTemp(t, "bad.txt", "not, a, valid, cost, field\n")
	extractFn, _ := extract.Lookup("bottomup")
	if _, err := extractOne(path, textgraph.Loader{File: path}, "bottomup", extractFn); err == nil {
		t.Errorf("extractOne: want error for malformed cost field")
	}
}

func TestWriteCSVHasHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	runs := []run{
		{name: "a", extractor: "bottomup", tree: 3, dag: 3, micros: 12},
		{name: "b", extractor: "bottomup", tree: 5, dag: 2, micros: 34},
	}
	if err := writeCSV(&buf, runs); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if lines[0] != "file,extractor,tree_cost,dag_cost,time_us" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestWriteJSONEncodesRun(t *testing.T) {
	var buf bytes.Buffer
	r := run{name: "a", extractor: "greedy-dag", tree: 8, dag: 8, micros: 99}
	if err := writeJSON(&buf, r); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	var decoded jsonRun
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != "a" || decoded.Extractor != "greedy-dag" || decoded.DAG != 8 || decoded.Micros != 99 {
		t.Errorf("decoded = %+v, want name=a extractor=greedy-dag dag=8 micros=99", decoded)
	}
}
