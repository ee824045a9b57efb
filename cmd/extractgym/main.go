// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command extractgym runs a DAG-extraction algorithm over one or more
// e-graph files and reports tree/DAG cost and wall-clock time.
package main // import "github.com/egraph-extract/extractgym/cmd/extractgym"

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/egraph-extract/extractgym/egraph"
	"github.com/egraph-extract/extractgym/extract"
	_ "github.com/egraph-extract/extractgym/extract/beam"
	_ "github.com/egraph-extract/extractgym/extract/ilp"
	"github.com/egraph-extract/extractgym/internal/xlog"
	"github.com/egraph-extract/extractgym/ioformat"
	"github.com/egraph-extract/extractgym/ioformat/jsongraph"
	"github.com/egraph-extract/extractgym/ioformat/textgraph"
)

// run is one extraction: the file it came from, the algorithm used, and
// the measurements taken.
type run struct {
	name      string
	extractor string
	tree      float64
	dag       float64
	micros    int64
	timedOut  bool
}

func main() {
	log.SetPrefix("extractgym: ")
	log.SetFlags(0)

	extractorName := flag.String("extractor", "", `extractor to run, or "print" to list registered names and exit`)
	outPath := flag.String("out", "", "output file path (default stdout)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: extractgym -extractor <name> [-out path] file [file ...]

A single .json file runs the JSON driver and writes one JSON object with
fields name, extractor, tree, dag, micros. Any other list of files runs
the text driver and writes a CSV with columns
file, extractor, tree_cost, dag_cost, time_us.

ex:
 $> extractgym -extractor greedy-dag testdata/bench.txt
 $> extractgym -extractor print

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := xlog.NewFromEnv()

	if *extractorName == "print" {
		for _, name := range extract.Names() {
			fmt.Println(name)
		}
		return
	}

	if *extractorName == "" {
		flag.Usage()
		log.Fatalf("missing -extractor")
	}
	extractFn, ok := extract.Lookup(*extractorName)
	if !ok {
		log.Fatalf("unknown extractor %q (try -extractor print)", *extractorName)
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		log.Fatalf("no input files")
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	if len(files) == 1 && strings.EqualFold(filepath.Ext(files[0]), ".json") {
		r, err := extractOne(files[0], jsongraph.Loader{File: files[0]}, *extractorName, extractFn)
		if err != nil {
			log.Fatalf("%v", err)
		}
		logRun(logger, r)
		if err := writeJSON(out, r); err != nil {
			log.Fatalf("write output: %v", err)
		}
		return
	}

	runs := make([]run, 0, len(files))
	for _, file := range files {
		r, err := extractOne(file, textgraph.Loader{File: file}, *extractorName, extractFn)
		if err != nil {
			log.Fatalf("%v", err)
		}
		logRun(logger, r)
		runs = append(runs, r)
	}
	if err := writeCSV(out, runs); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

// extractOne loads file through loader, builds the e-graph, and times a
// single run of extractFn over it.
func extractOne(file string, loader ioformat.Loader, extractorName string, extractFn extract.Extractor) (run, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return run{}, fmt.Errorf("read %s: %w", file, err)
	}
	parsed, err := loader.Load(data)
	if err != nil {
		return run{}, fmt.Errorf("parse %s: %w", file, err)
	}
	g, err := egraph.Build(parsed)
	if err != nil {
		return run{}, fmt.Errorf("build %s: %w", file, err)
	}
	roots := g.Roots()

	start := time.Now()
	result := extractFn(g, roots)
	elapsed := time.Since(start)

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return run{
		name:      name,
		extractor: extractorName,
		tree:      result.TreeCost(g, roots),
		dag:       result.DAGCost(g, roots),
		micros:    elapsed.Microseconds(),
		timedOut:  result.TimedOut,
	}, nil
}

func logRun(logger *xlog.Logger, r run) {
	if r.timedOut {
		logger.Warn("extraction timed out, returning warm start",
			"file", r.name, "extractor", r.extractor)
		return
	}
	logger.Info("extraction complete",
		"file", r.name, "extractor", r.extractor, "dag_cost", r.dag, "micros", r.micros)
}

type jsonRun struct {
	Name      string  `json:"name"`
	Extractor string  `json:"extractor"`
	Tree      float64 `json:"tree"`
	DAG       float64 `json:"dag"`
	Micros    int64   `json:"micros"`
}

func writeJSON(w io.Writer, r run) error {
	return json.NewEncoder(w).Encode(jsonRun{
		Name:      r.name,
		Extractor: r.extractor,
		Tree:      r.tree,
		DAG:       r.dag,
		Micros:    r.micros,
	})
}

func writeCSV(w io.Writer, runs []run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file", "extractor", "tree_cost", "dag_cost", "time_us"}); err != nil {
		return err
	}
	for _, r := range runs {
		row := []string{
			r.name,
			r.extractor,
			strconv.FormatFloat(r.tree, 'g', -1, 64),
			strconv.FormatFloat(r.dag, 'g', -1, 64),
			strconv.FormatInt(r.micros, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
