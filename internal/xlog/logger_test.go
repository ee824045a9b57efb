// Copyright ©2026 The Extractgym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})
	l.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("output = %q, want JSON with msg field", buf.String())
	}
}

func TestNewPrettyUsesTextHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf, Pretty: true})
	l.Info("hello")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("output = %q, want text not JSON", buf.String())
	}
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})
	l.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing below warn", buf.String())
	}
	l.Warn("should appear")
	if buf.Len() == 0 {
		t.Errorf("warn-level message was filtered")
	}
}

func TestFromEnvParsesLevelAndFormat(t *testing.T) {
	t.Setenv("EXTRACTGYM_LOG", "debug,text")
	cfg := FromEnv()
	if cfg.Level != "debug" || !cfg.Pretty {
		t.Errorf("FromEnv() = %+v, want Level=debug Pretty=true", cfg)
	}
}

func TestFromEnvEmptyUsesDefault(t *testing.T) {
	t.Setenv("EXTRACTGYM_LOG", "")
	cfg := FromEnv()
	if cfg.Level != "info" || cfg.Pretty {
		t.Errorf("FromEnv() = %+v, want DefaultConfig()", cfg)
	}
}

func TestWithAnnotatesSubsequentEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf}).With("component", "extract")
	l.Info("hi")
	if !strings.Contains(buf.String(), `"component":"extract"`) {
		t.Errorf("output = %q, want component field", buf.String())
	}
}

func TestSlogReturnsUnderlyingLogger(t *testing.T) {
	l := New(DefaultConfig())
	if _, ok := any(l.Slog()).(*slog.Logger); !ok {
		t.Fatalf("Slog() did not return a *slog.Logger")
	}
}
