package logger

import (
	"bytes"
	"strings"
	"testing"
)

func withBuffer(t *testing.T, lvl int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(lvl)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(0)
	})
	return &buf
}

func TestSilentByDefault(t *testing.T) {
	buf := withBuffer(t, 0)
	Infof("loaded %d events", 3)
	Debugf("order %s", "time-asc")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at level 0, got %q", buf.String())
	}
}

func TestInfoLevel(t *testing.T) {
	buf := withBuffer(t, 1)
	Infof("loaded %d events", 3)
	Debugf("hidden")
	if got := buf.String(); got != "loaded 3 events\n" {
		t.Fatalf("expected info line only, got %q", got)
	}
}

func TestDebugLevel(t *testing.T) {
	buf := withBuffer(t, 2)
	Debugf("order %s", "shuffle")
	Timer("load")()
	out := buf.String()
	if !strings.Contains(out, "[debug] order shuffle") {
		t.Fatalf("expected debug prefix, got %q", out)
	}
	if !strings.Contains(out, "load took") {
		t.Fatalf("expected timer line, got %q", out)
	}
	if Level() != 2 {
		t.Fatalf("expected level 2, got %d", Level())
	}
}

func TestWarnAlwaysPrints(t *testing.T) {
	buf := withBuffer(t, 0)
	Warn("stale temp file %s", "x.tmp")
	if got := buf.String(); got != "warning: stale temp file x.tmp\n" {
		t.Fatalf("expected warning line, got %q", got)
	}
}
