package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chunky/pkg/game/config"
	"chunky/pkg/game/generator"
)

func options(t *testing.T, method string) *config.Options {
	t.Helper()
	o := config.Defaults("chunkgen")
	o.Seed = 42
	o.Method = method
	if err := o.Resolve(time.Now()); err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	return o
}

func TestRun_Main(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, false, options(t, "main")); err != nil {
		t.Fatalf("run() = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "Showing room from seed 42:" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Boss room ") {
		t.Errorf("second line = %q, want boss room header", lines[1])
	}
	if !strings.Contains(buf.String(), "B") {
		t.Error("boss not printed")
	}
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := run(&a, false, options(t, "grand")); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if err := run(&b, false, options(t, "grand")); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if a.String() != b.String() {
		t.Error("same seed printed different chunks")
	}
	if got := strings.Count(a.String(), "\n"); got != 17 {
		t.Errorf("grand printed %d lines, want 17", got)
	}
}

func TestRun_StrategyFailure(t *testing.T) {
	o := options(t, "inner")
	o.Height = 8
	var buf bytes.Buffer
	err := run(&buf, false, o)
	if !errors.Is(err, generator.ErrStrategyFailed) {
		t.Errorf("run() = %v, want ErrStrategyFailed", err)
	}
}

func TestRun_Dump(t *testing.T) {
	o := options(t, "main")
	o.Dump = filepath.Join(t.TempDir(), "map.txt")
	if err := run(&bytes.Buffer{}, false, o); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if _, err := os.Stat(o.Dump); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}
