package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := Init(Options{File: path, Level: "debug"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Infow("fetch complete", "country", "uk", "regions", 6)
	Debugw("debug line", "k", "v")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"msg":"fetch complete"`, `"country":"uk"`, `"@timestamp"`, `"msg":"debug line"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestInitLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := Init(Options{File: path, Level: "warn"}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debugw("hidden")
	Infow("also hidden")
	Warnw("shown")
	Sync()

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("expected warn entry, got:\n%s", out)
	}
}

func TestInitBadPath(t *testing.T) {
	err := Init(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "app.log")})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
