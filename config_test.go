package conslisp

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
prelude: false
max-depth: 500
prompt: "lisp> "
log-level: debug
show-counter: true
`))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Prelude:     false,
		MaxDepth:    500,
		HistoryFile: "~/.conslisp_history",
		Prompt:      "lisp> ",
		LogLevel:    "debug",
		ShowCounter: true,
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("want debug level but got %v %v", level, err)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("empty config should give defaults (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []string{
		"unknown-key: 1\n",
		"max-depth: -1\n",
		"max-depth: lots\n",
		"log-level: loud\n",
	}
	for _, input := range tests {
		if _, err := ParseConfig([]byte(input)); err == nil {
			t.Errorf("want error for %q", input)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conslisp.yaml")
	if err := os.WriteFile(path, []byte("max-depth: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 42 || !cfg.Prelude {
		t.Errorf("got %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("want error for a missing file")
	}
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip(err)
	}
	cfg := DefaultConfig()
	if got, want := cfg.HistoryPath(), filepath.Join(home, ".conslisp_history"); got != want {
		t.Errorf("want %q but got %q", want, got)
	}
	cfg.HistoryFile = "/tmp/h"
	if got := cfg.HistoryPath(); got != "/tmp/h" {
		t.Errorf("want /tmp/h but got %q", got)
	}
}
