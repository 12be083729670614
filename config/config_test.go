package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.Backend != BackendFile || cfg.Storage.Key != "editor-content" {
		t.Fatalf("storage defaults: got %+v", cfg.Storage)
	}
	if cfg.Editor.HistoryLimit != 1000 || cfg.Editor.Placeholder != "Write something..." {
		t.Fatalf("editor defaults: got %+v", cfg.Editor)
	}
	if cfg.Log.Enabled {
		t.Fatalf("logging must be off by default")
	}

	cfg.Storage.Key = "changed"
	if Default().Storage.Key != "editor-content" {
		t.Fatalf("Default must return a copy")
	}
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.yaml")
	data := "storage:\n  backend: sqlite\n  path: /tmp/scribe.db\nlog:\n  enabled: true\n  verbose: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Storage.Path != "/tmp/scribe.db" {
		t.Fatalf("storage: got %+v", cfg.Storage)
	}
	if cfg.Storage.Key != "editor-content" {
		t.Fatalf("unset key must keep default: got %q", cfg.Storage.Key)
	}
	if !cfg.Log.Enabled || !cfg.Log.Verbose {
		t.Fatalf("log: got %+v", cfg.Log)
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{name: "version", data: "version: v9\n", want: "unknown version"},
		{name: "backend", data: "storage:\n  backend: s3\n", want: "unknown storage backend"},
		{name: "path", data: "storage:\n  backend: file\n  path: \"\"\n", want: "requires a path"},
		{name: "key", data: "storage:\n  key: \"\"\n", want: "storage key is empty"},
		{name: "history", data: "editor:\n  history_limit: -2\n", want: "history_limit"},
		{name: "syntax", data: "storage: [", want: "failed to unmarshal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("got %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestParseYAML_MemoryNeedsNoPath(t *testing.T) {
	cfg, err := ParseYAML([]byte("storage:\n  backend: memory\n  path: \"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Fatalf("backend=%q", cfg.Storage.Backend)
	}
}

func TestStoragePath_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	cfg := Default()
	cfg.Storage.Path = "~/docs"
	got, err := cfg.StoragePath()
	if err != nil {
		t.Fatalf("storage path: %v", err)
	}
	if want := filepath.Join(home, "docs"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	cfg.Storage.Path = "/abs"
	if got, _ := cfg.StoragePath(); got != "/abs" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
