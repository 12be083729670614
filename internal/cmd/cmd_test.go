package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/iw2rmb/scribe/store"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, backend, path string) string {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	data := "storage:\n  backend: " + backend + "\n  path: " + path + "\n"
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfg
}

const sample = "# Title\n\nbody **bold**\n"

func TestImportExport(t *testing.T) {
	backends := []struct {
		name string
		path string
	}{
		{name: "file", path: t.TempDir()},
		{name: "sqlite", path: filepath.Join(t.TempDir(), "db", "scribe.db")},
	}
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			cfg := writeConfig(t, b.name, b.path)
			md := filepath.Join(t.TempDir(), "in.md")
			if err := os.WriteFile(md, []byte(sample), 0o644); err != nil {
				t.Fatalf("write markdown: %v", err)
			}

			out, err := run(t, "", "--config", cfg, "import", md)
			if err != nil {
				t.Fatalf("import: %v", err)
			}
			if want := "imported 2 blocks into \"editor-content\"\n"; out != want {
				t.Fatalf("import output: got %q, want %q", out, want)
			}

			out, err = run(t, "", "--config", cfg, "export")
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if out != sample {
				t.Fatalf("export: got %q, want %q", out, sample)
			}
		})
	}
}

func TestImportFromStdin_CustomKey(t *testing.T) {
	cfg := writeConfig(t, "file", t.TempDir())

	if _, err := run(t, "- item\n", "--config", cfg, "--key", "notes", "import", "-"); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, err := run(t, "", "--config", cfg, "--key", "notes", "dump")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, `"type":"unordered-list-item"`) || !strings.Contains(out, `"text":"item"`) {
		t.Fatalf("dump: got %s", out)
	}

	// The default key is untouched.
	out, err = run(t, "", "--config", cfg, "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out != "" {
		t.Fatalf("export of missing document: got %q, want empty", out)
	}
}

func TestExport_ToFile(t *testing.T) {
	cfg := writeConfig(t, "file", t.TempDir())
	if _, err := run(t, "plain\n", "--config", cfg, "import", "-"); err != nil {
		t.Fatalf("import: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "out.md")
	out, err := run(t, "", "--config", cfg, "export", "-o", dst)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout: got %q, want empty", out)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if got, want := string(data), "plain\n"; got != want {
		t.Fatalf("exported file: got %q, want %q", got, want)
	}
}

func TestDump_UnreadableDocument(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "file", dir)
	if err := os.WriteFile(filepath.Join(dir, "editor-content.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	_, err := run(t, "", "--config", cfg, "dump")
	var warn *store.RestoreWarning
	if !errors.As(err, &warn) {
		t.Fatalf("dump error: got %v, want *store.RestoreWarning", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, "s3", "bucket")
	if _, err := run(t, "", "--config", cfg, "export"); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}
}

func TestImport_MissingFile(t *testing.T) {
	cfg := writeConfig(t, "file", t.TempDir())
	_, err := run(t, "", "--config", cfg, "import", filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("import error: got %v, want not exist", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "scribe v") {
		t.Fatalf("version output: got %q", out)
	}
}
