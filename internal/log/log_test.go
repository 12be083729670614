package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSet_DisabledIsNop(t *testing.T) {
	t.Cleanup(func() { _ = Set(Options{}) })

	if err := Set(Options{Enabled: false, Path: filepath.Join(t.TempDir(), "x.log")}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if Get().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("disabled logger must not log at debug")
	}
}

func TestSet_WritesToPath(t *testing.T) {
	t.Cleanup(func() { _ = Set(Options{}) })

	path := filepath.Join(t.TempDir(), "scribe.log")
	if err := Set(Options{Enabled: true, Verbose: true, Path: path}); err != nil {
		t.Fatalf("set: %v", err)
	}
	Get().Debug("hello from test")
	Flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file missing message: %q", data)
	}
}
