package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cutline/internal/logging"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cutline.log")
	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("export started", logging.String("project", "demo"), logging.Int("clips", 3))
	logger.Debug("suppressed at info level")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "export started") || !strings.Contains(out, "project=demo") || !strings.Contains(out, "clips=3") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "suppressed") {
		t.Fatalf("debug record leaked at info level: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutline.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Warn("cache release failed", logging.String("key", "frame-10"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"cache release failed"`) || !strings.Contains(out, `"key":"frame-10"`) {
		t.Fatalf("unexpected json output: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestComponentPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutline.log")
	base, err := logging.New(logging.Options{OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger := logging.NewComponentLogger(base, "transcode")
	logger.Info("clip rendered")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "transcode: clip rendered") {
		t.Fatalf("component prefix missing: %q", string(data))
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	// Must not panic or emit anywhere.
	logger.Error("dropped", logging.Error(nil))
}
