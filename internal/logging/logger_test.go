package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl, false))

	logger.Info("organized", String(FieldEntry, "report.pdf"), String(FieldCategory, "Documents"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if decoded["msg"] != "organized" {
		t.Fatalf("msg: got %v", decoded["msg"])
	}
	if decoded["level"] != "info" {
		t.Fatalf("level: got %v", decoded["level"])
	}
	if decoded["entry"] != "report.pdf" {
		t.Fatalf("entry: got %v", decoded["entry"])
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatal("expected ts field")
	}
}

func TestConsoleHandlerHeaderAndFields(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))
	logger = NewComponentLogger(logger, "mover")

	logger.Warn("destination exists",
		String(FieldEntry, "report.pdf"),
		String(FieldCategory, "Documents"),
		String("target", "/dst/Documents/report.pdf"),
	)

	out := buf.String()
	for _, want := range []string{"WARN", "[mover]", "report.pdf (Documents)", "destination exists", "target:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "entry:") {
		t.Errorf("entry should be folded into the header:\n%s", out)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info should be suppressed at warn level, got %q", buf.String())
	}
	logger.Error("loud")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Fatalf("expected error output, got %q", buf.String())
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl, false))

	ctx := ContextWithRunID(context.Background(), "abc123")
	WithContext(ctx, logger).Info("started")

	if !strings.Contains(buf.String(), "run_id: abc123") {
		t.Fatalf("expected run_id field, got %q", buf.String())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("no-op logger should report disabled")
	}
}
