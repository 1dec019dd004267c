package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("level_filters_records", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Options{Level: "warn", Format: "text", Writer: &buf})
		if err != nil {
			t.Fatalf("New error: %v", err)
		}

		logger.Info("hidden")
		logger.Warn("template source missing", "source", "README.md")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info record written at warn level: %q", out)
		}
		if !strings.Contains(out, "template source missing") || !strings.Contains(out, "README.md") {
			t.Errorf("warn record missing: %q", out)
		}
		if !strings.Contains(out, "run=") {
			t.Errorf("run id missing: %q", out)
		}
	})

	t.Run("verbose_enables_debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Options{Level: "error", Verbose: true, Writer: &buf})
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		logger.Debug("stage finished", "stage", "copy")
		if !strings.Contains(buf.String(), "stage finished") {
			t.Errorf("debug record missing: %q", buf.String())
		}
	})

	t.Run("json_format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		logger.Info("generating project", "root", "/work/demo-api")

		var rec map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
			t.Fatalf("output is not JSON: %v: %q", err, buf.String())
		}
		if rec["root"] != "/work/demo-api" {
			t.Errorf("root = %v", rec["root"])
		}
		if id, _ := rec["run"].(string); len(id) != 8 {
			t.Errorf("run = %v, want 8-char id", rec["run"])
		}
	})

	t.Run("invalid_level", func(t *testing.T) {
		if _, err := New(Options{Level: "loud"}); err == nil {
			t.Error("expected error for unknown level")
		}
	})

	t.Run("invalid_format", func(t *testing.T) {
		if _, err := New(Options{Level: "info", Format: "xml"}); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestRunID(t *testing.T) {
	a, err := RunID()
	if err != nil {
		t.Fatal(err)
	}
	b, err := RunID()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 8 || a == b {
		t.Errorf("RunID() = %q, %q", a, b)
	}
	for _, r := range a {
		if !strings.ContainsRune(runIDAlphabet, r) {
			t.Errorf("unexpected rune %q in %q", r, a)
		}
	}
}
